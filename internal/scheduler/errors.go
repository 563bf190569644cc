package scheduler

import "errors"

// Sentinel errors for the position scheduler. Services wrap these with
// fmt.Errorf("...: %w", err) so callers can match with errors.Is.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrLearningPathNotFound   = errors.New("learning path not found")
	ErrStitchNotFound         = errors.New("stitch not found")
	ErrInvalidPerformanceData = errors.New("invalid performance data")
	ErrRepositioningFailed    = errors.New("repositioning failed")
	ErrNoStitchesAvailable    = errors.New("no stitches available")
	ErrPathAlreadyInitialized = errors.New("learning path already initialized")
)
