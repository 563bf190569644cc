package scheduler

import "fmt"

// PerformanceData is the observation reported when a learner finishes a
// stitch. It is an ephemeral input; only the derived reposition event is
// persisted.
type PerformanceData struct {
	CorrectCount      int     `json:"correct_count"`
	TotalCount        int     `json:"total_count"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
}

// Validate rejects observations the skip calculator cannot interpret.
// Validation failures are never retried; the caller must correct the input.
func (p PerformanceData) Validate() error {
	if p.TotalCount <= 0 {
		return fmt.Errorf("%w: total_count must be > 0, got %d", ErrInvalidPerformanceData, p.TotalCount)
	}
	if p.CorrectCount < 0 {
		return fmt.Errorf("%w: correct_count must be >= 0, got %d", ErrInvalidPerformanceData, p.CorrectCount)
	}
	if p.CorrectCount > p.TotalCount {
		return fmt.Errorf("%w: correct_count %d exceeds total_count %d", ErrInvalidPerformanceData, p.CorrectCount, p.TotalCount)
	}
	if p.AvgResponseTimeMs <= 0 {
		return fmt.Errorf("%w: avg_response_time_ms must be > 0, got %v", ErrInvalidPerformanceData, p.AvgResponseTimeMs)
	}
	return nil
}

// Accuracy returns the fraction of correct answers. Callers must Validate first.
func (p PerformanceData) Accuracy() float64 {
	return float64(p.CorrectCount) / float64(p.TotalCount)
}
