package scheduler

// Skip bands by accuracy. A perfect run jumps markedly deeper into the queue
// than any partial-credit run, including a fast partial run: the highest
// partial band tops out at 8+2, well below the perfect base of 20.
const (
	skipPerfect = 20
	skipHigh    = 8
	skipMid     = 5
	skipLow     = 3
	skipFloor   = 1

	bonusPerfect = 5
	bonusHigh    = 2
	bonusMid     = 1

	accHigh = 0.85
	accMid  = 0.70
	accLow  = 0.50

	// Mean response times at or under this count as fluent recall.
	fastResponseMs = 3000
)

// CalculateSkipNumber maps a performance observation to an unclamped skip
// distance. Pure and deterministic: same observation, same skip. Clamping to
// the live queue length is the repositioning engine's job; this function has
// no queue visibility.
//
// For fixed TotalCount and response time the result is monotone in
// CorrectCount: band thresholds only ever step the skip up as accuracy rises,
// and the speed bonus shrinks with the band.
func CalculateSkipNumber(p PerformanceData) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	fast := p.AvgResponseTimeMs <= fastResponseMs
	acc := p.Accuracy()

	switch {
	case p.CorrectCount == p.TotalCount:
		if fast {
			return skipPerfect + bonusPerfect, nil
		}
		return skipPerfect, nil
	case acc >= accHigh:
		if fast {
			return skipHigh + bonusHigh, nil
		}
		return skipHigh, nil
	case acc >= accMid:
		if fast {
			return skipMid + bonusMid, nil
		}
		return skipMid, nil
	case acc >= accLow:
		return skipLow, nil
	default:
		return skipFloor, nil
	}
}

// ClampSkip bounds a raw skip to the live queue: [1, n-1]. A raw skip beyond
// the queue lands one short of the back; anything below 1 becomes 1. A queue
// of length one can only keep its stitch at position 1.
func ClampSkip(raw, n int) int {
	if n <= 1 {
		return 1
	}
	if raw >= n {
		return n - 1
	}
	if raw < 1 {
		return 1
	}
	return raw
}
