package scheduler

import (
	"errors"
	"testing"
)

func TestCalculateSkipNumberRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		perf PerformanceData
	}{
		{"zero total", PerformanceData{CorrectCount: 0, TotalCount: 0, AvgResponseTimeMs: 1000}},
		{"negative total", PerformanceData{CorrectCount: 0, TotalCount: -3, AvgResponseTimeMs: 1000}},
		{"negative correct", PerformanceData{CorrectCount: -1, TotalCount: 10, AvgResponseTimeMs: 1000}},
		{"correct exceeds total", PerformanceData{CorrectCount: 11, TotalCount: 10, AvgResponseTimeMs: 1000}},
		{"zero response time", PerformanceData{CorrectCount: 5, TotalCount: 10, AvgResponseTimeMs: 0}},
		{"negative response time", PerformanceData{CorrectCount: 5, TotalCount: 10, AvgResponseTimeMs: -50}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CalculateSkipNumber(tc.perf); err == nil {
				t.Fatalf("expected error for %+v", tc.perf)
			} else if !errors.Is(err, ErrInvalidPerformanceData) {
				t.Fatalf("expected ErrInvalidPerformanceData, got %v", err)
			}
		})
	}
}

func TestCalculateSkipNumberDeterministic(t *testing.T) {
	perf := PerformanceData{CorrectCount: 17, TotalCount: 20, AvgResponseTimeMs: 2500}
	first, err := CalculateSkipNumber(perf)
	if err != nil {
		t.Fatalf("CalculateSkipNumber: %v", err)
	}
	for i := 0; i < 100; i++ {
		got, err := CalculateSkipNumber(perf)
		if err != nil {
			t.Fatalf("CalculateSkipNumber: %v", err)
		}
		if got != first {
			t.Fatalf("nondeterministic result: %d then %d", first, got)
		}
	}
}

func TestCalculateSkipNumberMonotoneInCorrectCount(t *testing.T) {
	for _, rt := range []float64{500, 3000, 12000} {
		prev := 0
		for correct := 0; correct <= 20; correct++ {
			skip, err := CalculateSkipNumber(PerformanceData{CorrectCount: correct, TotalCount: 20, AvgResponseTimeMs: rt})
			if err != nil {
				t.Fatalf("CalculateSkipNumber(correct=%d): %v", correct, err)
			}
			if skip < prev {
				t.Fatalf("skip decreased at correct=%d rt=%v: %d < %d", correct, rt, skip, prev)
			}
			prev = skip
		}
	}
}

func TestCalculateSkipNumberPerfectDominates(t *testing.T) {
	perfect, err := CalculateSkipNumber(PerformanceData{CorrectCount: 20, TotalCount: 20, AvgResponseTimeMs: 9000})
	if err != nil {
		t.Fatalf("perfect: %v", err)
	}
	// Best possible partial run: 19/20 answered fast.
	partial, err := CalculateSkipNumber(PerformanceData{CorrectCount: 19, TotalCount: 20, AvgResponseTimeMs: 100})
	if err != nil {
		t.Fatalf("partial: %v", err)
	}
	if perfect <= partial {
		t.Fatalf("perfect skip %d should be markedly larger than partial %d", perfect, partial)
	}
	if perfect < 2*partial {
		t.Fatalf("perfect skip %d not markedly larger than partial %d", perfect, partial)
	}
}

func TestCalculateSkipNumberSpeedBonus(t *testing.T) {
	slow, err := CalculateSkipNumber(PerformanceData{CorrectCount: 10, TotalCount: 10, AvgResponseTimeMs: 8000})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	fast, err := CalculateSkipNumber(PerformanceData{CorrectCount: 10, TotalCount: 10, AvgResponseTimeMs: 1200})
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	if fast <= slow {
		t.Fatalf("fast perfect run %d should beat slow perfect run %d", fast, slow)
	}
}

func TestClampSkip(t *testing.T) {
	cases := []struct {
		raw, n, want int
	}{
		{25, 6, 5},  // overflow clamps to N-1
		{6, 6, 5},   // raw == N clamps to N-1
		{5, 6, 5},   // in range untouched
		{3, 6, 3},   // in range untouched
		{0, 6, 1},   // underflow clamps to 1
		{-4, 6, 1},  // underflow clamps to 1
		{10, 1, 1},  // single-stitch queue pins to 1
		{10, 0, 1},  // empty guard
		{1, 2, 1},   // smallest meaningful queue
		{99, 2, 1},  // N=2 caps at 1
	}
	for _, tc := range cases {
		if got := ClampSkip(tc.raw, tc.n); got != tc.want {
			t.Fatalf("ClampSkip(%d, %d) = %d, want %d", tc.raw, tc.n, got, tc.want)
		}
	}
}
