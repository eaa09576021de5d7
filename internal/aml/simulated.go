package aml

import (
	"context"
	"math/rand"
	"time"
)

// SimulatedVerifier stands in for the real screening provider in dev and
// test environments. It sleeps for Delay, then passes with PassRate
// probability (0.9 matches the historical mock).
type SimulatedVerifier struct {
	PassRate float64
	Delay    time.Duration
}

func NewSimulatedVerifier() *SimulatedVerifier {
	return &SimulatedVerifier{PassRate: 0.9, Delay: 2 * time.Second}
}

func (s *SimulatedVerifier) Screen(ctx context.Context, req Request) (Result, error) {
	select {
	case <-time.After(s.Delay):
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
	if rand.Float64() < s.PassRate {
		return Result{Passed: true, Detail: "no adverse findings"}, nil
	}
	return Result{Passed: false, Detail: "screening hit requires manual review"}, nil
}
