package utils

import (
	"context"
	"math/rand"
	"time"

	"flash_sale_back_end/internal/config"
)

// Latency simule la charge d'une flash sale. La valeur zéro désactive le délai.
type Latency struct {
	Min time.Duration
	Max time.Duration
	// rnd retourne un entier dans [0, n) ; remplaçable en test
	rnd func(n int64) int64
}

func NewLatency(l config.Latency, enabled bool) Latency {
	if !enabled {
		return Latency{}
	}
	return Latency{Min: l.Min, Max: l.Max}
}

// Pick choisit un délai uniforme dans [Min, Max] (bornes incluses, à la milliseconde)
func (l Latency) Pick() time.Duration {
	if l.Max <= 0 {
		return 0
	}
	lo, hi := l.Min.Milliseconds(), l.Max.Milliseconds()
	if hi <= lo {
		return time.Duration(lo) * time.Millisecond
	}
	rnd := l.rnd
	if rnd == nil {
		rnd = rand.Int63n
	}
	return time.Duration(lo+rnd(hi-lo+1)) * time.Millisecond
}

// Simulate attend le délai choisi ou la fin du contexte, selon ce qui arrive en premier.
// Retourne le délai effectivement attendu.
func (l Latency) Simulate(ctx context.Context) time.Duration {
	d := l.Pick()
	if d <= 0 {
		return 0
	}

	start := time.Now()
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return d
	case <-ctx.Done():
		return time.Since(start)
	}
}
