package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open trial request to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open trial request, got %s", state)
	}
}

func TestNamedCircuitBreaker_ReportsTransitions(t *testing.T) {
	type transition struct {
		name     string
		from, to CircuitState
	}
	var seen []transition

	b := NewNamedCircuitBreaker("wyscout", CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Second,
		HalfOpenMaxReq:   1,
	}, func(name string, from, to CircuitState) {
		seen = append(seen, transition{name: name, from: from, to: to})
	})
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	b.RecordFailure()
	now = now.Add(2 * time.Second)
	require.NoError(t, b.Allow())
	b.RecordFailure()

	require.Equal(t, []transition{
		{name: "wyscout", from: CircuitStateClosed, to: CircuitStateOpen},
		{name: "wyscout", from: CircuitStateOpen, to: CircuitStateHalfOpen},
		{name: "wyscout", from: CircuitStateHalfOpen, to: CircuitStateOpen},
	}, seen)
}

func TestNamedCircuitBreaker_DisabledIsNil(t *testing.T) {
	b := NewNamedCircuitBreaker("anubis", CircuitBreakerConfig{Enabled: false}, nil)
	require.Nil(t, b)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	b.RecordSuccess()
	require.Equal(t, CircuitStateClosed, b.State())
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	require.Equal(t, DefaultCircuitBreakerConfig(), got)
}
