package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
	wait time.Duration
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(ctx context.Context) error {
	if s.wait == 0 {
		return s.err
	}

	select {
	case <-time.After(s.wait):
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "inventory-file"}))
	require.NoError(t, registry.Register(&stubChecker{name: "inventory-sqlite"}))

	err := registry.Register(&stubChecker{name: "inventory-file"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "inventory-file")

	assert.ElementsMatch(t, []string{"inventory-file", "inventory-sqlite"}, registry.Names())
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name     string
		checkers []*stubChecker
		want     HealthStatus
	}{
		{
			name: "no checkers",
			want: HealthStatusHealthy,
		},
		{
			name:     "all healthy",
			checkers: []*stubChecker{{name: "a"}, {name: "b"}},
			want:     HealthStatusHealthy,
		},
		{
			name:     "one failing",
			checkers: []*stubChecker{{name: "a"}, {name: "b", err: errors.New("disk full")}},
			want:     HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.want, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))
			assert.False(t, result.Timestamp.IsZero())

			for _, c := range tt.checkers {
				got := result.Checks[c.name]
				require.NotNil(t, got)

				if c.err != nil {
					assert.Equal(t, HealthStatusUnhealthy, got.Status)
					assert.Equal(t, c.err.Error(), got.Message)
				} else {
					assert.Equal(t, HealthStatusHealthy, got.Status)
					assert.Empty(t, got.Message)
				}
			}
		})
	}
}

func TestCheckAll_CheckTimeout(t *testing.T) {
	registry := NewHealthRegistry()
	registry.CheckTimeout = 10 * time.Millisecond

	require.NoError(t, registry.Register(&stubChecker{name: "slow", wait: time.Second}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, context.DeadlineExceeded.Error(), result.Checks["slow"].Message)
}
