package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/fridgy/internal/platform/logging"
)

var (
	stockedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fridgy",
		Name:      "ingredients_stocked",
		Help:      "Ingredients currently in the fridge.",
	})

	expiredGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fridgy",
		Name:      "ingredients_expired",
		Help:      "Stocked ingredients whose expiry date has passed.",
	})
)

// ExpiryMonitor periodically publishes how many stocked ingredients have expired.
type ExpiryMonitor struct {
	service  *InventoryService
	interval time.Duration
	logger   *slog.Logger
}

// NewExpiryMonitor creates a monitor over service that refreshes every interval.
func NewExpiryMonitor(service *InventoryService, interval time.Duration, logger *slog.Logger) *ExpiryMonitor {
	if logger == nil {
		logger = slog.Default()
	}

	return &ExpiryMonitor{service: service, interval: interval, logger: logger}
}

// Refresh updates the gauges once and returns the expired ingredient count.
func (m *ExpiryMonitor) Refresh(ctx context.Context) int {
	stocked := m.service.List(ctx, ListFilter{})
	expired := m.service.List(ctx, ListFilter{ExpiredOnly: true})

	stockedGauge.Set(float64(len(stocked)))
	expiredGauge.Set(float64(len(expired)))

	if len(expired) > 0 {
		names := make([]string, 0, len(expired))
		for _, item := range expired {
			names = append(names, item.Name().String())
		}

		logging.FromContextOr(ctx, m.logger).InfoContext(ctx, "expired ingredients in fridge",
			slog.Int("count", len(expired)),
			slog.Any("names", names),
		)
	}

	return len(expired)
}

// Run refreshes immediately and then on every tick until ctx is done.
// It returns nil on cancellation.
func (m *ExpiryMonitor) Run(ctx context.Context) error {
	if m.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.Refresh(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
