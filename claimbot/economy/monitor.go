package economy

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/claim-bot/claimbot/ledger"
	"github.com/go-co-op/gocron/v2"
)

// LedgerMonitor periodically logs ledger totals.
type LedgerMonitor struct {
	ledger    *ledger.Ledger
	interval  time.Duration
	scheduler gocron.Scheduler
}

func NewLedgerMonitor(l *ledger.Ledger, interval time.Duration) *LedgerMonitor {
	return &LedgerMonitor{
		ledger:   l,
		interval: interval,
	}
}

// Start schedules the report. It is a no-op when the interval is not positive.
func (m *LedgerMonitor) Start() error {
	if m.interval <= 0 {
		slog.Info("Ledger report disabled", slog.String("type", "sys"))
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(m.interval),
		gocron.NewTask(func() { m.Report() }),
		gocron.WithName("ledger-report"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("failed to schedule ledger report: %w", err)
	}

	scheduler.Start()
	m.scheduler = scheduler

	slog.Info("Ledger report scheduled",
		slog.String("type", "sys"),
		slog.Duration("interval", m.interval))
	return nil
}

// Report logs the current totals and returns them.
func (m *LedgerMonitor) Report() ledger.Totals {
	totals := m.ledger.Totals()
	slog.Info("Ledger report",
		slog.String("type", "ledger"),
		slog.Int("accounts", totals.Accounts),
		slog.Int("claimed_accounts", totals.ClaimedAccounts),
		slog.Int64("credits", totals.Credits),
		slog.Int64("claims", totals.Claims),
	)
	return totals
}

func (m *LedgerMonitor) Stop() error {
	if m.scheduler == nil {
		return nil
	}
	return m.scheduler.Shutdown()
}
