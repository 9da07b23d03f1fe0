package monitor

import (
	"context"
	"log"
	"time"

	"github.com/SM0HANTY/System-Monitor-Tool/pkg/collector/proc"
	"github.com/SM0HANTY/System-Monitor-Tool/pkg/collector/system"
	"github.com/SM0HANTY/System-Monitor-Tool/pkg/config"
	"github.com/SM0HANTY/System-Monitor-Tool/pkg/report"
	"github.com/SM0HANTY/System-Monitor-Tool/pkg/ui"
)

// Clock abstracts the inter-cycle pause so tests drive cycles without real
// timing.
type Clock interface {
	Pause(ctx context.Context, d time.Duration) error
}

type tickerClock struct{}

func (tickerClock) Pause(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Monitor runs the collect/rank/render/sleep cycle until the context is done
// or the process root becomes unreadable.
type Monitor struct {
	Config config.Config
	Screen ui.Screen
	Logger *log.Logger

	// Clock defaults to a real timer when nil.
	Clock Clock

	// Updates optionally delivers reloaded configs between cycles.
	Updates <-chan config.Config

	// ShowBanner puts the wordmark above each frame.
	ShowBanner bool
}

// Run loops forever. The only error paths are context cancellation and the
// fatal process-root failure; every other missing source degrades inside the
// collectors.
func (m *Monitor) Run(ctx context.Context) error {
	clock := m.Clock
	if clock == nil {
		clock = tickerClock{}
	}

	for {
		m.applyUpdates()

		if err := m.Cycle(); err != nil {
			return err
		}
		if err := clock.Pause(ctx, m.Config.Interval); err != nil {
			return err
		}
	}
}

// Cycle performs one collect/rank/render pass.
func (m *Monitor) Cycle() error {
	sys := system.Reader{
		MeminfoPath: m.Config.Meminfo,
		LoadavgPath: m.Config.Loadavg,
	}
	summary := sys.Snapshot()

	snaps, err := proc.ReadAll(m.Config.ProcRoot)
	if err != nil {
		return err
	}

	top := report.TopByResident(snaps, m.Config.Rows)

	frame := ui.RenderTable(summary, top, len(snaps), m.Config.Rows)
	if m.ShowBanner {
		ui.Draw(m.Screen, ui.Banner(), frame)
	} else {
		ui.Draw(m.Screen, frame)
	}
	return nil
}

func (m *Monitor) applyUpdates() {
	if m.Updates == nil {
		return
	}
	select {
	case cfg := <-m.Updates:
		m.Config = cfg
		if m.Logger != nil {
			m.Logger.Printf("settings applied: interval=%v rows=%d", cfg.Interval, cfg.Rows)
		}
	default:
	}
}
