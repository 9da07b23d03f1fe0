package monitor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SM0HANTY/System-Monitor-Tool/pkg/config"
)

type stubScreen struct {
	clears int
	frames []string
}

func (s *stubScreen) Clear()            { s.clears++ }
func (s *stubScreen) Print(text string) { s.frames = append(s.frames, text) }

// cancelClock lets a fixed number of pauses through, then cancels the run.
type cancelClock struct {
	cancel    context.CancelFunc
	remaining int
}

func (c *cancelClock) Pause(ctx context.Context, d time.Duration) error {
	c.remaining--
	if c.remaining < 0 {
		c.cancel()
	}
	return ctx.Err()
}

// fakeProcTree lays out a minimal process pseudo-filesystem in a temp dir.
func fakeProcTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}

	write("meminfo", "MemTotal:       1000 kB\nMemFree:        200 kB\n")
	write("loadavg", "0.10 0.20 0.30 1/200 999\n")
	write("101/status", "Name:\tbig\nState:\tR (running)\nVmRSS:\t2048 kB\n")
	write("101/cmdline", "/usr/bin/big\x00--all\x00")
	write("202/status", "Name:\tsmall\nState:\tS (sleeping)\nVmRSS:\t1024 kB\n")
	write("202/cmdline", "/usr/bin/small\x00")
	return root
}

func testConfig(root string, rows int) config.Config {
	return config.Config{
		Interval: time.Millisecond,
		Rows:     rows,
		ProcRoot: root,
		Meminfo:  filepath.Join(root, "meminfo"),
		Loadavg:  filepath.Join(root, "loadavg"),
	}
}

func TestCycleRendersRankedFrame(t *testing.T) {
	root := fakeProcTree(t)
	screen := &stubScreen{}
	m := &Monitor{Config: testConfig(root, 5), Screen: screen}

	if err := m.Cycle(); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if screen.clears != 1 || len(screen.frames) != 1 {
		t.Fatalf("expected one clear and one frame, got %d/%d", screen.clears, len(screen.frames))
	}

	frame := screen.frames[0]
	if !strings.Contains(frame, "Total Processes: 2") {
		t.Fatalf("missing process count:\n%s", frame)
	}
	if !strings.Contains(frame, "0.10 0.20 0.30") {
		t.Fatalf("missing load average:\n%s", frame)
	}
	bigAt := strings.Index(frame, "big")
	smallAt := strings.Index(frame, "small")
	if bigAt < 0 || smallAt < 0 || bigAt > smallAt {
		t.Fatalf("expected big (2048 kB) ranked above small (1024 kB):\n%s", frame)
	}
}

func TestRunRendersEveryCycleUntilCanceled(t *testing.T) {
	root := fakeProcTree(t)
	screen := &stubScreen{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := &Monitor{
		Config: testConfig(root, 5),
		Screen: screen,
		Clock:  &cancelClock{cancel: cancel, remaining: 2},
	}

	err := m.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(screen.frames) != 3 {
		t.Fatalf("expected 3 frames for 3 cycles, got %d", len(screen.frames))
	}
}

func TestRunFatalWhenProcRootUnreadable(t *testing.T) {
	screen := &stubScreen{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := &Monitor{
		Config: testConfig(filepath.Join(t.TempDir(), "missing"), 5),
		Screen: screen,
		Clock:  &cancelClock{cancel: cancel, remaining: 100},
	}

	err := m.Run(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		t.Fatalf("expected fatal proc root error, got %v", err)
	}
	if len(screen.frames) != 0 {
		t.Fatalf("nothing should render on a fatal error, got %d frames", len(screen.frames))
	}
}

func TestRunAppliesConfigUpdateBetweenCycles(t *testing.T) {
	root := fakeProcTree(t)
	screen := &stubScreen{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan config.Config, 1)
	m := &Monitor{
		Config:  testConfig(root, 5),
		Screen:  screen,
		Clock:   &cancelClock{cancel: cancel, remaining: 1},
		Updates: updates,
	}
	updates <- testConfig(root, 10)

	err := m.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(screen.frames) == 0 {
		t.Fatalf("expected at least one frame")
	}

	// 10 data rows plus the 9 fixed lines of the frame
	lines := strings.Split(strings.TrimRight(screen.frames[0], "\n"), "\n")
	if len(lines) != 10+9 {
		t.Fatalf("update should take effect before the first render: %d lines", len(lines))
	}
}
