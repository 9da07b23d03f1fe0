package proc

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/SM0HANTY/System-Monitor-Tool/pkg/types"
)

// DefaultRoot is the process pseudo-filesystem mount point.
const DefaultRoot = "/proc"

// ListPIDs returns every PID visible under root in directory order. Only
// directories whose entire name is decimal digits count as PIDs. Failing to
// read root itself is the one fatal condition in the whole scan.
func ListPIDs(root string) ([]int, error) {
	entries, err := readDir(root)
	if err != nil {
		return nil, fmt.Errorf("open process root %s: %w", root, err)
	}

	pids := make([]int, 0, len(entries))
	for _, ent := range entries {
		if !ent.IsDir() || !isNumeric(ent.Name()) {
			continue
		}
		pid, err := strconv.Atoi(ent.Name())
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

// ReadProcess builds the snapshot for one PID. The process may have exited
// since enumeration; any source missing at read time leaves its fields at
// their placeholders, so the result is always complete and never an error.
func ReadProcess(root string, pid int) types.ProcessSnapshot {
	snap := types.NewProcessSnapshot(pid)
	dir := filepath.Join(root, strconv.Itoa(pid))

	if data, err := readFile(filepath.Join(dir, "status")); err == nil {
		parseStatus(string(data), &snap)
	}

	if data, err := readFile(filepath.Join(dir, "cmdline")); err == nil {
		if cmd := cmdlineString(data); cmd != "" {
			snap.Cmdline = cmd
		}
	}

	return snap
}

// ReadAll enumerates root and reads every PID found. Per-PID failures degrade
// to placeholder fields; only an unreadable root is returned as an error.
func ReadAll(root string) ([]types.ProcessSnapshot, error) {
	pids, err := ListPIDs(root)
	if err != nil {
		return nil, err
	}

	snaps := make([]types.ProcessSnapshot, 0, len(pids))
	for _, pid := range pids {
		snaps = append(snaps, ReadProcess(root, pid))
	}
	return snaps, nil
}

func parseStatus(text string, snap *types.ProcessSnapshot) {
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "Name:"):
			if name := strings.TrimSpace(line[len("Name:"):]); name != "" {
				snap.Name = name
			}
		case strings.HasPrefix(line, "State:"):
			fields := strings.Fields(line)
			if len(fields) >= 2 && types.ValidState(fields[1][0]) {
				snap.State = fields[1][0]
			}
		case strings.HasPrefix(line, "VmRSS:"):
			snap.ResidentKB = firstInt(line)
		}
	}
}

// cmdlineString turns the NUL-separated argv record into one readable line.
func cmdlineString(data []byte) string {
	for i := range data {
		if data[i] == 0 {
			data[i] = ' '
		}
	}
	return strings.TrimSpace(string(data))
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func firstInt(line string) int64 {
	for _, tok := range strings.Fields(line) {
		if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return v
		}
	}
	return 0
}
