package system

import (
	"strconv"
	"strings"

	"github.com/SM0HANTY/System-Monitor-Tool/pkg/types"
)

// Default source paths on Linux.
const (
	DefaultMeminfoPath = "/proc/meminfo"
	DefaultLoadavgPath = "/proc/loadavg"
)

// Reader parses the aggregate memory and load-average sources.
type Reader struct {
	MeminfoPath string
	LoadavgPath string
}

// NewReader returns a Reader bound to the standard /proc sources.
func NewReader() *Reader {
	return &Reader{
		MeminfoPath: DefaultMeminfoPath,
		LoadavgPath: DefaultLoadavgPath,
	}
}

// Snapshot reads both sources and never fails: an unreadable source or a
// missing key leaves the corresponding field at its zero default.
func (r *Reader) Snapshot() types.SystemSnapshot {
	snap := types.SystemSnapshot{LoadAvg: types.DefaultLoadAvg}

	if data, err := readFile(r.MeminfoPath); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			switch {
			case strings.HasPrefix(line, "MemTotal:"):
				snap.TotalKB = firstInt(line)
			case strings.HasPrefix(line, "MemFree:"):
				snap.FreeKB = firstInt(line)
			}
		}
	}

	if data, err := readFile(r.LoadavgPath); err == nil {
		fields := strings.Fields(string(data))
		if len(fields) >= 3 {
			snap.LoadAvg = strings.Join(fields[:3], " ")
		}
	}

	return snap
}

// firstInt extracts the first integer token from a "Key: value unit" line.
func firstInt(line string) int64 {
	for _, tok := range strings.Fields(line) {
		if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return v
		}
	}
	return 0
}
