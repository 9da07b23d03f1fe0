package types

// DefaultRows controls how many process rows the table displays per refresh.
const DefaultRows = 25

// DefaultLoadAvg is the load-average triple reported when /proc/loadavg
// cannot be read.
const DefaultLoadAvg = "0.0 0.0 0.0"

// Placeholders used when a per-process source is missing or unreadable.
const (
	DefaultName   = "N/A"
	KernelCmdline = "[kernel]"
)

// Scheduler state codes recognized in the State field of /proc status files.
// Anything else degrades to StateUnknown.
const (
	StateUnknown   = '?'
	StateRunning   = 'R'
	StateSleeping  = 'S'
	StateDiskSleep = 'D'
	StateZombie    = 'Z'
	StateStopped   = 'T'
)

// SystemSnapshot holds aggregate memory and load figures for one refresh cycle.
type SystemSnapshot struct {
	TotalKB int64
	FreeKB  int64
	LoadAvg string
}

// ProcessSnapshot describes a single PID as observed during one scan.
// Fields other than PID fall back to their placeholders when the process
// vanishes between enumeration and read.
type ProcessSnapshot struct {
	PID        int
	Name       string
	State      byte
	ResidentKB int64
	Cmdline    string
}

// NewProcessSnapshot returns a snapshot for pid with every field defaulted.
func NewProcessSnapshot(pid int) ProcessSnapshot {
	return ProcessSnapshot{
		PID:     pid,
		Name:    DefaultName,
		State:   StateUnknown,
		Cmdline: KernelCmdline,
	}
}

// ValidState reports whether b is one of the recognized scheduler state codes.
func ValidState(b byte) bool {
	switch b {
	case StateRunning, StateSleeping, StateDiskSleep, StateZombie, StateStopped:
		return true
	}
	return false
}
