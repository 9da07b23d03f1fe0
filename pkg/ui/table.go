package ui

import (
	"fmt"
	"strings"

	"github.com/SM0HANTY/System-Monitor-Tool/pkg/types"
)

// Table geometry. The block is always the same size: innerWidth columns
// between the border pipes and a constant number of data rows per frame.
const (
	innerWidth = 86
	nameCol    = 20
	cmdCol     = 36
)

const tableTitle = "--- System Monitor (Linux) ---"

// RenderTable draws the full bordered frame: title, memory/load summary,
// process count, column header, and exactly rows data lines. Fewer snapshots
// than rows pad with blanks; extras beyond rows are dropped.
func RenderTable(sys types.SystemSnapshot, top []types.ProcessSnapshot, totalProcs, rows int) string {
	var b strings.Builder

	border := "+" + strings.Repeat("-", innerWidth) + "+\n"
	b.WriteString(border)
	b.WriteString(row(center(tableTitle)))
	b.WriteString(row(""))
	b.WriteString(row(summaryLine(sys)))
	b.WriteString(row(fmt.Sprintf(" Total Processes: %d", totalProcs)))
	b.WriteString(row(""))
	b.WriteString(row(fmt.Sprintf(" %-8s%-20s%-4s%12s  %-36s", "PID", "NAME", "S", "MEM (MB)", "COMMAND")))
	b.WriteString("|" + strings.Repeat("-", innerWidth) + "|\n")

	for i := 0; i < rows; i++ {
		if i >= len(top) {
			b.WriteString(row(""))
			continue
		}
		p := top[i]
		b.WriteString(row(fmt.Sprintf(" %-8d%-20s%-4c%11.1fM  %-36s",
			p.PID,
			TruncateName(p.Name),
			p.State,
			float64(p.ResidentKB)/1024.0,
			TruncateCommand(p.Cmdline),
		)))
	}

	b.WriteString(border)
	return b.String()
}

// TruncateName bounds a process name to the NAME column, marking the cut
// with a two-character ellipsis.
func TruncateName(s string) string {
	if len(s) <= nameCol {
		return s
	}
	return s[:nameCol-2] + ".."
}

// TruncateCommand bounds a command line to the COMMAND column, marking the
// cut with a three-character ellipsis.
func TruncateCommand(s string) string {
	if len(s) <= cmdCol {
		return s
	}
	return s[:cmdCol-3] + "..."
}

func summaryLine(sys types.SystemSnapshot) string {
	usedGB := float64(sys.TotalKB-sys.FreeKB) / 1024.0 / 1024.0
	totalGB := float64(sys.TotalKB) / 1024.0 / 1024.0
	freeGB := float64(sys.FreeKB) / 1024.0 / 1024.0

	mem := fmt.Sprintf(" Memory: %7.2fG used / %7.2fG total (%7.2fG free)", usedGB, totalGB, freeGB)
	load := fmt.Sprintf("Load Avg: %s ", sys.LoadAvg)

	gap := innerWidth - len(mem) - len(load)
	if gap < 1 {
		gap = 1
	}
	return mem + strings.Repeat(" ", gap) + load
}

// row pads content to the fixed inner width and wraps it in border pipes.
func row(content string) string {
	if len(content) < innerWidth {
		content += strings.Repeat(" ", innerWidth-len(content))
	}
	return "|" + content + "|\n"
}

func center(s string) string {
	pad := (innerWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
