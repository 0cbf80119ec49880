// Package report implements the four optional dump printers: page
// tables, the frame table, per-process summaries, and the total-cost
// line.
package report

import (
	"fmt"
	"io"

	"github.com/tuannm99/vmsim/internal/frame"
	"github.com/tuannm99/vmsim/internal/process"
	"github.com/tuannm99/vmsim/internal/pte"
)

// Flags is the subset of {P,F,S} requested on the CLI via -o.
type Flags struct {
	PageTables bool
	FrameTable bool
	Summary    bool
}

// ParseFlags interprets the -o option's character set. Unknown
// characters are ignored, matching the reference implementation's
// string::find-based check for each of P, F, S independently.
func ParseFlags(raw string) Flags {
	var f Flags
	for _, c := range raw {
		switch c {
		case 'P':
			f.PageTables = true
		case 'F':
			f.FrameTable = true
		case 'S':
			f.Summary = true
		}
	}
	return f
}

// PageTables prints "PT[pid]:" followed by one field per virtual page
// (" #", " *" or " vpage:RMS"), one line per process in pid order.
func PageTables(out io.Writer, processes []*process.Process) {
	for _, p := range processes {
		fmt.Fprintf(out, "PT[%d]:", p.PID)
		for vpage := 0; vpage < pte.PagesPerProcess; vpage++ {
			e := &p.PageTable[vpage]
			switch {
			case !e.Valid && e.Pagedout:
				fmt.Fprint(out, " #")
			case !e.Valid:
				fmt.Fprint(out, " *")
			default:
				fmt.Fprintf(out, " %d:%s%s%s", vpage, bit(e.Referenced, "R"), bit(e.Modified, "M"), bit(e.Pagedout, "S"))
			}
		}
		fmt.Fprintln(out)
	}
}

func bit(set bool, letter string) string {
	if set {
		return letter
	}
	return "-"
}

// FrameTable prints "FT:" followed by one field per frame, in frame id
// order: " *" when free, " pid:vpage" when busy.
func FrameTable(out io.Writer, frames *frame.Table) {
	fmt.Fprint(out, "FT:")
	for i := range frames.Frames {
		f := &frames.Frames[i]
		if f.Free() {
			fmt.Fprint(out, " *")
		} else {
			fmt.Fprintf(out, " %d:%d", f.Owner.PID, f.Owner.VPage)
		}
	}
	fmt.Fprintln(out)
}

// Summary prints one PROC[pid] counters line per process, in pid order.
func Summary(out io.Writer, processes []*process.Process) {
	for _, p := range processes {
		c := p.Counters
		fmt.Fprintf(out, "PROC[%d]: U=%d M=%d I=%d O=%d FI=%d FO=%d Z=%d SV=%d SP=%d\n",
			p.PID, c.Unmaps, c.Maps, c.Ins, c.Outs, c.Fins, c.Fouts, c.Zeros, c.Segv, c.Segprot)
	}
}

// TotalCost prints the single TOTALCOST summary line.
func TotalCost(out io.Writer, instCount, ctxSwitches, processExits, cost uint64) {
	fmt.Fprintf(out, "TOTALCOST %d %d %d %d %d\n", instCount, ctxSwitches, processExits, cost, pte.Size)
}
