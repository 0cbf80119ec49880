// Package input implements the two external file readers spec'd in
// spec.md §6: the trace (process/VMA/instruction) file and the random
// number replay file. Lexing, not policy — the core never sees raw
// text.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tuannm99/vmsim/internal/process"
	"github.com/tuannm99/vmsim/internal/sim"
	"github.com/tuannm99/vmsim/internal/vma"
)

// lineSource yields non-comment, non-blank lines from a trace file.
// Comment lines (leading '#') may appear between any two tokens and are
// transparently skipped, per spec.md §6.
type lineSource struct {
	sc *bufio.Scanner
}

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{sc: bufio.NewScanner(r)}
}

func (l *lineSource) next() (string, bool) {
	for l.sc.Scan() {
		line := strings.TrimSpace(l.sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		return line, true
	}
	return "", false
}

// ReadTrace parses the process pool and instruction stream out of r.
func ReadTrace(r io.Reader) ([]*process.Process, []sim.Instruction, error) {
	src := newLineSource(r)

	n, err := nextInt(src, "process count")
	if err != nil {
		return nil, nil, err
	}

	procs := make([]*process.Process, n)
	for pid := 0; pid < n; pid++ {
		numVMAs, err := nextInt(src, fmt.Sprintf("vma count for process %d", pid))
		if err != nil {
			return nil, nil, err
		}

		vmas := make(vma.List, numVMAs)
		for j := 0; j < numVMAs; j++ {
			line, ok := src.next()
			if !ok {
				return nil, nil, fmt.Errorf("input: expected vma %d for process %d, got EOF", j, pid)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, nil, fmt.Errorf("input: malformed vma line %q for process %d", line, pid)
			}
			start, err1 := strconv.Atoi(fields[0])
			end, err2 := strconv.Atoi(fields[1])
			wp, err3 := strconv.Atoi(fields[2])
			fm, err4 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				return nil, nil, fmt.Errorf("input: malformed vma line %q for process %d", line, pid)
			}
			vmas[j] = vma.VMA{
				ID:             j,
				StartVPage:     start,
				EndVPage:       end,
				WriteProtected: wp != 0,
				FileMapped:     fm != 0,
			}
		}
		procs[pid] = process.New(pid, vmas)
	}

	var instructions []sim.Instruction
	for {
		line, ok := src.next()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 1 {
			return nil, nil, fmt.Errorf("input: malformed instruction line %q", line)
		}
		arg, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("input: malformed instruction argument in %q", line)
		}
		instructions = append(instructions, sim.Instruction{
			ID:  len(instructions),
			Op:  sim.Opcode(fields[0][0]),
			Arg: arg,
		})
	}

	if err := src.sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("input: reading trace: %w", err)
	}

	return procs, instructions, nil
}

func nextInt(src *lineSource, what string) (int, error) {
	line, ok := src.next()
	if !ok {
		return 0, fmt.Errorf("input: expected %s, got EOF", what)
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("input: expected %s, got %q: %w", what, line, err)
	}
	return v, nil
}
