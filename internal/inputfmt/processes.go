// Package inputfmt parses the two input text files describing a
// simulation run (process arrivals and the disk script) into the plain
// data structures osim's constructors consume. Apart from internal/config's
// optional YAML loader, it is the only code in the module that touches the
// filesystem.
package inputfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joeycumines/osim/internal/osim"
)

// ParseProcesses reads the process arrival file: one line per process,
// fields comma-space separated in order arrival_time, priority, cpu_time,
// memory_blocks, use_printer, use_scanner, use_modem, use_sata. Blank lines
// are skipped and not counted: a process's ID is its zero-based index among
// the non-blank lines.
func ParseProcesses(path string) ([]osim.ProcessArrival, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("inputfmt: opening %s: %w", path, err)
	}
	defer f.Close()
	return parseProcesses(f, path)
}

func parseProcesses(r io.Reader, path string) ([]osim.ProcessArrival, error) {
	var arrivals []osim.ProcessArrival

	scanner := bufio.NewScanner(r)
	id := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields, err := splitInts(line, 8)
		if err != nil {
			return nil, fmt.Errorf("inputfmt: %s: line %d: %w", path, id+1, err)
		}

		arrivals = append(arrivals, osim.ProcessArrival{
			ID:           id,
			ArrivalTime:  fields[0],
			Priority:     fields[1],
			CPUTime:      fields[2],
			MemoryBlocks: fields[3],
			UsePrinter:   fields[4] != 0,
			UseScanner:   fields[5] != 0,
			UseModem:     fields[6] != 0,
			UseSata:      fields[7] != 0,
		})
		id++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("inputfmt: %s: %w", path, err)
	}
	return arrivals, nil
}

// splitInts splits line on ", " and parses exactly want integer fields.
// The sign of each field is not checked.
func splitInts(line string, want int) ([]int, error) {
	parts := strings.Split(line, ", ")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d fields, got %d", want, len(parts))
	}
	out := make([]int, want)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}
