package inputfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joeycumines/osim/internal/osim"
	"github.com/joeycumines/osim/internal/trace"
)

// DiskScript is the fully parsed disk file: the device's total block count,
// any files preexisting at construction time, and the scripted sequence of
// create/delete operations, each tagged with the process that issues it.
type DiskScript struct {
	NumBlocks int
	Existing  []osim.PreexistingFile
	Ops       []osim.DiskOpRecord
}

// ParseDisk reads the disk file: line 1 is num_blocks, line 2 is
// num_preexisting, followed by that many "name, offset, length" lines, then
// any number of "process_id, op_code, name[, blocks]" lines (op_code 0 is
// create and requires blocks; op_code 1 is delete). Every parsed script
// line is reported to sink via trace.Sink.DiskScriptParsed (sink may be
// nil).
func ParseDisk(path string, sink *trace.Sink) (DiskScript, error) {
	if sink == nil {
		sink = trace.Discard()
	}

	f, err := os.Open(path)
	if err != nil {
		return DiskScript{}, fmt.Errorf("inputfmt: opening %s: %w", path, err)
	}
	defer f.Close()
	return parseDisk(f, path, sink)
}

func parseDisk(r io.Reader, path string, sink *trace.Sink) (DiskScript, error) {
	scanner := bufio.NewScanner(r)

	numBlocks, err := nextInt(scanner, path, "num_blocks")
	if err != nil {
		return DiskScript{}, err
	}

	numExisting, err := nextInt(scanner, path, "num_preexisting")
	if err != nil {
		return DiskScript{}, err
	}

	existing := make([]osim.PreexistingFile, 0, numExisting)
	for i := 0; i < numExisting; i++ {
		line, ok := nextLine(scanner)
		if !ok {
			return DiskScript{}, fmt.Errorf("inputfmt: %s: expected %d preexisting file lines, got %d", path, numExisting, i)
		}
		parts := strings.Split(line, ", ")
		if len(parts) != 3 {
			return DiskScript{}, fmt.Errorf("inputfmt: %s: preexisting file line %d: expected 3 fields, got %d", path, i+1, len(parts))
		}
		name, err := parseName(parts[0])
		if err != nil {
			return DiskScript{}, fmt.Errorf("inputfmt: %s: preexisting file line %d: %w", path, i+1, err)
		}
		offset, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return DiskScript{}, fmt.Errorf("inputfmt: %s: preexisting file line %d: offset: %w", path, i+1, err)
		}
		length, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return DiskScript{}, fmt.Errorf("inputfmt: %s: preexisting file line %d: length: %w", path, i+1, err)
		}
		existing = append(existing, osim.PreexistingFile{Name: name, Segment: osim.Segment{Offset: offset, Length: length}})
	}

	var ops []osim.DiskOpRecord
	seq := 0
	for {
		line, ok := nextLine(scanner)
		if !ok {
			break
		}
		seq++

		parts := strings.Split(line, ", ")
		if len(parts) < 3 {
			return DiskScript{}, fmt.Errorf("inputfmt: %s: script line %d: expected at least 3 fields, got %d", path, seq, len(parts))
		}

		processID, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return DiskScript{}, fmt.Errorf("inputfmt: %s: script line %d: process_id: %w", path, seq, err)
		}
		opCode, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return DiskScript{}, fmt.Errorf("inputfmt: %s: script line %d: op_code: %w", path, seq, err)
		}
		name, err := parseName(parts[2])
		if err != nil {
			return DiskScript{}, fmt.Errorf("inputfmt: %s: script line %d: %w", path, seq, err)
		}

		var op osim.DiskOp
		switch opCode {
		case 0:
			if len(parts) < 4 {
				return DiskScript{}, fmt.Errorf("inputfmt: %s: script line %d: create requires blocks", path, seq)
			}
			blocks, err := strconv.Atoi(strings.TrimSpace(parts[3]))
			if err != nil {
				return DiskScript{}, fmt.Errorf("inputfmt: %s: script line %d: blocks: %w", path, seq, err)
			}
			op = osim.DiskOp{Kind: osim.DiskCreate, Name: name, Blocks: blocks, SeqNum: seq}
			sink.DiskScriptParsed(seq, processID, "create", name, blocks)
		case 1:
			op = osim.DiskOp{Kind: osim.DiskDelete, Name: name, SeqNum: seq}
			sink.DiskScriptParsed(seq, processID, "delete", name, 0)
		default:
			return DiskScript{}, fmt.Errorf("inputfmt: %s: script line %d: unknown op_code %d", path, seq, opCode)
		}

		ops = append(ops, osim.DiskOpRecord{ProcessID: processID, Op: op})
	}
	if err := scanner.Err(); err != nil {
		return DiskScript{}, fmt.Errorf("inputfmt: %s: %w", path, err)
	}

	return DiskScript{NumBlocks: numBlocks, Existing: existing, Ops: ops}, nil
}

func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}

func nextInt(scanner *bufio.Scanner, path, field string) (int, error) {
	line, ok := nextLine(scanner)
	if !ok {
		return 0, fmt.Errorf("inputfmt: %s: missing %s", path, field)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("inputfmt: %s: %s: %w", path, field, err)
	}
	return n, nil
}

func parseName(field string) (rune, error) {
	field = strings.TrimSpace(field)
	r := []rune(field)
	if len(r) != 1 {
		return 0, fmt.Errorf("file name: expected a single character, got %q", field)
	}
	return r[0], nil
}
