package inputfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/osim/internal/osim"
)

func TestParseDisk_fullScript(t *testing.T) {
	input := strings.Join([]string{
		"6",
		"2",
		"A, 0, 1",
		"B, 2, 2",
		"0, 0, C, 2",
		"1, 1, B",
	}, "\n") + "\n"

	script, err := parseDisk(strings.NewReader(input), "test", nil)
	require.NoError(t, err)

	assert.Equal(t, 6, script.NumBlocks)
	assert.Equal(t, []osim.PreexistingFile{
		{Name: 'A', Segment: osim.Segment{Offset: 0, Length: 1}},
		{Name: 'B', Segment: osim.Segment{Offset: 2, Length: 2}},
	}, script.Existing)

	require.Len(t, script.Ops, 2)
	assert.Equal(t, osim.DiskOpRecord{ProcessID: 0, Op: osim.DiskOp{Kind: osim.DiskCreate, Name: 'C', Blocks: 2, SeqNum: 1}}, script.Ops[0])
	assert.Equal(t, osim.DiskOpRecord{ProcessID: 1, Op: osim.DiskOp{Kind: osim.DiskDelete, Name: 'B', SeqNum: 2}}, script.Ops[1])
}

func TestParseDisk_noPreexistingOrScript(t *testing.T) {
	script, err := parseDisk(strings.NewReader("10\n0\n"), "test", nil)
	require.NoError(t, err)
	assert.Equal(t, 10, script.NumBlocks)
	assert.Empty(t, script.Existing)
	assert.Empty(t, script.Ops)
}

func TestParseDisk_createMissingBlocksIsAnError(t *testing.T) {
	_, err := parseDisk(strings.NewReader("10\n0\n0, 0, C\n"), "test", nil)
	assert.Error(t, err)
}

func TestParseDisk_unknownOpCodeIsAnError(t *testing.T) {
	_, err := parseDisk(strings.NewReader("10\n0\n0, 9, C\n"), "test", nil)
	assert.Error(t, err)
}
