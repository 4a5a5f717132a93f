package inputfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/osim/internal/osim"
)

func TestParseProcesses_ordersAndFlags(t *testing.T) {
	input := "0, 0, 2, 10, 1, 0, 0, 1\n2, 1, 3, 5, 0, 1, 1, 0\n"

	arrivals, err := parseProcesses(strings.NewReader(input), "test")
	require.NoError(t, err)
	require.Len(t, arrivals, 2)

	assert.Equal(t, osim.ProcessArrival{
		ID: 0, ArrivalTime: 0, Priority: 0, CPUTime: 2, MemoryBlocks: 10,
		UsePrinter: true, UseScanner: false, UseModem: false, UseSata: true,
	}, arrivals[0])

	assert.Equal(t, osim.ProcessArrival{
		ID: 1, ArrivalTime: 2, Priority: 1, CPUTime: 3, MemoryBlocks: 5,
		UsePrinter: false, UseScanner: true, UseModem: true, UseSata: false,
	}, arrivals[1])
}

func TestParseProcesses_skipsBlankLines(t *testing.T) {
	arrivals, err := parseProcesses(strings.NewReader("0, 0, 1, 1, 0, 0, 0, 0\n\n1, 0, 1, 1, 0, 0, 0, 0\n"), "test")
	require.NoError(t, err)
	require.Len(t, arrivals, 2)
	assert.Equal(t, 0, arrivals[0].ID)
	assert.Equal(t, 1, arrivals[1].ID)
}

func TestParseProcesses_malformedLine(t *testing.T) {
	_, err := parseProcesses(strings.NewReader("0, 0, 1\n"), "test")
	assert.Error(t, err)
}
