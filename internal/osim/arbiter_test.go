package osim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceArbiter_grantRecordsHolding(t *testing.T) {
	a := NewResourceArbiter(&Config{ResourceUnits: map[Resource]int{Scanner: 1}}, nil)
	p := &Process{ID: 1}

	granted, ok := a.Request(0, p, Scanner)
	require.True(t, ok)
	assert.Same(t, p, granted)
	assert.Equal(t, []Resource{Scanner}, p.Resources)
}

func TestResourceArbiter_releaseAllUnblocksAndClears(t *testing.T) {
	a := NewResourceArbiter(&Config{ResourceUnits: map[Resource]int{Scanner: 1, Printer: 1}}, nil)
	holder := &Process{ID: 1}
	waiter := &Process{ID: 2}

	_, ok := a.Request(0, holder, Scanner)
	require.True(t, ok)
	_, ok = a.Request(0, waiter, Scanner)
	require.False(t, ok)

	unblocked := a.ReleaseAll(1, holder)
	require.Len(t, unblocked, 1)
	assert.Same(t, waiter, unblocked[0])
	assert.Equal(t, []Resource{Scanner}, waiter.Resources)
	assert.Nil(t, holder.Resources)
}

func TestResourceArbiter_releaseAllRoundTripsWithNoWaiters(t *testing.T) {
	a := NewResourceArbiter(&Config{ResourceUnits: map[Resource]int{Scanner: 1, Modem: 1}}, nil)
	p := &Process{ID: 1}

	_, ok := a.Request(0, p, Scanner)
	require.True(t, ok)
	_, ok = a.Request(0, p, Modem)
	require.True(t, ok)
	assert.False(t, a.AnyQueued())

	unblocked := a.ReleaseAll(1, p)
	assert.Empty(t, unblocked)
	assert.False(t, a.AnyQueued())
	assert.Nil(t, p.Resources)

	// units are fully restored: a fresh process can acquire both again
	p2 := &Process{ID: 2}
	_, ok = a.Request(0, p2, Scanner)
	assert.True(t, ok)
	_, ok = a.Request(0, p2, Modem)
	assert.True(t, ok)
}

func TestResourceArbiter_anyQueued(t *testing.T) {
	a := NewResourceArbiter(&Config{ResourceUnits: map[Resource]int{Scanner: 1}}, nil)
	assert.False(t, a.AnyQueued())

	_, _ = a.Request(0, &Process{ID: 1}, Scanner)
	_, ok := a.Request(0, &Process{ID: 2}, Scanner)
	require.False(t, ok)
	assert.True(t, a.AnyQueued())
}
