package osim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_refillOrder(t *testing.T) {
	s := NewScheduler()
	low := &Process{ID: 1, Priority: 2}
	high := &Process{ID: 2, Priority: 0}

	s.Add(low, 0)
	s.Add(high, 0)

	require.Same(t, low, s.Current()) // low was admitted first and the slot was empty
}

func TestScheduler_realTimeNeverPreempted(t *testing.T) {
	s := NewScheduler()
	p0 := &Process{ID: 1, Priority: 0}
	s.Add(p0, 0)

	for t2 := 1; t2 <= 5; t2++ {
		s.OnTick(t2)
		assert.Same(t, p0, s.Current())
	}
}

func TestScheduler_quantumPreemptionAges(t *testing.T) {
	s := NewScheduler()
	p1 := &Process{ID: 1, Priority: 1}
	s.Add(p1, 0)
	require.Same(t, p1, s.Current())

	s.OnTick(1) // t - startTime = 1 >= Quantum(1): preempt
	assert.Equal(t, 2, p1.Priority)
	assert.Same(t, p1, s.Current()) // nothing else was ready, so it re-enters the (now empty) slot
}

func TestScheduler_priorityClampsAtThree(t *testing.T) {
	s := NewScheduler()
	p := &Process{ID: 1, Priority: 2}
	s.Add(p, 0)

	s.OnTick(1) // priority 2 -> would age to 3, clamped to queue index 2 by Add
	assert.Equal(t, 3, p.Priority)
	assert.Same(t, p, s.Current())

	s.OnTick(2) // priority already 3 (not < 3), stays 3, is preempted again (t-start=1>=1)
	assert.Equal(t, 3, p.Priority)
	assert.Same(t, p, s.Current())
}

func TestScheduler_blockCurrentVacatesSlot(t *testing.T) {
	s := NewScheduler()
	p := &Process{ID: 1, Priority: 1}
	s.Add(p, 0)

	blocked := s.BlockCurrent()
	assert.Same(t, p, blocked)
	assert.Nil(t, s.Current())
	assert.False(t, s.HasAny())
}

func TestScheduler_preemptionRefillsFromReadyQueue(t *testing.T) {
	s := NewScheduler()
	a := &Process{ID: 1, Priority: 1}
	b := &Process{ID: 2, Priority: 1}
	s.Add(a, 0)
	require.Same(t, a, s.Current())

	s.Add(b, 0) // a is still running; b waits in Q[1]

	s.OnTick(1) // preempt a (now priority 2), refill from Q[1]: b
	assert.Same(t, b, s.Current())
}

func TestScheduler_hasAny(t *testing.T) {
	s := NewScheduler()
	assert.False(t, s.HasAny())
	s.Add(&Process{ID: 1, Priority: 0}, 0)
	assert.True(t, s.HasAny())
}
