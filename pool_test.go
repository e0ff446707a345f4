package javawire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// resetPool drains the global slot so tests don't leak state into each other.
func resetPool(t *testing.T) {
	t.Helper()
	pooledSlot.Store(nil)
	t.Cleanup(func() { pooledSlot.Store(nil) })
}

func TestPoolEligible_OnlyDefaultConfigQualifies(t *testing.T) {
	def, _ := New(NewMemorySink(), WithUTF4ByteVariant())
	require.True(t, poolEligible(def))

	wrongVariant, _ := New(NewMemorySink())
	require.False(t, poolEligible(wrongVariant))

	wrongBuffer, _ := New(NewMemorySink(), WithBufferSize(4096), WithUTF4ByteVariant())
	require.False(t, poolEligible(wrongBuffer))
}

func TestRelease_OfEligibleWriterPopulatesPool(t *testing.T) {
	resetPool(t)

	w, _ := New(NewMemorySink(), WithUTF4ByteVariant())
	require.NoError(t, w.Release())

	got := Take()
	require.Same(t, w, got)
}

func TestRelease_OfIneligibleWriterLeavesPoolEmpty(t *testing.T) {
	resetPool(t)

	w, _ := New(NewMemorySink(), WithBufferSize(4096), WithUTF4ByteVariant())
	require.NoError(t, w.Release())

	require.Nil(t, Take())
}

func TestTake_EmptyPoolReturnsNil(t *testing.T) {
	resetPool(t)

	require.Nil(t, Take())
}

func TestPut_SecondOfferIsDiscardedWhileSlotOccupied(t *testing.T) {
	resetPool(t)

	first, _ := New(NewMemorySink(), WithUTF4ByteVariant())
	second, _ := New(NewMemorySink(), WithUTF4ByteVariant())

	put(first)
	put(second)

	got := Take()
	require.Same(t, first, got)
	require.Nil(t, Take(), "slot should be empty after the one occupant is taken")
}

func TestTake_ThenReleaseRefillsSlot(t *testing.T) {
	resetPool(t)

	w, _ := New(NewMemorySink(), WithUTF4ByteVariant())
	require.NoError(t, w.Release())

	taken := Take()
	require.Same(t, w, taken)
	require.Nil(t, Take())

	taken.SetOutput(NewMemorySink())
	require.NoError(t, taken.WriteByte(1))
	require.NoError(t, taken.Flush())
	require.NoError(t, taken.Release())

	require.Same(t, taken, Take())
}
