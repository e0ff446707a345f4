package javawire

import "sync/atomic"

// pooledSlot is the single, process-wide recycling slot described in spec §5:
// "one pooled instance at most... contention is resolved by discarding the
// loser." A plain atomic.Pointer with a CompareAndSwap give us exactly that,
// with none of sync.Pool's per-P multiplicity or GC-driven eviction.
var pooledSlot atomic.Pointer[Writer]

// poolEligible reports whether w's configuration matches what Take hands back:
// default buffer capacity and the 4-byte UTF variant, per spec §5's "pool
// consumers receive a writer matching their assumed configuration."
func poolEligible(w *Writer) bool {
	return w.buf.cap() == defaultBufferSize && w.variant == UTF4Byte
}

// put offers w to the pool. If the slot is occupied, w is simply dropped.
func put(w *Writer) {
	pooledSlot.CompareAndSwap(nil, w)
}

// Take returns a pooled Writer matching the default configuration (default
// buffer size, 4-byte UTF variant), or nil if the pool is empty. The caller
// must SetOutput it to a sink before use.
func Take() *Writer {
	for {
		w := pooledSlot.Load()
		if w == nil {
			return nil
		}

		if pooledSlot.CompareAndSwap(w, nil) {
			return w
		}
	}
}
