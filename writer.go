/*
 * Copyright 2020 Torben Schinke
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package javawire

import (
	"io"
	"math"
)

// A Writer serializes primitive values and strings to a ByteSink in the fixed
// big-endian wire format compatible with the classical Java DataOutput /
// Modified UTF-8 encoding. A Writer is not safe for concurrent use.
//
// Every Write method returns its error directly instead of latching a sticky
// first-error and turning later calls into no-ops: spec's propagation policy only requires
// that every error reach the caller, and explicit per-call returns are the
// idiomatic Go shape for that.
//
// Example:
//
//	sink := javawire.NewMemorySink()
//	w, err := javawire.New(sink)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.WriteInt(1234); err != nil {
//		return err
//	}
//	if err := w.WriteUTF("hello world"); err != nil {
//		return err
//	}
//	if err := w.Flush(); err != nil {
//		return err
//	}
type Writer struct {
	buf      *stagingBuffer
	sink     ByteSink
	variant  UTFVariant
	intern   *internTable
	released bool
}

// New creates a Writer bound to sink. It fails with ErrInvalidConfig if the
// resolved buffer capacity (see WithBufferSize) is below 8 bytes.
func New(sink ByteSink, opts ...Option) (*Writer, error) {
	cfg := resolveConfig(opts)
	if cfg.bufferSize < minBufferSize {
		return nil, ErrInvalidConfig
	}

	return &Writer{
		buf:     newStagingBuffer(cfg.bufferSize),
		sink:    sink,
		variant: cfg.variant,
		intern:  newInternTable(),
	}, nil
}

// SetOutput rebinds the writer to a new sink, resetting the cursor and the
// intern table. It also revives a released writer back to the Bound state,
// which is how a pooled Writer (see Take) is prepared for reuse.
func (w *Writer) SetOutput(sink ByteSink) {
	w.sink = sink
	w.buf.reset()
	w.intern.reset()
	w.released = false
}

// checkReleased returns ErrUseAfterRelease if the writer is not currently bound.
func (w *Writer) checkReleased() error {
	if w.released {
		return ErrUseAfterRelease
	}

	return nil
}

// drain writes the pending staged bytes to the sink and resets the cursor.
// It is a no-op when nothing is pending, per spec §4.1: "Drains only occur
// when p > 0."
func (w *Writer) drain() error {
	if w.buf.Pos == 0 {
		return nil
	}

	pending := w.buf.pending()

	n, err := w.sink.Write(pending)
	if err != nil {
		return wrapIOError("drain", err)
	}

	if n != len(pending) {
		return wrapIOError("drain", io.ErrShortWrite)
	}

	w.buf.reset()

	return nil
}

// ensure guarantees at least n free bytes at the cursor, draining first if needed.
func (w *Writer) ensure(n int) error {
	if w.buf.free() < n {
		if err := w.drain(); err != nil {
			return err
		}
	}

	return nil
}

// writeLarge forwards an opaque byte range, bypassing staging for ranges at
// least as large as the buffer's capacity (spec §4.1 "Large writes").
func (w *Writer) writeLarge(p []byte) error {
	if len(p) >= w.buf.cap() {
		if err := w.drain(); err != nil {
			return err
		}

		n, err := w.sink.Write(p)
		if err != nil {
			return wrapIOError("write", err)
		}

		if n != len(p) {
			return wrapIOError("write", io.ErrShortWrite)
		}

		return nil
	}

	if err := w.ensure(len(p)); err != nil {
		return err
	}

	w.buf.writeSlice(p)

	return nil
}

// Flush drains any pending bytes and flushes the sink.
func (w *Writer) Flush() error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	if err := w.drain(); err != nil {
		return err
	}

	return wrapIOError("flush", w.sink.Flush())
}

// Close closes the sink unconditionally and releases the writer's state.
// It does not drain first: callers who need pending bytes persisted must
// call Flush before Close. Close is idempotent.
func (w *Writer) Close() error {
	if w.released {
		return nil
	}

	err := w.sink.Close()
	w.sink = nil
	w.buf.reset()
	w.intern.reset()
	w.released = true

	return wrapIOError("close", err)
}

// Release clears the writer's sink, cursor and intern table, returning it to
// the Released state. It fails with a LingeringDataError if bytes are still
// pending: Release never drains on the caller's behalf. Release is idempotent.
// Writers matching the pool's default configuration (default buffer capacity,
// 4-byte UTF variant) become eligible for reuse via Take.
func (w *Writer) Release() error {
	if w.released {
		return nil
	}

	if w.buf.Pos != 0 {
		return LingeringDataError{Pending: w.buf.Pos}
	}

	w.sink = nil
	w.intern.reset()
	w.released = true

	if poolEligible(w) {
		put(w)
	}

	return nil
}

// WriteBoolean writes one byte: 0x01 for true, 0x00 for false.
func (w *Writer) WriteBoolean(v bool) error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	if err := w.ensure(1); err != nil {
		return err
	}

	if v {
		w.buf.writeUint8(1)
	} else {
		w.buf.writeUint8(0)
	}

	return nil
}

// WriteByte writes a single unsigned byte.
func (w *Writer) WriteByte(v byte) error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	if err := w.ensure(1); err != nil {
		return err
	}

	w.buf.writeUint8(v)

	return nil
}

// WriteShort writes a signed 2 byte big-endian integer.
func (w *Writer) WriteShort(v int16) error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	if err := w.ensure(2); err != nil {
		return err
	}

	w.buf.writeUint16(uint16(v))

	return nil
}

// WriteChar writes a 2 byte big-endian character. v is narrowed to 16 bits
// before writing, preserving the historical contract
// WriteChar(v) == WriteShort(v & 0xFFFF).
func (w *Writer) WriteChar(v rune) error {
	return w.WriteShort(int16(uint32(v) & 0xFFFF))
}

// WriteInt writes a signed 4 byte big-endian integer.
func (w *Writer) WriteInt(v int32) error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	if err := w.ensure(4); err != nil {
		return err
	}

	w.buf.writeUint32(uint32(v))

	return nil
}

// WriteLong writes a signed 8 byte big-endian integer.
func (w *Writer) WriteLong(v int64) error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	if err := w.ensure(8); err != nil {
		return err
	}

	w.buf.writeUint64(uint64(v))

	return nil
}

// WriteFloat writes a float32 as its IEEE-754 raw bits, big-endian.
func (w *Writer) WriteFloat(v float32) error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	if err := w.ensure(4); err != nil {
		return err
	}

	w.buf.writeUint32(math.Float32bits(v))

	return nil
}

// WriteDouble writes a float64 as its IEEE-754 raw bits, big-endian.
func (w *Writer) WriteDouble(v float64) error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	if err := w.ensure(8); err != nil {
		return err
	}

	w.buf.writeUint64(math.Float64bits(v))

	return nil
}

// WriteBytesString always fails with ErrUnsupported. It exists only to mirror
// java.io.DataOutput.writeBytes(String), the legacy ASCII-only low-byte
// serializer; use WriteUTF instead.
func (w *Writer) WriteBytesString(string) error {
	return ErrUnsupported
}

// WriteCharsString always fails with ErrUnsupported. It exists only to mirror
// java.io.DataOutput.writeChars(String), the legacy UTF-16 serializer; use
// WriteUTF instead.
func (w *Writer) WriteCharsString(string) error {
	return ErrUnsupported
}

// WriteUTF writes s as a 2-byte big-endian length prefix followed by its
// Modified UTF-8 payload. The length is the encoded byte count, not the
// character count; it fails with a StringTooLongError if that count exceeds
// 65535.
func (w *Writer) WriteUTF(s string) error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	units := utf16Units(s)
	length := modifiedUTF8Len(units, w.variant.fourByte())

	if length > maxUint16 {
		return StringTooLongError{Len: length, Max: maxUint16}
	}

	if 2+length <= w.buf.cap() {
		if err := w.ensure(2 + length); err != nil {
			return err
		}

		w.buf.writeUint16(uint16(length))

		dst := w.buf.Bytes[w.buf.Pos : w.buf.Pos+length]
		encodeModifiedUTF8Into(dst, units, w.variant.fourByte())
		w.buf.Pos += length

		return nil
	}

	// Spill: the encoded form can't fit in the staging buffer even after a
	// drain. Encode into a one-shot transient buffer and forward it directly.
	spill := make([]byte, length+1)
	encodeModifiedUTF8Into(spill[:length], units, w.variant.fourByte())

	if err := w.ensure(2); err != nil {
		return err
	}

	w.buf.writeUint16(uint16(length))

	return w.writeLarge(spill[:length])
}

// WriteInternedUTF writes s using the writer's per-stream intern table: if s
// was written before, only its 2-byte reference id is emitted; otherwise the
// sentinel 0xFFFF is emitted followed by the literal string (see WriteUTF),
// and s is assigned the next id, unless the table is already full.
func (w *Writer) WriteInternedUTF(s string) error {
	if err := w.checkReleased(); err != nil {
		return err
	}

	if id, ok := w.intern.lookup(s); ok {
		if err := w.ensure(2); err != nil {
			return err
		}

		w.buf.writeUint16(id)

		return nil
	}

	if err := w.ensure(2); err != nil {
		return err
	}

	w.buf.writeUint16(internSentinel)

	if err := w.WriteUTF(s); err != nil {
		return err
	}

	w.intern.insert(s)

	return nil
}
