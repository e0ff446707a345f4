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

// stagingBuffer is a fixed-capacity byte region with a write cursor. Bytes at
// [0, Pos) are pending output; bytes at [Pos, len(Bytes)) are undefined. Callers
// must call ensure-style capacity checks before writing; stagingBuffer itself
// performs no bounds checking beyond what a direct slice index gives for free.
type stagingBuffer struct {
	Bytes []byte
	Pos   int
}

// newStagingBuffer allocates a staging buffer with the given fixed capacity.
func newStagingBuffer(capacity int) *stagingBuffer {
	return &stagingBuffer{Bytes: make([]byte, capacity)}
}

// cap returns the fixed capacity C of the buffer.
func (f *stagingBuffer) cap() int {
	return len(f.Bytes)
}

// free returns the number of unused bytes at the cursor.
func (f *stagingBuffer) free() int {
	return len(f.Bytes) - f.Pos
}

// reset rewinds the cursor to zero, as happens after every drain.
func (f *stagingBuffer) reset() {
	f.Pos = 0
}

func (f *stagingBuffer) writeUint8(v uint8) {
	f.Bytes[f.Pos] = v
	f.Pos++
}

func (f *stagingBuffer) writeUint16(v uint16) {
	putUint16(f.Bytes[f.Pos:f.Pos+2], v)
	f.Pos += 2
}

func (f *stagingBuffer) writeUint32(v uint32) {
	putUint32(f.Bytes[f.Pos:f.Pos+4], v)
	f.Pos += 4
}

func (f *stagingBuffer) writeUint64(v uint64) {
	putUint64(f.Bytes[f.Pos:f.Pos+8], v)
	f.Pos += 8
}

// writeSlice copies v into the buffer at the cursor. The caller must have
// already ensured len(v) free bytes.
func (f *stagingBuffer) writeSlice(v []byte) {
	copy(f.Bytes[f.Pos:], v)
	f.Pos += len(v)
}

// pending returns the bytes currently staged for output, [0, Pos).
func (f *stagingBuffer) pending() []byte {
	return f.Bytes[:f.Pos]
}
