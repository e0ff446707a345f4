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

// putUint16 writes v into b[0:2] in big-endian order.
func putUint16(b []byte, v uint16) {
	_ = b[1] // bounds check hint to compiler; see golang.org/issue/14808
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// putUint32 writes v into b[0:4] in big-endian order.
func putUint32(b []byte, v uint32) {
	_ = b[3] // bounds check hint to compiler; see golang.org/issue/14808
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// putUint64 writes v into b[0:8] in big-endian order.
func putUint64(b []byte, v uint64) {
	_ = b[7] // bounds check hint to compiler; see golang.org/issue/14808
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

// uint16BE reads b[0:2] as a big-endian unsigned 16 bit integer.
func uint16BE(b []byte) uint16 {
	_ = b[1] // bounds check hint to compiler; see golang.org/issue/14808
	return uint16(b[0])<<8 | uint16(b[1])
}

// uint32BE reads b[0:4] as a big-endian unsigned 32 bit integer.
func uint32BE(b []byte) uint32 {
	_ = b[3] // bounds check hint to compiler; see golang.org/issue/14808
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// uint64BE reads b[0:8] as a big-endian unsigned 64 bit integer.
func uint64BE(b []byte) uint64 {
	_ = b[7] // bounds check hint to compiler; see golang.org/issue/14808
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}
