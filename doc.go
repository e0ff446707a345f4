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

// Package javawire implements a buffered, binary data serializer compatible
// with the classical Java DataOutput / Modified UTF-8 wire format: big-endian
// primitives, a length-prefixed Modified UTF-8 string encoder with 3-byte and
// 4-byte dialects, and a per-stream string interning table.
//
// A Writer stages bytes in a fixed-capacity buffer and drains them to a
// ByteSink once the buffer fills or Flush is called. It is not safe for
// concurrent use.
//
// Example:
//
//	sink := javawire.NewMemorySink()
//	w, err := javawire.New(sink, javawire.WithUTF4ByteVariant())
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//
//	if err := w.WriteInt(1234); err != nil {
//		return err
//	}
//	if err := w.WriteUTF("hello world"); err != nil {
//		return err
//	}
//	if err := w.WriteBoolean(true); err != nil {
//		return err
//	}
//
//	return w.Flush()
package javawire
