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
	"errors"
	"fmt"
)

// ErrUnsupported is returned by the legacy WriteBytesString and WriteCharsString
// methods, which exist only to mirror java.io.DataOutput's signature and are never
// implemented: callers must use WriteUTF or WriteInternedUTF instead.
var ErrUnsupported = errors.New("javawire: operation unsupported, use WriteUTF instead")

// ErrInvalidConfig is returned by New when the resolved buffer capacity is below
// the 8 byte minimum.
var ErrInvalidConfig = errors.New("javawire: buffer capacity must be at least 8 bytes")

// ErrUseAfterRelease is returned by any write operation performed on a Writer
// after Release or Close has been called.
var ErrUseAfterRelease = errors.New("javawire: use of writer after release")

// StringTooLongError is returned when a string's Modified UTF-8 byte length
// exceeds the 65535 byte limit the 2-byte length prefix can represent.
type StringTooLongError struct {
	Len int // Len is the encoded Modified UTF-8 byte length that was rejected.
	Max int // Max is the largest length the wire format supports (65535).
}

// Error reports the current/max length.
func (e StringTooLongError) Error() string {
	return fmt.Sprintf("javawire: string too long: %d bytes exceeds max %d", e.Len, e.Max)
}

// LingeringDataError is returned by Release when the staging buffer still holds
// pending, undrained bytes.
type LingeringDataError struct {
	Pending int // Pending is the number of undrained bytes still in the staging buffer.
}

// Error reports the amount of pending data that blocked the release.
func (e LingeringDataError) Error() string {
	return fmt.Sprintf("javawire: release with %d pending byte(s)", e.Pending)
}

// wrapIOError tags a sink failure with the operation that triggered it, while
// keeping it unwrappable via errors.Is/errors.As.
func wrapIOError(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("javawire: %s: %w", op, err)
}
