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

// UTFVariant selects which Modified UTF-8 dialect a Writer produces.
type UTFVariant int

const (
	// UTF3Byte is the standard dialect mandated by the classical DataOutput
	// contract: every UTF-16 code unit, including lone surrogate halves, is
	// encoded as an independent 1-3 byte sequence.
	UTF3Byte UTFVariant = iota

	// UTF4Byte is the bug-compatible dialect: matched surrogate pairs coalesce
	// into a single 4-byte UTF-8 sequence for the decoded supplementary code
	// point. Retained for bit-exact compatibility with historical readers.
	UTF4Byte
)

func (v UTFVariant) String() string {
	switch v {
	case UTF3Byte:
		return "utf3byte"
	case UTF4Byte:
		return "utf4byte"
	default:
		return "unspecified utf variant"
	}
}

func (v UTFVariant) fourByte() bool {
	return v == UTF4Byte
}

// config holds the resolved construction-time settings for a Writer.
type config struct {
	bufferSize int
	variant    UTFVariant
}

// Option configures a Writer at construction time.
type Option func(*config)

// WithBufferSize sets the staging buffer capacity. The default is 1024 bytes.
// New rejects a resolved capacity below 8 bytes with ErrInvalidConfig.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

// WithUTF4ByteVariant selects the bug-compatible 4-byte Modified UTF-8 dialect.
// The default is the standard 3-byte dialect.
func WithUTF4ByteVariant() Option {
	return func(c *config) {
		c.variant = UTF4Byte
	}
}

// resolveConfig applies opts over the package default configuration.
func resolveConfig(opts []Option) config {
	c := config{bufferSize: defaultBufferSize, variant: UTF3Byte}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
