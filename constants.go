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

const (
	// minBufferSize is the smallest staging buffer capacity New accepts (spec §4.1/§7 InvalidConfig).
	minBufferSize = 8

	// defaultBufferSize is used when no WithBufferSize option is given.
	defaultBufferSize = 1024

	// maxUint16 bounds both the string length prefix and the intern table size.
	maxUint16 = 1<<16 - 1

	// internSentinel is the reserved id meaning "not previously interned, literal follows".
	internSentinel = maxUint16

	// maxInternEntries is the largest number of strings the intern table may hold;
	// internSentinel itself is never assigned.
	maxInternEntries = maxUint16
)
