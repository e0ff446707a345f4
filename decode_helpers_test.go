package javawire

import "unicode/utf16"

// decodeModifiedUTF8 is the symmetric reader spec §8's round-trip properties
// require, kept test-only: spec.md keeps the reader itself out of the shipped
// surface, but round-trip correctness has to be demonstrated somehow. Grounded
// on the teacher's decoder.go/datainput.go shape, trimmed to the two Modified
// UTF-8 dialects this package actually writes.
func decodeModifiedUTF8(payload []byte, fourByte bool) string {
	units := make([]uint16, 0, len(payload))

	i := 0
	for i < len(payload) {
		b0 := payload[i]

		switch {
		case b0&0x80 == 0x00:
			units = append(units, uint16(b0))
			i++
		case b0&0xE0 == 0xC0:
			b1 := payload[i+1]
			units = append(units, uint16(b0&0x1F)<<6|uint16(b1&0x3F))
			i += 2
		case b0&0xF0 == 0xE0:
			b1, b2 := payload[i+1], payload[i+2]
			units = append(units, uint16(b0&0x0F)<<12|uint16(b1&0x3F)<<6|uint16(b2&0x3F))
			i += 3
		case fourByte && b0&0xF8 == 0xF0:
			b1, b2, b3 := payload[i+1], payload[i+2], payload[i+3]
			cp := rune(b0&0x07)<<18 | rune(b1&0x3F)<<12 | rune(b2&0x3F)<<6 | rune(b3&0x3F)
			cp -= surrogateBase
			hi := uint16(cp>>10) + highSurrogateMin
			lo := uint16(cp&0x3FF) + lowSurrogateMin
			units = append(units, hi, lo)
			i += 4
		default:
			// Malformed for this dialect; skip defensively rather than panic,
			// since this helper only ever sees bytes this package itself wrote.
			i++
		}
	}

	return string(utf16.Decode(units))
}

// readUTFFrame splits a WriteUTF payload (as it appears on the wire) into its
// u16 length prefix and the Modified UTF-8 bytes that follow, returning the
// remaining tail.
func readUTFFrame(b []byte) (payload, rest []byte) {
	length := int(uint16BE(b[:2]))

	return b[2 : 2+length], b[2+length:]
}
