package javawire

import "unicode/utf16"

const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
	surrogateBase    = 0x10000
)

func isHighSurrogate(c uint16) bool {
	return c >= highSurrogateMin && c <= highSurrogateMax
}

func isLowSurrogate(c uint16) bool {
	return c >= lowSurrogateMin && c <= lowSurrogateMax
}

// decodeSurrogatePair combines a matched high/low surrogate pair into the
// supplementary code point they represent.
func decodeSurrogatePair(hi, lo uint16) rune {
	return (rune(hi-highSurrogateMin)<<10 | rune(lo-lowSurrogateMin)) + surrogateBase
}

// utf16Units converts a Go string into the UTF-16 code units Modified UTF-8
// operates on, matching what a Java char[] backing the same text would hold.
func utf16Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// encode3ByteUnit writes the standard Modified UTF-8 form of a single UTF-16
// code unit into seq and returns how many bytes it used (1, 2 or 3). Every
// code unit is independent: a lone surrogate half is encoded exactly like any
// other code point in this form.
func encode3ByteUnit(seq *[4]byte, c uint16) int {
	switch {
	case c == 0:
		seq[0] = 0xC0
		seq[1] = 0x80

		return 2
	case c <= 0x007F:
		seq[0] = byte(c)

		return 1
	case c <= 0x07FF:
		seq[0] = 0xC0 | byte(c>>6)
		seq[1] = 0x80 | byte(c&0x3F)

		return 2
	default:
		seq[0] = 0xE0 | byte(c>>12)
		seq[1] = 0x80 | byte((c>>6)&0x3F)
		seq[2] = 0x80 | byte(c&0x3F)

		return 3
	}
}

// encode4ByteSeq writes the 4-byte UTF-8 form of a supplementary code point
// (U+10000..U+10FFFF) into seq and returns 4.
func encode4ByteSeq(seq *[4]byte, cp rune) int {
	seq[0] = 0xF0 | byte(cp>>18)
	seq[1] = 0x80 | byte((cp>>12)&0x3F)
	seq[2] = 0x80 | byte((cp>>6)&0x3F)
	seq[3] = 0x80 | byte(cp&0x3F)

	return 4
}

// encodeModifiedUTF8Into is the single-pass Modified UTF-8 encoder described in
// spec §4.3/§9: it attempts to write directly into dst and, in the same pass,
// always computes the exact number of bytes the string requires. If dst is too
// small it stops copying but keeps counting, so n is always the true required
// length; ok reports whether dst actually held the result.
//
// fourByte selects the bug-compatible dialect: matched surrogate pairs coalesce
// into a single 4-byte sequence. Unmatched surrogates always fall back to the
// 3-byte form, in both dialects.
func encodeModifiedUTF8Into(dst []byte, units []uint16, fourByte bool) (n int, ok bool) {
	ok = true
	pos := 0

	for i := 0; i < len(units); i++ {
		c := units[i]

		var seq [4]byte

		seqLen := 0
		advance := 1

		if fourByte && isHighSurrogate(c) && i+1 < len(units) && isLowSurrogate(units[i+1]) {
			cp := decodeSurrogatePair(c, units[i+1])
			seqLen = encode4ByteSeq(&seq, cp)
			advance = 2
		} else {
			seqLen = encode3ByteUnit(&seq, c)
		}

		if ok {
			if pos+seqLen <= len(dst) {
				copy(dst[pos:pos+seqLen], seq[:seqLen])
			} else {
				ok = false
			}
		}

		pos += seqLen
		i += advance - 1
	}

	return pos, ok
}

// modifiedUTF8Len reports the exact number of bytes units would encode to under
// the given dialect, without writing anything (spec §4.3's byte-count
// precomputation requirement).
func modifiedUTF8Len(units []uint16, fourByte bool) int {
	n, _ := encodeModifiedUTF8Into(nil, units, fourByte)

	return n
}
