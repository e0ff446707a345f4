package javawire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigEndianRoundTrip(t *testing.T) {
	b16 := make([]byte, 2)
	for _, v := range []uint16{0, 1, 258, 0xFFFF} {
		putUint16(b16, v)
		require.Equal(t, v, uint16BE(b16))
	}

	b32 := make([]byte, 4)
	for _, v := range []uint32{0, 1, 0x01020304, 0xFFFFFFFF} {
		putUint32(b32, v)
		require.Equal(t, v, uint32BE(b32))
	}

	b64 := make([]byte, 8)
	for _, v := range []uint64{0, 1, 0x0102030405060708, 0xFFFFFFFFFFFFFFFF} {
		putUint64(b64, v)
		require.Equal(t, v, uint64BE(b64))
	}
}

func TestPutUint32_IsBigEndian(t *testing.T) {
	b := make([]byte, 4)
	putUint32(b, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)
}
