package cursor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarBoundsSafety(t *testing.T) {
	// For every scalar primitive, a read that doesn't fit the remaining
	// bytes returns the zero value and leaves the cursor unmoved.
	c := New([]byte{0x01}, binary.LittleEndian)
	require.Equal(t, uint16(0), c.U2())
	assert.Equal(t, 0, c.Pos(), "U2 on a 1-byte buffer must not advance")

	c = New([]byte{0x01, 0x02, 0x03}, binary.LittleEndian)
	require.Equal(t, uint32(0), c.U4())
	assert.Equal(t, 0, c.Pos())
}

func TestU2Endian(t *testing.T) {
	le := New([]byte{0x02, 0x01}, binary.LittleEndian)
	assert.Equal(t, uint16(0x0102), le.U2())

	be := New([]byte{0x01, 0x02}, binary.BigEndian)
	assert.Equal(t, uint16(0x0102), be.U2())
}

func TestC1DefaultsToSpace(t *testing.T) {
	c := New(nil, binary.LittleEndian)
	assert.Equal(t, byte(' '), c.C1())
}

func TestCnRoundTrip(t *testing.T) {
	for _, s := range []string{"", "A", "HELLO WORLD", string(make([]byte, 255))} {
		buf := append([]byte{byte(len(s))}, []byte(s)...)
		c := New(buf, binary.LittleEndian)
		got := c.Cn()
		assert.Equal(t, s, got)
		assert.Equal(t, len(buf), c.Pos())
	}
}

func TestCnLengthPrefixConsumedEvenWhenTruncated(t *testing.T) {
	// Declares 10 bytes but only 3 remain: the prefix is still consumed
	// and whatever is available is returned, clamped to end-of-buffer.
	buf := []byte{10, 'a', 'b', 'c'}
	c := New(buf, binary.LittleEndian)
	assert.Equal(t, "abc", c.Cn())
	assert.Equal(t, len(buf), c.Pos())
	assert.True(t, c.Done())
}

func TestDnBitCountToByteLength(t *testing.T) {
	// 13 bits -> ceil(13/8) = 2 bytes.
	buf := []byte{13, 0, 0xAA, 0xBB, 0xCC}
	c := New(buf, binary.LittleEndian)
	got := c.Dn()
	assert.Equal(t, []byte{0xAA, 0xBB}, got)
}

func TestKxN1EvenAndOdd(t *testing.T) {
	// k=4 (even): 2 bytes, low nibble first.
	c := New([]byte{0x21, 0x43}, binary.LittleEndian)
	assert.Equal(t, []uint8{0x1, 0x2, 0x3, 0x4}, c.KxN1(4))

	// k=3 (odd): 2 bytes, final high nibble dropped.
	c = New([]byte{0x21, 0x43}, binary.LittleEndian)
	assert.Equal(t, []uint8{0x1, 0x2, 0x3}, c.KxN1(3))
}

func TestKxUfWidths(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	for _, f := range []uint8{1, 2, 4, 8} {
		c := New(buf, binary.LittleEndian)
		arr := c.KxUf(1, f)
		assert.EqualValues(t, f, arr.Width)
	}

	c := New(buf, binary.LittleEndian)
	arr := c.KxUf(0, 1)
	assert.Equal(t, 0, arr.Len())

	c = New(buf, binary.LittleEndian)
	arr = c.KxUf(2, 99) // unrecognized width
	assert.Equal(t, Width1, arr.Width)
	assert.Equal(t, 0, arr.Len())
}

func TestV1UnknownTagIsInvalid(t *testing.T) {
	c := New([]byte{0xFF}, binary.LittleEndian)
	v := c.V1()
	assert.Equal(t, KindInvalid, v.Kind)
}

func TestV1B0HasNoPayload(t *testing.T) {
	c := New([]byte{0x00, 0x01, 0x02}, binary.LittleEndian)
	v := c.V1()
	assert.Equal(t, KindB0, v.Kind)
	assert.Equal(t, 1, c.Pos(), "B0 consumes only its tag byte")
}

func TestVnStopsOnEmptyPayload(t *testing.T) {
	c := New(nil, binary.LittleEndian)
	vals := c.Vn(3)
	require.Len(t, vals, 3)
	for _, v := range vals {
		assert.Equal(t, KindInvalid, v.Kind)
	}
}
