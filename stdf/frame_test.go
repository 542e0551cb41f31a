package stdf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverEndianLittle(t *testing.T) {
	// REC_LEN=2 little-endian, REC_TYP=0, REC_SUB=10 (FAR).
	order, err := discoverEndian([4]byte{0x02, 0x00, 0, 10})
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, order)
}

func TestDiscoverEndianBig(t *testing.T) {
	// A big-endian stream's REC_LEN=2 reads as 0x0200=512 when
	// misinterpreted little-endian.
	order, err := discoverEndian([4]byte{0x00, 0x02, 0, 10})
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, order)
}

func TestDiscoverEndianRejectsNonFAR(t *testing.T) {
	_, err := discoverEndian([4]byte{0x02, 0x00, 1, 10})
	require.Error(t, err)
	se, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidFile, se.Code)
}

func TestDiscoverEndianRejectsBadLength(t *testing.T) {
	_, err := discoverEndian([4]byte{0x07, 0x00, 0, 10})
	require.Error(t, err)
	se, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidFile, se.Code)
}
