package stdf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWIR(t *testing.T) {
	id := "W17"
	payload := append([]byte{1, 2, 0, 0, 0, 0}, append([]byte{byte(len(id))}, []byte(id)...)...)
	rec := Decode(KindWIR, 2, 10, payload, binary.LittleEndian)
	wir, ok := rec.(WIR)
	require.True(t, ok)
	assert.Equal(t, uint8(1), wir.HeadNum)
	assert.Equal(t, uint8(2), wir.SiteGrp)
	assert.Equal(t, id, wir.WaferID)
}

func TestDecodeWCR(t *testing.T) {
	rec := Decode(KindWCR, 2, 30, nil, binary.LittleEndian)
	wcr, ok := rec.(WCR)
	require.True(t, ok)
	assert.Equal(t, float32(0), wcr.WafrSiz)
	assert.Equal(t, KindWCR, wcr.Kind())
}
