package stdf

import (
	"encoding/binary"
	"testing"

	"github.com/noonchen/go-stdf/internal/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBPS(t *testing.T) {
	name := "mainflow"
	payload := append([]byte{byte(len(name))}, []byte(name)...)
	rec := Decode(KindBPS, 20, 10, payload, binary.LittleEndian)
	bps, ok := rec.(BPS)
	require.True(t, ok)
	assert.Equal(t, name, bps.SeqName)
}

func TestDecodeEPS(t *testing.T) {
	rec := Decode(KindEPS, 20, 20, nil, binary.LittleEndian)
	_, ok := rec.(EPS)
	require.True(t, ok)
	assert.Equal(t, KindEPS, rec.Kind())
}

func TestDecodeGDRReadsTaggedValues(t *testing.T) {
	// FLD_CNT=2, then a U1 tag (0x01) with value 7, then a Cn tag (0x0A)
	// with string "hi".
	payload := []byte{2, 0, 0x01, 7, 0x0A, 2, 'h', 'i'}
	rec := Decode(KindGDR, 50, 10, payload, binary.LittleEndian)
	gdr, ok := rec.(GDR)
	require.True(t, ok)
	require.Len(t, gdr.GenData, 2)
	assert.Equal(t, cursor.KindU1, gdr.GenData[0].Kind)
	assert.EqualValues(t, 7, gdr.GenData[0].U)
	assert.Equal(t, cursor.KindCn, gdr.GenData[1].Kind)
	assert.Equal(t, "hi", gdr.GenData[1].S)
}

func TestDecodeDTR(t *testing.T) {
	txt := "debug trace"
	payload := append([]byte{byte(len(txt))}, []byte(txt)...)
	rec := Decode(KindDTR, 50, 30, payload, binary.LittleEndian)
	dtr, ok := rec.(DTR)
	require.True(t, ok)
	assert.Equal(t, txt, dtr.TestDat)
}
