package stdf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/noonchen/go-stdf/internal/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMinimalSTRPayload constructs an STR payload with every count and
// width-size field set to zero, so every KxUf/KxCn/KxU* array decodes empty
// without needing real scan data.
func buildMinimalSTRPayload(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := func(v interface{}) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	cn0 := func() { buf.WriteByte(0) }
	dn0 := func() { w(uint16(0)) }

	w(uint8(0))   // ContFlg
	w(uint32(42)) // TestNum
	w(uint8(1))   // HeadNum
	w(uint8(1))   // SiteNum
	w(uint16(0))  // PsrRef
	w(uint8(0))   // TestFlg
	cn0()         // LogTyp
	cn0()         // TestTxt
	cn0()         // AlarmID
	cn0()         // ProgTxt
	cn0()         // RsltTxt
	w(uint8(0))   // ZVal
	w(uint8(0))   // FmuFlg
	dn0()         // MaskMap
	dn0()         // FalMap
	w(uint64(0))  // CycCntT
	w(uint32(0))  // TotfCnt
	w(uint32(0))  // TotlCnt
	w(uint64(0))  // CycBase
	w(uint32(0))  // BitBase
	w(uint16(0))  // CondCnt
	w(uint16(0))  // LimCnt
	w(uint8(0))   // CycSize
	w(uint8(0))   // PmrSize
	w(uint8(0))   // ChnSize
	w(uint8(0))   // PatSize
	w(uint8(0))   // BitSize
	w(uint8(0))   // U1Size
	w(uint8(0))   // U2Size
	w(uint8(0))   // U3Size
	w(uint8(0))   // UtxSize
	w(uint16(0))  // CapBgn
	// LimIndx, LimSpec, CondLst: all zero-length, nothing to write
	w(uint16(0)) // CycCnt
	w(uint16(0)) // PmrCnt
	w(uint16(0)) // ChnCnt
	w(uint16(0)) // ExpCnt
	w(uint16(0)) // CapCnt
	w(uint16(0)) // NewCnt
	w(uint16(0)) // PatCnt
	w(uint16(0)) // BposCnt
	w(uint16(0)) // Usr1Cnt
	w(uint16(0)) // Usr2Cnt
	w(uint16(0)) // Usr3Cnt
	w(uint16(0)) // TxtCnt
	return buf.Bytes()
}

func TestDecodeSTRMinimal(t *testing.T) {
	payload := buildMinimalSTRPayload(t)
	rec := Decode(KindSTR, 15, 30, payload, binary.LittleEndian)
	str, ok := rec.(STR)
	require.True(t, ok)
	assert.Equal(t, uint32(42), str.TestNum)
	assert.Equal(t, uint8(1), str.HeadNum)
	assert.Empty(t, str.CycOfst.U1)
	assert.Equal(t, cursor.Width1, str.CycOfst.Width)
	assert.Equal(t, KindSTR, str.Kind())
}

func TestDecodeSTREmptyPayloadNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		Decode(KindSTR, 15, 30, nil, binary.LittleEndian)
	})
}
