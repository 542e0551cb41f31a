package stdf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFAR(t *testing.T) {
	rec := Decode(KindFAR, 0, 10, []byte{2, 4}, binary.LittleEndian)
	far, ok := rec.(FAR)
	require.True(t, ok)
	assert.Equal(t, uint8(2), far.CPUType)
	assert.Equal(t, uint8(4), far.StdfVer)
	assert.Equal(t, KindFAR, far.Kind())
}

func TestDecodeMIRBurnTimDefaultsWhenTruncated(t *testing.T) {
	// Payload truncated right after ProtCod, before BurnTim: SETUP_T(4) +
	// START_T(4) + STAT_NUM(1) + MODE_COD(1) + RTST_COD(1) + PROT_COD(1) = 12
	// bytes, leaving nothing for BURN_TIM.
	payload := make([]byte, 12)
	rec := Decode(KindMIR, 1, 10, payload, binary.LittleEndian)
	mir, ok := rec.(MIR)
	require.True(t, ok)
	assert.Equal(t, uint16(65535), mir.BurnTim, "absent BURN_TIM must default to 65535, not 0")
}

func TestDecodePMRHeadSiteDefaultToOne(t *testing.T) {
	rec := Decode(KindPMR, 1, 60, nil, binary.LittleEndian)
	pmr, ok := rec.(PMR)
	require.True(t, ok)
	assert.Equal(t, uint8(1), pmr.HeadNum)
	assert.Equal(t, uint8(1), pmr.SiteNum)
}

func TestDecodeFTRPatgNumDefaultsTo255(t *testing.T) {
	rec := Decode(KindFTR, 15, 20, nil, binary.LittleEndian)
	ftr, ok := rec.(FTR)
	require.True(t, ok)
	assert.Equal(t, uint8(255), ftr.PatgNum)
}

func TestDecodeReservedAndInvalid(t *testing.T) {
	resv := Decode(KindReserved, 180, 1, []byte{1, 2, 3}, binary.LittleEndian)
	r, ok := resv.(Reserved)
	require.True(t, ok)
	assert.Equal(t, uint8(180), r.Typ)
	assert.Equal(t, KindReserved, r.Kind())

	inv := Decode(KindInvalid, 99, 99, nil, binary.LittleEndian)
	iv, ok := inv.(Invalid)
	require.True(t, ok)
	assert.Equal(t, KindInvalid, iv.Kind())
}

func TestDecodeATRReadsCmdLine(t *testing.T) {
	cmd := "stdf-gen --lot 42"
	payload := append([]byte{0, 0, 0, 0}, append([]byte{byte(len(cmd))}, []byte(cmd)...)...)
	rec := Decode(KindATR, 0, 20, payload, binary.LittleEndian)
	atr, ok := rec.(ATR)
	require.True(t, ok)
	assert.Equal(t, cmd, atr.CmdLine)
}

func TestDecodeEmptyPayloadNeverPanics(t *testing.T) {
	// Every known kind must tolerate a zero-length payload and return its
	// documented defaults rather than panicking or erroring.
	kinds := []struct {
		kind     Kind
		typ, sub uint8
	}{
		{KindFAR, 0, 10}, {KindATR, 0, 20}, {KindVUR, 0, 30},
		{KindMIR, 1, 10}, {KindMRR, 1, 20}, {KindPCR, 1, 30},
		{KindHBR, 1, 40}, {KindSBR, 1, 50}, {KindPMR, 1, 60},
		{KindPGR, 1, 62}, {KindPLR, 1, 63}, {KindRDR, 1, 70},
		{KindSDR, 1, 80}, {KindPSR, 1, 90}, {KindNMR, 1, 91},
		{KindCNR, 1, 92}, {KindSSR, 1, 93}, {KindCDR, 1, 94},
		{KindWIR, 2, 10}, {KindWRR, 2, 20}, {KindWCR, 2, 30},
		{KindPIR, 5, 10}, {KindPRR, 5, 20}, {KindTSR, 10, 30},
		{KindPTR, 15, 10}, {KindMPR, 15, 15}, {KindFTR, 15, 20},
		{KindSTR, 15, 30}, {KindBPS, 20, 10}, {KindEPS, 20, 20},
		{KindGDR, 50, 10}, {KindDTR, 50, 30},
	}
	for _, k := range kinds {
		assert.NotPanics(t, func() {
			rec := Decode(k.kind, k.typ, k.sub, nil, binary.LittleEndian)
			assert.Equal(t, k.kind, rec.Kind())
		}, "kind %v", k.kind)
	}
}
