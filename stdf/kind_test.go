package stdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfKnownPairs(t *testing.T) {
	cases := []struct {
		typ, sub uint8
		want     Kind
	}{
		{0, 10, KindFAR},
		{0, 20, KindATR},
		{1, 10, KindMIR},
		{1, 60, KindPMR},
		{1, 63, KindPLR},
		{5, 10, KindPIR},
		{5, 20, KindPRR},
		{15, 10, KindPTR},
		{15, 15, KindMPR},
		{15, 30, KindSTR},
		{50, 10, KindGDR},
		{50, 30, KindDTR},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, KindOf(c.typ, c.sub), "typ=%d sub=%d", c.typ, c.sub)
	}
}

func TestKindOfReservedRange(t *testing.T) {
	assert.Equal(t, KindReserved, KindOf(180, 1))
	assert.Equal(t, KindReserved, KindOf(181, 99))
}

func TestKindOfUnknownIsInvalid(t *testing.T) {
	assert.Equal(t, KindInvalid, KindOf(99, 99))
}

func TestKindStringFallback(t *testing.T) {
	assert.Equal(t, "FAR", KindFAR.String())
	assert.Equal(t, "InvalidRec", Kind(9999).String())
}
