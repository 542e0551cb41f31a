package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredCount(t *testing.T) {
	sch := RecordSchema{Fields: fields(req("A"), req("B"), opt("C"))}
	assert.Equal(t, 2, sch.RequiredCount())
}

func TestByNameCoversEveryATDFRecord(t *testing.T) {
	names := []string{
		"FAR", "ATR", "MIR", "MRR", "PCR", "HBR", "SBR", "PMR", "PGR", "PLR",
		"RDR", "SDR", "WIR", "WRR", "WCR", "PIR", "PRR", "TSR", "PTR", "MPR",
		"FTR", "BPS", "EPS", "GDR", "DTR",
	}
	for _, n := range names {
		sch, ok := ByName[n]
		require.Truef(t, ok, "missing schema for %s", n)
		assert.Equal(t, n, sch.Name)
	}
}

func TestV4_2007OnlyRecordsAreAbsent(t *testing.T) {
	for _, n := range []string{"VUR", "STR", "PSR", "NMR", "CNR", "SSR", "CDR"} {
		_, ok := ByName[n]
		assert.Falsef(t, ok, "%s should have no ATDF schema entry", n)
	}
}

func TestFARRequiresCPUTypeAndVersionOnly(t *testing.T) {
	assert.Equal(t, 2, ByName["FAR"].RequiredCount())
}
