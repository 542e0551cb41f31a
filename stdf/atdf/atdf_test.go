package atdf

import (
	"testing"

	"github.com/noonchen/go-stdf/stdf"
	"github.com/stretchr/testify/assert"
)

func TestKindForNameKnownAndUnknown(t *testing.T) {
	assert.Equal(t, stdf.KindFAR, kindForName("FAR"))
	assert.Equal(t, stdf.KindPTR, kindForName("PTR"))
	assert.Equal(t, stdf.KindInvalid, kindForName("NOPE"))
}

func TestSchemaForV4_2007KindsAreAbsent(t *testing.T) {
	for _, name := range []string{"VUR", "STR", "PSR", "NMR", "CNR", "SSR", "CDR"} {
		_, ok := schemaFor(name)
		assert.Falsef(t, ok, "%s has no ATDF mapping", name)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, byte('|'), cfg.Delim)
	assert.False(t, cfg.Scale)
}

func TestKindToNameIsInverseOfNameToKind(t *testing.T) {
	for name, k := range nameToKind {
		assert.Equal(t, name, kindToName[k])
	}
}
