// Package atdf implements the ASCII Text Data Format codec: the line-
// oriented textual sibling of binary STDF records. It plays the same role
// for ATDF that the stdf package plays for binary STDF: framing the stream
// into logical records and mapping each one to/from the shared Go record
// types in package stdf, reusing that package's closed error taxonomy
// (stdf.Error / stdf.Code) rather than defining its own.
package atdf

import (
	"github.com/noonchen/go-stdf/internal/schema"
	"github.com/noonchen/go-stdf/stdf"
)

// Config carries the two pieces of file-wide state ATDF establishes from
// its first FAR line: the field delimiter (the byte immediately following
// the 'A' marker) and whether parametric results are pre-scaled by their
// exponent.
type Config struct {
	Delim byte
	Scale bool
}

// DefaultConfig returns the conventional '|'-delimited, unscaled
// configuration, for callers formatting a single record outside the
// context of a full file (see FormatRecord).
func DefaultConfig() Config {
	return Config{Delim: '|'}
}

// Record is one parsed (or about-to-be-formatted) ATDF logical line: a
// record name and its delimiter-split field tail, continuation lines
// already merged. It is the text-side counterpart of a decoded stdf.Record;
// ToRecord/FromRecord convert between the two.
type Record struct {
	Kind   stdf.Kind
	Name   string
	Fields []string
}

func kindForName(name string) stdf.Kind {
	k, ok := nameToKind[name]
	if !ok {
		return stdf.KindInvalid
	}
	return k
}

var nameToKind = map[string]stdf.Kind{
	"FAR": stdf.KindFAR, "ATR": stdf.KindATR,
	"MIR": stdf.KindMIR, "MRR": stdf.KindMRR, "PCR": stdf.KindPCR,
	"HBR": stdf.KindHBR, "SBR": stdf.KindSBR, "PMR": stdf.KindPMR,
	"PGR": stdf.KindPGR, "PLR": stdf.KindPLR, "RDR": stdf.KindRDR,
	"SDR": stdf.KindSDR,
	"WIR": stdf.KindWIR, "WRR": stdf.KindWRR, "WCR": stdf.KindWCR,
	"PIR": stdf.KindPIR, "PRR": stdf.KindPRR,
	"TSR": stdf.KindTSR,
	"PTR": stdf.KindPTR, "MPR": stdf.KindMPR, "FTR": stdf.KindFTR,
	"BPS": stdf.KindBPS, "EPS": stdf.KindEPS,
	"GDR": stdf.KindGDR, "DTR": stdf.KindDTR,
}

var kindToName = func() map[stdf.Kind]string {
	m := make(map[stdf.Kind]string, len(nameToKind))
	for name, k := range nameToKind {
		m[k] = name
	}
	return m
}()

// schemaFor looks up a record name's ATDF field schema, or ok=false if the
// name (or its record kind) has no ATDF representation — true for the
// V4-2007-only kinds per spec §9 (VUR, STR, PSR, NMR, CNR, SSR, CDR).
func schemaFor(name string) (schema.RecordSchema, bool) {
	s, ok := schema.ByName[name]
	return s, ok
}
