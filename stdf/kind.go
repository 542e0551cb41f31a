// Package stdf decodes STDF (Standard Test Data Format) record streams: the
// binary, type-tagged record format used across semiconductor ATE (Automated
// Test Equipment) to log wafer and unit test results.
//
// The package plays the same role for STDF records that perffile plays for
// perf.data records: a lazy, single-pass iterator over a framed binary
// stream, with a typed struct and decode function per record kind.
package stdf

// Kind identifies an STDF record's semantic type, resolved from its
// (REC_TYP, REC_SUB) header pair.
type Kind int

// The record kinds this package understands. Names follow the STDF V4 /
// V4-2007 three-letter record mnemonics.
const (
	KindFAR Kind = iota
	KindATR
	KindVUR
	KindMIR
	KindMRR
	KindPCR
	KindHBR
	KindSBR
	KindPMR
	KindPGR
	KindPLR
	KindRDR
	KindSDR
	KindPSR
	KindNMR
	KindCNR
	KindSSR
	KindCDR
	KindWIR
	KindWRR
	KindWCR
	KindPIR
	KindPRR
	KindTSR
	KindPTR
	KindMPR
	KindFTR
	KindSTR
	KindBPS
	KindEPS
	KindGDR
	KindDTR
	KindReserved
	KindInvalid
)

var kindNames = map[Kind]string{
	KindFAR: "FAR", KindATR: "ATR", KindVUR: "VUR", KindMIR: "MIR",
	KindMRR: "MRR", KindPCR: "PCR", KindHBR: "HBR", KindSBR: "SBR",
	KindPMR: "PMR", KindPGR: "PGR", KindPLR: "PLR", KindRDR: "RDR",
	KindSDR: "SDR", KindPSR: "PSR", KindNMR: "NMR", KindCNR: "CNR",
	KindSSR: "SSR", KindCDR: "CDR", KindWIR: "WIR", KindWRR: "WRR",
	KindWCR: "WCR", KindPIR: "PIR", KindPRR: "PRR", KindTSR: "TSR",
	KindPTR: "PTR", KindMPR: "MPR", KindFTR: "FTR", KindSTR: "STR",
	KindBPS: "BPS", KindEPS: "EPS", KindGDR: "GDR", KindDTR: "DTR",
	KindReserved: "ReservedRec", KindInvalid: "InvalidRec",
}

// String returns the record's three-letter mnemonic ("ReservedRec" and
// "InvalidRec" for the two carrier kinds).
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "InvalidRec"
}

type header struct {
	typ uint8
	sub uint8
}

var headerToKind = map[header]Kind{
	{0, 10}:  KindFAR,
	{0, 20}:  KindATR,
	{0, 30}:  KindVUR,
	{1, 10}:  KindMIR,
	{1, 20}:  KindMRR,
	{1, 30}:  KindPCR,
	{1, 40}:  KindHBR,
	{1, 50}:  KindSBR,
	{1, 60}:  KindPMR,
	{1, 62}:  KindPGR,
	{1, 63}:  KindPLR,
	{1, 70}:  KindRDR,
	{1, 80}:  KindSDR,
	{1, 90}:  KindPSR,
	{1, 91}:  KindNMR,
	{1, 92}:  KindCNR,
	{1, 93}:  KindSSR,
	{1, 94}:  KindCDR,
	{2, 10}:  KindWIR,
	{2, 20}:  KindWRR,
	{2, 30}:  KindWCR,
	{5, 10}:  KindPIR,
	{5, 20}:  KindPRR,
	{10, 30}: KindTSR,
	{15, 10}: KindPTR,
	{15, 15}: KindMPR,
	{15, 20}: KindFTR,
	{15, 30}: KindSTR,
	{20, 10}: KindBPS,
	{20, 20}: KindEPS,
	{50, 10}: KindGDR,
	{50, 30}: KindDTR,
}

// KindOf resolves a record kind from its raw (REC_TYP, REC_SUB) header
// fields. (180, _) and (181, _) resolve to KindReserved (vendor-reserved
// space); anything else unrecognized resolves to KindInvalid.
func KindOf(typ, sub uint8) Kind {
	if typ == 180 || typ == 181 {
		return KindReserved
	}
	if k, ok := headerToKind[header{typ, sub}]; ok {
		return k
	}
	return KindInvalid
}
