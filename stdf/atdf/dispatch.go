package atdf

import "github.com/noonchen/go-stdf/stdf"

type encodeFunc func(stdf.Record, Config) []string
type decodeFunc func([]string, Config) (stdf.Record, error)

var encoders = map[stdf.Kind]encodeFunc{
	stdf.KindFAR: func(r stdf.Record, c Config) []string { return farToFields(r.(stdf.FAR), c) },
	stdf.KindATR: func(r stdf.Record, c Config) []string { return atrToFields(r.(stdf.ATR), c) },
	stdf.KindMIR: func(r stdf.Record, c Config) []string { return mirToFields(r.(stdf.MIR), c) },
	stdf.KindMRR: func(r stdf.Record, c Config) []string { return mrrToFields(r.(stdf.MRR), c) },
	stdf.KindPCR: func(r stdf.Record, c Config) []string { return pcrToFields(r.(stdf.PCR), c) },
	stdf.KindHBR: func(r stdf.Record, c Config) []string { return hbrToFields(r.(stdf.HBR), c) },
	stdf.KindSBR: func(r stdf.Record, c Config) []string { return sbrToFields(r.(stdf.SBR), c) },
	stdf.KindPMR: func(r stdf.Record, c Config) []string { return pmrToFields(r.(stdf.PMR), c) },
	stdf.KindPGR: func(r stdf.Record, c Config) []string { return pgrToFields(r.(stdf.PGR), c) },
	stdf.KindPLR: func(r stdf.Record, c Config) []string { return plrToFields(r.(stdf.PLR), c) },
	stdf.KindRDR: func(r stdf.Record, c Config) []string { return rdrToFields(r.(stdf.RDR), c) },
	stdf.KindSDR: func(r stdf.Record, c Config) []string { return sdrToFields(r.(stdf.SDR), c) },
	stdf.KindWIR: func(r stdf.Record, c Config) []string { return wirToFields(r.(stdf.WIR), c) },
	stdf.KindWRR: func(r stdf.Record, c Config) []string { return wrrToFields(r.(stdf.WRR), c) },
	stdf.KindWCR: func(r stdf.Record, c Config) []string { return wcrToFields(r.(stdf.WCR), c) },
	stdf.KindPIR: func(r stdf.Record, c Config) []string { return pirToFields(r.(stdf.PIR), c) },
	stdf.KindPRR: func(r stdf.Record, c Config) []string { return prrToFields(r.(stdf.PRR), c) },
	stdf.KindTSR: func(r stdf.Record, c Config) []string { return tsrToFields(r.(stdf.TSR), c) },
	stdf.KindPTR: func(r stdf.Record, c Config) []string { return ptrToFields(r.(stdf.PTR), c) },
	stdf.KindMPR: func(r stdf.Record, c Config) []string { return mprToFields(r.(stdf.MPR), c) },
	stdf.KindFTR: func(r stdf.Record, c Config) []string { return ftrToFields(r.(stdf.FTR), c) },
	stdf.KindBPS: func(r stdf.Record, c Config) []string { return bpsToFields(r.(stdf.BPS), c) },
	stdf.KindEPS: func(r stdf.Record, c Config) []string { return epsToFields(r.(stdf.EPS), c) },
	stdf.KindGDR: func(r stdf.Record, c Config) []string { return gdrToFields(r.(stdf.GDR), c) },
	stdf.KindDTR: func(r stdf.Record, c Config) []string { return dtrToFields(r.(stdf.DTR), c) },
}

var decoders = map[stdf.Kind]decodeFunc{
	stdf.KindFAR: farFromFields,
	stdf.KindATR: atrFromFields,
	stdf.KindMIR: mirFromFields,
	stdf.KindMRR: mrrFromFields,
	stdf.KindPCR: pcrFromFields,
	stdf.KindHBR: hbrFromFields,
	stdf.KindSBR: sbrFromFields,
	stdf.KindPMR: pmrFromFields,
	stdf.KindPGR: pgrFromFields,
	stdf.KindPLR: plrFromFields,
	stdf.KindRDR: rdrFromFields,
	stdf.KindSDR: sdrFromFields,
	stdf.KindWIR: wirFromFields,
	stdf.KindWRR: wrrFromFields,
	stdf.KindWCR: wcrFromFields,
	stdf.KindPIR: pirFromFields,
	stdf.KindPRR: prrFromFields,
	stdf.KindTSR: tsrFromFields,
	stdf.KindPTR: ptrFromFields,
	stdf.KindMPR: mprFromFields,
	stdf.KindFTR: ftrFromFields,
	stdf.KindBPS: bpsFromFields,
	stdf.KindEPS: epsFromFields,
	stdf.KindGDR: gdrFromFields,
	stdf.KindDTR: dtrFromFields,
}

// FromRecord converts a decoded binary stdf.Record into its ATDF line
// form. Kinds with no ATDF mapping (the V4-2007-only records per spec §9)
// yield an InvalidRecordType error.
func FromRecord(rec stdf.Record, cfg Config) (Record, error) {
	kind := rec.Kind()
	name, ok := kindToName[kind]
	if !ok {
		return Record{}, stdf.NewError(stdf.InvalidRecordType, "record kind %v has no ATDF mapping", kind)
	}
	enc, ok := encoders[kind]
	if !ok {
		return Record{}, stdf.NewError(stdf.InvalidRecordType, "record kind %v has no ATDF mapping", kind)
	}
	return Record{Kind: kind, Name: name, Fields: enc(rec, cfg)}, nil
}

// ToRecord converts a parsed ATDF Record back into its binary stdf.Record
// form.
func (r Record) ToRecord(cfg Config) (stdf.Record, error) {
	dec, ok := decoders[r.Kind]
	if !ok {
		return nil, stdf.NewError(stdf.InvalidRecordType, "ATDF record %q has no binary mapping", r.Name)
	}
	return dec(r.Fields, cfg)
}

// FormatRecord serializes rec directly to its ATDF text line, combining
// FromRecord and Format. This is the package-level convenience matching
// spec §6.3's Record.to_atdf_string.
func FormatRecord(rec stdf.Record, cfg Config) (string, error) {
	ar, err := FromRecord(rec, cfg)
	if err != nil {
		return "", err
	}
	return ar.Format(cfg), nil
}

// ParseRecordToBinary parses a single logical ATDF line directly into its
// binary stdf.Record form, combining ParseRecord and ToRecord. This is the
// package-level convenience matching spec §6.3's
// AtdfRecord.from_atdf_string when the caller wants the binary record, not
// the intermediate text form.
func ParseRecordToBinary(line string, cfg Config) (stdf.Record, error) {
	ar, err := ParseRecord(line, cfg)
	if err != nil {
		return nil, err
	}
	return ar.ToRecord(cfg)
}
