package atdf

import (
	"math"
	"strings"

	"github.com/noonchen/go-stdf/stdf"
)

// scaleOut applies the scale flag's "multiply by 10^exp" rule on emit; the
// binary value is returned verbatim when cfg.Scale is false (the default
// per spec §4.5).
func scaleOut(v float32, exp int8, scale bool) float32 {
	if !scale {
		return v
	}
	return float32(float64(v) * math.Pow10(int(exp)))
}

// scaleIn is scaleOut's inverse, applied on parse.
func scaleIn(v float32, exp int8, scale bool) float32 {
	if !scale {
		return v
	}
	return float32(float64(v) / math.Pow10(int(exp)))
}

func ptrToFields(r stdf.PTR, cfg Config) []string {
	return []string{
		formatU32(r.TestNum), headSite(r.HeadNum), headSite(r.SiteNum),
		formatF32(scaleOut(r.Result, r.ResScal, cfg.Scale)),
		passFailPTR(r.TestFlg, r.ParmFlg), alarmFlags(r.TestFlg, r.ParmFlg),
		r.TestTxt, r.AlarmID,
		limitCompare(r.ParmFlg), r.Units,
		formatF32(scaleOut(r.LoLimit, r.LlmScal, cfg.Scale)),
		formatF32(scaleOut(r.HiLimit, r.HlmScal, cfg.Scale)),
		r.CResfmt, r.CLlmfmt, r.CHlmfmt,
		formatF32(r.LoSpec), formatF32(r.HiSpec),
		formatI8(r.ResScal), formatI8(r.LlmScal), formatI8(r.HlmScal),
	}
}

func ptrFromFields(f []string, cfg Config) (stdf.Record, error) {
	resScal := parseI8(fieldAt(f, 17))
	llmScal := parseI8(fieldAt(f, 18))
	hlmScal := parseI8(fieldAt(f, 19))

	var testFlg, parmFlg byte
	switch fieldAt(f, 4) {
	case "A":
		parmFlg |= 0x20
	case "":
		testFlg |= 0x40
	case "F":
		testFlg |= 0x80
	}
	for _, ch := range fieldAt(f, 5) {
		switch ch {
		case 'A':
			testFlg |= 0x01
		case 'U':
			testFlg |= 0x04
		case 'T':
			testFlg |= 0x08
		case 'N':
			testFlg |= 0x10
		case 'X':
			testFlg |= 0x20
		case 'S':
			parmFlg |= 0x01
		case 'D':
			parmFlg |= 0x02
		case 'O':
			parmFlg |= 0x04
		case 'H':
			parmFlg |= 0x08
		case 'L':
			parmFlg |= 0x10
		}
	}
	switch fieldAt(f, 8) {
	case ">=":
		parmFlg |= 0x40
	case "<=":
		parmFlg |= 0x80
	}

	return stdf.PTR{
		TestNum: parseU32(fieldAt(f, 0)), HeadNum: parseHeadSite(fieldAt(f, 1)), SiteNum: parseHeadSite(fieldAt(f, 2)),
		TestFlg: testFlg, ParmFlg: parmFlg,
		Result:  scaleIn(parseF32(fieldAt(f, 3)), resScal, cfg.Scale),
		TestTxt: fieldAt(f, 6), AlarmID: fieldAt(f, 7),
		ResScal: resScal, LlmScal: llmScal, HlmScal: hlmScal,
		LoLimit: scaleIn(parseF32(fieldAt(f, 10)), llmScal, cfg.Scale),
		HiLimit: scaleIn(parseF32(fieldAt(f, 11)), hlmScal, cfg.Scale),
		Units:   fieldAt(f, 9), CResfmt: fieldAt(f, 12), CLlmfmt: fieldAt(f, 13), CHlmfmt: fieldAt(f, 14),
		LoSpec: parseF32(fieldAt(f, 15)), HiSpec: parseF32(fieldAt(f, 16)),
	}, nil
}

func mprToFields(r stdf.MPR, cfg Config) []string {
	rslt := make([]string, len(r.RtnRslt))
	for i, v := range r.RtnRslt {
		rslt[i] = formatF32(scaleOut(v, r.ResScal, cfg.Scale))
	}
	return []string{
		formatU32(r.TestNum), headSite(r.HeadNum), headSite(r.SiteNum),
		joinU8(r.RtnStat), strings.Join(rslt, ","),
		passFailPTR(r.TestFlg, r.ParmFlg), alarmFlags(r.TestFlg, r.ParmFlg),
		r.TestTxt, r.AlarmID,
		limitCompare(r.ParmFlg), r.Units,
		formatF32(scaleOut(r.LoLimit, r.LlmScal, cfg.Scale)),
		formatF32(scaleOut(r.HiLimit, r.HlmScal, cfg.Scale)),
		formatF32(r.StartIn), formatF32(r.IncrIn), r.UnitsIn,
		joinU16(r.RtnIndx),
		r.CResfmt, r.CLlmfmt, r.CHlmfmt,
		formatF32(r.LoSpec), formatF32(r.HiSpec),
		formatI8(r.ResScal), formatI8(r.LlmScal), formatI8(r.HlmScal),
	}
}

func mprFromFields(f []string, cfg Config) (stdf.Record, error) {
	resScal := parseI8(fieldAt(f, 22))
	llmScal := parseI8(fieldAt(f, 23))
	hlmScal := parseI8(fieldAt(f, 24))

	var testFlg, parmFlg byte
	for _, ch := range fieldAt(f, 6) {
		switch ch {
		case 'A':
			testFlg |= 0x01
		case 'U':
			testFlg |= 0x04
		case 'T':
			testFlg |= 0x08
		case 'N':
			testFlg |= 0x10
		case 'X':
			testFlg |= 0x20
		case 'S':
			parmFlg |= 0x01
		case 'D':
			parmFlg |= 0x02
		case 'O':
			parmFlg |= 0x04
		case 'H':
			parmFlg |= 0x08
		case 'L':
			parmFlg |= 0x10
		}
	}
	switch fieldAt(f, 9) {
	case ">=":
		parmFlg |= 0x40
	case "<=":
		parmFlg |= 0x80
	}

	rsltField := fieldAt(f, 4)
	var rtnRslt []float32
	if rsltField != "" {
		parts := strings.Split(rsltField, ",")
		rtnRslt = make([]float32, len(parts))
		for i, p := range parts {
			rtnRslt[i] = scaleIn(parseF32(p), resScal, cfg.Scale)
		}
	}
	rtnIndx := splitU16List(fieldAt(f, 16))

	return stdf.MPR{
		TestNum: parseU32(fieldAt(f, 0)), HeadNum: parseHeadSite(fieldAt(f, 1)), SiteNum: parseHeadSite(fieldAt(f, 2)),
		TestFlg: testFlg, ParmFlg: parmFlg,
		RtnICnt: uint16(len(rtnIndx)), RsltCnt: uint16(len(rtnRslt)),
		RtnStat: splitU8List(fieldAt(f, 3)), RtnRslt: rtnRslt,
		TestTxt: fieldAt(f, 7), AlarmID: fieldAt(f, 8),
		ResScal: resScal, LlmScal: llmScal, HlmScal: hlmScal,
		LoLimit: scaleIn(parseF32(fieldAt(f, 11)), llmScal, cfg.Scale),
		HiLimit: scaleIn(parseF32(fieldAt(f, 12)), hlmScal, cfg.Scale),
		StartIn: parseF32(fieldAt(f, 13)), IncrIn: parseF32(fieldAt(f, 14)),
		RtnIndx: rtnIndx,
		Units:   fieldAt(f, 10), UnitsIn: fieldAt(f, 15),
		CResfmt: fieldAt(f, 17), CLlmfmt: fieldAt(f, 18), CHlmfmt: fieldAt(f, 19),
		LoSpec: parseF32(fieldAt(f, 20)), HiSpec: parseF32(fieldAt(f, 21)),
	}, nil
}

func ftrToFields(r stdf.FTR, cfg Config) []string {
	return []string{
		formatU32(r.TestNum), headSite(r.HeadNum), headSite(r.SiteNum),
		passFailFTR(r.TestFlg), alarmFlags(r.TestFlg, 0),
		r.VectNam, r.TimeSet,
		formatU32(r.CyclCnt), formatU32(r.RelVadr), formatU32(r.ReptCnt), formatU32(r.NumFail),
		formatI32(r.XfailAd), formatI32(r.YfailAd), formatI16(r.VectOff),
		joinU16(r.RtnIndx), joinU8(r.RtnStat), joinU16(r.PgmIndx), joinU8(r.PgmStat),
		string(r.FailPin), r.OpCode, r.TestTxt, r.AlarmID, r.ProgTxt, r.RsltTxt,
		formatU8(r.PatgNum), string(r.SpinMap),
	}
}

func ftrFromFields(f []string, cfg Config) (stdf.Record, error) {
	var testFlg byte
	switch fieldAt(f, 3) {
	case "":
		testFlg |= 0x40
	case "F":
		testFlg |= 0x80
	}
	for _, ch := range fieldAt(f, 4) {
		switch ch {
		case 'A':
			testFlg |= 0x01
		case 'U':
			testFlg |= 0x04
		case 'T':
			testFlg |= 0x08
		case 'N':
			testFlg |= 0x10
		case 'X':
			testFlg |= 0x20
		}
	}
	rtnIndx := splitU16List(fieldAt(f, 14))
	pgmIndx := splitU16List(fieldAt(f, 16))
	return stdf.FTR{
		TestNum: parseU32(fieldAt(f, 0)), HeadNum: parseHeadSite(fieldAt(f, 1)), SiteNum: parseHeadSite(fieldAt(f, 2)),
		TestFlg: testFlg, VectNam: fieldAt(f, 5), TimeSet: fieldAt(f, 6),
		CyclCnt: parseU32(fieldAt(f, 7)), RelVadr: parseU32(fieldAt(f, 8)),
		ReptCnt: parseU32(fieldAt(f, 9)), NumFail: parseU32(fieldAt(f, 10)),
		XfailAd: parseI32(fieldAt(f, 11)), YfailAd: parseI32(fieldAt(f, 12)), VectOff: parseI16(fieldAt(f, 13)),
		RtnICnt: uint16(len(rtnIndx)), PgmICnt: uint16(len(pgmIndx)),
		RtnIndx: rtnIndx, RtnStat: splitU8List(fieldAt(f, 15)),
		PgmIndx: pgmIndx, PgmStat: splitU8List(fieldAt(f, 17)),
		FailPin: []byte(fieldAt(f, 18)),
		OpCode:  fieldAt(f, 19), TestTxt: fieldAt(f, 20), AlarmID: fieldAt(f, 21),
		ProgTxt: fieldAt(f, 22), RsltTxt: fieldAt(f, 23),
		PatgNum: parseU8Default(fieldAt(f, 24), 255), SpinMap: []byte(fieldAt(f, 25)),
	}, nil
}

func formatI32(v int32) string {
	return itoa(int(v))
}

func parseI32(s string) int32 {
	return int32(atoiDefault(s, 0))
}
