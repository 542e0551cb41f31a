package atdf

import "github.com/noonchen/go-stdf/stdf"

func pirToFields(r stdf.PIR, cfg Config) []string {
	return []string{headSite(r.HeadNum), headSite(r.SiteNum)}
}

func pirFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.PIR{HeadNum: parseHeadSite(fieldAt(f, 0)), SiteNum: parseHeadSite(fieldAt(f, 1))}, nil
}

func prrToFields(r stdf.PRR, cfg Config) []string {
	return []string{
		headSite(r.HeadNum), headSite(r.SiteNum),
		passFailPRR(r.PartFlg), retestCode(r.PartFlg), abortCode(r.PartFlg),
		formatU16(r.NumTest), formatU16(r.HardBin), formatU16(r.SoftBin),
		formatI16(r.XCoord), formatI16(r.YCoord), formatU32(r.TestT),
		r.PartID, r.PartTxt, string(r.PartFix),
	}
}

func prrFromFields(f []string, cfg Config) (stdf.Record, error) {
	partFlg := byte(0)
	if fieldAt(f, 2) == "F" {
		partFlg |= 0x08
	}
	if fieldAt(f, 3) == "I" {
		partFlg |= 0x01
	} else if fieldAt(f, 3) == "C" {
		partFlg |= 0x02
	}
	if fieldAt(f, 4) == "Y" {
		partFlg |= 0x04
	}
	return stdf.PRR{
		HeadNum: parseHeadSite(fieldAt(f, 0)), SiteNum: parseHeadSite(fieldAt(f, 1)),
		PartFlg: partFlg, NumTest: parseU16(fieldAt(f, 5)),
		HardBin: parseU16(fieldAt(f, 6)), SoftBin: parseU16(fieldAt(f, 7)),
		XCoord: parseI16(fieldAt(f, 8)), YCoord: parseI16(fieldAt(f, 9)),
		TestT: parseU32(fieldAt(f, 10)), PartID: fieldAt(f, 11), PartTxt: fieldAt(f, 12),
		PartFix: []byte(fieldAt(f, 13)),
	}, nil
}

func tsrToFields(r stdf.TSR, cfg Config) []string {
	return []string{
		headSite(r.HeadNum), headSite(r.SiteNum), formatU32(r.TestNum),
		r.TestNam, string(r.TestTyp),
		formatU32(r.ExecCnt), formatU32(r.FailCnt), formatU32(r.AlrmCnt),
		r.SeqName, r.TestLbl,
		formatF32(r.TestTim), formatF32(r.TestMin), formatF32(r.TestMax),
		formatF32(r.TstSums), formatF32(r.TstSqrs),
	}
}

func tsrFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.TSR{
		HeadNum: parseHeadSite(fieldAt(f, 0)), SiteNum: parseHeadSite(fieldAt(f, 1)),
		TestNum: parseU32(fieldAt(f, 2)),
		TestNam: fieldAt(f, 3), TestTyp: byteOrEmpty(fieldAt(f, 4)),
		ExecCnt: parseU32(fieldAt(f, 5)), FailCnt: parseU32(fieldAt(f, 6)), AlrmCnt: parseU32(fieldAt(f, 7)),
		SeqName: fieldAt(f, 8), TestLbl: fieldAt(f, 9),
		TestTim: parseF32(fieldAt(f, 10)), TestMin: parseF32(fieldAt(f, 11)), TestMax: parseF32(fieldAt(f, 12)),
		TstSums: parseF32(fieldAt(f, 13)), TstSqrs: parseF32(fieldAt(f, 14)),
	}, nil
}
