package atdf

import (
	"strconv"
	"strings"

	"github.com/noonchen/go-stdf/stdf"
)

func mirToFields(r stdf.MIR, cfg Config) []string {
	return []string{
		formatTime(r.SetupT), formatTime(r.StartT), formatU8(r.StatNum),
		string(r.ModeCod), string(r.RtstCod), string(r.ProtCod),
		formatU16(r.BurnTim), string(r.CmodCod),
		r.LotID, r.PartTyp, r.NodeNam, r.TstrTyp, r.JobNam, r.JobRev,
		r.SblotID, r.OperNam, r.ExecTyp, r.ExecVer, r.TestCod, r.TstTemp,
		r.UserTxt, r.AuxFile, r.PkgTyp, r.FamlyID, r.DateCod, r.FacilID,
		r.FloorID, r.ProcID, r.OperFrq, r.SpecNam, r.SpecVer, r.FlowID,
		r.SetupID, r.DsgnRev, r.EngID, r.RomCod, r.SerlNum, r.SuprNam,
	}
}

func mirFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.MIR{
		SetupT:  parseTime(fieldAt(f, 0)),
		StartT:  parseTime(fieldAt(f, 1)),
		StatNum: parseU8(fieldAt(f, 2)),
		ModeCod: byteOrEmpty(fieldAt(f, 3)),
		RtstCod: byteOrEmpty(fieldAt(f, 4)),
		ProtCod: byteOrEmpty(fieldAt(f, 5)),
		BurnTim: parseU16Default(fieldAt(f, 6), 65535),
		CmodCod: byteOrEmpty(fieldAt(f, 7)),
		LotID:   fieldAt(f, 8), PartTyp: fieldAt(f, 9), NodeNam: fieldAt(f, 10),
		TstrTyp: fieldAt(f, 11), JobNam: fieldAt(f, 12), JobRev: fieldAt(f, 13),
		SblotID: fieldAt(f, 14), OperNam: fieldAt(f, 15), ExecTyp: fieldAt(f, 16),
		ExecVer: fieldAt(f, 17), TestCod: fieldAt(f, 18), TstTemp: fieldAt(f, 19),
		UserTxt: fieldAt(f, 20), AuxFile: fieldAt(f, 21), PkgTyp: fieldAt(f, 22),
		FamlyID: fieldAt(f, 23), DateCod: fieldAt(f, 24), FacilID: fieldAt(f, 25),
		FloorID: fieldAt(f, 26), ProcID: fieldAt(f, 27), OperFrq: fieldAt(f, 28),
		SpecNam: fieldAt(f, 29), SpecVer: fieldAt(f, 30), FlowID: fieldAt(f, 31),
		SetupID: fieldAt(f, 32), DsgnRev: fieldAt(f, 33), EngID: fieldAt(f, 34),
		RomCod: fieldAt(f, 35), SerlNum: fieldAt(f, 36), SuprNam: fieldAt(f, 37),
	}, nil
}

func parseU16Default(s string, def uint16) uint16 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return def
	}
	return uint16(v)
}

func mrrToFields(r stdf.MRR, cfg Config) []string {
	return []string{formatTime(r.FinishT), string(r.DispCod), r.UsrDesc, r.ExcDesc}
}

func mrrFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.MRR{
		FinishT: parseTime(fieldAt(f, 0)),
		DispCod: byteOrEmpty(fieldAt(f, 1)),
		UsrDesc: fieldAt(f, 2),
		ExcDesc: fieldAt(f, 3),
	}, nil
}

func pcrToFields(r stdf.PCR, cfg Config) []string {
	return []string{
		headSite(r.HeadNum), headSite(r.SiteNum), formatU32(r.PartCnt),
		formatU32(r.RtstCnt), formatU32(r.AbrtCnt), formatU32(r.GoodCnt), formatU32(r.FuncCnt),
	}
}

func pcrFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.PCR{
		HeadNum: parseHeadSite(fieldAt(f, 0)), SiteNum: parseHeadSite(fieldAt(f, 1)),
		PartCnt: parseU32(fieldAt(f, 2)), RtstCnt: parseU32(fieldAt(f, 3)),
		AbrtCnt: parseU32(fieldAt(f, 4)), GoodCnt: parseU32(fieldAt(f, 5)), FuncCnt: parseU32(fieldAt(f, 6)),
	}, nil
}

func hbrToFields(r stdf.HBR, cfg Config) []string {
	return []string{
		headSite(r.HeadNum), headSite(r.SiteNum), formatU16(r.HbinNum),
		formatU32(r.HbinCnt), string(r.HbinPf), r.HbinNam,
	}
}

func hbrFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.HBR{
		HeadNum: parseHeadSite(fieldAt(f, 0)), SiteNum: parseHeadSite(fieldAt(f, 1)),
		HbinNum: parseU16(fieldAt(f, 2)), HbinCnt: parseU32(fieldAt(f, 3)),
		HbinPf: byteOrEmpty(fieldAt(f, 4)), HbinNam: fieldAt(f, 5),
	}, nil
}

func sbrToFields(r stdf.SBR, cfg Config) []string {
	return []string{
		headSite(r.HeadNum), headSite(r.SiteNum), formatU16(r.SbinNum),
		formatU32(r.SbinCnt), string(r.SbinPf), r.SbinNam,
	}
}

func sbrFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.SBR{
		HeadNum: parseHeadSite(fieldAt(f, 0)), SiteNum: parseHeadSite(fieldAt(f, 1)),
		SbinNum: parseU16(fieldAt(f, 2)), SbinCnt: parseU32(fieldAt(f, 3)),
		SbinPf: byteOrEmpty(fieldAt(f, 4)), SbinNam: fieldAt(f, 5),
	}, nil
}

func pmrToFields(r stdf.PMR, cfg Config) []string {
	return []string{
		formatU16(r.PmrIndx), formatU16(r.ChanTyp), r.ChanNam, r.PhyNam, r.LogNam,
		formatU8(r.HeadNum), formatU8(r.SiteNum),
	}
}

func pmrFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.PMR{
		PmrIndx: parseU16(fieldAt(f, 0)), ChanTyp: parseU16(fieldAt(f, 1)),
		ChanNam: fieldAt(f, 2), PhyNam: fieldAt(f, 3), LogNam: fieldAt(f, 4),
		HeadNum: parseU8Default(fieldAt(f, 5), 1), SiteNum: parseU8Default(fieldAt(f, 6), 1),
	}, nil
}

func parseU8Default(s string, def uint8) uint8 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return def
	}
	return uint8(v)
}

func pgrToFields(r stdf.PGR, cfg Config) []string {
	idx := make([]string, len(r.PmrIndx))
	for i, v := range r.PmrIndx {
		idx[i] = formatU16(v)
	}
	return []string{formatU16(r.GrpIndx), r.GrpNam, formatU16(r.IndxCnt), strings.Join(idx, ",")}
}

func pgrFromFields(f []string, cfg Config) (stdf.Record, error) {
	idx := splitU16List(fieldAt(f, 3))
	return stdf.PGR{
		GrpIndx: parseU16(fieldAt(f, 0)), GrpNam: fieldAt(f, 1),
		IndxCnt: uint16(len(idx)), PmrIndx: idx,
	}, nil
}

func splitU16List(s string) []uint16 {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint16, len(parts))
	for i, p := range parts {
		out[i] = parseU16(p)
	}
	return out
}

func splitU8List(s string) []uint8 {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint8, len(parts))
	for i, p := range parts {
		out[i] = parseU8(p)
	}
	return out
}

func joinU16(vs []uint16) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatU16(v)
	}
	return strings.Join(parts, ",")
}

func joinU8(vs []uint8) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatU8(v)
	}
	return strings.Join(parts, ",")
}

func joinStrings(vs []string) string { return strings.Join(vs, ",") }

func plrToFields(r stdf.PLR, cfg Config) []string {
	return []string{
		joinU16(r.GrpIndx), joinU16(r.GrpMode), joinStrings(grpRadx(r.GrpRadx)),
		combinePinChars(r.PgmChal, r.PgmChar), combinePinChars(r.RtnChal, r.RtnChar),
	}
}

func plrFromFields(f []string, cfg Config) (stdf.Record, error) {
	grpIndx := splitU16List(fieldAt(f, 0))
	radxLetters := strings.Split(fieldAt(f, 2), ",")
	pgmChal, pgmChar := splitPinChars(fieldAt(f, 3))
	rtnChal, rtnChar := splitPinChars(fieldAt(f, 4))
	return stdf.PLR{
		GrpCnt:  uint16(len(grpIndx)),
		GrpIndx: grpIndx,
		GrpMode: splitU16List(fieldAt(f, 1)),
		GrpRadx: parseGrpRadx(radxLetters),
		PgmChar: pgmChar, RtnChar: rtnChar,
		PgmChal: pgmChal, RtnChal: rtnChal,
	}, nil
}

func rdrToFields(r stdf.RDR, cfg Config) []string {
	return []string{formatU16(r.NumBins), joinU16(r.RtstBin)}
}

func rdrFromFields(f []string, cfg Config) (stdf.Record, error) {
	bins := splitU16List(fieldAt(f, 1))
	return stdf.RDR{NumBins: uint16(len(bins)), RtstBin: bins}, nil
}

func sdrToFields(r stdf.SDR, cfg Config) []string {
	return []string{
		formatU8(r.HeadNum), formatU8(r.SiteGrp), formatU8(r.SiteCnt), joinU8(r.SiteNum),
		r.HandTyp, r.HandID, r.CardTyp, r.CardID, r.LoadTyp, r.LoadID,
		r.DibTyp, r.DibID, r.CablTyp, r.CablID, r.ContTyp, r.ContID,
		r.LasrTyp, r.LasrID, r.ExtrTyp, r.ExtrID,
	}
}

func sdrFromFields(f []string, cfg Config) (stdf.Record, error) {
	siteNum := splitU8List(fieldAt(f, 3))
	return stdf.SDR{
		HeadNum: parseU8(fieldAt(f, 0)), SiteGrp: parseU8(fieldAt(f, 1)),
		SiteCnt: uint8(len(siteNum)), SiteNum: siteNum,
		HandTyp: fieldAt(f, 4), HandID: fieldAt(f, 5), CardTyp: fieldAt(f, 6), CardID: fieldAt(f, 7),
		LoadTyp: fieldAt(f, 8), LoadID: fieldAt(f, 9), DibTyp: fieldAt(f, 10), DibID: fieldAt(f, 11),
		CablTyp: fieldAt(f, 12), CablID: fieldAt(f, 13), ContTyp: fieldAt(f, 14), ContID: fieldAt(f, 15),
		LasrTyp: fieldAt(f, 16), LasrID: fieldAt(f, 17), ExtrTyp: fieldAt(f, 18), ExtrID: fieldAt(f, 19),
	}, nil
}
