package atdf

import "github.com/noonchen/go-stdf/stdf"

func wirToFields(r stdf.WIR, cfg Config) []string {
	return []string{formatU8(r.HeadNum), formatU8(r.SiteGrp), formatTime(r.StartT), r.WaferID}
}

func wirFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.WIR{
		HeadNum: parseU8(fieldAt(f, 0)), SiteGrp: parseU8(fieldAt(f, 1)),
		StartT: parseTime(fieldAt(f, 2)), WaferID: fieldAt(f, 3),
	}, nil
}

func wrrToFields(r stdf.WRR, cfg Config) []string {
	return []string{
		formatU8(r.HeadNum), formatU8(r.SiteGrp), formatTime(r.FinishT),
		formatU32(r.PartCnt), formatU32(r.RtstCnt), formatU32(r.AbrtCnt),
		formatU32(r.GoodCnt), formatU32(r.FuncCnt),
		r.WaferID, r.FabwfID, r.FrameID, r.MaskID, r.UsrDesc, r.ExcDesc,
	}
}

func wrrFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.WRR{
		HeadNum: parseU8(fieldAt(f, 0)), SiteGrp: parseU8(fieldAt(f, 1)),
		FinishT: parseTime(fieldAt(f, 2)), PartCnt: parseU32(fieldAt(f, 3)),
		RtstCnt: parseU32(fieldAt(f, 4)), AbrtCnt: parseU32(fieldAt(f, 5)),
		GoodCnt: parseU32(fieldAt(f, 6)), FuncCnt: parseU32(fieldAt(f, 7)),
		WaferID: fieldAt(f, 8), FabwfID: fieldAt(f, 9), FrameID: fieldAt(f, 10),
		MaskID: fieldAt(f, 11), UsrDesc: fieldAt(f, 12), ExcDesc: fieldAt(f, 13),
	}, nil
}

func wcrToFields(r stdf.WCR, cfg Config) []string {
	return []string{
		formatF32(r.WafrSiz), formatF32(r.DieHt), formatF32(r.DieWid), formatU8(r.WfUnits),
		string(r.WfFlat), formatI16(r.CenterX), formatI16(r.CenterY), string(r.PosX), string(r.PosY),
	}
}

func wcrFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.WCR{
		WafrSiz: parseF32(fieldAt(f, 0)), DieHt: parseF32(fieldAt(f, 1)), DieWid: parseF32(fieldAt(f, 2)),
		WfUnits: parseU8(fieldAt(f, 3)), WfFlat: byteOrEmpty(fieldAt(f, 4)),
		CenterX: parseI16(fieldAt(f, 5)), CenterY: parseI16(fieldAt(f, 6)),
		PosX: byteOrEmpty(fieldAt(f, 7)), PosY: byteOrEmpty(fieldAt(f, 8)),
	}, nil
}
