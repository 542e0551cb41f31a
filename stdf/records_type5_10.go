package stdf

import "github.com/noonchen/go-stdf/internal/cursor"

// PIR is the Part Information Record: opens one part's test sequence.
type PIR struct {
	HeadNum uint8
	SiteNum uint8
}

// Kind implements Record.
func (PIR) Kind() Kind { return KindPIR }

func decodePIR(c *cursor.Cursor) PIR {
	return PIR{HeadNum: c.U1(), SiteNum: c.U1()}
}

// PRR is the Part Results Record: closes the part sequence started by a PIR.
type PRR struct {
	HeadNum uint8
	SiteNum uint8
	PartFlg byte
	NumTest uint16
	HardBin uint16
	SoftBin uint16
	XCoord  int16
	YCoord  int16
	TestT   uint32
	PartID  string
	PartTxt string
	PartFix []byte
}

// Kind implements Record.
func (PRR) Kind() Kind { return KindPRR }

func decodePRR(c *cursor.Cursor) PRR {
	return PRR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		PartFlg: c.B1(),
		NumTest: c.U2(),
		HardBin: c.U2(),
		SoftBin: c.U2(),
		XCoord:  c.I2(),
		YCoord:  c.I2(),
		TestT:   c.U4(),
		PartID:  c.Cn(),
		PartTxt: c.Cn(),
		PartFix: c.Bn(),
	}
}

// TSR is the Test Synopsis Record: per-test execution summary.
type TSR struct {
	HeadNum uint8 // 255 ("all sites/heads") maps to empty in ATDF
	SiteNum uint8
	TestTyp byte
	TestNum uint32
	ExecCnt uint32
	FailCnt uint32
	AlrmCnt uint32
	TestNam string
	SeqName string
	TestLbl string
	OptFlag byte
	TestTim float32
	TestMin float32
	TestMax float32
	TstSums float32
	TstSqrs float32
}

// Kind implements Record.
func (TSR) Kind() Kind { return KindTSR }

func decodeTSR(c *cursor.Cursor) TSR {
	return TSR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		TestTyp: c.C1(),
		TestNum: c.U4(),
		ExecCnt: c.U4(),
		FailCnt: c.U4(),
		AlrmCnt: c.U4(),
		TestNam: c.Cn(),
		SeqName: c.Cn(),
		TestLbl: c.Cn(),
		OptFlag: c.B1(),
		TestTim: c.R4(),
		TestMin: c.R4(),
		TestMax: c.R4(),
		TstSums: c.R4(),
		TstSqrs: c.R4(),
	}
}
