package stdf

import "github.com/noonchen/go-stdf/internal/cursor"

// WIR is the Wafer Information Record: opens a wafer.
type WIR struct {
	HeadNum uint8
	SiteGrp uint8
	StartT  uint32
	WaferID string
}

// Kind implements Record.
func (WIR) Kind() Kind { return KindWIR }

func decodeWIR(c *cursor.Cursor) WIR {
	return WIR{
		HeadNum: c.U1(),
		SiteGrp: c.U1(),
		StartT:  c.U4(),
		WaferID: c.Cn(),
	}
}

// WRR is the Wafer Results Record: closes a wafer started by a WIR.
type WRR struct {
	HeadNum uint8
	SiteGrp uint8
	FinishT uint32
	PartCnt uint32
	RtstCnt uint32
	AbrtCnt uint32
	GoodCnt uint32
	FuncCnt uint32
	WaferID string
	FabwfID string
	FrameID string
	MaskID  string
	UsrDesc string
	ExcDesc string
}

// Kind implements Record.
func (WRR) Kind() Kind { return KindWRR }

func decodeWRR(c *cursor.Cursor) WRR {
	return WRR{
		HeadNum: c.U1(),
		SiteGrp: c.U1(),
		FinishT: c.U4(),
		PartCnt: c.U4(),
		RtstCnt: c.U4(),
		AbrtCnt: c.U4(),
		GoodCnt: c.U4(),
		FuncCnt: c.U4(),
		WaferID: c.Cn(),
		FabwfID: c.Cn(),
		FrameID: c.Cn(),
		MaskID:  c.Cn(),
		UsrDesc: c.Cn(),
		ExcDesc: c.Cn(),
	}
}

// WCR is the Wafer Configuration Record: physical wafer geometry, shared
// across all wafers in a lot.
type WCR struct {
	WafrSiz float32
	DieHt   float32
	DieWid  float32
	WfUnits uint8
	WfFlat  byte
	CenterX int16
	CenterY int16
	PosX    byte
	PosY    byte
}

// Kind implements Record.
func (WCR) Kind() Kind { return KindWCR }

func decodeWCR(c *cursor.Cursor) WCR {
	return WCR{
		WafrSiz: c.R4(),
		DieHt:   c.R4(),
		DieWid:  c.R4(),
		WfUnits: c.U1(),
		WfFlat:  c.C1(),
		CenterX: c.I2(),
		CenterY: c.I2(),
		PosX:    c.C1(),
		PosY:    c.C1(),
	}
}
