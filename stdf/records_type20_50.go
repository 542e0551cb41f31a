package stdf

import "github.com/noonchen/go-stdf/internal/cursor"

// BPS is the Begin Program Section Record: marks entry into a named program
// flow section, one of a BPS/EPS pair that brackets a PIR/PRR test loop.
type BPS struct {
	SeqName string
}

// Kind implements Record.
func (BPS) Kind() Kind { return KindBPS }

func decodeBPS(c *cursor.Cursor) BPS {
	return BPS{SeqName: c.Cn()}
}

// EPS is the End Program Section Record: closes the section opened by the
// most recent BPS. It carries no fields of its own.
type EPS struct{}

// Kind implements Record.
func (EPS) Kind() Kind { return KindEPS }

func decodeEPS(c *cursor.Cursor) EPS {
	return EPS{}
}

// GDR is the Generic Data Record: a caller-defined bag of tagged values,
// used for vendor- or program-specific data that doesn't fit any other
// record.
type GDR struct {
	FldCnt  uint16
	GenData []cursor.Value
}

// Kind implements Record.
func (GDR) Kind() Kind { return KindGDR }

func decodeGDR(c *cursor.Cursor) GDR {
	fldCnt := c.U2()
	return GDR{FldCnt: fldCnt, GenData: c.Vn(int(fldCnt))}
}

// DTR is the Datalog Text Record: one free-form line of text, typically
// emitted by a program's DATALOG statement.
type DTR struct {
	TestDat string
}

// Kind implements Record.
func (DTR) Kind() Kind { return KindDTR }

func decodeDTR(c *cursor.Cursor) DTR {
	return DTR{TestDat: c.Cn()}
}
