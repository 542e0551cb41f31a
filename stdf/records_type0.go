package stdf

import "github.com/noonchen/go-stdf/internal/cursor"

// FAR is the File Attributes Record: the mandatory first record of every
// STDF file, carrying the byte order marker (implicitly, via its own
// length) and the format version.
type FAR struct {
	CPUType uint8 // CPU_TYP: 0=DEC/PDP-11, 1=Sun, 2=PC, 3+ per vendor
	StdfVer uint8 // STDF_VER
}

// Kind implements Record.
func (FAR) Kind() Kind { return KindFAR }

func decodeFAR(c *cursor.Cursor) FAR {
	return FAR{
		CPUType: c.U1(),
		StdfVer: c.U1(),
	}
}

// ATR is the Audit Trail Record: one per STDF-generating or STDF-modifying
// program invocation.
type ATR struct {
	ModTim  uint32 // MOD_TIM: file modification timestamp, seconds since epoch
	CmdLine string // CMD_LINE: command line invoking the program
}

// Kind implements Record.
func (ATR) Kind() Kind { return KindATR }

func decodeATR(c *cursor.Cursor) ATR {
	return ATR{
		ModTim:  c.U4(),
		CmdLine: c.Cn(),
	}
}

// VUR is the Version Update Record, introduced in STDF V4-2007 to record
// one optional extension version a file uses. One VUR per update.
type VUR struct {
	UpdNam string // UPD_NAM: version update name
}

// Kind implements Record.
func (VUR) Kind() Kind { return KindVUR }

func decodeVUR(c *cursor.Cursor) VUR {
	return VUR{UpdNam: c.Cn()}
}
