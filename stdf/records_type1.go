package stdf

import "github.com/noonchen/go-stdf/internal/cursor"

// MIR is the Master Information Record: one per STDF file, carrying lot and
// job setup data.
type MIR struct {
	SetupT  uint32
	StartT  uint32
	StatNum uint8
	ModeCod byte
	RtstCod byte
	ProtCod byte
	BurnTim uint16 // defaults to 65535 (unknown) when absent, not 0
	CmodCod byte
	LotID   string
	PartTyp string
	NodeNam string
	TstrTyp string
	JobNam  string
	JobRev  string
	SblotID string
	OperNam string
	ExecTyp string
	ExecVer string
	TestCod string
	TstTemp string
	UserTxt string
	AuxFile string
	PkgTyp  string
	FamlyID string
	DateCod string
	FacilID string
	FloorID string
	ProcID  string
	OperFrq string
	SpecNam string
	SpecVer string
	FlowID  string
	SetupID string
	DsgnRev string
	EngID   string
	RomCod  string
	SerlNum string
	SuprNam string
}

// Kind implements Record.
func (MIR) Kind() Kind { return KindMIR }

func decodeMIR(c *cursor.Cursor) MIR {
	return MIR{
		SetupT:  c.U4(),
		StartT:  c.U4(),
		StatNum: c.U1(),
		ModeCod: c.C1(),
		RtstCod: c.C1(),
		ProtCod: c.C1(),
		BurnTim: c.U2Default(65535),
		CmodCod: c.C1(),
		LotID:   c.Cn(),
		PartTyp: c.Cn(),
		NodeNam: c.Cn(),
		TstrTyp: c.Cn(),
		JobNam:  c.Cn(),
		JobRev:  c.Cn(),
		SblotID: c.Cn(),
		OperNam: c.Cn(),
		ExecTyp: c.Cn(),
		ExecVer: c.Cn(),
		TestCod: c.Cn(),
		TstTemp: c.Cn(),
		UserTxt: c.Cn(),
		AuxFile: c.Cn(),
		PkgTyp:  c.Cn(),
		FamlyID: c.Cn(),
		DateCod: c.Cn(),
		FacilID: c.Cn(),
		FloorID: c.Cn(),
		ProcID:  c.Cn(),
		OperFrq: c.Cn(),
		SpecNam: c.Cn(),
		SpecVer: c.Cn(),
		FlowID:  c.Cn(),
		SetupID: c.Cn(),
		DsgnRev: c.Cn(),
		EngID:   c.Cn(),
		RomCod:  c.Cn(),
		SerlNum: c.Cn(),
		SuprNam: c.Cn(),
	}
}

// MRR is the Master Results Record: closes out the lot started by an MIR.
type MRR struct {
	FinishT uint32
	DispCod byte // defaults to space
	UsrDesc string
	ExcDesc string
}

// Kind implements Record.
func (MRR) Kind() Kind { return KindMRR }

func decodeMRR(c *cursor.Cursor) MRR {
	return MRR{
		FinishT: c.U4(),
		DispCod: c.C1(),
		UsrDesc: c.Cn(),
		ExcDesc: c.Cn(),
	}
}

// PCR is the Part Count Record: per-site part tallies.
type PCR struct {
	HeadNum uint8
	SiteNum uint8
	PartCnt uint32
	RtstCnt uint32
	AbrtCnt uint32
	GoodCnt uint32
	FuncCnt uint32
}

// Kind implements Record.
func (PCR) Kind() Kind { return KindPCR }

func decodePCR(c *cursor.Cursor) PCR {
	return PCR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		PartCnt: c.U4(),
		RtstCnt: c.U4(),
		AbrtCnt: c.U4(),
		GoodCnt: c.U4(),
		FuncCnt: c.U4(),
	}
}

// HBR is the Hardware Bin Record: per hardware-bin tallies.
type HBR struct {
	HeadNum uint8
	SiteNum uint8
	HbinNum uint16
	HbinCnt uint32
	HbinPf  byte
	HbinNam string
}

// Kind implements Record.
func (HBR) Kind() Kind { return KindHBR }

func decodeHBR(c *cursor.Cursor) HBR {
	return HBR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		HbinNum: c.U2(),
		HbinCnt: c.U4(),
		HbinPf:  c.C1(),
		HbinNam: c.Cn(),
	}
}

// SBR is the Software Bin Record: per software-bin tallies.
type SBR struct {
	HeadNum uint8
	SiteNum uint8
	SbinNum uint16
	SbinCnt uint32
	SbinPf  byte
	SbinNam string
}

// Kind implements Record.
func (SBR) Kind() Kind { return KindSBR }

func decodeSBR(c *cursor.Cursor) SBR {
	return SBR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		SbinNum: c.U2(),
		SbinCnt: c.U4(),
		SbinPf:  c.C1(),
		SbinNam: c.Cn(),
	}
}

// PMR is the Pin Map Record: maps a pin index to physical/logical names.
type PMR struct {
	PmrIndx uint16
	ChanTyp uint16
	ChanNam string
	PhyNam  string
	LogNam  string
	HeadNum uint8 // defaults to 1 when absent
	SiteNum uint8 // defaults to 1 when absent
}

// Kind implements Record.
func (PMR) Kind() Kind { return KindPMR }

func decodePMR(c *cursor.Cursor) PMR {
	return PMR{
		PmrIndx: c.U2(),
		ChanTyp: c.U2(),
		ChanNam: c.Cn(),
		PhyNam:  c.Cn(),
		LogNam:  c.Cn(),
		HeadNum: c.U1Default(1),
		SiteNum: c.U1Default(1),
	}
}

// PGR is the Pin Group Record: names a group of pins by index.
type PGR struct {
	GrpIndx uint16
	GrpNam  string
	IndxCnt uint16
	PmrIndx []uint16
}

// Kind implements Record.
func (PGR) Kind() Kind { return KindPGR }

func decodePGR(c *cursor.Cursor) PGR {
	grpIndx := c.U2()
	grpNam := c.Cn()
	indxCnt := c.U2()
	return PGR{
		GrpIndx: grpIndx,
		GrpNam:  grpNam,
		IndxCnt: indxCnt,
		PmrIndx: c.KxU2(int(indxCnt)),
	}
}

// PLR is the Pin List Record: display radix and state encodings per pin
// group.
type PLR struct {
	GrpCnt  uint16
	GrpIndx []uint16
	GrpMode []uint16
	GrpRadx []uint8
	PgmChar []string
	RtnChar []string
	PgmChal []string
	RtnChal []string
}

// Kind implements Record.
func (PLR) Kind() Kind { return KindPLR }

func decodePLR(c *cursor.Cursor) PLR {
	grpCnt := c.U2()
	k := int(grpCnt)
	return PLR{
		GrpCnt:  grpCnt,
		GrpIndx: c.KxU2(k),
		GrpMode: c.KxU2(k),
		GrpRadx: c.KxU1(k),
		PgmChar: c.KxCn(k),
		RtnChar: c.KxCn(k),
		PgmChal: c.KxCn(k),
		RtnChal: c.KxCn(k),
	}
}

// RDR is the Retest Data Record: bins selected for retest.
type RDR struct {
	NumBins uint16
	RtstBin []uint16
}

// Kind implements Record.
func (RDR) Kind() Kind { return KindRDR }

func decodeRDR(c *cursor.Cursor) RDR {
	numBins := c.U2()
	return RDR{NumBins: numBins, RtstBin: c.KxU2(int(numBins))}
}

// SDR is the Site Description Record: per-site hardware configuration.
type SDR struct {
	HeadNum uint8
	SiteGrp uint8
	SiteCnt uint8
	SiteNum []uint8
	HandTyp string
	HandID  string
	CardTyp string
	CardID  string
	LoadTyp string
	LoadID  string
	DibTyp  string
	DibID   string
	CablTyp string
	CablID  string
	ContTyp string
	ContID  string
	LasrTyp string
	LasrID  string
	ExtrTyp string
	ExtrID  string
}

// Kind implements Record.
func (SDR) Kind() Kind { return KindSDR }

func decodeSDR(c *cursor.Cursor) SDR {
	headNum := c.U1()
	siteGrp := c.U1()
	siteCnt := c.U1()
	return SDR{
		HeadNum: headNum,
		SiteGrp: siteGrp,
		SiteCnt: siteCnt,
		SiteNum: c.KxU1(int(siteCnt)),
		HandTyp: c.Cn(),
		HandID:  c.Cn(),
		CardTyp: c.Cn(),
		CardID:  c.Cn(),
		LoadTyp: c.Cn(),
		LoadID:  c.Cn(),
		DibTyp:  c.Cn(),
		DibID:   c.Cn(),
		CablTyp: c.Cn(),
		CablID:  c.Cn(),
		ContTyp: c.Cn(),
		ContID:  c.Cn(),
		LasrTyp: c.Cn(),
		LasrID:  c.Cn(),
		ExtrTyp: c.Cn(),
		ExtrID:  c.Cn(),
	}
}

// PSR is the Pattern Sequence Record (V4-2007): describes pattern files
// referenced by STR records.
type PSR struct {
	ContFlg byte
	PsrIndx uint16
	PsrNam  string
	OptFlg  byte
	TotpCnt uint16
	LocpCnt uint16
	PatBgn  []uint64
	PatEnd  []uint64
	PatFile []string
	PatLbl  []string
	FileUID []string
	AtpgDsc []string
	SrcID   []string
}

// Kind implements Record.
func (PSR) Kind() Kind { return KindPSR }

func decodePSR(c *cursor.Cursor) PSR {
	contFlg := c.B1()
	psrIndx := c.U2()
	psrNam := c.Cn()
	optFlg := c.B1()
	totpCnt := c.U2()
	locpCnt := c.U2()
	k := int(locpCnt)
	return PSR{
		ContFlg: contFlg,
		PsrIndx: psrIndx,
		PsrNam:  psrNam,
		OptFlg:  optFlg,
		TotpCnt: totpCnt,
		LocpCnt: locpCnt,
		PatBgn:  c.KxU8(k),
		PatEnd:  c.KxU8(k),
		PatFile: c.KxCn(k),
		PatLbl:  c.KxCn(k),
		FileUID: c.KxCn(k),
		AtpgDsc: c.KxCn(k),
		SrcID:   c.KxCn(k),
	}
}

// NMR is the Name Map Record (V4-2007): maps PMR indexes to ATPG signal
// names.
type NMR struct {
	ContFlg byte
	TotmCnt uint16
	LocmCnt uint16
	PmrIndx []uint16
	AtpgNam []string
}

// Kind implements Record.
func (NMR) Kind() Kind { return KindNMR }

func decodeNMR(c *cursor.Cursor) NMR {
	contFlg := c.B1()
	totmCnt := c.U2()
	locmCnt := c.U2()
	k := int(locmCnt)
	return NMR{
		ContFlg: contFlg,
		TotmCnt: totmCnt,
		LocmCnt: locmCnt,
		PmrIndx: c.KxU2(k),
		AtpgNam: c.KxCn(k),
	}
}

// CNR is the Cell Name Record (V4-2007): one scan chain's cell name.
type CNR struct {
	ChnNum  uint16
	BitPos  uint32
	CellNam string
}

// Kind implements Record.
func (CNR) Kind() Kind { return KindCNR }

func decodeCNR(c *cursor.Cursor) CNR {
	return CNR{
		ChnNum:  c.U2(),
		BitPos:  c.U4(),
		CellNam: c.Sn(),
	}
}

// SSR is the Scan Structure Record (V4-2007): lists chains in a scan
// structure.
type SSR struct {
	SsrNam  string
	ChnCnt  uint16
	ChnList []uint16
}

// Kind implements Record.
func (SSR) Kind() Kind { return KindSSR }

func decodeSSR(c *cursor.Cursor) SSR {
	ssrNam := c.Cn()
	chnCnt := c.U2()
	return SSR{SsrNam: ssrNam, ChnCnt: chnCnt, ChnList: c.KxU2(int(chnCnt))}
}

// CDR is the Chain Description Record (V4-2007): scan chain topology.
type CDR struct {
	ContFlg byte
	CdrIndx uint16
	ChnNam  string
	ChnLen  uint32
	SinPin  uint16
	SoutPin uint16
	MstrCnt uint8
	MClks   []uint16
	SlavCnt uint8
	SClks   []uint16
	InvVal  uint8
	LstCnt  uint16
	CellLst []string
}

// Kind implements Record.
func (CDR) Kind() Kind { return KindCDR }

func decodeCDR(c *cursor.Cursor) CDR {
	contFlg := c.B1()
	cdrIndx := c.U2()
	chnNam := c.Cn()
	chnLen := c.U4()
	sinPin := c.U2()
	soutPin := c.U2()
	mstrCnt := c.U1()
	mClks := c.KxU2(int(mstrCnt))
	slavCnt := c.U1()
	sClks := c.KxU2(int(slavCnt))
	invVal := c.U1()
	lstCnt := c.U2()
	return CDR{
		ContFlg: contFlg,
		CdrIndx: cdrIndx,
		ChnNam:  chnNam,
		ChnLen:  chnLen,
		SinPin:  sinPin,
		SoutPin: soutPin,
		MstrCnt: mstrCnt,
		MClks:   mClks,
		SlavCnt: slavCnt,
		SClks:   sClks,
		InvVal:  invVal,
		LstCnt:  lstCnt,
		CellLst: c.KxSn(int(lstCnt)),
	}
}
