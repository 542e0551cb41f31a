package stdf

import "github.com/noonchen/go-stdf/internal/cursor"

// PTR is the Parametric Test Record: a single scalar test result.
type PTR struct {
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	TestFlg byte
	ParmFlg byte
	Result  float32
	TestTxt string
	AlarmID string
	OptFlag byte
	ResScal int8
	LlmScal int8
	HlmScal int8
	LoLimit float32
	HiLimit float32
	Units   string
	CResfmt string
	CLlmfmt string
	CHlmfmt string
	LoSpec  float32
	HiSpec  float32
}

// Kind implements Record.
func (PTR) Kind() Kind { return KindPTR }

func decodePTR(c *cursor.Cursor) PTR {
	return PTR{
		TestNum: c.U4(),
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		TestFlg: c.B1(),
		ParmFlg: c.B1(),
		Result:  c.R4(),
		TestTxt: c.Cn(),
		AlarmID: c.Cn(),
		OptFlag: c.B1(),
		ResScal: c.I1(),
		LlmScal: c.I1(),
		HlmScal: c.I1(),
		LoLimit: c.R4(),
		HiLimit: c.R4(),
		Units:   c.Cn(),
		CResfmt: c.Cn(),
		CLlmfmt: c.Cn(),
		CHlmfmt: c.Cn(),
		LoSpec:  c.R4(),
		HiSpec:  c.R4(),
	}
}

// MPR is the Multiple-Result Parametric Record: a vectored test result
// carrying one value per pin or condition.
type MPR struct {
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	TestFlg byte
	ParmFlg byte
	RtnICnt uint16
	RsltCnt uint16
	RtnStat []uint8 // packed nibbles, one per returned pin state
	RtnRslt []float32
	TestTxt string
	AlarmID string
	OptFlag byte
	ResScal int8
	LlmScal int8
	HlmScal int8
	LoLimit float32
	HiLimit float32
	StartIn float32
	IncrIn  float32
	RtnIndx []uint16
	Units   string
	UnitsIn string
	CResfmt string
	CLlmfmt string
	CHlmfmt string
	LoSpec  float32
	HiSpec  float32
}

// Kind implements Record.
func (MPR) Kind() Kind { return KindMPR }

func decodeMPR(c *cursor.Cursor) MPR {
	testNum := c.U4()
	headNum := c.U1()
	siteNum := c.U1()
	testFlg := c.B1()
	parmFlg := c.B1()
	rtnICnt := c.U2()
	rsltCnt := c.U2()
	rtnStat := c.KxN1(int(rtnICnt))
	rtnRslt := c.KxR4(int(rsltCnt))
	return MPR{
		TestNum: testNum,
		HeadNum: headNum,
		SiteNum: siteNum,
		TestFlg: testFlg,
		ParmFlg: parmFlg,
		RtnICnt: rtnICnt,
		RsltCnt: rsltCnt,
		RtnStat: rtnStat,
		RtnRslt: rtnRslt,
		TestTxt: c.Cn(),
		AlarmID: c.Cn(),
		OptFlag: c.B1(),
		ResScal: c.I1(),
		LlmScal: c.I1(),
		HlmScal: c.I1(),
		LoLimit: c.R4(),
		HiLimit: c.R4(),
		StartIn: c.R4(),
		IncrIn:  c.R4(),
		RtnIndx: c.KxU2(int(rtnICnt)),
		Units:   c.Cn(),
		UnitsIn: c.Cn(),
		CResfmt: c.Cn(),
		CLlmfmt: c.Cn(),
		CHlmfmt: c.Cn(),
		LoSpec:  c.R4(),
		HiSpec:  c.R4(),
	}
}

// FTR is the Functional Test Record: a vector-based pass/fail test result.
type FTR struct {
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	TestFlg byte
	OptFlag byte
	CyclCnt uint32
	RelVadr uint32
	ReptCnt uint32
	NumFail uint32
	XfailAd int32
	YfailAd int32
	VectOff int16
	RtnICnt uint16
	PgmICnt uint16
	RtnIndx []uint16
	RtnStat []uint8
	PgmIndx []uint16
	PgmStat []uint8
	FailPin []byte
	VectNam string
	TimeSet string
	OpCode  string
	TestTxt string
	AlarmID string
	ProgTxt string
	RsltTxt string
	PatgNum uint8 // defaults to 255 when absent
	SpinMap []byte
}

// Kind implements Record.
func (FTR) Kind() Kind { return KindFTR }

func decodeFTR(c *cursor.Cursor) FTR {
	testNum := c.U4()
	headNum := c.U1()
	siteNum := c.U1()
	testFlg := c.B1()
	optFlag := c.B1()
	cyclCnt := c.U4()
	relVadr := c.U4()
	reptCnt := c.U4()
	numFail := c.U4()
	xfailAd := c.I4()
	yfailAd := c.I4()
	vectOff := c.I2()
	rtnICnt := c.U2()
	pgmICnt := c.U2()
	rtnIndx := c.KxU2(int(rtnICnt))
	rtnStat := c.KxN1(int(rtnICnt))
	pgmIndx := c.KxU2(int(pgmICnt))
	pgmStat := c.KxN1(int(pgmICnt))
	failPin := c.Dn()
	return FTR{
		TestNum: testNum,
		HeadNum: headNum,
		SiteNum: siteNum,
		TestFlg: testFlg,
		OptFlag: optFlag,
		CyclCnt: cyclCnt,
		RelVadr: relVadr,
		ReptCnt: reptCnt,
		NumFail: numFail,
		XfailAd: xfailAd,
		YfailAd: yfailAd,
		VectOff: vectOff,
		RtnICnt: rtnICnt,
		PgmICnt: pgmICnt,
		RtnIndx: rtnIndx,
		RtnStat: rtnStat,
		PgmIndx: pgmIndx,
		PgmStat: pgmStat,
		FailPin: failPin,
		VectNam: c.Cn(),
		TimeSet: c.Cn(),
		OpCode:  c.Cn(),
		TestTxt: c.Cn(),
		AlarmID: c.Cn(),
		ProgTxt: c.Cn(),
		RsltTxt: c.Cn(),
		PatgNum: c.U1Default(255),
		SpinMap: c.Dn(),
	}
}

// STR is the Scan Test Record (V4-2007): per-chain scan test results, one of
// the densest record layouts in the format, with eight width-parametric
// (KxUf) arrays whose element widths come from preceding size fields.
type STR struct {
	ContFlg byte
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	PsrRef  uint16
	TestFlg byte
	LogTyp  string
	TestTxt string
	AlarmID string
	ProgTxt string
	RsltTxt string
	ZVal    uint8
	FmuFlg  byte
	MaskMap []byte
	FalMap  []byte
	CycCntT uint64
	TotfCnt uint32
	TotlCnt uint32
	CycBase uint64
	BitBase uint32
	CondCnt uint16
	LimCnt  uint16
	CycSize uint8
	PmrSize uint8
	ChnSize uint8
	PatSize uint8
	BitSize uint8
	U1Size  uint8
	U2Size  uint8
	U3Size  uint8
	UtxSize uint8
	CapBgn  uint16
	LimIndx []uint16
	LimSpec []uint32
	CondLst []string
	CycCnt  uint16
	CycOfst cursor.UArray
	PmrCnt  uint16
	PmrIndx cursor.UArray
	ChnCnt  uint16
	ChnNum  cursor.UArray
	ExpCnt  uint16
	ExpData []uint8
	CapCnt  uint16
	CapData []uint8
	NewCnt  uint16
	NewData []uint8
	PatCnt  uint16
	PatNum  cursor.UArray
	BposCnt uint16
	BitPos  cursor.UArray
	Usr1Cnt uint16
	Usr1    cursor.UArray
	Usr2Cnt uint16
	Usr2    cursor.UArray
	Usr3Cnt uint16
	Usr3    cursor.UArray
	TxtCnt  uint16
	UserTxt []string
}

// Kind implements Record.
func (STR) Kind() Kind { return KindSTR }

func decodeSTR(c *cursor.Cursor) STR {
	contFlg := c.B1()
	testNum := c.U4()
	headNum := c.U1()
	siteNum := c.U1()
	psrRef := c.U2()
	testFlg := c.B1()
	logTyp := c.Cn()
	testTxt := c.Cn()
	alarmID := c.Cn()
	progTxt := c.Cn()
	rsltTxt := c.Cn()
	zVal := c.U1()
	fmuFlg := c.B1()
	maskMap := c.Dn()
	falMap := c.Dn()
	cycCntT := c.U8()
	totfCnt := c.U4()
	totlCnt := c.U4()
	cycBase := c.U8()
	bitBase := c.U4()
	condCnt := c.U2()
	limCnt := c.U2()
	cycSize := c.U1()
	pmrSize := c.U1()
	chnSize := c.U1()
	patSize := c.U1()
	bitSize := c.U1()
	u1Size := c.U1()
	u2Size := c.U1()
	u3Size := c.U1()
	utxSize := c.U1()
	capBgn := c.U2()
	limIndx := c.KxU2(int(limCnt))
	limSpec := c.KxU4(int(limCnt))
	condLst := c.KxCn(int(condCnt))

	cycCnt := c.U2()
	cycOfst := c.KxUf(int(cycCnt), cycSize)
	pmrCnt := c.U2()
	pmrIndx := c.KxUf(int(pmrCnt), pmrSize)
	chnCnt := c.U2()
	chnNum := c.KxUf(int(chnCnt), chnSize)
	expCnt := c.U2()
	expData := c.KxU1(int(expCnt))
	capCnt := c.U2()
	capData := c.KxU1(int(capCnt))
	newCnt := c.U2()
	newData := c.KxU1(int(newCnt))
	patCnt := c.U2()
	patNum := c.KxUf(int(patCnt), patSize)
	bposCnt := c.U2()
	bitPos := c.KxUf(int(bposCnt), bitSize)
	usr1Cnt := c.U2()
	usr1 := c.KxUf(int(usr1Cnt), u1Size)
	usr2Cnt := c.U2()
	usr2 := c.KxUf(int(usr2Cnt), u2Size)
	usr3Cnt := c.U2()
	usr3 := c.KxUf(int(usr3Cnt), u3Size)
	txtCnt := c.U2()
	userTxt := c.KxCf(int(txtCnt), int(utxSize))

	return STR{
		ContFlg: contFlg,
		TestNum: testNum,
		HeadNum: headNum,
		SiteNum: siteNum,
		PsrRef:  psrRef,
		TestFlg: testFlg,
		LogTyp:  logTyp,
		TestTxt: testTxt,
		AlarmID: alarmID,
		ProgTxt: progTxt,
		RsltTxt: rsltTxt,
		ZVal:    zVal,
		FmuFlg:  fmuFlg,
		MaskMap: maskMap,
		FalMap:  falMap,
		CycCntT: cycCntT,
		TotfCnt: totfCnt,
		TotlCnt: totlCnt,
		CycBase: cycBase,
		BitBase: bitBase,
		CondCnt: condCnt,
		LimCnt:  limCnt,
		CycSize: cycSize,
		PmrSize: pmrSize,
		ChnSize: chnSize,
		PatSize: patSize,
		BitSize: bitSize,
		U1Size:  u1Size,
		U2Size:  u2Size,
		U3Size:  u3Size,
		UtxSize: utxSize,
		CapBgn:  capBgn,
		LimIndx: limIndx,
		LimSpec: limSpec,
		CondLst: condLst,
		CycCnt:  cycCnt,
		CycOfst: cycOfst,
		PmrCnt:  pmrCnt,
		PmrIndx: pmrIndx,
		ChnCnt:  chnCnt,
		ChnNum:  chnNum,
		ExpCnt:  expCnt,
		ExpData: expData,
		CapCnt:  capCnt,
		CapData: capData,
		NewCnt:  newCnt,
		NewData: newData,
		PatCnt:  patCnt,
		PatNum:  patNum,
		BposCnt: bposCnt,
		BitPos:  bitPos,
		Usr1Cnt: usr1Cnt,
		Usr1:    usr1,
		Usr2Cnt: usr2Cnt,
		Usr2:    usr2,
		Usr3Cnt: usr3Cnt,
		Usr3:    usr3,
		TxtCnt:  txtCnt,
		UserTxt: userTxt,
	}
}
