package atdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassFailPTR(t *testing.T) {
	assert.Equal(t, "F", passFailPTR(0x80, 0))
	assert.Equal(t, "", passFailPTR(0x40, 0))
	assert.Equal(t, "P", passFailPTR(0, 0))
	assert.Equal(t, "A", passFailPTR(0, 0x20))
}

func TestAlarmFlagsOrderedBits(t *testing.T) {
	assert.Equal(t, "A", alarmFlags(0x01, 0))
	assert.Equal(t, "", alarmFlags(0x40, 0))
	assert.Equal(t, "U", alarmFlags(0x04, 0))
	assert.Equal(t, "", alarmFlags(0, 0x20))
	assert.Equal(t, "AUTNX", alarmFlags(0x01|0x04|0x08|0x10|0x20, 0))
	assert.Equal(t, "SDOHL", alarmFlags(0, 0x01|0x02|0x04|0x08|0x10))
}

func TestLimitCompare(t *testing.T) {
	assert.Equal(t, ">=", limitCompare(0x40))
	assert.Equal(t, "<=", limitCompare(0x80))
	assert.Equal(t, "", limitCompare(0))
}

func TestPassFailFTR(t *testing.T) {
	assert.Equal(t, "F", passFailFTR(0x80))
	assert.Equal(t, "", passFailFTR(0x40))
	assert.Equal(t, "P", passFailFTR(0))
}

func TestPassFailPRRAndCodes(t *testing.T) {
	assert.Equal(t, "F", passFailPRR(0x08))
	assert.Equal(t, "P", passFailPRR(0))
	assert.Equal(t, "I", retestCode(0x01))
	assert.Equal(t, "C", retestCode(0x02))
	assert.Equal(t, "", retestCode(0))
	assert.Equal(t, "Y", abortCode(0x04))
	assert.Equal(t, "", abortCode(0))
}

func TestHeadSiteSentinel(t *testing.T) {
	assert.Equal(t, "", headSite(255))
	assert.Equal(t, "1", headSite(1))
	assert.Equal(t, uint8(255), parseHeadSite(""))
	assert.Equal(t, uint8(3), parseHeadSite("3"))
}

func TestGrpRadxRoundTrip(t *testing.T) {
	radx := []uint8{2, 8, 10, 16, 20}
	letters := grpRadx(radx)
	assert.Equal(t, []string{"B", "O", "D", "H", "S"}, letters)
	assert.Equal(t, radx, parseGrpRadx(letters))
}

func TestCombinePinCharsBothSides(t *testing.T) {
	chal := []string{"0", "1"}
	char := []string{"H", "L"}
	assert.Equal(t, "0,H/1,L", combinePinChars(chal, char))
}

func TestCombinePinCharsRightOnly(t *testing.T) {
	assert.Equal(t, "H/L", combinePinChars(nil, []string{"H", "L"}))
}

func TestSplitPinCharsRoundTrip(t *testing.T) {
	chal, char := splitPinChars("0,H/1,L")
	assert.Equal(t, []string{"0", "1"}, chal)
	assert.Equal(t, []string{"H", "L"}, char)

	chal, char = splitPinChars("H/L")
	assert.Equal(t, []string{"", ""}, chal)
	assert.Equal(t, []string{"H", "L"}, char)
}
