package atdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldAtOutOfRangeIsEmpty(t *testing.T) {
	f := []string{"a", "b"}
	assert.Equal(t, "a", fieldAt(f, 0))
	assert.Equal(t, "", fieldAt(f, 5))
	assert.Equal(t, "", fieldAt(f, -1))
}

func TestByteOrEmptyDefaultsToSpace(t *testing.T) {
	assert.Equal(t, byte(' '), byteOrEmpty(""))
	assert.Equal(t, byte('Y'), byteOrEmpty("Y"))
}

func TestFormatParseRoundTrips(t *testing.T) {
	assert.Equal(t, uint32(42), parseU32(formatU32(42)))
	assert.Equal(t, uint16(42), parseU16(formatU16(42)))
	assert.Equal(t, uint8(42), parseU8(formatU8(42)))
	assert.Equal(t, int16(-7), parseI16(formatI16(-7)))
	assert.Equal(t, int8(-7), parseI8(formatI8(-7)))
}

func TestTimeFormatRoundTrip(t *testing.T) {
	var epoch uint32 = 1_700_000_000
	s := formatTime(epoch)
	assert.NotEmpty(t, s)
	assert.Equal(t, epoch, parseTime(s))
}

func TestTimeZeroIsEmpty(t *testing.T) {
	assert.Equal(t, "", formatTime(0))
	assert.Equal(t, uint32(0), parseTime(""))
}

func TestAtoiDefaultFallsBackOnGarbage(t *testing.T) {
	assert.Equal(t, 5, atoiDefault("not-a-number", 5))
	assert.Equal(t, 9, atoiDefault("9", 5))
}
