package atdf

import (
	"strconv"
	"time"
)

func itoa(v int) string { return strconv.Itoa(v) }

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func formatU32(v uint32) string { return strconv.FormatUint(uint64(v), 10) }
func formatU16(v uint16) string { return strconv.FormatUint(uint64(v), 10) }
func formatU8(v uint8) string   { return strconv.FormatUint(uint64(v), 10) }
func formatI16(v int16) string  { return strconv.FormatInt(int64(v), 10) }
func formatI8(v int8) string    { return strconv.FormatInt(int64(v), 10) }

func formatF32(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }

// formatF64 renders a full-precision R8 value; GDR's 'D' tag uses this
// instead of formatF32 so an f64 generic-data value round-trips without
// truncating through float32.
func formatF64(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseU32(s string) uint32 { v, _ := strconv.ParseUint(s, 10, 32); return uint32(v) }
func parseU16(s string) uint16 { v, _ := strconv.ParseUint(s, 10, 16); return uint16(v) }
func parseU8(s string) uint8   { v, _ := strconv.ParseUint(s, 10, 8); return uint8(v) }
func parseI16(s string) int16  { v, _ := strconv.ParseInt(s, 10, 16); return int16(v) }
func parseI8(s string) int8    { v, _ := strconv.ParseInt(s, 10, 8); return int8(v) }
func parseF32(s string) float32 {
	v, _ := strconv.ParseFloat(s, 32)
	return float32(v)
}

func parseF64(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func byteOrEmpty(s string) byte {
	if s == "" {
		return ' '
	}
	return s[0]
}

// fieldAt returns fields[i], or "" if the tail was truncated — the ATDF
// analogue of the binary cursor's trailing-default tolerance (spec §4.3
// applies to both encodings symmetrically).
func fieldAt(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

const atdfTimeLayout = "15:04:05 02-Jan-2006"

// formatTime renders an STDF epoch-seconds timestamp in ATDF's
// "HH:MM:SS DD-mon-YYYY" form.
func formatTime(epochSec uint32) string {
	if epochSec == 0 {
		return ""
	}
	t := time.Unix(int64(epochSec), 0).UTC()
	return t.Format(atdfTimeLayout)
}

// parseTime is formatTime's inverse.
func parseTime(s string) uint32 {
	if s == "" {
		return 0
	}
	t, err := time.Parse(atdfTimeLayout, s)
	if err != nil {
		return 0
	}
	return uint32(t.Unix())
}
