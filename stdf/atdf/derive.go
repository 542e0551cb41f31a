package atdf

import "strings"

// passFailPTR implements the PTR/MPR Pass/Fail derivation of spec §4.5.
func passFailPTR(testFlg, parmFlg byte) string {
	if parmFlg&0x20 != 0 {
		return "A"
	}
	if testFlg&0xC0 == 0 {
		return "P"
	}
	if testFlg&0x40 != 0 {
		return ""
	}
	return "F"
}

// passFailFTR implements the FTR Pass/Fail derivation of spec §4.5.
func passFailFTR(testFlg byte) string {
	if testFlg&0xC0 == 0 {
		return "P"
	}
	if testFlg&0x40 != 0 {
		return ""
	}
	return "F"
}

// passFailPRR implements the PRR Pass/Fail derivation of spec §4.5.
func passFailPRR(partFlg byte) string {
	if partFlg&0x18 != 0 {
		return "F"
	}
	return "P"
}

// retestCode implements PRR's RetestCode derivation.
func retestCode(partFlg byte) string {
	if partFlg&0x01 != 0 {
		return "I"
	}
	if partFlg&0x02 != 0 {
		return "C"
	}
	return ""
}

// abortCode implements PRR's AbortCode derivation.
func abortCode(partFlg byte) string {
	if partFlg&0x04 != 0 {
		return "Y"
	}
	return ""
}

var testFlagLetters = []struct {
	bit uint
	ch  byte
}{{0, 'A'}, {2, 'U'}, {3, 'T'}, {4, 'N'}, {5, 'X'}}

var parmFlagLetters = []struct {
	bit uint
	ch  byte
}{{0, 'S'}, {1, 'D'}, {2, 'O'}, {3, 'H'}, {4, 'L'}}

// alarmFlags implements the PTR/MPR AlarmFlags derivation: one letter per
// set bit of test_flg, then one letter per set bit of parm_flg, in the
// order spec §4.5 lists them.
func alarmFlags(testFlg, parmFlg byte) string {
	var b strings.Builder
	for _, f := range testFlagLetters {
		if testFlg&(1<<f.bit) != 0 {
			b.WriteByte(f.ch)
		}
	}
	for _, f := range parmFlagLetters {
		if parmFlg&(1<<f.bit) != 0 {
			b.WriteByte(f.ch)
		}
	}
	return b.String()
}

// limitCompare implements the PTR/MPR LimitCompare derivation.
func limitCompare(parmFlg byte) string {
	if parmFlg&0x40 != 0 {
		return ">="
	}
	if parmFlg&0x80 != 0 {
		return "<="
	}
	return ""
}

// headSite renders a HEAD_NUM/SITE_NUM value, collapsing the sentinel 255
// ("all heads"/"all sites") to an empty field per spec §4.5.
func headSite(v uint8) string {
	if v == 255 {
		return ""
	}
	return itoa(int(v))
}

// parseHeadSite is headSite's inverse: an empty field means 255.
func parseHeadSite(s string) uint8 {
	if s == "" {
		return 255
	}
	return uint8(atoiDefault(s, 255))
}

var grpRadxLetters = map[uint8]string{2: "B", 8: "O", 10: "D", 16: "H", 20: "S"}
var grpRadxValues = map[string]uint8{"B": 2, "O": 8, "D": 10, "H": 16, "S": 20}

// grpRadx implements the PLR GRP_RADX derivation: one letter per pin's
// display radix.
func grpRadx(radx []uint8) []string {
	out := make([]string, len(radx))
	for i, r := range radx {
		out[i] = grpRadxLetters[r]
	}
	return out
}

func parseGrpRadx(letters []string) []uint8 {
	out := make([]uint8, len(letters))
	for i, l := range letters {
		out[i] = grpRadxValues[l]
	}
	return out
}

// combinePinChars implements PLR's combined PGM_CHAL/CHAR (and
// RTN_CHAL/CHAR) derivation: per pin, "left,right" joined by comma, pins
// joined by '/'. When a pin has no left (Chal) value, only the right
// (Char) value is emitted, per spec §9's noted provisional behavior.
func combinePinChars(chal, char []string) string {
	n := len(char)
	if len(chal) > n {
		n = len(chal)
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(chal) {
			l = chal[i]
		}
		if i < len(char) {
			r = char[i]
		}
		if l != "" {
			parts[i] = l + "," + r
		} else {
			parts[i] = r
		}
	}
	return strings.Join(parts, "/")
}

// splitPinChars is combinePinChars' approximate inverse: each pin's slot is
// either "L,R" or just "R". Returns parallel Chal/Char slices; Chal entries
// are empty for right-only pins, mirroring the provisional encode rule.
func splitPinChars(s string) (chal, char []string) {
	if s == "" {
		return nil, nil
	}
	pins := strings.Split(s, "/")
	chal = make([]string, len(pins))
	char = make([]string, len(pins))
	for i, p := range pins {
		if idx := strings.IndexByte(p, ','); idx >= 0 {
			chal[i] = p[:idx]
			char[i] = p[idx+1:]
		} else {
			char[i] = p
		}
	}
	return chal, char
}
