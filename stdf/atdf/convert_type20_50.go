package atdf

import (
	"encoding/hex"
	"strings"

	"github.com/noonchen/go-stdf/internal/cursor"
	"github.com/noonchen/go-stdf/stdf"
)

func bpsToFields(r stdf.BPS, cfg Config) []string {
	return []string{r.SeqName}
}

func bpsFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.BPS{SeqName: fieldAt(f, 0)}, nil
}

func epsToFields(r stdf.EPS, cfg Config) []string {
	return nil
}

func epsFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.EPS{}, nil
}

// encodeGenData implements the GDR type-letter tagging scheme of spec
// §4.5. Pad values (B0) carry no payload and are dropped entirely, per the
// explicit rule in §4.5 and the design note in §9 ("it is preserved in
// binary form but dropped in ATDF emit"); see DESIGN.md for why this
// implementation follows that normative sentence over the literal text of
// the worked example in §8 scenario 4, which the two appear to disagree on.
func encodeGenData(vals []cursor.Value) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		switch v.Kind {
		case cursor.KindB0:
			continue
		case cursor.KindU1:
			out = append(out, "U"+itoa(int(v.U)))
		case cursor.KindU2:
			out = append(out, "M"+itoa(int(v.U)))
		case cursor.KindU4:
			out = append(out, "B"+itoa(int(v.U)))
		case cursor.KindI1:
			out = append(out, "I"+itoa(int(v.I)))
		case cursor.KindI2:
			out = append(out, "S"+itoa(int(v.I)))
		case cursor.KindI4:
			out = append(out, "L"+itoa(int(v.I)))
		case cursor.KindR4:
			out = append(out, "F"+formatF32(float32(v.F)))
		case cursor.KindR8:
			// full f64 precision: the original's Display impl never
			// downcasts R8 through float32 (atdf_types.rs:1110).
			out = append(out, "D"+formatF64(v.F))
		case cursor.KindCn:
			out = append(out, "T"+v.S)
		case cursor.KindBn:
			out = append(out, "X"+strings.ToUpper(hex.EncodeToString(v.B)))
		case cursor.KindDn:
			out = append(out, "Y"+strings.ToUpper(hex.EncodeToString(v.B)))
		case cursor.KindN1:
			out = append(out, "N"+itoa(int(v.U)))
		}
	}
	return out
}

// decodeGenData is encodeGenData's inverse.
func decodeGenData(fields []string) []cursor.Value {
	out := make([]cursor.Value, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		tag, payload := f[0], f[1:]
		switch tag {
		case 'U':
			out = append(out, cursor.Value{Kind: cursor.KindU1, U: uint64(atoiDefault(payload, 0))})
		case 'M':
			out = append(out, cursor.Value{Kind: cursor.KindU2, U: uint64(atoiDefault(payload, 0))})
		case 'B':
			out = append(out, cursor.Value{Kind: cursor.KindU4, U: uint64(atoiDefault(payload, 0))})
		case 'I':
			out = append(out, cursor.Value{Kind: cursor.KindI1, I: int64(atoiDefault(payload, 0))})
		case 'S':
			out = append(out, cursor.Value{Kind: cursor.KindI2, I: int64(atoiDefault(payload, 0))})
		case 'L':
			out = append(out, cursor.Value{Kind: cursor.KindI4, I: int64(atoiDefault(payload, 0))})
		case 'F':
			out = append(out, cursor.Value{Kind: cursor.KindR4, F: float64(parseF32(payload))})
		case 'D':
			out = append(out, cursor.Value{Kind: cursor.KindR8, F: parseF64(payload)})
		case 'T':
			out = append(out, cursor.Value{Kind: cursor.KindCn, S: payload})
		case 'X':
			b, _ := hex.DecodeString(payload)
			out = append(out, cursor.Value{Kind: cursor.KindBn, B: b})
		case 'Y':
			b, _ := hex.DecodeString(payload)
			out = append(out, cursor.Value{Kind: cursor.KindDn, B: b})
		case 'N':
			out = append(out, cursor.Value{Kind: cursor.KindN1, U: uint64(atoiDefault(payload, 0))})
		}
	}
	return out
}

func gdrToFields(r stdf.GDR, cfg Config) []string {
	return encodeGenData(r.GenData)
}

func gdrFromFields(f []string, cfg Config) (stdf.Record, error) {
	vals := decodeGenData(f)
	return stdf.GDR{FldCnt: uint16(len(vals)), GenData: vals}, nil
}

func dtrToFields(r stdf.DTR, cfg Config) []string {
	return []string{r.TestDat}
}

func dtrFromFields(f []string, cfg Config) (stdf.Record, error) {
	return stdf.DTR{TestDat: fieldAt(f, 0)}, nil
}
