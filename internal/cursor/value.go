package cursor

// ValueKind is the tag byte of a Vn generic value.
type ValueKind byte

// Tag values for the Vn generic tagged union, per STDF's V1 type.
const (
	KindB0 ValueKind = iota
	KindU1
	KindU2
	KindU4
	KindI1
	KindI2
	KindI4
	KindR4
	KindR8
	KindCn
	KindBn
	KindDn
	KindN1
	KindInvalid
)

var tagToKind = map[byte]ValueKind{
	0:  KindB0,
	1:  KindU1,
	2:  KindU2,
	3:  KindU4,
	4:  KindI1,
	5:  KindI2,
	6:  KindI4,
	7:  KindR4,
	8:  KindR8,
	10: KindCn,
	11: KindBn,
	12: KindDn,
	13: KindN1,
}

// Value is one element of a Vn array: a tagged union over the primitive
// types. Exactly the field matching Kind is meaningful; the others are zero.
type Value struct {
	Kind ValueKind
	U    uint64 // U1, U2, U4, N1 (widened)
	I    int64  // I1, I2, I4 (widened)
	F    float64
	S    string
	B    []byte
}

// V1 reads one tagged generic value: a 1-byte tag followed by the payload
// the tag selects. An unknown tag yields a terminating Invalid value (the
// record as a whole keeps decoding; only this particular value is marked
// invalid, per the STDF Vn contract).
func (c *Cursor) V1() Value {
	if c.Done() {
		return Value{Kind: KindInvalid}
	}
	tag := c.U1()
	kind, ok := tagToKind[tag]
	if !ok {
		return Value{Kind: KindInvalid}
	}
	switch kind {
	case KindB0:
		return Value{Kind: KindB0}
	case KindU1:
		return Value{Kind: KindU1, U: uint64(c.U1())}
	case KindU2:
		return Value{Kind: KindU2, U: uint64(c.U2())}
	case KindU4:
		return Value{Kind: KindU4, U: uint64(c.U4())}
	case KindI1:
		return Value{Kind: KindI1, I: int64(c.I1())}
	case KindI2:
		return Value{Kind: KindI2, I: int64(c.I2())}
	case KindI4:
		return Value{Kind: KindI4, I: int64(c.I4())}
	case KindR4:
		return Value{Kind: KindR4, F: float64(c.R4())}
	case KindR8:
		return Value{Kind: KindR8, F: c.R8()}
	case KindCn:
		return Value{Kind: KindCn, S: c.Cn()}
	case KindBn:
		return Value{Kind: KindBn, B: c.Bn()}
	case KindDn:
		return Value{Kind: KindDn, B: c.Dn()}
	case KindN1:
		return Value{Kind: KindN1, U: uint64(c.U1())}
	default:
		return Value{Kind: KindInvalid}
	}
}

// Vn reads k generic tagged values in sequence.
func (c *Cursor) Vn(k int) []Value {
	if k <= 0 {
		return []Value{}
	}
	out := make([]Value, k)
	for i := range out {
		out[i] = c.V1()
	}
	return out
}
