package stdf

// Record is implemented by every decoded STDF record type, including the
// Reserved and Invalid carriers for header bytes that don't resolve to a
// known record.
type Record interface {
	Kind() Kind
}

// Reserved carries the raw payload of a vendor-reserved record (REC_TYP 180
// or 181) untouched, since its field layout isn't part of the public STDF
// spec.
type Reserved struct {
	Typ, Sub uint8
	Payload  []byte
}

// Kind implements Record.
func (Reserved) Kind() Kind { return KindReserved }

// Invalid carries the raw payload of a record whose (REC_TYP, REC_SUB)
// header doesn't resolve to any known or reserved kind.
type Invalid struct {
	Typ, Sub uint8
	Payload  []byte
}

// Kind implements Record.
func (Invalid) Kind() Kind { return KindInvalid }
