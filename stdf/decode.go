package stdf

import (
	"encoding/binary"

	"github.com/noonchen/go-stdf/internal/cursor"
)

// Decode parses a single record payload given its resolved kind and the
// file's established byte order. It never returns an error: truncated
// payloads decode to their documented defaults per §4.3, and an unknown
// kind is the caller's responsibility to avoid (Decode is only meant to be
// called with the kind KindOf already resolved for this header).
func Decode(kind Kind, typ, sub uint8, payload []byte, order binary.ByteOrder) Record {
	if kind == KindReserved {
		return Reserved{Typ: typ, Sub: sub, Payload: payload}
	}
	if kind == KindInvalid {
		return Invalid{Typ: typ, Sub: sub, Payload: payload}
	}
	c := cursor.New(payload, order)
	switch kind {
	case KindFAR:
		return decodeFAR(c)
	case KindATR:
		return decodeATR(c)
	case KindVUR:
		return decodeVUR(c)
	case KindMIR:
		return decodeMIR(c)
	case KindMRR:
		return decodeMRR(c)
	case KindPCR:
		return decodePCR(c)
	case KindHBR:
		return decodeHBR(c)
	case KindSBR:
		return decodeSBR(c)
	case KindPMR:
		return decodePMR(c)
	case KindPGR:
		return decodePGR(c)
	case KindPLR:
		return decodePLR(c)
	case KindRDR:
		return decodeRDR(c)
	case KindSDR:
		return decodeSDR(c)
	case KindPSR:
		return decodePSR(c)
	case KindNMR:
		return decodeNMR(c)
	case KindCNR:
		return decodeCNR(c)
	case KindSSR:
		return decodeSSR(c)
	case KindCDR:
		return decodeCDR(c)
	case KindWIR:
		return decodeWIR(c)
	case KindWRR:
		return decodeWRR(c)
	case KindWCR:
		return decodeWCR(c)
	case KindPIR:
		return decodePIR(c)
	case KindPRR:
		return decodePRR(c)
	case KindTSR:
		return decodeTSR(c)
	case KindPTR:
		return decodePTR(c)
	case KindMPR:
		return decodeMPR(c)
	case KindFTR:
		return decodeFTR(c)
	case KindSTR:
		return decodeSTR(c)
	case KindBPS:
		return decodeBPS(c)
	case KindEPS:
		return decodeEPS(c)
	case KindGDR:
		return decodeGDR(c)
	case KindDTR:
		return decodeDTR(c)
	default:
		return Invalid{Typ: typ, Sub: sub, Payload: payload}
	}
}
