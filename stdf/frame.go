package stdf

import (
	"encoding/binary"
	"io"
)

// frameHeader is the fixed 4-byte header preceding every STDF record:
// REC_LEN (U2) | REC_TYP (U1) | REC_SUB (U1).
type frameHeader struct {
	Len uint16
	Typ uint8
	Sub uint8
}

const frameHeaderSize = 4

func readFrameHeader(r io.Reader, order binary.ByteOrder) (frameHeader, error) {
	var buf [frameHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			return frameHeader{}, newError(Eof, "end of stream before next record header")
		}
		return frameHeader{}, wrapError(IoError, err, "reading record header")
	}
	return frameHeader{
		Len: order.Uint16(buf[0:2]),
		Typ: buf[2],
		Sub: buf[3],
	}, nil
}

// discoverEndian inspects the first record's raw header bytes to determine
// the stream's byte order. Every STDF file begins with a FAR record whose
// payload is exactly 2 bytes (CPU_TYPE, STDF_VER), so the REC_LEN field must
// read as 2 once the correct byte order is applied: reading it little-endian
// gives 2 on a little-endian stream and 512 on a big-endian one (the two
// length bytes swapped).
func discoverEndian(header4 [4]byte) (binary.ByteOrder, error) {
	leLen := binary.LittleEndian.Uint16(header4[0:2])
	typ, sub := header4[2], header4[3]
	if typ != 0 || sub != 10 {
		return nil, newError(InvalidFile, "stream does not begin with a FAR record")
	}
	switch leLen {
	case 2:
		return binary.LittleEndian, nil
	case 512:
		return binary.BigEndian, nil
	default:
		return nil, newError(InvalidFile, "unrecognized FAR record length %d", leLen)
	}
}
