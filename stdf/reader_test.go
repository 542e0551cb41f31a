package stdf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeFrame(order binary.ByteOrder, typ, sub uint8, payload []byte) []byte {
	buf := make([]byte, 4+len(payload))
	order.PutUint16(buf[0:2], uint16(len(payload)))
	buf[2] = typ
	buf[3] = sub
	copy(buf[4:], payload)
	return buf
}

func TestDetectCompression(t *testing.T) {
	assert.Equal(t, CompressionGzip, DetectCompression("lot42.stdf.gz"))
	assert.Equal(t, CompressionBzip2, DetectCompression("lot42.stdf.bz2"))
	assert.Equal(t, CompressionZip, DetectCompression("lot42.stdf.zip"))
	assert.Equal(t, CompressionNone, DetectCompression("lot42.stdf"))
}

func TestNewReaderDiscoversLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(encodeFrame(binary.LittleEndian, 0, 10, []byte{2, 4}))
	buf.Write(encodeFrame(binary.LittleEndian, 0, 20, append([]byte{0, 0, 0, 0}, append([]byte{3}, []byte("abc")...)...)))

	sr, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer sr.Close()
	assert.Equal(t, binary.LittleEndian, sr.Order())
}

func TestNewReaderDiscoversBigEndian(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(encodeFrame(binary.BigEndian, 0, 10, []byte{2, 4}))

	sr, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer sr.Close()
	assert.Equal(t, binary.BigEndian, sr.Order())
}

func TestRecordsDecodesFullStream(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(encodeFrame(binary.LittleEndian, 0, 10, []byte{2, 4}))
	cmd := "gen --x"
	atrPayload := append([]byte{1, 2, 3, 4}, append([]byte{byte(len(cmd))}, []byte(cmd)...)...)
	buf.Write(encodeFrame(binary.LittleEndian, 0, 20, atrPayload))

	sr, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer sr.Close()

	it := sr.Records()
	require.True(t, it.Next())
	far, ok := it.Record.(FAR)
	require.True(t, ok)
	assert.Equal(t, uint8(2), far.CPUType)

	require.True(t, it.Next())
	atr, ok := it.Record.(ATR)
	require.True(t, ok)
	assert.Equal(t, cmd, atr.CmdLine)

	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestRawRecordsMatchesRecordsKinds(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(encodeFrame(binary.LittleEndian, 0, 10, []byte{2, 4}))
	buf.Write(encodeFrame(binary.LittleEndian, 0, 20, []byte{0, 0, 0, 0, 0}))

	sr, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer sr.Close()

	it := sr.RawRecords()
	var kinds []Kind
	for it.Next() {
		kinds = append(kinds, it.Frame.Kind)
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []Kind{KindFAR, KindATR}, kinds)
}

func TestReaderDetectsTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(encodeFrame(binary.LittleEndian, 0, 10, []byte{2, 4}))
	// Declares a 10-byte ATR payload but supplies only 2 bytes before EOF.
	buf.Write([]byte{10, 0, 0, 20, 0x02, 0x04})

	sr, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer sr.Close()

	it := sr.Records()
	require.True(t, it.Next()) // the FAR record itself
	require.False(t, it.Next())
	require.Error(t, it.Err())
	code, ok := errCode(it.Err())
	require.True(t, ok)
	assert.Equal(t, InsufficientData, code)
}

func TestNewReaderRejectsNonFARStart(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte{2, 0, 1, 10, 0, 0}))
	require.Error(t, err)
}

func TestGzipWrappedStream(t *testing.T) {
	var raw bytes.Buffer
	raw.Write(encodeFrame(binary.LittleEndian, 0, 10, []byte{2, 4}))

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, err := w.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	sr, err := NewReader(bytes.NewReader(gz.Bytes()), WithCompression(CompressionGzip))
	require.NoError(t, err)
	defer sr.Close()

	it := sr.Records()
	require.True(t, it.Next())
	_, ok := it.Record.(FAR)
	assert.True(t, ok)
}
