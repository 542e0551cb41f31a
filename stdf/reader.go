package stdf

import (
	"archive/zip"
	"bufio"
	"compress/bzip2"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Compression identifies the container wrapping the raw record stream,
// selected by file extension at Open time.
type Compression int

// The compression kinds StreamReader auto-detects.
const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionBzip2
	CompressionZip
)

// DetectCompression maps a path's extension to the Compression it implies.
// Unrecognized extensions (including none) mean CompressionNone.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".bz2":
		return CompressionBzip2
	case ".zip":
		return CompressionZip
	default:
		return CompressionNone
	}
}

const defaultBufferSize = 2 << 20 // 2 MiB, per spec §4.4

// Option configures a StreamReader at construction time.
type Option func(*readerConfig)

type readerConfig struct {
	bufferSize  int
	compression Compression
	hasCompr    bool
}

// WithBufferSize overrides the default ~2 MiB buffered-read size.
func WithBufferSize(n int) Option {
	return func(c *readerConfig) { c.bufferSize = n }
}

// WithCompression overrides extension-based compression detection, for
// callers wrapping an arbitrary io.Reader via NewReader rather than Open.
func WithCompression(comp Compression) Option {
	return func(c *readerConfig) { c.compression = comp; c.hasCompr = true }
}

// StreamReader owns a single byte source and yields the STDF records framed
// within it, in file order, one at a time. It discovers the file's byte
// order from the mandatory first FAR record and holds it fixed for the rest
// of the stream, per §3.3.
//
// A StreamReader is not safe for concurrent use, and at most one of
// Records or RawRecords may be driven at a time (they share the same
// underlying cursor into the byte stream). Closing the StreamReader
// releases the underlying file handle and any decompressor state.
type StreamReader struct {
	br     *bufio.Reader
	closer io.Closer
	order  binary.ByteOrder
	err    error
}

// Open opens path, auto-detecting gzip/bzip2/zip compression from its
// extension, and discovers the stream's byte order from its first FAR
// record.
func Open(path string, opts ...Option) (*StreamReader, error) {
	cfg := readerConfig{bufferSize: defaultBufferSize}
	for _, o := range opts {
		o(&cfg)
	}
	if !cfg.hasCompr {
		cfg.compression = DetectCompression(path)
	}

	raw, closer, err := openSource(path, cfg.compression)
	if err != nil {
		return nil, wrapError(IoError, err, "opening %s", path)
	}
	return newStreamReader(raw, closer, cfg)
}

// NewReader wraps an already-open byte source. The caller is responsible
// for selecting the right Compression via WithCompression; CompressionNone
// is assumed otherwise. The returned StreamReader takes ownership of r if r
// implements io.Closer.
func NewReader(r io.Reader, opts ...Option) (*StreamReader, error) {
	cfg := readerConfig{bufferSize: defaultBufferSize}
	for _, o := range opts {
		o(&cfg)
	}
	wrapped, err := wrapCompression(r, cfg.compression)
	if err != nil {
		return nil, wrapError(IoError, err, "initializing decompressor")
	}
	closer, _ := r.(io.Closer)
	return newStreamReader(wrapped, closer, cfg)
}

func openSource(path string, comp Compression) (io.Reader, io.Closer, error) {
	if comp == CompressionZip {
		zr, err := zip.OpenReader(path)
		if err != nil {
			return nil, nil, err
		}
		for _, f := range zr.File {
			if f.FileInfo().IsDir() {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				zr.Close()
				return nil, nil, err
			}
			return rc, multiCloser{rc, zr}, nil
		}
		zr.Close()
		return nil, nil, newError(InvalidFile, "zip archive %s has no file entries", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	wrapped, err := wrapCompression(f, comp)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return wrapped, f, nil
}

func wrapCompression(r io.Reader, comp Compression) (io.Reader, error) {
	switch comp {
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionBzip2:
		return bzip2.NewReader(r), nil
	case CompressionZip:
		// Zip is a random-access container, not a streamable codec; Open
		// and openSource handle it before reaching here.
		return r, nil
	default:
		return r, nil
	}
}

// multiCloser closes an ordered list of closers, stopping at the first
// error so the caller can see what failed.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	for _, c := range m {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}

func newStreamReader(r io.Reader, closer io.Closer, cfg readerConfig) (*StreamReader, error) {
	br := bufio.NewReaderSize(r, cfg.bufferSize)
	header4, err := br.Peek(frameHeaderSize)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, newError(InvalidFile, "stream shorter than a FAR header")
		}
		return nil, wrapError(IoError, err, "reading initial FAR header")
	}
	var h4 [4]byte
	copy(h4[:], header4)
	order, err := discoverEndian(h4)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	return &StreamReader{br: br, closer: closer, order: order}, nil
}

// Order reports the byte order discovered from the stream's first FAR
// record. It is immutable for the lifetime of the StreamReader, per §3.3.
func (s *StreamReader) Order() binary.ByteOrder { return s.order }

// Close releases the underlying file handle and decompressor state.
func (s *StreamReader) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// RawFrame is one framed-but-undecoded record: its resolved kind, its raw
// (type, sub) header, and its exact payload bytes. Retrieving raw frames
// lets a caller filter by kind cheaply before paying for full decode.
type RawFrame struct {
	Kind    Kind
	Typ     uint8
	Sub     uint8
	Payload []byte
}

func (s *StreamReader) readFrame() (RawFrame, error) {
	hdr, err := readFrameHeader(s.br, s.order)
	if err != nil {
		return RawFrame{}, err
	}
	payload := make([]byte, hdr.Len)
	n, err := io.ReadFull(s.br, payload)
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return RawFrame{}, newError(InsufficientData,
				"record (%d,%d) declared %d payload bytes, got %d", hdr.Typ, hdr.Sub, hdr.Len, n)
		}
		return RawFrame{}, wrapError(IoError, err, "reading payload for record (%d,%d)", hdr.Typ, hdr.Sub)
	}
	return RawFrame{
		Kind:    KindOf(hdr.Typ, hdr.Sub),
		Typ:     hdr.Typ,
		Sub:     hdr.Sub,
		Payload: payload,
	}, nil
}

// RawRecords returns an iterator over framed-but-undecoded records. See
// RawFrameIter for usage.
func (s *StreamReader) RawRecords() *RawFrameIter {
	return &RawFrameIter{s: s}
}

// RawFrameIter is a lazy, single-pass iterator over raw framed records,
// mirroring perffile.Records' Next/Err shape.
type RawFrameIter struct {
	s       *StreamReader
	Frame   RawFrame
	err     error
	stopped bool
}

// Next advances to the next raw frame, reporting whether one was read.
// Iteration stops at clean end-of-stream or the first error; on error, Err
// reports it once.
func (it *RawFrameIter) Next() bool {
	if it.stopped {
		return false
	}
	frame, err := it.s.readFrame()
	if err != nil {
		it.stopped = true
		if code, ok := errCode(err); ok && code == Eof {
			return false
		}
		it.err = err
		return false
	}
	it.Frame = frame
	return true
}

// Err returns the first error encountered, or nil if iteration ended
// cleanly.
func (it *RawFrameIter) Err() error { return it.err }

// Records returns an iterator over decoded records. See RecordIter for
// usage.
func (s *StreamReader) Records() *RecordIter {
	return &RecordIter{s: s}
}

// RecordIter is a lazy, single-pass iterator over decoded records.
type RecordIter struct {
	s       *StreamReader
	Record  Record
	err     error
	stopped bool
}

// Next decodes the next record into it.Record, reporting whether one was
// read.
func (it *RecordIter) Next() bool {
	if it.stopped {
		return false
	}
	frame, err := it.s.readFrame()
	if err != nil {
		it.stopped = true
		if code, ok := errCode(err); ok && code == Eof {
			return false
		}
		it.err = err
		return false
	}
	it.Record = Decode(frame.Kind, frame.Typ, frame.Sub, frame.Payload, it.s.order)
	return true
}

// Err returns the first error encountered, or nil if iteration ended
// cleanly.
func (it *RecordIter) Err() error { return it.err }

func errCode(err error) (Code, bool) {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return 0, false
	}
	return e.Code, true
}
