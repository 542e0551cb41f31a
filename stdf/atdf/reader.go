package atdf

import (
	"bufio"
	"io"
	"strings"

	"github.com/noonchen/go-stdf/stdf"
)

// Reader is a lazy, single-pass iterator over ATDF logical lines, merging
// continuation lines (those beginning with a single space) into the record
// they continue, and establishing Config from the mandatory first FAR
// line. It mirrors stdf.RecordIter's Next/Err shape.
type Reader struct {
	sc        *bufio.Scanner
	cfg       Config
	cfgKnown  bool
	lookahead string
	haveLook  bool
	done      bool

	Record Record
	err    error
}

// NewReader wraps r, an ATDF text stream.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4<<20)
	return &Reader{sc: sc}
}

// Config reports the delimiter and scale flag established by the first
// FAR line. It is only meaningful once Next has returned true at least
// once.
func (r *Reader) Config() Config { return r.cfg }

func (r *Reader) readLine() (string, bool) {
	if r.haveLook {
		r.haveLook = false
		return r.lookahead, true
	}
	if !r.sc.Scan() {
		return "", false
	}
	return r.sc.Text(), true
}

func (r *Reader) pushBack(line string) {
	r.lookahead = line
	r.haveLook = true
}

// Next reads the next logical ATDF record, merging continuations,
// skipping blank lines outside a record, and stripping trailing \r. It
// reports whether a record was produced; iteration ends cleanly at
// end-of-stream (flushing any accumulated record first) or surfaces a
// final AtdfSyntax, InvalidRecordType or IoError item before terminating.
func (r *Reader) Next() bool {
	if r.done {
		return false
	}
	var logical strings.Builder
	have := false
	for {
		line, ok := r.readLine()
		if !ok {
			if err := r.sc.Err(); err != nil {
				r.err = stdf.NewError(stdf.IoError, "reading ATDF stream: %v", err)
				r.done = true
				return false
			}
			break
		}
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, " ") {
			if !have {
				continue
			}
			logical.WriteString(line[1:])
			continue
		}
		if line == "" {
			if !have {
				continue
			}
			break
		}
		if have {
			r.pushBack(line)
			break
		}
		logical.WriteString(line)
		have = true
	}
	if !have {
		r.done = true
		return false
	}
	rec, err := r.parseLogical(logical.String())
	if err != nil {
		r.err = err
		r.done = true
		return false
	}
	r.Record = rec
	return true
}

// Err returns the first error encountered, or nil if iteration ended
// cleanly.
func (r *Reader) Err() error { return r.err }

func (r *Reader) parseLogical(line string) (Record, error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return Record{}, stdf.NewError(stdf.AtdfSyntax, "missing ':' in line %q", line)
	}
	name := line[:colon]
	rest := line[colon+1:]

	if !r.cfgKnown {
		if name != "FAR" {
			return Record{}, stdf.NewError(stdf.AtdfSyntax, "first record must be FAR, got %q", name)
		}
		if len(rest) < 2 || rest[0] != 'A' {
			return Record{}, stdf.NewError(stdf.AtdfSyntax, "FAR line %q missing 'A' marker and delimiter", line)
		}
		r.cfg.Delim = rest[1]
		r.cfgKnown = true
		rest = rest[2:]
	}

	return parseFields(name, rest, r.cfg, func(scale bool) { r.cfg.Scale = r.cfg.Scale || scale })
}

// parseFields splits rest on cfg.Delim, validates the record name and
// required-field count against the schema registry, and (for FAR) detects
// the scale flag via onScale.
func parseFields(name, rest string, cfg Config, onScale func(bool)) (Record, error) {
	sch, ok := schemaFor(name)
	if !ok {
		return Record{}, stdf.NewError(stdf.InvalidRecordType, "unrecognized or unmapped ATDF record name %q", name)
	}
	var fields []string
	if rest != "" {
		fields = strings.Split(rest, string(cfg.Delim))
	}
	if len(fields) < sch.RequiredCount() {
		return Record{}, stdf.NewError(stdf.InvalidRecordType,
			"%s: expected at least %d fields, got %d", name, sch.RequiredCount(), len(fields))
	}
	if name == "FAR" && onScale != nil {
		onScale(len(fields) >= 3 && strings.EqualFold(fields[2], "S"))
	}
	return Record{Kind: kindForName(name), Name: name, Fields: fields}, nil
}

// ParseRecord parses a single, already continuation-merged logical ATDF
// line (as spec §6.3's AtdfRecord.from_atdf_string) using an established
// Config rather than discovering one from a FAR line. Use this to parse
// one line at a time outside of a Reader-driven stream.
func ParseRecord(line string, cfg Config) (Record, error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return Record{}, stdf.NewError(stdf.AtdfSyntax, "missing ':' in line %q", line)
	}
	name := line[:colon]
	rest := line[colon+1:]
	if name == "FAR" && len(rest) >= 2 && rest[0] == 'A' {
		cfg.Delim = rest[1]
		rest = rest[2:]
	}
	return parseFields(name, rest, cfg, nil)
}

// Format renders r back to its logical-line text form, "NAME:f1|f2|...";
// a FAR record additionally gets the 'A'+delimiter marker after its colon.
// Continuation-splitting long lines back into physical lines is a display
// concern left to the caller per spec §1.
func (r Record) Format(cfg Config) string {
	if r.Name == "FAR" {
		return "FAR:A" + string(cfg.Delim) + strings.Join(r.Fields, string(cfg.Delim))
	}
	return r.Name + ":" + strings.Join(r.Fields, string(cfg.Delim))
}
