package records

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// errNaN rejects NaN, which SQLite would store as NULL.
var errNaN = errors.New("NaN is not a storable number")

// Columns lists the dataset columns in positional order.
var Columns = []string{"id", "name", "total", "male_share", "female_share", "gap"}

// Row is a single CSV record before type coercion.
type Row struct {
	Number int // 1-based record number, header included
	Line   int // 1-based line the record starts on
	Fields []string
}

// ScanOptions controls Scan.
type ScanOptions struct {
	SkipHeader bool
}

// FormatError reports a structurally invalid record.
type FormatError struct {
	Number int
	Line   int
	Err    error
}

func (e *FormatError) Error() string {
	if e.Number > 0 {
		return fmt.Sprintf("record %d (line %d): %v", e.Number, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// FieldError reports a field that could not be coerced to its column type.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Scan yields rows from r in input order. Iteration stops after the first
// error; a record with a field count other than namesetl.FieldCount is
// reported as a *FormatError.
func Scan(r io.Reader, opts ScanOptions) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		cr := csv.NewReader(skipBOM(r))
		cr.FieldsPerRecord = namesetl.FieldCount

		number := 0
		for {
			fields, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			number++
			if err != nil {
				yield(Row{}, formatError(number, err))
				return
			}
			if number == 1 && opts.SkipHeader {
				continue
			}
			line, _ := cr.FieldPos(0)
			if !yield(Row{Number: number, Line: line, Fields: fields}, nil) {
				return
			}
		}
	}
}

// skipBOM drops a leading UTF-8 byte order mark so it does not end up in
// the first id.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func formatError(number int, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &FormatError{Number: number, Line: parseErr.StartLine, Err: parseErr.Err}
	}
	return &FormatError{Number: number, Err: err}
}

// Parse converts a row's fields into a NameRecord. Surrounding whitespace
// is trimmed from numeric fields; the name is kept verbatim.
func Parse(fields []string) (namesetl.NameRecord, error) {
	if len(fields) != namesetl.FieldCount {
		return namesetl.NameRecord{}, fmt.Errorf("expected %d fields, got %d", namesetl.FieldCount, len(fields))
	}

	var (
		rec namesetl.NameRecord
		err error
	)
	if rec.ID, err = parseInt(0, fields[0]); err != nil {
		return namesetl.NameRecord{}, err
	}
	rec.Name = fields[1]
	if rec.Total, err = parseInt(2, fields[2]); err != nil {
		return namesetl.NameRecord{}, err
	}
	if rec.MaleShare, err = parseFloat(3, fields[3]); err != nil {
		return namesetl.NameRecord{}, err
	}
	if rec.FemaleShare, err = parseFloat(4, fields[4]); err != nil {
		return namesetl.NameRecord{}, err
	}
	if rec.Gap, err = parseFloat(5, fields[5]); err != nil {
		return namesetl.NameRecord{}, err
	}
	return rec, nil
}

func parseInt(col int, raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &FieldError{Field: Columns[col], Value: raw, Err: unwrapNum(err)}
	}
	return v, nil
}

func parseFloat(col int, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &FieldError{Field: Columns[col], Value: raw, Err: unwrapNum(err)}
	}
	if math.IsNaN(v) {
		return 0, &FieldError{Field: Columns[col], Value: raw, Err: errNaN}
	}
	return v, nil
}

// unwrapNum drops strconv's NumError wrapper, which repeats the value.
func unwrapNum(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}
