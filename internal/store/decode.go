package store

import (
	"errors"
	"fmt"
	"math"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

var errNull = errors.New("unexpected NULL")

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one row into a NameRecord. Values are scanned untyped so
// a mismatch can be reported with the offending column. rowNum is 1-based.
func scanRecord(s rowScanner, rowNum int) (namesetl.NameRecord, error) {
	raw := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := s.Scan(dest...); err != nil {
		return namesetl.NameRecord{}, err
	}

	var (
		rec namesetl.NameRecord
		err error
	)
	fail := func(col int, cause error) error {
		return &namesetl.DecodeError{Row: rowNum, Column: columns[col], Value: raw[col], Err: cause}
	}

	if rec.ID, err = asInt(raw[0]); err != nil {
		return rec, fail(0, err)
	}
	if rec.Name, err = asText(raw[1]); err != nil {
		return rec, fail(1, err)
	}
	if rec.Total, err = asInt(raw[2]); err != nil {
		return rec, fail(2, err)
	}
	if rec.MaleShare, err = asReal(raw[3]); err != nil {
		return rec, fail(3, err)
	}
	if rec.FemaleShare, err = asReal(raw[4]); err != nil {
		return rec, fail(4, err)
	}
	if rec.Gap, err = asReal(raw[5]); err != nil {
		return rec, fail(5, err)
	}
	return rec, nil
}

func asInt(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
			return 0, fmt.Errorf("REAL %v is not an integer", x)
		}
		return int64(x), nil
	case nil:
		return 0, errNull
	default:
		return 0, fmt.Errorf("cannot read %T as INTEGER", v)
	}
}

func asReal(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case nil:
		return 0, errNull
	default:
		return 0, fmt.Errorf("cannot read %T as REAL", v)
	}
}

func asText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case nil:
		return "", errNull
	default:
		return "", fmt.Errorf("cannot read %T as TEXT", v)
	}
}
