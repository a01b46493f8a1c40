// Package export renders annual return field lists in the formats downstream
// users paste or pipe into other tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"veritas/internal/annualreturn"
	dErrors "veritas/pkg/domain-errors"
)

// Encoding names one supported output format.
type Encoding string

const (
	EncodingCSV   Encoding = "csv"
	EncodingLines Encoding = "lines"
	EncodingJSON  Encoding = "json"
)

// ParseEncoding constructs an Encoding from external input. An empty value
// defaults to JSON.
//
// Errors: returns CodeValidation for an unknown format.
func ParseEncoding(s string) (Encoding, error) {
	if s == "" {
		return EncodingJSON, nil
	}
	enc := Encoding(strings.ToLower(s))
	switch enc {
	case EncodingCSV, EncodingLines, EncodingJSON:
		return enc, nil
	default:
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown export format %q", s)
	}
}

func (e Encoding) String() string {
	return string(e)
}

// ContentType returns the MIME type to serve the encoding under.
func (e Encoding) ContentType() string {
	switch e {
	case EncodingCSV:
		return "text/csv; charset=utf-8"
	case EncodingLines:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Encode writes the field list to w in the requested encoding. Field order is
// preserved in every format.
func Encode(w io.Writer, fields []annualreturn.FieldMapping, enc Encoding) error {
	switch enc {
	case EncodingCSV:
		return encodeCSV(w, fields)
	case EncodingLines:
		return encodeLines(w, fields)
	case EncodingJSON:
		return encodeJSON(w, fields)
	default:
		return dErrors.Newf(dErrors.CodeValidation, "unknown export format %q", enc)
	}
}

// encodeCSV emits one row per field with a fixed header. Quoting is left to
// encoding/csv, so copy values containing commas or quotes survive a
// round-trip unchanged.
func encodeCSV(w io.Writer, fields []annualreturn.FieldMapping) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"field_id", "section", "label", "copy_value", "required"}); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "write csv header")
	}
	for _, f := range fields {
		row := []string{f.FieldID, f.SectionID.String(), f.Label, f.CopyValue, boolString(f.Required)}
		if err := cw.Write(row); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "flush csv")
	}
	return nil
}

// encodeLines emits the paste format keyed by form question number, one
// "question: value" line per field.
func encodeLines(w io.Writer, fields []annualreturn.FieldMapping) error {
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.Question, f.CopyValue); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "write line")
		}
	}
	return nil
}

func encodeJSON(w io.Writer, fields []annualreturn.FieldMapping) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if fields == nil {
		fields = []annualreturn.FieldMapping{}
	}
	if err := e.Encode(fields); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "encode json")
	}
	return nil
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
