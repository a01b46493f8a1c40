package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veritas/internal/annualreturn"
	dErrors "veritas/pkg/domain-errors"
)

func sampleFields() []annualreturn.FieldMapping {
	return []annualreturn.FieldMapping{
		{
			FieldID:      "a1",
			SectionID:    annualreturn.SectionCharity,
			Question:     "A1",
			Label:        "Charity name",
			RawValue:     "Harbour Light Trust",
			DisplayValue: "Harbour Light Trust",
			CopyValue:    "Harbour Light Trust",
			Required:     true,
		},
		{
			FieldID:      "c3",
			SectionID:    annualreturn.SectionOverseas,
			Question:     "C3",
			Label:        "Countries of operation",
			RawValue:     []string{"Kenya", "South Sudan"},
			DisplayValue: "Kenya, South Sudan",
			CopyValue:    "Kenya, South Sudan",
			Required:     true,
		},
		{
			FieldID:      "d1",
			SectionID:    annualreturn.SectionFundraising,
			Question:     "D1",
			Label:        "Total gross income",
			RawValue:     480250.75,
			DisplayValue: "£480,250.75",
			CopyValue:    "480250.75",
			Required:     true,
		},
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    Encoding
		wantErr bool
	}{
		{"csv", EncodingCSV, false},
		{"CSV", EncodingCSV, false},
		{"lines", EncodingLines, false},
		{"json", EncodingJSON, false},
		{"", EncodingJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEncoding(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeCSVRoundTripsCommaValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleFields(), EncodingCSV))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"field_id", "section", "label", "copy_value", "required"}, rows[0])
	assert.Equal(t, "a1", rows[1][0])
	// The comma inside the copy value must survive quoting intact.
	assert.Equal(t, "Kenya, South Sudan", rows[2][3])
	assert.Equal(t, []string{"d1", "fundraising", "Total gross income", "480250.75", "true"}, rows[3])
}

func TestEncodeLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleFields(), EncodingLines))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A1: Harbour Light Trust", lines[0])
	assert.Equal(t, "D1: 480250.75", lines[2])
}

func TestEncodeJSONPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleFields(), EncodingJSON))

	var decoded []annualreturn.FieldMapping
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "a1", decoded[0].FieldID)
	assert.Equal(t, "c3", decoded[1].FieldID)
	assert.Equal(t, "d1", decoded[2].FieldID)
}

func TestEncodeJSONEmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, EncodingJSON))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestEncodeRejectsUnknownEncoding(t *testing.T) {
	err := Encode(&bytes.Buffer{}, sampleFields(), Encoding("yaml"))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
