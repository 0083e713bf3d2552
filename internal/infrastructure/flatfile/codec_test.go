package flatfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_EmptyInput(t *testing.T) {
	records, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecode_HeaderOnly(t *testing.T) {
	records, err := Decode(strings.NewReader("id,name,zone\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecode_MissingTrailingFields(t *testing.T) {
	input := "id,name,zone\n1,General Hospital\n2,City Clinic,North\n"

	records, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1", records[0]["id"])
	assert.Equal(t, "General Hospital", records[0]["name"])
	assert.Equal(t, "", records[0]["zone"])
	assert.Equal(t, "North", records[1]["zone"])
}

func TestDecode_QuotedFields(t *testing.T) {
	input := "id,description\n1,\"line one\nline two, with comma\"\n"

	records, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "line one\nline two, with comma", records[0]["description"])
}

func TestEncode_EmptySetWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, nil, Schema{"id", "name", "zone"})
	require.NoError(t, err)
	assert.Equal(t, "id,name,zone\n", buf.String())
}

func TestEncode_DropsFieldsOutsideSchema(t *testing.T) {
	records := []Record{
		{"id": "1", "name": "Alpha", "stale": "leftover"},
	}

	var buf bytes.Buffer
	err := Encode(&buf, records, Schema{"id", "name"})
	require.NoError(t, err)

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, Record{"id": "1", "name": "Alpha"}, decoded[0])
}

func TestCodec_RoundTrip(t *testing.T) {
	schema := Schema{"id", "taskName", "description", "dateClosed"}
	records := []Record{
		{"id": "1", "taskName": "Fix monitor", "description": "ICU bed 4", "dateClosed": ""},
		{"id": "2", "taskName": "Restock, urgent", "description": "multi\nline", "dateClosed": "2024-03-01T10:00:00"},
		{"id": "3", "taskName": "", "description": "", "dateClosed": ""},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, records, schema))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}
