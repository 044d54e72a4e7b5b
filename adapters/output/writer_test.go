package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"semgen/domain/core"
	"semgen/domain/sem"
	"semgen/internal/errors"
)

func sampleConfig() sem.Config {
	return sem.BuildConfig(
		[]sem.Row{
			{"Name": "hostname", "Access (Premium)": "Invisible"},
			{"Name": "port", "Access (Premium)": "Read-only"},
		},
		nil,
		[]sem.Row{{"Table name": "CLUSTER_INFO", "Schema": "INFORMATION_SCHEMA", "Premium": "NO"}},
		nil,
		sem.Overrides{},
	)
}

func TestEncode_JSON(t *testing.T) {
	data, err := Encode(sampleConfig(), FormatJSON)
	require.NoError(t, err)

	expected := `{
  "version": "1.0",
  "tidb_version": "v8.5.0",
  "restricted_databases": [
    "metrics_schema"
  ],
  "restricted_tables": [
    {
      "schema": "information_schema",
      "name": "cluster_info",
      "hidden": true
    }
  ],
  "restricted_status_variables": [
    "tidb_gc_leader_desc"
  ],
  "restricted_variables": [
    {
      "name": "hostname",
      "hidden": true,
      "value": "localhost"
    },
    {
      "name": "port",
      "hidden": false
    }
  ],
  "restricted_privileges": [],
  "restricted_sql": {
    "rule": [
      "time_to_live",
      "alter_table_attributes",
      "import_with_external_id"
    ],
    "sql": []
  }
}
`
	assert.Equal(t, expected, string(data))
}

func TestEncode_YAML(t *testing.T) {
	data, err := Encode(sampleConfig(), FormatYAML)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "1.0", decoded["version"])
	assert.Equal(t, "v8.5.0", decoded["tidb_version"])
	assert.Contains(t, string(data), "- schema: information_schema\n")
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(sampleConfig(), Format("toml"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeEncodeError, errors.GetCode(err))
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "YAML", want: FormatYAML},
		{in: " yml ", want: FormatYAML},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFileWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sem_config.json")
	w := NewFileWriter(path, FormatJSON, nil)

	written, err := w.Write(context.Background(), sampleConfig())
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded sem.Config
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sampleConfig(), decoded)
}

func TestFileWriter_WriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "sem_config.json")

	_, err := NewFileWriter(path, FormatJSON, nil).Write(context.Background(), sampleConfig())

	require.Error(t, err)
	assert.Equal(t, errors.CodeWriteError, errors.GetCode(err))
}

func TestNewFileWriter_Defaults(t *testing.T) {
	assert.Equal(t, "sem_config.json", NewFileWriter("", "", nil).Path())
	assert.Equal(t, "sem_config.yaml", NewFileWriter("", FormatYAML, nil).Path())
	assert.Equal(t, "out.json", NewFileWriter("out.json", FormatYAML, nil).Path())
}
