package main //nolint:testpackage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()

	return out.String(), err
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestStartTransaction(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, "type: tablet\ntimeout: 2s\nping: false\n")

	out, err := execute(t, "", "start-transaction", path)
	require.NoError(t, err)
	assert.Equal(t, "type: TT_TABLET\ntimeout: 2000000\nping: false\n", out)
}

func TestStartTransaction_Hex(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "type: master\n", "start-transaction", "--format", "hex", "-")
	require.NoError(t, err)
	assert.Equal(t, "0800\n", out)
}

func TestStartTransaction_MissingType(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "ping: true\n", "start-transaction", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required field "type" is not set`)
}

func TestReshardTable(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, `path: //home/table
schema:
  columns:
    - {name: key, type: int64}
tablet_count: 4
`)

	out, err := execute(t, "", "reshard-table", path)
	require.NoError(t, err)
	assert.Contains(t, out, `path: "//home/table"`)
	assert.Contains(t, out, "tablet_count: 4")
	assert.Contains(t, out, "rowset_descriptor: <")
	assert.Contains(t, out, `name: "key"`)
}

func TestReshardTable_UnsupportedSchema(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "path: //t\nschema: {columns: [{name: a, type: max}]}\n", "reshard-table", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema")
}

func TestMountAndUnmountTable(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "path: //t\nfreeze: true\n", "mount-table", "-")
	require.NoError(t, err)
	assert.Equal(t, "path: \"//t\"\nfreeze: true\n", out)

	out, err = execute(t, "path: //t\n", "unmount-table", "-")
	require.NoError(t, err)
	assert.Equal(t, "path: \"//t\"\n", out)
}

func TestValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"int64", []string{"value", "--id", "3", "--type", "int64", "42"}, "42\n"},
		{
			"versioned",
			[]string{"value", "--id", "3", "--type", "int64", "--timestamp", "100", "42"},
			"<\"timestamp\"=100u;\"aggregate\"=%false>42\n",
		},
		{
			"versioned with spaces",
			[]string{"value", "--type", "boolean", "--aggregate", "--timestamp", "7", "--spaces", "false"},
			"<\"timestamp\" = 7u; \"aggregate\" = %true>%false\n",
		},
		{
			"versioned at null timestamp",
			[]string{"value", "--type", "int64", "--timestamp", "0", "42"},
			"<\"timestamp\"=0u;\"aggregate\"=%false>42\n",
		},
		{
			"versioned msgpack at null timestamp",
			[]string{"value", "--id", "3", "--type", "int64", "--timestamp", "0", "--msgpack", "42"},
			"950303c22a00\n",
		},
		{"null", []string{"value", "--type", "null"}, "#\n"},
		{"string", []string{"value", "--type", "string", "a b"}, "\"a b\"\n"},
		{"msgpack", []string{"value", "--id", "3", "--type", "int64", "--msgpack", "42"}, "940303c22a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestValue_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown type", []string{"value", "--type", "varchar", "1"}},
		{"bad payload", []string{"value", "--type", "int64", "abc"}},
		{"missing payload", []string{"value", "--type", "string"}},
		{"null with payload", []string{"value", "--type", "null", "1"}},
		{"sentinel type", []string{"value", "--type", "min"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "path: //t\n", "--format", "json", "unmount-table", "-")
	require.ErrorIs(t, err, errUnknownFormat)
}
