package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewkroh/go-redfish-gen/internal/generator"
)

const thingBase = `{
  "$id": "http://redfish.dmtf.org/schemas/v1/Thing.json",
  "$ref": "#/definitions/Thing",
  "definitions": {
    "Thing": {
      "anyOf": [
        {"$ref": "http://redfish.dmtf.org/schemas/v1/odata-v4.json#/definitions/idRef"},
        {"$ref": "http://redfish.dmtf.org/schemas/v1/Thing.v1_0_0.json#/definitions/Thing"},
        {"$ref": "http://redfish.dmtf.org/schemas/v1/Thing.v1_1_0.json#/definitions/Thing"}
      ]
    }
  }
}`

const thingVersioned = `{
  "$id": "http://redfish.dmtf.org/schemas/v1/Thing.v1_1_0.json",
  "definitions": {
    "Actions": {
      "type": "object",
      "properties": {"Oem": {"type": "object"}}
    },
    "Kind": {
      "type": "string",
      "enum": ["Big", "Small"],
      "enumDescriptions": {"Big": "A big thing.", "Small": "A small thing."}
    },
    "Thing": {
      "type": "object",
      "description": "A thing.",
      "longDescription": "This resource shall represent a thing.",
      "properties": {
        "Id": {"type": "string", "readonly": true},
        "Name": {"type": "string", "readonly": true},
        "Kind": {"anyOf": [{"$ref": "#/definitions/Kind"}, {"type": "null"}], "readonly": true},
        "Size": {
          "type": ["integer", "null"],
          "readonly": false,
          "description": "The size.",
          "longDescription": "This property shall contain the size."
        }
      }
    }
  }
}`

// schemaDir writes the Thing fixtures and returns their directory.
func schemaDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "Thing.json", thingBase)
	writeFile(t, dir, "Thing.v1_1_0.json", thingVersioned)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "redfish-gen version ")
}

func TestGenerateCmdStdout(t *testing.T) {
	dir := schemaDir(t)

	stdout, _, err := execute(t, "generate", "Thing", "-l", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "package redfish\n")
	assert.Contains(t, stdout, "type Kind string\n")
	assert.Contains(t, stdout, "\tBigKind Kind = \"Big\"\n")
	assert.Contains(t, stdout, "// Thing shall represent a thing.\ntype Thing struct {\n\tcommon.Entity\n")
	assert.Contains(t, stdout, "\t// Size shall contain the size.\n\tSize int\n")
	assert.Contains(t, stdout, "\tKind Kind\n")
	assert.Contains(t, stdout, "// Writable Thing properties: Size.\n")
}

func TestGenerateCmdDefaultsToRedfish(t *testing.T) {
	cmd, _, err := NewRootCmd().Find([]string{"generate"})
	require.NoError(t, err)

	flag := cmd.Flags().Lookup("type")
	require.NotNil(t, flag)
	assert.Equal(t, generator.ModeRedfish, flag.DefValue)
}

func TestGenerateCmdOutputFile(t *testing.T) {
	dir := schemaDir(t)
	outDir := t.TempDir()

	stdout, stderr, err := execute(t, "generate", "Thing",
		"-t", "swordfish", "-l", dir, "--format", "go", "--package", "things",
		"-o", filepath.Join(outDir, "Thing.go"))
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Wrote generated source")

	data, err := os.ReadFile(filepath.Join(outDir, "thing.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package things")
	assert.Contains(t, string(data), "// Code generated by redfish-gen. DO NOT EDIT.")
}

func TestGenerateCmdVerboseJSONLogs(t *testing.T) {
	dir := schemaDir(t)

	_, stderr, err := execute(t, "generate", "Thing", "-l", dir, "-v", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"Using versioned schema"`)
	assert.Contains(t, stderr, `"msg":"Skipping definition"`)
}

func TestGenerateCmdConfigFile(t *testing.T) {
	dir := schemaDir(t)
	cfg := writeFile(t, t.TempDir(), "config.yml", "comment:\n  cut_point: \"\"\n  link_word: is\n")

	stdout, _, err := execute(t, "--config", cfg, "generate", "Thing", "-l", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "// Size is This property shall contain the size.\n")
}

func TestGenerateCmdErrors(t *testing.T) {
	dir := schemaDir(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing object", args: []string{"generate"}, wantErr: "accepts 1 arg(s)"},
		{name: "unknown mode", args: []string{"generate", "Thing", "-t", "openbmc"}, wantErr: `unknown schema mode "openbmc"`},
		{name: "unknown format", args: []string{"generate", "Thing", "-l", dir, "--format", "rust"}, wantErr: `unknown format "rust"`},
		{name: "missing schema", args: []string{"generate", "Nothing", "-l", dir}, wantErr: "loading schema"},
		{name: "bad log level", args: []string{"generate", "Thing", "--log-level", "loud"}, wantErr: "unknown log level"},
		{name: "missing config", args: []string{"--config", filepath.Join(dir, "nope.yml"), "version"}, wantErr: "reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateCmdUnknownModeIsTyped(t *testing.T) {
	_, _, err := execute(t, "generate", "Thing", "-t", "openbmc")
	assert.ErrorIs(t, err, generator.ErrUnknownMode)
}

func TestBatchCmd(t *testing.T) {
	dir := schemaDir(t)
	outDir := filepath.Join(t.TempDir(), "out")
	manifest := writeFile(t, t.TempDir(), "objects.yml", `
output_dir: ignored
objects:
  redfish: [Thing]
files:
  things.go: [Thing]
`)

	_, stderr, err := execute(t, "batch", manifest, "-l", dir, "--output-dir", outDir, "--concurrency", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Batch complete")

	data, err := os.ReadFile(filepath.Join(outDir, "redfish", "things.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "type Thing struct {")
}

func TestBatchCmdMissingManifest(t *testing.T) {
	_, _, err := execute(t, "batch", filepath.Join(t.TempDir(), "objects.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest")
}
