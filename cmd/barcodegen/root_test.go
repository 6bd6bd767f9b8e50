package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	barcodegen "github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/internal/config"
)

// run executes the CLI in an empty working directory.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "barcodegen version ")
	assert.Contains(t, out, "commit: ")
	assert.NotEmpty(t, getVersion())
	assert.NotEmpty(t, getCommit())
}

func TestEncodeCmdPrintsDataURI(t *testing.T) {
	out, _, err := run(t, "", "encode", "--symbology", "ean13", "590123412345")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/svg+xml;utf8,"))

	out, _, err = run(t, "", "encode", "-s", "code128", "ABC-123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/png;base64,"))
}

func TestEncodeCmdWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qr.png")
	_, _, err := run(t, "", "encode", "--format", "png", "--module-size", "4", "--out", path, "https://example.com")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	// 4 px modules and a 4 module quiet zone on each side of a 17+4v grid.
	assert.Equal(t, 0, (img.Bounds().Dx()/4-8-17)%4)
}

func TestEncodeCmdErrors(t *testing.T) {
	_, _, err := run(t, "", "encode", "-s", "ean13", "5901234123450")
	assert.ErrorIs(t, err, barcodegen.ErrInvalidCheckDigit)

	_, _, err = run(t, "", "encode", "-s", "pdf417", "x")
	assert.ErrorIs(t, err, barcodegen.ErrUnsupportedSymbology)

	_, _, err = run(t, "", "encode", "--ec", "Z", "x")
	assert.ErrorIs(t, err, config.ErrInvalidErrorCorrection)

	_, _, err = run(t, "", "encode", "--config", "/nonexistent/barcodegen.yaml", "x")
	assert.ErrorIs(t, err, config.ErrConfigNotFound)

	_, _, err = run(t, "", "encode")
	assert.Error(t, err)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("render:\n  ean_unit: 3\n"), 0o600))

	cmd := NewRootCmd()
	encode, _, err := cmd.Find([]string{"encode"})
	require.NoError(t, err)
	require.NoError(t, encode.ParseFlags([]string{"--config", cfgPath}))
	cfg, err := loadConfig(encode)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Render.EANUnit)

	require.NoError(t, encode.ParseFlags([]string{"--ean-unit", "5"}))
	cfg, err = loadConfig(encode)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Render.EANUnit)
}

func TestBatchCmd(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	stdout, stderr, err := run(t, "590123412345\n5901234123450\n4006381333931\n",
		"batch", "--symbology", "ean13", "--out-dir", outDir, "--report", "-", "-")
	assert.ErrorIs(t, err, errBatchFailed)
	assert.Contains(t, stderr, "2 encoded, 1 failed")
	assert.Contains(t, stdout, "# Barcode Batch Report")
	assert.Contains(t, stdout, "InvalidCheckDigit")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"0000.svg", "0002.svg"}, names)
}

func TestBatchCmdFromFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "payloads.txt")
	require.NoError(t, os.WriteFile(input, []byte("one\ntwo\n"), 0o600))
	report := filepath.Join(dir, "report.md")

	_, _, err := run(t, "", "batch", "-s", "datamatrix", "-f", "png", "-j", "2", "-o", dir, "-r", report, input)
	require.NoError(t, err)

	for _, name := range []string{"0000.png", "0001.png", "report.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
