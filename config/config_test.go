package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m-ocean-it/go-tinyprint/printer"
	"github.com/m-ocean-it/go-tinyprint/sink"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tinyprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
printer:
  base: 16
  int_width: 4
  float_digits: 3
  legacy_overflow: true
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, PrinterConfig{
		Base:           16,
		IntWidth:       4,
		FloatDigits:    3,
		LegacyOverflow: true,
	}, cfg.Printer)
	require.Equal(t, MetricsConfig{Enabled: true, Namespace: "tinyprint"}, cfg.Metrics)
}

func TestLoadKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "metrics:\n  namespace: dev\n"))
	require.NoError(t, err)

	require.Equal(t, uint8(10), cfg.Printer.Base)
	require.Equal(t, uint8(2), cfg.Printer.FloatDigits)
	require.Equal(t, "dev", cfg.Metrics.Namespace)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		invalid bool
	}{
		{name: "malformed yaml", content: "printer: [1, 2"},
		{name: "base too small", content: "printer:\n  base: 1\n", invalid: true},
		{name: "base too large", content: "printer:\n  base: 17\n", invalid: true},
		{name: "int width", content: "printer:\n  int_width: 17\n", invalid: true},
		{name: "float width", content: "printer:\n  float_width: 40\n", invalid: true},
		{name: "float digits", content: "printer:\n  float_digits: 20\n", invalid: true},
		{name: "metrics namespace", content: "metrics:\n  enabled: true\n  namespace: \"\"\n", invalid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tc.content))

			require.Error(t, err)
			if tc.invalid {
				require.ErrorIs(t, err, ErrInvalid)
			} else {
				require.NotErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrinterOptions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Printer.LegacyOverflow = true

	b := sink.NewBuffer(32)
	printer.New(b, cfg.PrinterOptions()...).PrintFloat64(1e10, 0, 0)
	require.Equal(t, "ovf", b.String())

	b.Reset()
	printer.New(b, Default().PrinterOptions()...).PrintFloat64(1e10, 0, 0)
	require.Equal(t, "10000000000", b.String())
}
