package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m-ocean-it/go-tinyprint/config"
	"github.com/m-ocean-it/go-tinyprint/printer"
	"github.com/m-ocean-it/go-tinyprint/sink"
)

func TestRun(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		cfg      config.PrinterConfig
		args     []string
		newline  bool
		expected string
	}{
		{
			name:     "defaults",
			cfg:      config.Default().Printer,
			args:     []string{"42", "-7", "1.999", "hi\nthere"},
			newline:  true,
			expected: "42\r\n-7\r\n2.00\r\nhi\r\nthere\r\n",
		},
		{
			name:     "hex padded",
			cfg:      config.PrinterConfig{Base: 16, IntWidth: 4, FloatDigits: 1},
			args:     []string{"255", "0x10", "18446744073709551615"},
			newline:  true,
			expected: "00FF\r\n0010\r\nFFFFFFFFFFFFFFFF\r\n",
		},
		{
			name:     "single line",
			cfg:      config.PrinterConfig{Base: 10, FloatWidth: 6, FloatDigits: 1},
			args:     []string{"3.14159", "NaN", "inf", "x"},
			expected: "   3.1 nan inf x\r\n",
		},
		{
			name:     "no args",
			cfg:      config.Default().Printer,
			newline:  false,
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := sink.NewBuffer(256)
			n := run(printer.New(b), tc.cfg, tc.args, tc.newline)

			require.Equal(t, tc.expected, b.String())
			require.Equal(t, len(tc.expected), n)
		})
	}
}

func TestConfigure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tinyprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("printer:\n  base: 8\n  float_digits: 4\n"), 0o644))

	cfg, err := configure(path, overrides{base: 0, width: 3, fwidth: -1, digits: -1})
	require.NoError(t, err)
	require.Equal(t, config.PrinterConfig{Base: 8, IntWidth: 3, FloatDigits: 4}, cfg.Printer)

	cfg, err = configure("", overrides{base: 2, width: -1, fwidth: 10, digits: 0})
	require.NoError(t, err)
	require.Equal(t, config.PrinterConfig{Base: 2, FloatWidth: 10}, cfg.Printer)

	_, err = configure("", overrides{base: 20, width: -1, fwidth: -1, digits: -1})
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = configure(filepath.Join(t.TempDir(), "missing.yaml"), overrides{width: -1, fwidth: -1, digits: -1})
	require.ErrorIs(t, err, os.ErrNotExist)
}
