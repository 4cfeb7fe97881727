package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/m-ocean-it/go-tinyprint/config"
	"github.com/m-ocean-it/go-tinyprint/printer"
	"github.com/m-ocean-it/go-tinyprint/sink"
)

var (
	configPath = flag.String("config", "", "path to a tinyprint YAML config")
	base       = flag.Int("base", 0, "integer base, 2-16 (overrides config)")
	width      = flag.Int("width", -1, "minimum integer width (overrides config)")
	fwidth     = flag.Int("fwidth", -1, "float field width (overrides config)")
	digits     = flag.Int("digits", -1, "fractional digits for floats (overrides config)")
	newline    = flag.Bool("newline", true, "print every value on its own line")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: tinyprint [flags] [--] value...")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := configure(*configPath, overrides{
		base:   *base,
		width:  *width,
		fwidth: *fwidth,
		digits: *digits,
	})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	out := sink.NewWriter(os.Stdout)

	var s printer.Sink = out
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		s = sink.NewMetered(out, reg, cfg.Metrics.Namespace)
	}

	run(printer.New(s, cfg.PrinterOptions()...), cfg.Printer, flag.Args(), *newline)

	if err := out.Err(); err != nil {
		log.Printf("Write error: %v", err)
	}
	if reg != nil {
		logMetrics(reg)
	}
}

// overrides holds command-line settings; negative (or zero base) means unset.
type overrides struct {
	base   int
	width  int
	fwidth int
	digits int
}

func configure(path string, o overrides) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	p := &cfg.Printer
	if o.base > 0 {
		p.Base = clampFlag(o.base)
	}
	if o.width >= 0 {
		p.IntWidth = clampFlag(o.width)
	}
	if o.fwidth >= 0 {
		p.FloatWidth = clampFlag(o.fwidth)
	}
	if o.digits >= 0 {
		p.FloatDigits = clampFlag(o.digits)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func clampFlag(v int) uint8 {
	return uint8(min(v, 255))
}

// run prints every argument and returns the number of bytes accepted.
func run(p *printer.Printer, cfg config.PrinterConfig, args []string, newline bool) int {
	n := 0
	for i, arg := range args {
		if i > 0 && !newline {
			n += p.PrintChar(' ')
		}
		n += printArg(p, cfg, arg)
		if newline {
			n += p.Println()
		}
	}
	if !newline && len(args) > 0 {
		n += p.Println()
	}
	return n
}

// printArg prints arg as an integer or a float when it parses as one, and as
// text otherwise.
func printArg(p *printer.Printer, cfg config.PrinterConfig, arg string) int {
	if v, err := strconv.ParseInt(arg, 0, 64); err == nil {
		return p.PrintInt64(v, cfg.Base, cfg.IntWidth)
	}
	if v, err := strconv.ParseUint(arg, 0, 64); err == nil {
		return p.PrintUint64(v, cfg.Base, cfg.IntWidth)
	}
	if v, err := strconv.ParseFloat(arg, 64); err == nil {
		return p.PrintFloat64(v, cfg.FloatWidth, cfg.FloatDigits)
	}
	return p.PrintString(arg)
}

func logMetrics(g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Printf("Failed to gather metrics: %v", err)
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, l := range m.GetLabel() {
				name += " " + l.GetName() + "=" + l.GetValue()
			}
			log.Printf("%s: %v", name, m.GetCounter().GetValue())
		}
	}
}
