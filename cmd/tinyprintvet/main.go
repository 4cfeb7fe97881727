// Command tinyprintvet reports fmt.Sprintf calls that can be rewritten with
// the numfmt formatters. Run it with -fix to apply the suggestions.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/m-ocean-it/go-tinyprint/analyzer"
)

func main() {
	singlechecker.Main(analyzer.New())
}
