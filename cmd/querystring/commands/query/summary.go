package query

import (
	"io"
	"time"

	"github.com/speakeasy-api/querystring/internal/config"
	"github.com/speakeasy-api/querystring/querystring"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func reportSummary(w io.Writer, cfg *config.Config, results []result, elapsed time.Duration) {
	fragments := 0
	for _, r := range results {
		fragments += r.Fragments
	}

	roundedElapsed := elapsed.Round(time.Millisecond)
	if roundedElapsed < time.Millisecond {
		roundedElapsed = time.Millisecond
	}

	printer.Fprintf(w, "Encoded %d document(s) as %s into %d parameter(s) in %s\n",
		len(results), querystring.StyleOf(cfg.Prefix), fragments, roundedElapsed)
}
