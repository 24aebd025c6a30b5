package mercatrack

import (
	"encoding/json"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sebasfavaron/ml-scraper/pkg/pricehistory"
)

const (
	escapedMarker = `\"snapshots\":[`
	rawMarker     = `"snapshots":[`
)

// ExtractSnapshots pulls the snapshots array out of a tracking page.
// The array is usually JSON escaped inside the HTML, so the escaped marker is
// preferred and the raw one is a fallback. A missing marker or a malformed
// span returns nil without error: most products simply have no tracked
// history and that must not abort the run.
func ExtractSnapshots(html string) ([]pricehistory.Snapshot, error) {
	marker := escapedMarker
	start := strings.Index(html, marker)
	if start == -1 {
		marker = rawMarker
		start = strings.Index(html, marker)
		if start == -1 {
			return nil, nil
		}
	}

	// position at the opening bracket
	start += len(marker) - 1

	span, ok := arraySpan(html[start:])
	if !ok {
		return nil, nil
	}

	// unescape quote-escapes before bare backslashes so a \\" sequence is
	// not unescaped twice
	span = strings.ReplaceAll(span, `\"`, `"`)
	span = strings.ReplaceAll(span, `\\`, `\`)

	var snapshots []pricehistory.Snapshot
	err := json.Unmarshal([]byte(span), &snapshots)
	if err != nil {
		log.WithField("Error", err).Debugln("Snapshot span did not parse")
		return nil, nil
	}

	return snapshots, nil
}

// arraySpan returns the text from the leading '[' to its matching ']'
// inclusive. Any character following an unescaped backslash is skipped, so
// escaped brackets and quotes never perturb the depth count.
func arraySpan(text string) (string, bool) {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[:i+1], true
			}
		}
	}
	return "", false
}
