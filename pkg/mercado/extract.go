package mercado

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const stateMarker = "window.__PRELOADED_STATE__"

// ErrStateNotFound means the page came back without the embedded state blob,
// usually a layout change or an interstitial. Callers skip the page.
var ErrStateNotFound = errors.New("preloaded state not found in HTML")

// State is the slice of the embedded page state we care about
type State struct {
	Data struct {
		Items []Item `json:"items"`
	} `json:"data"`
}

// Item is one listing candidate inside the embedded state
type Item struct {
	Card *Card `json:"card"`
}

// Card carries the renderable parts of an item
type Card struct {
	Pictures struct {
		Pictures []Picture `json:"pictures"`
	} `json:"pictures"`
	Metadata struct {
		URL string `json:"url"`
	} `json:"metadata"`
	Components []Component `json:"components"`
}

type Picture struct {
	ID string `json:"id"`
}

// Component order inside a card is not guaranteed; match on Type
type Component struct {
	Type  string `json:"type"`
	Title struct {
		Text string `json:"text"`
	} `json:"title"`
	Price struct {
		Discount struct {
			Value float64 `json:"value"`
		} `json:"discount"`
		CurrentPrice struct {
			Value float64 `json:"value"`
		} `json:"current_price"`
	} `json:"price"`
}

// ExtractState pulls the __PRELOADED_STATE__ assignment out of a listing page.
// The object can nest braces and strings with escaped quotes at arbitrary
// depth, so a balanced-brace regex is not safe; we scan with a depth counter
// that honors JSON string literals and escapes.
func ExtractState(html string) (*State, error) {
	start := strings.Index(html, stateMarker)
	if start == -1 {
		return nil, ErrStateNotFound
	}

	open := strings.Index(html[start:], "{")
	if open == -1 {
		return nil, ErrStateNotFound
	}

	span, err := objectSpan(html[start+open:])
	if err != nil {
		return nil, err
	}

	state := new(State)
	err = json.Unmarshal([]byte(span), state)
	if err != nil {
		return nil, fmt.Errorf("Parse preloaded state - %w", err)
	}

	return state, nil
}

// objectSpan returns the text from the leading '{' to its matching '}'
func objectSpan(text string) (string, error) {
	var (
		depth    int
		inString bool
		escaped  bool
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[:i+1], nil
				}
			}
		}
	}

	return "", fmt.Errorf("Unterminated state object - %w", ErrStateNotFound)
}
