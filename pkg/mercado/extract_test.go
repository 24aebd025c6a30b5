package mercado

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractState(t *testing.T) {
	html := `<html><script>
window.__PRELOADED_STATE__ = {"data":{"items":[{"card":{"metadata":{"url":"www.mercadolibre.com.ar/p/MLA1"}}}]},"noise":{"nested":{"deep":"a \"quoted\" value with a } brace"}}};
</script></html>`

	state, err := ExtractState(html)
	assert.NoError(t, err)
	assert.Len(t, state.Data.Items, 1)
	assert.Equal(t, "www.mercadolibre.com.ar/p/MLA1", state.Data.Items[0].Card.Metadata.URL)
}

func TestExtractStateMarkerMissing(t *testing.T) {
	_, err := ExtractState("<html><body>nothing embedded here</body></html>")
	assert.True(t, errors.Is(err, ErrStateNotFound))
}

func TestExtractStateUnterminated(t *testing.T) {
	_, err := ExtractState(`window.__PRELOADED_STATE__ = {"data":{"items":[`)
	assert.True(t, errors.Is(err, ErrStateNotFound))
}

func TestExtractStateMalformed(t *testing.T) {
	// balanced braces but invalid JSON: a parse error, not a missing marker
	_, err := ExtractState(`window.__PRELOADED_STATE__ = {data: unquoted};`)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrStateNotFound))
}

func TestObjectSpanSkipsStringBraces(t *testing.T) {
	span, err := objectSpan(`{"a":"text with { and } inside","b":{"c":1}} trailing`)
	assert.NoError(t, err)
	assert.Equal(t, `{"a":"text with { and } inside","b":{"c":1}}`, span)
}
