package mercatrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSnapshotsEscaped(t *testing.T) {
	html := `<script>{\"product\":{\"snapshots\":[{\"date\":\"2024-01-01\",\"price\":100},{\"date\":\"2024-01-02\",\"price\":95}]}}</script>`

	snapshots, err := ExtractSnapshots(html)
	assert.NoError(t, err)
	assert.Len(t, snapshots, 2)
	assert.Equal(t, "2024-01-01", snapshots[0].Date)
	assert.Equal(t, 100.0, snapshots[0].Price)
}

func TestExtractSnapshotsRawFallback(t *testing.T) {
	html := `<script>{"product":{"snapshots":[{"date":"2024-01-01","price":100}]}}</script>`

	snapshots, err := ExtractSnapshots(html)
	assert.NoError(t, err)
	assert.Len(t, snapshots, 1)
}

func TestExtractSnapshotsEscapingIdempotent(t *testing.T) {
	// escaped and raw embeddings of the same array must parse identically
	escaped := `x\"snapshots\":[{\"date\":\"2024-01-01\",\"price\":100}]x`
	raw := `x"snapshots":[{"date":"2024-01-01","price":100}]x`

	a, err := ExtractSnapshots(escaped)
	assert.NoError(t, err)
	b, err := ExtractSnapshots(raw)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExtractSnapshotsNestedArrays(t *testing.T) {
	html := `\"snapshots\":[{\"date\":\"2024-01-01\",\"price\":100,\"tags\":[\"a\",\"b\"]}] trailing ]`

	snapshots, err := ExtractSnapshots(html)
	assert.NoError(t, err)
	assert.Len(t, snapshots, 1)
}

func TestExtractSnapshotsMarkerAbsent(t *testing.T) {
	// no tracked history is the common case, not an error
	snapshots, err := ExtractSnapshots("<html>producto sin seguimiento</html>")
	assert.NoError(t, err)
	assert.Nil(t, snapshots)
}

func TestExtractSnapshotsMalformed(t *testing.T) {
	snapshots, err := ExtractSnapshots(`"snapshots":[{"date":}]`)
	assert.NoError(t, err)
	assert.Nil(t, snapshots)
}

func TestExtractSnapshotsUnterminated(t *testing.T) {
	snapshots, err := ExtractSnapshots(`"snapshots":[{"date":"2024-01-01"`)
	assert.NoError(t, err)
	assert.Nil(t, snapshots)
}

func TestArraySpanSkipsEscapedBrackets(t *testing.T) {
	span, ok := arraySpan(`[\] still inside ]`)
	assert.True(t, ok)
	assert.Equal(t, `[\] still inside ]`, span)
}
