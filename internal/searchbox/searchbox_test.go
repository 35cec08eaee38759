package searchbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/artshelf/internal/gallery"
)

func catalogBox() Box {
	return New().WithCatalog([]gallery.Product{
		{ID: "1", Name: "Vase"},
		{ID: "2", Name: "Bowl"},
		{ID: "3", Name: "Glass Vase"},
		{ID: "4", Name: "Vase"},
		{ID: "5", Name: "Plate"},
	})
}

func TestBox_StartsIdleWithHistory(t *testing.T) {
	b := catalogBox()
	assert.Equal(t, Idle, b.Mode())
	assert.False(t, b.ShowsHistory())

	b = b.WithHistory([]string{"gold", "vase"})
	assert.True(t, b.ShowsHistory())
	assert.Equal(t, []string{"gold", "vase"}, b.Options())
}

func TestBox_TypingSuggestsDistinctNamesInOrder(t *testing.T) {
	b := catalogBox().WithHistory([]string{"gold"}).Input("VAS")

	assert.Equal(t, Typing, b.Mode())
	assert.False(t, b.ShowsHistory(), "history hidden while typing")
	assert.Equal(t, []string{"Vase", "Glass Vase"}, b.Options())
}

func TestBox_BlankInputIsIdle(t *testing.T) {
	b := catalogBox().Input("vase").Input("   ")

	assert.Equal(t, Idle, b.Mode())
	assert.Empty(t, b.Suggestions())
	assert.Equal(t, "   ", b.Query())
}

func TestBox_SelectCommits(t *testing.T) {
	b := catalogBox().Input("bo")
	b = b.Move(1)
	term, ok := b.Highlighted()
	assert.True(t, ok)
	assert.Equal(t, "Bowl", term)

	b = b.Select(term)
	assert.Equal(t, Selected, b.Mode())
	assert.Equal(t, "Bowl", b.Query())
	assert.Equal(t, "Bowl", b.Committed())
	assert.Empty(t, b.Options())
}

func TestBox_HighlightedFallsBackToQuery(t *testing.T) {
	b := catalogBox().Input(" zzz ")

	term, ok := b.Highlighted()
	assert.True(t, ok)
	assert.Equal(t, "zzz", term)

	_, ok = New().Highlighted()
	assert.False(t, ok)
}

func TestBox_MoveWraps(t *testing.T) {
	b := catalogBox().Input("a")
	opts := b.Options()
	assert.Equal(t, []string{"Vase", "Glass Vase", "Plate"}, opts)

	b = b.Move(-1)
	assert.Equal(t, 2, b.Cursor())
	b = b.Move(1)
	assert.Equal(t, 0, b.Cursor())
	b = b.Move(4)
	assert.Equal(t, 1, b.Cursor())

	assert.Equal(t, -1, New().Move(1).Cursor(), "nothing to highlight")
}

func TestBox_InputResetsHighlight(t *testing.T) {
	b := catalogBox().Input("a").Move(1).Input("as")
	assert.Equal(t, -1, b.Cursor())
}

func TestBox_ClearAndBlankSelect(t *testing.T) {
	b := catalogBox().Select("Vase").Clear()
	assert.Equal(t, Idle, b.Mode())
	assert.Empty(t, b.Query())
	assert.Empty(t, b.Committed())

	b = catalogBox().Input("x").Select("  ")
	assert.Equal(t, Idle, b.Mode())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "typing", Typing.String())
	assert.Equal(t, "selected", Selected.String())
}
