package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopwindow.dev/app/internal/catalog"
	"shopwindow.dev/app/internal/shared/apperr"
)

var testProducts = map[string]catalog.Product{
	"p1": {ID: "p1", Title: "Backpack", Price: 10.00},
	"p2": {ID: "p2", Title: "T-Shirt", Price: 22.30},
	"p3": {ID: "p3", Title: "Jacket", Price: 55.99},
}

func testLookup(id string) (catalog.Product, bool) {
	p, ok := testProducts[id]
	return p, ok
}

func accept() Confirmer  { return ConfirmerFunc(func(string) bool { return true }) }
func decline() Confirmer { return ConfirmerFunc(func(string) bool { return false }) }

func TestAddOrAccumulateInsertsNewLine(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrAccumulate("p1", 3, testLookup))

	require.Equal(t, 1, c.Len())
	line, ok := c.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "Backpack", line.Product.Title)
	assert.Equal(t, 3, line.Quantity)
}

func TestAddOrAccumulateAccumulates(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrAccumulate("p1", 3, testLookup))
	require.NoError(t, c.AddOrAccumulate("p1", 3, testLookup))

	// One line with quantity 6, not two lines and not an overwrite.
	require.Equal(t, 1, c.Len())
	line, _ := c.Get("p1")
	assert.Equal(t, 6, line.Quantity)
}

func TestAddOrAccumulateRejectsZeroQty(t *testing.T) {
	c := New()
	err := c.AddOrAccumulate("p1", 0, testLookup)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Invalid))
	assert.Equal(t, 0, c.Len())
}

func TestAddOrAccumulateUnknownProduct(t *testing.T) {
	c := New()
	err := c.AddOrAccumulate("gone", 1, testLookup)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.Equal(t, 0, c.Len(), "a failed lookup must not create a line")
}

func TestOrderingInsertionThenStableOnUpdate(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrAccumulate("p1", 1, testLookup))
	require.NoError(t, c.AddOrAccumulate("p2", 1, testLookup))
	require.NoError(t, c.AddOrAccumulate("p3", 1, testLookup))

	// Updating the middle line must not move it.
	_, err := c.SetOrRemove("p2", 9, nil)
	require.NoError(t, err)

	ids := make([]string, 0, 3)
	for _, l := range c.Lines() {
		ids = append(ids, l.Product.ID)
	}
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids)
}

func TestSetOrRemoveOverwrites(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrAccumulate("p1", 2, testLookup))

	removed, err := c.SetOrRemove("p1", 5, nil)
	require.NoError(t, err)
	assert.False(t, removed)

	line, _ := c.Get("p1")
	assert.Equal(t, 5, line.Quantity, "overwrite, not accumulate")
}

func TestSetOrRemoveAbsentProductNeverInserts(t *testing.T) {
	c := New()
	removed, err := c.SetOrRemove("p1", 5, nil)
	require.Error(t, err)
	assert.False(t, removed)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
	assert.Equal(t, 0, c.Len())
}

func TestSetOrRemoveZeroAsksConfirmerWithTitle(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrAccumulate("p2", 2, testLookup))

	var asked string
	removed, err := c.SetOrRemove("p2", 0, ConfirmerFunc(func(title string) bool {
		asked = title
		return true
	}))
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "T-Shirt", asked, "prompt must name the product")
	assert.Equal(t, 0, c.Len())
}

func TestSetOrRemoveDeclinedLeavesCartUnchanged(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrAccumulate("p1", 2, testLookup))
	require.NoError(t, c.AddOrAccumulate("p2", 4, testLookup))

	removed, err := c.SetOrRemove("p1", 0, decline())
	require.NoError(t, err)
	assert.False(t, removed)

	require.Equal(t, 2, c.Len())
	line, _ := c.Get("p1")
	assert.Equal(t, 2, line.Quantity, "no quantity-0 line may linger")
}

func TestSetOrRemoveRemovesExactlyOneLine(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrAccumulate("p1", 1, testLookup))
	require.NoError(t, c.AddOrAccumulate("p2", 1, testLookup))
	require.NoError(t, c.AddOrAccumulate("p3", 1, testLookup))

	removed, err := c.SetOrRemove("p2", 0, accept())
	require.NoError(t, err)
	assert.True(t, removed)

	ids := make([]string, 0, 2)
	for _, l := range c.Lines() {
		ids = append(ids, l.Product.ID)
	}
	assert.Equal(t, []string{"p1", "p3"}, ids)

	// Re-adding after removal appends at the end again.
	require.NoError(t, c.AddOrAccumulate("p2", 1, testLookup))
	last := c.Lines()[c.Len()-1]
	assert.Equal(t, "p2", last.Product.ID)
}

func TestCount(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Count())
	require.NoError(t, c.AddOrAccumulate("p1", 2, testLookup))
	require.NoError(t, c.AddOrAccumulate("p2", 3, testLookup))
	assert.Equal(t, 5, c.Count())
}

func TestEndToEndScenario(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.AddOrAccumulate("p1", 2, testLookup))
	line, _ := c.Get("p1")
	require.Equal(t, 2, line.Quantity)

	require.NoError(t, c.AddOrAccumulate("p1", 3, testLookup))
	require.Equal(t, 1, c.Len())
	line, _ = c.Get("p1")
	require.Equal(t, 5, line.Quantity)

	removed, err := c.SetOrRemove("p1", 0, accept())
	require.NoError(t, err)
	require.True(t, removed)
	assert.Equal(t, 0, c.Len())
}
