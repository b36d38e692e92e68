package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotalWithModifiers(t *testing.T) {
	l := Line{
		UnitPrice: 800,
		Qty:       2,
		Size:      &Modifier{Name: "Large", PriceDelta: 200},
		Extras:    []Modifier{{Name: "Cheese", PriceDelta: 150}},
	}
	// (8.00 + 2.00 + 1.50) × 2
	assert.Equal(t, int64(2300), l.Total())
}

func TestAddDefaultsQtyToOne(t *testing.T) {
	c := New(1)
	l := c.Add(AddInput{MenuItemID: 10, Name: "Espresso", UnitPrice: 300})
	assert.Equal(t, 1, l.Qty)
	assert.Equal(t, 1, c.ItemCount())
	assert.NotEmpty(t, l.ID)
}

func TestIdenticalAddsStayDistinct(t *testing.T) {
	c := New(1)
	in := AddInput{MenuItemID: 10, Name: "Espresso", UnitPrice: 300, Qty: 1}
	a := c.Add(in)
	b := c.Add(in)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.ItemCount())
	assert.Equal(t, int64(600), c.Total())
}

func TestSetQtyZeroRemovesLine(t *testing.T) {
	c := New(1)
	a := c.Add(AddInput{MenuItemID: 10, Name: "A", UnitPrice: 1000, Qty: 1})
	b := c.Add(AddInput{MenuItemID: 11, Name: "B", UnitPrice: 500, Qty: 2})

	c.SetQty(a.ID, 0)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.ItemCount())
	assert.Equal(t, int64(1000), c.Total())

	c.SetQty(b.ID, -3)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.Total())
}

func TestRemoveUnknownLineIsNoop(t *testing.T) {
	c := New(1)
	c.Add(AddInput{MenuItemID: 10, Name: "A", UnitPrice: 1000})
	before := c.Total()

	c.Remove("no-such-line")
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, before, c.Total())
}

func TestCountAlwaysMatchesQuantities(t *testing.T) {
	c := New(1)
	a := c.Add(AddInput{MenuItemID: 1, Name: "A", UnitPrice: 100, Qty: 3})
	c.Add(AddInput{MenuItemID: 2, Name: "B", UnitPrice: 200, Qty: 2})
	c.SetQty(a.ID, 5)

	want := 0
	for _, l := range c.Lines() {
		want += l.Qty
	}
	assert.Equal(t, want, c.ItemCount())
	assert.Equal(t, 7, c.ItemCount())
}

// the worked example from the product notes
func TestCheckoutScenario(t *testing.T) {
	c := New(1)
	a := c.Add(AddInput{MenuItemID: 1, Name: "A", UnitPrice: 1000, Qty: 1})
	c.Add(AddInput{
		MenuItemID: 2, Name: "B", UnitPrice: 800, Qty: 2,
		Size:   &Modifier{Name: "Large", PriceDelta: 200},
		Extras: []Modifier{{Name: "Extra shot", PriceDelta: 150}},
	})

	assert.Equal(t, int64(3300), c.Total())
	assert.Equal(t, 3, c.ItemCount())

	c.SetQty(a.ID, 0)
	assert.Equal(t, int64(2300), c.Total())
	assert.Equal(t, 2, c.ItemCount())

	c.Clear()
	assert.Equal(t, int64(0), c.Total())
	assert.Equal(t, 0, c.ItemCount())
	assert.Empty(t, c.Lines())
}

func TestLinesAreDetachedCopies(t *testing.T) {
	c := New(1)
	l := c.Add(AddInput{
		MenuItemID: 1, Name: "A", UnitPrice: 800, Qty: 1,
		Size:   &Modifier{Name: "Large", PriceDelta: 200},
		Extras: []Modifier{{Name: "Cheese", PriceDelta: 150}},
	})

	view := c.Lines()
	c.SetQty(l.ID, 5)

	// the view keeps the state it was taken with
	require.Len(t, view, 1)
	assert.Equal(t, 1, view[0].Qty)
	assert.Equal(t, int64(1150), view[0].Total())

	// and writing through the view never reaches the cart
	view[0].Qty = 99
	view[0].Size.PriceDelta = 0
	view[0].Extras[0].PriceDelta = 0
	assert.Equal(t, int64(5750), c.Total())
	assert.Equal(t, 5, c.ItemCount())
}

func TestStoreLocksSessionToRestaurant(t *testing.T) {
	s := NewStore(time.Hour)

	err := s.With("sess-1", 1, func(c *Cart) error {
		c.Add(AddInput{MenuItemID: 1, Name: "A", UnitPrice: 100})
		return nil
	})
	require.NoError(t, err)

	err = s.With("sess-1", 2, func(c *Cart) error { return nil })
	assert.ErrorIs(t, err, ErrOtherRestaurant)

	// cleared carts may switch restaurants
	require.NoError(t, s.With("sess-1", 1, func(c *Cart) error {
		c.Clear()
		return nil
	}))
	require.NoError(t, s.With("sess-1", 2, func(c *Cart) error { return nil }))
}

func TestStoreSweepDropsIdleSessions(t *testing.T) {
	s := NewStore(time.Nanosecond)
	require.NoError(t, s.With("sess-1", 1, func(c *Cart) error { return nil }))

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, s.Sweep())

	// swept session comes back empty
	require.NoError(t, s.With("sess-1", 1, func(c *Cart) error {
		assert.Equal(t, 0, c.Len())
		return nil
	}))
}
