package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/cart"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

func TestAddPricesFromCatalog(t *testing.T) {
	f := newFixture(t)

	view, err := f.carts.Add("s", f.rest.ID, &AddToCartIn{
		MenuItemID:    f.item.ID,
		Qty:           2,
		SizeValueID:   &f.large.ID,
		ExtraValueIDs: []uint{f.chz.ID},
	})
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	l := view.Lines[0]
	assert.Equal(t, int64(800), l.UnitPrice)
	require.NotNil(t, l.Size)
	assert.Equal(t, "Size", l.Size.OptionName)
	assert.Equal(t, int64(200), l.Size.PriceDelta)
	require.Len(t, l.Extras, 1)
	assert.Equal(t, "Cheese", l.Extras[0].Name)
	assert.Equal(t, int64(2300), view.Total)
}

func TestAddRejectsForeignItem(t *testing.T) {
	f := newFixture(t)

	other := entity.Restaurant{Name: "Other", Slug: "other", OwnerID: f.owner.ID}
	require.NoError(t, f.db.Create(&other).Error)

	_, err := f.carts.Add("s", other.ID, &AddToCartIn{MenuItemID: f.item.ID})
	assert.Error(t, err)
}

func TestAddRejectsValueFromAnotherItem(t *testing.T) {
	f := newFixture(t)

	// an option never attached to the burger
	loose := entity.Option{RestaurantID: f.rest.ID, Name: "Sauce", OptionType: entity.OptionTypeExtra}
	require.NoError(t, f.db.Create(&loose).Error)
	val := entity.OptionValue{OptionID: loose.ID, Name: "BBQ", PriceDelta: 50, IsAvailable: true}
	require.NoError(t, f.db.Create(&val).Error)

	_, err := f.carts.Add("s", f.rest.ID, &AddToCartIn{
		MenuItemID:    f.item.ID,
		ExtraValueIDs: []uint{val.ID},
	})
	assert.Error(t, err)
}

func TestAddRejectsExtraPassedAsSize(t *testing.T) {
	f := newFixture(t)

	_, err := f.carts.Add("s", f.rest.ID, &AddToCartIn{
		MenuItemID:  f.item.ID,
		SizeValueID: &f.chz.ID,
	})
	assert.Error(t, err)
}

func TestAddEnforcesRequiredOption(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.db.Model(&entity.Option{}).Where("id = ?", f.large.OptionID).
		Update("is_required", true).Error)

	_, err := f.carts.Add("s", f.rest.ID, &AddToCartIn{MenuItemID: f.item.ID})
	assert.ErrorContains(t, err, "requires a selection")

	view, err := f.carts.Add("s", f.rest.ID, &AddToCartIn{
		MenuItemID:  f.item.ID,
		SizeValueID: &f.large.ID,
	})
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

func TestAddEnforcesMaxSelect(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.db.Model(&entity.Option{}).Where("id = ?", f.chz.OptionID).
		Update("max_select", 1).Error)
	bacon := entity.OptionValue{OptionID: f.chz.OptionID, Name: "Bacon", PriceDelta: 180, IsAvailable: true}
	require.NoError(t, f.db.Create(&bacon).Error)

	_, err := f.carts.Add("s", f.rest.ID, &AddToCartIn{
		MenuItemID:    f.item.ID,
		ExtraValueIDs: []uint{f.chz.ID, bacon.ID},
	})
	assert.ErrorContains(t, err, "at most 1")

	view, err := f.carts.Add("s", f.rest.ID, &AddToCartIn{
		MenuItemID:    f.item.ID,
		ExtraValueIDs: []uint{bacon.ID},
	})
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

func TestSessionStaysWithFirstRestaurant(t *testing.T) {
	f := newFixture(t)

	other := entity.Restaurant{Name: "Other", Slug: "other", OwnerID: f.owner.ID}
	require.NoError(t, f.db.Create(&other).Error)
	cat := entity.Category{RestaurantID: other.ID, Name: "Drinks"}
	require.NoError(t, f.db.Create(&cat).Error)
	soda := entity.MenuItem{Name: "Soda", Price: 300, IsAvailable: true, CategoryID: cat.ID, RestaurantID: other.ID}
	require.NoError(t, f.db.Create(&soda).Error)

	f.addLine(t, "s", 1)

	_, err := f.carts.Add("s", other.ID, &AddToCartIn{MenuItemID: soda.ID})
	assert.ErrorIs(t, err, cart.ErrOtherRestaurant)

	// once emptied the session may move on
	view, err := f.carts.Get("s", f.rest.ID)
	require.NoError(t, err)
	_, err = f.carts.Remove("s", f.rest.ID, view.Lines[0].ID)
	require.NoError(t, err)

	moved, err := f.carts.Add("s", other.ID, &AddToCartIn{MenuItemID: soda.ID})
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.RestaurantID)
	assert.Equal(t, int64(300), moved.Total)
}
