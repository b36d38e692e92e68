package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

func newMenuService(f *fixture) *MenuService {
	return NewMenuService(f.db, repository.NewMenuRepository(f.db))
}

func TestPublicMenuHidesUnavailable(t *testing.T) {
	f := newFixture(t)
	menu := newMenuService(f)

	// a second item that is off the menu today
	off := entity.MenuItem{Name: "Special", Price: 1500, IsAvailable: false,
		CategoryID: f.item.CategoryID, RestaurantID: f.rest.ID}
	require.NoError(t, f.db.Create(&off).Error)

	// an empty category never shows
	empty := entity.Category{RestaurantID: f.rest.ID, Name: "Desserts"}
	require.NoError(t, f.db.Create(&empty).Error)

	tree, err := menu.PublicMenu(f.rest.ID)
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Equal(t, "Burgers", tree[0].Name)
	require.Len(t, tree[0].Items, 1)

	item := tree[0].Items[0]
	assert.Equal(t, "Classic Burger", item.Name)
	assert.Equal(t, int64(800), item.Price)
	require.Len(t, item.Options, 2)
	assert.Equal(t, entity.OptionTypeSize, item.Options[0].OptionType)
	require.Len(t, item.Options[0].Values, 1)
	assert.Equal(t, "Large", item.Options[0].Values[0].Name)
}

func TestSizeOptionForcedToSingleChoice(t *testing.T) {
	f := newFixture(t)
	menu := newMenuService(f)

	o, err := menu.CreateOption(f.rest.ID, &OptionIn{Name: "Cup", OptionType: entity.OptionTypeSize, MaxSelect: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, o.MaxSelect)
}

func TestCategoryScopedToRestaurant(t *testing.T) {
	f := newFixture(t)
	menu := newMenuService(f)

	other := entity.Restaurant{Name: "Other", Slug: "other", OwnerID: f.owner.ID}
	require.NoError(t, f.db.Create(&other).Error)

	// updating across restaurants touches nothing
	require.NoError(t, menu.UpdateCategory(other.ID, f.item.CategoryID, map[string]any{"name": "Hijacked"}))

	var cat entity.Category
	require.NoError(t, f.db.First(&cat, f.item.CategoryID).Error)
	assert.Equal(t, "Burgers", cat.Name)
}

func TestAttachOptionRejectsForeignOption(t *testing.T) {
	f := newFixture(t)
	menu := newMenuService(f)

	other := entity.Restaurant{Name: "Other", Slug: "other", OwnerID: f.owner.ID}
	require.NoError(t, f.db.Create(&other).Error)
	foreign := entity.Option{RestaurantID: other.ID, Name: "Theirs", OptionType: entity.OptionTypeExtra}
	require.NoError(t, f.db.Create(&foreign).Error)

	assert.Error(t, menu.AttachOption(f.rest.ID, f.item.ID, foreign.ID, 0))
}
