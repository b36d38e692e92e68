package services

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

func newTableService(f *fixture) *TableService {
	return NewTableService(f.db,
		repository.NewTableRepository(f.db),
		repository.NewRestaurantRepository(f.db),
		"https://menu.example.com")
}

func TestCreateTableIssuesToken(t *testing.T) {
	f := newFixture(t)
	tables := newTableService(f)

	a, err := tables.Create(f.rest.ID, "T2")
	require.NoError(t, err)
	b, err := tables.Create(f.rest.ID, "T3")
	require.NoError(t, err)

	assert.NotEmpty(t, a.QRToken)
	assert.NotEqual(t, a.QRToken, b.QRToken)
	assert.True(t, a.IsActive)
}

func TestRotateTokenInvalidatesOldQR(t *testing.T) {
	f := newFixture(t)
	tables := newTableService(f)

	created, err := tables.Create(f.rest.ID, "T2")
	require.NoError(t, err)
	old := created.QRToken

	rotated, err := tables.RotateToken(f.rest.ID, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, old, rotated.QRToken)

	// checkout resolves tokens through the same repo; the old one is gone
	repo := repository.NewTableRepository(f.db)
	_, err = repo.FindByToken(old)
	assert.Error(t, err)
	found, err := repo.FindByToken(rotated.QRToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestDeepLinkCarriesSlugAndToken(t *testing.T) {
	f := newFixture(t)
	tables := newTableService(f)

	link, err := tables.DeepLink(f.rest.ID, f.table.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("https://menu.example.com/m/cafe-luna?t=%s", f.table.QRToken), link)
}

func TestQRCodeIsPNG(t *testing.T) {
	f := newFixture(t)
	tables := newTableService(f)

	png, err := tables.QRCodePNG(f.rest.ID, f.table.ID, 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestInactiveTablesDoNotResolve(t *testing.T) {
	f := newFixture(t)
	tables := newTableService(f)

	require.NoError(t, tables.Update(f.rest.ID, f.table.ID, map[string]any{"is_active": false}))

	repo := repository.NewTableRepository(f.db)
	_, err := repo.FindByToken(f.table.QRToken)
	assert.Error(t, err)
}
