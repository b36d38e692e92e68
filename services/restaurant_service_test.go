package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

func TestCreateRestaurantPicksNextFreeSlug(t *testing.T) {
	f := newFixture(t)

	// "cafe-luna" is taken by the fixture
	a, err := f.restSvc.Create(f.owner.ID, &CreateRestaurantIn{Name: "Cafe Luna"})
	require.NoError(t, err)
	assert.Equal(t, "cafe-luna-2", a.Slug)

	b, err := f.restSvc.Create(f.owner.ID, &CreateRestaurantIn{Name: "  Cafe Luna!! "})
	require.NoError(t, err)
	assert.Equal(t, "cafe-luna-3", b.Slug)

	assert.Equal(t, "USD", a.Currency)
	assert.True(t, a.IsOpen)
}

func TestCreateRestaurantRejectsUnsluggableName(t *testing.T) {
	f := newFixture(t)
	_, err := f.restSvc.Create(f.owner.ID, &CreateRestaurantIn{Name: "!!!"})
	assert.Error(t, err)
}

func TestAccessRoles(t *testing.T) {
	f := newFixture(t)

	manager := entity.User{Email: "manager@menustream.test", Password: "x", Role: "staff"}
	cook := entity.User{Email: "cook2@menustream.test", Password: "x", Role: "staff"}
	stranger := entity.User{Email: "nobody@menustream.test", Password: "x", Role: "owner"}
	for _, u := range []*entity.User{&manager, &cook, &stranger} {
		require.NoError(t, f.db.Create(u).Error)
	}
	require.NoError(t, f.db.Create(&entity.StaffMember{RestaurantID: f.rest.ID, UserID: manager.ID, Role: "manager"}).Error)
	require.NoError(t, f.db.Create(&entity.StaffMember{RestaurantID: f.rest.ID, UserID: cook.ID, Role: "kitchen"}).Error)

	cases := []struct {
		name    string
		userID  uint
		manage  bool
		kitchen bool
	}{
		{"owner", f.owner.ID, true, true},
		{"manager", manager.ID, true, true},
		{"kitchen staff", cook.ID, false, true},
		{"stranger", stranger.ID, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			manage, err := f.restSvc.CanManage(f.rest.ID, tc.userID)
			require.NoError(t, err)
			assert.Equal(t, tc.manage, manage)

			kitchen, err := f.restSvc.CanWorkKitchen(f.rest.ID, tc.userID)
			require.NoError(t, err)
			assert.Equal(t, tc.kitchen, kitchen)
		})
	}
}

func TestStaffLifecycle(t *testing.T) {
	f := newFixture(t)
	staff := NewStaffService(f.db,
		repository.NewStaffRepository(f.db),
		repository.NewUserRepository(f.db),
		repository.NewSettingsRepository(f.db),
	)

	out, err := staff.Add(f.rest.ID, &AddStaffIn{Email: "new.cook@menustream.test", Role: "kitchen"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.TempPassword, "fresh account gets a one-time password")
	assert.Equal(t, "kitchen", out.Member.Role)

	// same email again is a conflict
	_, err = staff.Add(f.rest.ID, &AddStaffIn{Email: "New.Cook@menustream.test", Role: "waiter"})
	assert.Error(t, err)

	// an existing account joins without a temp password
	existing := entity.User{Email: "veteran@menustream.test", Password: "x", Role: "staff"}
	require.NoError(t, f.db.Create(&existing).Error)
	out2, err := staff.Add(f.rest.ID, &AddStaffIn{Email: existing.Email, Role: "waiter"})
	require.NoError(t, err)
	assert.Empty(t, out2.TempPassword)

	require.NoError(t, staff.UpdateRole(f.rest.ID, out2.Member.ID, "manager"))
	assert.Error(t, staff.UpdateRole(f.rest.ID, out2.Member.ID, "chef"))

	require.NoError(t, staff.Remove(f.rest.ID, out.Member.ID))
	members, err := staff.List(f.rest.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, existing.ID, members[0].UserID)
}
