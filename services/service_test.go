package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/cart"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/events"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// named shared-cache DB so every pooled connection sees the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.SetupJoinTable(&entity.MenuItem{}, "Options", &entity.MenuItemOption{}))
	require.NoError(t, db.SetupJoinTable(&entity.Option{}, "MenuItems", &entity.MenuItemOption{}))
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.PasswordReset{},
		&entity.Restaurant{}, &entity.StaffMember{},
		&entity.Category{}, &entity.MenuItem{}, &entity.MenuItemOption{},
		&entity.Option{}, &entity.OptionValue{},
		&entity.Table{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
		&entity.OrderCounter{},
		&entity.PaymentMethod{},
		&entity.PlatformSetting{},
	))

	for _, name := range []string{
		entity.StatusNew, entity.StatusPreparing, entity.StatusReady,
		entity.StatusDelivered, entity.StatusCancelled,
	} {
		require.NoError(t, db.Create(&entity.OrderStatus{StatusName: name}).Error)
	}
	return db
}

// fixture is a restaurant with one composed menu item, a table and a
// payment method, plus the services under test.
type fixture struct {
	db *gorm.DB

	owner entity.User
	rest  entity.Restaurant
	item  entity.MenuItem
	large entity.OptionValue // size +200
	chz   entity.OptionValue // extra +150
	table entity.Table
	pay   entity.PaymentMethod

	restSvc *RestaurantService
	carts   *CartService
	orders  *OrderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{db: db}

	f.owner = entity.User{Email: "owner@menustream.test", Password: "x", Role: "owner"}
	require.NoError(t, db.Create(&f.owner).Error)

	f.rest = entity.Restaurant{Name: "Cafe Luna", Slug: "cafe-luna", Currency: "USD", IsOpen: true, OwnerID: f.owner.ID}
	require.NoError(t, db.Create(&f.rest).Error)

	cat := entity.Category{RestaurantID: f.rest.ID, Name: "Burgers"}
	require.NoError(t, db.Create(&cat).Error)

	f.item = entity.MenuItem{Name: "Classic Burger", Price: 800, IsAvailable: true, CategoryID: cat.ID, RestaurantID: f.rest.ID}
	require.NoError(t, db.Create(&f.item).Error)

	size := entity.Option{RestaurantID: f.rest.ID, Name: "Size", OptionType: entity.OptionTypeSize, MaxSelect: 1}
	require.NoError(t, db.Create(&size).Error)
	f.large = entity.OptionValue{OptionID: size.ID, Name: "Large", PriceDelta: 200, IsAvailable: true}
	require.NoError(t, db.Create(&f.large).Error)

	extra := entity.Option{RestaurantID: f.rest.ID, Name: "Toppings", OptionType: entity.OptionTypeExtra}
	require.NoError(t, db.Create(&extra).Error)
	f.chz = entity.OptionValue{OptionID: extra.ID, Name: "Cheese", PriceDelta: 150, IsAvailable: true}
	require.NoError(t, db.Create(&f.chz).Error)

	require.NoError(t, db.Create(&entity.MenuItemOption{MenuItemID: f.item.ID, OptionID: size.ID}).Error)
	require.NoError(t, db.Create(&entity.MenuItemOption{MenuItemID: f.item.ID, OptionID: extra.ID}).Error)

	f.table = entity.Table{RestaurantID: f.rest.ID, Label: "T1", QRToken: "tok-t1", IsActive: true}
	require.NoError(t, db.Create(&f.table).Error)

	f.pay = entity.PaymentMethod{RestaurantID: f.rest.ID, Name: "Cash", IsActive: true}
	require.NoError(t, db.Create(&f.pay).Error)

	f.restSvc = NewRestaurantService(db, repository.NewRestaurantRepository(db))
	menuRepo := repository.NewMenuRepository(db)
	f.carts = NewCartService(cart.NewStore(time.Hour), menuRepo)
	f.orders = NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		f.restSvc,
		f.carts,
		events.NoopBroker{},
	)
	return f
}

// addLine puts one composed burger in the session cart.
func (f *fixture) addLine(t *testing.T, session string, qty int) {
	t.Helper()
	_, err := f.carts.Add(session, f.rest.ID, &AddToCartIn{
		MenuItemID:    f.item.ID,
		Qty:           qty,
		SizeValueID:   &f.large.ID,
		ExtraValueIDs: []uint{f.chz.ID},
	})
	require.NoError(t, err)
}

func (f *fixture) checkout(t *testing.T, session string) *CheckoutRes {
	t.Helper()
	out, err := f.orders.Checkout(session, f.rest.ID, &CheckoutReq{
		TableToken:      f.table.QRToken,
		PaymentMethodID: &f.pay.ID,
	})
	require.NoError(t, err)
	return out
}
