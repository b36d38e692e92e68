package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/events"
)

// recordingNotifier stands in for the websocket hub.
type recordingNotifier struct {
	events []events.OrderEvent
}

func (n *recordingNotifier) Notify(ev events.OrderEvent) {
	n.events = append(n.events, ev)
}

func TestCheckoutSnapshotsCartIntoOrder(t *testing.T) {
	f := newFixture(t)
	session := "sess-checkout"

	// (8.00 + 2.00 + 1.50) × 2 = 23.00
	f.addLine(t, session, 2)
	// plain burger, no modifiers
	_, err := f.carts.Add(session, f.rest.ID, &AddToCartIn{MenuItemID: f.item.ID, Qty: 1})
	require.NoError(t, err)

	out := f.checkout(t, session)
	assert.Equal(t, int64(3100), out.Total)

	day := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("R%d-%s-0001", f.rest.ID, day), out.Number)

	o, err := f.orders.Detail(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNew, o.OrderStatus.StatusName)
	require.NotNil(t, o.TableID)
	assert.Equal(t, f.table.ID, *o.TableID)
	require.Len(t, o.Items, 2)

	composed := o.Items[0]
	assert.Equal(t, "Classic Burger", composed.Name)
	assert.Equal(t, int64(800), composed.UnitPrice)
	assert.Equal(t, int64(2300), composed.Total)
	require.Len(t, composed.Selections, 2)
	assert.Equal(t, "Large", composed.Selections[0].ValueName)
	assert.Equal(t, int64(200), composed.Selections[0].PriceDelta)
	assert.Equal(t, "Cheese", composed.Selections[1].ValueName)

	// the cart was emptied after the commit
	view, err := f.carts.Get(session, f.rest.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, int64(0), view.Total)
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	f := newFixture(t)
	_, err := f.orders.Checkout("sess-empty", f.rest.ID, &CheckoutReq{})
	assert.Error(t, err)
}

func TestCheckoutRejectsForeignTable(t *testing.T) {
	f := newFixture(t)

	other := entity.Restaurant{Name: "Other", Slug: "other", OwnerID: f.owner.ID}
	require.NoError(t, f.db.Create(&other).Error)
	foreign := entity.Table{RestaurantID: other.ID, Label: "X1", QRToken: "tok-x1", IsActive: true}
	require.NoError(t, f.db.Create(&foreign).Error)

	session := "sess-foreign"
	f.addLine(t, session, 1)

	_, err := f.orders.Checkout(session, f.rest.ID, &CheckoutReq{TableToken: foreign.QRToken})
	assert.Error(t, err)
}

func TestCheckoutRejectsUnavailableItem(t *testing.T) {
	f := newFixture(t)
	session := "sess-stale"
	f.addLine(t, session, 1)

	// item pulled from the menu between add and checkout
	require.NoError(t, f.db.Model(&entity.MenuItem{}).Where("id = ?", f.item.ID).
		Update("is_available", false).Error)

	_, err := f.orders.Checkout(session, f.rest.ID, &CheckoutReq{})
	assert.Error(t, err)
}

func TestCheckoutRepricesFromCatalog(t *testing.T) {
	f := newFixture(t)
	session := "sess-reprice"
	f.addLine(t, session, 2)

	// owner edits the menu between add and checkout
	require.NoError(t, f.db.Model(&entity.MenuItem{}).Where("id = ?", f.item.ID).
		Update("price", 900).Error)
	require.NoError(t, f.db.Model(&entity.OptionValue{}).Where("id = ?", f.large.ID).
		Update("price_delta", 250).Error)

	out := f.checkout(t, session)
	// (9.00 + 2.50 + 1.50) × 2, not the add-time 23.00
	assert.Equal(t, int64(2600), out.Total)

	o, err := f.orders.Detail(out.ID)
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, int64(900), o.Items[0].UnitPrice)
	assert.Equal(t, int64(2600), o.Items[0].Total)
	require.Len(t, o.Items[0].Selections, 2)
	assert.Equal(t, int64(250), o.Items[0].Selections[0].PriceDelta)
}

func TestCheckoutRejectsDisabledValue(t *testing.T) {
	f := newFixture(t)
	session := "sess-disabled"
	f.addLine(t, session, 1)

	require.NoError(t, f.db.Model(&entity.OptionValue{}).Where("id = ?", f.chz.ID).
		Update("is_available", false).Error)

	_, err := f.orders.Checkout(session, f.rest.ID, &CheckoutReq{})
	require.Error(t, err)

	// nothing was booked and the cart survives
	var n int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&n).Error)
	assert.Zero(t, n)
	view, err := f.carts.Get(session, f.rest.ID)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

func TestCheckoutRejectsDetachedOption(t *testing.T) {
	f := newFixture(t)
	session := "sess-detached"
	f.addLine(t, session, 1)

	// toppings pulled off the burger after the guest composed the line
	require.NoError(t, f.db.
		Where("menu_item_id = ? AND option_id = ?", f.item.ID, f.chz.OptionID).
		Delete(&entity.MenuItemOption{}).Error)

	_, err := f.orders.Checkout(session, f.rest.ID, &CheckoutReq{})
	assert.Error(t, err)
}

func TestOrderNumbersIncrementWithinDay(t *testing.T) {
	f := newFixture(t)

	f.addLine(t, "s1", 1)
	first := f.checkout(t, "s1")
	f.addLine(t, "s2", 1)
	second := f.checkout(t, "s2")

	day := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("R%d-%s-0001", f.rest.ID, day), first.Number)
	assert.Equal(t, fmt.Sprintf("R%d-%s-0002", f.rest.ID, day), second.Number)
}

func TestAdvanceWalksTheLifecycle(t *testing.T) {
	f := newFixture(t)
	f.addLine(t, "s", 1)
	out := f.checkout(t, "s")

	for _, want := range []string{entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered} {
		next, err := f.orders.Advance(f.owner.ID, out.ID)
		require.NoError(t, err)
		assert.Equal(t, want, next)
	}

	// delivered is terminal
	_, err := f.orders.Advance(f.owner.ID, out.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelOnlyBeforeReady(t *testing.T) {
	f := newFixture(t)

	f.addLine(t, "s1", 1)
	a := f.checkout(t, "s1")
	require.NoError(t, f.orders.Cancel(f.owner.ID, a.ID))

	// cancelled stays cancelled
	_, err := f.orders.Advance(f.owner.ID, a.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	f.addLine(t, "s2", 1)
	b := f.checkout(t, "s2")
	_, err = f.orders.Advance(f.owner.ID, b.ID) // preparing
	require.NoError(t, err)
	_, err = f.orders.Advance(f.owner.ID, b.ID) // ready
	require.NoError(t, err)
	assert.ErrorIs(t, f.orders.Cancel(f.owner.ID, b.ID), ErrInvalidTransition)
}

func TestTransitionsRequireKitchenAccess(t *testing.T) {
	f := newFixture(t)
	f.addLine(t, "s", 1)
	out := f.checkout(t, "s")

	stranger := entity.User{Email: "stranger@menustream.test", Password: "x", Role: "owner"}
	require.NoError(t, f.db.Create(&stranger).Error)

	_, err := f.orders.Advance(stranger.ID, out.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.orders.Cancel(stranger.ID, out.ID), ErrForbidden)

	// kitchen staff may advance
	staffUser := entity.User{Email: "cook@menustream.test", Password: "x", Role: "staff"}
	require.NoError(t, f.db.Create(&staffUser).Error)
	require.NoError(t, f.db.Create(&entity.StaffMember{
		RestaurantID: f.rest.ID, UserID: staffUser.ID, Role: "kitchen",
	}).Error)

	next, err := f.orders.Advance(staffUser.ID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, next)
}

func TestOneEventPerCommittedTransition(t *testing.T) {
	f := newFixture(t)
	n := &recordingNotifier{}
	f.orders.SetNotifier(n)

	f.addLine(t, "s", 1)
	out := f.checkout(t, "s")

	require.Len(t, n.events, 1)
	assert.Equal(t, events.EventOrderCreated, n.events[0].Type)
	assert.Equal(t, out.ID, n.events[0].OrderID)
	assert.Equal(t, out.Number, n.events[0].Number)
	assert.Equal(t, entity.StatusNew, n.events[0].Status)

	for i, want := range []string{entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered} {
		_, err := f.orders.Advance(f.owner.ID, out.ID)
		require.NoError(t, err)
		require.Len(t, n.events, i+2)
		assert.Equal(t, events.EventOrderStatus, n.events[i+1].Type)
		assert.Equal(t, want, n.events[i+1].Status)
	}

	// rejected transitions stay silent
	_, err := f.orders.Advance(f.owner.ID, out.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, n.events, 4)
}

func TestCancelPublishesOneStatusEvent(t *testing.T) {
	f := newFixture(t)
	n := &recordingNotifier{}
	f.orders.SetNotifier(n)

	f.addLine(t, "s", 1)
	out := f.checkout(t, "s")
	require.NoError(t, f.orders.Cancel(f.owner.ID, out.ID))

	require.Len(t, n.events, 2)
	assert.Equal(t, events.EventOrderStatus, n.events[1].Type)
	assert.Equal(t, entity.StatusCancelled, n.events[1].Status)

	// a second cancel is rejected and publishes nothing
	require.ErrorIs(t, f.orders.Cancel(f.owner.ID, out.ID), ErrInvalidTransition)
	assert.Len(t, n.events, 2)
}

func TestBelongsToSession(t *testing.T) {
	f := newFixture(t)
	f.addLine(t, "mine", 1)
	out := f.checkout(t, "mine")

	ok, err := f.orders.BelongsToSession(out.ID, "mine")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.orders.BelongsToSession(out.ID, "theirs")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoardExcludesClosedOrders(t *testing.T) {
	f := newFixture(t)

	f.addLine(t, "s1", 1)
	open := f.checkout(t, "s1")
	f.addLine(t, "s2", 1)
	cancelled := f.checkout(t, "s2")
	require.NoError(t, f.orders.Cancel(f.owner.ID, cancelled.ID))

	board, err := f.orders.Board(f.rest.ID)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, open.ID, board[0].ID)
}
