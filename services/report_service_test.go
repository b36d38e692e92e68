package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

// seedOrder drops a finished order straight into the window; the report
// never cares how it got there.
func seedOrder(t *testing.T, f *fixture, number string, at time.Time, statusID uint, payID *uint, lines map[string]struct {
	qty   int
	total int64
}) {
	t.Helper()
	var total int64
	for _, l := range lines {
		total += l.total
	}
	o := entity.Order{
		Number:          number,
		Subtotal:        total,
		Total:           total,
		SessionID:       "report-seed",
		RestaurantID:    f.rest.ID,
		OrderStatusID:   statusID,
		PaymentMethodID: payID,
	}
	o.CreatedAt = at
	require.NoError(t, f.db.Create(&o).Error)

	for name, l := range lines {
		require.NoError(t, f.db.Create(&entity.OrderItem{
			OrderID:    o.ID,
			MenuItemID: f.item.ID,
			Name:       name,
			Qty:        l.qty,
			UnitPrice:  l.total / int64(l.qty),
			Total:      l.total,
		}).Error)
	}
}

func TestSalesReportAggregates(t *testing.T) {
	f := newFixture(t)
	reports := NewReportService(repository.NewReportRepository(f.db))
	st := f.orders.Status

	card := entity.PaymentMethod{RestaurantID: f.rest.ID, Name: "Card", IsActive: true}
	require.NoError(t, f.db.Create(&card).Error)

	day1 := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	type line = struct {
		qty   int
		total int64
	}

	seedOrder(t, f, "R1-20260810-0001", day1, st.Delivered, &f.pay.ID, map[string]line{
		"Classic Burger": {qty: 2, total: 1600},
	})
	seedOrder(t, f, "R1-20260810-0002", day1.Add(2*time.Hour), st.Delivered, &card.ID, map[string]line{
		"Classic Burger": {qty: 1, total: 800},
		"Fries":          {qty: 1, total: 400},
	})
	seedOrder(t, f, "R1-20260811-0001", day2, st.Delivered, &card.ID, map[string]line{
		"Fries": {qty: 3, total: 1200},
	})
	// a cancelled and an in-flight order never count toward revenue
	seedOrder(t, f, "R1-20260811-0002", day2, st.Cancelled, nil, map[string]line{
		"Classic Burger": {qty: 1, total: 800},
	})
	seedOrder(t, f, "R1-20260811-0003", day2, st.Preparing, nil, map[string]line{
		"Fries": {qty: 1, total: 400},
	})

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	r, err := reports.Sales(f.rest.ID, from, to, st)
	require.NoError(t, err)

	assert.Equal(t, int64(4000), r.Revenue)
	assert.Equal(t, 3, r.OrderCount)
	assert.Equal(t, int64(1333), r.AverageOrder)
	assert.Equal(t, 1, r.CancelledCount)
	assert.Equal(t, map[string]int{"delivered": 3, "cancelled": 1, "preparing": 1}, r.StatusCounts)

	require.Len(t, r.Daily, 2)
	assert.Equal(t, DailySales{Day: "2026-08-10", Orders: 2, Revenue: 2800}, r.Daily[0])
	assert.Equal(t, DailySales{Day: "2026-08-11", Orders: 1, Revenue: 1200}, r.Daily[1])

	// by revenue, burgers ahead of fries; cancelled lines left out
	require.Len(t, r.TopItems, 2)
	assert.Equal(t, TopItem{Name: "Classic Burger", Qty: 3, Revenue: 2400}, r.TopItems[0])
	assert.Equal(t, TopItem{Name: "Fries", Qty: 4, Revenue: 1600}, r.TopItems[1])

	require.Len(t, r.Payments, 2)
	assert.Equal(t, PaymentSplit{Method: "Card", Orders: 2, Revenue: 2400}, r.Payments[0])
	assert.Equal(t, PaymentSplit{Method: "Cash", Orders: 1, Revenue: 1600}, r.Payments[1])
}

func TestSalesReportEmptyWindow(t *testing.T) {
	f := newFixture(t)
	reports := NewReportService(repository.NewReportRepository(f.db))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r, err := reports.Sales(f.rest.ID, from, from.AddDate(0, 0, 1), f.orders.Status)
	require.NoError(t, err)

	assert.Zero(t, r.Revenue)
	assert.Zero(t, r.OrderCount)
	assert.Zero(t, r.AverageOrder)
	assert.Empty(t, r.Daily)
	assert.Empty(t, r.TopItems)
	assert.Empty(t, r.Payments)
}
