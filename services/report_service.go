package services

import (
	"sort"
	"time"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

// ReportService aggregates sales in Go over plainly scanned rows; the
// queries stay portable between postgres and the sqlite dev database.
type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

type DailySales struct {
	Day     string `json:"day"` // YYYY-MM-DD
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

type TopItem struct {
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	Revenue int64  `json:"revenue"`
}

type PaymentSplit struct {
	Method  string `json:"method"`
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

type SalesReport struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	// delivered orders only
	Revenue      int64 `json:"revenue"`
	OrderCount   int   `json:"orderCount"`
	AverageOrder int64 `json:"averageOrder"`

	Daily          []DailySales   `json:"daily"`
	TopItems       []TopItem      `json:"topItems"`
	Payments       []PaymentSplit `json:"payments"`
	StatusCounts   map[string]int `json:"statusCounts"`
	CancelledCount int            `json:"cancelledCount"`
}

// Sales builds the report for [from, to). Revenue counts delivered
// orders; the status breakdown covers everything in the window.
func (s *ReportService) Sales(restaurantID uint, from, to time.Time, status StatusIDs) (*SalesReport, error) {
	orders, err := s.Repo.OrdersInRange(restaurantID, from, to)
	if err != nil {
		return nil, err
	}

	statusName := map[uint]string{
		status.New:       "new",
		status.Preparing: "preparing",
		status.Ready:     "ready",
		status.Delivered: "delivered",
		status.Cancelled: "cancelled",
	}

	report := &SalesReport{
		From:         from,
		To:           to,
		StatusCounts: make(map[string]int),
	}

	dailyIdx := make(map[string]*DailySales)
	payIdx := make(map[uint]*PaymentSplit)
	var deliveredIDs []uint

	for _, o := range orders {
		name := statusName[o.OrderStatusID]
		report.StatusCounts[name]++
		if name == "cancelled" {
			report.CancelledCount++
			continue
		}
		if name != "delivered" {
			continue
		}

		report.Revenue += o.Total
		report.OrderCount++
		deliveredIDs = append(deliveredIDs, o.ID)

		day := o.CreatedAt.Format("2006-01-02")
		d, ok := dailyIdx[day]
		if !ok {
			d = &DailySales{Day: day}
			dailyIdx[day] = d
		}
		d.Orders++
		d.Revenue += o.Total

		if o.PaymentMethodID != nil {
			p, ok := payIdx[*o.PaymentMethodID]
			if !ok {
				p = &PaymentSplit{}
				payIdx[*o.PaymentMethodID] = p
			}
			p.Orders++
			p.Revenue += o.Total
		}
	}

	if report.OrderCount > 0 {
		report.AverageOrder = report.Revenue / int64(report.OrderCount)
	}

	for _, d := range dailyIdx {
		report.Daily = append(report.Daily, *d)
	}
	sort.Slice(report.Daily, func(i, j int) bool { return report.Daily[i].Day < report.Daily[j].Day })

	items, err := s.Repo.ItemsForOrders(deliveredIDs)
	if err != nil {
		return nil, err
	}
	itemIdx := make(map[string]*TopItem)
	for _, it := range items {
		t, ok := itemIdx[it.Name]
		if !ok {
			t = &TopItem{Name: it.Name}
			itemIdx[it.Name] = t
		}
		t.Qty += it.Qty
		t.Revenue += it.Total
	}
	for _, t := range itemIdx {
		report.TopItems = append(report.TopItems, *t)
	}
	sort.Slice(report.TopItems, func(i, j int) bool {
		if report.TopItems[i].Revenue != report.TopItems[j].Revenue {
			return report.TopItems[i].Revenue > report.TopItems[j].Revenue
		}
		return report.TopItems[i].Name < report.TopItems[j].Name
	})
	if len(report.TopItems) > 10 {
		report.TopItems = report.TopItems[:10]
	}

	if len(payIdx) > 0 {
		names, err := s.Repo.PaymentMethodNames(restaurantID)
		if err != nil {
			return nil, err
		}
		for id, p := range payIdx {
			p.Method = names[id]
			if p.Method == "" {
				p.Method = "unknown"
			}
			report.Payments = append(report.Payments, *p)
		}
		sort.Slice(report.Payments, func(i, j int) bool {
			return report.Payments[i].Revenue > report.Payments[j].Revenue
		})
	}

	return report, nil
}
