package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/pkg/resp"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

type ReportController struct {
	Reports *services.ReportService
	Orders  *services.OrderService
	Rest    *services.RestaurantService
}

func NewReportController(reports *services.ReportService, orders *services.OrderService, rest *services.RestaurantService) *ReportController {
	return &ReportController{Reports: reports, Orders: orders, Rest: rest}
}

// parseRange reads ?from=YYYY-MM-DD&to=YYYY-MM-DD, defaulting to the
// last 30 days. The "to" day is inclusive.
func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, err
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, err
		}
		to = t.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func (ctl *ReportController) requireManage(c *gin.Context) (uint, bool) {
	id := restID(c)
	ok, err := ctl.Rest.CanManage(id, utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return 0, false
	}
	if !ok {
		resp.Forbidden(c, "no access to this restaurant")
		return 0, false
	}
	return id, true
}

// GET /restaurants/:id/reports/sales
func (ctl *ReportController) Sales(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		resp.BadRequest(c, "dates must be YYYY-MM-DD")
		return
	}

	report, err := ctl.Reports.Sales(id, from, to, ctl.Orders.Status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /restaurants/:id/reports/sales.pdf
func (ctl *ReportController) SalesPDF(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		resp.BadRequest(c, "dates must be YYYY-MM-DD")
		return
	}

	rest, err := ctl.Rest.Get(id)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	report, err := ctl.Reports.Sales(id, from, to, ctl.Orders.Status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	pdf, err := services.SalesReportPDF(rest.Name, rest.Currency, report)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sales-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
