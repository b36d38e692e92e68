package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/pkg/resp"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

// OrderController serves the staff side: the kitchen board, the partner
// order history and the status transitions.
type OrderController struct {
	Orders *services.OrderService
	Rest   *services.RestaurantService
}

func NewOrderController(orders *services.OrderService, rest *services.RestaurantService) *OrderController {
	return &OrderController{Orders: orders, Rest: rest}
}

func (ctl *OrderController) requireKitchen(c *gin.Context) (uint, bool) {
	rest := restID(c)
	ok, err := ctl.Rest.CanWorkKitchen(rest, utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return 0, false
	}
	if !ok {
		resp.Forbidden(c, "no access to this restaurant")
		return 0, false
	}
	return rest, true
}

// GET /restaurants/:id/orders/board returns open orders only, oldest first.
func (ctl *OrderController) Board(c *gin.Context) {
	rest, ok := ctl.requireKitchen(c)
	if !ok {
		return
	}
	out, err := ctl.Orders.Board(rest)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id/orders returns paginated history, optional ?status=.
func (ctl *OrderController) List(c *gin.Context) {
	rest, ok := ctl.requireKitchen(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var statusID *uint
	if name := c.Query("status"); name != "" {
		if statusID = ctl.Orders.StatusIDFor(name); statusID == nil {
			resp.BadRequest(c, "unknown status")
			return
		}
	}

	out, total, err := ctl.Orders.ListForRestaurant(rest, statusID, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": out, "total": total, "page": page, "limit": limit})
}

// GET /restaurants/:id/orders/:orderId
func (ctl *OrderController) Detail(c *gin.Context) {
	rest, ok := ctl.requireKitchen(c)
	if !ok {
		return
	}

	o, err := ctl.Orders.Detail(paramUint(c, "orderId"))
	if err != nil || o.RestaurantID != rest {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, o)
}

// PATCH /restaurants/:id/orders/:orderId/advance moves the order one step forward.
func (ctl *OrderController) Advance(c *gin.Context) {
	orderID := paramUint(c, "orderId")
	next, err := ctl.Orders.Advance(utils.CurrentUserID(c), orderID)
	if err != nil {
		ctl.transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": orderID, "status": next})
}

// PATCH /restaurants/:id/orders/:orderId/cancel
func (ctl *OrderController) Cancel(c *gin.Context) {
	orderID := paramUint(c, "orderId")
	if err := ctl.Orders.Cancel(utils.CurrentUserID(c), orderID); err != nil {
		ctl.transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": orderID, "status": "cancelled"})
}

func (ctl *OrderController) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "no access to this order")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, "order is not in a state that allows this")
	default:
		resp.ServerError(c, err)
	}
}
