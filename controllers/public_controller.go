package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/cart"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/pkg/resp"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

// PublicController is the guest surface behind the QR code: menu, cart,
// checkout and order status. No account, only an X-Session-Id the
// client generates once per visit.
type PublicController struct {
	DB     *gorm.DB
	Rest   *services.RestaurantService
	Menus  *services.MenuService
	Carts  *services.CartService
	Orders *services.OrderService
}

func NewPublicController(db *gorm.DB, rest *services.RestaurantService, menu *services.MenuService, carts *services.CartService, orders *services.OrderService) *PublicController {
	return &PublicController{DB: db, Rest: rest, Menus: menu, Carts: carts, Orders: orders}
}

// resolveRestaurant turns the slug into a restaurant or answers 404.
func (ctl *PublicController) resolveRestaurant(c *gin.Context) (*entity.Restaurant, bool) {
	rest, err := ctl.Rest.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return nil, false
	}
	return rest, true
}

func requireSession(c *gin.Context) (string, bool) {
	s := utils.SessionID(c)
	if s == "" {
		resp.BadRequest(c, "missing X-Session-Id")
		return "", false
	}
	return s, true
}

// GET /m/:slug
func (ctl *PublicController) Menu(c *gin.Context) {
	rest, ok := ctl.resolveRestaurant(c)
	if !ok {
		return
	}

	tree, err := ctl.Menus.PublicMenu(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var methods []entity.PaymentMethod
	if err := ctl.DB.Where("restaurant_id = ? AND is_active = ?", rest.ID, true).
		Order("id").Find(&methods).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"restaurant": gin.H{
			"id":       rest.ID,
			"name":     rest.Name,
			"slug":     rest.Slug,
			"logoUrl":  rest.LogoURL,
			"currency": rest.Currency,
			"isOpen":   rest.IsOpen,
		},
		"categories":     tree,
		"paymentMethods": methods,
	})
}

// GET /m/:slug/cart
func (ctl *PublicController) Cart(c *gin.Context) {
	rest, ok := ctl.resolveRestaurant(c)
	if !ok {
		return
	}
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	view, err := ctl.Carts.Get(sessionID, rest.ID)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, view)
}

// POST /m/:slug/cart
func (ctl *PublicController) AddToCart(c *gin.Context) {
	rest, ok := ctl.resolveRestaurant(c)
	if !ok {
		return
	}
	if !rest.IsOpen {
		resp.Conflict(c, "restaurant is closed")
		return
	}
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := ctl.Carts.Add(sessionID, rest.ID, &req)
	if err != nil {
		if errors.Is(err, cart.ErrOtherRestaurant) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, view)
}

type setQtyReq struct {
	Qty int `json:"qty"`
}

// PATCH /m/:slug/cart/items/:lineId
func (ctl *PublicController) SetQty(c *gin.Context) {
	rest, ok := ctl.resolveRestaurant(c)
	if !ok {
		return
	}
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req setQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := ctl.Carts.SetQty(sessionID, rest.ID, c.Param("lineId"), req.Qty)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, view)
}

// DELETE /m/:slug/cart/items/:lineId
func (ctl *PublicController) RemoveLine(c *gin.Context) {
	rest, ok := ctl.resolveRestaurant(c)
	if !ok {
		return
	}
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	view, err := ctl.Carts.Remove(sessionID, rest.ID, c.Param("lineId"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, view)
}

// POST /m/:slug/checkout
func (ctl *PublicController) Checkout(c *gin.Context) {
	rest, ok := ctl.resolveRestaurant(c)
	if !ok {
		return
	}
	if !rest.IsOpen {
		resp.Conflict(c, "restaurant is closed")
		return
	}
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Orders.Checkout(sessionID, rest.ID, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

// GET /m/:slug/orders returns this session's orders with live status.
func (ctl *PublicController) MyOrders(c *gin.Context) {
	rest, ok := ctl.resolveRestaurant(c)
	if !ok {
		return
	}
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	out, err := ctl.Orders.ListForSession(rest.ID, sessionID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /m/:slug/orders/:orderId
func (ctl *PublicController) OrderDetail(c *gin.Context) {
	if _, ok := ctl.resolveRestaurant(c); !ok {
		return
	}
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	orderID := paramUint(c, "orderId")
	owned, err := ctl.Orders.BelongsToSession(orderID, sessionID)
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	if !owned {
		resp.Forbidden(c, "no access")
		return
	}

	o, err := ctl.Orders.Detail(orderID)
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, o)
}
