package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/pkg/resp"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/storage"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

type RestaurantController struct {
	DB      *gorm.DB
	Rest    *services.RestaurantService
	Storage *storage.Storage
}

func NewRestaurantController(db *gorm.DB, rest *services.RestaurantService, st *storage.Storage) *RestaurantController {
	return &RestaurantController{DB: db, Rest: rest, Storage: st}
}

func restID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

// requireManage aborts unless the caller may manage the restaurant.
func (ctl *RestaurantController) requireManage(c *gin.Context) (uint, bool) {
	id := restID(c)
	ok, err := ctl.Rest.CanManage(id, utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return 0, false
	}
	if !ok {
		resp.Forbidden(c, "forbidden")
		return 0, false
	}
	return id, true
}

// GET /restaurants
func (ctl *RestaurantController) ListMine(c *gin.Context) {
	out, err := ctl.Rest.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Rest.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, rest)
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	rest, err := ctl.Rest.Get(id)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, rest)
}

type updateRestaurantReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
	Currency    *string `json:"currency"`
	IsOpen      *bool   `json:"isOpen"`
}

// PATCH /restaurants/:id
func (ctl *RestaurantController) Update(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}

	var req updateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.IsOpen != nil {
		updates["is_open"] = *req.IsOpen
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	rest, err := ctl.Rest.Update(id, updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /restaurants/:id/logo
func (ctl *RestaurantController) UploadLogo(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	if ctl.Storage == nil {
		resp.ServerError(c, errStorageOff)
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		resp.BadRequest(c, "missing logo file")
		return
	}
	f, err := file.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	url, err := ctl.Storage.Upload(c.Request.Context(), storage.PrefixLogos,
		file.Filename, file.Header.Get("Content-Type"), f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	rest, err := ctl.Rest.Update(id, map[string]any{"logo_url": url})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// ---------------- payment methods ----------------

type paymentMethodReq struct {
	Name     string         `json:"name" binding:"required"`
	Details  map[string]any `json:"details"`
	IsActive *bool          `json:"isActive"`
}

// GET /restaurants/:id/payment-methods
func (ctl *RestaurantController) ListPaymentMethods(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}

	var out []entity.PaymentMethod
	if err := ctl.DB.Where("restaurant_id = ?", id).Order("id").Find(&out).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /restaurants/:id/payment-methods
func (ctl *RestaurantController) CreatePaymentMethod(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}

	var req paymentMethodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pm := entity.PaymentMethod{RestaurantID: id, Name: req.Name, IsActive: true}
	if req.IsActive != nil {
		pm.IsActive = *req.IsActive
	}
	if req.Details != nil {
		b, err := json.Marshal(req.Details)
		if err != nil {
			resp.BadRequest(c, "invalid details")
			return
		}
		pm.Details = datatypes.JSON(b)
	}

	if err := ctl.DB.Create(&pm).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, pm)
}

// PATCH /restaurants/:id/payment-methods/:pmId
func (ctl *RestaurantController) UpdatePaymentMethod(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	pmID, _ := strconv.Atoi(c.Param("pmId"))

	var req struct {
		Name     *string        `json:"name"`
		Details  map[string]any `json:"details"`
		IsActive *bool          `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Details != nil {
		b, err := json.Marshal(req.Details)
		if err != nil {
			resp.BadRequest(c, "invalid details")
			return
		}
		updates["details"] = datatypes.JSON(b)
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	err := ctl.DB.Model(&entity.PaymentMethod{}).
		Where("id = ? AND restaurant_id = ?", pmID, id).
		Updates(updates).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /restaurants/:id/payment-methods/:pmId
func (ctl *RestaurantController) DeletePaymentMethod(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	pmID, _ := strconv.Atoi(c.Param("pmId"))

	err := ctl.DB.Where("id = ? AND restaurant_id = ?", pmID, id).
		Delete(&entity.PaymentMethod{}).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
