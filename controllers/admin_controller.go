package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/pkg/resp"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
)

// AdminController backs the platform back office. Routes sit behind the
// admin role check in the auth middleware.
type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

func pageLimit(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

// GET /admin/users
func (ctl *AdminController) Users(c *gin.Context) {
	page, limit := pageLimit(c)
	users, total, err := ctl.Admin.ListUsers(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users, "total": total, "page": page, "limit": limit})
}

// GET /admin/restaurants
func (ctl *AdminController) Restaurants(c *gin.Context) {
	page, limit := pageLimit(c)
	restaurants, total, err := ctl.Admin.ListRestaurants(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": restaurants, "total": total, "page": page, "limit": limit})
}

// GET /admin/settings
func (ctl *AdminController) Settings(c *gin.Context) {
	settings, err := ctl.Admin.AllSettings()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, settings)
}

type updateSettingReq struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

// PUT /admin/settings/:key
func (ctl *AdminController) UpdateSetting(c *gin.Context) {
	var req updateSettingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Admin.UpdateSetting(c.Param("key"), req.Value); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
