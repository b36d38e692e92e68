package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/pkg/resp"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

type TableController struct {
	Tables *services.TableService
	Rest   *services.RestaurantService
}

func NewTableController(tables *services.TableService, rest *services.RestaurantService) *TableController {
	return &TableController{Tables: tables, Rest: rest}
}

func (ctl *TableController) requireManage(c *gin.Context) (uint, bool) {
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

// GET /restaurants/:id/tables
func (ctl *TableController) List(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	out, err := ctl.Tables.List(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type createTableReq struct {
	Label string `json:"label" binding:"required"`
}

// POST /restaurants/:id/tables
func (ctl *TableController) Create(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req createTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ctl.Tables.Create(id, req.Label)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, t)
}

// PATCH /restaurants/:id/tables/:tableId
func (ctl *TableController) Update(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req struct {
		Label    *string `json:"label"`
		IsActive *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if err := ctl.Tables.Update(id, paramUint(c, "tableId"), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /restaurants/:id/tables/:tableId
func (ctl *TableController) Delete(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	if err := ctl.Tables.Delete(id, paramUint(c, "tableId")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /restaurants/:id/tables/:tableId/rotate
func (ctl *TableController) Rotate(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	t, err := ctl.Tables.RotateToken(id, paramUint(c, "tableId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, t)
}

// GET /restaurants/:id/tables/:tableId/qr.png?size=512
func (ctl *TableController) QRCode(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "512"))
	png, err := ctl.Tables.QRCodePNG(id, paramUint(c, "tableId"), size)
	if err != nil {
		resp.NotFound(c, "table not found")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
