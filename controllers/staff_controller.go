package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/pkg/resp"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

type StaffController struct {
	Staff *services.StaffService
	Rest  *services.RestaurantService
}

func NewStaffController(staff *services.StaffService, rest *services.RestaurantService) *StaffController {
	return &StaffController{Staff: staff, Rest: rest}
}

func (ctl *StaffController) requireManage(c *gin.Context) (uint, bool) {
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

// GET /restaurants/:id/staff
func (ctl *StaffController) List(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	members, err := ctl.Staff.List(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, members)
}

// POST /restaurants/:id/staff
func (ctl *StaffController) Add(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}

	var req services.AddStaffIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Staff.Add(id, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

type updateRoleReq struct {
	Role string `json:"role" binding:"required"`
}

// PATCH /restaurants/:id/staff/:memberId
func (ctl *StaffController) UpdateRole(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}

	var req updateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Staff.UpdateRole(id, paramUint(c, "memberId"), req.Role); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /restaurants/:id/staff/:memberId
func (ctl *StaffController) Remove(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	if err := ctl.Staff.Remove(id, paramUint(c, "memberId")); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"removed": true})
}
