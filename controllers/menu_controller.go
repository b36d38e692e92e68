package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/pkg/resp"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/storage"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

type MenuController struct {
	Menu    *services.MenuService
	Rest    *services.RestaurantService
	Storage *storage.Storage
}

func NewMenuController(menu *services.MenuService, rest *services.RestaurantService, st *storage.Storage) *MenuController {
	return &MenuController{Menu: menu, Rest: rest, Storage: st}
}

func (ctl *MenuController) requireManage(c *gin.Context) (uint, bool) {
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

func paramUint(c *gin.Context, name string) uint {
	n, _ := strconv.Atoi(c.Param(name))
	return uint(n)
}

// ---------------- categories ----------------

// GET /restaurants/:id/categories
func (ctl *MenuController) ListCategories(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	out, err := ctl.Menu.ListCategories(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /restaurants/:id/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Menu.CreateCategory(id, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /restaurants/:id/categories/:catId
func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req struct {
		Name      *string `json:"name"`
		SortOrder *int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if err := ctl.Menu.UpdateCategory(id, paramUint(c, "catId"), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /restaurants/:id/categories/:catId
func (ctl *MenuController) DeleteCategory(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	if err := ctl.Menu.DeleteCategory(id, paramUint(c, "catId")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- menu items ----------------

// GET /restaurants/:id/items
func (ctl *MenuController) ListItems(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	out, err := ctl.Menu.ListItems(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /restaurants/:id/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Menu.CreateItem(id, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

// PATCH /restaurants/:id/items/:itemId
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req struct {
		Name        *string `json:"name"`
		Detail      *string `json:"detail"`
		Price       *int64  `json:"price"`
		CategoryID  *uint   `json:"categoryId"`
		IsAvailable *bool   `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Detail != nil {
		updates["detail"] = *req.Detail
	}
	if req.Price != nil {
		if *req.Price < 0 {
			resp.BadRequest(c, "price must not be negative")
			return
		}
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if err := ctl.Menu.UpdateItem(id, paramUint(c, "itemId"), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /restaurants/:id/items/:itemId
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	if err := ctl.Menu.DeleteItem(id, paramUint(c, "itemId")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /restaurants/:id/items/:itemId/photo
func (ctl *MenuController) UploadPhoto(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	if ctl.Storage == nil {
		resp.ServerError(c, errStorageOff)
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		resp.BadRequest(c, "missing photo file")
		return
	}
	f, err := file.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	url, err := ctl.Storage.Upload(c.Request.Context(), storage.PrefixPhotos,
		file.Filename, file.Header.Get("Content-Type"), f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if err := ctl.Menu.UpdateItem(id, paramUint(c, "itemId"), map[string]any{"photo_url": url}); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"photoUrl": url})
}

// ---------------- options ----------------

// GET /restaurants/:id/options
func (ctl *MenuController) ListOptions(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	out, err := ctl.Menu.ListOptions(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /restaurants/:id/options
func (ctl *MenuController) CreateOption(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req services.OptionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := ctl.Menu.CreateOption(id, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, o)
}

// DELETE /restaurants/:id/options/:optionId
func (ctl *MenuController) DeleteOption(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	if err := ctl.Menu.DeleteOption(id, paramUint(c, "optionId")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /restaurants/:id/options/:optionId/values
func (ctl *MenuController) CreateOptionValue(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req services.OptionValueIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := ctl.Menu.CreateOptionValue(id, paramUint(c, "optionId"), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, v)
}

// PATCH /restaurants/:id/options/values/:valueId
func (ctl *MenuController) UpdateOptionValue(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req struct {
		Name        *string `json:"name"`
		PriceDelta  *int64  `json:"priceDelta"`
		IsAvailable *bool   `json:"isAvailable"`
		SortOrder   *int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PriceDelta != nil {
		updates["price_delta"] = *req.PriceDelta
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if err := ctl.Menu.UpdateOptionValue(id, paramUint(c, "valueId"), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /restaurants/:id/options/values/:valueId
func (ctl *MenuController) DeleteOptionValue(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	if err := ctl.Menu.DeleteOptionValue(id, paramUint(c, "valueId")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type attachOptionReq struct {
	OptionID  uint `json:"optionId" binding:"required"`
	SortOrder int  `json:"sortOrder"`
}

// POST /restaurants/:id/items/:itemId/options
func (ctl *MenuController) AttachOption(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	var req attachOptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Menu.AttachOption(id, paramUint(c, "itemId"), req.OptionID, req.SortOrder); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"attached": true})
}

// DELETE /restaurants/:id/items/:itemId/options/:optionId
func (ctl *MenuController) DetachOption(c *gin.Context) {
	id, ok := ctl.requireManage(c)
	if !ok {
		return
	}
	if err := ctl.Menu.DetachOption(id, paramUint(c, "itemId"), paramUint(c, "optionId")); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"detached": true})
}
