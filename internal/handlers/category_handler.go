package handlers

import (
	"github.com/gin-gonic/gin"

	"dompet/internal/models"
	"dompet/internal/response"
	"dompet/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// CategoryQuery holds the list filters.
type CategoryQuery struct {
	Name string              `form:"name"`
	Type models.CategoryType `form:"type" binding:"category_type"`
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name   string              `json:"name" binding:"required,max=100" example:"Food"`
	UserID *string             `json:"user_id" binding:"omitempty,uuid"`
	Type   models.CategoryType `json:"type" binding:"category_type" example:"expense"`
	Icon   string              `json:"icon" example:"food.png"`
}

// UpdateCategoryRequest represents the request payload for updating a category.
// Omitted fields are left unchanged.
type UpdateCategoryRequest struct {
	Name    *string              `json:"name" binding:"omitempty,max=100" example:"Groceries"`
	Type    *models.CategoryType `json:"type" binding:"omitempty,category_type" example:"expense"`
	Picture *string              `json:"picture" example:"groceries.png"`
}

// ListCategories returns live categories
// @Summary     List categories
// @Description List live categories, newest first, optionally filtered by name prefix and type
// @Tags        categories
// @Produce     json
// @Param       name query string false "Name prefix"
// @Param       type query string false "Category type (income/expense)"
// @Success     200 {object} response.Body{data=[]models.Category} "List of categories"
// @Failure     400 {object} response.ErrorBody "Invalid filter"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var query CategoryQuery
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), services.CategoryFilter{
		Name: query.Name,
		Type: query.Type,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, categories)
}

// GetCategory returns a single category
// @Summary     Get a category
// @Description Get a live category with its budget sub-categories
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Body{data=models.Category} "Category"
// @Failure     400 {object} response.ErrorBody "Invalid id"
// @Failure     404 {object} response.ErrorBody "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, category)
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a category. The slug is derived from the name.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     200 {object} response.Body{data=models.Category} "Category created"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), services.CategoryInput{
		Name:   req.Name,
		UserID: req.UserID,
		Type:   req.Type,
		Icon:   req.Icon,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	actor := ""
	if req.UserID != nil {
		actor = *req.UserID
	}
	h.auditService.Log(actor, services.AuditCreateCategory, "category", category.ID, c.ClientIP(),
		map[string]any{"name": category.Name, "slug": category.Slug})
	response.OK(c, category)
}

// BulkCreateCategories copies the predefined categories to the caller
// @Summary     Create predefined categories
// @Description Copy every predefined category to the authenticated user in one step
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Body{data=[]models.Category} "Categories created"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Router      /categories/bulk [post]
func (h *CategoryHandler) BulkCreateCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	categories, err := h.categoryService.BulkCreate(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditBulkCategories, "category", "", c.ClientIP(),
		map[string]any{"count": len(categories)})
	response.OK(c, categories)
}

// UpdateCategory handles updating a category
// @Summary     Update a category
// @Description Patch a category owned by the caller (admins may also patch system categories). A new name regenerates the slug.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Param       request body UpdateCategoryRequest true "Fields to change"
// @Success     200 {object} response.Body{data=models.Category} "Category updated"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Failure     404 {object} response.ErrorBody "Category not found"
// @Router      /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := parsePathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), caller, id, services.CategoryPatch{
		Name:    req.Name,
		Type:    req.Type,
		Picture: req.Picture,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(caller.UserID, services.AuditUpdateCategory, "category", id, c.ClientIP(), nil)
	response.OK(c, category)
}

// DeleteCategories soft-deletes categories
// @Summary     Delete categories
// @Description Soft-delete the listed categories owned by the caller (admins may also delete system categories). Returns the number of rows deleted.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DeleteRequest true "Category IDs"
// @Success     200 {object} response.Body{data=int} "Number of categories deleted"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Router      /categories [delete]
func (h *CategoryHandler) DeleteCategories(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req DeleteRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	affected, err := h.categoryService.Delete(c.Request.Context(), caller, req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(caller.UserID, services.AuditDeleteCategory, "category", "", c.ClientIP(),
		map[string]any{"ids": req.IDs, "deleted": affected})
	response.OK(c, affected)
}
