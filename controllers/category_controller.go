package controllers

import (
	"strconv"

	"github.com/LINMINXUAN/aphelion-apollo-pos/pkg/resp"
	"github.com/LINMINXUAN/aphelion-apollo-pos/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Catalog *services.CatalogService
}

func NewCategoryController(catalog *services.CatalogService) *CategoryController {
	return &CategoryController{Catalog: catalog}
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.Catalog.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := ctl.Catalog.CreateCategory(in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, category)
}

// PUT /categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := ctl.Catalog.UpdateCategory(uint(id), in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, category)
}

// DELETE /categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ctl.Catalog.DeleteCategory(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true})
}
