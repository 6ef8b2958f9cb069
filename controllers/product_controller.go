package controllers

import (
	"strconv"

	"github.com/LINMINXUAN/aphelion-apollo-pos/pkg/resp"
	"github.com/LINMINXUAN/aphelion-apollo-pos/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GET /products
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.Catalog.ListProducts()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:id
func (ctl *ProductController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	product, err := ctl.Catalog.GetProduct(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}

// POST /products
func (ctl *ProductController) Create(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := ctl.Catalog.CreateProduct(in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, product)
}

// PUT /products/:id
func (ctl *ProductController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := ctl.Catalog.UpdateProduct(uint(id), in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}

// DELETE /products/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ctl.Catalog.DeleteProduct(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true})
}

// POST /products/:id/toggle-availability
func (ctl *ProductController) ToggleAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	product, err := ctl.Catalog.ToggleAvailability(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}
