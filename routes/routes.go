package routes

import (
	"github.com/LINMINXUAN/aphelion-apollo-pos/controllers"
	"github.com/LINMINXUAN/aphelion-apollo-pos/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, catalog *services.CatalogService, orders *services.OrderService, stats *services.StatisticsService) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	categoryCtl := controllers.NewCategoryController(catalog)
	productCtl := controllers.NewProductController(catalog)
	orderCtl := controllers.NewOrderController(orders)
	statsCtl := controllers.NewStatisticsController(stats)

	categories := r.Group("/categories")
	{
		categories.GET("", categoryCtl.List)
		categories.POST("", categoryCtl.Create)
		categories.PUT("/:id", categoryCtl.Update)
		categories.DELETE("/:id", categoryCtl.Delete)
	}

	products := r.Group("/products")
	{
		products.GET("", productCtl.List)
		products.GET("/:id", productCtl.Get)
		products.POST("", productCtl.Create)
		products.PUT("/:id", productCtl.Update)
		products.DELETE("/:id", productCtl.Delete)
		products.POST("/:id/toggle-availability", productCtl.ToggleAvailability)
	}

	ordersGroup := r.Group("/orders")
	{
		ordersGroup.GET("", orderCtl.List)
		ordersGroup.GET("/:id", orderCtl.Detail)
		ordersGroup.POST("", orderCtl.Create)
		ordersGroup.PATCH("/:id/status", orderCtl.UpdateStatus)
	}

	statistics := r.Group("/statistics")
	{
		statistics.GET("/today", statsCtl.Today)
		statistics.GET("/revenue", statsCtl.Revenue)
		statistics.GET("/top-products", statsCtl.TopProducts)
	}
}
