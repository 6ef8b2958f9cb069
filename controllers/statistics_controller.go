package controllers

import (
	"strconv"

	"github.com/LINMINXUAN/aphelion-apollo-pos/pkg/resp"
	"github.com/LINMINXUAN/aphelion-apollo-pos/services"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Stats *services.StatisticsService
}

func NewStatisticsController(stats *services.StatisticsService) *StatisticsController {
	return &StatisticsController{Stats: stats}
}

// GET /statistics/today
func (ctl *StatisticsController) Today(c *gin.Context) {
	stats, err := ctl.Stats.Today()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /statistics/revenue?days=7
func (ctl *StatisticsController) Revenue(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	revenue, err := ctl.Stats.Revenue(days)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, revenue)
}

// GET /statistics/top-products?limit=5&by=name|id
func (ctl *StatisticsController) TopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	var (
		top []services.TopProduct
		err error
	)
	if c.Query("by") == "id" {
		top, err = ctl.Stats.TopProductsByID(limit)
	} else {
		top, err = ctl.Stats.TopProducts(limit)
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, top)
}
