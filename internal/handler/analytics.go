package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/service"
)

type AnalyticsHandler struct {
	Service *service.AnalyticsService
}

func (h *AnalyticsHandler) Register(g *gin.RouterGroup) {
	group := g.Group("/analytics")
	group.GET("/emotion-recovery", h.emotionRecovery)
	group.GET("/emotion-trend", h.emotionTrend)
	group.GET("/mistakes", h.mistakes)
	group.GET("/duration", h.duration)
	group.GET("/asset-pairs", h.assetPairs)
	group.GET("/weekly", h.weekly)
	group.GET("/daily-stats", h.dailyStats)
}

func (h *AnalyticsHandler) emotionRecovery(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	out, err := h.Service.EmotionRecovery(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}

func (h *AnalyticsHandler) emotionTrend(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	out, err := h.Service.EmotionTrend(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}

func (h *AnalyticsHandler) mistakes(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	out, err := h.Service.MistakeFrequency(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}

func (h *AnalyticsHandler) duration(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	out, err := h.Service.TradeDurations(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}

func (h *AnalyticsHandler) assetPairs(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	out, err := h.Service.AssetPairs(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}

func (h *AnalyticsHandler) dailyStats(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	out, err := h.Service.DailyStats(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}

func (h *AnalyticsHandler) weekly(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	out, err := h.Service.WeeklySummary(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}
