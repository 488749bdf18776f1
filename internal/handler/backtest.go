package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/repository"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/service"
)

type BacktestHandler struct {
	Service *service.BacktestService
}

func (h *BacktestHandler) Register(g *gin.RouterGroup) {
	g.GET("/blueprints", h.listBlueprints)
	g.POST("/blueprints", h.createBlueprint)
	g.GET("/blueprints/:id", h.getBlueprint)
	g.DELETE("/blueprints/:id", h.deleteBlueprint)
	g.GET("/blueprints/:id/sessions", h.listSessions)
	g.POST("/blueprints/:id/sessions", h.createSession)
	g.GET("/blueprints/:id/pair-stats", h.pairStats)
	g.DELETE("/backtest/sessions/:id", h.deleteSession)
}

func (h *BacktestHandler) listBlueprints(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	items, err := h.Service.ListBlueprints(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

func (h *BacktestHandler) createBlueprint(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input service.CreateBlueprintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Error(c, http.StatusBadRequest, "invalid blueprint payload", nil)
		return
	}
	item, err := h.Service.CreateBlueprint(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrBlueprintName) {
			Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

func (h *BacktestHandler) getBlueprint(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid blueprint id", nil)
		return
	}
	item, err := h.Service.GetBlueprint(c.Request.Context(), userID, id)
	if err != nil {
		writeBacktestError(c, err)
		return
	}
	Ok(c, item, nil)
}

func (h *BacktestHandler) deleteBlueprint(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid blueprint id", nil)
		return
	}
	if err := h.Service.DeleteBlueprint(c.Request.Context(), userID, id); err != nil {
		writeBacktestError(c, err)
		return
	}
	Ok(c, gin.H{"deleted": true}, nil)
}

func (h *BacktestHandler) listSessions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	blueprintID, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid blueprint id", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	items, total, err := h.Service.ListSessions(c.Request.Context(), repository.ListBacktestSessionsParams{
		UserID:      userID,
		BlueprintID: &blueprintID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

func (h *BacktestHandler) createSession(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	blueprintID, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid blueprint id", nil)
		return
	}
	var session models.BacktestSession
	if err := c.ShouldBindJSON(&session); err != nil {
		Error(c, http.StatusBadRequest, "invalid session payload", nil)
		return
	}
	created, err := h.Service.CreateSession(c.Request.Context(), userID, blueprintID, session)
	if err != nil {
		writeBacktestError(c, err)
		return
	}
	Ok(c, created, nil)
}

func (h *BacktestHandler) pairStats(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	blueprintID, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid blueprint id", nil)
		return
	}
	out, err := h.Service.BlueprintPairStats(c.Request.Context(), userID, blueprintID)
	if err != nil {
		writeBacktestError(c, err)
		return
	}
	Ok(c, out, nil)
}

func (h *BacktestHandler) deleteSession(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid session id", nil)
		return
	}
	if err := h.Service.DeleteSession(c.Request.Context(), userID, id); err != nil {
		writeBacktestError(c, err)
		return
	}
	Ok(c, gin.H{"deleted": true}, nil)
}

func writeBacktestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBlueprintNotFound), errors.Is(err, service.ErrSessionNotFound):
		Error(c, http.StatusNotFound, err.Error(), nil)
	default:
		Error(c, http.StatusBadGateway, err.Error(), nil)
	}
}
