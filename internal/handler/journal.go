package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/journal"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/service"
)

type JournalHandler struct {
	Service *service.JournalService
}

func (h *JournalHandler) Register(g *gin.RouterGroup) {
	g.POST("/journal", h.create)
	g.GET("/journal", h.list)
	g.GET("/journal/:id", h.get)
	g.POST("/journal/:id/trades", h.addTrade)
	g.PUT("/journal/:id/trades/:trade_id", h.updateTrade)
	g.DELETE("/journal/:id/trades/:trade_id", h.removeTrade)
}

func (h *JournalHandler) create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input service.CreateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Error(c, http.StatusBadRequest, "invalid entry payload", nil)
		return
	}
	entry, err := h.Service.CreateEntry(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrBadSession) {
			Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, entry, nil)
}

func (h *JournalHandler) list(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	criteria := journal.Criteria{
		Date:       dateQueryPtr(c, "date"),
		TimeWindow: journal.TimeWindow(c.Query("time_window")),
	}
	if v := strQueryPtr(c, "emotion"); v != nil {
		criteria.Emotion = *v
	}
	if v := strQueryPtr(c, "emotion_detail"); v != nil {
		criteria.EmotionDetail = *v
	}
	if v := strQueryPtr(c, "outcome"); v != nil {
		criteria.Outcome = *v
	}

	entries, err := h.Service.ListEntries(c.Request.Context(), userID, criteria)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}

	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	total := int64(len(entries))
	page := paginate(entries, limit, offset)
	Ok(c, page, paginationMeta(limit, offset, total))
}

func (h *JournalHandler) get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entryID, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid entry id", nil)
		return
	}
	entry, err := h.Service.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		writeJournalError(c, err)
		return
	}
	Ok(c, entry, nil)
}

func (h *JournalHandler) addTrade(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entryID, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid entry id", nil)
		return
	}
	var trade models.Trade
	if err := c.ShouldBindJSON(&trade); err != nil {
		Error(c, http.StatusBadRequest, "invalid trade payload", nil)
		return
	}
	created, err := h.Service.AddTrade(c.Request.Context(), userID, entryID, trade)
	if err != nil {
		writeJournalError(c, err)
		return
	}
	Ok(c, created, nil)
}

func (h *JournalHandler) updateTrade(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entryID, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid entry id", nil)
		return
	}
	var trade models.Trade
	if err := c.ShouldBindJSON(&trade); err != nil {
		Error(c, http.StatusBadRequest, "invalid trade payload", nil)
		return
	}
	updated, err := h.Service.UpdateTrade(c.Request.Context(), userID, entryID, c.Param("trade_id"), trade)
	if err != nil {
		writeJournalError(c, err)
		return
	}
	Ok(c, updated, nil)
}

func (h *JournalHandler) removeTrade(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entryID, ok := uuidParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid entry id", nil)
		return
	}
	if err := h.Service.RemoveTrade(c.Request.Context(), userID, entryID, c.Param("trade_id")); err != nil {
		writeJournalError(c, err)
		return
	}
	Ok(c, gin.H{"deleted": true}, nil)
}

func writeJournalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEntryNotFound), errors.Is(err, service.ErrTradeNotFound):
		Error(c, http.StatusNotFound, err.Error(), nil)
	default:
		Error(c, http.StatusBadGateway, err.Error(), nil)
	}
}

func paginate(entries []models.JournalEntry, limit, offset int) []models.JournalEntry {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(entries) {
		return []models.JournalEntry{}
	}
	end := len(entries)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return entries[offset:end]
}
