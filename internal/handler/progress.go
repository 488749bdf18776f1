package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/progress"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/repository"
)

type ProgressHandler struct {
	Tracker *progress.Tracker
	Repo    repository.Repository
}

func (h *ProgressHandler) Register(g *gin.RouterGroup) {
	g.GET("/progress", h.get)
}

func (h *ProgressHandler) get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	stats, err := h.Tracker.Stats(c.Request.Context(), userID)
	if err != nil {
		// Fall back to the display cache so the dashboard still renders
		// something while the store is unreachable.
		if cached, ok := h.Tracker.Cached(userID); ok {
			Ok(c, cached, map[string]any{"stale": true})
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}

	var meta map[string]any
	if h.Repo != nil {
		total, err := h.Repo.CountJournalEntries(c.Request.Context(), repository.ListJournalEntriesParams{UserID: userID})
		if err == nil {
			meta = map[string]any{"total_sessions": total}
		}
	}
	Ok(c, stats, meta)
}
