package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# Mental Trading Journal API

## Auth

All /api/* routes except /api/auth/* require a Bearer token from
POST /api/auth/login.

## Routes

- GET  /healthz
- GET  /readyz
- POST /api/auth/register
- POST /api/auth/login
- GET  /api/auth/session
- POST /api/auth/signout
- POST /api/journal
- GET  /api/journal
- GET  /api/journal/:id
- POST /api/journal/:id/trades
- PUT  /api/journal/:id/trades/:trade_id
- DELETE /api/journal/:id/trades/:trade_id
- GET  /api/analytics/emotion-recovery
- GET  /api/analytics/emotion-trend
- GET  /api/analytics/mistakes
- GET  /api/analytics/duration
- GET  /api/analytics/asset-pairs
- GET  /api/analytics/weekly
- GET  /api/analytics/daily-stats
- GET  /api/progress
- GET  /api/blueprints
- POST /api/blueprints
- GET  /api/blueprints/:id
- DELETE /api/blueprints/:id
- GET  /api/blueprints/:id/sessions
- POST /api/blueprints/:id/sessions
- GET  /api/blueprints/:id/pair-stats
- DELETE /api/backtest/sessions/:id
- POST /api/billing/checkout
- POST /api/billing/portal
- GET  /api/billing/subscription
- POST /api/billing/webhook
`)
	})
}
