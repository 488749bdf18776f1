package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/service"
)

type BillingHandler struct {
	Service *service.BillingService
}

func (h *BillingHandler) Register(g *gin.RouterGroup) {
	group := g.Group("/billing")
	group.POST("/checkout", h.checkout)
	group.POST("/portal", h.portal)
	group.GET("/subscription", h.subscription)
}

// RegisterWebhook mounts the provider callback outside the auth middleware;
// it is authenticated by signature instead.
func (h *BillingHandler) RegisterWebhook(r *gin.Engine) {
	r.POST("/api/billing/webhook", h.webhook)
}

func (h *BillingHandler) checkout(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	url, err := h.Service.CheckoutURL(c.Request.Context(), userID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"url": url}, nil)
}

func (h *BillingHandler) portal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	url, err := h.Service.PortalURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSubscription) {
			Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"url": url}, nil)
}

func (h *BillingHandler) subscription(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	sub, err := h.Service.Subscription(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSubscription) {
			Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, sub, nil)
}

func (h *BillingHandler) webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		Error(c, http.StatusBadRequest, "unreadable payload", nil)
		return
	}
	signature := c.GetHeader("Webhook-Signature")
	if err := h.Service.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		if errors.Is(err, service.ErrBadWebhook) {
			Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"received": true}, nil)
}
