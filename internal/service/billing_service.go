package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/billing"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/config"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/notify"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/repository"
)

var (
	ErrNoSubscription  = errors.New("no subscription on file")
	ErrBadWebhook      = errors.New("webhook rejected")
	ErrUserNotFound    = errors.New("user not found")
)

// BillingService fronts the hosted payment processor: checkout and portal
// redirects go out, webhook events come back and update the local mirror.
type BillingService struct {
	Repo     repository.Repository
	Client   *billing.Client
	Cfg      config.BillingConfig
	Notifier *notify.Hub
	Logger   *zap.Logger
}

// CheckoutURL creates a hosted checkout session and returns the redirect
// URL. Failures surface once; nothing is retried.
func (s *BillingService) CheckoutURL(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	url, err := s.Client.CreateCheckoutSession(ctx, billing.CheckoutParams{
		UserID:     userID.String(),
		Email:      user.Email,
		PriceID:    s.Cfg.PriceID,
		SuccessURL: s.Cfg.SuccessURL,
		CancelURL:  s.Cfg.CancelURL,
	})
	if err != nil {
		s.notifyError("Could not start checkout", err)
		return "", err
	}
	return url, nil
}

// PortalURL creates a billing-portal session for an already-subscribed
// user.
func (s *BillingService) PortalURL(ctx context.Context, userID uuid.UUID) (string, error) {
	sub, err := s.Repo.GetSubscriptionByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if sub == nil || sub.CustomerID == "" {
		return "", ErrNoSubscription
	}
	url, err := s.Client.CreatePortalSession(ctx, sub.CustomerID, s.Cfg.SuccessURL)
	if err != nil {
		s.notifyError("Could not open the billing portal", err)
		return "", err
	}
	return url, nil
}

func (s *BillingService) Subscription(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	sub, err := s.Repo.GetSubscriptionByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}
	return sub, nil
}

// HandleWebhook verifies the provider signature and applies the event to
// the local subscription mirror. Events for unknown users are logged and
// dropped; the provider will not be asked to resend.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if err := billing.VerifyWebhookSignature(payload, signature, s.Cfg.WebhookSecret); err != nil {
		return ErrBadWebhook
	}
	var event billing.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return ErrBadWebhook
	}

	obj := event.Data.Object
	rawUserID := obj.ClientReferenceID
	if rawUserID == "" {
		rawUserID = obj.Metadata["user_id"]
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("billing webhook without user reference", zap.String("type", event.Type))
		}
		return nil
	}

	sub := &models.Subscription{
		UserID:         userID,
		Status:         obj.Status,
		Plan:           obj.Plan,
		CustomerID:     obj.Customer,
		SubscriptionID: obj.Subscription,
		LastEvent:      datatypes.JSON(payload),
	}
	if sub.SubscriptionID == "" {
		sub.SubscriptionID = obj.ID
	}
	if sub.Status == "" {
		sub.Status = statusForEvent(event.Type)
	}
	if obj.CurrentPeriodEnd > 0 {
		end := time.Unix(obj.CurrentPeriodEnd, 0).UTC()
		sub.CurrentPeriodEnd = &end
	}
	if err := s.Repo.UpsertSubscription(ctx, sub); err != nil {
		s.notifyError("Subscription update failed", err)
		return err
	}
	return nil
}

func statusForEvent(eventType string) string {
	switch eventType {
	case "checkout.session.completed", "customer.subscription.created", "customer.subscription.updated", "invoice.paid":
		return models.SubscriptionActive
	case "invoice.payment_failed":
		return models.SubscriptionPastDue
	case "customer.subscription.deleted":
		return models.SubscriptionCanceled
	default:
		return models.SubscriptionActive
	}
}

func (s *BillingService) notifyError(title string, err error) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Publish(notify.LevelError, title, err.Error())
}
