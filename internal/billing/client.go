package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the hosted payment processor's REST API. Calls are
// request/response with no retries; a failure surfaces once and the caller
// decides what to do.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
}

type CheckoutParams struct {
	UserID     string
	Email      string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCheckoutSession returns the hosted checkout URL the browser should
// be redirected to.
func (c *Client) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, error) {
	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("client_reference_id", p.UserID)
	form.Set("customer_email", p.Email)
	form.Set("line_items[0][price]", p.PriceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)
	return c.postSession(ctx, "/v1/checkout/sessions", form)
}

// CreatePortalSession returns the hosted billing-portal URL for an existing
// customer.
func (c *Client) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("return_url", returnURL)
	return c.postSession(ctx, "/v1/billing_portal/sessions", form)
}

func (c *Client) postSession(ctx context.Context, path string, form url.Values) (string, error) {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.BaseURL, "/")+path, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	var session sessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("billing: decode session response: %w", err)
	}
	if resp.StatusCode >= 400 {
		msg := resp.Status
		if session.Error != nil && session.Error.Message != "" {
			msg = session.Error.Message
		}
		return "", fmt.Errorf("billing: %s", msg)
	}
	if session.URL == "" {
		return "", errors.New("billing: session response missing url")
	}
	return session.URL, nil
}

// WebhookEvent is the subset of a provider event the subscription sync
// cares about.
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ClientReferenceID string `json:"client_reference_id"`
			Customer          string `json:"customer"`
			Subscription      string `json:"subscription"`
			ID                string `json:"id"`
			Status            string `json:"status"`
			Plan              string `json:"plan"`
			CurrentPeriodEnd  int64  `json:"current_period_end"`
			Metadata          map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// VerifyWebhookSignature checks the provider's signature header
// ("t=<unix>,v1=<hex hmac>") against the shared webhook secret.
func VerifyWebhookSignature(payload []byte, header, secret string) error {
	var ts, sig string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts = kv[1]
		case "v1":
			sig = kv[1]
		}
	}
	if ts == "" || sig == "" {
		return errors.New("billing: malformed signature header")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return errors.New("billing: signature mismatch")
	}
	return nil
}
