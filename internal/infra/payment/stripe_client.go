// Package payment implements the payment-provider gateway against the
// Stripe REST API. Only the handful of endpoints the checkout flow needs
// are wired; requests are form-encoded per the provider's convention.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultAPIBase       = "https://api.stripe.com"
	defaultClientTimeout = 15 * time.Second
)

// stripeClient implements service.PaymentGateway over the provider's REST API.
type stripeClient struct {
	apiBase         string
	secretKey       string
	successURL      string
	cancelURL       string
	portalReturnURL string
	httpClient      *http.Client
	logger          *slog.Logger
}

// NewStripeClient is the constructor for stripeClient.
func NewStripeClient(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	apiBase := cfg.Stripe.APIBase
	if apiBase == "" {
		apiBase = defaultAPIBase
	}

	return &stripeClient{
		apiBase:         strings.TrimRight(apiBase, "/"),
		secretKey:       cfg.Stripe.SecretKey,
		successURL:      cfg.Stripe.SuccessURL,
		cancelURL:       cfg.Stripe.CancelURL,
		portalReturnURL: cfg.Stripe.PortalReturnURL,
		httpClient:      &http.Client{Timeout: defaultClientTimeout},
		logger:          logger,
	}, nil
}

// EnsureCustomer returns the provider customer id for the given account,
// creating the customer on first use. Lookup is by email; the caller
// persists the returned id so this runs once per account.
func (c *stripeClient) EnsureCustomer(ctx context.Context, email, name string) (string, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("email:%q", email))

	var search struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v1/customers/search?"+params.Encode(), &search); err != nil {
		return "", errors.Wrap(err, "failed to search customers")
	}
	if len(search.Data) > 0 {
		return search.Data[0].ID, nil
	}

	form := url.Values{}
	form.Set("email", email)
	form.Set("name", name)

	var customer struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/v1/customers", form, &customer); err != nil {
		return "", errors.Wrap(err, "failed to create customer")
	}

	return customer.ID, nil
}

// CreateCheckoutSession opens a hosted payment session for an order.
func (c *stripeClient) CreateCheckoutSession(ctx context.Context, customerID string, orderID uuid.UUID, items []service.CheckoutLineItem) (*service.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer", customerID)
	form.Set("client_reference_id", orderID.String())
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)

	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
		form.Set(prefix+"[price_data][currency]", "usd")
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitPrice, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
	}

	var session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := c.post(ctx, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	return &service.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// CreateBillingPortalSession opens the provider's self-service billing portal.
func (c *stripeClient) CreateBillingPortalSession(ctx context.Context, customerID string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("return_url", c.portalReturnURL)

	var session struct {
		URL string `json:"url"`
	}
	if err := c.post(ctx, "/v1/billing_portal/sessions", form, &session); err != nil {
		return "", errors.Wrap(err, "failed to create billing portal session")
	}

	return session.URL, nil
}

func (c *stripeClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	return c.do(req, out)
}

func (c *stripeClient) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+path, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, out)
}

func (c *stripeClient) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("Stripe API error",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)

		return errors.Errorf("stripe API returned status %d: %s", resp.StatusCode, truncateBody(body))
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.Unmarshal(body, out), "failed to decode response")
}

// truncateBody keeps provider error bodies out of logs and errors beyond
// a useful prefix.
func truncateBody(body []byte) string {
	const maxLen = 512
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}

	return string(body)
}
