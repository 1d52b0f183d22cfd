package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/infra/metrics"
	mockservice "storefront/internal/mocks/service"
	mockusecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Counter registration is global; build the metrics once for the package.
var testMetrics = metrics.NewWebhookMetrics()

type webhookFixture struct {
	handler  *StripeHandler
	verifier *mockservice.MockWebhookVerifier
	uc       *mockusecase.MockBillingUsecase
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()

	verifier := mockservice.NewMockWebhookVerifier(t)
	uc := mockusecase.NewMockBillingUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &webhookFixture{
		handler:  NewStripeHandler(verifier, uc, testMetrics, logger),
		verifier: verifier,
		uc:       uc,
	}
}

func deliverEvent(t *testing.T, h *StripeHandler, body, signature string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(signatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandleEvent(c))

	return rec
}

func TestStripeHandler_InvalidSignatureRejected(t *testing.T) {
	f := newWebhookFixture(t)
	body := `{"id":"evt_1","type":"invoice.paid"}`

	f.verifier.EXPECT().
		VerifySignature([]byte(body), "t=1,v1=bad").
		Return(errors.New("webhook signature mismatch"))

	rec := deliverEvent(t, f.handler, body, "t=1,v1=bad")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// ProcessEvent must not run: a forged delivery leaves no trace.
	f.uc.AssertNotCalled(t, "ProcessEvent", mock.Anything, mock.Anything)
}

func TestStripeHandler_MissingSignatureRejected(t *testing.T) {
	f := newWebhookFixture(t)
	body := `{"id":"evt_1","type":"invoice.paid"}`

	f.verifier.EXPECT().
		VerifySignature([]byte(body), "").
		Return(errors.New("missing signature header"))

	rec := deliverEvent(t, f.handler, body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStripeHandler_MalformedPayloadRejected(t *testing.T) {
	f := newWebhookFixture(t)

	cases := map[string]string{
		"not json":     "not-json",
		"missing id":   `{"type":"invoice.paid"}`,
		"missing type": `{"id":"evt_1"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			f.verifier.EXPECT().
				VerifySignature([]byte(body), "t=1,v1=ok").
				Return(nil).
				Once()

			rec := deliverEvent(t, f.handler, body, "t=1,v1=ok")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestStripeHandler_KnownEventAcknowledged(t *testing.T) {
	f := newWebhookFixture(t)
	body := `{"id":"evt_42","type":"invoice.paid","data":{"object":{"customer":"cus_1"}}}`

	f.verifier.EXPECT().VerifySignature([]byte(body), "t=1,v1=ok").Return(nil)
	f.uc.EXPECT().
		ProcessEvent(mock.Anything, &usecase.WebhookEventInput{
			ProviderEventID: "evt_42",
			Type:            "invoice.paid",
			Payload:         []byte(body),
		}).
		Return(usecase.WebhookProcessed, nil)

	rec := deliverEvent(t, f.handler, body, "t=1,v1=ok")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(usecase.WebhookProcessed))
}

func TestStripeHandler_UnknownEventAcknowledged(t *testing.T) {
	f := newWebhookFixture(t)
	body := `{"id":"evt_7","type":"price.created"}`

	f.verifier.EXPECT().VerifySignature([]byte(body), "t=1,v1=ok").Return(nil)
	f.uc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(usecase.WebhookIgnored, nil)

	rec := deliverEvent(t, f.handler, body, "t=1,v1=ok")

	// Unknown types are still acked so the provider stops retrying.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(usecase.WebhookIgnored))
}

func TestStripeHandler_DuplicateEventAcknowledged(t *testing.T) {
	f := newWebhookFixture(t)
	body := `{"id":"evt_42","type":"invoice.paid"}`

	f.verifier.EXPECT().VerifySignature([]byte(body), "t=2,v1=ok").Return(nil)
	f.uc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(usecase.WebhookDuplicate, nil)

	rec := deliverEvent(t, f.handler, body, "t=2,v1=ok")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(usecase.WebhookDuplicate))
}

func TestStripeHandler_ProcessingFailureTriggersRetry(t *testing.T) {
	f := newWebhookFixture(t)
	body := `{"id":"evt_9","type":"invoice.paid"}`

	f.verifier.EXPECT().VerifySignature([]byte(body), "t=1,v1=ok").Return(nil)
	f.uc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(usecase.WebhookOutcome(""), errors.New("database unavailable"))

	rec := deliverEvent(t, f.handler, body, "t=1,v1=ok")

	// A non-2xx prompts the provider to redeliver.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "database unavailable")
}
