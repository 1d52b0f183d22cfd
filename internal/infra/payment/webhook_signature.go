package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// defaultSignatureTolerance bounds how stale a signed timestamp may be
// before the delivery is rejected as a possible replay.
const defaultSignatureTolerance = 5 * time.Minute

// stripeWebhookVerifier checks the Stripe-Signature header scheme:
// "t=<unix>,v1=<hex hmac-sha256 of '<unix>.<body>'>". Any malformed
// header, stale timestamp, or digest mismatch is an error.
type stripeWebhookVerifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewStripeWebhookVerifier is the constructor for stripeWebhookVerifier.
func NewStripeWebhookVerifier(cfg *config.Config) (service.WebhookVerifier, error) {
	if cfg.Stripe == nil || cfg.Stripe.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret must be provided")
	}

	return &stripeWebhookVerifier{
		secret:    []byte(cfg.Stripe.WebhookSecret),
		tolerance: defaultSignatureTolerance,
		now:       time.Now,
	}, nil
}

// VerifySignature checks the signature header against the raw body.
func (v *stripeWebhookVerifier) VerifySignature(payload []byte, signatureHeader string) error {
	timestamp, signatures, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		return err
	}

	signedAt := time.Unix(timestamp, 0)
	if diff := v.now().Sub(signedAt); diff > v.tolerance || diff < -v.tolerance {
		return errors.New("webhook signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, signature := range signatures {
		provided, err := hex.DecodeString(signature)
		if err != nil {
			continue
		}
		if hmac.Equal(expected, provided) {
			return nil
		}
	}

	return errors.New("webhook signature mismatch")
}

func parseSignatureHeader(header string) (timestamp int64, signatures []string, err error) {
	if header == "" {
		return 0, nil, errors.New("missing signature header")
	}

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return 0, nil, errors.New("malformed signature header")
		}

		switch key {
		case "t":
			timestamp, err = strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, errors.Wrap(err, "invalid signature timestamp")
			}
		case "v1":
			signatures = append(signatures, value)
		}
	}

	if timestamp == 0 {
		return 0, nil, errors.New("signature header missing timestamp")
	}
	if len(signatures) == 0 {
		return 0, nil, errors.New("signature header missing v1 signature")
	}

	return timestamp, signatures, nil
}
