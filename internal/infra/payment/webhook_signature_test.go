package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

func newTestVerifier(t *testing.T, now time.Time) *stripeWebhookVerifier {
	t.Helper()

	return &stripeWebhookVerifier{
		secret:    []byte(testWebhookSecret),
		tolerance: defaultSignatureTolerance,
		now:       func() time.Time { return now },
	}
}

func signPayload(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)

	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	now := time.Now()
	payload := []byte(`{"id":"evt_1","type":"invoice.paid"}`)
	timestamp := now.Unix()
	header := fmt.Sprintf("t=%d,v1=%s", timestamp, signPayload(testWebhookSecret, timestamp, payload))

	verifier := newTestVerifier(t, now)

	assert.NoError(t, verifier.VerifySignature(payload, header))
}

func TestVerifySignature_MultipleSignatures(t *testing.T) {
	now := time.Now()
	payload := []byte(`{"id":"evt_1"}`)
	timestamp := now.Unix()
	valid := signPayload(testWebhookSecret, timestamp, payload)
	header := fmt.Sprintf("t=%d,v1=%s,v1=%s", timestamp, signPayload("whsec_rotated_out", timestamp, payload), valid)

	verifier := newTestVerifier(t, now)

	assert.NoError(t, verifier.VerifySignature(payload, header))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	now := time.Now()
	payload := []byte(`{"id":"evt_1"}`)
	timestamp := now.Unix()
	header := fmt.Sprintf("t=%d,v1=%s", timestamp, signPayload("whsec_wrong", timestamp, payload))

	verifier := newTestVerifier(t, now)

	err := verifier.VerifySignature(payload, header)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestVerifySignature_TamperedPayload(t *testing.T) {
	now := time.Now()
	timestamp := now.Unix()
	header := fmt.Sprintf("t=%d,v1=%s", timestamp, signPayload(testWebhookSecret, timestamp, []byte(`{"amount":100}`)))

	verifier := newTestVerifier(t, now)

	assert.Error(t, verifier.VerifySignature([]byte(`{"amount":99999}`), header))
}

func TestVerifySignature_StaleTimestamp(t *testing.T) {
	now := time.Now()
	payload := []byte(`{"id":"evt_1"}`)
	timestamp := now.Add(-10 * time.Minute).Unix()
	header := fmt.Sprintf("t=%d,v1=%s", timestamp, signPayload(testWebhookSecret, timestamp, payload))

	verifier := newTestVerifier(t, now)

	err := verifier.VerifySignature(payload, header)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tolerance")
}

func TestVerifySignature_MalformedHeader(t *testing.T) {
	verifier := newTestVerifier(t, time.Now())
	payload := []byte(`{"id":"evt_1"}`)

	cases := map[string]string{
		"empty":             "",
		"no timestamp":      "v1=deadbeef",
		"no signature":      "t=1700000000",
		"bad timestamp":     "t=notanumber,v1=deadbeef",
		"missing separator": "t1700000000",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, verifier.VerifySignature(payload, header))
		})
	}
}
