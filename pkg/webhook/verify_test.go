package webhook

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

func freshTimestamp() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

func TestVerifyAcceptsSignedPayload(t *testing.T) {
	body := []byte(`{"type":"organization.created"}`)
	ts := freshTimestamp()
	sig := Sign(testSecret, "msg_1", ts, body)

	require.NoError(t, Verify(testSecret, "msg_1", ts, sig, body))
}

func TestVerifyAcceptsMultipleSignatureEntries(t *testing.T) {
	body := []byte(`{}`)
	ts := freshTimestamp()
	sig := "v1,AAAA " + Sign(testSecret, "msg_1", ts, body)

	require.NoError(t, Verify(testSecret, "msg_1", ts, sig, body))
}

func TestVerifyRejectsTamperedBody(t *testing.T) {
	ts := freshTimestamp()
	sig := Sign(testSecret, "msg_1", ts, []byte(`{"a":1}`))

	err := Verify(testSecret, "msg_1", ts, sig, []byte(`{"a":2}`))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	body := []byte(`{}`)
	ts := freshTimestamp()
	sig := Sign(testSecret, "msg_1", ts, body)

	err := Verify("whsec_c2VjcmV0c2VjcmV0c2VjcmV0c2VjcmV0", "msg_1", ts, sig, body)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyRejectsMissingHeaders(t *testing.T) {
	body := []byte(`{}`)
	ts := freshTimestamp()
	sig := Sign(testSecret, "msg_1", ts, body)

	assert.ErrorIs(t, Verify(testSecret, "", ts, sig, body), ErrInvalidSignature)
	assert.ErrorIs(t, Verify(testSecret, "msg_1", "", sig, body), ErrInvalidSignature)
	assert.ErrorIs(t, Verify(testSecret, "msg_1", ts, "", body), ErrInvalidSignature)
}

func TestVerifyRejectsStaleTimestamp(t *testing.T) {
	body := []byte(`{}`)
	old := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)
	sig := Sign(testSecret, "msg_1", old, body)

	assert.ErrorIs(t, Verify(testSecret, "msg_1", old, sig, body), ErrInvalidSignature)

	future := strconv.FormatInt(time.Now().Add(10*time.Minute).Unix(), 10)
	sig = Sign(testSecret, "msg_1", future, body)
	assert.ErrorIs(t, Verify(testSecret, "msg_1", future, sig, body), ErrInvalidSignature)
}

func TestVerifyRejectsGarbageTimestamp(t *testing.T) {
	err := Verify(testSecret, "msg_1", "not-a-number", "v1,abc", []byte(`{}`))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyPlainSecretWithoutPrefix(t *testing.T) {
	secret := "plain-shared-secret"
	body := []byte(fmt.Sprintf(`{"ts":%q}`, time.Now().String()))
	ts := freshTimestamp()
	sig := Sign(secret, "msg_2", ts, body)

	require.NoError(t, Verify(secret, "msg_2", ts, sig, body))
}
