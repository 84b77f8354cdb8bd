package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Tolerance on the signed timestamp; events outside the window are rejected
// to stop replays.
const timestampTolerance = 5 * time.Minute

var ErrInvalidSignature = errors.New("invalid webhook signature")

// Verify checks the provider's signature headers against the raw body. The
// scheme is HMAC-SHA256 over "id.timestamp.body" with the shared secret
// (optionally "whsec_"-prefixed base64), and the signature header carries one
// or more space-separated "v1,<base64>" entries.
func Verify(secret, msgID, timestamp, signature string, body []byte) error {
	if msgID == "" || timestamp == "" || signature == "" {
		return ErrInvalidSignature
	}
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}
	if d := time.Since(time.Unix(ts, 0)); d > timestampTolerance || d < -timestampTolerance {
		return ErrInvalidSignature
	}

	key := secretBytes(secret)
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msgID + "." + timestamp + "."))
	mac.Write(body)
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, part := range strings.Fields(signature) {
		v, sig, ok := strings.Cut(part, ",")
		if !ok || v != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(want)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

func secretBytes(secret string) []byte {
	if s, ok := strings.CutPrefix(secret, "whsec_"); ok {
		if b, err := base64.StdEncoding.DecodeString(s); err == nil {
			return b
		}
	}
	return []byte(secret)
}

// Sign produces the "v1,<base64>" signature for the given message, used by
// tests and local tooling.
func Sign(secret, msgID, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, secretBytes(secret))
	mac.Write([]byte(msgID + "." + timestamp + "."))
	mac.Write(body)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
