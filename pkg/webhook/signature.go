package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader is the HTTP header carrying the webhook signature.
const SignatureHeader = "Paykit-Signature"

// Tolerance bounds how far a signature timestamp may drift from the
// receiver's clock, in either direction. Deliveries outside the window are
// rejected to defeat replay of captured requests.
const Tolerance = 300 * time.Second

// Sign computes the signature header value for a payload at the given
// time. Senders and tests use it; receivers only need Verify.
func Sign(secret string, payload []byte, at time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("%w: secret is required", ErrInvalidConfiguration)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: payload cannot be empty", ErrInvalidPayload)
	}

	ts := at.Unix()
	return fmt.Sprintf("t=%d,v1=%s", ts, computeMAC(secret, ts, payload)), nil
}

// Verify reports whether header authenticates payload under secret. It
// fails closed: any missing component, malformed timestamp, stale delivery,
// or MAC mismatch yields false. It never panics and never returns an error.
func Verify(secret string, payload []byte, header string) bool {
	return verifyAt(secret, payload, header, time.Now())
}

func verifyAt(secret string, payload []byte, header string, now time.Time) bool {
	if secret == "" || len(payload) == 0 {
		return false
	}

	ts, mac, ok := parseHeader(header)
	if !ok {
		return false
	}

	drift := now.Unix() - ts
	if drift < 0 {
		drift = -drift
	}
	if drift > int64(Tolerance/time.Second) {
		return false
	}

	expected := computeMAC(secret, ts, payload)
	// Constant-time comparison; a plain string equality would leak how
	// many leading characters of the MAC an attacker got right.
	return hmac.Equal([]byte(expected), []byte(mac))
}

// parseHeader splits "t=<seconds>,v1=<hex>" into its components. Both
// parts are required; unknown parts are ignored for forward compatibility
// with future signature versions.
func parseHeader(header string) (ts int64, mac string, ok bool) {
	var haveTS bool
	for part := range strings.SplitSeq(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, "", false
			}
			ts = parsed
			haveTS = true
		case "v1":
			mac = value
		}
	}
	if !haveTS || mac == "" {
		return 0, "", false
	}
	return ts, mac, true
}

func computeMAC(secret string, ts int64, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(h, "%d.", ts)
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
