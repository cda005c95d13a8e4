// Package webhook verifies and parses inbound Paykit webhook deliveries.
//
// Every delivery carries a Paykit-Signature header of the form
//
//	t=<unix seconds>,v1=<hex HMAC-SHA256>
//
// where the MAC is computed over "<timestamp>.<raw body>" with the
// endpoint's signing secret as key. Verification must run against the exact
// raw bytes received; re-serializing the JSON first will change whitespace
// or key order and the MACs will no longer match.
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//	    body, _ := io.ReadAll(r.Body)
//	    event, err := webhook.VerifyAndParse(secret, body, r.Header.Get(webhook.SignatureHeader))
//	    if err != nil {
//	        w.WriteHeader(http.StatusUnauthorized)
//	        return
//	    }
//	    // event.Type, event.DataAs(...)
//	}
//
// Verify is deliberately a boolean: malformed headers, stale timestamps,
// and signature mismatches all return false, so a caller can never mistake
// a propagated error for "maybe valid".
package webhook
