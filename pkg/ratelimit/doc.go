// Package ratelimit tracks the client-side request budget: how many
// requests have been issued in the current one-minute window against a
// configured ceiling.
//
// The tracker is advisory. Record never blocks and never rejects; it
// reports whether the call stayed within budget and when the window resets,
// and the request pipeline decides what to do with that information. Server
// throttling (429 responses) remains the authoritative limit.
package ratelimit
