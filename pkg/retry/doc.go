// Package retry holds the pure decision functions behind the client's
// retry behavior: which HTTP status codes are worth retrying, how long to
// back off between attempts, and how to read a server-supplied Retry-After
// hint. The functions are stateless; the request pipeline in the root
// package owns the loop that applies them.
package retry
