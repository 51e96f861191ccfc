// Package email delivers reminder notifications. The Dispatcher contract
// is the seam between the reminder evaluator and the actual transport;
// tests substitute a recording fake.
package email

// Dispatcher sends one notification to one recipient. Any returned error
// is treated uniformly as "delivery failed" by the caller.
type Dispatcher interface {
	Send(to, subject, body string) error
}
