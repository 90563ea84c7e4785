package vcs

import (
	"context"
)

// MockCall records one provider invocation for assertions.
type MockCall struct {
	Op      string
	WC      WorkingCopy
	Files   []string
	Message string
}

// MockProvider is an in-memory Provider for tests. It records every call and
// returns the configured results and errors.
type MockProvider struct {
	Calls []MockCall

	CheckoutResult Result
	CheckoutErr    error
	AddResult      Result
	AddErr         error
	CommitResult   Result
	CommitErr      error
}

var _ Provider = (*MockProvider)(nil)

// Checkout implements Provider.
func (m *MockProvider) Checkout(ctx context.Context, wc WorkingCopy) (Result, error) {
	m.Calls = append(m.Calls, MockCall{Op: "checkout", WC: wc})
	return m.CheckoutResult, m.CheckoutErr
}

// Add implements Provider.
func (m *MockProvider) Add(ctx context.Context, wc WorkingCopy, files []string, message string) (Result, error) {
	m.Calls = append(m.Calls, MockCall{Op: "add", WC: wc, Files: files, Message: message})
	return m.AddResult, m.AddErr
}

// Commit implements Provider.
func (m *MockProvider) Commit(ctx context.Context, wc WorkingCopy, files []string, message string) (Result, error) {
	m.Calls = append(m.Calls, MockCall{Op: "commit", WC: wc, Files: files, Message: message})
	return m.CommitResult, m.CommitErr
}

// Ops returns the operation names in call order.
func (m *MockProvider) Ops() []string {
	ops := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		ops = append(ops, c.Op)
	}
	return ops
}
