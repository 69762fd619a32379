package llm

import "context"

// MockClient is a scripted Client for tests and offline runs. Responses are
// returned in order; Err, when set, is returned for every call instead.
type MockClient struct {
	Responses []string
	Err       error

	// Calls records every request received, in order.
	Calls []ClassifyRequest

	next int
}

// Classify returns the next scripted response.
func (m *MockClient) Classify(_ context.Context, req ClassifyRequest) (string, error) {
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return "", m.Err
	}
	if m.next >= len(m.Responses) {
		return "", nil
	}
	resp := m.Responses[m.next]
	m.next++
	return resp, nil
}

// Close is a no-op.
func (m *MockClient) Close() error { return nil }
