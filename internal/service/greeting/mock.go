package greeting

import (
	"context"
	"sync"
)

// MockService implements Service for unit tests. Each call returns the
// configured greeting or error and is counted.
type MockService struct {
	mu      sync.Mutex
	message string
	err     error
	block   bool
	calls   int
}

// NewMockService returns a mock answering with message.
func NewMockService(message string) *MockService {
	return &MockService{message: message}
}

// NewFailingMockService returns a mock answering with err.
func NewFailingMockService(err error) *MockService {
	return &MockService{err: err}
}

// NewBlockingMockService returns a mock whose calls never resolve until ctx ends.
func NewBlockingMockService() *MockService {
	return &MockService{block: true}
}

func (m *MockService) Hello(ctx context.Context) (*Greeting, error) {
	m.mu.Lock()
	m.calls++
	block, msg, err := m.block, m.message, m.err
	m.mu.Unlock()

	if block {
		<-ctx.Done()
		return nil, &UpstreamError{Kind: UpstreamErrorKindUnavailable, cause: ErrUnavailable, err: ctx.Err()}
	}
	if err != nil {
		return nil, err
	}
	return &Greeting{Message: msg}, nil
}

// Calls reports how many fetches were issued.
func (m *MockService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
