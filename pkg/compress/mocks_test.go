package compress

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"
)

// MockEncoder implements Encoder for testing.
type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Name() string {
	return "mock"
}

func (m *MockEncoder) Encode(ctx context.Context, src, dst string, opts EncodeOptions) error {
	args := m.Called(ctx, src, dst, opts)
	return args.Error(0)
}

// writesBytes makes a mocked Encode produce an output file of n bytes.
func writesBytes(n int) func(mock.Arguments) {
	return func(args mock.Arguments) {
		dst := args.String(2)
		_ = os.WriteFile(dst, make([]byte, n), 0644)
	}
}
