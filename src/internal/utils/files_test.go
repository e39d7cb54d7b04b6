package utils

import (
	"io"
	"strings"
	"testing"
)

// Mock closer for testing
type mockCloser struct {
	shouldError bool
	closed      bool
}

func (m *mockCloser) Close() error {
	m.closed = true
	if m.shouldError {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func TestCloseOrWarn_Success(t *testing.T) {
	mock := &mockCloser{shouldError: false}

	CloseOrWarn(mock)

	if !mock.closed {
		t.Error("Expected Close to be called")
	}
}

func TestCloseOrWarn_Error(t *testing.T) {
	mock := &mockCloser{shouldError: true}

	// Should not panic, only warn
	CloseOrWarn(mock)

	if !mock.closed {
		t.Error("Expected Close to be called")
	}
}

func TestCloseOrWarn_WithRealCloser(t *testing.T) {
	reader := strings.NewReader("test content")
	closer := io.NopCloser(reader)

	CloseOrWarn(closer)
}
