package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestContextConcurrentAccess tests that context values can be safely accessed concurrently.
func TestContextConcurrentAccess(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())

	const numGoroutines = 50
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			assert.True(t, shouldSuppressHeader(ctx), "Goroutine %d: shouldSuppressHeader should be true", id)
		}(i)
	}
	wg.Wait()
}

// TestContextIsolation tests that different contexts maintain isolation.
func TestContextIsolation(t *testing.T) {
	baseCtx := context.Background()
	suppressed := withSuppressHeader(baseCtx)

	assert.False(t, shouldSuppressHeader(baseCtx))
	assert.True(t, shouldSuppressHeader(suppressed))

	// A foreign value under the same key type is not mistaken for a flag
	other := context.WithValue(baseCtx, suppressHeaderKey, "yes")
	assert.False(t, shouldSuppressHeader(other))
}
