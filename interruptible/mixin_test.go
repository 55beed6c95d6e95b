package interruptible_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/localsearch/interruptible"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_NoTimeoutRunsToCompletion(t *testing.T) {
	var m interruptible.Mixin
	ran := false
	err := m.Go(0, func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, m.TimeoutExpired())
}

func TestGo_TimeoutSetsFlagAndCallsHook(t *testing.T) {
	var m interruptible.Mixin
	hookCalled := make(chan struct{}, 1)
	m.OnTimeoutExpired(func() { hookCalled <- struct{}{} })

	err := m.Go(10*time.Millisecond, func() error {
		for !m.TimeoutExpired() {
			time.Sleep(time.Millisecond)
		}
		return nil
	})
	require.NoError(t, err)
	assert.True(t, m.TimeoutExpired())

	select {
	case <-hookCalled:
	case <-time.After(time.Second):
		t.Fatal("timeout hook was never invoked")
	}
}

func TestAbort_IsIndependentOfTimeout(t *testing.T) {
	var m interruptible.Mixin
	m.Abort()
	assert.True(t, m.Aborted())
	assert.False(t, m.TimeoutExpired())
}

func TestReset_ClearsBothFlags(t *testing.T) {
	var m interruptible.Mixin
	m.Abort()
	m.Interrupt()
	m.Reset()
	assert.False(t, m.Aborted())
	assert.False(t, m.TimeoutExpired())
}
