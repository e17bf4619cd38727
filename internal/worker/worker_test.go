package worker

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3, zerolog.Nop())
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0, zerolog.Nop())
	done := false
	p.Submit(func() { done = true })
	p.Submit(nil)
	p.Stop()
	require.True(t, done)
}

func TestPoolRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	p := NewPool(1, zerolog.New(&buf))
	ran := false
	p.Submit(func() { panic("boom") })
	p.Submit(func() { ran = true })
	p.Stop()
	require.True(t, ran)
	require.Contains(t, buf.String(), "task panicked")
	require.Contains(t, buf.String(), "boom")
}

func TestPoolSubmitAfterStop(t *testing.T) {
	var buf bytes.Buffer
	p := NewPool(1, zerolog.New(&buf))
	p.Stop()
	p.Stop()
	require.NotPanics(t, func() { p.Submit(func() {}) })
	require.Contains(t, buf.String(), "dropped")
}

func TestPoolDropsWhenQueueFull(t *testing.T) {
	var buf bytes.Buffer
	p := NewPool(1, zerolog.New(&buf).Level(zerolog.DebugLevel))

	started := make(chan struct{})
	release := make(chan struct{})
	p.Submit(func() {
		close(started)
		<-release
	})
	<-started

	var mu sync.Mutex
	ran := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			ran++
			mu.Unlock()
		})
	}
	require.Contains(t, buf.String(), "queue full, task dropped")

	close(release)
	p.Stop()
	require.Equal(t, 4, ran)
}
