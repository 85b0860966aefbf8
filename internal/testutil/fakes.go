// Package testutil provides testing utilities.
package testutil

import (
	"sync"
	"time"

	"todo/internal/render"
	"todo/internal/storage"
)

// FaultyKV wraps an in-memory KV and lets tests inject errors.
type FaultyKV struct {
	*storage.Memory

	// Error injection for testing
	GetErr   error
	PutErr   error
	CloseErr error

	mu   sync.Mutex
	puts int
}

// NewFaultyKV creates a FaultyKV with no faults armed.
func NewFaultyKV() *FaultyKV {
	return &FaultyKV{Memory: storage.NewMemory()}
}

// Get implements storage.KV.
func (f *FaultyKV) Get(key string) ([]byte, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.Memory.Get(key)
}

// Put implements storage.KV.
func (f *FaultyKV) Put(key string, value []byte) error {
	f.mu.Lock()
	f.puts++
	f.mu.Unlock()
	if f.PutErr != nil {
		return f.PutErr
	}
	return f.Memory.Put(key, value)
}

// Close implements storage.KV. The data is kept so that one FaultyKV can
// back several dispatcher runs.
func (f *FaultyKV) Close() error {
	return f.CloseErr
}

// Puts returns how many times Put was called, including failed calls.
func (f *FaultyKV) Puts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

// RecordingRenderer records every call it receives.
type RecordingRenderer struct {
	mu    sync.Mutex
	Items [][]render.Item
	Stats []render.Stats

	// Error injection for testing
	RenderErr error
}

// RenderItems implements render.Renderer.
func (r *RecordingRenderer) RenderItems(items []render.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]render.Item, len(items))
	copy(cp, items)
	r.Items = append(r.Items, cp)
	return r.RenderErr
}

// PublishStats implements render.Renderer.
func (r *RecordingRenderer) PublishStats(stats render.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Stats = append(r.Stats, stats)
	return nil
}

// Renders returns how many times RenderItems was called.
func (r *RecordingRenderer) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Items)
}

// LastItems returns the most recent rendering, or nil.
func (r *RecordingRenderer) LastItems() []render.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Items) == 0 {
		return nil
	}
	return r.Items[len(r.Items)-1]
}

// LastStats returns the most recent stats, or the zero value.
func (r *RecordingRenderer) LastStats() render.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Stats) == 0 {
		return render.Stats{}
	}
	return r.Stats[len(r.Stats)-1]
}

// StepClock returns a clock that starts at start and advances by step on
// every call.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}

// FrozenClock returns a clock that always reports t.
func FrozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// FailingWriter is an io.Writer whose writes always fail with Err.
type FailingWriter struct {
	Err error
}

// Write implements io.Writer.
func (w FailingWriter) Write(p []byte) (int, error) {
	return 0, w.Err
}
