package render

import "sync"

// Snapshot keeps the most recent rendering in memory so that it can be
// served later, e.g. by the web UI. Safe for concurrent use.
type Snapshot struct {
	mu    sync.RWMutex
	items []Item
	stats Stats
}

// NewSnapshot creates an empty Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// RenderItems implements Renderer.
func (s *Snapshot) RenderItems(items []Item) error {
	cp := make([]Item, len(items))
	copy(cp, items)

	s.mu.Lock()
	s.items = cp
	s.mu.Unlock()
	return nil
}

// PublishStats implements Renderer.
func (s *Snapshot) PublishStats(stats Stats) error {
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// View returns a copy of the last rendering.
func (s *Snapshot) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return View{Items: items, Stats: s.stats}
}
