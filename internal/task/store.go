package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"todo/internal/logger"
	"todo/internal/render"
	"todo/internal/storage"
)

// DefaultKey is the storage key the collection is persisted under.
const DefaultKey = "tasks"

// ErrRender wraps renderer failures. The collection and its persisted copy
// are unaffected.
var ErrRender = errors.New("failed to render tasks")

// Store owns the task collection. Every mutation is written through to the
// key-value store and then re-rendered. Methods are safe for concurrent use;
// calls are serialized.
type Store struct {
	mu       sync.Mutex
	kv       storage.KV
	key      string
	renderer render.Renderer
	ids      IDGenerator
	now      func() time.Time
	log      *logger.Logger

	tasks []Task // insertion order
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithIDs sets the id generator. Defaults to TimeIDs.
func WithIDs(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock sets the time source used for createdAt and time-based ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an empty Store. Call Load to read persisted tasks.
func New(kv storage.KV, r render.Renderer, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		key:      DefaultKey,
		renderer: r,
		ids:      &TimeIDs{},
		now:      time.Now,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = render.Discard
	}
	return s
}

// Open creates a Store, loads persisted tasks and renders once.
func Open(kv storage.KV, r render.Renderer, opts ...Option) (*Store, error) {
	s := New(kv, r, opts...)
	if err := s.Load(); err != nil {
		return nil, err
	}
	if err := s.Render(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory collection with the persisted one.
// A missing key or data that does not decode yields an empty collection;
// only storage read failures are returned.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil

	data, err := s.kv.Get(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.Debugw("no persisted tasks", "key", s.key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read tasks: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Debugw("ignoring unreadable persisted tasks", "key", s.key, "error", err)
		return nil
	}
	s.tasks = tasks
	s.log.Debugw("loaded tasks", "key", s.key, "count", len(tasks))
	return nil
}

// Add appends a task with the trimmed text. Text that is empty after
// trimming is ignored: nothing is stored or rendered and added is false.
func (s *Store) Add(text string) (t Task, added bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t = Task{
		ID:        s.ids.NewID(now, s.has),
		Text:      text,
		CreatedAt: now,
	}
	s.tasks = append(s.tasks, t)
	s.log.Debugw("task added", "id", t.ID)

	return t, true, s.saveAndRender()
}

// Toggle flips the completed flag of the task with id. An unknown id
// changes nothing; the collection is still persisted and rendered.
func (s *Store) Toggle(id string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			found = true
		}
	}
	s.log.Debugw("task toggled", "id", id, "found", found)

	return found, s.saveAndRender()
}

// Delete removes the task with id. An unknown id changes nothing; the
// collection is still persisted and rendered.
func (s *Store) Delete(id string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	s.log.Debugw("task deleted", "id", id, "found", found)

	return found, s.saveAndRender()
}

// Render hands the current view and stats to the renderer.
func (s *Store) Render() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render()
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// View returns the rendered form of the collection without notifying the
// renderer.
func (s *Store) View() render.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return render.View{Items: s.items(), Stats: s.stats()}
}

// Stats returns the current counters.
func (s *Store) Stats() render.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats()
}

func (s *Store) saveAndRender() error {
	perr := s.persist()
	if perr != nil {
		s.log.Warnw("failed to persist tasks", "key", s.key, "error", perr)
	}
	rerr := s.render()
	if perr != nil {
		return perr
	}
	return rerr
}

// persist overwrites the stored collection.
func (s *Store) persist() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := s.kv.Put(s.key, data); err != nil {
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	return nil
}

func (s *Store) render() error {
	if err := s.renderer.RenderItems(s.items()); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	if err := s.renderer.PublishStats(s.stats()); err != nil {
		return fmt.Errorf("%w: stats: %w", ErrRender, err)
	}
	return nil
}

// items builds view records newest first. Tasks created at the same
// instant are ordered most recently appended first.
func (s *Store) items() []render.Item {
	items := make([]render.Item, 0, len(s.tasks))
	for i := len(s.tasks) - 1; i >= 0; i-- {
		t := s.tasks[i]
		items = append(items, render.Item{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			CreatedAt: t.CreatedAt,
			HTML:      render.EscapeHTML(t.Text),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

func (s *Store) stats() render.Stats {
	st := render.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	return st
}

func (s *Store) has(id string) bool {
	for _, t := range s.tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
