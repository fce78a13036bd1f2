package note

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// memStore is an in-memory stand-in for both repositories with the same
// observable semantics as the PostgreSQL ones. Used by property tests.
type memStore struct {
	mu       sync.Mutex
	clock    time.Time
	nextNote int64
	nextCat  int64
	notes    map[int64]domain.Note
	cats     map[int64]domain.Category
	links    map[int64]map[int64]struct{} // note id -> category ids
}

var (
	_ noteRepo     = (*memStore)(nil)
	_ categoryRepo = (*memCategories)(nil)
	_ txManager    = passthroughTx{}
)

func newMemStore() *memStore {
	return &memStore{
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		notes: make(map[int64]domain.Note),
		cats:  make(map[int64]domain.Category),
		links: make(map[int64]map[int64]struct{}),
	}
}

// tick returns a strictly increasing timestamp. Caller holds mu.
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}

func (m *memStore) addCategory(name string) domain.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextCat++
	c := domain.Category{ID: m.nextCat, Name: name, CreatedAt: m.tick()}
	m.cats[c.ID] = c
	return c
}

func (m *memStore) deleteCategory(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cats, id)
	for _, set := range m.links {
		delete(set, id)
	}
}

func (m *memStore) sorted(filter func(domain.Note) bool) []domain.Note {
	out := []domain.Note{}
	for _, n := range m.notes {
		if filter(n) {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b domain.Note) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

func (m *memStore) ListByArchived(_ context.Context, archived bool) ([]domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(n domain.Note) bool { return n.Archived == archived }), nil
}

func (m *memStore) ListActiveByCategory(_ context.Context, categoryID int64) ([]domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(n domain.Note) bool {
		_, linked := m.links[n.ID][categoryID]
		return !n.Archived && linked
	}), nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &n, nil
}

func (m *memStore) GetForUpdate(ctx context.Context, id int64) (*domain.Note, error) {
	return m.GetByID(ctx, id)
}

func (m *memStore) Create(_ context.Context, fields domain.NoteFields) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextNote++
	now := m.tick()
	n := domain.Note{
		ID:        m.nextNote,
		Title:     fields.Title,
		Content:   fields.Content,
		Archived:  fields.Archived,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.notes[n.ID] = n
	m.links[n.ID] = make(map[int64]struct{})
	return &n, nil
}

func (m *memStore) mutate(id int64, fn func(n *domain.Note)) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	fn(&n)
	n.UpdatedAt = m.tick()
	m.notes[id] = n
	return &n, nil
}

func (m *memStore) Update(_ context.Context, id int64, fields domain.NoteFields) (*domain.Note, error) {
	return m.mutate(id, func(n *domain.Note) {
		n.Title = fields.Title
		n.Content = fields.Content
		n.Archived = fields.Archived
	})
}

func (m *memStore) SetArchived(_ context.Context, id int64, archived bool) (*domain.Note, error) {
	return m.mutate(id, func(n *domain.Note) { n.Archived = archived })
}

func (m *memStore) Touch(_ context.Context, id int64) (*domain.Note, error) {
	return m.mutate(id, func(*domain.Note) {})
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.notes, id)
	delete(m.links, id)
	return nil
}

func (m *memStore) LinkCategories(_ context.Context, noteID int64, categoryIDs []int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	added := 0
	for _, id := range categoryIDs {
		if _, ok := m.cats[id]; !ok {
			return 0, domain.ErrNotFound
		}
		if _, ok := m.links[noteID][id]; !ok {
			m.links[noteID][id] = struct{}{}
			added++
		}
	}
	return added, nil
}

func (m *memStore) UnlinkCategory(_ context.Context, noteID, categoryID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.links[noteID][categoryID]
	delete(m.links[noteID], categoryID)
	return ok, nil
}

func (m *memStore) ReplaceCategories(ctx context.Context, noteID int64, categoryIDs []int64) error {
	m.mu.Lock()
	m.links[noteID] = make(map[int64]struct{})
	m.mu.Unlock()
	_, err := m.LinkCategories(ctx, noteID, categoryIDs)
	return err
}

// memCategories exposes the category side of memStore. GetByID clashes
// with the note repo method, so it lives on its own type.
type memCategories struct{ *memStore }

func (c memCategories) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cat, ok := c.cats[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &cat, nil
}

func (c memCategories) ExistingIDs(_ context.Context, ids []int64) ([]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []int64{}
	for _, id := range ids {
		if _, ok := c.cats[id]; ok && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (c memCategories) ListByNoteIDs(_ context.Context, noteIDs []int64) ([]domain.CategoryWithNoteID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.CategoryWithNoteID
	for _, nid := range noteIDs {
		var cats []domain.Category
		for cid := range c.links[nid] {
			cats = append(cats, c.cats[cid])
		}
		slices.SortFunc(cats, func(a, b domain.Category) int {
			return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
		})
		for _, cat := range cats {
			out = append(out, domain.CategoryWithNoteID{NoteID: nid, Category: cat})
		}
	}
	return out, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
