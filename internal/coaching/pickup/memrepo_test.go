package pickup_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/2beens/fitcoach/internal/coaching/blocks"
	"github.com/2beens/fitcoach/internal/coaching/pickup"
	"github.com/2beens/fitcoach/internal/coaching/schedule"
)

// memRepo is an in-memory store with the same contract as pickup.Repo.
type memRepo struct {
	mu sync.Mutex

	clients     map[string]pickup.Client
	assignments []pickup.Assignment
	progress    map[string]*pickup.Progress
	schedules   map[string][]schedule.Entry
	templates   map[string]pickup.Template
	blocks      map[string][]blocks.Block
	childRows   *blocks.ChildRows

	blocksErr    error
	childRowsErr error

	nextProgressID  int64
	progressCreates int
	scheduleCalls   int
	blocksCalls     int
}

func newMemRepo() *memRepo {
	return &memRepo{
		clients:   make(map[string]pickup.Client),
		progress:  make(map[string]*pickup.Progress),
		schedules: make(map[string][]schedule.Entry),
		templates: make(map[string]pickup.Template),
		blocks:    make(map[string][]blocks.Block),
		childRows: &blocks.ChildRows{},
	}
}

func (m *memRepo) Client(_ context.Context, clientID string) (*pickup.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[clientID]
	if !ok {
		return nil, pickup.ErrClientNotFound
	}
	return &c, nil
}

func (m *memRepo) ActiveAssignments(_ context.Context, clientID string) ([]pickup.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var active []pickup.Assignment
	for _, a := range m.assignments {
		if a.ClientID == clientID && a.Status == "active" {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active, nil
}

func (m *memRepo) GetOrCreateProgress(_ context.Context, assignmentID string) (*pickup.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.progress[assignmentID]
	if !ok {
		m.nextProgressID++
		m.progressCreates++
		p = &pickup.Progress{
			ID:           m.nextProgressID,
			AssignmentID: assignmentID,
			UpdatedAt:    time.Now(),
		}
		m.progress[assignmentID] = p
	}
	progressCopy := *p
	return &progressCopy, nil
}

func (m *memRepo) UpdateProgress(_ context.Context, assignmentID string, from, to schedule.Cursor, completed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.progress[assignmentID]
	if !ok || p.IsCompleted || p.Cursor != from {
		return pickup.ErrProgressChanged
	}
	p.Cursor = to
	p.IsCompleted = completed
	p.UpdatedAt = time.Now()
	return nil
}

func (m *memRepo) ScheduleEntries(_ context.Context, programID string) ([]schedule.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleCalls++
	return append([]schedule.Entry(nil), m.schedules[programID]...), nil
}

func (m *memRepo) Template(_ context.Context, templateID string) (*pickup.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.templates[templateID]
	if !ok {
		return nil, pickup.ErrTemplateNotFound
	}
	return &t, nil
}

func (m *memRepo) Blocks(_ context.Context, templateID string) ([]blocks.Block, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocksCalls++
	if m.blocksErr != nil {
		return nil, m.blocksErr
	}
	return m.blocks[templateID], nil
}

func (m *memRepo) ChildRows(_ context.Context, _ []string) (*blocks.ChildRows, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.childRowsErr != nil {
		return nil, m.childRowsErr
	}
	return m.childRows, nil
}
