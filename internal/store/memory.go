package store

import (
	"sort"
	"sync"

	"interview-insights-go/internal/types"
)

// Memory is the in-process Store used by the service. Listing returns
// records ordered by creation date then id so derived views are
// deterministic for a given record set.
type Memory struct {
	mu          sync.RWMutex
	interviews  map[string]types.Interview
	summaries   map[string]types.SummaryRecord
	subscribers []func()
}

func NewMemory() *Memory {
	return &Memory{
		interviews: map[string]types.Interview{},
		summaries:  map[string]types.SummaryRecord{},
	}
}

func (m *Memory) CreateInterview(iv types.Interview) error {
	m.mu.Lock()
	m.interviews[iv.ID] = iv
	m.mu.Unlock()
	m.notify()
	return nil
}

func (m *Memory) GetInterview(id string) (types.Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	iv, ok := m.interviews[id]
	if !ok {
		return types.Interview{}, ErrNotFound
	}
	return iv, nil
}

func (m *Memory) ListInterviews() []types.Interview {
	m.mu.RLock()
	out := make([]types.Interview, 0, len(m.interviews))
	for _, iv := range m.interviews {
		out = append(out, iv)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *Memory) UpdateInterview(iv types.Interview) error {
	m.mu.Lock()
	if _, ok := m.interviews[iv.ID]; !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	m.interviews[iv.ID] = iv
	m.mu.Unlock()
	m.notify()
	return nil
}

func (m *Memory) DeleteInterview(id string) error {
	m.mu.Lock()
	if _, ok := m.interviews[id]; !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.interviews, id)
	m.mu.Unlock()
	m.notify()
	return nil
}

func (m *Memory) CreateSummary(rec types.SummaryRecord) error {
	m.mu.Lock()
	m.summaries[rec.ID] = rec
	m.mu.Unlock()
	m.notify()
	return nil
}

func (m *Memory) GetSummary(id string) (types.SummaryRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.summaries[id]
	if !ok {
		return types.SummaryRecord{}, ErrNotFound
	}
	return rec, nil
}

func (m *Memory) ListSummaries() []types.SummaryRecord {
	m.mu.RLock()
	out := make([]types.SummaryRecord, 0, len(m.summaries))
	for _, rec := range m.summaries {
		out = append(out, rec)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *Memory) UpdateSummary(rec types.SummaryRecord) error {
	m.mu.Lock()
	if _, ok := m.summaries[rec.ID]; !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	m.summaries[rec.ID] = rec
	m.mu.Unlock()
	m.notify()
	return nil
}

func (m *Memory) DeleteSummary(id string) error {
	m.mu.Lock()
	if _, ok := m.summaries[id]; !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.summaries, id)
	m.mu.Unlock()
	m.notify()
	return nil
}

// Subscribe registers fn to run after every mutation. Callbacks run on the
// mutating goroutine and must not call back into the store while holding
// external locks.
func (m *Memory) Subscribe(fn func()) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}

func (m *Memory) notify() {
	m.mu.RLock()
	subs := make([]func(), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
