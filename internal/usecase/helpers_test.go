package usecase

import (
	"sync"
	"time"

	"dl_orcamentos/internal/domain/entities"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type recordingNotifier struct {
	mu    sync.Mutex
	items []entities.Notification
}

func (r *recordingNotifier) Notify(n entities.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *recordingNotifier) all() []entities.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.Notification(nil), r.items...)
}

func (r *recordingNotifier) last() (entities.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return entities.Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

type fakeState struct {
	mu    sync.Mutex
	items map[int64]entities.Orcamento
}

func newFakeState(quotes ...entities.Orcamento) *fakeState {
	s := &fakeState{items: map[int64]entities.Orcamento{}}
	for _, o := range quotes {
		s.items[o.ID] = o
	}
	return s
}

func (s *fakeState) Get(id int64) (entities.Orcamento, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.items[id]
	return o, ok
}

func (s *fakeState) Replace(o entities.Orcamento) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[o.ID]; !ok {
		return false
	}
	s.items[o.ID] = o
	return true
}

func ts(s string) entities.Timestamp {
	t, err := entities.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return t
}

func ids(quotes []entities.Orcamento) []int64 {
	out := make([]int64, 0, len(quotes))
	for _, o := range quotes {
		out = append(out, o.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
