package discord

import (
	"container/list"
	"sync"

	"toolshelf/backend/internal/grid"
)

// sessionStore keeps one grid view per bot message so every listing pages
// independently. The least recently used view is evicted past capacity.
type sessionStore struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	views    map[string]*list.Element
}

type session struct {
	messageID string
	// mu serialises interactions on the same message
	mu   sync.Mutex
	view *grid.View
}

func newSessionStore(capacity int) *sessionStore {
	if capacity < 1 {
		capacity = 1
	}
	return &sessionStore{
		capacity: capacity,
		order:    list.New(),
		views:    make(map[string]*list.Element),
	}
}

func (s *sessionStore) put(messageID string, v *grid.View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.views[messageID]; ok {
		el.Value.(*session).view = v
		s.order.MoveToFront(el)
		return
	}
	s.views[messageID] = s.order.PushFront(&session{messageID: messageID, view: v})
	for s.order.Len() > s.capacity {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.views, oldest.Value.(*session).messageID)
	}
}

func (s *sessionStore) get(messageID string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.views[messageID]
	if !ok {
		return nil, false
	}
	s.order.MoveToFront(el)
	return el.Value.(*session), true
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
