package repository

import (
	"sync"
	"time"

	"github.com/unclebandit/fabricator-bff/internal/model"
)

type PhotoStoreInterface interface {
	Add(sessionID string, expiresAt time.Time, p model.Photo)
	List(sessionID, kind, recordID string) []model.Photo
	DropSession(sessionID string) int
}

type photoKey struct {
	kind     string
	recordID string
}

// PhotoStore keeps captured photos per session and record until the session
// logs out or expires. Nothing is persisted.
type PhotoStore struct {
	mu       sync.Mutex
	sessions map[string]map[photoKey][]model.Photo
	expires  map[string]time.Time
	now      func() time.Time
}

func NewPhotoStore() *PhotoStore {
	return &PhotoStore{
		sessions: make(map[string]map[photoKey][]model.Photo),
		expires:  make(map[string]time.Time),
		now:      time.Now,
	}
}

// Add stores p for sessionID, which is held until expiresAt. Sessions already
// past their expiry are swept first.
func (s *PhotoStore) Add(sessionID string, expiresAt time.Time, p model.Photo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.expires[sessionID] = expiresAt
	records, ok := s.sessions[sessionID]
	if !ok {
		records = make(map[photoKey][]model.Photo)
		s.sessions[sessionID] = records
	}
	k := photoKey{kind: p.RecordKind, recordID: p.RecordID}
	records[k] = append(records[k], p)
}

func (s *PhotoStore) List(sessionID, kind, recordID string) []model.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expiredLocked(sessionID) {
		s.dropLocked(sessionID)
		return []model.Photo{}
	}
	photos := s.sessions[sessionID][photoKey{kind: kind, recordID: recordID}]
	out := make([]model.Photo, len(photos))
	copy(out, photos)
	return out
}

// DropSession discards everything held for sessionID and returns how many photos went.
func (s *PhotoStore) DropSession(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropLocked(sessionID)
}

func (s *PhotoStore) sweepLocked() int {
	n := 0
	for id := range s.expires {
		if s.expiredLocked(id) {
			n += s.dropLocked(id)
		}
	}
	return n
}

func (s *PhotoStore) expiredLocked(sessionID string) bool {
	exp, ok := s.expires[sessionID]
	return ok && !s.now().Before(exp)
}

func (s *PhotoStore) dropLocked(sessionID string) int {
	n := 0
	for _, photos := range s.sessions[sessionID] {
		n += len(photos)
	}
	delete(s.sessions, sessionID)
	delete(s.expires, sessionID)
	return n
}

var _ PhotoStoreInterface = (*PhotoStore)(nil)
