package lists

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/cache"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
)

const (
	KindCapture    = "capture"
	KindComparison = "comparison"

	MinCaptureCapacity = 5
	MaxCaptureCapacity = 9
	ComparisonCapacity = 2
)

var (
	ErrListFull  = errors.New("list is full")
	ErrDuplicate = errors.New("moonster is already in the list")
	ErrInvalidID = errors.New("moonster id must be positive")
	ErrNoSession = errors.New("session id is required")
)

// Entry is one selected moonster.
type Entry struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Service is a bounded, session scoped selection of moonsters.
type Service interface {
	Add(ctx context.Context, session string, entry Entry) ([]Entry, error)
	Remove(ctx context.Context, session string, id int64) ([]Entry, error)
	List(ctx context.Context, session string) ([]Entry, error)
	Contains(ctx context.Context, session string, id int64) (bool, error)
	Clear(ctx context.Context, session string) error
	Capacity() int
}

type service struct {
	store    cache.Store
	kind     string
	capacity int
	ttl      time.Duration

	// serializes read-modify-write cycles of this process
	mu sync.Mutex
}

// NewCaptureList returns the capture list. Its capacity is clamped to [5, 9].
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewCaptureList(store cache.Store, cfg config.Lists) Service {
	capacity := cfg.MaxCaptureList
	if capacity < MinCaptureCapacity {
		capacity = MinCaptureCapacity
	}
	if capacity > MaxCaptureCapacity {
		capacity = MaxCaptureCapacity
	}

	return &service{store: store, kind: KindCapture, capacity: capacity, ttl: cfg.SessionTTL}
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewComparisonList(store cache.Store, cfg config.Lists) Service {
	return &service{store: store, kind: KindComparison, capacity: ComparisonCapacity, ttl: cfg.SessionTTL}
}

func (s *service) Capacity() int {
	return s.capacity
}

func (s *service) key(session string) string {
	return "list:" + s.kind + ":" + session
}

func (s *service) load(ctx context.Context, session string) ([]Entry, error) {
	if len(strings.TrimSpace(session)) == 0 {
		return nil, ErrNoSession
	}

	entries := []Entry{}
	err := cache.GetJSON(ctx, s.store, s.key(session), &entries)
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		return nil, errors.Wrapf(err, "failed to load %s list", s.kind)
	}

	return entries, nil
}

func (s *service) save(ctx context.Context, session string, entries []Entry) error {
	if err := cache.SetJSON(ctx, s.store, s.key(session), entries, s.ttl); err != nil {
		return errors.Wrapf(err, "failed to save %s list", s.kind)
	}

	return nil
}

func (s *service) Add(ctx context.Context, session string, entry Entry) ([]Entry, error) {
	if entry.ID <= 0 {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx, session)
	if err != nil {
		return nil, err
	}

	for _, existing := range entries {
		if existing.ID == entry.ID {
			return entries, errors.Wrapf(ErrDuplicate, "id %d", entry.ID)
		}
	}

	if len(entries) >= s.capacity {
		return entries, errors.Wrapf(ErrListFull, "%s list holds at most %d", s.kind, s.capacity)
	}

	entries = append(entries, entry)

	return entries, s.save(ctx, session, entries)
}

// Remove drops id from the list. Removing an absent id is not an error.
func (s *service) Remove(ctx context.Context, session string, id int64) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx, session)
	if err != nil {
		return nil, err
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}

	if len(kept) == len(entries) {
		return kept, nil
	}

	return kept, s.save(ctx, session, kept)
}

func (s *service) List(ctx context.Context, session string) ([]Entry, error) {
	return s.load(ctx, session)
}

func (s *service) Contains(ctx context.Context, session string, id int64) (bool, error) {
	entries, err := s.load(ctx, session)
	if err != nil {
		return false, err
	}

	for _, entry := range entries {
		if entry.ID == id {
			return true, nil
		}
	}

	return false, nil
}

func (s *service) Clear(ctx context.Context, session string) error {
	if len(strings.TrimSpace(session)) == 0 {
		return ErrNoSession
	}

	if err := s.store.Delete(ctx, s.key(session)); err != nil {
		return errors.Wrapf(err, "failed to clear %s list", s.kind)
	}

	return nil
}
