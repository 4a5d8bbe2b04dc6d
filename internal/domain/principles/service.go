package principles

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"go.uber.org/zap"
)

// Service defines the business logic interface for principles
type Service interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []Principle
	Create(ctx context.Context, req CreatePrincipleRequest) (*Principle, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *logger.Logger

	mu   sync.Mutex
	list []Principle
}

// NewService creates a new principles service instance
func NewService(repo Repository, logger *logger.Logger) Service {
	return &service{repo: repo, logger: logger, list: []Principle{}}
}

func (s *service) Load(ctx context.Context) error {
	list, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.list = list
	s.mu.Unlock()

	s.logger.Info("principles loaded", zap.Int("count", len(list)))
	return nil
}

func (s *service) List(_ context.Context) []Principle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Principle, len(s.list))
	copy(out, s.list)
	return out
}

func (s *service) Create(ctx context.Context, req CreatePrincipleRequest) (*Principle, error) {
	if req.Text == "" {
		return nil, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Number within the category: Economic principles are chapter 1,
	// everything else chapter 2.
	inCategory := 0
	for _, p := range s.list {
		if p.Category == req.Category {
			inCategory++
		}
	}
	chapter := "2"
	if req.Category == CategoryEconomic {
		chapter = "1"
	}

	p := Principle{
		ID:        strconv.FormatInt(time.Now().UnixMilli(), 10),
		Content:   req.Text,
		Category:  req.Category,
		Number:    chapter + "." + strconv.Itoa(inCategory+1),
		Timestamp: time.Now().UTC(),
	}

	next := make([]Principle, len(s.list), len(s.list)+1)
	copy(next, s.list)
	next = append(next, p)

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, err
	}
	s.list = next

	s.logger.Info("principle saved",
		zap.String("category", p.Category),
		zap.String("number", p.Number),
		zap.Int("total", len(next)))
	return &p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.list {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	next := make([]Principle, 0, len(s.list)-1)
	next = append(next, s.list[:idx]...)
	next = append(next, s.list[idx+1:]...)

	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.list = next

	s.logger.Info("principle deleted",
		zap.String("id", id),
		zap.Int("remaining", len(next)))
	return nil
}
