package session

import (
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/app/models"
	"context"
	"sync"
	"time"
)

type sessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewSessionMemoryRepository() contracts.SessionRepository {
	return &sessionMemoryRepository{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (repo *sessionMemoryRepository) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	stored := *session
	if ttl > 0 && stored.ExpiresAt.IsZero() {
		stored.ExpiresAt = repo.now().Add(ttl)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.sessions[stored.SessionID] = stored
	return nil
}

func (repo *sessionMemoryRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	repo.mu.RLock()
	stored, ok := repo.sessions[sessionID]
	repo.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if stored.IsExpired(repo.now()) {
		repo.mu.Lock()
		delete(repo.sessions, sessionID)
		repo.mu.Unlock()
		return nil, nil
	}
	return &stored, nil
}

func (repo *sessionMemoryRepository) Delete(ctx context.Context, sessionID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.sessions, sessionID)
	return nil
}
