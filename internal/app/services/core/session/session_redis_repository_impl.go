package session

import (
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type sessionRedisRepository struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionRedisRepository(redisRepository contracts.RedisRepository) contracts.SessionRepository {
	return &sessionRedisRepository{
		RedisRepository: redisRepository,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
}

func (repo *sessionRedisRepository) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return repo.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

func (repo *sessionRedisRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := repo.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, nil
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (repo *sessionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	return repo.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
