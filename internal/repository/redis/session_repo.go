package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/terranova/internal/domain"
	"github.com/DRSN-tech/terranova/internal/repository/redis/converter"
	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/DRSN-tech/terranova/pkg/clients"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/jitter"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"

	retryBaseDelay = 5 * time.Millisecond
	retryMaxDelay  = 100 * time.Millisecond
)

// SessionRepo хранит снимки сессий в Redis в виде JSON.
// Изменения одной сессии сериализуются оптимистичной транзакцией WATCH/MULTI.
type SessionRepo struct {
	client     *clients.RedisClient
	conv       converter.SessionConverter
	ttl        time.Duration
	maxRetries int
	logger     logger.Logger
}

func NewSessionRepo(client *clients.RedisClient, conv converter.SessionConverter,
	ttl time.Duration, maxRetries int, logger logger.Logger) *SessionRepo {
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &SessionRepo{
		client:     client,
		conv:       conv,
		ttl:        ttl,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Load возвращает снимок сессии. Для отсутствующего ключа возвращается пустая сессия.
func (s *SessionRepo) Load(ctx context.Context, sessionID string) (domain.Session, error) {
	return s.read(ctx, s.client.Client, sessionKey(sessionID))
}

// Update применяет fn к актуальному снимку и записывает результат, только если
// ключ не изменился с момента чтения. При конфликте попытка повторяется с
// экспоненциальной задержкой; после maxRetries возвращается ErrSessionConflict.
// Если fn вернула ошибку, ничего не записывается.
func (s *SessionRepo) Update(ctx context.Context, sessionID string, fn usecase.SessionMutation) (domain.Session, error) {
	key := sessionKey(sessionID)

	var (
		result domain.Session
		fnErr  error
	)

	txf := func(tx *r.Tx) error {
		cur, err := s.read(ctx, tx, key)
		if err != nil {
			return err
		}

		next, err := fn(cur)
		if err != nil {
			result, fnErr = cur, err
			return nil
		}

		data, err := json.Marshal(s.conv.ToRedisModel(next))
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe r.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = next
		return nil
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		fnErr = nil

		err := s.client.Client.Watch(ctx, txf, key)
		if err == nil {
			return result, fnErr
		}

		if !errors.Is(err, r.TxFailedErr) {
			return domain.Session{}, e.Wrap(whereami.WhereAmI(), err)
		}

		delay := jitter.ExponentialBackoff(retryBaseDelay, retryMaxDelay, attempt, jitter.DefaultJitter)
		s.logger.Debugf("session %s modified concurrently, retry %d in %v", sessionID, attempt+1, delay)

		select {
		case <-ctx.Done():
			return domain.Session{}, e.Wrap(whereami.WhereAmI(), ctx.Err())
		case <-time.After(delay):
		}
	}

	s.logger.Warnf("session %s: giving up after %d attempts", sessionID, s.maxRetries)
	return domain.Session{}, e.Wrap(whereami.WhereAmI(), e.ErrSessionConflict)
}

// read читает и декодирует снимок. Повреждённое значение логируется и
// считается пустой сессией, чтобы пользователь не застрял с нечитаемым ключом.
func (s *SessionRepo) read(ctx context.Context, c getter, key string) (domain.Session, error) {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return domain.Session{}, nil
	}
	if err != nil {
		s.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return domain.Session{}, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.SessionRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		s.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(fmt.Sprintf("key %s", key), err))
		return domain.Session{}, nil
	}

	return s.conv.ToDomain(&model), nil
}

// getter реализуют и *redis.Client, и *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *r.StringCmd
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
