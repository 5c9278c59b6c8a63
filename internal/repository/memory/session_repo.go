package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/terranova/internal/domain"
	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SessionRepo хранит сессии в памяти процесса: не больше maxEntries записей,
// каждая живёт ttl с момента последней записи.
type SessionRepo struct {
	mu    sync.Mutex // сериализует чтение-изменение-запись
	cache *expirable.LRU[string, domain.Session]
}

func NewSessionRepo(maxEntries int, ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		cache: expirable.NewLRU[string, domain.Session](maxEntries, nil, ttl),
	}
}

// Load возвращает снимок сессии или пустую сессию, если её нет или она истекла.
func (r *SessionRepo) Load(_ context.Context, sessionID string) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, _ := r.cache.Get(sessionID)
	return s, nil
}

func (r *SessionRepo) Update(ctx context.Context, sessionID string, fn usecase.SessionMutation) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur, _ := r.cache.Get(sessionID)
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}

	r.cache.Add(sessionID, next)
	return next, nil
}

func (r *SessionRepo) Len() int {
	return r.cache.Len()
}
