package usecase

import (
	"context"

	"github.com/DRSN-tech/terranova/internal/domain"
)

// SessionMutation получает текущий снимок сессии и возвращает новый.
// Ошибка отменяет запись: хранилище остаётся без изменений.
type SessionMutation func(s domain.Session) (domain.Session, error)

// SessionRepository хранит снимки сессий по непрозрачному токену посетителя.
// Update выполняет чтение-изменение-запись атомарно в пределах одной сессии.
type SessionRepository interface {
	Load(ctx context.Context, sessionID string) (domain.Session, error)
	Update(ctx context.Context, sessionID string, fn SessionMutation) (domain.Session, error)
}
