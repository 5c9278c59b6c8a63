package http

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/terranova/internal/cfg"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

type sessionCtxKey struct{}

// SessionManager выдаёт посетителю подписанную cookie с идентификатором сессии.
// В cookie хранится только идентификатор, состояние лежит в репозитории сессий.
type SessionManager struct {
	codec  *securecookie.SecureCookie
	name   string
	secure bool
	ttl    time.Duration
	logger logger.Logger
}

func NewSessionManager(cfg *cfg.SessionCfg, logger logger.Logger) *SessionManager {
	codec := securecookie.New(cfg.Secret, nil)
	codec.MaxAge(int(cfg.TTL.Seconds()))

	return &SessionManager{
		codec:  codec,
		name:   cfg.CookieName,
		secure: cfg.CookieSecure,
		ttl:    cfg.TTL,
		logger: logger,
	}
}

// Middleware кладёт идентификатор сессии в контекст запроса. Отсутствующая или
// поддельная cookie заменяется новой сессией. Cookie перевыпускается на каждом
// запросе, поэтому срок жизни сессии скользящий.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.read(r)
		if !ok {
			id = uuid.NewString()
		}

		if err := m.write(w, id); err != nil {
			m.logger.Errorf(err, "failed to encode session cookie")
			writePageError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
	})
}

func (m *SessionManager) read(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.name)
	if err != nil {
		return "", false
	}

	var id string
	if err := m.codec.Decode(m.name, c.Value, &id); err != nil {
		m.logger.Debugf("rejecting session cookie: %v", err)
		return "", false
	}

	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}

	return id, true
}

func (m *SessionManager) write(w http.ResponseWriter, id string) error {
	value, err := m.codec.Encode(m.name, id)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, id)
}

// SessionID возвращает идентификатор сессии текущего запроса.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey{}).(string)
	return id
}
