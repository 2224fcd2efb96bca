package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	FlashCookie = "flash"

	// DefaultFlashTTL acota cuánto vive un mensaje que nadie consumió.
	DefaultFlashTTL = 2 * time.Minute
)

type flashEntry struct {
	message string
	expires time.Time
}

// FlashStore guarda mensajes de confirmación entre un redirect y la vista
// siguiente. El cliente solo recibe un token opaco en la cookie "flash".
type FlashStore struct {
	mu      sync.Mutex
	byToken map[string]flashEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewFlashStore(ttl time.Duration) *FlashStore {
	if ttl <= 0 {
		ttl = DefaultFlashTTL
	}
	return &FlashStore{
		byToken: map[string]flashEntry{},
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put guarda msg y setea la cookie con su token.
func (s *FlashStore) Put(w http.ResponseWriter, msg string) string {
	token := uuid.NewString()

	s.mu.Lock()
	now := s.now()
	s.sweepLocked(now)
	s.byToken[token] = flashEntry{message: msg, expires: now.Add(s.ttl)}
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}

// Pop devuelve el mensaje asociado a la cookie del request (si existe y no
// expiró), lo borra del store y expira la cookie.
func (s *FlashStore) Pop(w http.ResponseWriter, r *http.Request) (string, bool) {
	c, err := r.Cookie(FlashCookie)
	if err != nil || c.Value == "" {
		return "", false
	}

	http.SetCookie(w, &http.Cookie{
		Name:   FlashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byToken[c.Value]
	if !ok {
		return "", false
	}
	delete(s.byToken, c.Value)
	if s.now().After(e.expires) {
		return "", false
	}
	return e.message, true
}

// Len es el número de mensajes pendientes.
func (s *FlashStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byToken)
}

func (s *FlashStore) sweepLocked(now time.Time) {
	for token, e := range s.byToken {
		if now.After(e.expires) {
			delete(s.byToken, token)
		}
	}
}
