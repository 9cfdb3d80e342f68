package flash

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// CookieName is the cookie used by CookieStore.
const CookieName = "flash"

// CookieStore keeps the message itself in a signed, timestamped cookie.
// Cookies older than the ttl are rejected on read regardless of what the
// browser sends back.
type CookieStore struct {
	codec *securecookie.SecureCookie
	ttl   time.Duration
}

// NewCookieStore returns a CookieStore signing with secret. An empty secret
// is replaced by a random per-process key.
func NewCookieStore(secret []byte, ttl time.Duration) (*CookieStore, error) {
	if len(secret) == 0 {
		secret = securecookie.GenerateRandomKey(32)
		if secret == nil {
			return nil, errors.New("flash: generate cookie key")
		}
	}
	if ttl < time.Second {
		ttl = time.Minute
	}
	codec := securecookie.New(secret, nil).
		MaxAge(int(ttl / time.Second)).
		SetSerializer(securecookie.JSONEncoder{})
	return &CookieStore{codec: codec, ttl: ttl}, nil
}

// Put stores m in the flash cookie.
func (s *CookieStore) Put(w http.ResponseWriter, _ *http.Request, m Message) error {
	if !m.Kind.valid() {
		return errUnknownKind
	}
	value, err := s.codec.Encode(CookieName, m)
	if err != nil {
		return err
	}
	setCookie(w, CookieName, value, s.ttl)
	return nil
}

// Pop reads and clears the flash cookie. Tampered or expired cookies yield
// ErrMalformed.
func (s *CookieStore) Pop(w http.ResponseWriter, r *http.Request) (Message, bool, error) {
	c, err := r.Cookie(CookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && c.Value == "") {
		return Message{}, false, nil
	}
	if err != nil {
		return Message{}, false, err
	}
	clearCookie(w, CookieName)

	var m Message
	if err := s.codec.Decode(CookieName, c.Value, &m); err != nil {
		return Message{}, false, ErrMalformed
	}
	if !m.Kind.valid() {
		return Message{}, false, ErrMalformed
	}
	return m, true, nil
}

var _ Store = (*CookieStore)(nil)
