package flash

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/go-redis/redis/v9"
)

// RedisCookieName is the cookie holding the key of a message kept in redis.
const RedisCookieName = "flash_id"

const redisKeyPrefix = "flash:"

// redisKV is the subset of the redis client used by RedisStore.
type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore keeps the message in redis under a random key; only the key
// travels in a cookie. GETDEL guarantees a single read.
type RedisStore struct {
	rdb redisKV
	ttl time.Duration
}

// NewRedisStore returns a RedisStore whose entries expire after ttl.
func NewRedisStore(rdb redisKV, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Put saves m under a fresh key and sets the key cookie.
func (s *RedisStore) Put(w http.ResponseWriter, r *http.Request, m Message) error {
	body, err := encode(m)
	if err != nil {
		return err
	}
	id, err := newKey()
	if err != nil {
		return err
	}
	if err := s.rdb.Set(r.Context(), redisKeyPrefix+id, body, s.ttl).Err(); err != nil {
		return err
	}
	setCookie(w, RedisCookieName, id, s.ttl)
	return nil
}

// Pop consumes the message referenced by the key cookie.
func (s *RedisStore) Pop(w http.ResponseWriter, r *http.Request) (Message, bool, error) {
	c, err := r.Cookie(RedisCookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && c.Value == "") {
		return Message{}, false, nil
	}
	if err != nil {
		return Message{}, false, err
	}
	clearCookie(w, RedisCookieName)

	body, err := s.rdb.GetDel(r.Context(), redisKeyPrefix+c.Value).Bytes()
	if errors.Is(err, redis.Nil) {
		return Message{}, false, nil
	}
	if err != nil {
		return Message{}, false, err
	}
	m, err := decode(body)
	if err != nil {
		return Message{}, false, err
	}
	return m, true, nil
}

func newKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

var _ Store = (*RedisStore)(nil)
