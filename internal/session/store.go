package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChangeFunc observes session mutations. It runs after the persisted record
// reflects the new state; p is nil when the session was cleared.
type ChangeFunc func(sessionID string, p *Principal)

// Store persists the Principal for each browser session. Every mutation is
// synchronous: by the time Login, Update, or Logout returns, a subsequent
// Restore observes the post-mutation record. Partial writes are never visible
// to other readers.
type Store interface {
	// Restore reconstructs the Principal for a session, or returns nil when
	// no record (or no token) is present. It never returns a partially
	// populated Principal.
	Restore(ctx context.Context, sessionID string) (*Principal, error)

	// Login replaces the stored record wholesale with p.
	Login(ctx context.Context, sessionID string, p Principal) error

	// Update merges ch onto the current Principal and persists the result.
	// It is a silent no-op returning (nil, nil) when the session holds no
	// Principal; callers must not invoke it unauthenticated.
	Update(ctx context.Context, sessionID string, ch Changes) (*Principal, error)

	// Logout clears every persisted field as a group.
	Logout(ctx context.Context, sessionID string) error
}

const keyPrefix = "netbank:session:"

// Field names mirror the record the web client used to keep, one string per
// Principal attribute.
const (
	fieldToken    = "token"
	fieldRole     = "role"
	fieldUsername = "username"
	fieldEmail    = "email"
	fieldKYC      = "kycCompleted"
)

// RedisStore is the production Store: one Redis hash per session, written in
// a single command so readers see the record whole or not at all.
type RedisStore struct {
	client   *redis.Client
	ttl      time.Duration
	onChange ChangeFunc
}

// NewRedisStore builds a Redis-backed session store. Records expire after ttl
// of inactivity; a ttl of zero disables expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// OnChange registers the mutation observer. Not safe to call once the store
// is serving requests.
func (s *RedisStore) OnChange(fn ChangeFunc) { s.onChange = fn }

func sessionKey(id string) string { return keyPrefix + id }

func recordFields(p Principal) map[string]string {
	return map[string]string{
		fieldToken:    p.Token,
		fieldRole:     string(p.Role),
		fieldUsername: p.Username,
		fieldEmail:    p.Email,
		fieldKYC:      strconv.FormatBool(p.KYCCompleted),
	}
}

func (s *RedisStore) persist(ctx context.Context, sessionID string, p Principal) error {
	key := sessionKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, recordFields(p))
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (s *RedisStore) Restore(ctx context.Context, sessionID string) (*Principal, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if fields[fieldToken] == "" {
		return nil, nil
	}
	p := Principal{
		Token:        fields[fieldToken],
		Role:         Role(fields[fieldRole]),
		Username:     fields[fieldUsername],
		Email:        fields[fieldEmail],
		KYCCompleted: fields[fieldKYC] == "true",
	}
	return &p, nil
}

func (s *RedisStore) Login(ctx context.Context, sessionID string, p Principal) error {
	if err := s.persist(ctx, sessionID, p); err != nil {
		return err
	}
	s.publish(sessionID, &p)
	return nil
}

func (s *RedisStore) Update(ctx context.Context, sessionID string, ch Changes) (*Principal, error) {
	current, err := s.Restore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	merged := ch.apply(*current)
	if err := s.persist(ctx, sessionID, merged); err != nil {
		return nil, err
	}
	s.publish(sessionID, &merged)
	return &merged, nil
}

func (s *RedisStore) Logout(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.publish(sessionID, nil)
	return nil
}

func (s *RedisStore) publish(sessionID string, p *Principal) {
	if s.onChange != nil {
		s.onChange(sessionID, p)
	}
}
