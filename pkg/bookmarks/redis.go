package bookmarks

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/feileberlin/krwl.in-sub005/pkg/errors"
)

// bookmarkSetKey is the redis set holding all bookmarked event IDs.
const bookmarkSetKey = "krwl:bookmarks"

// RedisStore keeps bookmarks in a redis set, for deployments where the
// preview server runs on more than one host.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to redis at addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect redis %s", addr)
	}
	return &RedisStore{rdb: rdb}, nil
}

// IsBookmarked reports whether the event is bookmarked.
func (s *RedisStore) IsBookmarked(ctx context.Context, id string) (bool, error) {
	ok, err := s.rdb.SIsMember(ctx, bookmarkSetKey, id).Result()
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeStore, err, "sismember %s", id)
	}
	return ok, nil
}

// Set records the bookmark state for an event.
func (s *RedisStore) Set(ctx context.Context, id string, bookmarked bool) error {
	if err := errors.ValidateEventID(id); err != nil {
		return err
	}

	var err error
	if bookmarked {
		err = s.rdb.SAdd(ctx, bookmarkSetKey, id).Err()
	} else {
		err = s.rdb.SRem(ctx, bookmarkSetKey, id).Err()
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "set bookmark %s", id)
	}
	return nil
}

// Toggle flips the bookmark state and returns the new value.
func (s *RedisStore) Toggle(ctx context.Context, id string) (bool, error) {
	current, err := s.IsBookmarked(ctx, id)
	if err != nil {
		return false, err
	}
	if err := s.Set(ctx, id, !current); err != nil {
		return false, err
	}
	return !current, nil
}

// All returns the set of bookmarked event IDs.
func (s *RedisStore) All(ctx context.Context) (map[string]bool, error) {
	ids, err := s.rdb.SMembers(ctx, bookmarkSetKey).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "smembers")
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// Close closes the redis connection.
func (s *RedisStore) Close() error { return s.rdb.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
