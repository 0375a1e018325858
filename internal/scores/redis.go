package scores

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// Redis keeps entries as JSON values indexed by a sorted set of scores.
type Redis struct {
	client *backend.Client
	key    string
}

// NewRedis connects lazily to the server at address. Entries live under
// key (the ranking) and key:<id> (the JSON bodies).
func NewRedis(address, password string, db int, key string) *Redis {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisFromClient(rdb, key)
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *backend.Client, key string) *Redis {
	if key == "" {
		key = "blockfall:scores"
	}
	return &Redis{client: client, key: key}
}

func (s *Redis) entryKey(id string) string {
	return s.key + ":" + id
}

// Ping checks the connection.
func (s *Redis) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// Record adds entry to the sorted set and stores its JSON body.
func (s *Redis) Record(ctx context.Context, entry Entry) (Entry, error) {
	entry, err := prepare(entry)
	if err != nil {
		return Entry{}, err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to marshal entry: %w", err)
	}

	id := entry.ID.String()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.entryKey(id), data, 0)
	pipe.ZAdd(ctx, s.key, backend.Z{
		Score:  float64(entry.Score),
		Member: id,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return Entry{}, fmt.Errorf("failed to save to redis: %w", err)
	}
	return entry, nil
}

// Top returns up to n entries, highest score first. Members whose body
// has expired or been deleted are skipped.
func (s *Redis) Top(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	ids, err := s.client.ZRevRange(ctx, s.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read ranking: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.entryKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	entries := make([]Entry, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// ranking member without a body; skip it
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry %s: %w", ids[i], err)
		}
		entries = append(entries, entry)
	}
	rank(entries)
	return entries, nil
}

// Close closes the client.
func (s *Redis) Close() error {
	return s.client.Close()
}
