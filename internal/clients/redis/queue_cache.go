package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/numberloom/numberloom-backend/internal/platform/envutil"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

// QueueCache is a read-through cache for queue snapshots, shared across
// service replicas. Entries carry the queue version; a stale entry is
// harmless because every mutation deletes the key before committing a
// response.
type QueueCache interface {
	Get(ctx context.Context, key scheduler.QueueKey) (*scheduler.Snapshot, error)
	Put(ctx context.Context, key scheduler.QueueKey, snap *scheduler.Snapshot) error
	Drop(ctx context.Context, key scheduler.QueueKey) error
	Close() error
}

type queueCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

type cachedSnapshot struct {
	Stitches []uuid.UUID `json:"stitches"`
	Version  int64       `json:"version"`
	TakenAt  time.Time   `json:"taken_at"`
}

func NewQueueCache(log *logger.Logger) (QueueCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ttl := envutil.Duration("REDIS_QUEUE_TTL", 10*time.Minute)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &queueCache{
		log: log.With("service", "RedisQueueCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func cacheKey(key scheduler.QueueKey) string {
	return fmt.Sprintf("queue:%s:%s", key.UserID, key.LearningPathID)
}

// putGuard sets the entry only when the stored version is older, so a reader
// holding a pre-mutation database read cannot resurrect a stale entry after
// the writer's invalidation.
var putGuard = goredis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
  local ok, decoded = pcall(cjson.decode, cur)
  if ok and decoded and decoded['version'] and tonumber(decoded['version']) >= tonumber(ARGV[2]) then
    return 0
  end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

func (c *queueCache) Get(ctx context.Context, key scheduler.QueueKey) (*scheduler.Snapshot, error) {
	if c == nil || c.rdb == nil {
		return nil, fmt.Errorf("queue cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, cacheKey(key)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stored cachedSnapshot
	if err := json.Unmarshal(raw, &stored); err != nil {
		// A corrupt entry behaves like a miss; the caller reloads from the
		// database and overwrites it.
		c.log.Warn("dropping undecodable queue cache entry", "error", err)
		_ = c.rdb.Del(ctx, cacheKey(key)).Err()
		return nil, nil
	}
	return scheduler.NewSnapshot(scheduler.Order(stored.Stitches), stored.Version, stored.TakenAt), nil
}

func (c *queueCache) Put(ctx context.Context, key scheduler.QueueKey, snap *scheduler.Snapshot) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("queue cache not initialized")
	}
	if snap == nil {
		return nil
	}
	raw, err := json.Marshal(cachedSnapshot{
		Stitches: []uuid.UUID(snap.Order()),
		Version:  snap.Version,
		TakenAt:  snap.TakenAt,
	})
	if err != nil {
		return err
	}
	return putGuard.Run(ctx, c.rdb, []string{cacheKey(key)}, raw, snap.Version, c.ttl.Milliseconds()).Err()
}

func (c *queueCache) Drop(ctx context.Context, key scheduler.QueueKey) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("queue cache not initialized")
	}
	return c.rdb.Del(ctx, cacheKey(key)).Err()
}

func (c *queueCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
