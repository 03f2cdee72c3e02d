package draw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/KirkDiggler/dball/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	drawKeyPrefix          = "draw:"           // draw:<id> -> draw JSON
	periodDrawsKeyPrefix   = "period_draws:"   // zset of draw IDs scored by creation time
	periodVersionKeyPrefix = "period_version:" // bumped on every write to a period, watched by writers
	publishedPeriodsKey    = "published_periods"
	drawsByTimeKey         = "draws_by_time" // zset of every draw ID scored by creation time

	// maxTxRetries bounds the optimistic-lock loop when another writer touches the period first
	maxTxRetries = 8
)

var (
	// ErrTooMuchContention is returned when a period kept changing for maxTxRetries attempts
	ErrTooMuchContention = errors.New("period updated concurrently too many times")

	// ErrDrawExists is returned when a draw ID is reused
	ErrDrawExists = errors.New("draw already exists")
)

// Config holds configuration for the Redis draw repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// periodReader is the part of *redis.Client and *redis.Tx used to load a period
type periodReader interface {
	ZRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

// NewRedis creates a new Redis-backed draw repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateDraw stores a new draw and adds it to its period
func (r *redisRepository) CreateDraw(ctx context.Context, input *CreateDrawInput) error {
	if input == nil || input.Draw == nil {
		return errors.New("input and draw cannot be nil")
	}

	draw := input.Draw
	if draw.ID == "" || draw.Period == "" {
		return errors.New("draw ID and period cannot be empty")
	}

	drawJSON, err := json.Marshal(draw)
	if err != nil {
		return fmt.Errorf("failed to marshal draw: %w", err)
	}

	drawKey := drawKeyPrefix + draw.ID
	versionKey := periodVersionKeyPrefix + draw.Period

	txf := func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, drawKey).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return ErrDrawExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, drawKey, drawJSON, 0)
			score := redis.Z{Score: createdScore(draw.CreatedAt), Member: draw.ID}
			pipe.ZAdd(ctx, periodDrawsKeyPrefix+draw.Period, score)
			pipe.ZAdd(ctx, drawsByTimeKey, score)
			pipe.Incr(ctx, versionKey)
			if draw.Status == models.DrawStatusPublished {
				pipe.SAdd(ctx, publishedPeriodsKey, draw.Period)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err = r.client.Watch(ctx, txf, drawKey, versionKey)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrDrawExists):
			return err
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return models.StorageError("failed to create draw", err)
		}
	}

	return models.StorageError("failed to create draw", ErrTooMuchContention)
}

// GetDraw retrieves a draw by ID from Redis
func (r *redisRepository) GetDraw(ctx context.Context, input *GetDrawInput) (*models.Draw, error) {
	if input == nil || input.DrawID == "" {
		return nil, errors.New("input and draw ID cannot be empty")
	}

	drawJSON, err := r.client.Get(ctx, drawKeyPrefix+input.DrawID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrDrawNotFound
		}
		return nil, models.StorageError("failed to get draw", err)
	}

	var draw models.Draw
	if err := json.Unmarshal([]byte(drawJSON), &draw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draw: %w", err)
	}

	return &draw, nil
}

// ListDrawsByPeriod retrieves every draw of a period, oldest first
func (r *redisRepository) ListDrawsByPeriod(ctx context.Context, input *ListDrawsByPeriodInput) (*ListDrawsByPeriodOutput, error) {
	if input == nil || input.Period == "" {
		return nil, errors.New("input and period cannot be empty")
	}

	draws, err := loadPeriod(ctx, r.client, input.Period)
	if err != nil {
		return nil, err
	}

	return &ListDrawsByPeriodOutput{
		Draws: draws,
	}, nil
}

// UpdatePeriod watches the period's version key, applies the change and commits it with
// MULTI/EXEC. If another writer bumped the version first the whole read-apply-write is retried.
func (r *redisRepository) UpdatePeriod(ctx context.Context, input *UpdatePeriodInput) (*UpdatePeriodOutput, error) {
	if input == nil || input.Period == "" || input.Apply == nil {
		return nil, errors.New("input, period and apply cannot be empty")
	}

	versionKey := periodVersionKeyPrefix + input.Period

	var (
		changed  []*models.Draw
		applyErr error
	)

	txf := func(tx *redis.Tx) error {
		draws, err := loadPeriod(ctx, tx, input.Period)
		if err != nil {
			return err
		}

		changed, applyErr = input.Apply(draws)
		if applyErr != nil {
			return applyErr
		}
		if len(changed) == 0 {
			return nil
		}

		published, err := mergeChanges(draws, changed)
		if err != nil {
			applyErr = err
			return err
		}

		payloads := make(map[string][]byte, len(changed))
		for _, d := range changed {
			raw, err := json.Marshal(d)
			if err != nil {
				return fmt.Errorf("failed to marshal draw: %w", err)
			}
			payloads[d.ID] = raw
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for id, raw := range payloads {
				pipe.Set(ctx, drawKeyPrefix+id, raw, 0)
			}
			pipe.Incr(ctx, versionKey)
			if published > 0 {
				pipe.SAdd(ctx, publishedPeriodsKey, input.Period)
			} else {
				pipe.SRem(ctx, publishedPeriodsKey, input.Period)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		applyErr = nil
		err := r.client.Watch(ctx, txf, versionKey)
		switch {
		case applyErr != nil:
			return nil, applyErr
		case err == nil:
			return &UpdatePeriodOutput{Draws: changed}, nil
		case errors.Is(err, models.ErrStorageUnavailable):
			return nil, err
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return nil, models.StorageError("failed to update period", err)
		}
	}

	return nil, models.StorageError("failed to update period", ErrTooMuchContention)
}

// ListPublishedPeriods retrieves the periods that currently have a published draw
func (r *redisRepository) ListPublishedPeriods(ctx context.Context, input *ListPublishedPeriodsInput) (*ListPublishedPeriodsOutput, error) {
	periods, err := r.client.SMembers(ctx, publishedPeriodsKey).Result()
	if err != nil {
		return nil, models.StorageError("failed to list published periods", err)
	}

	sort.Strings(periods)

	return &ListPublishedPeriodsOutput{
		Periods: periods,
	}, nil
}

// ListDrawsByDateRange reads a score range of the all-periods creation index
func (r *redisRepository) ListDrawsByDateRange(ctx context.Context, input *ListDrawsByDateRangeInput) (*ListDrawsByDateRangeOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	drawIDs, err := r.client.ZRangeByScore(ctx, drawsByTimeKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(input.From.UnixMicro(), 10),
		Max: "(" + strconv.FormatInt(input.To.UnixMicro(), 10),
	}).Result()
	if err != nil {
		return nil, models.StorageError("failed to list draw IDs by date", err)
	}

	draws, err := loadDraws(ctx, r.client, drawIDs)
	if err != nil {
		return nil, err
	}

	return &ListDrawsByDateRangeOutput{
		Draws: draws,
	}, nil
}

// ListLatestDraws reads the newest entries of the all-periods creation index
func (r *redisRepository) ListLatestDraws(ctx context.Context, input *ListLatestDrawsInput) (*ListLatestDrawsOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and a positive limit are required")
	}

	drawIDs, err := r.client.ZRevRange(ctx, drawsByTimeKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, models.StorageError("failed to list latest draw IDs", err)
	}

	draws, err := loadDraws(ctx, r.client, drawIDs)
	if err != nil {
		return nil, err
	}

	return &ListLatestDrawsOutput{
		Draws: draws,
	}, nil
}

// CountDraws reads the cardinality of the period index, or of the all-periods index
func (r *redisRepository) CountDraws(ctx context.Context, input *CountDrawsInput) (*CountDrawsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := drawsByTimeKey
	if input.Period != "" {
		key = periodDrawsKeyPrefix + input.Period
	}

	count, err := r.client.ZCard(ctx, key).Result()
	if err != nil {
		return nil, models.StorageError("failed to count draws", err)
	}

	return &CountDrawsOutput{
		Count: count,
	}, nil
}

// createdScore orders draws in the sorted sets. Microseconds are exact in a float64 and
// match the precision timestamps are stored at.
func createdScore(t time.Time) float64 {
	return float64(t.UnixMicro())
}

func loadPeriod(ctx context.Context, rd periodReader, period string) ([]*models.Draw, error) {
	drawIDs, err := rd.ZRange(ctx, periodDrawsKeyPrefix+period, 0, -1).Result()
	if err != nil {
		return nil, models.StorageError("failed to list draw IDs", err)
	}

	return loadDraws(ctx, rd, drawIDs)
}

// loadDraws fetches draws by ID, keeping the order of ids. Draws are never deleted, so
// an indexed ID without a row is an error.
func loadDraws(ctx context.Context, rd periodReader, drawIDs []string) ([]*models.Draw, error) {
	if len(drawIDs) == 0 {
		return []*models.Draw{}, nil
	}

	keys := make([]string, len(drawIDs))
	for i, id := range drawIDs {
		keys[i] = drawKeyPrefix + id
	}

	values, err := rd.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, models.StorageError("failed to get draws", err)
	}

	draws := make([]*models.Draw, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("draw %s is indexed but missing", drawIDs[i])
		}

		var draw models.Draw
		if err := json.Unmarshal([]byte(raw), &draw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal draw %s: %w", drawIDs[i], err)
		}
		draws = append(draws, &draw)
	}

	return draws, nil
}

// mergeChanges checks that every changed draw belongs to the loaded period and
// returns how many draws are published once the changes apply
func mergeChanges(draws, changed []*models.Draw) (int, error) {
	byID := make(map[string]*models.Draw, len(draws))
	for _, d := range draws {
		byID[d.ID] = d
	}

	for _, d := range changed {
		if _, ok := byID[d.ID]; !ok {
			return 0, fmt.Errorf("%w: %s is not part of period %s", models.ErrDrawNotFound, d.ID, d.Period)
		}
		byID[d.ID] = d
	}

	published := 0
	for _, d := range byID {
		if d.Status == models.DrawStatusPublished {
			published++
		}
	}

	return published, nil
}
