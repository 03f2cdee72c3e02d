package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/dball/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	periodSettlementsKeyPrefix = "period_settlements:" // JSON array of a period's outcomes
	ticketSettlementKeyPrefix  = "ticket_settlement:"  // ticket ID -> period of its stored outcome
	settledPeriodsKey          = "settled_periods"     // set of periods with at least one stored outcome

	maxTxRetries = 8
)

// Config holds configuration for the Redis settlement repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settlement repository
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

// SaveOutcomes replaces the period's outcomes and re-points the per-ticket index
func (r *redisRepository) SaveOutcomes(ctx context.Context, input *SaveOutcomesInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	outcomes := input.Outcomes
	if outcomes == nil {
		outcomes = []*models.SettlementOutcome{}
	}

	outcomesJSON, err := json.Marshal(outcomes)
	if err != nil {
		return fmt.Errorf("failed to marshal outcomes: %w", err)
	}

	periodKey := periodSettlementsKeyPrefix + input.Period

	txf := func(tx *redis.Tx) error {
		previous, err := readOutcomes(ctx, tx, periodKey)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			// Tickets deleted since the last save lose their index entry
			for _, o := range previous {
				pipe.Del(ctx, ticketSettlementKeyPrefix+o.TicketID)
			}
			for _, o := range outcomes {
				pipe.Set(ctx, ticketSettlementKeyPrefix+o.TicketID, input.Period, 0)
			}
			pipe.Set(ctx, periodKey, outcomesJSON, 0)
			if len(outcomes) > 0 {
				pipe.SAdd(ctx, settledPeriodsKey, input.Period)
			} else {
				pipe.SRem(ctx, settledPeriodsKey, input.Period)
			}
			return nil
		})
		return err
	}

	if err := r.watch(ctx, txf, periodKey); err != nil {
		return models.StorageError("failed to save outcomes", err)
	}

	return nil
}

// DeleteOutcome drops the ticket from its period's outcomes and removes its index entry
func (r *redisRepository) DeleteOutcome(ctx context.Context, input *DeleteOutcomeInput) error {
	if input == nil || input.TicketID == "" {
		return errors.New("input and ticket ID cannot be empty")
	}

	indexKey := ticketSettlementKeyPrefix + input.TicketID

	txf := func(tx *redis.Tx) error {
		period, err := tx.Get(ctx, indexKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return err
		}

		periodKey := periodSettlementsKeyPrefix + period
		if err := tx.Watch(ctx, periodKey).Err(); err != nil {
			return err
		}

		outcomes, err := readOutcomes(ctx, tx, periodKey)
		if err != nil {
			return err
		}

		kept := make([]*models.SettlementOutcome, 0, len(outcomes))
		for _, o := range outcomes {
			if o.TicketID != input.TicketID {
				kept = append(kept, o)
			}
		}

		keptJSON, err := json.Marshal(kept)
		if err != nil {
			return fmt.Errorf("failed to marshal outcomes: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, indexKey)
			if len(kept) == 0 {
				pipe.Del(ctx, periodKey)
				pipe.SRem(ctx, settledPeriodsKey, period)
			} else {
				pipe.Set(ctx, periodKey, keptJSON, 0)
			}
			return nil
		})
		return err
	}

	if err := r.watch(ctx, txf, indexKey); err != nil {
		return models.StorageError("failed to delete outcome", err)
	}

	return nil
}

// ClearPeriod removes the period's outcomes together with their index entries
func (r *redisRepository) ClearPeriod(ctx context.Context, input *ClearPeriodInput) error {
	if input == nil || input.Period == "" {
		return errors.New("input and period cannot be empty")
	}

	periodKey := periodSettlementsKeyPrefix + input.Period

	txf := func(tx *redis.Tx) error {
		previous, err := readOutcomes(ctx, tx, periodKey)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, o := range previous {
				pipe.Del(ctx, ticketSettlementKeyPrefix+o.TicketID)
			}
			pipe.Del(ctx, periodKey)
			pipe.SRem(ctx, settledPeriodsKey, input.Period)
			return nil
		})
		return err
	}

	if err := r.watch(ctx, txf, periodKey); err != nil {
		return models.StorageError("failed to clear period", err)
	}

	return nil
}

// ListPeriods retrieves the periods with stored outcomes
func (r *redisRepository) ListPeriods(ctx context.Context, _ *ListPeriodsInput) (*ListPeriodsOutput, error) {
	periods, err := r.client.SMembers(ctx, settledPeriodsKey).Result()
	if err != nil {
		return nil, models.StorageError("failed to list settled periods", err)
	}

	sort.Strings(periods)

	return &ListPeriodsOutput{
		Periods: periods,
	}, nil
}

// watch runs txf under WATCH on keys, retrying when another writer got there first
func (r *redisRepository) watch(ctx context.Context, txf func(tx *redis.Tx) error, keys ...string) error {
	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = r.client.Watch(ctx, txf, keys...)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// GetOutcome retrieves the stored outcome of a ticket
func (r *redisRepository) GetOutcome(ctx context.Context, input *GetOutcomeInput) (*models.SettlementOutcome, error) {
	if input == nil || input.TicketID == "" {
		return nil, errors.New("input and ticket ID cannot be empty")
	}

	period, err := r.client.Get(ctx, ticketSettlementKeyPrefix+input.TicketID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrSettlementNotFound
		}
		return nil, models.StorageError("failed to get settlement index", err)
	}

	outcomes, err := readOutcomes(ctx, r.client, periodSettlementsKeyPrefix+period)
	if err != nil {
		return nil, models.StorageError("failed to get settlements", err)
	}

	for _, o := range outcomes {
		if o.TicketID == input.TicketID {
			return o, nil
		}
	}

	return nil, models.ErrSettlementNotFound
}

// ListOutcomesByPeriod retrieves the stored outcomes of a period
func (r *redisRepository) ListOutcomesByPeriod(ctx context.Context, input *ListOutcomesByPeriodInput) (*ListOutcomesByPeriodOutput, error) {
	if input == nil || input.Period == "" {
		return nil, errors.New("input and period cannot be empty")
	}

	outcomes, err := readOutcomes(ctx, r.client, periodSettlementsKeyPrefix+input.Period)
	if err != nil {
		return nil, models.StorageError("failed to list settlements", err)
	}

	return &ListOutcomesByPeriodOutput{
		Outcomes: outcomes,
	}, nil
}

func readOutcomes(ctx context.Context, getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}, key string) ([]*models.SettlementOutcome, error) {
	raw, err := getter.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*models.SettlementOutcome{}, nil
		}
		return nil, err
	}

	var outcomes []*models.SettlementOutcome
	if err := json.Unmarshal([]byte(raw), &outcomes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outcomes: %w", err)
	}

	return outcomes, nil
}
