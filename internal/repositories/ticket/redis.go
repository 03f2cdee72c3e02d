package ticket

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
	ticketKeyPrefix        = "ticket:"         // ticket:<id> -> ticket JSON
	uniqueKeyPrefix        = "ticket:unique:"  // ticket:unique:<period>:<numbers> -> ticket ID
	periodTicketsKeyPrefix = "period_tickets:" // zset of ticket IDs scored by purchase time
	ticketsByTimeKey       = "tickets_by_time" // zset of every ticket ID scored by purchase time
	redTicketsKeyPrefix    = "red_tickets:"    // red_tickets:<n> -> set of ticket IDs holding red n
	blueTicketsKeyPrefix   = "blue_tickets:"   // blue_tickets:<n> -> set of ticket IDs with blue n

	// maxTxRetries bounds the optimistic-lock loop when a watched key changes under us
	maxTxRetries = 8
)

// ErrTicketExists is returned when a ticket ID is reused. The generator is at fault, not the
// buyer, so it is kept apart from models.ErrDuplicateTicket.
var ErrTicketExists = errors.New("ticket ID already exists")

// Config holds configuration for the Redis ticket repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ticket repository
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

// CreateTicket stores a ticket. The uniqueness and ticket keys are watched so the duplicate
// checks and the insert commit together.
func (r *redisRepository) CreateTicket(ctx context.Context, input *CreateTicketInput) error {
	if input == nil || input.Ticket == nil {
		return errors.New("input and ticket cannot be nil")
	}

	ticket := input.Ticket
	if ticket.ID == "" {
		return errors.New("ticket ID cannot be empty")
	}

	ticketJSON, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}

	uniqueKey := uniqueKeyPrefix + ticket.UniqueKey()
	ticketKey := ticketKeyPrefix + ticket.ID

	txf := func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, uniqueKey).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return models.ErrDuplicateTicket
		}

		exists, err = tx.Exists(ctx, ticketKey).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return ErrTicketExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, uniqueKey, ticket.ID, 0)
			pipe.Set(ctx, ticketKey, ticketJSON, 0)
			score := redis.Z{Score: purchaseScore(ticket.PurchasedAt), Member: ticket.ID}
			pipe.ZAdd(ctx, periodTicketsKeyPrefix+ticket.Period, score)
			pipe.ZAdd(ctx, ticketsByTimeKey, score)
			for _, red := range ticket.Numbers.Reds() {
				pipe.SAdd(ctx, redKey(red), ticket.ID)
			}
			pipe.SAdd(ctx, blueKey(ticket.Numbers.Blue()), ticket.ID)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err = r.client.Watch(ctx, txf, uniqueKey, ticketKey)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, models.ErrDuplicateTicket), errors.Is(err, ErrTicketExists):
			return err
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return models.StorageError("failed to create ticket", err)
		}
	}

	return models.StorageError("failed to create ticket", err)
}

// GetTicket retrieves a ticket by ID from Redis
func (r *redisRepository) GetTicket(ctx context.Context, input *GetTicketInput) (*models.Ticket, error) {
	if input == nil || input.TicketID == "" {
		return nil, errors.New("input and ticket ID cannot be empty")
	}

	ticketJSON, err := r.client.Get(ctx, ticketKeyPrefix+input.TicketID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrTicketNotFound
		}
		return nil, models.StorageError("failed to get ticket", err)
	}

	var ticket models.Ticket
	if err := json.Unmarshal([]byte(ticketJSON), &ticket); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket: %w", err)
	}

	return &ticket, nil
}

// ListTicketsByPeriod retrieves the tickets of a period ordered by purchase time
func (r *redisRepository) ListTicketsByPeriod(ctx context.Context, input *ListTicketsByPeriodInput) (*ListTicketsByPeriodOutput, error) {
	if input == nil || input.Period == "" {
		return nil, errors.New("input and period cannot be empty")
	}

	ticketIDs, err := r.client.ZRange(ctx, periodTicketsKeyPrefix+input.Period, 0, -1).Result()
	if err != nil {
		return nil, models.StorageError("failed to list ticket IDs", err)
	}

	tickets, err := r.loadTickets(ctx, ticketIDs)
	if err != nil {
		return nil, err
	}

	return &ListTicketsByPeriodOutput{
		Tickets: tickets,
	}, nil
}

// DeleteTicket removes a ticket, its uniqueness key and its index entries
func (r *redisRepository) DeleteTicket(ctx context.Context, input *DeleteTicketInput) error {
	if input == nil || input.TicketID == "" {
		return errors.New("input and ticket ID cannot be empty")
	}

	ticket, err := r.GetTicket(ctx, &GetTicketInput{TicketID: input.TicketID})
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, ticketKeyPrefix+ticket.ID)
		pipe.Del(ctx, uniqueKeyPrefix+ticket.UniqueKey())
		pipe.ZRem(ctx, periodTicketsKeyPrefix+ticket.Period, ticket.ID)
		pipe.ZRem(ctx, ticketsByTimeKey, ticket.ID)
		for _, red := range ticket.Numbers.Reds() {
			pipe.SRem(ctx, redKey(red), ticket.ID)
		}
		pipe.SRem(ctx, blueKey(ticket.Numbers.Blue()), ticket.ID)
		return nil
	})
	if err != nil {
		return models.StorageError("failed to delete ticket", err)
	}

	return nil
}

// ListLatestTickets reads the newest entries of the all-periods purchase index
func (r *redisRepository) ListLatestTickets(ctx context.Context, input *ListLatestTicketsInput) (*ListLatestTicketsOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and a positive limit are required")
	}

	ticketIDs, err := r.client.ZRevRange(ctx, ticketsByTimeKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, models.StorageError("failed to list latest ticket IDs", err)
	}

	tickets, err := r.loadTickets(ctx, ticketIDs)
	if err != nil {
		return nil, err
	}

	return &ListLatestTicketsOutput{
		Tickets: tickets,
	}, nil
}

// FindTicketsByNumber intersects the per-number index sets
func (r *redisRepository) FindTicketsByNumber(ctx context.Context, input *FindTicketsByNumberInput) (*FindTicketsByNumberOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var keys []string
	if input.Red != 0 {
		keys = append(keys, redKey(input.Red))
	}
	if input.Blue != 0 {
		keys = append(keys, blueKey(input.Blue))
	}

	ticketIDs, err := r.client.SInter(ctx, keys...).Result()
	if err != nil {
		return nil, models.StorageError("failed to find ticket IDs", err)
	}

	tickets, err := r.loadTickets(ctx, ticketIDs)
	if err != nil {
		return nil, err
	}

	// Sets are unordered
	sort.Slice(tickets, func(i, j int) bool {
		if !tickets[i].PurchasedAt.Equal(tickets[j].PurchasedAt) {
			return tickets[i].PurchasedAt.After(tickets[j].PurchasedAt)
		}
		return tickets[i].ID > tickets[j].ID
	})

	return &FindTicketsByNumberOutput{
		Tickets: tickets,
	}, nil
}

// CountTickets reads the cardinality of the period index, or of the all-periods index
func (r *redisRepository) CountTickets(ctx context.Context, input *CountTicketsInput) (*CountTicketsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := ticketsByTimeKey
	if input.Period != "" {
		key = periodTicketsKeyPrefix + input.Period
	}

	count, err := r.client.ZCard(ctx, key).Result()
	if err != nil {
		return nil, models.StorageError("failed to count tickets", err)
	}

	return &CountTicketsOutput{
		Count: count,
	}, nil
}

// loadTickets fetches tickets by ID, keeping the order of ids
func (r *redisRepository) loadTickets(ctx context.Context, ids []string) ([]*models.Ticket, error) {
	if len(ids) == 0 {
		return []*models.Ticket{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = ticketKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, models.StorageError("failed to get tickets", err)
	}

	tickets := make([]*models.Ticket, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Ticket was deleted between reading the index and fetching it
			continue
		}

		var ticket models.Ticket
		if err := json.Unmarshal([]byte(raw), &ticket); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket %s: %w", ids[i], err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

// purchaseScore orders tickets in the sorted sets. Microseconds are exact in a float64 and
// match the precision timestamps are stored at.
func purchaseScore(t time.Time) float64 {
	return float64(t.UnixMicro())
}

func redKey(n int) string {
	return redTicketsKeyPrefix + strconv.Itoa(n)
}

func blueKey(n int) string {
	return blueTicketsKeyPrefix + strconv.Itoa(n)
}
