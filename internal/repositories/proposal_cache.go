package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// ProposalCacheRepository caches assembled proposal-details payloads in Redis.
// Entries are invalidated whenever the proposal or its swap transitions.
type ProposalCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached details
}

// NewProposalCacheRepository creates a new repository instance with the given TTL.
func NewProposalCacheRepository(client *redis.Client, expiration time.Duration) *ProposalCacheRepository {
	return &ProposalCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func proposalDetailsKey(proposalID, viewerID uuid.UUID) string {
	return fmt.Sprintf("proposal_details:%s:%s", proposalID, viewerID)
}

// GetDetails fetches cached proposal details for a viewer. A cache miss is an error.
func (r *ProposalCacheRepository) GetDetails(ctx context.Context, proposalID, viewerID uuid.UUID) (*models.ProposalDetails, error) {
	key := proposalDetailsKey(proposalID, viewerID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("proposal details not found in cache for %s", proposalID)
		}
		return nil, err
	}

	var details models.ProposalDetails
	if err := json.Unmarshal([]byte(val), &details); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", details.Proposal.Status,
		"error", nil,
	)

	return &details, nil
}

// SetDetails caches proposal details for a viewer with the configured TTL.
func (r *ProposalCacheRepository) SetDetails(ctx context.Context, proposalID, viewerID uuid.UUID, details *models.ProposalDetails) error {
	key := proposalDetailsKey(proposalID, viewerID)

	data, err := json.Marshal(details)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, string(data), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// InvalidateProposal drops every cached view of a proposal after a transition.
func (r *ProposalCacheRepository) InvalidateProposal(ctx context.Context, proposalID uuid.UUID) error {
	pattern := fmt.Sprintf("proposal_details:%s:*", proposalID)

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Errorw("failed to scan proposal cache keys", "pattern", pattern, "error", err)
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow(
		"pattern", pattern,
		"result", len(keys),
		"error", err,
	)

	return err
}
