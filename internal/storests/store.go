package storests

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/IsaacDSC/tvrelay/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	insightsPrefix = "tvrelay:insights"
	separator      = ":"
	retention      = 48 * time.Hour
)

// Store keeps forward insights in redis sorted sets, one set per outcome per day.
type Store struct {
	cache *redis.Client
	now   func() time.Time
}

func NewStore(cache *redis.Client) *Store {
	return &Store{cache: cache, now: time.Now}
}

func (s *Store) Forwarded(ctx context.Context, input domain.ForwardInsight) error {
	outcome := "failure"
	if input.ACK {
		outcome = "success"
	}

	key := s.key("forwarded", outcome)

	payload, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal insight: %w", err)
	}

	score := float64(input.TimeEnded.UnixMilli())
	if input.TimeEnded.IsZero() {
		score = float64(s.now().UTC().UnixMilli())
	}

	pipe := s.cache.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: score, Member: payload})
	pipe.Expire(ctx, key, retention)
	pipe.SAdd(ctx, s.groupKey(), key)
	pipe.Expire(ctx, s.groupKey(), retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save forward insight: %w", err)
	}

	return nil
}

// GetAll returns today's insights ordered by time.
func (s *Store) GetAll(ctx context.Context) (domain.Metrics, error) {
	keys, err := s.cache.SMembers(ctx, s.groupKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get insights keys: %w", err)
	}

	var output domain.Metrics
	for _, key := range keys {
		values, err := s.cache.ZRange(ctx, key, 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get insights values for key %s: %w", key, err)
		}

		for _, v := range values {
			var insight domain.ForwardInsight
			if err := json.Unmarshal([]byte(v), &insight); err != nil {
				return nil, fmt.Errorf("failed to unmarshal insight for key %s: %w", key, err)
			}
			output = append(output, insight)
		}
	}

	sortByTimeEnded(output)
	return output, nil
}

func (s *Store) key(typeEvent string, values ...string) string {
	v := []string{insightsPrefix, typeEvent}
	v = append(v, values...)
	v = append(v, strconv.Itoa(s.now().UTC().Day()))
	return strings.Join(v, separator)
}

func (s *Store) groupKey() string {
	return s.key("group-insights")
}

func sortByTimeEnded(m domain.Metrics) {
	sort.SliceStable(m, func(i, j int) bool {
		return m[i].TimeEnded.Before(m[j].TimeEnded)
	})
}
