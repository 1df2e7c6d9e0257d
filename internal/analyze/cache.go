// internal/analyze/cache.go
package analyze

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hkindustry/internal/classify"
	"hkindustry/internal/common/logger"
	"hkindustry/internal/models"
)

// ClassificationCache memoizes classifier verdicts in Redis so repeat runs
// over the same datasets skip re-scoring. The scoring settings are folded
// into every key, so a changed threshold or mode never serves stale labels.
type ClassificationCache struct {
	client  *redis.Client
	ttl     time.Duration
	keySeed string
	logger  logger.Logger
}

func NewClassificationCache(client *redis.Client, ttl time.Duration, classifier *classify.Classifier, log logger.Logger) *ClassificationCache {
	seed := fmt.Sprintf("%s|%s|%.6f|",
		classifier.ScoringMode(), classifier.ComparisonMode(), classifier.Threshold())

	return &ClassificationCache{
		client:  client,
		ttl:     ttl,
		keySeed: seed,
		logger:  log.WithFields(map[string]interface{}{"component": "classification_cache"}),
	}
}

func (c *ClassificationCache) key(text string) string {
	sum := sha1.Sum([]byte(c.keySeed + text))
	return "classify:" + hex.EncodeToString(sum[:])
}

// Get returns a cached verdict. Any cache failure counts as a miss since
// the classifier can always recompute.
func (c *ClassificationCache) Get(ctx context.Context, text string) (models.Classification, bool) {
	val, err := c.client.Get(ctx, c.key(text)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("cache read failed, classifying directly", nil)
		}
		return models.Classification{}, false
	}

	var cached models.Classification
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return models.Classification{}, false
	}
	return cached, true
}

// Set stores a verdict. Failures are logged, never surfaced.
func (c *ClassificationCache) Set(ctx context.Context, text string, result models.Classification) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(text), data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("cache write failed", nil)
	}
}
