package identity

import (
	"context"
	"encoding/json"
	"time"

	"quadrafacil/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "identity:"

// CachedDirectory is a read-through redis cache in front of another
// directory. Cache failures fall through to the wrapped directory.
type CachedDirectory struct {
	Next   Directory
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func (d *CachedDirectory) Resolve(ctx context.Context, userID string) (models.UserProfile, error) {
	key := cacheKeyPrefix + userID

	if data, err := d.Cache.Get(ctx, key).Result(); err == nil {
		var profile models.UserProfile
		if err := json.Unmarshal([]byte(data), &profile); err == nil {
			return profile, nil
		}
	} else if err != redis.Nil {
		d.Logger.Warn("identity cache read failed", zap.String("userID", userID), zap.Error(err))
	}

	profile, err := d.Next.Resolve(ctx, userID)
	if err != nil {
		return models.UserProfile{}, err
	}

	if data, err := json.Marshal(profile); err == nil {
		if err := d.Cache.Set(ctx, key, data, d.TTL).Err(); err != nil {
			d.Logger.Warn("identity cache write failed", zap.String("userID", userID), zap.Error(err))
		}
	}
	return profile, nil
}
