package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/seller-backend/internal/cfg"
	"github.com/DRSN-tech/seller-backend/internal/domain"
	"github.com/DRSN-tech/seller-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/seller-backend/pkg/clients"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.SaleConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.SaleConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetSales возвращает закэшированные продажи по ID, игнорируя промахи и логируя их
func (r *CacheRepo) GetSales(ctx context.Context, ids []int64) (map[int64]domain.Sale, error) {
	keys := r.buildSaleCacheKeys(ids)

	values, err := r.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Warnf("Redis MGET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make(map[int64]domain.Sale, len(values))
	for i, val := range values {
		data, err := redisValueToBytes(val, keys[i])
		if err != nil {
			r.logger.Warnf("%v", e.Wrap(whereami.WhereAmI(), err))
		}

		if data == nil {
			continue // cache miss
		}

		model, err := r.unmarshalSaleFromCache(data)
		if err != nil {
			r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		if model.ID != ids[i] {
			r.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", ids[i], model.ID)
			if err := r.client.Client.Del(context.Background(), keys[i]).Err(); err != nil {
				r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
			}
			continue // cache miss
		}
		result[ids[i]] = *r.conv.ToEntity(model)
	}

	return result, nil
}

// SetSales атомарно кэширует несколько продаж с заданным TTL.
// Игнорирует ошибки сериализации/записи, логируя их.
func (r *CacheRepo) SetSales(ctx context.Context, sales []domain.Sale) error {
	models := r.conv.ToArrRedisModel(sales)

	pipeline := r.client.Client.Pipeline()
	for _, model := range models {
		data, err := r.marshalSaleForCache(model)
		if err != nil {
			r.logger.Warnf("Failed to marshal sale for caching (Sale ID: %d): %v", model.ID, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		key := r.saleKey(model.ID)
		pipeline.Set(ctx, key, data, r.cfg.SaleTTL)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		r.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteSales удаляет продажи из кэша по ID
func (r *CacheRepo) DeleteSales(ctx context.Context, ids []int64) error {
	keys := r.buildSaleCacheKeys(ids)

	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// marshalSaleForCache сериализует продажу в JSON для кэша
func (r *CacheRepo) marshalSaleForCache(model converter.SaleRedisModel) ([]byte, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// unmarshalSaleFromCache десериализует JSON из кэша в модель продажи
func (r *CacheRepo) unmarshalSaleFromCache(data []byte) (*converter.SaleRedisModel, error) {
	var model converter.SaleRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// buildSaleCacheKeys формирует Redis-ключи из ID продаж
func (r *CacheRepo) buildSaleCacheKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.saleKey(id)
	}

	return keys
}

// saleKey возвращает Redis-ключ для одной продажи
func (r *CacheRepo) saleKey(id int64) string {
	return fmt.Sprintf("sale:%d", id)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
