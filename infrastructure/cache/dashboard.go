package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keyPrefix = "dashboard"

// DashboardCache guarda agregados já calculados por empresa e filtro
type DashboardCache interface {
	Get(ctx context.Context, companyID string, filters domain.DashboardFilters) (*domain.DashboardAggregate, bool)
	Set(ctx context.Context, companyID string, aggregate *domain.DashboardAggregate) error
	InvalidateCompany(ctx context.Context, companyID string) error
}

// Key monta a chave dashboard:<empresa>:<canal>:<tipo>:<ano>:<mes>:<semana>
func Key(companyID string, filters domain.DashboardFilters) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d:%d",
		keyPrefix, companyID, filters.Channel, filters.PeriodType, filters.Year, filters.Month, filters.Week)
}

// globEscaper neutraliza os curingas do SCAN para que o id da empresa case literalmente
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func companyPattern(companyID string) string {
	return fmt.Sprintf("%s:%s:*", keyPrefix, globEscaper.Replace(companyID))
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient cria o cliente e valida a conexão
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
	}

	return client, nil
}

func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) DashboardCache {
	return &redisCache{client: client, ttl: ttl}
}

// Get trata qualquer falha do redis como cache miss
func (c *redisCache) Get(ctx context.Context, companyID string, filters domain.DashboardFilters) (*domain.DashboardAggregate, bool) {
	key := Key(companyID, filters)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.ForContext(ctx).WithError(err).Warnf("cache: erro ao ler %s", key)
		}
		return nil, false
	}

	var aggregate domain.DashboardAggregate
	if err := json.Unmarshal(data, &aggregate); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("cache: valor corrompido em %s", key)
		return nil, false
	}

	return &aggregate, true
}

func (c *redisCache) Set(ctx context.Context, companyID string, aggregate *domain.DashboardAggregate) error {
	data, err := json.Marshal(aggregate)
	if err != nil {
		return fmt.Errorf("erro ao serializar dashboard: %w", err)
	}

	return c.client.Set(ctx, Key(companyID, aggregate.Filters), data, c.ttl).Err()
}

// InvalidateCompany remove todos os dashboards da empresa
func (c *redisCache) InvalidateCompany(ctx context.Context, companyID string) error {
	var keys []string

	iter := c.client.Scan(ctx, 0, companyPattern(companyID), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("erro ao listar chaves do dashboard: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...).Err()
}

type noopCache struct{}

// NewNoopDashboardCache é usado quando REDIS_ENABLED=false
func NewNoopDashboardCache() DashboardCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, domain.DashboardFilters) (*domain.DashboardAggregate, bool) {
	return nil, false
}

func (noopCache) Set(context.Context, string, *domain.DashboardAggregate) error {
	return nil
}

func (noopCache) InvalidateCompany(context.Context, string) error {
	return nil
}
