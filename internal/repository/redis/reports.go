package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kurochkinivan/egrid_loader/internal/config"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
	"github.com/redis/go-redis/v9"
)

const DefaultKey = "last_etl_report"

type ReportsRepository struct {
	client *redis.Client
	key    string
}

func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to ping redis: %w", err), client.Close())
	}

	return client, nil
}

func NewReportsRepository(client *redis.Client, key string) *ReportsRepository {
	if key == "" {
		key = DefaultKey
	}

	return &ReportsRepository{
		client: client,
		key:    key,
	}
}

func (r *ReportsRepository) SaveReport(ctx context.Context, report *domain.RunReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

func (r *ReportsRepository) LastReport(ctx context.Context) (*domain.RunReport, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoReport
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	report := &domain.RunReport{}
	if err := json.Unmarshal(data, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return report, nil
}
