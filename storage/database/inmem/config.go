package inmemdb

import (
	"context"

	"github.com/brainaspire/academia/core/fee"
)

type configRepository struct {
	db *DB
}

var _ fee.ConfigRepository = (*configRepository)(nil)

func NewConfigRepository(db *DB) *configRepository {
	return &configRepository{db: db}
}

func (repo *configRepository) GetFeeConfig(ctx context.Context) (*fee.Config, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.feeConfig, nil
}

func (repo *configRepository) GetDiscountConfig(ctx context.Context) (*fee.DiscountConfig, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.discountConfig, nil
}

func (repo *configRepository) GetTypeConfig(ctx context.Context) (*fee.TypeConfig, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.typeConfig, nil
}
