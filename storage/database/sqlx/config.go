package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/pkg/errors"

	"github.com/brainaspire/academia/core/fee"
)

// Configuration document keys in app_config.
const (
	CourseFeeConfigKey = "course_fee"
	DiscountConfigKey  = "discount"
	FeeTypeConfigKey   = "fee_type"
)

type configRepository struct {
	db *sqlx.DB
}

var _ fee.ConfigRepository = (*configRepository)(nil) // interface compliance check

func NewConfigRepository(db *sqlx.DB) *configRepository {
	return &configRepository{db: db}
}

// getDoc fetches a configuration document into out. A missing key leaves out
// untouched and returns false.
func (repo configRepository) getDoc(ctx context.Context, key string, out interface{}) (bool, error) {
	var doc types.JSONText
	if err := repo.db.GetContext(ctx, &doc, `SELECT doc FROM app_config WHERE key = $1`, key); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, errors.Wrapf(err, "querying config %q", key)
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return false, errors.Wrapf(err, "decoding config %q", key)
	}
	return true, nil
}

func (repo configRepository) GetFeeConfig(ctx context.Context) (*fee.Config, error) {
	var cfg fee.Config
	found, err := repo.getDoc(ctx, CourseFeeConfigKey, &cfg)
	if err != nil || !found {
		return nil, err
	}
	return &cfg, nil
}

func (repo configRepository) GetDiscountConfig(ctx context.Context) (*fee.DiscountConfig, error) {
	var cfg fee.DiscountConfig
	found, err := repo.getDoc(ctx, DiscountConfigKey, &cfg)
	if err != nil || !found {
		return nil, err
	}
	return &cfg, nil
}

func (repo configRepository) GetTypeConfig(ctx context.Context) (*fee.TypeConfig, error) {
	var cfg fee.TypeConfig
	found, err := repo.getDoc(ctx, FeeTypeConfigKey, &cfg)
	if err != nil || !found {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig upserts a configuration document. Used by the admin CLI seeder.
func (repo configRepository) SaveConfig(ctx context.Context, key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "encoding config %q", key)
	}
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO app_config (key, doc) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET doc = $2`,
		key, types.JSONText(raw))
	return errors.Wrapf(err, "saving config %q", key)
}

// SaveCoachingMode upserts a coaching mode record. Used by the admin CLI
// seeder.
func (repo configRepository) SaveCoachingMode(ctx context.Context, id, name string) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO coaching_mode (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = $2`,
		id, name)
	return errors.Wrap(err, "saving coaching mode")
}
