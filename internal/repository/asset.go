package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/leon37/NetoLedger/internal/model"
	"gorm.io/gorm"
)

// ErrUpstreamData wraps every failure of the asset store so the API layer can
// answer with a generic 500 without leaking driver details.
var ErrUpstreamData = errors.New("asset store unavailable")

// UserIDField is the record field the store filters on.
const UserIDField = "userId"

// AssetRepo reads a user's asset documents. Implementations never write.
type AssetRepo interface {
	FindByUser(ctx context.Context, uid string) ([]model.AssetRecord, error)
}

// assetRepo reads from the MySQL document table.
type assetRepo struct {
	db *gorm.DB
}

// NewAssetRepo returns the MySQL-backed AssetRepo.
func NewAssetRepo(db *gorm.DB) AssetRepo {
	return &assetRepo{db: db}
}

func (r *assetRepo) FindByUser(ctx context.Context, uid string) ([]model.AssetRecord, error) {
	var rows []model.AssetEntity
	// WithContext lets the request deadline reach the database.
	err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamData, err)
	}

	records := make([]model.AssetRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := decodePayload(row)
		if err != nil {
			return nil, fmt.Errorf("%w: asset %d: %v", ErrUpstreamData, row.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodePayload(row model.AssetEntity) (model.AssetRecord, error) {
	rec := model.AssetRecord{}
	if row.Payload != "" {
		if err := json.Unmarshal([]byte(row.Payload), &rec); err != nil {
			return nil, err
		}
	}
	if _, ok := rec[UserIDField]; !ok {
		rec[UserIDField] = row.UserID
	}
	return rec, nil
}
