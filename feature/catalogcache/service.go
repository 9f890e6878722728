package catalogcache

import (
	"context"
	"time"

	cachemodels "kitinventory/feature/catalogcache/models"
	"kitinventory/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service stores fetched parts lists in the database so re-selecting a kit
// doesn't page through the catalog again.
type Service struct {
	db     *gorm.DB
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates a cache service over the given database connection.
func NewService(db *gorm.DB, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, ttl: ttl, logger: logger}
}

// Migrate creates the cache table if it does not exist.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&cachemodels.CachedPart{})
}

// Load returns the cached part collection for the kit, if present and fresh.
// Counts are restored to fetch-time semantics: actual equals expected.
func (s *Service) Load(ctx context.Context, kitID int) (models.PartMap, bool) {
	var rows []cachemodels.CachedPart
	err := s.db.WithContext(ctx).
		Where("kit_id = ?", kitID).
		Find(&rows).Error
	if err != nil {
		s.logger.Warn("cache lookup failed", zap.Int("kit_id", kitID), zap.Error(err))
		return nil, false
	}
	if len(rows) == 0 {
		return nil, false
	}

	if s.ttl > 0 {
		for _, row := range rows {
			if time.Since(row.CachedAt) > s.ttl {
				return nil, false
			}
		}
	}

	parts := make(models.PartMap, len(rows))
	for _, row := range rows {
		parts.Put(models.Part{
			ID:            row.PartID,
			PartNo:        row.PartNo,
			VariantID:     row.VariantID,
			Name:          row.Name,
			ExpectedCount: row.ExpectedCount,
			Count:         row.ExpectedCount,
			Category:      row.Category,
			CategoryName:  row.CategoryName,
			Image:         row.Image,
		})
	}
	return parts, true
}

// Store writes the kit's part collection to the cache, replacing any
// previous rows for the kit.
func (s *Service) Store(ctx context.Context, kitID int, parts models.PartMap) error {
	now := time.Now()
	rows := make([]cachemodels.CachedPart, 0, len(parts))
	for _, p := range parts {
		rows = append(rows, cachemodels.CachedPart{
			KitID:         kitID,
			PartID:        p.ID,
			PartNo:        p.PartNo,
			VariantID:     p.VariantID,
			Name:          p.Name,
			ExpectedCount: p.ExpectedCount,
			Category:      p.Category,
			CategoryName:  p.CategoryName,
			Image:         p.Image,
			CachedAt:      now,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kit_id = ?", kitID).Delete(&cachemodels.CachedPart{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
	})
}
