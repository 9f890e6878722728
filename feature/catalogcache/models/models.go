package models

import "time"

// CachedPart is one row of a kit's cached parts list. Only catalog-sourced
// fields are stored; the collector's reconciled counts never enter the cache.
type CachedPart struct {
	KitID         int    `gorm:"primaryKey;autoIncrement:false"`
	PartID        int    `gorm:"primaryKey;autoIncrement:false"`
	PartNo        string `gorm:"size:64"`
	VariantID     string `gorm:"size:64"`
	Name          string `gorm:"size:255"`
	ExpectedCount int
	Category      string `gorm:"size:255"`
	CategoryName  string `gorm:"size:255"`
	Image         string `gorm:"size:255"`
	CachedAt      time.Time
}

// TableName sets the table name for GORM.
func (CachedPart) TableName() string {
	return "cached_parts"
}
