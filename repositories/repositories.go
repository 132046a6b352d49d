// Package repositories holds the per-entity persistence contracts and
// their GORM implementations. The storage engine behind gorm.DB is a
// single-file SQLite database by default, MySQL optionally; nothing in
// this package depends on which.
package repositories

import (
	"gorm.io/gorm"

	"github.com/hjortab/hjort-api/utils"
)

// rowExists is the cheap existence probe behind every Exists method:
// a counted LIMIT 1 query, no row data fetched.
func rowExists(db *gorm.DB, model interface{}, id string) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Limit(1).Count(&count).Error; err != nil {
		utils.ErrorLogger.Printf("Database lookup error: %v", err)
		return false, err
	}
	return count > 0, nil
}
