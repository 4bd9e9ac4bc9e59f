package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AdaptToEntity keeps exactly the columns of model: unknown keys in data
// are dropped and missing columns are set to nil.
func (db *DB) AdaptToEntity(model any, data map[string]any) (map[string]any, error) {
	stmt := &gorm.Statement{DB: db.DB}
	if err := stmt.Parse(model); err != nil {
		return nil, fmt.Errorf("parse entity schema: %w", err)
	}

	adapted := make(map[string]any, len(stmt.Schema.DBNames))
	for _, column := range stmt.Schema.DBNames {
		if value, ok := data[column]; ok {
			adapted[column] = value
		} else {
			adapted[column] = nil
		}
	}
	return adapted, nil
}
