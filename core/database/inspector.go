package database

import (
	"gorm.io/gorm"
)

// MissingTables returns the subset of tables that do not exist yet.
// Commands use it to point the operator at `migrate` before a pass starts.
func MissingTables(db *gorm.DB, tables ...string) []string {
	var missing []string
	migrator := db.Migrator()
	for _, table := range tables {
		if !migrator.HasTable(table) {
			missing = append(missing, table)
		}
	}
	return missing
}
