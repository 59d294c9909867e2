package checks

import (
	"fmt"

	"gorm.io/gorm"
)

// TableReport describes the state of one expected table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"`
}

// SchemaReport is the result of comparing models against the live database.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors,omitempty"`
}

// CheckSchema verifies that a table and every mapped column exists for each model.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
	}
	migrator := db.Migrator()

	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		tbl := TableReport{MissingColumns: []string{}, Status: "ok"}

		if !migrator.HasTable(table) {
			tbl.Status = "missing"
			tbl.MissingColumns = append(tbl.MissingColumns, stmt.Schema.DBNames...)
			report.Tables[table] = tbl
			report.Matched = false
			continue
		}

		for _, column := range stmt.Schema.DBNames {
			if !migrator.HasColumn(model, column) {
				tbl.MissingColumns = append(tbl.MissingColumns, column)
				tbl.Status = "error"
				report.Matched = false
			}
		}

		report.Tables[table] = tbl
	}

	return report, nil
}
