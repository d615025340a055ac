package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Column describes one column of an existing table.
type Column struct {
	Field string
	Type  string
}

// TableColumns lists the columns of tableName, lower-cased.
// A missing sqlite table yields an empty list rather than an error.
func TableColumns(db *gorm.DB, tableName string) ([]Column, error) {
	var columns []Column

	if db.Dialector.Name() == "sqlite" {
		type pragmaColumn struct {
			Cid     int
			Name    string
			Type    string
			Notnull int
			Pk      int
		}
		var rows []pragmaColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, r := range rows {
			columns = append(columns, Column{Field: strings.ToLower(r.Name), Type: strings.ToLower(r.Type)})
		}
		return columns, nil
	}

	type showColumn struct {
		Field string
		Type  string
	}
	var rows []showColumn
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for _, r := range rows {
		columns = append(columns, Column{Field: strings.ToLower(r.Field), Type: strings.ToLower(r.Type)})
	}
	return columns, nil
}

// MissingColumns returns the entries of required that tableName lacks.
func MissingColumns(db *gorm.DB, tableName string, required []string) ([]string, error) {
	columns, err := TableColumns(db, tableName)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c.Field] = struct{}{}
	}

	var missing []string
	for _, name := range required {
		if _, ok := present[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
