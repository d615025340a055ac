package catalog

import (
	"context"
	"fmt"

	"model-portfolio/core/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DatabaseSource reads the product list from a database table with the tabular columns.
type DatabaseSource struct {
	db     *gorm.DB
	table  string
	logger *zap.Logger
}

// NewDatabaseSource creates a database source.
func NewDatabaseSource(db *gorm.DB, table string, logger *zap.Logger) *DatabaseSource {
	return &DatabaseSource{db: db, table: table, logger: logger}
}

// Name returns the source mode.
func (s *DatabaseSource) Name() string {
	return "db"
}

// Collect reads every row ordered by id.
func (s *DatabaseSource) Collect(ctx context.Context) ([]Record, error) {
	if s.db == nil {
		return nil, fmt.Errorf("%w: no database connection", ErrSourceMissing)
	}

	missing, err := database.MissingColumns(s.db, s.table, []string{"id"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceMissing, err)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: table %s not found or has no id column", ErrSourceMissing, s.table)
	}

	s.logger.Info("Reading product table from database", zap.String("table", s.table))

	var rows []ProductRow
	if err := s.db.WithContext(ctx).Table(s.table).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record(fmt.Sprintf("%s id %s", s.table, row.ID)))
	}
	return records, nil
}
