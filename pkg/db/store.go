package db

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Row is a stored record as the database sees it: column name to primitive
// value. Entity packages convert between Row and their typed records.
type Row = map[string]any

// Insert appends a row and returns the id the store assigned. A zero or
// missing id column is stripped so autoincrement always decides. Never
// upserts.
func Insert(ctx context.Context, conn *gorm.DB, table string, row Row) (int64, error) {
	cols := make([]string, 0, len(row))
	for col, value := range row {
		if col == "id" && isUnassignedID(value) {
			continue
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := make([]any, 0, len(cols))
	marks := make([]string, 0, len(cols))
	for _, col := range cols {
		args = append(args, row[col])
		marks = append(marks, "?")
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table,
		strings.Join(cols, ", "),
		strings.Join(marks, ", "),
	)

	var id int64
	if err := conn.WithContext(ctx).Raw(query, args...).Scan(&id).Error; err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

// ListAll returns every row of a table ordered by the given column, with id
// as tie-breaker. No filtering is pushed to the store beyond ordering.
func ListAll(ctx context.Context, conn *gorm.DB, table, orderBy string, descending bool) ([]Row, error) {
	dir := "ASC"
	if descending {
		dir = "DESC"
	}

	var rows []map[string]any
	err := conn.WithContext(ctx).
		Table(table).
		Order(fmt.Sprintf("%s %s, id %s", orderBy, dir, dir)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return rows, nil
}

// UpdateByID overwrites an entire row keyed by id. Returns ErrNotFound when
// no row carries that id.
func UpdateByID(ctx context.Context, conn *gorm.DB, table string, id int64, row Row) error {
	cols := make([]string, 0, len(row))
	for col := range row {
		if col == "id" {
			continue
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for _, col := range cols {
		sets = append(sets, col+" = ?")
		args = append(args, row[col])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))

	result := conn.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return fmt.Errorf("update %s: %w", table, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update %s id=%d: %w", table, id, ErrNotFound)
	}
	return nil
}

func isUnassignedID(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case int64:
		return v == 0
	case int:
		return v == 0
	default:
		return false
	}
}
