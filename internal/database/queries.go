package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/tempdash/internal/models"
)

// YearBounds returns the first and last year of the loaded dataset.
func (d *Database) YearBounds(ctx context.Context) (int, int, error) {
	var minYear, maxYear sql.NullInt64
	err := d.DB.QueryRowContext(ctx, "SELECT MIN(year), MAX(year) FROM years").Scan(&minYear, &maxYear)
	if err != nil {
		return 0, 0, wrapDatasetErr("bounds", err)
	}
	if !minYear.Valid || !maxYear.Valid {
		return 0, 0, wrapDatasetErr("bounds", ErrEmptyDataset)
	}
	return int(minYear.Int64), int(maxYear.Int64), nil
}

// Columns lists the series names in file order.
func (d *Database) Columns(ctx context.Context) ([]string, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT name FROM series ORDER BY position ASC")
	if err != nil {
		return nil, wrapDatasetErr("columns", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, wrapDatasetErr("columns", err)
		}
		out = append(out, name)
	}
	return out, wrapDatasetErr("columns", rows.Err())
}

// Observations returns every year in r, ordered by year. Cells without a
// stored value are NaN.
func (d *Database) Observations(ctx context.Context, r models.YearRange) (models.Table, error) {
	columns, err := d.Columns(ctx)
	if err != nil {
		return models.Table{}, err
	}
	table := models.Table{Columns: columns}

	query, args := newYearQuery().WhereYears("y", r).OrderBy("y.year ASC").Build()
	yearRows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Table{}, wrapDatasetErr("observations", err)
	}
	index := make(map[int]int)
	for yearRows.Next() {
		var year int
		if err := yearRows.Scan(&year); err != nil {
			yearRows.Close()
			return models.Table{}, wrapDatasetErr("observations", err)
		}
		index[year] = len(table.Rows)
		table.Rows = append(table.Rows, models.Row{Year: year, Values: missingRow(len(columns))})
	}
	if err := yearRows.Err(); err != nil {
		yearRows.Close()
		return models.Table{}, wrapDatasetErr("observations", err)
	}
	yearRows.Close()

	query, args = newObservationQuery().WhereYears("o", r).OrderBy("o.year ASC, s.position ASC").Build()
	obsRows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Table{}, wrapDatasetErr("observations", err)
	}
	defer obsRows.Close()
	for obsRows.Next() {
		var (
			year, pos int
			value     sql.NullFloat64
		)
		if err := obsRows.Scan(&year, &pos, &value); err != nil {
			return models.Table{}, wrapDatasetErr("observations", err)
		}
		i, ok := index[year]
		if !ok || pos < 0 || pos >= len(columns) {
			continue
		}
		table.Rows[i].Values[pos] = floatOrNaN(value)
	}
	return table, wrapDatasetErr("observations", obsRows.Err())
}
