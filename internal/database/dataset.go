package database

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/tempdash/internal/config"
)

// LoadStats summarises an import.
type LoadStats struct {
	Rows    int
	Columns []string
	Missing int // cells that were empty or not numeric
}

// LoadFile imports the dataset at path and records it as the source.
func (d *Database) LoadFile(ctx context.Context, path string) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, wrapDatasetErr("load", err)
	}
	defer f.Close()
	stats, err := d.LoadCSV(ctx, f)
	if err != nil {
		return stats, err
	}
	if err := d.SetMetadata(ctx, MetaSource, path); err != nil {
		return stats, wrapDatasetErr("load", err)
	}
	return stats, nil
}

// LoadCSV replaces the stored dataset with the rows read from r. The header
// must name a Year column; every other column is stored as a series. Lines
// starting with '#' are comments. Cells that do not parse as numbers are
// stored as missing values, while a bad year rejects the whole import.
func (d *Database) LoadCSV(ctx context.Context, r io.Reader) (LoadStats, error) {
	reader := csv.NewReader(r)
	reader.Comment = config.CommentChar
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return LoadStats{}, wrapDatasetErr("load", ErrEmptyDataset)
	}
	if err != nil {
		return LoadStats{}, wrapDatasetErr("load", fmt.Errorf("read header: %w", err))
	}
	yearIdx, columns, err := splitHeader(header)
	if err != nil {
		return LoadStats{}, wrapDatasetErr("load", err)
	}

	stats := LoadStats{Columns: columns}
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		seriesIDs, err := resetDataset(ctx, tx, columns)
		if err != nil {
			return err
		}
		yearStmt, err := tx.PrepareContext(ctx, "INSERT INTO years (year) VALUES (?)")
		if err != nil {
			return err
		}
		defer yearStmt.Close()
		obsStmt, err := tx.PrepareContext(ctx, "INSERT INTO observations (year, series_id, value) VALUES (?, ?, ?)")
		if err != nil {
			return err
		}
		defer obsStmt.Close()

		seen := make(map[int]bool)
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				line := 0
				var pe *csv.ParseError
				if errors.As(err, &pe) {
					line = pe.Line
				}
				return wrapRowErr("load", line, fmt.Errorf("%w: %v", ErrInvalidRow, err))
			}
			line, _ := reader.FieldPos(0)
			if yearIdx >= len(record) {
				return wrapRowErr("load", line, fmt.Errorf("%w: missing year", ErrInvalidRow))
			}
			year, err := strconv.Atoi(strings.TrimSpace(record[yearIdx]))
			if err != nil {
				return wrapRowErr("load", line, fmt.Errorf("%w: year %q", ErrInvalidRow, record[yearIdx]))
			}
			if seen[year] {
				return wrapRowErr("load", line, fmt.Errorf("%w: duplicate year %d", ErrInvalidRow, year))
			}
			seen[year] = true
			if _, err := yearStmt.ExecContext(ctx, year); err != nil {
				return err
			}
			col := 0
			for i, cell := range record {
				if i == yearIdx {
					continue
				}
				if col >= len(seriesIDs) {
					break
				}
				value, ok := parseCell(cell)
				if !ok {
					stats.Missing++
				} else if _, err := obsStmt.ExecContext(ctx, year, seriesIDs[col], value); err != nil {
					return err
				}
				col++
			}
			stats.Missing += len(seriesIDs) - col
			stats.Rows++
		}
		if stats.Rows == 0 {
			return ErrEmptyDataset
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO metadata (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			MetaLoadedAt, time.Now().UTC().Format(time.RFC3339))
		return err
	})
	if err != nil {
		var opErr *OpError
		if errors.As(err, &opErr) {
			return LoadStats{}, err
		}
		return LoadStats{}, wrapDatasetErr("load", err)
	}
	return stats, nil
}

func splitHeader(header []string) (int, []string, error) {
	yearIdx := -1
	var columns []string
	for i, h := range header {
		name := strings.TrimSpace(h)
		if yearIdx < 0 && strings.EqualFold(name, config.YearColumn) {
			yearIdx = i
			continue
		}
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		columns = append(columns, name)
	}
	if yearIdx < 0 {
		return -1, nil, ErrNoYearColumn
	}
	return yearIdx, columns, nil
}

func resetDataset(ctx context.Context, tx *sql.Tx, columns []string) ([]int64, error) {
	for _, q := range []string{"DELETE FROM observations", "DELETE FROM years", "DELETE FROM series"} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return nil, err
		}
	}
	ids := make([]int64, 0, len(columns))
	for pos, name := range columns {
		res, err := tx.ExecContext(ctx, "INSERT INTO series (name, position) VALUES (?, ?)", name, pos)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseCell(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
