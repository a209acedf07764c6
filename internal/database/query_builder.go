package database

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tempdash/internal/models"
)

type rowQuery struct {
	columns string
	from    string
	filters []string
	args    []interface{}
	orderBy string
}

func newYearQuery() *rowQuery {
	return &rowQuery{columns: "y.year", from: "years y"}
}

func newObservationQuery() *rowQuery {
	return &rowQuery{
		columns: "o.year, s.position, o.value",
		from:    "observations o JOIN series s ON s.id = o.series_id",
	}
}

func (q *rowQuery) Where(filter string, args ...interface{}) *rowQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

// WhereYears restricts the query to an inclusive year range. alias is the
// table alias carrying the year column.
func (q *rowQuery) WhereYears(alias string, r models.YearRange) *rowQuery {
	return q.Where(alias+".year BETWEEN ? AND ?", r.Low, r.High)
}

func (q *rowQuery) OrderBy(orderBy string) *rowQuery {
	q.orderBy = orderBy
	return q
}

func (q *rowQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM %s", q.columns, q.from)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	return query, q.args
}
