package db

import (
	"fmt"
	"strings"

	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

var likeEscaper = strings.NewReplacer("%", "\\%", "_", "\\_")

// EscapeLike escapes the LIKE wildcards % and _ in val.
func EscapeLike(val string) string {
	return likeEscaper.Replace(val)
}

// ILike adds a case-insensitive WHERE ... ILIKE clause for the column given by path
// (e.g. "flows", "target_name"). val is used as-is, callers add wildcards themselves.
func ILike(val string, path ...string) qm.QueryMod {
	return qm.Where(fmt.Sprintf("%s ILIKE ?", strings.Join(path, ".")), val)
}

// ILikeSearch splits query by whitespace and requires every term to be contained
// in the column given by path.
func ILikeSearch(query string, path ...string) qm.QueryMod {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return qm.And("TRUE")
	}

	mods := make([]qm.QueryMod, 0, len(terms))
	for _, term := range terms {
		mods = append(mods, ILike("%"+EscapeLike(term)+"%", path...))
	}

	return qm.Expr(mods...)
}

// PostgresDialect mirrors the dialect sqlboiler generates for the psql driver.
var PostgresDialect = drivers.Dialect{
	LQ:                   0x22,
	RQ:                   0x22,
	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

// NewQuery builds a postgres query from the given mods.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &PostgresDialect)
	qm.Apply(q, mods...)

	return q
}
