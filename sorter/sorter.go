// Package sorter parses user-supplied ordering expressions into SQL order
// clauses. Expressions look like "titulo:asc,criado_em:desc". Fields are
// checked against an allow-list so arbitrary input never reaches the query.
package sorter

import (
	"slices"
	"strings"
)

type (
	// SortOpts is an ordered list of sorting options.
	SortOpts []Opt

	// SortDirection is an SQL sort direction.
	SortDirection string
)

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// Opt represents a single sorting option.
type Opt struct {
	F string        // F is the field to sort by.
	D SortDirection // D is the sorting direction.
}

// ToSQL converts an Opt into an SQL-compatible clause (e.g. "titulo asc").
func (o Opt) ToSQL() string {
	return o.F + " " + string(o.D)
}

// MakeFromStr parses a sorting string into SortOpts, silently dropping
// entries whose field is not in allowedFields or whose direction is neither
// asc nor desc. An empty string yields nil.
func MakeFromStr(sortString string, allowedFields ...string) SortOpts {
	if sortString == "" {
		return nil
	}

	var options SortOpts
	for pair := range strings.SplitSeq(sortString, ",") {
		parts := strings.Split(pair, ":")
		if len(parts) != 2 {
			continue
		}

		field := strings.TrimSpace(parts[0])
		if !slices.Contains(allowedFields, field) {
			continue
		}

		direction := SortDirection(strings.ToLower(strings.TrimSpace(parts[1])))
		if direction != Asc && direction != Desc {
			continue
		}

		options = append(options, Opt{F: field, D: direction})
	}

	return options
}

// Make creates SortOpts from a variadic list of Opt.
func Make(sortOptions ...Opt) SortOpts {
	return sortOptions
}
