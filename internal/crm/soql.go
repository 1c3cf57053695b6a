package crm

import (
	"fmt"
	"regexp"
	"strings"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
)

var (
	idPattern       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	recordIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{15}([A-Za-z0-9]{3})?$`)
)

// IsRecordID reports whether id has the 15 or 18 character record Id shape.
func IsRecordID(id string) bool {
	return recordIDPattern.MatchString(id)
}

// ValidateID allow-lists record identifiers before they reach query text.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", appErrors.ErrInvalidIdentifier, id)
	}
	return nil
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// Quote renders s as a SOQL string literal.
func Quote(s string) string {
	return "'" + literalEscaper.Replace(s) + "'"
}

// SOQL is a small query builder. Values only enter the text through Quote.
type SOQL struct {
	fields     []string
	subqueries []string
	from       string
	where      []string
	orderBy    string
	limit      int
}

func Select(fields ...string) *SOQL {
	return &SOQL{fields: fields}
}

// Child adds a relationship subquery, e.g. (SELECT Id FROM OpportunityLineItems).
func (q *SOQL) Child(relationship string, fields ...string) *SOQL {
	q.subqueries = append(q.subqueries, fmt.Sprintf("(SELECT %s FROM %s)", strings.Join(fields, ", "), relationship))
	return q
}

func (q *SOQL) From(object string) *SOQL {
	q.from = object
	return q
}

// WhereEq adds field = 'value'.
func (q *SOQL) WhereEq(field, value string) *SOQL {
	q.where = append(q.where, field+" = "+Quote(value))
	return q
}

// WhereID adds field = 'id' after validating id.
func (q *SOQL) WhereID(field, id string) (*SOQL, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return q.WhereEq(field, id), nil
}

func (q *SOQL) OrderBy(clause string) *SOQL {
	q.orderBy = clause
	return q
}

func (q *SOQL) Limit(n int) *SOQL {
	q.limit = n
	return q
}

func (q *SOQL) String() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(append(append([]string{}, q.fields...), q.subqueries...), ", "))
	b.WriteString(" FROM ")
	b.WriteString(q.from)
	if len(q.where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.where, " AND "))
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}
	if q.limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.limit)
	}
	return b.String()
}
