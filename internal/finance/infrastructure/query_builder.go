package infrastructure

import (
	"fmt"
	"strings"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// predicateBuilder collects WHERE clauses together with their bound values.
// Clauses only ever contain placeholders; values travel as arguments.
type predicateBuilder struct {
	clauses []string
	args    []interface{}
}

// add appends a clause whose single %s is replaced by the next placeholder.
func (b *predicateBuilder) add(clause string, arg interface{}) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(clause, fmt.Sprintf("$%d", len(b.args))))
}

func (b *predicateBuilder) where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

func (b *predicateBuilder) arguments() []interface{} {
	return b.args
}

// transactionPredicates starts from the owner predicate and adds one clause
// per filter that is present.
func transactionPredicates(ownerID int64, filters domain.TransactionFilters) *predicateBuilder {
	b := &predicateBuilder{}
	b.add("t.user_id = %s", ownerID)

	if filters.Description != "" {
		b.add("t.description ILIKE %s", "%"+escapeLike(filters.Description)+"%")
	}
	if filters.TypeID != nil {
		b.add("t.type_id = %s", *filters.TypeID)
	}
	if filters.CategoryID != nil {
		b.add("t.category_id = %s", *filters.CategoryID)
	}
	if filters.StartDate != nil {
		b.add("t.transaction_date >= %s", *filters.StartDate)
	}
	if filters.EndDate != nil {
		b.add("t.transaction_date <= %s", *filters.EndDate)
	}
	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// paginationClause is the one place values enter query text directly; both
// are ints that went through Normalize.
func paginationClause(page domain.Pagination) string {
	page = page.Normalize()
	return fmt.Sprintf(" LIMIT %d OFFSET %d", page.Limit, page.Offset)
}
