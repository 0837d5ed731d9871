package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"pomocua-ads/internal/domain"
)

type queryBuilder struct {
	fields     domain.FieldSet
	conditions []string
	args       []any
	argID      int
}

func newQueryBuilder(fields domain.FieldSet) *queryBuilder {
	return &queryBuilder{
		fields: fields,
		argID:  1,
		args:   make([]any, 0),
	}
}

func (qb *queryBuilder) addCondition(condition, column string, arg any) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, column, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// nextArg reserves a placeholder for arg and returns it.
func (qb *queryBuilder) nextArg(arg any) string {
	qb.args = append(qb.args, arg)
	p := fmt.Sprintf("$%d", qb.argID)
	qb.argID++
	return p
}

// applyPredicate renders every condition of where. Fields outside the whitelist
// are rejected so no caller-supplied name ever reaches the SQL text.
func (qb *queryBuilder) applyPredicate(where domain.Predicate) error {
	for _, c := range where.Conditions() {
		spec, ok := qb.fields.Lookup(c.Field)
		if !ok {
			return fmt.Errorf("%w: unknown field %s", domain.ErrInvalidSearchCriteria, c.Field)
		}
		switch c.Op {
		case domain.OpEqual:
			qb.addCondition("%s = $%d", spec.Column, c.Value)
		case domain.OpEqualFold:
			qb.addCondition("LOWER(%s) = LOWER($%d)", spec.Column, c.Value)
		case domain.OpAtLeast:
			qb.addCondition("%s >= $%d", spec.Column, c.Value)
		default:
			return fmt.Errorf("unsupported operator %d on %s", c.Op, c.Field)
		}
	}
	return nil
}

func (qb *queryBuilder) whereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(qb.conditions, " AND ")
}

// orderClause sorts text columns with collation; an empty collation falls back
// to the database default.
func (qb *queryBuilder) orderClause(orders []domain.SortOrder, collation string) (string, error) {
	if len(orders) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		spec, ok := qb.fields.Lookup(o.Field)
		if !ok || !spec.Sortable {
			return "", fmt.Errorf("%w: %s", domain.ErrInvalidSortField, o.Field)
		}
		expr := spec.Column
		if spec.Kind == domain.KindText && collation != "" {
			expr += " COLLATE " + pq.QuoteIdentifier(collation)
		}
		dir := "ASC"
		if o.Direction == domain.Desc {
			dir = "DESC"
		}
		parts = append(parts, expr+" "+dir)
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}
