package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pomocua-ads/internal/domain"
)

var baseColumns = []string{"owner_id", "status", "title", "description", "created_date", "modified_date"}

// offerTable describes how one category maps onto its table. columns, scan and
// values list the category columns in the same order.
type offerTable[T domain.Offer] struct {
	name     string
	fields   domain.FieldSet
	columns  []string
	newOffer func() T
	scan     func(T) []any
	values   func(T) []any
}

func (t offerTable[T]) writeColumns() []string {
	return append(append([]string{}, baseColumns...), t.columns...)
}

func (t offerTable[T]) selectColumns() string {
	return "id, " + strings.Join(t.writeColumns(), ", ")
}

func (t offerTable[T]) writeValues(o T) []any {
	b := o.Base()
	return append([]any{b.OwnerID, string(b.Status), b.Title, b.Description, b.CreatedDate, b.ModifiedDate}, t.values(o)...)
}

func (t offerTable[T]) scanTargets(o T) []any {
	b := o.Base()
	return append([]any{&b.ID, &b.OwnerID, (*string)(&b.Status), &b.Title, &b.Description, &b.CreatedDate, &b.ModifiedDate}, t.scan(o)...)
}

type offerRepository[T domain.Offer] struct {
	DB        *sql.DB
	table     offerTable[T]
	collation string
}

func (r *offerRepository[T]) Save(ctx context.Context, offer T) error {
	if offer.Base().ID == 0 {
		return r.insert(ctx, offer)
	}
	return r.update(ctx, offer)
}

func (r *offerRepository[T]) insert(ctx context.Context, offer T) error {
	cols := r.table.writeColumns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		r.table.name, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return r.DB.QueryRowContext(ctx, query, r.table.writeValues(offer)...).Scan(&offer.Base().ID)
}

func (r *offerRepository[T]) update(ctx context.Context, offer T) error {
	cols := r.table.writeColumns()
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`, r.table.name, strings.Join(sets, ", "), len(cols)+1)
	args := append(r.table.writeValues(offer), offer.Base().ID)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

func (r *offerRepository[T]) FindByID(ctx context.Context, id int64) (T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.table.selectColumns(), r.table.name)
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *offerRepository[T]) FindByIDAndOwner(ctx context.Context, id int64, ownerID string) (T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND owner_id = $2`, r.table.selectColumns(), r.table.name)
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id, ownerID))
}

func (r *offerRepository[T]) scanOne(row *sql.Row) (T, error) {
	var zero T
	o := r.table.newOffer()
	if err := row.Scan(r.table.scanTargets(o)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, domain.ErrOfferNotFound
		}
		return zero, err
	}
	return o, nil
}

// Find counts the matching rows first and skips the page query when the page
// lies past the end.
func (r *offerRepository[T]) Find(ctx context.Context, where domain.Predicate, page domain.PageRequest) ([]T, int, error) {
	qb := newQueryBuilder(r.table.fields)
	if err := qb.applyPredicate(where); err != nil {
		return nil, 0, err
	}
	order, err := qb.orderClause(page.Sort, r.collation)
	if err != nil {
		return nil, 0, err
	}
	whereSQL := qb.whereClause()

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, r.table.name, whereSQL)
	if err := r.DB.QueryRowContext(ctx, countQuery, qb.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count offers: %w", err)
	}
	if total == 0 || page.Offset() >= total {
		return []T{}, total, nil
	}

	limit := qb.nextArg(page.Size)
	offset := qb.nextArg(page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM %s%s%s LIMIT %s OFFSET %s`,
		r.table.selectColumns(), r.table.name, whereSQL, order, limit, offset)
	rows, err := r.DB.QueryContext(ctx, query, qb.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	offers := make([]T, 0, page.Size)
	for rows.Next() {
		o := r.table.newOffer()
		if err := rows.Scan(r.table.scanTargets(o)...); err != nil {
			return nil, 0, err
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}
