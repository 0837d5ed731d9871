package domain

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOffers orders items in place by orders, first key primary. Text fields are
// compared with the collation of tag rather than by code point.
func SortOffers[T FieldReader](items []T, orders []SortOrder, fields FieldSet, tag language.Tag) {
	if len(orders) == 0 || len(items) < 2 {
		return
	}
	// A collator keeps internal buffers, so each sort gets its own.
	col := collate.New(tag)
	slices.SortStableFunc(items, func(a, b T) int {
		for _, o := range orders {
			spec, ok := fields.Lookup(o.Field)
			if !ok {
				continue
			}
			av, _ := a.FieldValue(o.Field)
			bv, _ := b.FieldValue(o.Field)
			c := compareField(col, spec.Kind, av, bv)
			if c == 0 {
				continue
			}
			if o.Direction == Desc {
				return -c
			}
			return c
		}
		return 0
	})
}

func compareField(col *collate.Collator, kind FieldKind, a, b any) int {
	switch kind {
	case KindText:
		as, _ := a.(string)
		bs, _ := b.(string)
		return col.CompareString(as, bs)
	case KindNumber:
		an, _ := toInt64(a)
		bn, _ := toInt64(b)
		return cmp.Compare(an, bn)
	case KindDate:
		ad, _ := a.(Date)
		bd, _ := b.(Date)
		return ad.Compare(bd.Time)
	case KindTime:
		at, _ := a.(time.Time)
		bt, _ := b.(time.Time)
		return at.Compare(bt)
	}
	return 0
}
