package domain

// FieldKind determines how a field is compared when filtering and sorting.
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindDate
	KindTime
)

// FieldSpec maps a public field name to its storage column.
type FieldSpec struct {
	Column   string
	Kind     FieldKind
	Sortable bool
}

// FieldSet is the whitelist of fields a category exposes to queries.
type FieldSet map[string]FieldSpec

// BaseFields are the fields every category table carries.
var BaseFields = FieldSet{
	FieldID:           {Column: "id", Kind: KindNumber, Sortable: true},
	FieldOwnerID:      {Column: "owner_id", Kind: KindText},
	FieldStatus:       {Column: "status", Kind: KindText},
	FieldTitle:        {Column: "title", Kind: KindText, Sortable: true},
	FieldDescription:  {Column: "description", Kind: KindText, Sortable: true},
	FieldCreatedDate:  {Column: "created_date", Kind: KindTime, Sortable: true},
	FieldModifiedDate: {Column: "modified_date", Kind: KindTime, Sortable: true},
}

// With returns a new set holding fs and extra. Entries in extra win.
func (fs FieldSet) With(extra FieldSet) FieldSet {
	out := make(FieldSet, len(fs)+len(extra))
	for k, v := range fs {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func (fs FieldSet) Lookup(name string) (FieldSpec, bool) {
	spec, ok := fs[name]
	return spec, ok
}
