package model

import "github.com/oapi-codegen/nullable"

// ItemsTable is the database table holding items.
const ItemsTable = "items"

// Item is one shoe-cleaning service order.
//
// JSON keys match the table's column names, so the same struct decodes
// PostgREST rows and encodes API responses.
type Item struct {
	ID             int64   `json:"id"`
	Nama           string  `json:"nama"`
	Status         string  `json:"status"`
	TanggalMasuk   string  `json:"tanggalMasuk"`
	TanggalSelesai *string `json:"tanggalSelesai"`
}

// NewItem is the insert payload. ID is assigned by the database.
type NewItem struct {
	Nama           string  `json:"nama"`
	Status         string  `json:"status"`
	TanggalMasuk   string  `json:"tanggalMasuk"`
	TanggalSelesai *string `json:"tanggalSelesai"`
}

// ItemPatch is a partial update set. Only non-nil fields are written.
//
// The three text fields are set only when the request carries a non-empty
// value. TanggalSelesai is specified whenever the key was present, and
// an explicit null means "clear it".
type ItemPatch struct {
	Nama           *string
	Status         *string
	TanggalMasuk   *string
	TanggalSelesai nullable.Nullable[string]
}

// IsEmpty reports whether the patch would change nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Nama == nil && p.Status == nil && p.TanggalMasuk == nil && !p.TanggalSelesai.IsSpecified()
}

// Fields returns the column -> value map sent to the database. A cleared
// TanggalSelesai maps to nil, which encodes as JSON null.
func (p ItemPatch) Fields() map[string]any {
	fields := make(map[string]any, 4)
	if p.Nama != nil {
		fields["nama"] = *p.Nama
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.TanggalMasuk != nil {
		fields["tanggalMasuk"] = *p.TanggalMasuk
	}
	if completion, ok := p.Completion(); ok {
		if completion == nil {
			fields["tanggalSelesai"] = nil
		} else {
			fields["tanggalSelesai"] = *completion
		}
	}
	return fields
}

// Completion returns the new completion date and whether the patch sets
// one at all. A nil date with ok=true clears the column.
func (p ItemPatch) Completion() (date *string, ok bool) {
	if !p.TanggalSelesai.IsSpecified() {
		return nil, false
	}
	if p.TanggalSelesai.IsNull() {
		return nil, true
	}
	v := p.TanggalSelesai.MustGet()
	return &v, true
}
