package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salesdesk/internal/core/entity"
	"salesdesk/internal/core/id"
)

type mockRecord struct {
	entity.Base
	Name    string  `db:"name" json:"name"`
	Phone   *string `db:"phone" json:"phone"`
	Skipped string  `db:"-" json:"skipped"`
	NoTag   string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockRecord]()

	assert.Equal(t, []string{"id", "name", "phone"}, cols)
}

func TestExtractDBColumnsPointerType(t *testing.T) {
	cols := ExtractDBColumns[*mockRecord]()

	assert.Equal(t, []string{"id", "name", "phone"}, cols)
}

func TestStructToMap(t *testing.T) {
	phone := "555-1234"
	rec := mockRecord{
		Base:    entity.Base{ID: id.New()},
		Name:    "Test Name",
		Phone:   &phone,
		Skipped: "invisible",
		NoTag:   "also invisible",
	}

	m := StructToMap(&rec)

	assert.Equal(t, rec.ID, m["id"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, &phone, m["phone"])
	assert.NotContains(t, m, "skipped")
	assert.NotContains(t, m, "-")
	assert.Len(t, m, 3)
}

func TestStructToMapNilPointerField(t *testing.T) {
	rec := mockRecord{Base: entity.NewBase(), Name: "n"}

	m := StructToMap(rec)

	assert.Contains(t, m, "phone")
	assert.Nil(t, m["phone"].(*string))
}

func TestStructToMapNonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("str"))
}
