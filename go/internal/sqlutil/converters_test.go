package sqlutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStringConverters(t *testing.T) {
	s := "Bacău"
	assert.Equal(t, sql.NullString{String: "Bacău", Valid: true}, ToSqlString(&s))
	assert.False(t, ToSqlString(nil).Valid)
	assert.False(t, ToSqlNonEmpty("").Valid)
	assert.Equal(t, "x", ToSqlNonEmpty("x").String)

	assert.Equal(t, "fallback", FromSqlString(sql.NullString{}, "fallback"))
	assert.Equal(t, "", FromSqlString(sql.NullString{Valid: true}, "fallback"))
	assert.Nil(t, FromSqlStringPtr(sql.NullString{}))
	assert.Equal(t, "Bacău", *FromSqlStringPtr(sql.NullString{String: "Bacău", Valid: true}))
}

func TestInt16Converters(t *testing.T) {
	assert.Equal(t, sql.NullInt16{Int16: 4, Valid: true}, ToSqlInt16(4))
	assert.Equal(t, 3, FromSqlInt16(sql.NullInt16{}, 3))
	assert.Equal(t, 5, FromSqlInt16(sql.NullInt16{Int16: 5, Valid: true}, 3))
}

func TestUUIDConverters(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, uuid.NullUUID{UUID: id, Valid: true}, ToNullUUID(&id))
	assert.False(t, ToNullUUID(nil).Valid)
	assert.Nil(t, FromNullUUID(uuid.NullUUID{}))
	assert.Equal(t, id, *FromNullUUID(uuid.NullUUID{UUID: id, Valid: true}))
}
