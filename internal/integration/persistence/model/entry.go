package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// EntryDocument stores the logged value as a JSON document so checkbox and
// number payloads share one column.
type EntryDocument entity.Entry

// Value implements driver.Valuer.
func (d EntryDocument) Value() (driver.Value, error) {
	return json.Marshal(entity.Entry(d))
}

// Scan implements sql.Scanner.
func (d *EntryDocument) Scan(value interface{}) error {
	if value == nil {
		*d = EntryDocument{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for entry value column")
	}

	var decoded entity.Entry
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*d = EntryDocument(decoded)
	return nil
}

// EntryModel represents the entries table in the database. One row per
// (user, date, habit); a re-log overwrites the row in place.
type EntryModel struct {
	UserID    uuid.UUID     `gorm:"type:uuid;primaryKey"`
	DateISO   string        `gorm:"column:date_iso;type:varchar(10);primaryKey"`
	HabitID   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Value     EntryDocument `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time     `gorm:"not null"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToRecord converts an EntryModel to an application-layer entry record.
func (m *EntryModel) ToRecord() adapter.EntryRecord {
	return adapter.EntryRecord{
		UserID:  m.UserID,
		DateISO: m.DateISO,
		HabitID: m.HabitID,
		Entry:   entity.Entry(m.Value),
	}
}

// EntryFromRecord creates an EntryModel from an application-layer entry record.
func EntryFromRecord(record adapter.EntryRecord) *EntryModel {
	return &EntryModel{
		UserID:  record.UserID,
		DateISO: record.DateISO,
		HabitID: record.HabitID,
		Value:   EntryDocument(record.Entry),
	}
}
