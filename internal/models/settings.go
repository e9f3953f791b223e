package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mashkanta-digital/admin-api/internal/scheduling"
)

// SettingsDocument holds the whole scheduling configuration as a single
// JSONB column. Load and save always replace it wholesale; there are no
// partial-field updates at the storage level, so readers always see one
// coherent snapshot.
type SettingsDocument struct {
	scheduling.Snapshot
}

// Value marshals the document for storage.
func (d SettingsDocument) Value() (driver.Value, error) {
	return json.Marshal(d.Snapshot)
}

// Scan unmarshals the document from its stored representation.
func (d *SettingsDocument) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, &d.Snapshot)
	case string:
		return json.Unmarshal([]byte(v), &d.Snapshot)
	default:
		return fmt.Errorf("unsupported settings document type %T", src)
	}
}

// SchedulingSettings is the stored form of the availability
// configuration: weekly template, date exceptions, agent capacity and
// the holiday toggle.
type SchedulingSettings struct {
	ID        string           `db:"id" json:"id"`
	Document  SettingsDocument `db:"document" json:"document"`
	UpdatedAt time.Time        `db:"updated_at" json:"updated_at"`
}
