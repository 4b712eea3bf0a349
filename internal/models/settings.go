package models

import "time"

// MaintenanceSettingsID is the fixed primary key of the settings singleton.
const MaintenanceSettingsID = 1

// MaintenanceSettings is the platform-wide maintenance singleton row.
type MaintenanceSettings struct {
	ID                     int        `db:"id" json:"id"`
	MaintenanceEnabled     bool       `db:"maintenance_enabled" json:"maintenance_enabled"`
	MaintenanceMessage     string     `db:"maintenance_message" json:"maintenance_message"`
	MaintenanceOpeningDate *time.Time `db:"maintenance_opening_date" json:"maintenance_opening_date,omitempty"`
	UpdatedAt              time.Time  `db:"updated_at" json:"updated_at"`
}

// MaintenanceStatus is the effective state presented to callers: an enabled
// flag whose opening date has passed reads as reopened.
type MaintenanceStatus struct {
	MaintenanceSettings
	Effective bool `json:"effective"`
}
