package models

// Settings is the singleton dashboard settings record
type Settings struct {
	VisitMode bool `json:"visit_mode" db:"visit_mode"`
}

// SettingsUpdateRequest is the request body for PATCH /api/admin/settings
type SettingsUpdateRequest struct {
	VisitMode *bool `json:"visit_mode,omitempty"`
}
