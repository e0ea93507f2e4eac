package domain

// ActivityLog is a write-side-effect analytics record. Writes are best-effort:
// callers log failures and move on, never surfacing them.
type ActivityLog struct {
	UserID   string         `json:"user_id" bson:"user_id"`
	UserType UserType       `json:"user_type" bson:"user_type"`
	Action   string         `json:"action" bson:"action"`
	Meta     map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}
