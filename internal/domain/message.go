package domain

// Message is one chat message between two identifiers. Append-only.
type Message struct {
	ID         string `json:"id,omitempty" bson:"-"`
	SenderID   string `json:"sender_id" bson:"sender_id"`
	ReceiverID string `json:"receiver_id" bson:"receiver_id"`
	Body       string `json:"body" bson:"body"`
	Read       bool   `json:"read" bson:"read"`
}

// Validate checks field constraints.
func (m *Message) Validate() error {
	v := &ValidationError{}
	if m.SenderID == "" {
		v.Addf("sender_id", "is required")
	}
	if m.ReceiverID == "" {
		v.Addf("receiver_id", "is required")
	}
	if m.Body == "" {
		v.Addf("body", "is required")
	}
	return v.OrNil()
}
