package domain

// Verification is a KYC submission tying identity documents to a profile.
// The referenced user id is resolved by convention, not validated for
// existence.
type Verification struct {
	ID          string             `json:"id,omitempty" bson:"-"`
	UserID      string             `json:"user_id" bson:"user_id"`
	UserType    UserType           `json:"user_type" bson:"user_type"`
	KYCProvider string             `json:"kyc_provider,omitempty" bson:"kyc_provider,omitempty"`
	CIN         string             `json:"cin,omitempty" bson:"cin,omitempty"`
	PAN         string             `json:"pan,omitempty" bson:"pan,omitempty"`
	GST         string             `json:"gst,omitempty" bson:"gst,omitempty"`
	SEBIReg     string             `json:"sebi_reg,omitempty" bson:"sebi_reg,omitempty"`
	Status      VerificationStatus `json:"status" bson:"status"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Normalize fills defaulted fields on a fresh payload.
func (v *Verification) Normalize() {
	if v.Status == "" {
		v.Status = VerificationPending
	}
}

// Validate checks field constraints.
func (v *Verification) Validate() error {
	e := &ValidationError{}
	if v.UserID == "" {
		e.Addf("user_id", "is required")
	}
	if !v.UserType.Valid() {
		e.Addf("user_type", "must be startup or investor")
	}
	if !v.Status.Valid() {
		e.Addf("status", "must be pending, approved or rejected")
	}
	return e.OrNil()
}
