package domain

// Collection names, one per entity kind. Ephemeral kinds (match, matchpreference)
// have no backing collection but are still listed by the schema endpoint for
// database viewer tooling.
const (
	KindStartup         = "startup"
	KindInvestor        = "investor"
	KindMatchPreference = "matchpreference"
	KindMatch           = "match"
	KindMessage         = "message"
	KindActivityLog     = "activitylog"
	KindVerification    = "verification"
)

// Kinds returns the names of all known entity kinds.
func Kinds() []string {
	return []string{
		KindStartup,
		KindInvestor,
		KindMatchPreference,
		KindMatch,
		KindMessage,
		KindActivityLog,
		KindVerification,
	}
}

// Stage is a startup funding stage.
type Stage string

// Declared stage values.
const (
	StageIdea    Stage = "idea"
	StageMVP     Stage = "MVP"
	StagePreSeed Stage = "pre-seed"
	StageSeed    Stage = "seed"
	StageSeriesA Stage = "series-a"
	StageSeriesB Stage = "series-b"
)

// Valid reports whether s is one of the declared stage values.
func (s Stage) Valid() bool {
	switch s {
	case StageIdea, StageMVP, StagePreSeed, StageSeed, StageSeriesA, StageSeriesB:
		return true
	}
	return false
}

// UserType distinguishes the two profile kinds.
type UserType string

// Declared user types.
const (
	UserTypeStartup  UserType = "startup"
	UserTypeInvestor UserType = "investor"
)

// Valid reports whether t is a declared user type.
func (t UserType) Valid() bool {
	return t == UserTypeStartup || t == UserTypeInvestor
}

// VerificationStatus is the review state of a KYC submission.
type VerificationStatus string

// Declared verification statuses.
const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Valid reports whether s is a declared verification status.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	}
	return false
}
