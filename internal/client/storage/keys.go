package storage

// Logical keys of the durable store. The names are kept bit-for-bit
// compatible with earlier CareMate clients so existing stores keep working.
const (
	// KeyUsers holds the serialized list of user records.
	KeyUsers = "cm_users_v1"
	// KeySessionMarker holds the email of the currently authenticated user.
	KeySessionMarker = "cm_current_user_v1"
	// KeyOnboardingComplete is a presence sentinel ("1" when set).
	KeyOnboardingComplete = "cm_onboarding_complete_v1"
	// KeyConsentAccepted is a presence sentinel ("1" when set).
	KeyConsentAccepted = "cm_consent_accepted_v1"
)
