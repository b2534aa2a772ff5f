package models

// Doctor is a verified doctor profile from /doctors.
type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Rating          float64  `json:"rating"`
	ExperienceYears int      `json:"experience_years"`
	Languages       []string `json:"languages,omitempty"`
	Teleconsult     bool     `json:"teleconsult"`
}

// Consult modes accepted by /consult.
const (
	ConsultModeTeleconsult = "teleconsult"
	ConsultModeSendReport  = "send_report"
)

// ConsultRequest schedules a teleconsult or sends a report to a doctor.
type ConsultRequest struct {
	UserID       string `json:"user_id,omitempty"`
	DoctorID     string `json:"doctor_id"`
	PredictionID string `json:"prediction_id,omitempty"`
	Mode         string `json:"mode"`
	When         string `json:"when_iso,omitempty"` // RFC 3339
}

// ConsultBooking is the backend's acknowledgement of a consult request.
type ConsultBooking struct {
	ConsultID string `json:"consult_id"`
	Status    string `json:"status"` // scheduled | sent
}
