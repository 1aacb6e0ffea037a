package entities

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// AppointmentType represents the kind of visit
type AppointmentType string

const (
	AppointmentTypeCheckUp      AppointmentType = "check-up"
	AppointmentTypeFollowUp     AppointmentType = "follow-up"
	AppointmentTypeEmergency    AppointmentType = "emergency"
	AppointmentTypeConsultation AppointmentType = "consultation"
)

// DateLayout is the calendar-date format used by Appointment.Date and
// Transcription.Date. Zero-padded ISO dates compare lexicographically in
// chronological order, which the derived queries rely on.
const DateLayout = "2006-01-02"

// Appointment represents a scheduled visit. PatientName and DoctorName are
// snapshots taken when the appointment was created; they are not live
// references and must not be re-joined against the patient or user
// collections.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patientId"`
	PatientName string            `json:"patientName"`
	DoctorID    string            `json:"doctorId"`
	DoctorName  string            `json:"doctorName"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Type        AppointmentType   `json:"type"`
	Notes       string            `json:"notes,omitempty"`
}
