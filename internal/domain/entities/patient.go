package entities

// Gender represents a patient's recorded gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ContactInfo holds a patient's contact details
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// InsuranceInfo holds a patient's insurance details
type InsuranceInfo struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policyNumber"`
}

// MedicalHistory represents one diagnosed condition in a patient's history
type MedicalHistory struct {
	ID            string `json:"id"`
	Condition     string `json:"condition"`
	DiagnosedDate string `json:"diagnosedDate"`
	Notes         string `json:"notes,omitempty"`
}

// Patient represents a registered patient
type Patient struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	DateOfBirth    string           `json:"dateOfBirth"`
	Gender         Gender           `json:"gender"`
	Contact        ContactInfo      `json:"contact"`
	InsuranceInfo  *InsuranceInfo   `json:"insuranceInfo,omitempty"`
	MedicalHistory []MedicalHistory `json:"medicalHistory,omitempty"`
}

// Clone returns a deep copy of the patient, so callers can never share
// mutable state with a store's collection.
func (p Patient) Clone() Patient {
	out := p
	if p.InsuranceInfo != nil {
		info := *p.InsuranceInfo
		out.InsuranceInfo = &info
	}
	if p.MedicalHistory != nil {
		out.MedicalHistory = make([]MedicalHistory, len(p.MedicalHistory))
		copy(out.MedicalHistory, p.MedicalHistory)
	}
	return out
}

// ClonePatients deep-copies a patient collection.
func ClonePatients(patients []Patient) []Patient {
	if patients == nil {
		return nil
	}
	out := make([]Patient, len(patients))
	for i, p := range patients {
		out[i] = p.Clone()
	}
	return out
}
