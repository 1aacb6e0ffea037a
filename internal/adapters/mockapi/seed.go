package mockapi

import (
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// mockPassword is the single sentinel credential the mock directory
// accepts. Deliberately plaintext: authentication security is out of scope
// for the mock backend.
const mockPassword = "password"

func seedUsers() []entities.User {
	return []entities.User{
		{
			ID:     "1",
			Name:   "Dr. Jane Smith",
			Email:  "doctor@example.com",
			Role:   entities.UserRoleDoctor,
			Avatar: "https://images.pexels.com/photos/5452293/pexels-photo-5452293.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:     "2",
			Name:   "Admin User",
			Email:  "admin@example.com",
			Role:   entities.UserRoleAdmin,
			Avatar: "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
	}
}

func seedPatients() []entities.Patient {
	return []entities.Patient{
		{
			ID:          "1",
			Name:        "Sarah Johnson",
			DateOfBirth: "1985-04-12",
			Gender:      entities.GenderFemale,
			Contact: entities.ContactInfo{
				Phone:   "(555) 123-4567",
				Email:   "sarah.j@example.com",
				Address: "123 Main St, Anytown, CA 94321",
			},
			InsuranceInfo: &entities.InsuranceInfo{
				Provider:     "Blue Shield",
				PolicyNumber: "BS12345678",
			},
			MedicalHistory: []entities.MedicalHistory{
				{ID: "101", Condition: "Asthma", DiagnosedDate: "2010-06-15", Notes: "Mild, controlled with inhaler"},
				{ID: "102", Condition: "Hypertension", DiagnosedDate: "2018-03-22", Notes: "Managed with daily medication"},
			},
		},
		{
			ID:          "2",
			Name:        "Michael Chen",
			DateOfBirth: "1978-11-30",
			Gender:      entities.GenderMale,
			Contact: entities.ContactInfo{
				Phone:   "(555) 987-6543",
				Email:   "m.chen@example.com",
				Address: "456 Oak Ave, Somewhere, NY 10001",
			},
			InsuranceInfo: &entities.InsuranceInfo{
				Provider:     "Aetna",
				PolicyNumber: "AE87654321",
			},
			MedicalHistory: []entities.MedicalHistory{
				{ID: "201", Condition: "Type 2 Diabetes", DiagnosedDate: "2015-08-03", Notes: "Well-controlled with diet and medication"},
			},
		},
		{
			ID:          "3",
			Name:        "Emily Wilson",
			DateOfBirth: "1992-07-17",
			Gender:      entities.GenderFemale,
			Contact: entities.ContactInfo{
				Phone:   "(555) 456-7890",
				Email:   "e.wilson@example.com",
				Address: "789 Pine Rd, Elsewhere, TX 75001",
			},
			InsuranceInfo: &entities.InsuranceInfo{
				Provider:     "UnitedHealthcare",
				PolicyNumber: "UH98765432",
			},
		},
		{
			ID:          "4",
			Name:        "Robert Martinez",
			DateOfBirth: "1965-02-28",
			Gender:      entities.GenderMale,
			Contact: entities.ContactInfo{
				Phone:   "(555) 234-5678",
				Email:   "r.martinez@example.com",
				Address: "321 Cedar Ln, Nowhere, FL 33101",
			},
			InsuranceInfo: &entities.InsuranceInfo{
				Provider:     "Medicare",
				PolicyNumber: "MC12345678",
			},
			MedicalHistory: []entities.MedicalHistory{
				{ID: "301", Condition: "Coronary Artery Disease", DiagnosedDate: "2012-11-15", Notes: "History of stent placement, 2012"},
				{ID: "302", Condition: "Osteoarthritis", DiagnosedDate: "2018-05-20", Notes: "Affecting knees and hips"},
			},
		},
	}
}

// seedAppointments builds the appointment collection relative to the given
// day, mirroring how the stand-in backend would hold a live schedule.
func seedAppointments(today time.Time) []entities.Appointment {
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(entities.DateLayout)
	}
	return []entities.Appointment{
		{
			ID: "101", PatientID: "1", PatientName: "Sarah Johnson",
			DoctorID: "1", DoctorName: "Dr. Jane Smith",
			Date: day(0), Time: "09:00",
			Status: entities.AppointmentStatusScheduled,
			Type:   entities.AppointmentTypeFollowUp,
			Notes:  "Follow-up on headache treatment",
		},
		{
			ID: "102", PatientID: "2", PatientName: "Michael Chen",
			DoctorID: "1", DoctorName: "Dr. Jane Smith",
			Date: day(1), Time: "10:30",
			Status: entities.AppointmentStatusScheduled,
			Type:   entities.AppointmentTypeFollowUp,
			Notes:  "Diabetes management check",
		},
		{
			ID: "103", PatientID: "3", PatientName: "Emily Wilson",
			DoctorID: "1", DoctorName: "Dr. Jane Smith",
			Date: day(-1), Time: "14:00",
			Status: entities.AppointmentStatusCompleted,
			Type:   entities.AppointmentTypeCheckUp,
			Notes:  "Annual physical examination",
		},
		{
			ID: "104", PatientID: "4", PatientName: "Robert Martinez",
			DoctorID: "1", DoctorName: "Dr. Jane Smith",
			Date: day(-2), Time: "11:15",
			Status: entities.AppointmentStatusCompleted,
			Type:   entities.AppointmentTypeConsultation,
			Notes:  "Knee pain consultation",
		},
		{
			ID: "105", PatientID: "1", PatientName: "Sarah Johnson",
			DoctorID: "1", DoctorName: "Dr. Jane Smith",
			Date: day(3), Time: "15:45",
			Status: entities.AppointmentStatusScheduled,
			Type:   entities.AppointmentTypeFollowUp,
			Notes:  "Review lab results",
		},
		{
			ID: "106", PatientID: "3", PatientName: "Emily Wilson",
			DoctorID: "1", DoctorName: "Dr. Jane Smith",
			Date: day(2), Time: "08:30",
			Status: entities.AppointmentStatusScheduled,
			Type:   entities.AppointmentTypeConsultation,
			Notes:  "Discussion of preventative care options",
		},
	}
}

func seedTranscriptions() []entities.Transcription {
	return []entities.Transcription{
		{
			ID: "1", AppointmentID: "101", PatientID: "1", PatientName: "Sarah Johnson",
			DoctorID: "1", DoctorName: "Dr. Jane Smith", Date: "2023-04-15",
			Content: `Patient presents with recurring headaches, primarily in the frontal region. She describes the pain as "throbbing" and rates it 7/10 at its worst. Symptoms have been present for approximately 2 weeks.

Examination reveals no neurological deficits. Vitals are stable. No fever or signs of infection.

Assessment: Tension headaches, likely exacerbated by reported workplace stress.

Plan: Prescribed ibuprofen 400mg every 6 hours as needed for pain. Recommended stress reduction techniques and adequate hydration. Patient to return in 2 weeks if symptoms persist or worsen. Discussed possible referral to neurology if no improvement.`,
			Tags:        []string{"headache", "stress", "pain management"},
			Status:      entities.TranscriptionStatusFinal,
			LastUpdated: mustParseTime("2023-04-15T16:30:00Z"),
		},
		{
			ID: "2", AppointmentID: "102", PatientID: "2", PatientName: "Michael Chen",
			DoctorID: "1", DoctorName: "Dr. Jane Smith", Date: "2023-04-16",
			Content: `Follow-up appointment for Type 2 Diabetes management. Patient reports improved compliance with medication regimen and dietary recommendations.

Blood glucose readings (from patient's log): Fasting - average 130 mg/dL (range 110-145). Post-meal - average 180 mg/dL (range 160-210).

Recent HbA1c: 7.2% (improved from 8.1% 3 months ago)

Assessment: Improving diabetic control, but not yet at target.

Plan: Continue current medication. Reinforced importance of consistent carbohydrate counting. Provided additional resources for meal planning. Scheduled next HbA1c test for 3 months. Will consider medication adjustment at next visit if targets not met.`,
			Tags:        []string{"diabetes", "follow-up", "medication management"},
			Status:      entities.TranscriptionStatusFinal,
			LastUpdated: mustParseTime("2023-04-16T14:45:00Z"),
		},
		{
			ID: "3", AppointmentID: "103", PatientID: "3", PatientName: "Emily Wilson",
			DoctorID: "1", DoctorName: "Dr. Jane Smith", Date: "2023-04-17",
			Content: `Patient presents for annual physical examination. No specific complaints reported. Generally feeling well.

Review of systems negative for significant issues. Patient reports regular exercise 3x weekly. Non-smoker. Occasional alcohol use (1-2 drinks/week).

Vitals: BP 118/76, HR 68, Temp 98.6°F, RR 14, O2 sat 99%.

Physical examination unremarkable. Labs ordered: CBC, CMP, lipid panel, TSH.

Assessment: Healthy adult female. Preventive care up-to-date.

Plan: Continue current lifestyle. Review labs when available. Recommended age-appropriate cancer screenings discussed. Flu vaccine administered today.`,
			Tags:        []string{"annual exam", "preventive care"},
			Status:      entities.TranscriptionStatusFinal,
			LastUpdated: mustParseTime("2023-04-17T11:15:00Z"),
		},
		{
			ID: "4", AppointmentID: "104", PatientID: "4", PatientName: "Robert Martinez",
			DoctorID: "1", DoctorName: "Dr. Jane Smith", Date: "2023-04-18",
			Content: `Patient presents with increasing knee pain, particularly in right knee. Reports pain is worse with climbing stairs and after prolonged walking. Minimal relief with OTC NSAIDs.

Examination shows mild swelling of right knee. Range of motion limited by pain. No erythema or increased warmth.

X-ray results (from last month): Moderate degenerative changes, osteophyte formation, joint space narrowing consistent with osteoarthritis.

Assessment: Osteoarthritis of the right knee with acute exacerbation.

Plan: Prescribed meloxicam 15mg daily with gastroprotection. Discussed weight management strategies. Referral to physical therapy for strengthening exercises. Consider orthopedic consultation if no improvement in 4-6 weeks.`,
			Tags:        []string{"osteoarthritis", "pain management", "knee pain"},
			Status:      entities.TranscriptionStatusDraft,
			LastUpdated: mustParseTime("2023-04-18T09:30:00Z"),
		},
	}
}

func mustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
