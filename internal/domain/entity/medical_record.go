package entity

// Medical record storage names
const (
	MedicalRecordPatient      = "patient_id_c"
	MedicalRecordDoctor       = "doctor_id_c"
	MedicalRecordAppointment  = "appointment_id_c"
	MedicalRecordVisitDate    = "visit_date_c"
	MedicalRecordDiagnosis    = "diagnosis_c"
	MedicalRecordFollowUpDate = "follow_up_date_c"
)

// MedicalRecord is a diagnosis captured during a patient visit
type MedicalRecord struct {
	ID            int    `gorm:"column:id;primaryKey;autoIncrement" json:"Id"`
	Name          string `gorm:"column:name;type:varchar(255)" json:"Name"`
	PatientID     Ref    `gorm:"column:patient_id_c;type:integer;not null;index" json:"patient_id_c"`
	DoctorID      Ref    `gorm:"column:doctor_id_c;type:integer;not null;index" json:"doctor_id_c"`
	AppointmentID Ref    `gorm:"column:appointment_id_c;type:integer" json:"appointment_id_c"`
	VisitDate     string `gorm:"column:visit_date_c;type:varchar(10)" json:"visit_date_c"`
	Diagnosis     string `gorm:"column:diagnosis_c;type:text" json:"diagnosis_c"`
	FollowUpDate  string `gorm:"column:follow_up_date_c;type:varchar(10)" json:"follow_up_date_c"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

func (m *MedicalRecord) GetID() int {
	return m.ID
}

func (m *MedicalRecord) SetID(id int) {
	m.ID = id
}

var medicalRecordSchema = Schema{
	Entity:      "medical record",
	Table:       "medical_records",
	RemoteTable: "medical_record_c",
	Fields: []string{
		FieldName, MedicalRecordPatient, MedicalRecordDoctor, MedicalRecordAppointment,
		MedicalRecordVisitDate, MedicalRecordDiagnosis, MedicalRecordFollowUpDate,
	},
	References: []string{MedicalRecordPatient, MedicalRecordDoctor, MedicalRecordAppointment},
}

func (m *MedicalRecord) Schema() Schema {
	return medicalRecordSchema
}
