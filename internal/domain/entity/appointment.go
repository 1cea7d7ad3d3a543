package entity

// AppointmentStatus represents where an appointment is in its lifecycle
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusInProgress, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Open reports whether the appointment can still be completed or cancelled
func (s AppointmentStatus) Open() bool {
	return s == AppointmentStatusScheduled || s == AppointmentStatusInProgress
}

// Appointment storage names
const (
	AppointmentPatient        = "patient_id_c"
	AppointmentDoctor         = "doctor_id_c"
	AppointmentDepartment     = "department_id_c"
	AppointmentDate           = "appointment_date_c"
	AppointmentTime           = "appointment_time_c"
	AppointmentReasonForVisit = "reason_for_visit_c"
	AppointmentNotes          = "notes_c"
	AppointmentStatusField    = "status_c"
	AppointmentCreatedAt      = "created_at_c"
)

// Appointment represents a scheduled visit of a patient to a doctor
type Appointment struct {
	ID             int               `gorm:"column:id;primaryKey;autoIncrement" json:"Id"`
	Name           string            `gorm:"column:name;type:varchar(255)" json:"Name"`
	PatientID      Ref               `gorm:"column:patient_id_c;type:integer;not null;index" json:"patient_id_c"`
	DoctorID       Ref               `gorm:"column:doctor_id_c;type:integer;not null;index" json:"doctor_id_c"`
	DepartmentID   Ref               `gorm:"column:department_id_c;type:integer;not null;index" json:"department_id_c"`
	Date           string            `gorm:"column:appointment_date_c;type:varchar(10);index" json:"appointment_date_c"`
	Time           string            `gorm:"column:appointment_time_c;type:varchar(5)" json:"appointment_time_c"`
	ReasonForVisit string            `gorm:"column:reason_for_visit_c;type:text" json:"reason_for_visit_c"`
	Notes          string            `gorm:"column:notes_c;type:text" json:"notes_c"`
	Status         AppointmentStatus `gorm:"column:status_c;type:varchar(20);not null;default:'scheduled';index" json:"status_c"`
	CreatedAt      string            `gorm:"column:created_at_c;type:varchar(10)" json:"created_at_c"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) GetID() int {
	return a.ID
}

func (a *Appointment) SetID(id int) {
	a.ID = id
}

var appointmentSchema = Schema{
	Entity:      "appointment",
	Table:       "appointments",
	RemoteTable: "appointment_c",
	Fields: []string{
		FieldName, AppointmentPatient, AppointmentDoctor, AppointmentDepartment, AppointmentDate,
		AppointmentTime, AppointmentReasonForVisit, AppointmentNotes, AppointmentStatusField,
		AppointmentCreatedAt,
	},
	References: []string{AppointmentPatient, AppointmentDoctor, AppointmentDepartment},
	Immutable:  []string{AppointmentCreatedAt},
}

func (a *Appointment) Schema() Schema {
	return appointmentSchema
}
