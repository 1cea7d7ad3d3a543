package entity

import "strings"

// DoctorStatus represents a doctor's current availability
type DoctorStatus string

const (
	DoctorStatusAvailable DoctorStatus = "available"
	DoctorStatusBusy      DoctorStatus = "busy"
	DoctorStatusOffDuty   DoctorStatus = "off-duty"
)

func (s DoctorStatus) Valid() bool {
	switch s {
	case DoctorStatusAvailable, DoctorStatusBusy, DoctorStatusOffDuty:
		return true
	}
	return false
}

// Weekdays accepted in a doctor's available days list
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ValidWeekdays reports whether value is a comma-joined list of weekday names
func ValidWeekdays(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	for _, day := range strings.Split(value, ",") {
		day = strings.TrimSpace(day)
		known := false
		for _, weekday := range Weekdays {
			if strings.EqualFold(day, weekday) {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}

// Doctor storage names
const (
	DoctorFirstName      = "first_name_c"
	DoctorLastName       = "last_name_c"
	DoctorSpecialization = "specialization_c"
	DoctorContactNumber  = "contact_number_c"
	DoctorEmail          = "email_c"
	DoctorAvailableDays  = "available_days_c"
	DoctorAvailableHours = "available_hours_c"
	DoctorStatusField    = "status_c"
	DoctorDepartment     = "department_id_c"
)

// Doctor represents a member of the medical staff
type Doctor struct {
	ID             int          `gorm:"column:id;primaryKey;autoIncrement" json:"Id"`
	Name           string       `gorm:"column:name;type:varchar(255)" json:"Name"`
	FirstName      string       `gorm:"column:first_name_c;type:varchar(100);not null" json:"first_name_c"`
	LastName       string       `gorm:"column:last_name_c;type:varchar(100);not null" json:"last_name_c"`
	Specialization string       `gorm:"column:specialization_c;type:varchar(100);index" json:"specialization_c"`
	ContactNumber  string       `gorm:"column:contact_number_c;type:varchar(30)" json:"contact_number_c"`
	Email          string       `gorm:"column:email_c;type:varchar(255)" json:"email_c"`
	AvailableDays  string       `gorm:"column:available_days_c;type:varchar(100)" json:"available_days_c"`
	AvailableHours string       `gorm:"column:available_hours_c;type:varchar(100)" json:"available_hours_c"`
	Status         DoctorStatus `gorm:"column:status_c;type:varchar(20);not null;default:'available'" json:"status_c"`
	DepartmentID   Ref          `gorm:"column:department_id_c;type:integer;index" json:"department_id_c"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) GetID() int {
	return d.ID
}

func (d *Doctor) SetID(id int) {
	d.ID = id
}

func (d *Doctor) FullName() string {
	return joinName(d.FirstName, d.LastName, d.Name)
}

var doctorSchema = Schema{
	Entity:      "doctor",
	Table:       "doctors",
	RemoteTable: "doctor_c",
	Fields: []string{
		FieldName, DoctorFirstName, DoctorLastName, DoctorSpecialization, DoctorContactNumber,
		DoctorEmail, DoctorAvailableDays, DoctorAvailableHours, DoctorStatusField, DoctorDepartment,
	},
	References: []string{DoctorDepartment},
}

func (d *Doctor) Schema() Schema {
	return doctorSchema
}

func joinName(first, last, fallback string) string {
	full := strings.TrimSpace(first + " " + last)
	if full == "" {
		return fallback
	}
	return full
}
