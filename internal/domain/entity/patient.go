package entity

// PatientStatus is the admission state of a patient
type PatientStatus string

const (
	PatientStatusActive     PatientStatus = "active"
	PatientStatusDischarged PatientStatus = "discharged"
	PatientStatusAdmitted   PatientStatus = "admitted"
)

// Valid reports whether s is one of the known patient states
func (s PatientStatus) Valid() bool {
	switch s {
	case PatientStatusActive, PatientStatusDischarged, PatientStatusAdmitted:
		return true
	}
	return false
}

// BloodGroups are the canonical ABO/Rh groups accepted on patient records
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// IsBloodGroup reports whether value is a canonical blood group
func IsBloodGroup(value string) bool {
	for _, group := range BloodGroups {
		if group == value {
			return true
		}
	}
	return false
}

// Patient storage names
const (
	PatientFirstName        = "first_name_c"
	PatientLastName         = "last_name_c"
	PatientDateOfBirth      = "date_of_birth_c"
	PatientContactNumber    = "contact_number_c"
	PatientEmail            = "email_c"
	PatientAddress          = "address_c"
	PatientBloodGroup       = "blood_group_c"
	PatientAllergies        = "allergies_c"
	PatientMedicalHistory   = "medical_history_c"
	PatientEmergencyContact = "emergency_contact_c"
	PatientStatusField      = "status_c"
	PatientRegistrationDate = "registration_date_c"
)

// Patient represents a registered patient
type Patient struct {
	ID               int           `gorm:"column:id;primaryKey;autoIncrement" json:"Id"`
	Name             string        `gorm:"column:name;type:varchar(255)" json:"Name"`
	FirstName        string        `gorm:"column:first_name_c;type:varchar(100);not null" json:"first_name_c"`
	LastName         string        `gorm:"column:last_name_c;type:varchar(100);not null" json:"last_name_c"`
	DateOfBirth      string        `gorm:"column:date_of_birth_c;type:varchar(10)" json:"date_of_birth_c"`
	ContactNumber    string        `gorm:"column:contact_number_c;type:varchar(30)" json:"contact_number_c"`
	Email            string        `gorm:"column:email_c;type:varchar(255)" json:"email_c"`
	Address          string        `gorm:"column:address_c;type:text" json:"address_c"`
	BloodGroup       string        `gorm:"column:blood_group_c;type:varchar(3)" json:"blood_group_c"`
	Allergies        string        `gorm:"column:allergies_c;type:text" json:"allergies_c"`
	MedicalHistory   string        `gorm:"column:medical_history_c;type:text" json:"medical_history_c"`
	EmergencyContact string        `gorm:"column:emergency_contact_c;type:varchar(255)" json:"emergency_contact_c"`
	Status           PatientStatus `gorm:"column:status_c;type:varchar(20);not null;default:'active';index" json:"status_c"`
	RegistrationDate string        `gorm:"column:registration_date_c;type:varchar(10)" json:"registration_date_c"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) GetID() int {
	return p.ID
}

func (p *Patient) SetID(id int) {
	p.ID = id
}

// FullName joins first and last name, falling back to the display name
func (p *Patient) FullName() string {
	return joinName(p.FirstName, p.LastName, p.Name)
}

var patientSchema = Schema{
	Entity:      "patient",
	Table:       "patients",
	RemoteTable: "patient_c",
	Fields: []string{
		FieldName, PatientFirstName, PatientLastName, PatientDateOfBirth, PatientContactNumber,
		PatientEmail, PatientAddress, PatientBloodGroup, PatientAllergies, PatientMedicalHistory,
		PatientEmergencyContact, PatientStatusField, PatientRegistrationDate,
	},
	Immutable: []string{PatientRegistrationDate},
}

func (p *Patient) Schema() Schema {
	return patientSchema
}
