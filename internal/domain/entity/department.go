package entity

// Department storage names
const (
	DepartmentDescription      = "description_c"
	DepartmentLocation         = "location_c"
	DepartmentHead             = "head_of_department_c"
	DepartmentActivePatients   = "active_patients_c"
	DepartmentTotalStaff       = "total_staff_c"
	DepartmentContactExtension = "contact_extension_c"
)

// Department represents a hospital department. Name is its display name.
type Department struct {
	ID               int    `gorm:"column:id;primaryKey;autoIncrement" json:"Id"`
	Name             string `gorm:"column:name;type:varchar(255);not null" json:"Name"`
	Description      string `gorm:"column:description_c;type:text" json:"description_c"`
	Location         string `gorm:"column:location_c;type:varchar(255)" json:"location_c"`
	HeadOfDepartment string `gorm:"column:head_of_department_c;type:varchar(255)" json:"head_of_department_c"`
	ActivePatients   int    `gorm:"column:active_patients_c;not null;default:0" json:"active_patients_c"`
	TotalStaff       int    `gorm:"column:total_staff_c;not null;default:0" json:"total_staff_c"`
	ContactExtension string `gorm:"column:contact_extension_c;type:varchar(20)" json:"contact_extension_c"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) GetID() int {
	return d.ID
}

func (d *Department) SetID(id int) {
	d.ID = id
}

var departmentSchema = Schema{
	Entity:      "department",
	Table:       "departments",
	RemoteTable: "department_c",
	Fields: []string{
		FieldName, DepartmentDescription, DepartmentLocation, DepartmentHead,
		DepartmentActivePatients, DepartmentTotalStaff, DepartmentContactExtension,
	},
}

func (d *Department) Schema() Schema {
	return departmentSchema
}
