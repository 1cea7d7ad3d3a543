package dto

type CreateDepartmentRequest struct {
	Name             string `json:"Name" validate:"required"`
	Description      string `json:"description_c"`
	Location         string `json:"location_c"`
	HeadOfDepartment string `json:"head_of_department_c"`
	ActivePatients   int    `json:"active_patients_c" validate:"gte=0"`
	TotalStaff       int    `json:"total_staff_c" validate:"gte=0"`
	ContactExtension string `json:"contact_extension_c"`
}

type UpdateDepartmentRequest struct {
	Name             *string `json:"Name" validate:"omitempty,min=1"`
	Description      *string `json:"description_c"`
	Location         *string `json:"location_c"`
	HeadOfDepartment *string `json:"head_of_department_c"`
	ActivePatients   *int    `json:"active_patients_c" validate:"omitempty,gte=0"`
	TotalStaff       *int    `json:"total_staff_c" validate:"omitempty,gte=0"`
	ContactExtension *string `json:"contact_extension_c"`
}

type DepartmentResponse struct {
	ID               int    `json:"Id"`
	Name             string `json:"Name"`
	Description      string `json:"description_c"`
	Location         string `json:"location_c"`
	HeadOfDepartment string `json:"head_of_department_c"`
	ActivePatients   int    `json:"active_patients_c"`
	TotalStaff       int    `json:"total_staff_c"`
	ContactExtension string `json:"contact_extension_c"`
}
