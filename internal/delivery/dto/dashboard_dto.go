package dto

type DepartmentOverviewResponse struct {
	DepartmentResponse
	DoctorCount int `json:"doctor_count"`
}

type DashboardResponse struct {
	TotalPatients     int                          `json:"total_patients"`
	ActivePatients    int                          `json:"active_patients"`
	TotalDoctors      int                          `json:"total_doctors"`
	AvailableDoctors  int                          `json:"available_doctors"`
	TotalDepartments  int                          `json:"total_departments"`
	TodayAppointments []AppointmentResponse        `json:"today_appointments"`
	RecentPatients    []PatientResponse            `json:"recent_patients"`
	Departments       []DepartmentOverviewResponse `json:"departments"`
}
