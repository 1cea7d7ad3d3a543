package converter

import (
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/usecase"
)

func DashboardToResponse(stats *usecase.DashboardStats) *dto.DashboardResponse {
	if stats == nil {
		return nil
	}

	departments := make([]dto.DepartmentOverviewResponse, len(stats.Departments))
	for i, overview := range stats.Departments {
		departments[i] = dto.DepartmentOverviewResponse{
			DepartmentResponse: *DepartmentToResponse(&overview.Department),
			DoctorCount:        overview.DoctorCount,
		}
	}

	return &dto.DashboardResponse{
		TotalPatients:     stats.TotalPatients,
		ActivePatients:    stats.ActivePatients,
		TotalDoctors:      stats.TotalDoctors,
		AvailableDoctors:  stats.AvailableDoctors,
		TotalDepartments:  stats.TotalDepartments,
		TodayAppointments: AppointmentsToResponses(stats.TodayAppointments, stats.References),
		RecentPatients:    PatientsToResponses(stats.RecentPatients),
		Departments:       departments,
	}
}
