package usecase

import (
	"context"
	"sort"
	"time"

	"hospital-registry/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

const recentPatientsLimit = 5

// DepartmentOverview pairs a department with the number of doctors assigned to it
type DepartmentOverview struct {
	Department  entity.Department
	DoctorCount int
}

type DashboardStats struct {
	TotalPatients     int
	ActivePatients    int
	TotalDoctors      int
	AvailableDoctors  int
	TotalDepartments  int
	TodayAppointments []entity.Appointment
	RecentPatients    []entity.Patient
	Departments       []DepartmentOverview
	References        *ReferenceIndex
}

type DashboardUsecase interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardUsecase struct {
	patients     PatientUsecase
	doctors      DoctorUsecase
	departments  DepartmentUsecase
	appointments AppointmentUsecase
	now          func() time.Time
}

func NewDashboardUsecase(
	patients PatientUsecase,
	doctors DoctorUsecase,
	departments DepartmentUsecase,
	appointments AppointmentUsecase,
) DashboardUsecase {
	return &dashboardUsecase{
		patients:     patients,
		doctors:      doctors,
		departments:  departments,
		appointments: appointments,
		now:          time.Now,
	}
}

// Stats loads every collection concurrently and summarizes them. Collections that
// fail to load count as empty.
func (u *dashboardUsecase) Stats(ctx context.Context) (*DashboardStats, error) {
	var (
		patients     []entity.Patient
		doctors      []entity.Doctor
		departments  []entity.Department
		appointments []entity.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		patients = u.patients.GetAll(gctx)
		return nil
	})
	g.Go(func() error {
		doctors = u.doctors.GetAll(gctx)
		return nil
	})
	g.Go(func() error {
		departments = u.departments.GetAll(gctx)
		return nil
	})
	g.Go(func() error {
		appointments = u.appointments.GetAll(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalPatients:     len(patients),
		TotalDoctors:      len(doctors),
		TotalDepartments:  len(departments),
		TodayAppointments: []entity.Appointment{},
		References:        NewReferenceIndex(patients, doctors, departments),
	}

	for _, p := range patients {
		if p.Status == entity.PatientStatusActive {
			stats.ActivePatients++
		}
	}

	doctorsPerDepartment := make(map[int]int, len(departments))
	for _, d := range doctors {
		if d.Status == entity.DoctorStatusAvailable {
			stats.AvailableDoctors++
		}
		doctorsPerDepartment[d.DepartmentID.ID]++
	}

	today := u.now().Format(dateLayout)
	for _, a := range appointments {
		if a.Date == today {
			stats.TodayAppointments = append(stats.TodayAppointments, a)
		}
	}
	sort.SliceStable(stats.TodayAppointments, func(i, j int) bool {
		return stats.TodayAppointments[i].Time < stats.TodayAppointments[j].Time
	})

	recent := make([]entity.Patient, len(patients))
	copy(recent, patients)
	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].RegistrationDate != recent[j].RegistrationDate {
			return recent[i].RegistrationDate > recent[j].RegistrationDate
		}
		return recent[i].ID > recent[j].ID
	})
	if len(recent) > recentPatientsLimit {
		recent = recent[:recentPatientsLimit]
	}
	stats.RecentPatients = recent

	stats.Departments = make([]DepartmentOverview, 0, len(departments))
	for _, d := range departments {
		stats.Departments = append(stats.Departments, DepartmentOverview{Department: d, DoctorCount: doctorsPerDepartment[d.ID]})
	}

	return stats, nil
}
