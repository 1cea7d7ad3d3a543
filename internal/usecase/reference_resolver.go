package usecase

import (
	"context"

	"hospital-registry/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

// Fallback display names for references that do not resolve
const (
	UnknownPatient    = "Unknown Patient"
	UnknownDoctor     = "Unknown Doctor"
	UnknownDepartment = "Unknown Department"
)

// ReferenceIndex maps record ids to display names so list consumers receive resolved
// names instead of raw foreign keys.
type ReferenceIndex struct {
	patients    map[int]string
	doctors     map[int]string
	departments map[int]string
}

// NewReferenceIndex builds an index from already loaded collections
func NewReferenceIndex(patients []entity.Patient, doctors []entity.Doctor, departments []entity.Department) *ReferenceIndex {
	idx := &ReferenceIndex{
		patients:    make(map[int]string, len(patients)),
		doctors:     make(map[int]string, len(doctors)),
		departments: make(map[int]string, len(departments)),
	}
	for i := range patients {
		idx.patients[patients[i].ID] = patients[i].FullName()
	}
	for i := range doctors {
		idx.doctors[doctors[i].ID] = doctors[i].FullName()
	}
	for i := range departments {
		idx.departments[departments[i].ID] = departments[i].Name
	}
	return idx
}

func (i *ReferenceIndex) PatientName(ref entity.Ref) string {
	var names map[int]string
	if i != nil {
		names = i.patients
	}
	return lookup(ref, names, UnknownPatient)
}

func (i *ReferenceIndex) DoctorName(ref entity.Ref) string {
	var names map[int]string
	if i != nil {
		names = i.doctors
	}
	return lookup(ref, names, UnknownDoctor)
}

func (i *ReferenceIndex) DepartmentName(ref entity.Ref) string {
	var names map[int]string
	if i != nil {
		names = i.departments
	}
	return lookup(ref, names, UnknownDepartment)
}

// lookup prefers the name the store expanded inline, then the index
func lookup(ref entity.Ref, names map[int]string, fallback string) string {
	if ref.Name != "" {
		return ref.Name
	}
	if name, ok := names[ref.ID]; ok && name != "" {
		return name
	}
	return fallback
}

type ReferenceResolver interface {
	Index(ctx context.Context) *ReferenceIndex
}

type referenceResolver struct {
	patients    PatientUsecase
	doctors     DoctorUsecase
	departments DepartmentUsecase
}

func NewReferenceResolver(patients PatientUsecase, doctors DoctorUsecase, departments DepartmentUsecase) ReferenceResolver {
	return &referenceResolver{
		patients:    patients,
		doctors:     doctors,
		departments: departments,
	}
}

// Index loads the three referenced collections concurrently. A collection that fails
// to load contributes no names, so its references fall back to the unknown label.
func (r *referenceResolver) Index(ctx context.Context) *ReferenceIndex {
	var (
		patients    []entity.Patient
		doctors     []entity.Doctor
		departments []entity.Department
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		patients = r.patients.GetAll(gctx)
		return nil
	})
	g.Go(func() error {
		doctors = r.doctors.GetAll(gctx)
		return nil
	})
	g.Go(func() error {
		departments = r.departments.GetAll(gctx)
		return nil
	})
	_ = g.Wait()

	return NewReferenceIndex(patients, doctors, departments)
}
