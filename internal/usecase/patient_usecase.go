package usecase

import (
	"context"
	"strings"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	"hospital-registry/internal/domain/repository"
	"hospital-registry/internal/service"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	GetAll(ctx context.Context) []entity.Patient
	GetByID(ctx context.Context, id int) (*entity.Patient, error)
	Create(ctx context.Context, patient entity.Patient) (*entity.Patient, error)
	CreateBatch(ctx context.Context, patients []entity.Patient) (*repository.BatchResult[entity.Patient], error)
	Update(ctx context.Context, id int, fields entity.Fields) (*entity.Patient, error)
	Delete(ctx context.Context, id int) (bool, error)
	Search(ctx context.Context, term string) []entity.Patient
}

type patientUsecase struct {
	recordUsecase[entity.Patient, *entity.Patient]
}

func NewPatientUsecase(log *logrus.Logger, repo repository.RecordRepository[entity.Patient], notices service.NoticeService) PatientUsecase {
	return &patientUsecase{
		recordUsecase: newRecordUsecase[entity.Patient](log, repo, notices, ErrPatientNotFound),
	}
}

func (u *patientUsecase) GetAll(ctx context.Context) []entity.Patient {
	return u.list(ctx, query.Query{})
}

func (u *patientUsecase) GetByID(ctx context.Context, id int) (*entity.Patient, error) {
	return u.get(ctx, id)
}

func (u *patientUsecase) Create(ctx context.Context, patient entity.Patient) (*entity.Patient, error) {
	return u.createOne(ctx, u.withDefaults(patient))
}

func (u *patientUsecase) CreateBatch(ctx context.Context, patients []entity.Patient) (*repository.BatchResult[entity.Patient], error) {
	prepared := make([]entity.Patient, 0, len(patients))
	for _, p := range patients {
		prepared = append(prepared, u.withDefaults(p))
	}
	return u.create(ctx, prepared...)
}

func (u *patientUsecase) Update(ctx context.Context, id int, fields entity.Fields) (*entity.Patient, error) {
	return u.update(ctx, id, fields, func(current *entity.Patient, clean entity.Fields) {
		first, hasFirst := clean[entity.PatientFirstName]
		last, hasLast := clean[entity.PatientLastName]
		if !hasFirst && !hasLast {
			return
		}
		next := *current
		if hasFirst {
			next.FirstName, _ = first.(string)
		}
		if hasLast {
			next.LastName, _ = last.(string)
		}
		clean[entity.FieldName] = joinNames(next.FirstName, next.LastName)
	})
}

func (u *patientUsecase) Delete(ctx context.Context, id int) (bool, error) {
	return u.delete(ctx, id)
}

// Search matches term case-insensitively against first name, last name, contact
// number and email. An empty term returns every patient.
func (u *patientUsecase) Search(ctx context.Context, term string) []entity.Patient {
	term = strings.TrimSpace(term)
	if term == "" {
		return u.GetAll(ctx)
	}
	return u.list(ctx, query.Query{Groups: []query.Group{query.AnyOf(
		query.Contain(entity.PatientFirstName, term),
		query.Contain(entity.PatientLastName, term),
		query.Contain(entity.PatientContactNumber, term),
		query.Contain(entity.PatientEmail, term),
	)}})
}

func (u *patientUsecase) withDefaults(p entity.Patient) entity.Patient {
	if p.Status == "" {
		p.Status = entity.PatientStatusActive
	}
	p.RegistrationDate = u.today()
	if name := joinNames(p.FirstName, p.LastName); name != "" {
		p.Name = name
	}
	return p
}
