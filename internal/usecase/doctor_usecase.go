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

type DoctorUsecase interface {
	GetAll(ctx context.Context) []entity.Doctor
	GetByID(ctx context.Context, id int) (*entity.Doctor, error)
	GetByDepartment(ctx context.Context, departmentID int) []entity.Doctor
	Search(ctx context.Context, term string) []entity.Doctor
	Create(ctx context.Context, doctor entity.Doctor) (*entity.Doctor, error)
	Update(ctx context.Context, id int, fields entity.Fields) (*entity.Doctor, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type doctorUsecase struct {
	recordUsecase[entity.Doctor, *entity.Doctor]
}

func NewDoctorUsecase(log *logrus.Logger, repo repository.RecordRepository[entity.Doctor], notices service.NoticeService) DoctorUsecase {
	return &doctorUsecase{
		recordUsecase: newRecordUsecase[entity.Doctor](log, repo, notices, ErrDoctorNotFound),
	}
}

func (u *doctorUsecase) GetAll(ctx context.Context) []entity.Doctor {
	return u.list(ctx, query.Query{})
}

func (u *doctorUsecase) GetByID(ctx context.Context, id int) (*entity.Doctor, error) {
	return u.get(ctx, id)
}

func (u *doctorUsecase) GetByDepartment(ctx context.Context, departmentID int) []entity.Doctor {
	return u.list(ctx, query.Where(query.Equal(entity.DoctorDepartment, departmentID)))
}

// Search matches term against first name, last name and specialization
func (u *doctorUsecase) Search(ctx context.Context, term string) []entity.Doctor {
	term = strings.TrimSpace(term)
	if term == "" {
		return u.GetAll(ctx)
	}
	return u.list(ctx, query.Query{Groups: []query.Group{query.AnyOf(
		query.Contain(entity.DoctorFirstName, term),
		query.Contain(entity.DoctorLastName, term),
		query.Contain(entity.DoctorSpecialization, term),
	)}})
}

func (u *doctorUsecase) Create(ctx context.Context, doctor entity.Doctor) (*entity.Doctor, error) {
	if doctor.Status == "" {
		doctor.Status = entity.DoctorStatusAvailable
	}
	if name := joinNames(doctor.FirstName, doctor.LastName); name != "" {
		doctor.Name = name
	}
	return u.createOne(ctx, doctor)
}

func (u *doctorUsecase) Update(ctx context.Context, id int, fields entity.Fields) (*entity.Doctor, error) {
	return u.update(ctx, id, fields, func(current *entity.Doctor, clean entity.Fields) {
		first, hasFirst := clean[entity.DoctorFirstName]
		last, hasLast := clean[entity.DoctorLastName]
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

func (u *doctorUsecase) Delete(ctx context.Context, id int) (bool, error) {
	return u.delete(ctx, id)
}
