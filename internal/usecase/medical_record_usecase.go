package usecase

import (
	"context"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	"hospital-registry/internal/domain/repository"
	"hospital-registry/internal/service"

	"github.com/sirupsen/logrus"
)

type MedicalRecordUsecase interface {
	GetAll(ctx context.Context) []entity.MedicalRecord
	GetByID(ctx context.Context, id int) (*entity.MedicalRecord, error)
	GetByPatient(ctx context.Context, patientID int) []entity.MedicalRecord
	Create(ctx context.Context, record entity.MedicalRecord) (*entity.MedicalRecord, error)
	Update(ctx context.Context, id int, fields entity.Fields) (*entity.MedicalRecord, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type medicalRecordUsecase struct {
	recordUsecase[entity.MedicalRecord, *entity.MedicalRecord]
}

func NewMedicalRecordUsecase(log *logrus.Logger, repo repository.RecordRepository[entity.MedicalRecord], notices service.NoticeService) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		recordUsecase: newRecordUsecase[entity.MedicalRecord](log, repo, notices, ErrMedicalRecordNotFound),
	}
}

func (u *medicalRecordUsecase) GetAll(ctx context.Context) []entity.MedicalRecord {
	return u.list(ctx, query.Query{})
}

func (u *medicalRecordUsecase) GetByID(ctx context.Context, id int) (*entity.MedicalRecord, error) {
	return u.get(ctx, id)
}

func (u *medicalRecordUsecase) GetByPatient(ctx context.Context, patientID int) []entity.MedicalRecord {
	return u.list(ctx, query.Where(query.Equal(entity.MedicalRecordPatient, patientID)))
}

func (u *medicalRecordUsecase) Create(ctx context.Context, record entity.MedicalRecord) (*entity.MedicalRecord, error) {
	if record.VisitDate == "" {
		record.VisitDate = u.today()
	}
	return u.createOne(ctx, record)
}

func (u *medicalRecordUsecase) Update(ctx context.Context, id int, fields entity.Fields) (*entity.MedicalRecord, error) {
	return u.update(ctx, id, fields, nil)
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, id int) (bool, error) {
	return u.delete(ctx, id)
}
