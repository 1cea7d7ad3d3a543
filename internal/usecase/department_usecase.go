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

type DepartmentUsecase interface {
	GetAll(ctx context.Context) []entity.Department
	GetByID(ctx context.Context, id int) (*entity.Department, error)
	Search(ctx context.Context, term string) []entity.Department
	Create(ctx context.Context, department entity.Department) (*entity.Department, error)
	Update(ctx context.Context, id int, fields entity.Fields) (*entity.Department, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type departmentUsecase struct {
	recordUsecase[entity.Department, *entity.Department]
}

func NewDepartmentUsecase(log *logrus.Logger, repo repository.RecordRepository[entity.Department], notices service.NoticeService) DepartmentUsecase {
	return &departmentUsecase{
		recordUsecase: newRecordUsecase[entity.Department](log, repo, notices, ErrDepartmentNotFound),
	}
}

func (u *departmentUsecase) GetAll(ctx context.Context) []entity.Department {
	return u.list(ctx, query.Query{})
}

func (u *departmentUsecase) GetByID(ctx context.Context, id int) (*entity.Department, error) {
	return u.get(ctx, id)
}

func (u *departmentUsecase) Search(ctx context.Context, term string) []entity.Department {
	term = strings.TrimSpace(term)
	if term == "" {
		return u.GetAll(ctx)
	}
	return u.list(ctx, query.Query{Groups: []query.Group{query.AnyOf(
		query.Contain(entity.FieldName, term),
		query.Contain(entity.DepartmentLocation, term),
		query.Contain(entity.DepartmentHead, term),
	)}})
}

func (u *departmentUsecase) Create(ctx context.Context, department entity.Department) (*entity.Department, error) {
	return u.createOne(ctx, department)
}

func (u *departmentUsecase) Update(ctx context.Context, id int, fields entity.Fields) (*entity.Department, error) {
	return u.update(ctx, id, fields, nil)
}

func (u *departmentUsecase) Delete(ctx context.Context, id int) (bool, error) {
	return u.delete(ctx, id)
}
