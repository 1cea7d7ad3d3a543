package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	"hospital-registry/internal/domain/repository"
	"hospital-registry/internal/repository/memory"
	"hospital-registry/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 22, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type registry struct {
	log          *logrus.Logger
	hook         *test.Hook
	notices      service.NoticeService
	patientRepo  *memory.Table[entity.Patient, *entity.Patient]
	doctorRepo   *memory.Table[entity.Doctor, *entity.Doctor]
	deptRepo     *memory.Table[entity.Department, *entity.Department]
	apptRepo     *memory.Table[entity.Appointment, *entity.Appointment]
	recordRepo   *memory.Table[entity.MedicalRecord, *entity.MedicalRecord]
	patients     *patientUsecase
	doctors      *doctorUsecase
	departments  *departmentUsecase
	appointments *appointmentUsecase
	records      *medicalRecordUsecase
}

func seed[T any, PT entity.Record[T]](t *testing.T, log *logrus.Logger, name string) *memory.Table[T, PT] {
	t.Helper()
	records, err := memory.LoadFixture[T]("", name)
	require.NoError(t, err)
	return memory.NewTable[T, PT](records, memory.NoLatency(), log)
}

func newRegistry(t *testing.T) *registry {
	t.Helper()
	log, hook := test.NewNullLogger()
	r := &registry{log: log, hook: hook, notices: service.NewNoticeService(log, nil, nil)}

	r.patientRepo = seed[entity.Patient](t, log, memory.PatientsFixture)
	r.doctorRepo = seed[entity.Doctor](t, log, memory.DoctorsFixture)
	r.deptRepo = seed[entity.Department](t, log, memory.DepartmentsFixture)
	r.apptRepo = seed[entity.Appointment](t, log, memory.AppointmentsFixture)
	r.recordRepo = seed[entity.MedicalRecord](t, log, memory.MedicalRecordsFixture)

	r.patients = NewPatientUsecase(log, r.patientRepo, r.notices).(*patientUsecase)
	r.doctors = NewDoctorUsecase(log, r.doctorRepo, r.notices).(*doctorUsecase)
	r.departments = NewDepartmentUsecase(log, r.deptRepo, r.notices).(*departmentUsecase)
	r.appointments = NewAppointmentUsecase(log, r.apptRepo, r.doctorRepo, r.notices).(*appointmentUsecase)
	r.records = NewMedicalRecordUsecase(log, r.recordRepo, r.notices).(*medicalRecordUsecase)

	r.patients.now = fixedClock
	r.doctors.now = fixedClock
	r.departments.now = fixedClock
	r.appointments.now = fixedClock
	r.records.now = fixedClock
	return r
}

// failingRepo reports every call as a transport failure
type failingRepo[T any] struct{}

func (failingRepo[T]) FindAll(ctx context.Context) ([]T, error) {
	return nil, repository.ErrTransportUnavailable
}

func (failingRepo[T]) FindByID(ctx context.Context, id int) (*T, error) {
	return nil, repository.ErrTransportUnavailable
}

func (failingRepo[T]) FindWhere(ctx context.Context, q query.Query) ([]T, error) {
	return nil, repository.ErrTransportUnavailable
}

func (failingRepo[T]) Create(ctx context.Context, records ...T) (*repository.BatchResult[T], error) {
	return nil, repository.ErrTransportUnavailable
}

func (failingRepo[T]) Update(ctx context.Context, id int, fields entity.Fields) (*T, error) {
	return nil, repository.ErrTransportUnavailable
}

func (failingRepo[T]) Delete(ctx context.Context, id int) (bool, error) {
	return false, repository.ErrTransportUnavailable
}

// partialRepo accepts only records accepted by keep and reports the rest as failures
type partialRepo[T any, PT entity.Record[T]] struct {
	failingRepo[T]
	keep func(T) bool
}

func (r partialRepo[T, PT]) Create(ctx context.Context, records ...T) (*repository.BatchResult[T], error) {
	result := &repository.BatchResult[T]{Records: []T{}}
	for i, record := range records {
		if r.keep(record) {
			PT(&record).SetID(100 + i)
			result.Records = append(result.Records, record)
			continue
		}
		result.Failures = append(result.Failures, repository.RecordFailure{
			Index:  i,
			Errors: []repository.FieldError{{Field: entity.PatientEmail, Message: "Invalid email"}},
		})
	}
	if len(result.Records) == 0 {
		return result, &repository.ValidationError{Failures: result.Failures}
	}
	return result, nil
}

func errorIsNotFound(err error) bool {
	return errors.Is(err, repository.ErrRecordNotFound)
}
