package usecase

import (
	"context"
	"time"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	"hospital-registry/internal/domain/repository"
	"hospital-registry/internal/service"

	"github.com/sirupsen/logrus"
)

const appointmentLayout = "2006-01-02 15:04"

type AppointmentUsecase interface {
	GetAll(ctx context.Context) []entity.Appointment
	GetByID(ctx context.Context, id int) (*entity.Appointment, error)
	GetByPatient(ctx context.Context, patientID int) []entity.Appointment
	GetByDoctor(ctx context.Context, doctorID int) []entity.Appointment
	GetByDate(ctx context.Context, date string) []entity.Appointment
	Create(ctx context.Context, appointment entity.Appointment) (*entity.Appointment, error)
	Update(ctx context.Context, id int, fields entity.Fields) (*entity.Appointment, error)
	Cancel(ctx context.Context, id int) (*entity.Appointment, error)
	Complete(ctx context.Context, id int) (*entity.Appointment, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type appointmentUsecase struct {
	recordUsecase[entity.Appointment, *entity.Appointment]
	doctorRepo repository.RecordRepository[entity.Doctor]
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	repo repository.RecordRepository[entity.Appointment],
	doctorRepo repository.RecordRepository[entity.Doctor],
	notices service.NoticeService,
) AppointmentUsecase {
	return &appointmentUsecase{
		recordUsecase: newRecordUsecase[entity.Appointment](log, repo, notices, ErrAppointmentNotFound),
		doctorRepo:    doctorRepo,
	}
}

func (u *appointmentUsecase) GetAll(ctx context.Context) []entity.Appointment {
	return u.list(ctx, query.Query{})
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id int) (*entity.Appointment, error) {
	return u.get(ctx, id)
}

func (u *appointmentUsecase) GetByPatient(ctx context.Context, patientID int) []entity.Appointment {
	return u.list(ctx, query.Where(query.Equal(entity.AppointmentPatient, patientID)))
}

func (u *appointmentUsecase) GetByDoctor(ctx context.Context, doctorID int) []entity.Appointment {
	return u.list(ctx, query.Where(query.Equal(entity.AppointmentDoctor, doctorID)))
}

func (u *appointmentUsecase) GetByDate(ctx context.Context, date string) []entity.Appointment {
	return u.list(ctx, query.Where(query.Equal(entity.AppointmentDate, date)))
}

// Create schedules a visit. The slot must lie in the future, and the department is
// taken from the doctor when the caller leaves it empty.
func (u *appointmentUsecase) Create(ctx context.Context, appointment entity.Appointment) (*entity.Appointment, error) {
	now := u.now()
	at, err := time.ParseInLocation(appointmentLayout, appointment.Date+" "+appointment.Time, now.Location())
	if err != nil {
		return nil, ErrInvalidAppointmentTime
	}
	if !at.After(now) {
		return nil, ErrAppointmentInPast
	}

	if appointment.DepartmentID.IsZero() && !appointment.DoctorID.IsZero() {
		doctor, err := u.findDoctor(ctx, appointment.DoctorID.ID)
		if err != nil {
			return nil, err
		}
		appointment.DepartmentID = entity.NewRef(doctor.DepartmentID.ID)
	}

	if appointment.Status == "" {
		appointment.Status = entity.AppointmentStatusScheduled
	}
	appointment.CreatedAt = now.Format(dateLayout)

	return u.createOne(ctx, appointment)
}

func (u *appointmentUsecase) Update(ctx context.Context, id int, fields entity.Fields) (*entity.Appointment, error) {
	return u.update(ctx, id, fields, nil)
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id int) (*entity.Appointment, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCancelled)
}

func (u *appointmentUsecase) Complete(ctx context.Context, id int) (*entity.Appointment, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCompleted)
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int) (bool, error) {
	return u.delete(ctx, id)
}

// transition moves an open appointment to a terminal status
func (u *appointmentUsecase) transition(ctx context.Context, id int, status entity.AppointmentStatus) (*entity.Appointment, error) {
	current, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.Open() {
		return nil, ErrAppointmentClosed
	}
	return u.update(ctx, id, entity.Fields{entity.AppointmentStatusField: string(status)}, nil)
}

func (u *appointmentUsecase) findDoctor(ctx context.Context, id int) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
