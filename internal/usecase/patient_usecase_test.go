package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/repository"
	"hospital-registry/internal/repository/memory"
	"hospital-registry/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientCreateThenUpdate(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	input := entity.Patient{FirstName: "Jane", LastName: "Doe", BloodGroup: "O+", Status: entity.PatientStatusActive}
	created, err := r.patients.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, "2024-03-22", created.RegistrationDate)
	assert.Equal(t, entity.PatientStatusActive, created.Status)

	found, err := r.patients.GetByID(ctx, created.ID)
	require.NoError(t, err)
	want := input
	want.ID = 5
	want.Name = "Jane Doe"
	want.RegistrationDate = "2024-03-22"
	assert.Equal(t, want, *found)

	updated, err := r.patients.Update(ctx, created.ID, entity.Fields{entity.PatientStatusField: "discharged"})
	require.NoError(t, err)
	assert.Equal(t, entity.PatientStatusDischarged, updated.Status)

	found, err = r.patients.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PatientStatusDischarged, found.Status)
	assert.Equal(t, "Jane", found.FirstName)
}

func TestPatientUpdateRederivesNameOnly(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	before, err := r.patients.GetByID(ctx, 1)
	require.NoError(t, err)

	updated, err := r.patients.Update(ctx, 1, entity.Fields{entity.PatientFirstName: "Jonathan"})
	require.NoError(t, err)

	// Name is generated from the first and last names, so it follows them.
	want := *before
	want.FirstName = "Jonathan"
	want.Name = "Jonathan Smith"
	assert.Equal(t, want, *updated)

	updated, err = r.patients.Update(ctx, 1, entity.Fields{entity.PatientEmail: "jon@email.com"})
	require.NoError(t, err)
	assert.Equal(t, "Jonathan Smith", updated.Name)
}

func TestPatientCreateDefaultsStatus(t *testing.T) {
	r := newRegistry(t)

	created, err := r.patients.Create(context.Background(), entity.Patient{FirstName: "Ann", LastName: "Lee", RegistrationDate: "1999-01-01"})
	require.NoError(t, err)
	assert.Equal(t, entity.PatientStatusActive, created.Status)
	assert.Equal(t, "2024-03-22", created.RegistrationDate)
}

func TestPatientUpdateKeepsRegistrationDate(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	updated, err := r.patients.Update(ctx, 1, entity.Fields{
		entity.PatientRegistrationDate: "2030-01-01",
		entity.FieldID:                 42,
		entity.PatientLastName:         "Smythe",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "2024-01-15", updated.RegistrationDate)
	assert.Equal(t, "Smythe", updated.LastName)
	assert.Equal(t, "John Smythe", updated.Name)
}

func TestPatientNotFound(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	_, err := r.patients.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.True(t, errorIsNotFound(err))

	_, err = r.patients.GetByID(ctx, 0)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = r.patients.Update(ctx, 999, entity.Fields{entity.PatientFirstName: "X"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientDelete(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	deleted, err := r.patients.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = r.patients.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = r.patients.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	assert.Len(t, r.appointments.GetByPatient(ctx, 1), 1)
}

func TestPatientSearch(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	results := r.patients.Search(ctx, "sarah")
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].ID)

	results = r.patients.Search(ctx, "555-0105")
	require.Len(t, results, 1)
	assert.Equal(t, "Michael", results[0].FirstName)

	assert.Len(t, r.patients.Search(ctx, "EMAIL.COM"), 4)
	assert.Len(t, r.patients.Search(ctx, "  "), 4)
	assert.Empty(t, r.patients.Search(ctx, "zzz"))
}

func TestPatientListDegradesOnFailure(t *testing.T) {
	log, hook := test.NewNullLogger()
	uc := NewPatientUsecase(log, failingRepo[entity.Patient]{}, nil)
	ctx := context.Background()

	patients := uc.GetAll(ctx)
	assert.NotNil(t, patients)
	assert.Empty(t, patients)

	var notified bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel && entry.Data["entity"] == "patient" {
			notified = true
		}
	}
	assert.True(t, notified)

	_, err := uc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrTransportUnavailable)

	_, err = uc.Create(ctx, entity.Patient{FirstName: "A"})
	assert.ErrorIs(t, err, repository.ErrTransportUnavailable)
}

func TestPatientCreateBatchPartialFailure(t *testing.T) {
	log, hook := test.NewNullLogger()
	repo := partialRepo[entity.Patient, *entity.Patient]{keep: func(p entity.Patient) bool { return p.Email != "bad" }}
	uc := NewPatientUsecase(log, repo, nil)

	result, err := uc.CreateBatch(context.Background(), []entity.Patient{
		{FirstName: "Jane", Email: "jane@example.com"},
		{FirstName: "Bad", Email: "bad"},
	})
	require.NoError(t, err)
	assert.True(t, result.Partial())
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Jane", result.Records[0].FirstName)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, 1, result.Failures[0].Index)

	var warnings []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings = append(warnings, entry.Message)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Failed to create 1 of 2 patient records")
	assert.Contains(t, warnings[0], "Invalid email")
}

func TestPatientCreateBatchAllRejected(t *testing.T) {
	repo := partialRepo[entity.Patient, *entity.Patient]{keep: func(entity.Patient) bool { return false }}
	uc := NewPatientUsecase(nil, repo, nil)

	_, err := uc.CreateBatch(context.Background(), []entity.Patient{{FirstName: "Bad"}})
	var validationErr *repository.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestPatientCreateBatchSuccessNotice(t *testing.T) {
	r := newRegistry(t)

	result, err := r.patients.CreateBatch(context.Background(), []entity.Patient{
		{FirstName: "Amy", LastName: "Pond"},
		{FirstName: "Rory", LastName: "Williams"},
	})
	require.NoError(t, err)
	assert.False(t, result.Partial())
	require.Len(t, result.Records, 2)
	assert.Equal(t, []int{5, 6}, []int{result.Records[0].ID, result.Records[1].ID})

	var summary string
	for _, entry := range r.hook.AllEntries() {
		if entry.Data["notice"] == string(service.NoticeInfo) {
			summary = entry.Message
		}
	}
	assert.Equal(t, "Created 2 patient records", summary)
}

// recordingNotices keeps the change events published by a usecase
type recordingNotices struct {
	service.NoticeService
	deleted []interface{}
}

func (n *recordingNotices) LogDelete(ctx context.Context, entityName string, recordID int, oldValue interface{}) {
	n.deleted = append(n.deleted, oldValue)
}

func TestPatientDeletePublishesOldValue(t *testing.T) {
	log, _ := test.NewNullLogger()
	notices := &recordingNotices{NoticeService: service.NewNoticeService(log, nil, nil)}
	uc := NewPatientUsecase(log, seed[entity.Patient](t, log, memory.PatientsFixture), notices)

	deleted, err := uc.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	require.Len(t, notices.deleted, 1)
	old, ok := notices.deleted[0].(entity.Patient)
	require.True(t, ok)
	assert.Equal(t, 2, old.ID)
	assert.Equal(t, "Sarah", old.FirstName)
}
