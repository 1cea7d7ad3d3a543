package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-registry/config"
	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	domainRepo "hospital-registry/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]interface{}
}

func newTestServer(t *testing.T, handler func(req recordedRequest) (int, interface{})) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := recordedRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone()}
		if err := json.NewDecoder(r.Body).Decode(&req.Body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		seen = append(seen, req)

		status, body := handler(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(ts.Close)
	return ts, &seen
}

func newTestClient(url string, log *logrus.Logger) *Client {
	return NewClient(config.RemoteConfig{BaseURL: url, ProjectID: "proj-1", PublicKey: "pk-1"}, log)
}

func TestFindAllRequestsExpandedReferencesNewestFirst(t *testing.T) {
	ts, seen := newTestServer(t, func(req recordedRequest) (int, interface{}) {
		return http.StatusOK, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"Id": 9, "first_name_c": "Greg", "department_id_c": map[string]interface{}{"Id": 2, "Name": "Neurology"}},
			},
		}
	})

	table := NewTable[entity.Doctor](newTestClient(ts.URL, nil), nil)
	doctors, err := table.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, 9, doctors[0].ID)
	assert.Equal(t, entity.Ref{ID: 2, Name: "Neurology"}, doctors[0].DepartmentID)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v1/tables/doctor_c/records/query", req.Path)
	assert.Equal(t, "proj-1", req.Header.Get("X-Project-Id"))
	assert.Equal(t, "pk-1", req.Header.Get("X-Public-Key"))

	orderBy := req.Body["orderBy"].([]interface{})
	assert.Equal(t, map[string]interface{}{"fieldName": "Id", "sorttype": "DESC"}, orderBy[0])

	var expanded int
	for _, f := range req.Body["fields"].([]interface{}) {
		spec := f.(map[string]interface{})
		if _, ok := spec["referenceField"]; ok {
			expanded++
			assert.Equal(t, entity.DoctorDepartment, spec["field"].(map[string]interface{})["Name"])
		}
	}
	assert.Equal(t, 1, expanded)
}

func TestFindWherePassesFilters(t *testing.T) {
	ts, seen := newTestServer(t, func(req recordedRequest) (int, interface{}) {
		return http.StatusOK, map[string]interface{}{"success": true, "data": nil}
	})

	table := NewTable[entity.Appointment](newTestClient(ts.URL, nil), nil)
	q := query.Query{
		Where:  []query.Condition{query.Equal(entity.AppointmentPatient, 3)},
		Groups: []query.Group{query.AnyOf(query.Contain(entity.AppointmentReasonForVisit, "checkup"))},
	}
	records, err := table.FindWhere(context.Background(), q)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	body := (*seen)[0].Body
	where := body["where"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, entity.AppointmentPatient, where["FieldName"])
	assert.Equal(t, "EqualTo", where["Operator"])
	groups := body["whereGroups"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "OR", groups["operator"])
}

func TestFindAllSuccessFalseIsTransportFailure(t *testing.T) {
	ts, _ := newTestServer(t, func(req recordedRequest) (int, interface{}) {
		return http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "table not found",
			"data":    []map[string]interface{}{{"Id": 1}},
		}
	})

	table := NewTable[entity.Patient](newTestClient(ts.URL, nil), nil)
	records, err := table.FindAll(context.Background())
	assert.Nil(t, records)
	assert.ErrorIs(t, err, domainRepo.ErrTransportUnavailable)
	assert.Contains(t, err.Error(), "table not found")
}

func TestUninitializedClient(t *testing.T) {
	table := NewTable[entity.Patient](nil, nil)

	_, err := table.FindAll(context.Background())
	assert.ErrorIs(t, err, domainRepo.ErrTransportUnavailable)

	_, err = table.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, domainRepo.ErrTransportUnavailable)
}

func TestNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	table := NewTable[entity.Patient](newTestClient(url, nil), nil)
	_, err := table.Create(context.Background(), entity.Patient{FirstName: "Jane"})
	assert.ErrorIs(t, err, domainRepo.ErrTransportUnavailable)
}

func TestHTTPErrorStatus(t *testing.T) {
	ts, _ := newTestServer(t, func(req recordedRequest) (int, interface{}) {
		return http.StatusInternalServerError, map[string]interface{}{"success": false}
	})

	table := NewTable[entity.Patient](newTestClient(ts.URL, nil), nil)
	_, err := table.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, domainRepo.ErrTransportUnavailable)
}

func TestFindByID(t *testing.T) {
	ts, seen := newTestServer(t, func(req recordedRequest) (int, interface{}) {
		if req.Path == "/api/v1/tables/patient_c/records/5/query" {
			return http.StatusOK, map[string]interface{}{"success": true, "data": map[string]interface{}{"Id": 5, "first_name_c": "Jane"}}
		}
		return http.StatusOK, map[string]interface{}{"success": true, "data": nil}
	})

	table := NewTable[entity.Patient](newTestClient(ts.URL, nil), nil)

	patient, err := table.FindByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, patient)
	assert.Equal(t, "Jane", patient.FirstName)

	missing, err := table.FindByID(context.Background(), 6)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Len(t, *seen, 2)
}

func TestBatchCreatePartialFailure(t *testing.T) {
	log, hook := test.NewNullLogger()
	ts, seen := newTestServer(t, func(req recordedRequest) (int, interface{}) {
		return http.StatusOK, map[string]interface{}{
			"success": true,
			"results": []map[string]interface{}{
				{"success": true, "data": map[string]interface{}{"Id": 21, "first_name_c": "Jane", "status_c": "active"}},
				{"success": false, "errors": []map[string]interface{}{{"fieldLabel": "email_c", "message": "Invalid email"}}},
			},
		}
	})

	table := NewTable[entity.Patient](newTestClient(ts.URL, log), log)
	result, err := table.Create(context.Background(),
		entity.Patient{ID: 99, FirstName: "Jane", Status: entity.PatientStatusActive},
		entity.Patient{FirstName: "Bad", Email: "nope"},
	)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, 21, result.Records[0].ID)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, 1, result.Failures[0].Index)
	assert.Equal(t, []domainRepo.FieldError{{Field: "email_c", Message: "Invalid email"}}, result.Failures[0].Errors)
	assert.True(t, result.Partial())

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "Invalid email")

	records := (*seen)[0].Body["records"].([]interface{})
	require.Len(t, records, 2)
	first := records[0].(map[string]interface{})
	assert.NotContains(t, first, "Id")
	assert.Equal(t, "Jane", first[entity.PatientFirstName])
}

func TestCreateAllRejected(t *testing.T) {
	ts, _ := newTestServer(t, func(req recordedRequest) (int, interface{}) {
		return http.StatusOK, map[string]interface{}{
			"success": true,
			"results": []map[string]interface{}{
				{"success": false, "message": "Required field missing", "errors": []map[string]interface{}{{"fieldLabel": "first_name_c", "message": "is required"}}},
			},
		}
	})

	table := NewTable[entity.Patient](newTestClient(ts.URL, nil), nil)
	_, err := table.Create(context.Background(), entity.Patient{})

	var validationErr *domainRepo.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Failures, 1)
	assert.Contains(t, err.Error(), "first_name_c: is required")
}

func TestUpdateSendsOnlySuppliedFields(t *testing.T) {
	ts, seen := newTestServer(t, func(req recordedRequest) (int, interface{}) {
		return http.StatusOK, map[string]interface{}{
			"success": true,
			"results": []map[string]interface{}{
				{"success": true, "data": map[string]interface{}{"Id": 4, "status_c": "completed", "patient_id_c": map[string]interface{}{"Id": 1, "Name": "John Smith"}}},
			},
		}
	})

	table := NewTable[entity.Appointment](newTestClient(ts.URL, nil), nil)
	updated, err := table.Update(context.Background(), 4, entity.Fields{
		entity.AppointmentStatusField: "completed",
		entity.AppointmentDoctor:      entity.NewRef(2),
		"unknown_c":                   "dropped",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, updated.Status)
	assert.Equal(t, "John Smith", updated.PatientID.Name)

	req := (*seen)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	record := req.Body["records"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{
		"Id":                          float64(4),
		entity.AppointmentStatusField: "completed",
		entity.AppointmentDoctor:      float64(2),
	}, record)
}

func TestDelete(t *testing.T) {
	ts, seen := newTestServer(t, func(req recordedRequest) (int, interface{}) {
		ids := req.Body["RecordIds"].([]interface{})
		if ids[0].(float64) == 1 {
			return http.StatusOK, map[string]interface{}{"success": true, "results": []map[string]interface{}{{"success": true}}}
		}
		return http.StatusOK, map[string]interface{}{"success": true, "results": []map[string]interface{}{{"success": false, "message": "Record does not exist"}}}
	})

	table := NewTable[entity.Department](newTestClient(ts.URL, nil), nil)

	deleted, err := table.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = table.Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Equal(t, http.MethodDelete, (*seen)[0].Method)
}
