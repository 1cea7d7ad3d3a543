package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Ref
	}{
		{"number", `4`, Ref{ID: 4}},
		{"numeric string", `"12"`, Ref{ID: 12}},
		{"leading zero string", `"010"`, Ref{ID: 10}},
		{"expanded", `{"Id": 3, "Name": "Cardiology"}`, Ref{ID: 3, Name: "Cardiology"}},
		{"expanded string id", `{"Id": "5", "Name": "Dr. Who"}`, Ref{ID: 5, Name: "Dr. Who"}},
		{"null", `null`, Ref{}},
		{"empty string", `""`, Ref{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref Ref
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ref))
			assert.Equal(t, tt.want, ref)
		})
	}

	var ref Ref
	assert.Error(t, json.Unmarshal([]byte(`"cardiology"`), &ref))
	assert.Error(t, json.Unmarshal([]byte(`"0x10"`), &ref))
}

func TestRefMarshalWritesInteger(t *testing.T) {
	data, err := json.Marshal(Appointment{PatientID: Ref{ID: 7, Name: "Jane Doe"}})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(7), raw[AppointmentPatient])
	assert.Nil(t, raw[AppointmentDoctor])
}

func TestRefScanValue(t *testing.T) {
	var ref Ref
	require.NoError(t, ref.Scan(int64(9)))
	assert.Equal(t, 9, ref.ID)

	require.NoError(t, ref.Scan([]byte("11")))
	assert.Equal(t, 11, ref.ID)

	require.NoError(t, ref.Scan(nil))
	assert.True(t, ref.IsZero())

	v, err := NewRef(6).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)

	v, err = Ref{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestApplyFieldsMergesOnlySuppliedFields(t *testing.T) {
	patient := Patient{
		ID:               1,
		FirstName:        "Jane",
		LastName:         "Doe",
		BloodGroup:       "O+",
		Status:           PatientStatusActive,
		RegistrationDate: "2024-01-15",
	}
	before := patient

	require.NoError(t, ApplyFields(&patient, Fields{PatientStatusField: "discharged"}))

	assert.Equal(t, PatientStatusDischarged, patient.Status)
	before.Status = PatientStatusDischarged
	assert.Equal(t, before, patient)
}

func TestApplyFieldsCoercesReferences(t *testing.T) {
	doctor := Doctor{ID: 2, FirstName: "Greg", DepartmentID: NewRef(1)}

	require.NoError(t, ApplyFields(&doctor, Fields{DoctorDepartment: "4"}))
	assert.Equal(t, 4, doctor.DepartmentID.ID)

	require.NoError(t, ApplyFields(&doctor, Fields{DoctorDepartment: NewRef(5)}))
	assert.Equal(t, 5, doctor.DepartmentID.ID)
	assert.Equal(t, "Greg", doctor.FirstName)
}

func TestToFieldsUsesStorageNames(t *testing.T) {
	fields, err := ToFields(&Doctor{ID: 3, FirstName: "Ann", DepartmentID: NewRef(2)})
	require.NoError(t, err)

	assert.Equal(t, float64(3), fields[FieldID])
	assert.Equal(t, "Ann", fields[DoctorFirstName])
	assert.Equal(t, float64(2), fields[DoctorDepartment])
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"7", 7, true},
		{" 42 ", 42, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-1", 0, false},
		{"0", 0, false},
		{"010", 10, true},
		{"08", 8, true},
		{"0x10", 0, false},
		{"1e2", 0, false},
	}

	for _, tt := range tests {
		id, ok := ParseID(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, id, tt.raw)
	}
}

func TestToID(t *testing.T) {
	id, err := ToID("007")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	id, err = ToID(float64(12))
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	id, err = ToID(json.Number("015"))
	require.NoError(t, err)
	assert.Equal(t, 15, id)

	_, err = ToID("0b11")
	assert.Error(t, err)
}

func TestEnums(t *testing.T) {
	assert.True(t, PatientStatusAdmitted.Valid())
	assert.False(t, PatientStatus("deceased").Valid())
	assert.True(t, DoctorStatusOffDuty.Valid())
	assert.False(t, DoctorStatus("on-call").Valid())
	assert.True(t, AppointmentStatusInProgress.Valid())
	assert.True(t, AppointmentStatusScheduled.Open())
	assert.False(t, AppointmentStatusCancelled.Open())

	assert.True(t, IsBloodGroup("AB-"))
	assert.False(t, IsBloodGroup("C+"))

	assert.True(t, ValidWeekdays("Monday, wednesday,Friday"))
	assert.False(t, ValidWeekdays("Monday,Funday"))
	assert.False(t, ValidWeekdays(""))
}

func TestSchema(t *testing.T) {
	schema := (&Appointment{}).Schema()
	assert.True(t, schema.IsReference(AppointmentDoctor))
	assert.False(t, schema.IsReference(AppointmentDate))
	assert.True(t, schema.IsWritable(FieldName))
	assert.False(t, schema.IsWritable(FieldID))
	assert.True(t, schema.IsImmutable(AppointmentCreatedAt))

	assert.Equal(t, "Jane Doe", (&Patient{FirstName: "Jane", LastName: "Doe"}).FullName())
	assert.Equal(t, "Fallback", (&Doctor{Name: "Fallback"}).FullName())
}
