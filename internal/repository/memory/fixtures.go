package memory

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Fixture file names, one per entity type
const (
	PatientsFixture       = "patients.json"
	DoctorsFixture        = "doctors.json"
	DepartmentsFixture    = "departments.json"
	AppointmentsFixture   = "appointments.json"
	MedicalRecordsFixture = "medical_records.json"
)

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

// LoadFixture reads the seed collection for one entity type. When dir is empty the
// embedded fixtures are used.
func LoadFixture[T any](dir, name string) ([]T, error) {
	var (
		data []byte
		err  error
	)
	if dir == "" {
		data, err = embeddedFixtures.ReadFile("fixtures/" + name)
	} else {
		data, err = os.ReadFile(filepath.Join(dir, name))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", name, err)
	}

	records := []T{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", name, err)
	}
	return records, nil
}
