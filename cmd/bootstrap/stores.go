package bootstrap

import (
	"fmt"

	"hospital-registry/config"
	"hospital-registry/internal/domain/entity"
	domainRepo "hospital-registry/internal/domain/repository"
	"hospital-registry/internal/infrastructure/metrics"
	"hospital-registry/internal/repository"
	dbRepo "hospital-registry/internal/repository/database"
	"hospital-registry/internal/repository/memory"
	"hospital-registry/internal/repository/remote"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// stores holds one record store per entity, all backed by the configured driver
type stores struct {
	patients       domainRepo.RecordRepository[entity.Patient]
	doctors        domainRepo.RecordRepository[entity.Doctor]
	departments    domainRepo.RecordRepository[entity.Department]
	appointments   domainRepo.RecordRepository[entity.Appointment]
	medicalRecords domainRepo.RecordRepository[entity.MedicalRecord]
}

type storeFactory struct {
	cfg     *config.Config
	log     *logrus.Logger
	db      *gorm.DB
	client  *remote.Client
	metrics *metrics.StoreMetrics
}

func openStores(cfg *config.Config, log *logrus.Logger, db *gorm.DB, m *metrics.StoreMetrics) (*stores, error) {
	f := &storeFactory{cfg: cfg, log: log, db: db, metrics: m}
	if cfg.Store.Driver == config.DriverRemote {
		f.client = remote.NewClient(cfg.Remote, log)
	}

	var (
		s   stores
		err error
	)
	if s.patients, err = openStore[entity.Patient](f, memory.PatientsFixture); err != nil {
		return nil, err
	}
	if s.doctors, err = openStore[entity.Doctor](f, memory.DoctorsFixture); err != nil {
		return nil, err
	}
	if s.departments, err = openStore[entity.Department](f, memory.DepartmentsFixture); err != nil {
		return nil, err
	}
	if s.appointments, err = openStore[entity.Appointment](f, memory.AppointmentsFixture); err != nil {
		return nil, err
	}
	if s.medicalRecords, err = openStore[entity.MedicalRecord](f, memory.MedicalRecordsFixture); err != nil {
		return nil, err
	}
	return &s, nil
}

func openStore[T any, PT entity.Record[T]](f *storeFactory, fixture string) (domainRepo.RecordRepository[T], error) {
	schema := PT(new(T)).Schema()

	var store domainRepo.RecordRepository[T]
	switch f.cfg.Store.Driver {
	case config.DriverMemory:
		records, err := memory.LoadFixture[T](f.cfg.Store.FixtureDir, fixture)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s fixture: %w", schema.Entity, err)
		}
		latency := memory.NoLatency()
		if f.cfg.Store.SimulateLatency {
			latency = memory.DefaultLatency()
		}
		store = memory.NewTable[T, PT](records, latency, f.log)
	case config.DriverRemote:
		store = remote.NewTable[T, PT](f.client, f.log)
	case config.DriverPostgres:
		store = dbRepo.NewTable[T, PT](f.db, f.log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", f.cfg.Store.Driver)
	}

	return repository.NewInstrumented[T](store, schema.Entity, f.metrics), nil
}
