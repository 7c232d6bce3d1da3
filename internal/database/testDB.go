package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/RazanRezq/jadara-sub002/internal/logger"
	m "github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users & fixtures
var (
	TestSuperadmin       m.User
	TestAdmin            m.User
	TestReviewer1        m.User
	TestReviewer2        m.User
	TestReviewer3        m.User
	TestInactiveReviewer m.User

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	TestJob m.Job
)

var seededUsernames = []string{
	"superadmin_user", "admin_user", "reviewer_1", "reviewer_2", "reviewer_3", "reviewer_inactive",
}

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
		DBName:    dbName,
		Logger:    logger.Discard(),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts the staff roster and a job if they are not there yet.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Where("username IN ?", seededUsernames).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	userSpecs := []struct {
		username string
		name     string
		email    *string
		role     m.Role
	}{
		{"superadmin_user", "Sara Super", ptr("super@example.com"), m.RoleSuperadmin},
		{"admin_user", "Adam Admin", ptr("admin@example.com"), m.RoleAdmin},
		{"reviewer_1", "Rita Reviewer", ptr("reviewer1@example.com"), m.RoleReviewer},
		{"reviewer_2", "Ravi Reviewer", ptr("reviewer2@example.com"), m.RoleReviewer},
		{"reviewer_3", "Rosa Reviewer", ptr("reviewer3@example.com"), m.RoleReviewer},
		{"reviewer_inactive", "Ivan Inactive", ptr("inactive@example.com"), m.RoleReviewer},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		users = append(users, m.User{
			ID:       uuid.New(),
			Username: s.username,
			Name:     s.name,
			Email:    s.email,
			Role:     s.role,
			Password: hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	// default:true swallows a false value on insert
	if err := db.Model(&m.User{}).Where("username = ?", "reviewer_inactive").Update("is_active", false).Error; err != nil {
		return err
	}

	TestJob = m.Job{Title: "Backend Engineer", Department: "Engineering"}
	if err := db.Create(&TestJob).Error; err != nil {
		return err
	}

	return loadTestData(db)
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", seededUsernames).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Username {
		case "superadmin_user":
			TestSuperadmin = u
		case "admin_user":
			TestAdmin = u
		case "reviewer_1":
			TestReviewer1 = u
		case "reviewer_2":
			TestReviewer2 = u
		case "reviewer_3":
			TestReviewer3 = u
		case "reviewer_inactive":
			TestInactiveReviewer = u
		}
	}

	return db.Order("created_at ASC").First(&TestJob).Error
}

// CreateTestApplicant inserts a fresh applicant with the given status.
// withJob links the applicant to TestJob.
func CreateTestApplicant(db *DBinstanceStruct, status m.ApplicantStatus, withJob bool) (m.Applicant, error) {
	applicant := m.Applicant{
		FullName: "Applicant " + uuid.NewString()[:8],
		Email:    "applicant@example.com",
		Status:   status,
	}
	if withJob {
		jobID := TestJob.ID
		applicant.JobID = &jobID
	}
	err := db.Create(&applicant).Error
	return applicant, err
}

// CreateTestStaff inserts a throwaway staff member, for tests that delete or deactivate users.
func CreateTestStaff(db *DBinstanceStruct, role m.Role) (m.User, error) {
	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return m.User{}, err
	}
	user := m.User{
		Username: "staff_" + uuid.NewString()[:8],
		Name:     "Temporary Staff",
		Role:     role,
		Password: hashedPwd,
	}
	err = db.Create(&user).Error
	return user, err
}

// CountActiveStaff counts active, non-deleted staff, for recipient assertions.
func CountActiveStaff(db *DBinstanceStruct) (int64, error) {
	var count int64
	err := db.Model(&m.User{}).Where("is_active = ? AND role IN ?", true, m.StaffRoles()).Count(&count).Error
	return count, err
}

// ptr helper
func ptr[T any](v T) *T { return &v }
