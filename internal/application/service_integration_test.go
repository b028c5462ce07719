//go:build integration

package application_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/application"
	"github.com/nikhil/placement-hub/internal/db"
	"github.com/nikhil/placement-hub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests require a running PostgreSQL database with the platform schema.
// Set TEST_DATABASE_URL to run them.

func getTestService(t *testing.T) (*application.Service, *db.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	database, err := db.Connect(context.Background(), dsn)
	require.NoError(t, err)

	return application.NewService(database, nil), database
}

func createTestStudentAndJob(t *testing.T, database *db.DB) (studentID, jobID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	studentUser, err := database.CreateUser(ctx, uuid.New().String()+"@test.example.com", "x")
	require.NoError(t, err)
	_, err = database.CreateProfile(ctx, studentUser, types.RoleStudent, "Test Student", "s@test.example.com")
	require.NoError(t, err)

	posterUser, err := database.CreateUser(ctx, uuid.New().String()+"@test.example.com", "x")
	require.NoError(t, err)
	_, err = database.CreateProfile(ctx, posterUser, types.RoleRecruiter, "Test Recruiter", "r@test.example.com")
	require.NoError(t, err)

	job, err := database.CreateJob(ctx, posterUser, &types.CreateJobRequest{
		Title:       "Integration Test Intern",
		CompanyName: "Test Corp",
		JobType:     types.JobTypeInternship,
		Description: "integration test posting",
	})
	require.NoError(t, err)

	return studentUser, job.ID
}

func TestIntegration_Apply_SecondAttemptIsAlreadyApplied(t *testing.T) {
	svc, database := getTestService(t)
	defer database.Close()
	ctx := context.Background()

	studentID, jobID := createTestStudentAndJob(t, database)

	first, err := svc.Apply(ctx, studentID, jobID, "please hire me")
	require.NoError(t, err)
	assert.Equal(t, types.StatusApplied, first.Status)

	_, err = svc.Apply(ctx, studentID, jobID, "please hire me again")
	require.Error(t, err)
	assert.True(t, errors.Is(err, application.ErrAlreadyApplied))

	// Exactly one row survives for the pair.
	apps, err := svc.ListForStudent(ctx, studentID)
	require.NoError(t, err)
	count := 0
	for _, a := range apps {
		if a.JobID == jobID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestIntegration_Apply_ClosedJobRejected(t *testing.T) {
	svc, database := getTestService(t)
	defer database.Close()
	ctx := context.Background()

	studentID, jobID := createTestStudentAndJob(t, database)

	job, err := database.GetJob(ctx, jobID)
	require.NoError(t, err)
	_, err = database.CloseJob(ctx, jobID, job.PostedBy)
	require.NoError(t, err)

	_, err = svc.Apply(ctx, studentID, jobID, "")
	assert.True(t, errors.Is(err, application.ErrJobNotOpen))
}
