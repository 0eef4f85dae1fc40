package timesheet

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
)

type stubProjectRepo struct {
	project.ProjectRepository
	p project.Project
}

func (s *stubProjectRepo) GetByID(ctx context.Context, id, accountID int64) (project.Project, error) {
	return s.p, nil
}

type stubWorkerRepo struct {
	worker.WorkerRepository
	w worker.Worker
}

func (s *stubWorkerRepo) GetByID(ctx context.Context, id, accountID int64) (worker.Worker, error) {
	return s.w, nil
}

type recordingAssignmentRepo struct {
	assignment.AssignmentRepository
	upserts int
}

func (r *recordingAssignmentRepo) Upsert(ctx context.Context, a assignment.Assignment) error {
	r.upserts++
	return nil
}

type capturingEntryRepo struct {
	timesheet.TimeEntryRepository
	saved timesheet.TimeEntry
}

func (r *capturingEntryRepo) Upsert(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	entry.ID = 1
	r.saved = entry
	return entry, nil
}

func authedContext(t *testing.T, accountID int64) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{"account_id": accountID})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

func TestUpsertEntryAbsenceKeepsNoteAndScheduleTimes(t *testing.T) {
	entryRepo := &capturingEntryRepo{}
	svc := &TimesheetServiceImpl{
		projectRepo:    &stubProjectRepo{},
		workerRepo:     &stubWorkerRepo{},
		assignmentRepo: &recordingAssignmentRepo{},
		timeEntryRepo:  entryRepo,
	}

	cell, err := svc.UpsertEntry(authedContext(t, 1), timesheet.UpsertEntryRequest{
		ProjectID: 10,
		WorkerID:  3,
		Date:      "2025-03-04",
		Hours:     "ABS",
		Note:      strPtr("rendez-vous médical"),
		StartTime: strPtr("08:00"),
		EndTime:   strPtr("16:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, timecalc.StatusAbsent, entryRepo.saved.Status)
	assert.True(t, entryRepo.saved.Hours.IsZero())
	require.NotNil(t, entryRepo.saved.Note)
	assert.Equal(t, "rendez-vous médical", *entryRepo.saved.Note)
	assert.Equal(t, strPtr("08:00"), entryRepo.saved.StartTime)
	assert.Equal(t, strPtr("16:30"), entryRepo.saved.EndTime)

	assert.Equal(t, timecalc.AbsenceLabel, cell.Hours)
	require.NotNil(t, cell.Note)
	assert.Equal(t, "rendez-vous médical", *cell.Note)
	assert.Equal(t, strPtr("08:00"), cell.StartTime)
	assert.Equal(t, strPtr("16:30"), cell.EndTime)
}

func TestUpsertEntryDoesNotTouchRoster(t *testing.T) {
	assignments := &recordingAssignmentRepo{}
	entryRepo := &capturingEntryRepo{}
	svc := &TimesheetServiceImpl{
		projectRepo:    &stubProjectRepo{},
		workerRepo:     &stubWorkerRepo{},
		assignmentRepo: assignments,
		timeEntryRepo:  entryRepo,
	}

	cell, err := svc.UpsertEntry(authedContext(t, 1), timesheet.UpsertEntryRequest{
		ProjectID: 10,
		WorkerID:  3,
		Date:      "2025-03-04",
		Hours:     "07:30",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, assignments.upserts)
	assert.True(t, entryRepo.saved.Hours.Equal(decimal.NewFromFloat(7.5)))
	assert.Equal(t, "07:30", cell.Hours)
}
