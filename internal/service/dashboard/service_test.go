package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func decPtr(value string) *decimal.Decimal {
	d := dec(value)
	return &d
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// newTestData builds a snapshotData the way load does, without a database.
func newTestData(t *testing.T, mode, value string, projects []project.Project, workers []worker.Worker, assignments []assignment.Assignment, entries []timesheet.TimeEntry) snapshotData {
	t.Helper()

	period, err := timecalc.ParsePeriod(mode, value)
	require.NoError(t, err)

	data := snapshotData{
		period:           period,
		projects:         projects,
		workers:          workers,
		assignments:      assignments,
		entries:          entries,
		settings:         account.CompanySettings{AccountID: 1, Verified: true},
		projectByID:      make(map[int64]project.Project),
		workerByID:       make(map[int64]worker.Worker),
		rosterByProject:  make(map[int64][]timecalc.RosterWorker),
		entriesByProject: make(map[int64][]timesheet.TimeEntry),
	}
	for _, p := range projects {
		data.projectByID[p.ID] = p
	}
	for _, w := range workers {
		data.workerByID[w.ID] = w
	}
	for _, a := range assignments {
		if w, ok := data.workerByID[a.WorkerID]; ok {
			data.rosterByProject[a.ProjectID] = append(data.rosterByProject[a.ProjectID], w.RosterWorker())
		}
	}
	for _, e := range entries {
		data.entriesByProject[e.ProjectID] = append(data.entriesByProject[e.ProjectID], e)
	}
	return data
}

func chantierData(t *testing.T) snapshotData {
	clientName := "SPRL Dubois"
	projects := []project.Project{
		{ID: 1, AccountID: 1, Name: "Chantier Nord", ClientName: &clientName, BillingRate: decPtr("60")},
	}
	workers := []worker.Worker{
		{ID: 10, AccountID: 1, FirstName: "Alice", LastName: "Dupont", PayRate: decPtr("25"), ChargesPct: dec("20")},
	}
	assignments := []assignment.Assignment{{ProjectID: 1, WorkerID: 10}}
	entries := []timesheet.TimeEntry{
		{ProjectID: 1, WorkerID: 10, Date: day("2025-03-03"), Hours: dec("8"), Status: timecalc.StatusWorked},
		{ProjectID: 1, WorkerID: 10, Date: day("2025-03-04"), Hours: dec("7.5"), Status: timecalc.StatusWorked},
		{ProjectID: 1, WorkerID: 10, Date: day("2025-03-05"), Hours: dec("0"), Status: timecalc.StatusAbsent},
	}
	return newTestData(t, "month", "2025-03", projects, workers, assignments, entries)
}

func TestComputeTotals(t *testing.T) {
	data := chantierData(t)

	totals, figures := computeTotals(data)

	assert.Len(t, figures, 1)
	assert.True(t, totals.BillableHours.Equal(dec("15.5")), "hours = %s", totals.BillableHours)

	// 15.5h x 60 invoiced, 15.5h x 25 x 1.20 paid out.
	require.NotNil(t, totals.AmountToInvoice)
	assert.True(t, totals.AmountToInvoice.Equal(dec("930")), "invoice = %s", totals.AmountToInvoice)
	require.NotNil(t, totals.AmountToPay)
	assert.True(t, totals.AmountToPay.Equal(dec("465")), "payroll = %s", totals.AmountToPay)
	require.NotNil(t, totals.EstimatedMargin)
	assert.True(t, totals.EstimatedMargin.Equal(dec("465")))
	require.NotNil(t, totals.PayrollCoverage)
	assert.InDelta(t, 2.0, *totals.PayrollCoverage, 0.001)
}

func TestComputeTotals_NoRatesStayNil(t *testing.T) {
	projects := []project.Project{{ID: 1, AccountID: 1, Name: "Chantier Sud"}}
	workers := []worker.Worker{{ID: 10, AccountID: 1, FirstName: "Bob", LastName: "Martin"}}
	assignments := []assignment.Assignment{{ProjectID: 1, WorkerID: 10}}
	entries := []timesheet.TimeEntry{
		{ProjectID: 1, WorkerID: 10, Date: day("2025-03-03"), Hours: dec("8"), Status: timecalc.StatusWorked},
	}
	data := newTestData(t, "month", "2025-03", projects, workers, assignments, entries)

	totals, _ := computeTotals(data)

	assert.Nil(t, totals.AmountToInvoice)
	assert.Nil(t, totals.AmountToPay)
	assert.Nil(t, totals.EstimatedMargin)
	assert.Nil(t, totals.PayrollCoverage)
	assert.True(t, totals.BillableHours.Equal(dec("8")))
}

func TestComputeOverview_CountsOnlyWorkedEntries(t *testing.T) {
	data := chantierData(t)

	overview := computeOverview(data)

	assert.Equal(t, 1, overview.ActiveProjects)
	assert.Equal(t, 1, overview.ActiveWorkers)
	assert.Equal(t, 1, overview.TotalProjects)
	assert.Equal(t, 1, overview.TotalWorkers)
}

func TestComputeTrend_MonthModeHasOneBucketPerDay(t *testing.T) {
	data := chantierData(t)

	buckets := computeTrend(data, "month")

	require.Len(t, buckets, 31)
	assert.Equal(t, "2025-03-01", buckets[0].Key)

	// March 3rd carries the first worked entry.
	bucket := buckets[2]
	assert.Equal(t, "2025-03-03", bucket.Key)
	assert.True(t, bucket.Hours.Equal(dec("8")))
	require.NotNil(t, bucket.Invoice)
	assert.True(t, bucket.Invoice.Equal(dec("480")))
}

func TestComputeTrend_QuarterModeBucketsByMonth(t *testing.T) {
	clientName := "SPRL Dubois"
	projects := []project.Project{
		{ID: 1, AccountID: 1, Name: "Chantier Nord", ClientName: &clientName, BillingRate: decPtr("60")},
	}
	workers := []worker.Worker{
		{ID: 10, AccountID: 1, FirstName: "Alice", LastName: "Dupont"},
	}
	assignments := []assignment.Assignment{{ProjectID: 1, WorkerID: 10}}
	entries := []timesheet.TimeEntry{
		{ProjectID: 1, WorkerID: 10, Date: day("2025-01-06"), Hours: dec("8"), Status: timecalc.StatusWorked},
		{ProjectID: 1, WorkerID: 10, Date: day("2025-03-10"), Hours: dec("4"), Status: timecalc.StatusWorked},
	}
	data := newTestData(t, "quarter", "2025-Q1", projects, workers, assignments, entries)

	buckets := computeTrend(data, "quarter")

	require.Len(t, buckets, 3)
	assert.Equal(t, "2025-01", buckets[0].Key)
	assert.Equal(t, "Janvier", buckets[0].Label)
	assert.True(t, buckets[0].Hours.Equal(dec("8")))
	assert.True(t, buckets[1].Hours.IsZero())
	assert.True(t, buckets[2].Hours.Equal(dec("4")))
}

func TestComputeProjectSplit_FoldsTailIntoAutres(t *testing.T) {
	var projects []project.Project
	var workers []worker.Worker
	var assignments []assignment.Assignment
	var entries []timesheet.TimeEntry

	workers = append(workers, worker.Worker{ID: 10, AccountID: 1, FirstName: "Alice", LastName: "Dupont"})
	for i := int64(1); i <= 7; i++ {
		projects = append(projects, project.Project{ID: i, AccountID: 1, Name: "Chantier"})
		assignments = append(assignments, assignment.Assignment{ProjectID: i, WorkerID: 10})
		entries = append(entries, timesheet.TimeEntry{
			ProjectID: i, WorkerID: 10,
			Date:   day("2025-03-03"),
			Hours:  decimal.NewFromInt(i), // distinct hour counts keep the order stable
			Status: timecalc.StatusWorked,
		})
	}
	data := newTestData(t, "month", "2025-03", projects, workers, assignments, entries)

	_, figures := computeTotals(data)
	slices := computeProjectSplit(data, figures)

	require.Len(t, slices, 6)
	assert.Equal(t, "Autres", slices[5].Label)
	// Projects 1 and 2 fall out of the top five: 1 + 2 = 3 hours.
	assert.True(t, slices[5].Hours.Equal(dec("3")), "autres = %s", slices[5].Hours)
	require.NotNil(t, slices[0].Share)
	assert.InDelta(t, 0.25, *slices[0].Share, 0.001) // 7 of 28 hours
}

func TestComputeAlerts(t *testing.T) {
	projects := []project.Project{
		{ID: 1, AccountID: 1, Name: "Chantier Nord"},
		{ID: 2, AccountID: 1, Name: "Chantier vide"},
		{ID: 3, AccountID: 1, Name: "Archivé", Archived: true},
	}
	past := day("2020-01-01")
	workers := []worker.Worker{
		{
			ID: 10, AccountID: 1, FirstName: "Alice", LastName: "Dupont",
			Documents: []worker.Document{{Kind: worker.DocVCA, ValidUntil: &past}},
		},
	}
	assignments := []assignment.Assignment{{ProjectID: 1, WorkerID: 10}}
	data := newTestData(t, "month", "2025-03", projects, workers, assignments, nil)
	data.settings = account.CompanySettings{AccountID: 1}

	alerts := computeAlerts(data)

	require.Len(t, alerts.ProjectsWithoutWorkers, 1)
	assert.Equal(t, int64(2), alerts.ProjectsWithoutWorkers[0].ID)
	require.Len(t, alerts.ExpiredDocuments, 1)
	assert.Equal(t, "VCA", alerts.ExpiredDocuments[0].Kind)
	assert.Equal(t, "DUPONT Alice", alerts.ExpiredDocuments[0].WorkerName)
	assert.True(t, alerts.CompanyUnverified)
}

func TestMondayOf(t *testing.T) {
	// 2025-03-05 is a Wednesday, 2025-03-09 a Sunday.
	assert.Equal(t, "2025-03-03", mondayOf(day("2025-03-05")))
	assert.Equal(t, "2025-03-03", mondayOf(day("2025-03-09")))
	assert.Equal(t, "2025-03-03", mondayOf(day("2025-03-03")))
}

func TestComputeWeeklyHours(t *testing.T) {
	data := chantierData(t)

	weeks := computeWeeklyHours(data)

	require.Len(t, weeks, 1)
	assert.Equal(t, "2025-03-03", weeks[0].WeekStart)
	assert.True(t, weeks[0].Hours.Equal(dec("15.5")))
}
