package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/domain/assignment"
	"github.com/chronnix/chronnix-backend-go/internal/domain/dashboard"
	"github.com/chronnix/chronnix-backend-go/internal/domain/project"
	"github.com/chronnix/chronnix-backend-go/internal/domain/timesheet"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
)

const topListSize = 5

type DashboardServiceImpl struct {
	projectRepo    project.ProjectRepository
	workerRepo     worker.WorkerRepository
	assignmentRepo assignment.AssignmentRepository
	timeEntryRepo  timesheet.TimeEntryRepository
	accountRepo    account.AccountRepository
}

func NewDashboardService(
	projectRepo project.ProjectRepository,
	workerRepo worker.WorkerRepository,
	assignmentRepo assignment.AssignmentRepository,
	timeEntryRepo timesheet.TimeEntryRepository,
	accountRepo account.AccountRepository,
) dashboard.Service {
	return &DashboardServiceImpl{
		projectRepo:    projectRepo,
		workerRepo:     workerRepo,
		assignmentRepo: assignmentRepo,
		timeEntryRepo:  timeEntryRepo,
		accountRepo:    accountRepo,
	}
}

// snapshotData is everything the snapshot computations read, loaded once.
type snapshotData struct {
	period      timecalc.Period
	projects    []project.Project
	workers     []worker.Worker
	assignments []assignment.Assignment
	entries     []timesheet.TimeEntry
	settings    account.CompanySettings

	projectByID     map[int64]project.Project
	workerByID      map[int64]worker.Worker
	rosterByProject map[int64][]timecalc.RosterWorker
	entriesByProject map[int64][]timesheet.TimeEntry
}

// GetSnapshot implements dashboard.Service.
func (s *DashboardServiceImpl) GetSnapshot(ctx context.Context, req dashboard.SnapshotRequest) (dashboard.Snapshot, error) {
	if err := req.Validate(); err != nil {
		return dashboard.Snapshot{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return dashboard.Snapshot{}, err
	}

	data, err := s.load(ctx, accountID, req)
	if err != nil {
		return dashboard.Snapshot{}, err
	}

	totals, projectFigures := computeTotals(data)

	return dashboard.Snapshot{
		Mode:           req.Mode,
		Value:          req.Value,
		Totals:         totals,
		Overview:       computeOverview(data),
		TopClients:     computeTopClients(data, projectFigures),
		TopProjects:    computeTopProjects(data, projectFigures),
		TopWorkers:     computeTopWorkers(data),
		Trend:          computeTrend(data, req.Mode),
		WeeklyHours:    computeWeeklyHours(data),
		ProjectSplit:   computeProjectSplit(data, projectFigures),
		WorkerActivity: computeWorkerActivity(data),
		Alerts:         computeAlerts(data),
	}, nil
}

func (s *DashboardServiceImpl) load(ctx context.Context, accountID int64, req dashboard.SnapshotRequest) (snapshotData, error) {
	period, err := timecalc.ParsePeriod(req.Mode, req.Value)
	if err != nil {
		return snapshotData{}, err
	}

	projects, err := s.projectRepo.ListByAccount(ctx, accountID, project.ProjectListFilter{IncludeArchived: true})
	if err != nil {
		return snapshotData{}, err
	}

	workers, err := s.workerRepo.ListByAccount(ctx, accountID, worker.WorkerListFilter{})
	if err != nil {
		return snapshotData{}, err
	}

	assignments, err := s.assignmentRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return snapshotData{}, err
	}

	entries, err := s.timeEntryRepo.ListByAccountPeriod(ctx, accountID, period.Start, period.End)
	if err != nil {
		return snapshotData{}, err
	}

	settings, err := s.accountRepo.GetSettings(ctx, accountID)
	if err != nil {
		return snapshotData{}, err
	}

	data := snapshotData{
		period:           period,
		projects:         projects,
		workers:          workers,
		assignments:      assignments,
		entries:          entries,
		settings:         settings,
		projectByID:      make(map[int64]project.Project, len(projects)),
		workerByID:       make(map[int64]worker.Worker, len(workers)),
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

	return data, nil
}

// projectFigure is one project's valuation over a day scope.
type projectFigure struct {
	projectID int64
	hours     decimal.Decimal
	invoice   *decimal.Decimal
	payroll   *decimal.Decimal
}

// valuateProjects runs the shared valuation per project over the given
// days, so every dashboard figure agrees with timesheets and exports.
func valuateProjects(data snapshotData, days []timecalc.Day) []projectFigure {
	figures := make([]projectFigure, 0, len(data.entriesByProject))

	for projectID, projectEntries := range data.entriesByProject {
		p, ok := data.projectByID[projectID]
		if !ok {
			continue
		}

		calcEntries := make([]timecalc.Entry, 0, len(projectEntries))
		for _, e := range projectEntries {
			calcEntries = append(calcEntries, e.CalcEntry())
		}

		roster := data.rosterByProject[projectID]
		agg := timecalc.Aggregate(roster, days, calcEntries)
		valuation := timecalc.Valuate(agg, roster, p.BillingRate)

		figures = append(figures, projectFigure{
			projectID: projectID,
			hours:     agg.TotalHours(),
			invoice:   valuation.InvoiceEstimate,
			payroll:   valuation.PayrollEstimate,
		})
	}

	return figures
}

func computeTotals(data snapshotData) (dashboard.Totals, []projectFigure) {
	figures := valuateProjects(data, data.period.Days())

	var invoice, payroll *decimal.Decimal
	hours := decimal.Zero
	for _, fig := range figures {
		hours = hours.Add(fig.hours)
		invoice = addOptional(invoice, fig.invoice)
		payroll = addOptional(payroll, fig.payroll)
	}

	totals := dashboard.Totals{
		AmountToInvoice: invoice,
		AmountToPay:     payroll,
		BillableHours:   hours,
	}

	if invoice != nil && payroll != nil {
		margin := invoice.Sub(*payroll)
		totals.EstimatedMargin = &margin
		if payroll.Sign() > 0 {
			coverage, _ := invoice.Div(*payroll).Float64()
			totals.PayrollCoverage = &coverage
		}
	}

	return totals, figures
}

func computeOverview(data snapshotData) dashboard.Overview {
	activeProjects := make(map[int64]bool)
	activeWorkers := make(map[int64]bool)
	for _, e := range data.entries {
		if e.Status == timecalc.StatusWorked && e.Hours.Sign() > 0 {
			activeProjects[e.ProjectID] = true
			activeWorkers[e.WorkerID] = true
		}
	}

	return dashboard.Overview{
		ActiveProjects: len(activeProjects),
		ActiveWorkers:  len(activeWorkers),
		TotalWorkers:   len(data.workers),
		TotalProjects:  len(data.projects),
	}
}

func computeTopClients(data snapshotData, figures []projectFigure) []dashboard.TopItem {
	type clientFigure struct {
		hours   decimal.Decimal
		invoice *decimal.Decimal
	}
	byClient := make(map[string]*clientFigure)

	for _, fig := range figures {
		p := data.projectByID[fig.projectID]
		name := "Sans client"
		if p.ClientName != nil && *p.ClientName != "" {
			name = *p.ClientName
		}
		entry, ok := byClient[name]
		if !ok {
			entry = &clientFigure{}
			byClient[name] = entry
		}
		entry.hours = entry.hours.Add(fig.hours)
		entry.invoice = addOptional(entry.invoice, fig.invoice)
	}

	items := make([]dashboard.TopItem, 0, len(byClient))
	for name, fig := range byClient {
		items = append(items, dashboard.TopItem{
			Label:   name,
			Hours:   fig.hours,
			Invoice: fig.invoice,
		})
	}

	return sortAndTrim(items)
}

func computeTopProjects(data snapshotData, figures []projectFigure) []dashboard.TopItem {
	items := make([]dashboard.TopItem, 0, len(figures))
	for _, fig := range figures {
		p := data.projectByID[fig.projectID]
		items = append(items, dashboard.TopItem{
			ID:      p.ID,
			Label:   p.Name,
			Hours:   fig.hours,
			Invoice: fig.invoice,
			Payroll: fig.payroll,
		})
	}

	return sortAndTrim(items)
}

func computeTopWorkers(data snapshotData) []dashboard.TopItem {
	hoursByWorker := make(map[int64]decimal.Decimal)
	for _, e := range data.entries {
		if e.Status != timecalc.StatusWorked || e.Hours.Sign() <= 0 {
			continue
		}
		hoursByWorker[e.WorkerID] = hoursByWorker[e.WorkerID].Add(e.Hours)
	}

	items := make([]dashboard.TopItem, 0, len(hoursByWorker))
	for workerID, hours := range hoursByWorker {
		w, ok := data.workerByID[workerID]
		if !ok {
			continue
		}
		items = append(items, dashboard.TopItem{
			ID:    workerID,
			Label: timecalc.FormatWorkerName(w.RosterWorker()),
			Hours: hours,
		})
	}

	return sortAndTrim(items)
}

var frenchMonths = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// computeTrend buckets the period: one bucket per day for month mode,
// one per month for quarter mode.
func computeTrend(data snapshotData, mode string) []dashboard.TrendBucket {
	days := data.period.Days()

	var groups [][]timecalc.Day
	var keys, labels []string

	if mode == "month" {
		for _, d := range days {
			groups = append(groups, []timecalc.Day{d})
			keys = append(keys, d.Key)
			labels = append(labels, d.Label)
		}
	} else {
		byMonth := make(map[string][]timecalc.Day)
		var order []string
		for _, d := range days {
			key := d.Date.Format("2006-01")
			if _, ok := byMonth[key]; !ok {
				order = append(order, key)
			}
			byMonth[key] = append(byMonth[key], d)
		}
		for _, key := range order {
			groups = append(groups, byMonth[key])
			keys = append(keys, key)
			labels = append(labels, frenchMonths[byMonth[key][0].Date.Month()-1])
		}
	}

	buckets := make([]dashboard.TrendBucket, 0, len(groups))
	for i, group := range groups {
		scoped := scopeToDays(data, group)
		figures := valuateProjects(scoped, group)

		var invoice, payroll *decimal.Decimal
		hours := decimal.Zero
		for _, fig := range figures {
			hours = hours.Add(fig.hours)
			invoice = addOptional(invoice, fig.invoice)
			payroll = addOptional(payroll, fig.payroll)
		}

		buckets = append(buckets, dashboard.TrendBucket{
			Key:     keys[i],
			Label:   labels[i],
			Invoice: invoice,
			Payroll: payroll,
			Hours:   hours,
		})
	}

	return buckets
}

// scopeToDays narrows the dataset's entries to the given days so the
// shared valuation can run on a sub-period.
func scopeToDays(data snapshotData, days []timecalc.Day) snapshotData {
	inScope := make(map[string]bool, len(days))
	for _, d := range days {
		inScope[d.Key] = true
	}

	scoped := data
	scoped.entriesByProject = make(map[int64][]timesheet.TimeEntry)
	for projectID, entries := range data.entriesByProject {
		for _, e := range entries {
			if inScope[e.DayKey()] {
				scoped.entriesByProject[projectID] = append(scoped.entriesByProject[projectID], e)
			}
		}
	}

	return scoped
}

func computeWeeklyHours(data snapshotData) []dashboard.WeeklyHours {
	hoursByWeek := make(map[string]decimal.Decimal)
	for _, e := range data.entries {
		if e.Status != timecalc.StatusWorked || e.Hours.Sign() <= 0 {
			continue
		}
		weekStart := mondayOf(e.Date)
		hoursByWeek[weekStart] = hoursByWeek[weekStart].Add(e.Hours)
	}

	weeks := make([]dashboard.WeeklyHours, 0, len(hoursByWeek))
	for weekStart, hours := range hoursByWeek {
		weeks = append(weeks, dashboard.WeeklyHours{WeekStart: weekStart, Hours: hours})
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart < weeks[j].WeekStart
	})

	return weeks
}

func mondayOf(date time.Time) string {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return timecalc.DayKey(date.AddDate(0, 0, 1-weekday))
}

func computeProjectSplit(data snapshotData, figures []projectFigure) []dashboard.ProjectSlice {
	total := decimal.Zero
	for _, fig := range figures {
		total = total.Add(fig.hours)
	}

	sorted := make([]projectFigure, len(figures))
	copy(sorted, figures)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].hours.GreaterThan(sorted[j].hours)
	})

	slices := make([]dashboard.ProjectSlice, 0, topListSize+1)
	others := decimal.Zero
	for i, fig := range sorted {
		if i < topListSize {
			p := data.projectByID[fig.projectID]
			id := p.ID
			slices = append(slices, dashboard.ProjectSlice{
				ProjectID: &id,
				Label:     p.Name,
				Hours:     fig.hours,
				Share:     shareOf(fig.hours, total),
			})
			continue
		}
		others = others.Add(fig.hours)
	}

	if others.Sign() > 0 {
		slices = append(slices, dashboard.ProjectSlice{
			Label: "Autres",
			Hours: others,
			Share: shareOf(others, total),
		})
	}

	return slices
}

func computeWorkerActivity(data snapshotData) []dashboard.WorkerActivity {
	type activity struct {
		hours    decimal.Decimal
		days     map[string]bool
		projects map[int64]bool
	}
	byWorker := make(map[int64]*activity)

	for _, e := range data.entries {
		if e.Status != timecalc.StatusWorked || e.Hours.Sign() <= 0 {
			continue
		}
		act, ok := byWorker[e.WorkerID]
		if !ok {
			act = &activity{days: make(map[string]bool), projects: make(map[int64]bool)}
			byWorker[e.WorkerID] = act
		}
		act.hours = act.hours.Add(e.Hours)
		act.days[e.DayKey()] = true
		act.projects[e.ProjectID] = true
	}

	activities := make([]dashboard.WorkerActivity, 0, len(byWorker))
	for workerID, act := range byWorker {
		w, ok := data.workerByID[workerID]
		if !ok {
			continue
		}
		activities = append(activities, dashboard.WorkerActivity{
			WorkerID:   workerID,
			Name:       timecalc.FormatWorkerName(w.RosterWorker()),
			Hours:      act.hours,
			WorkedDays: len(act.days),
			Projects:   len(act.projects),
		})
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Hours.GreaterThan(activities[j].Hours)
	})

	return activities
}

func computeAlerts(data snapshotData) dashboard.Alerts {
	assignedProjects := make(map[int64]bool)
	for _, a := range data.assignments {
		assignedProjects[a.ProjectID] = true
	}

	var emptyProjects []dashboard.TopItem
	for _, p := range data.projects {
		if p.Archived || assignedProjects[p.ID] {
			continue
		}
		emptyProjects = append(emptyProjects, dashboard.TopItem{
			ID:    p.ID,
			Label: p.Name,
			Hours: decimal.Zero,
		})
	}

	now := time.Now().UTC()
	var expiredDocs []dashboard.Alert
	for _, w := range data.workers {
		for _, doc := range w.Documents {
			if doc.ValidOn(now) {
				continue
			}
			alert := dashboard.Alert{
				WorkerID:   w.ID,
				WorkerName: timecalc.FormatWorkerName(w.RosterWorker()),
				Kind:       string(doc.Kind),
			}
			if doc.ValidUntil != nil {
				alert.ValidUntil = doc.ValidUntil.Format("2006-01-02")
			}
			expiredDocs = append(expiredDocs, alert)
		}
	}

	return dashboard.Alerts{
		ProjectsWithoutWorkers: emptyProjects,
		ExpiredDocuments:       expiredDocs,
		CompanyUnverified:      !data.settings.Valid(now),
	}
}

// addOptional sums nullable money figures: nil + nil stays nil, so a
// dashboard with no rates anywhere shows "—" instead of 0.
func addOptional(sum, value *decimal.Decimal) *decimal.Decimal {
	if value == nil {
		return sum
	}
	if sum == nil {
		v := *value
		return &v
	}
	total := sum.Add(*value)
	return &total
}

func shareOf(part, total decimal.Decimal) *float64 {
	if total.Sign() <= 0 {
		return nil
	}
	share, _ := part.Div(total).Float64()
	return &share
}

func sortAndTrim(items []dashboard.TopItem) []dashboard.TopItem {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Hours.GreaterThan(items[j].Hours)
	})
	if len(items) > topListSize {
		items = items[:topListSize]
	}
	return items
}

func accountIDFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	accountID, ok := claims["account_id"].(float64)
	if !ok || accountID <= 0 {
		return 0, fmt.Errorf("account_id claim is missing or invalid")
	}

	return int64(accountID), nil
}
