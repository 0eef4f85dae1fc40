package timecalc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type ExportKind string

const (
	ExportPayroll ExportKind = "payroll"
	ExportDetail  ExportKind = "detail"
	ExportGlobal  ExportKind = "global"
)

// Sheet is a pure tabular view: a name plus rows of string, float64 or
// empty-string cells. Styling and workbook serialization are the export
// service's concern.
type Sheet struct {
	Name string
	Rows [][]any
}

// Dataset bundles everything the sheet builders need for one (project,
// period) scope.
type Dataset struct {
	Workers []RosterWorker
	Days    []Day
	Entries map[int64]map[string]Entry
}

// EmDash marks a cell whose rate is not set; the surrounding sums treat
// the contribution as zero.
const EmDash = "—"

func ParseExportKind(value string) (ExportKind, error) {
	switch ExportKind(value) {
	case ExportPayroll, ExportDetail, ExportGlobal:
		return ExportKind(value), nil
	case "":
		return ExportPayroll, nil
	default:
		return "", fmt.Errorf("unsupported export kind: %s", value)
	}
}

// BuildSheet renders one of the three export views from the dataset.
func BuildSheet(kind ExportKind, dataset Dataset) (Sheet, error) {
	agg := aggregateDataset(dataset)
	switch kind {
	case ExportPayroll:
		return buildPayrollSheet(dataset, agg), nil
	case ExportDetail:
		return buildDetailSheet(dataset), nil
	case ExportGlobal:
		return buildGlobalSheet(dataset, agg), nil
	default:
		return Sheet{}, fmt.Errorf("unsupported export kind: %s", kind)
	}
}

func aggregateDataset(dataset Dataset) *Aggregation {
	var entries []Entry
	for _, byDay := range dataset.Entries {
		for _, entry := range byDay {
			entries = append(entries, entry)
		}
	}
	return Aggregate(dataset.Workers, dataset.Days, entries)
}

// SortRoster orders workers by last name then first name, the ordering
// every sheet preserves.
func SortRoster(workers []RosterWorker) {
	sort.SliceStable(workers, func(i, j int) bool {
		if workers[i].LastName == workers[j].LastName {
			return workers[i].FirstName < workers[j].FirstName
		}
		return workers[i].LastName < workers[j].LastName
	})
}

func buildPayrollSheet(dataset Dataset, agg *Aggregation) Sheet {
	rows := [][]any{{"Ouvrier", "Heures", "Taux €/h", "Charges %", "Coût total €"}}

	var hourLabels []string
	costTotal := decimal.Zero

	for _, worker := range dataset.Workers {
		hours := agg.WorkerHours(worker.ID)
		hoursLabel := FormatHHMM(hours)
		cost := WorkerCost(worker, hours, agg.WorkerWorkedDays(worker.ID)).Round(2)

		var rateCell any = EmDash
		if worker.PayRate != nil && worker.PayRate.Sign() > 0 {
			rateCell = worker.PayRate.Round(2).InexactFloat64()
		}

		rows = append(rows, []any{
			FormatWorkerName(worker),
			hoursLabel,
			rateCell,
			fmt.Sprintf("%s%%", worker.ChargesPct.StringFixed(2)),
			cost.InexactFloat64(),
		})
		hourLabels = append(hourLabels, hoursLabel)
		costTotal = costTotal.Add(cost)
	}

	rows = append(rows, []any{"TOTAL", SumHHMM(hourLabels), EmDash, "", costTotal.Round(2).InexactFloat64()})

	return Sheet{Name: "Paie", Rows: rows}
}

func buildDetailSheet(dataset Dataset) Sheet {
	header := make([]any, 0, len(dataset.Days)+2)
	header = append(header, "Ouvrier")
	for _, day := range dataset.Days {
		header = append(header, day.Label)
	}
	header = append(header, "Total")

	rows := [][]any{header}

	for _, worker := range dataset.Workers {
		row := make([]any, len(header))
		for i := range row {
			row[i] = ""
		}
		row[0] = FormatWorkerName(worker)

		var dailyLabels []string
		byDay := dataset.Entries[worker.ID]
		for i, day := range dataset.Days {
			entry, ok := byDay[day.Key]
			if !ok {
				continue
			}
			if entry.Status == StatusAbsent {
				row[i+1] = AbsenceLabel
				continue
			}
			label := FormatHHMM(entry.Hours)
			row[i+1] = label
			dailyLabels = append(dailyLabels, label)
		}

		row[len(row)-1] = SumHHMM(dailyLabels)
		rows = append(rows, row)
	}

	bodyRows := rows[1:]
	totalRow := make([]any, len(header))
	for i := range totalRow {
		totalRow[i] = ""
	}
	totalRow[0] = "TOTAL"

	for column := 1; column < len(header); column++ {
		var labels []string
		for _, row := range bodyRows {
			if label, ok := row[column].(string); ok {
				labels = append(labels, label)
			}
		}
		totalRow[column] = SumHHMM(labels)
	}
	rows = append(rows, totalRow)

	return Sheet{Name: "Détail", Rows: rows}
}

func buildGlobalSheet(dataset Dataset, agg *Aggregation) Sheet {
	rows := [][]any{{"Ouvrier", "Total heures", "Jours prestés"}}

	var hourLabels []string
	dayTotal := 0

	for _, worker := range dataset.Workers {
		hoursLabel := FormatHHMM(agg.WorkerHours(worker.ID))
		workedDays := agg.WorkerWorkedDays(worker.ID)

		rows = append(rows, []any{FormatWorkerName(worker), hoursLabel, float64(workedDays)})
		hourLabels = append(hourLabels, hoursLabel)
		dayTotal += workedDays
	}

	rows = append(rows, []any{"TOTAL", SumHHMM(hourLabels), float64(dayTotal)})

	return Sheet{Name: "Global", Rows: rows}
}

// FormatWorkerName renders the export display name: upper-case last name
// followed by the first name.
func FormatWorkerName(worker RosterWorker) string {
	return strings.TrimSpace(strings.ToUpper(worker.LastName) + " " + worker.FirstName)
}
