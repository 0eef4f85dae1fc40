package worker

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
)

type WorkerStatus string

const (
	StatusSalarie     WorkerStatus = "SALARIE"
	StatusIndependant WorkerStatus = "INDEPENDANT"
	StatusAssocie     WorkerStatus = "ASSOCIE"
)

// NeedsVATNumber reports whether this status legally requires a VAT number.
func (s WorkerStatus) NeedsVATNumber() bool {
	return s == StatusIndependant || s == StatusAssocie
}

type Worker struct {
	ID              int64
	AccountID       int64
	FirstName       string
	LastName        string
	Email           *string
	Phone           *string
	NationalID      *string
	Status          *WorkerStatus
	VATNumber       *string
	PayRate         *decimal.Decimal
	ChargesPct      decimal.Decimal
	IncludeInExport bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Loaded relationships
	AdditionalCosts []AdditionalCost
	Documents       []Document
	TeamIDs         []int64
}

// AdditionalCost is a recurring per-hour or per-worked-day charge on top
// of the base pay rate.
type AdditionalCost struct {
	ID       int64
	WorkerID int64
	Label    string
	Unit     timecalc.CostUnit
	Amount   decimal.Decimal
}

type DocumentKind string

const (
	DocCareerAttestation DocumentKind = "CAREER_ATTESTATION"
	DocCI                DocumentKind = "CI"
	DocVCA               DocumentKind = "VCA"
)

// RequiredDocumentKinds are the kinds every worker must hold, unexpired,
// to count as compliant.
var RequiredDocumentKinds = []DocumentKind{DocCareerAttestation, DocCI, DocVCA}

type Document struct {
	ID         int64
	WorkerID   int64
	Kind       DocumentKind
	FileName   string
	FilePath   string
	ValidUntil *time.Time
	CreatedAt  time.Time
}

// ValidOn reports whether the document is still usable at the given
// instant: through the end of its ValidUntil day. A document without an
// expiry date never counts as valid, so it cannot satisfy a required
// check by omission.
func (d Document) ValidOn(now time.Time) bool {
	if d.ValidUntil == nil {
		return false
	}
	end := time.Date(
		d.ValidUntil.Year(), d.ValidUntil.Month(), d.ValidUntil.Day(),
		0, 0, 0, 0, time.UTC,
	).AddDate(0, 0, 1)
	return now.Before(end)
}

// Compliance is the per-worker check result surfaced on rosters and the
// dashboard.
type Compliance struct {
	Compliant bool     `json:"compliant"`
	Issues    []string `json:"issues,omitempty"`
}

// RosterWorker converts to the shared computation shape.
func (w Worker) RosterWorker() timecalc.RosterWorker {
	costs := make([]timecalc.AdditionalCost, 0, len(w.AdditionalCosts))
	for _, c := range w.AdditionalCosts {
		costs = append(costs, timecalc.AdditionalCost{
			Label:  c.Label,
			Unit:   c.Unit,
			Amount: c.Amount,
		})
	}
	return timecalc.RosterWorker{
		ID:              w.ID,
		FirstName:       w.FirstName,
		LastName:        w.LastName,
		PayRate:         w.PayRate,
		ChargesPct:      w.ChargesPct,
		AdditionalCosts: costs,
	}
}
