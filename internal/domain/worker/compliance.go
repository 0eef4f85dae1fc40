package worker

import (
	"time"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
)

// EvaluateCompliance runs the full per-worker compliance check. It is a
// pure function so rosters and the dashboard can evaluate whole lists
// without extra queries.
func EvaluateCompliance(w Worker, settings account.CompanySettings, now time.Time) Compliance {
	var issues []string

	if w.Email == nil || *w.Email == "" {
		issues = append(issues, "missing_email")
	}
	if w.NationalID == nil || *w.NationalID == "" {
		issues = append(issues, "missing_national_id")
	}
	if w.Status == nil {
		issues = append(issues, "missing_status")
	} else if w.Status.NeedsVATNumber() && (w.VATNumber == nil || *w.VATNumber == "") {
		issues = append(issues, "missing_vat_number")
	}

	for _, kind := range RequiredDocumentKinds {
		doc, found := latestDocumentOfKind(w.Documents, kind)
		switch {
		case !found:
			issues = append(issues, "missing_document_"+string(kind))
		case !doc.ValidOn(now):
			issues = append(issues, "expired_document_"+string(kind))
		}
	}

	if !settings.Valid(now) {
		issues = append(issues, "company_settings_invalid")
	}

	return Compliance{
		Compliant: len(issues) == 0,
		Issues:    issues,
	}
}

// latestDocumentOfKind prefers the document with the furthest expiry;
// an uploaded renewal supersedes the stale copy without requiring a delete.
func latestDocumentOfKind(docs []Document, kind DocumentKind) (Document, bool) {
	var best Document
	found := false
	for _, d := range docs {
		if d.Kind != kind {
			continue
		}
		if !found {
			best = d
			found = true
			continue
		}
		// a dated renewal supersedes a copy with no expiry on file
		if d.ValidUntil == nil {
			continue
		}
		if best.ValidUntil == nil || d.ValidUntil.After(*best.ValidUntil) {
			best = d
		}
	}
	return best, found
}
