package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
)

func strPtr(s string) *string { return &s }

func datePtr(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func verifiedSettings() account.CompanySettings {
	return account.CompanySettings{AccountID: 1, Verified: true}
}

func compliantWorker() Worker {
	status := StatusSalarie
	return Worker{
		ID:         1,
		FirstName:  "Alice",
		LastName:   "Dupont",
		Email:      strPtr("alice@example.com"),
		NationalID: strPtr("85.01.01-123.45"),
		Status:     &status,
		Documents: []Document{
			{Kind: DocCareerAttestation, ValidUntil: datePtr("2026-01-01")},
			{Kind: DocCI, ValidUntil: datePtr("2026-01-01")},
			{Kind: DocVCA, ValidUntil: datePtr("2026-01-01")},
		},
	}
}

func TestEvaluateCompliance_AllChecksPass(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	result := EvaluateCompliance(compliantWorker(), verifiedSettings(), now)

	assert.True(t, result.Compliant)
	assert.Empty(t, result.Issues)
}

func TestEvaluateCompliance_MissingFields(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	w := Worker{ID: 1, FirstName: "Bob", LastName: "Martin"}

	result := EvaluateCompliance(w, verifiedSettings(), now)

	assert.False(t, result.Compliant)
	assert.Contains(t, result.Issues, "missing_email")
	assert.Contains(t, result.Issues, "missing_national_id")
	assert.Contains(t, result.Issues, "missing_status")
	assert.Contains(t, result.Issues, "missing_document_CAREER_ATTESTATION")
	assert.Contains(t, result.Issues, "missing_document_CI")
	assert.Contains(t, result.Issues, "missing_document_VCA")
}

func TestEvaluateCompliance_VATRequiredForIndependant(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	w := compliantWorker()
	status := StatusIndependant
	w.Status = &status

	result := EvaluateCompliance(w, verifiedSettings(), now)
	assert.Contains(t, result.Issues, "missing_vat_number")

	w.VATNumber = strPtr("BE0123456789")
	result = EvaluateCompliance(w, verifiedSettings(), now)
	assert.True(t, result.Compliant)
}

func TestEvaluateCompliance_VATNotRequiredForSalarie(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	result := EvaluateCompliance(compliantWorker(), verifiedSettings(), now)

	assert.NotContains(t, result.Issues, "missing_vat_number")
}

func TestEvaluateCompliance_ExpiredDocumentBeyondValidUntilDay(t *testing.T) {
	// Expiry on the 10th keeps the document valid through the end of
	// that day; the 11th is too late.
	w := compliantWorker()
	w.Documents[2] = Document{Kind: DocVCA, ValidUntil: datePtr("2025-03-10")}

	endOfValidDay := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	result := EvaluateCompliance(w, verifiedSettings(), endOfValidDay)
	assert.True(t, result.Compliant)

	dayAfter := time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC)
	result = EvaluateCompliance(w, verifiedSettings(), dayAfter)
	assert.False(t, result.Compliant)
	assert.Contains(t, result.Issues, "expired_document_VCA")
}

func TestEvaluateCompliance_DocumentWithoutExpiryCountsAsExpired(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	w := compliantWorker()
	w.Documents[1] = Document{Kind: DocCI}

	result := EvaluateCompliance(w, verifiedSettings(), now)

	assert.False(t, result.Compliant)
	assert.Contains(t, result.Issues, "expired_document_CI")
}

func TestEvaluateCompliance_RenewalSupersedesStaleDocument(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	w := compliantWorker()
	w.Documents = append(w.Documents,
		Document{Kind: DocVCA, ValidUntil: datePtr("2024-01-01")},
		Document{Kind: DocVCA, ValidUntil: datePtr("2026-01-01")},
	)

	result := EvaluateCompliance(w, verifiedSettings(), now)

	assert.True(t, result.Compliant)
}

func TestEvaluateCompliance_DatedRenewalSupersedesUndatedCopy(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	w := compliantWorker()
	w.Documents = append(w.Documents,
		Document{Kind: DocVCA}, // no expiry on file
	)

	result := EvaluateCompliance(w, verifiedSettings(), now)

	assert.True(t, result.Compliant)
}

func TestEvaluateCompliance_InvalidCompanySettings(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	result := EvaluateCompliance(compliantWorker(), account.CompanySettings{AccountID: 1}, now)
	assert.Contains(t, result.Issues, "company_settings_invalid")

	lapsed := account.CompanySettings{AccountID: 1, Verified: true, ValidUntil: datePtr("2025-01-01")}
	result = EvaluateCompliance(compliantWorker(), lapsed, now)
	assert.Contains(t, result.Issues, "company_settings_invalid")
}
