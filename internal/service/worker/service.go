package worker

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronnix/chronnix-backend-go/internal/domain/account"
	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/storage"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/validator"
)

type WorkerServiceImpl struct {
	workerRepo  worker.WorkerRepository
	accountRepo account.AccountRepository
	fileStorage storage.FileStorage
}

func NewWorkerService(
	workerRepo worker.WorkerRepository,
	accountRepo account.AccountRepository,
	fileStorage storage.FileStorage,
) worker.Service {
	return &WorkerServiceImpl{
		workerRepo:  workerRepo,
		accountRepo: accountRepo,
		fileStorage: fileStorage,
	}
}

// CreateWorker implements worker.Service.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w := worker.Worker{
		AccountID:       accountID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		NationalID:      req.NationalID,
		VATNumber:       req.VATNumber,
		ChargesPct:      decimal.Zero,
		IncludeInExport: true,
	}
	applyWorkerFields(&w, req)

	created, err := s.workerRepo.Create(ctx, w)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return s.toResponse(ctx, created)
}

// GetWorker implements worker.Service.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id int64) (worker.WorkerResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, id, accountID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return s.toResponse(ctx, w)
}

// ListWorkers implements worker.Service.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.WorkerListFilter) ([]worker.WorkerResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.ListByAccount(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}

	settings, err := s.accountRepo.GetSettings(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		compliance := worker.EvaluateCompliance(w, settings, now)
		if filter.Compliant != nil && compliance.Compliant != *filter.Compliant {
			continue
		}
		responses = append(responses, buildResponse(w, compliance))
	}

	return responses, nil
}

// UpdateWorker implements worker.Service.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.ID, accountID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.FirstName != "" {
		w.FirstName = req.FirstName
	}
	if req.LastName != "" {
		w.LastName = req.LastName
	}
	if req.Email != nil {
		w.Email = req.Email
	}
	if req.Phone != nil {
		w.Phone = req.Phone
	}
	if req.NationalID != nil {
		w.NationalID = req.NationalID
	}
	if req.VATNumber != nil {
		w.VATNumber = req.VATNumber
	}
	applyWorkerFields(&w, req.CreateWorkerRequest)

	if err := s.workerRepo.Update(ctx, w); err != nil {
		return worker.WorkerResponse{}, err
	}

	return s.toResponse(ctx, w)
}

// DeleteWorker implements worker.Service.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id int64) error {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}

	// Fetch first so stored document files can be cleaned up.
	w, err := s.workerRepo.GetByID(ctx, id, accountID)
	if err != nil {
		return err
	}

	if err := s.workerRepo.Delete(ctx, id, accountID); err != nil {
		return err
	}

	for _, doc := range w.Documents {
		_ = s.fileStorage.Delete(ctx, doc.FilePath)
	}

	return nil
}

// AddCost implements worker.Service.
func (s *WorkerServiceImpl) AddCost(ctx context.Context, req worker.CreateCostRequest) (worker.CostResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.CostResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return worker.CostResponse{}, err
	}
	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID, accountID); err != nil {
		return worker.CostResponse{}, err
	}

	amount, _ := decimal.NewFromString(req.Amount)
	created, err := s.workerRepo.CreateCost(ctx, worker.AdditionalCost{
		WorkerID: req.WorkerID,
		Label:    req.Label,
		Unit:     timecalc.CostUnit(req.Unit),
		Amount:   amount,
	})
	if err != nil {
		return worker.CostResponse{}, err
	}

	return toCostResponse(created), nil
}

// UpdateCost implements worker.Service.
func (s *WorkerServiceImpl) UpdateCost(ctx context.Context, req worker.UpdateCostRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}
	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID, accountID); err != nil {
		return err
	}

	amount, _ := decimal.NewFromString(req.Amount)
	return s.workerRepo.UpdateCost(ctx, worker.AdditionalCost{
		ID:       req.ID,
		WorkerID: req.WorkerID,
		Label:    req.Label,
		Unit:     timecalc.CostUnit(req.Unit),
		Amount:   amount,
	})
}

// DeleteCost implements worker.Service.
func (s *WorkerServiceImpl) DeleteCost(ctx context.Context, workerID, costID int64) error {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}
	if _, err := s.workerRepo.GetByID(ctx, workerID, accountID); err != nil {
		return err
	}

	return s.workerRepo.DeleteCost(ctx, costID, workerID)
}

// AddDocument implements worker.Service.
func (s *WorkerServiceImpl) AddDocument(ctx context.Context, req worker.CreateDocumentRequest, file io.Reader) (worker.DocResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.DocResponse{}, err
	}

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return worker.DocResponse{}, err
	}
	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID, accountID); err != nil {
		return worker.DocResponse{}, err
	}

	ext := filepath.Ext(req.FileName)
	path := fmt.Sprintf("documents/%d/%s%s", req.WorkerID, uuid.NewString(), ext)
	storedPath, err := s.fileStorage.Upload(ctx, file, path, "")
	if err != nil {
		return worker.DocResponse{}, fmt.Errorf("failed to store document: %w", err)
	}

	doc := worker.Document{
		WorkerID: req.WorkerID,
		Kind:     worker.DocumentKind(req.Kind),
		FileName: req.FileName,
		FilePath: storedPath,
	}
	if req.ValidUntil != nil {
		date, _ := validator.IsValidDate(*req.ValidUntil)
		doc.ValidUntil = &date
	}

	created, err := s.workerRepo.CreateDocument(ctx, doc)
	if err != nil {
		_ = s.fileStorage.Delete(ctx, storedPath)
		return worker.DocResponse{}, err
	}

	return toDocResponse(created, time.Now().UTC()), nil
}

// DeleteDocument implements worker.Service.
func (s *WorkerServiceImpl) DeleteDocument(ctx context.Context, docID int64) error {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return err
	}

	doc, err := s.workerRepo.GetDocumentByID(ctx, docID, accountID)
	if err != nil {
		return err
	}

	if err := s.workerRepo.DeleteDocument(ctx, docID, accountID); err != nil {
		return err
	}

	_ = s.fileStorage.Delete(ctx, doc.FilePath)
	return nil
}

// DownloadDocument implements worker.Service.
func (s *WorkerServiceImpl) DownloadDocument(ctx context.Context, docID int64) (io.ReadCloser, string, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, "", err
	}

	doc, err := s.workerRepo.GetDocumentByID(ctx, docID, accountID)
	if err != nil {
		return nil, "", err
	}

	reader, err := s.fileStorage.Download(ctx, doc.FilePath)
	if err != nil {
		return nil, "", err
	}

	return reader, doc.FileName, nil
}

// CheckCompliance implements worker.Service.
func (s *WorkerServiceImpl) CheckCompliance(ctx context.Context, id int64) (worker.Compliance, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return worker.Compliance{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, id, accountID)
	if err != nil {
		return worker.Compliance{}, err
	}

	settings, err := s.accountRepo.GetSettings(ctx, accountID)
	if err != nil {
		return worker.Compliance{}, err
	}

	return worker.EvaluateCompliance(w, settings, time.Now().UTC()), nil
}

func (s *WorkerServiceImpl) toResponse(ctx context.Context, w worker.Worker) (worker.WorkerResponse, error) {
	settings, err := s.accountRepo.GetSettings(ctx, w.AccountID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return buildResponse(w, worker.EvaluateCompliance(w, settings, time.Now().UTC())), nil
}

// applyWorkerFields maps the optional decimal/enum/bool fields shared by
// create and update.
func applyWorkerFields(w *worker.Worker, req worker.CreateWorkerRequest) {
	if req.Status != nil {
		status := worker.WorkerStatus(*req.Status)
		w.Status = &status
	}
	if req.PayRate != nil {
		rate, _ := decimal.NewFromString(*req.PayRate)
		w.PayRate = &rate
	}
	if req.ChargesPct != nil {
		pct, _ := decimal.NewFromString(*req.ChargesPct)
		w.ChargesPct = pct
	}
	if req.IncludeInExport != nil {
		w.IncludeInExport = *req.IncludeInExport
	}
}

func buildResponse(w worker.Worker, compliance worker.Compliance) worker.WorkerResponse {
	now := time.Now().UTC()

	costs := make([]worker.CostResponse, 0, len(w.AdditionalCosts))
	for _, c := range w.AdditionalCosts {
		costs = append(costs, toCostResponse(c))
	}

	docs := make([]worker.DocResponse, 0, len(w.Documents))
	for _, d := range w.Documents {
		docs = append(docs, toDocResponse(d, now))
	}

	return worker.WorkerResponse{
		ID:              w.ID,
		FirstName:       w.FirstName,
		LastName:        w.LastName,
		Email:           w.Email,
		Phone:           w.Phone,
		NationalID:      w.NationalID,
		Status:          w.Status,
		VATNumber:       w.VATNumber,
		PayRate:         w.PayRate,
		ChargesPct:      w.ChargesPct,
		IncludeInExport: w.IncludeInExport,
		AdditionalCosts: costs,
		Documents:       docs,
		Compliance:      compliance,
	}
}

func toCostResponse(c worker.AdditionalCost) worker.CostResponse {
	return worker.CostResponse{
		ID:     c.ID,
		Label:  c.Label,
		Unit:   c.Unit,
		Amount: c.Amount,
	}
}

func toDocResponse(d worker.Document, now time.Time) worker.DocResponse {
	resp := worker.DocResponse{
		ID:       d.ID,
		Kind:     d.Kind,
		FileName: d.FileName,
		Expired:  !d.ValidOn(now),
	}
	if d.ValidUntil != nil {
		formatted := d.ValidUntil.Format("2006-01-02")
		resp.ValidUntil = &formatted
	}
	return resp
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
