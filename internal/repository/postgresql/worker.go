package postgresql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/chronnix/chronnix-backend-go/internal/domain/worker"
	"github.com/chronnix/chronnix-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `
	id, account_id, first_name, last_name, email, phone, national_id,
	status, vat_number, pay_rate, charges_pct, include_in_export,
	created_at, updated_at
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.AccountID, &w.FirstName, &w.LastName, &w.Email, &w.Phone,
		&w.NationalID, &w.Status, &w.VATNumber, &w.PayRate, &w.ChargesPct,
		&w.IncludeInExport, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (
			account_id, first_name, last_name, email, phone, national_id,
			status, vat_number, pay_rate, charges_pct, include_in_export
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + workerColumns

	created, err := scanWorker(q.QueryRow(ctx, query,
		w.AccountID, w.FirstName, w.LastName, w.Email, w.Phone, w.NationalID,
		w.Status, w.VATNumber, w.PayRate, w.ChargesPct, w.IncludeInExport,
	))
	if err != nil {
		return worker.Worker{}, err
	}

	return created, nil
}

func (r *workerRepositoryImpl) GetByID(ctx context.Context, id, accountID int64) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1 AND account_id = $2`

	w, err := scanWorker(q.QueryRow(ctx, query, id, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}

	if err := r.loadRelations(ctx, []*worker.Worker{&w}); err != nil {
		return worker.Worker{}, err
	}

	return w, nil
}

func (r *workerRepositoryImpl) ListByAccount(ctx context.Context, accountID int64, filter worker.WorkerListFilter) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE account_id = $1`
	args := []interface{}{accountID}

	if filter.Search != "" {
		query += ` AND (first_name ILIKE $2 OR last_name ILIKE $2)`
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.TeamID != nil {
		query += ` AND id IN (SELECT worker_id FROM team_members WHERE team_id = $` +
			strconv.Itoa(len(args)+1) + `)`
		args = append(args, *filter.TeamID)
	}

	query += ` ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*worker.Worker, len(workers))
	for i := range workers {
		refs[i] = &workers[i]
	}
	if err := r.loadRelations(ctx, refs); err != nil {
		return nil, err
	}

	return workers, nil
}

func (r *workerRepositoryImpl) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			national_id = $5, status = $6, vat_number = $7, pay_rate = $8,
			charges_pct = $9, include_in_export = $10, updated_at = NOW()
		WHERE id = $11 AND account_id = $12
	`

	tag, err := q.Exec(ctx, query,
		w.FirstName, w.LastName, w.Email, w.Phone, w.NationalID, w.Status,
		w.VATNumber, w.PayRate, w.ChargesPct, w.IncludeInExport,
		w.ID, w.AccountID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepositoryImpl) Delete(ctx context.Context, id, accountID int64) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM time_entries WHERE worker_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM project_workers WHERE worker_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE worker_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM worker_costs WHERE worker_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM worker_documents WHERE worker_id = $1`, id); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM workers WHERE id = $1 AND account_id = $2`, id, accountID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return worker.ErrWorkerNotFound
		}
		return nil
	})
}

// loadRelations batch-loads costs, documents and team memberships for a
// set of workers.
func (r *workerRepositoryImpl) loadRelations(ctx context.Context, workers []*worker.Worker) error {
	if len(workers) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	ids := make([]int64, 0, len(workers))
	byID := make(map[int64]*worker.Worker, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID)
		byID[w.ID] = w
	}

	costRows, err := q.Query(ctx, `
		SELECT id, worker_id, label, unit, amount
		FROM worker_costs
		WHERE worker_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return err
	}
	defer costRows.Close()

	for costRows.Next() {
		var c worker.AdditionalCost
		if err := costRows.Scan(&c.ID, &c.WorkerID, &c.Label, &c.Unit, &c.Amount); err != nil {
			return err
		}
		if w, ok := byID[c.WorkerID]; ok {
			w.AdditionalCosts = append(w.AdditionalCosts, c)
		}
	}
	if err := costRows.Err(); err != nil {
		return err
	}

	docRows, err := q.Query(ctx, `
		SELECT id, worker_id, kind, file_name, file_path, valid_until, created_at
		FROM worker_documents
		WHERE worker_id = ANY($1)
		ORDER BY created_at
	`, ids)
	if err != nil {
		return err
	}
	defer docRows.Close()

	for docRows.Next() {
		var d worker.Document
		if err := docRows.Scan(&d.ID, &d.WorkerID, &d.Kind, &d.FileName, &d.FilePath, &d.ValidUntil, &d.CreatedAt); err != nil {
			return err
		}
		if w, ok := byID[d.WorkerID]; ok {
			w.Documents = append(w.Documents, d)
		}
	}
	if err := docRows.Err(); err != nil {
		return err
	}

	teamRows, err := q.Query(ctx, `
		SELECT worker_id, team_id
		FROM team_members
		WHERE worker_id = ANY($1)
	`, ids)
	if err != nil {
		return err
	}
	defer teamRows.Close()

	for teamRows.Next() {
		var workerID, teamID int64
		if err := teamRows.Scan(&workerID, &teamID); err != nil {
			return err
		}
		if w, ok := byID[workerID]; ok {
			w.TeamIDs = append(w.TeamIDs, teamID)
		}
	}
	return teamRows.Err()
}

func (r *workerRepositoryImpl) CreateCost(ctx context.Context, cost worker.AdditionalCost) (worker.AdditionalCost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_costs (worker_id, label, unit, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, worker_id, label, unit, amount
	`

	var created worker.AdditionalCost
	err := q.QueryRow(ctx, query, cost.WorkerID, cost.Label, cost.Unit, cost.Amount).
		Scan(&created.ID, &created.WorkerID, &created.Label, &created.Unit, &created.Amount)
	if err != nil {
		return worker.AdditionalCost{}, err
	}

	return created, nil
}

func (r *workerRepositoryImpl) UpdateCost(ctx context.Context, cost worker.AdditionalCost) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE worker_costs
		SET label = $1, unit = $2, amount = $3
		WHERE id = $4 AND worker_id = $5
	`, cost.Label, cost.Unit, cost.Amount, cost.ID, cost.WorkerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrCostNotFound
	}

	return nil
}

func (r *workerRepositoryImpl) DeleteCost(ctx context.Context, costID, workerID int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM worker_costs WHERE id = $1 AND worker_id = $2`, costID, workerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrCostNotFound
	}

	return nil
}

func (r *workerRepositoryImpl) CreateDocument(ctx context.Context, doc worker.Document) (worker.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_documents (worker_id, kind, file_name, file_path, valid_until)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, worker_id, kind, file_name, file_path, valid_until, created_at
	`

	var created worker.Document
	err := q.QueryRow(ctx, query, doc.WorkerID, doc.Kind, doc.FileName, doc.FilePath, doc.ValidUntil).
		Scan(&created.ID, &created.WorkerID, &created.Kind, &created.FileName, &created.FilePath, &created.ValidUntil, &created.CreatedAt)
	if err != nil {
		return worker.Document{}, err
	}

	return created, nil
}

func (r *workerRepositoryImpl) GetDocumentByID(ctx context.Context, docID, accountID int64) (worker.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.worker_id, d.kind, d.file_name, d.file_path, d.valid_until, d.created_at
		FROM worker_documents d
		JOIN workers w ON w.id = d.worker_id
		WHERE d.id = $1 AND w.account_id = $2
	`

	var doc worker.Document
	err := q.QueryRow(ctx, query, docID, accountID).
		Scan(&doc.ID, &doc.WorkerID, &doc.Kind, &doc.FileName, &doc.FilePath, &doc.ValidUntil, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Document{}, worker.ErrDocumentNotFound
		}
		return worker.Document{}, err
	}

	return doc, nil
}

func (r *workerRepositoryImpl) DeleteDocument(ctx context.Context, docID, accountID int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM worker_documents d
		USING workers w
		WHERE d.id = $1 AND d.worker_id = w.id AND w.account_id = $2
	`, docID, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrDocumentNotFound
	}

	return nil
}

func (r *workerRepositoryImpl) ListDocumentsExpiringBefore(ctx context.Context, cutoff time.Time) ([]worker.Document, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, worker_id, kind, file_name, file_path, valid_until, created_at
		FROM worker_documents
		WHERE valid_until IS NOT NULL AND valid_until < $1
		ORDER BY valid_until
	`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []worker.Document
	for rows.Next() {
		var d worker.Document
		if err := rows.Scan(&d.ID, &d.WorkerID, &d.Kind, &d.FileName, &d.FilePath, &d.ValidUntil, &d.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}
