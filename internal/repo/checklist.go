// Package repo contains all database access logic for the packing list API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/packlist/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// ChecklistRepo defines the persistence operations for saved checklists and
// their items.
type ChecklistRepo interface {
	// Create inserts the checklist header and all of its items atomically and
	// returns the persisted record. A zero ID is replaced with a new UUID;
	// created_at is set by the database. Items keep their slice order.
	// Item ids are scoped to the checklist, so the same items may be saved
	// under several checklists. A duplicate item id or name within one
	// checklist returns domain.ErrValidation.
	Create(ctx context.Context, c domain.SavedChecklist) (domain.SavedChecklist, error)

	// GetByID returns the checklist with its items in saved order.
	// Returns domain.ErrNotFound if no checklist with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.SavedChecklist, error)

	// ListPaged returns one page of checklist summaries, newest first, and the
	// total number of checklists.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.ChecklistSummary, int64, error)

	// Delete removes a checklist and its items.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// TogglePacked flips the packed flag of one item and returns the item.
	// Returns domain.ErrNotFound if the item is not part of the checklist.
	TogglePacked(ctx context.Context, checklistID, itemID uuid.UUID) (domain.PackingItem, error)

	// SetQuantity overwrites the quantity of one item and returns the item.
	// Returns domain.ErrNotFound if the item is not part of the checklist.
	SetQuantity(ctx context.Context, checklistID, itemID uuid.UUID, quantity int) (domain.PackingItem, error)

	// DeleteItem removes one item from a checklist.
	// Returns domain.ErrNotFound if the item is not part of the checklist.
	DeleteItem(ctx context.Context, checklistID, itemID uuid.UUID) error
}

// pgChecklistRepo is the Postgres implementation of ChecklistRepo.
type pgChecklistRepo struct {
	db db
}

// NewChecklistRepo constructs a ChecklistRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewChecklistRepo(db db) ChecklistRepo {
	return &pgChecklistRepo{db: db}
}

const itemColumns = `id, name, category, quantity, packed`

// pgUniqueViolation is the Postgres SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// Create sends the header insert and one insert per item as a single batch.
// pgx runs a batch in an implicit transaction, so either everything is
// written or nothing is.
func (r *pgChecklistRepo) Create(ctx context.Context, c domain.SavedChecklist) (domain.SavedChecklist, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	// Ids may be filled in below; don't write through to the caller's slice.
	c.Items = append([]domain.PackingItem{}, c.Items...)

	const insertChecklist = `
		INSERT INTO checklists (id, destination, start_date, end_date, weather, activities)
		VALUES (@id, @destination, @start_date, @end_date, @weather, @activities)
		RETURNING created_at`

	const insertItem = `
		INSERT INTO checklist_items (id, checklist_id, position, name, category, quantity, packed)
		VALUES (@id, @checklist_id, @position, @name, @category, @quantity, @packed)`

	batch := &pgx.Batch{}
	batch.Queue(insertChecklist, pgx.NamedArgs{
		"id":          c.ID,
		"destination": c.Trip.Destination,
		"start_date":  c.Trip.StartDate,
		"end_date":    c.Trip.EndDate,
		"weather":     string(c.Trip.Weather),
		"activities":  activitiesToStrings(c.Trip.Activities),
	})
	for i := range c.Items {
		if c.Items[i].ID == uuid.Nil {
			c.Items[i].ID = uuid.New()
		}
		it := c.Items[i]
		batch.Queue(insertItem, pgx.NamedArgs{
			"id":           it.ID,
			"checklist_id": c.ID,
			"position":     i,
			"name":         it.Name,
			"category":     string(it.Category),
			"quantity":     it.Quantity,
			"packed":       it.Packed,
		})
	}

	br := r.db.SendBatch(ctx, batch)
	if err := br.QueryRow().Scan(&c.CreatedAt); err != nil {
		_ = br.Close()
		return domain.SavedChecklist{}, fmt.Errorf("repo.ChecklistRepo.Create: checklist: %w", err)
	}
	for range c.Items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return domain.SavedChecklist{}, fmt.Errorf("repo.ChecklistRepo.Create: %w: duplicate item (%s)", domain.ErrValidation, pgErr.ConstraintName)
			}
			return domain.SavedChecklist{}, fmt.Errorf("repo.ChecklistRepo.Create: item: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return domain.SavedChecklist{}, fmt.Errorf("repo.ChecklistRepo.Create: %w", err)
	}

	return c, nil
}

// GetByID loads the header, then the items ordered by position.
func (r *pgChecklistRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedChecklist, error) {
	const q = `
		SELECT id, destination, start_date, end_date, weather, activities, created_at
		FROM checklists
		WHERE id = @id`

	c, err := scanChecklist(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.SavedChecklist{}, fmt.Errorf("repo.ChecklistRepo.GetByID: %w", err)
	}

	const qi = `
		SELECT ` + itemColumns + `
		FROM checklist_items
		WHERE checklist_id = @checklist_id
		ORDER BY position`

	rows, err := r.db.Query(ctx, qi, pgx.NamedArgs{"checklist_id": id})
	if err != nil {
		return domain.SavedChecklist{}, fmt.Errorf("repo.ChecklistRepo.GetByID: items: %w", err)
	}
	defer rows.Close()

	c.Items = []domain.PackingItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return domain.SavedChecklist{}, fmt.Errorf("repo.ChecklistRepo.GetByID: scan item: %w", err)
		}
		c.Items = append(c.Items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.SavedChecklist{}, fmt.Errorf("repo.ChecklistRepo.GetByID: rows: %w", err)
	}

	return c, nil
}

// ListPaged returns summaries ordered by created_at descending, with id as a
// tie-breaker so pages are stable.
func (r *pgChecklistRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.ChecklistSummary, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM checklists`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ChecklistRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT c.id, c.destination, c.start_date, c.end_date, c.weather, c.created_at,
		       count(i.id)                             AS item_count,
		       count(i.id) FILTER (WHERE i.packed)     AS packed_count
		FROM checklists c
		LEFT JOIN checklist_items i ON i.checklist_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC, c.id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ChecklistRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	summaries := []domain.ChecklistSummary{}
	for rows.Next() {
		var (
			s          domain.ChecklistSummary
			id         pgtype.UUID
			start, end pgtype.Date
			weather    string
		)
		if err := rows.Scan(&id, &s.Destination, &start, &end, &weather, &s.CreatedAt, &s.ItemCount, &s.PackedCount); err != nil {
			return nil, 0, fmt.Errorf("repo.ChecklistRepo.ListPaged: scan: %w", err)
		}
		s.ID = uuid.UUID(id.Bytes)
		s.StartDate = start.Time
		s.EndDate = end.Time
		s.Weather = domain.Weather(weather)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ChecklistRepo.ListPaged: rows: %w", err)
	}

	return summaries, total, nil
}

// Delete removes a checklist; items go with it via ON DELETE CASCADE.
func (r *pgChecklistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM checklists WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ChecklistRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ChecklistRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// TogglePacked flips packed in a single UPDATE so concurrent toggles cannot
// lose each other.
func (r *pgChecklistRepo) TogglePacked(ctx context.Context, checklistID, itemID uuid.UUID) (domain.PackingItem, error) {
	const q = `
		UPDATE checklist_items
		SET packed = NOT packed
		WHERE id = @id AND checklist_id = @checklist_id
		RETURNING ` + itemColumns

	it, err := scanItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "checklist_id": checklistID}))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.ChecklistRepo.TogglePacked: %w", err)
	}
	return it, nil
}

// SetQuantity overwrites the quantity of one item.
func (r *pgChecklistRepo) SetQuantity(ctx context.Context, checklistID, itemID uuid.UUID, quantity int) (domain.PackingItem, error) {
	const q = `
		UPDATE checklist_items
		SET quantity = @quantity
		WHERE id = @id AND checklist_id = @checklist_id
		RETURNING ` + itemColumns

	args := pgx.NamedArgs{"id": itemID, "checklist_id": checklistID, "quantity": quantity}
	it, err := scanItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.ChecklistRepo.SetQuantity: %w", err)
	}
	return it, nil
}

// DeleteItem removes one item from a checklist.
func (r *pgChecklistRepo) DeleteItem(ctx context.Context, checklistID, itemID uuid.UUID) error {
	const q = `DELETE FROM checklist_items WHERE id = @id AND checklist_id = @checklist_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "checklist_id": checklistID})
	if err != nil {
		return fmt.Errorf("repo.ChecklistRepo.DeleteItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ChecklistRepo.DeleteItem: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanChecklist maps a checklists row (without items) into a domain.SavedChecklist.
func scanChecklist(s scanner) (domain.SavedChecklist, error) {
	var (
		c          domain.SavedChecklist
		id         pgtype.UUID
		start, end pgtype.Date
		weather    string
		activities []string
	)

	err := s.Scan(&id, &c.Trip.Destination, &start, &end, &weather, &activities, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SavedChecklist{}, domain.ErrNotFound
		}
		return domain.SavedChecklist{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.Trip.StartDate = start.Time
	c.Trip.EndDate = end.Time
	c.Trip.Weather = domain.Weather(weather)
	c.Trip.Activities = make([]domain.Activity, len(activities))
	for i, a := range activities {
		c.Trip.Activities[i] = domain.Activity(a)
	}
	return c, nil
}

// scanItem maps a row selected with itemColumns into a domain.PackingItem.
func scanItem(s scanner) (domain.PackingItem, error) {
	var (
		it       domain.PackingItem
		id       pgtype.UUID
		category string
	)

	if err := s.Scan(&id, &it.Name, &category, &it.Quantity, &it.Packed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PackingItem{}, domain.ErrNotFound
		}
		return domain.PackingItem{}, err
	}

	it.ID = uuid.UUID(id.Bytes)
	it.Category = domain.Category(category)
	return it, nil
}

func activitiesToStrings(acts []domain.Activity) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = string(a)
	}
	return out
}
