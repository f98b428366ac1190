package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktracker-backend/internal/domains/booklist"
	"booktracker-backend/pkg/database"
)

// sentinelPosition parks a moving pick outside the live 1-based range so
// the (list_id, position) unique constraint never trips mid-shuffle.
const sentinelPosition = -1

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresRepository persists curated lists and picks in PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) CreateList(ctx context.Context, name, description string) (*booklist.CuratedList, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM curated_lists WHERE name = $1)`,
		name,
	).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("failed to check list name: %w", err)
	}
	if taken {
		return nil, booklist.ErrListExists
	}

	list := &booklist.CuratedList{Name: name, Description: description}
	err = r.pool.QueryRow(ctx,
		`INSERT INTO curated_lists (name, description)
		 VALUES ($1, $2)
		 RETURNING id`,
		name, description,
	).Scan(&list.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create curated list: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) UpdateList(ctx context.Context, list *booklist.CuratedList) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE curated_lists SET name = $1, description = $2 WHERE id = $3`,
		list.Name, list.Description, list.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update curated list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return booklist.ErrListNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteList(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM curated_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete curated list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return booklist.ErrListNotFound
	}
	return nil
}

func (r *PostgresRepository) Lists(ctx context.Context) ([]booklist.CuratedList, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description FROM curated_lists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query curated lists: %w", err)
	}
	defer rows.Close()

	lists := []booklist.CuratedList{}
	for rows.Next() {
		var l booklist.CuratedList
		if err := rows.Scan(&l.ID, &l.Name, &l.Description); err != nil {
			return nil, fmt.Errorf("failed to scan curated list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (r *PostgresRepository) ListByID(ctx context.Context, id int) (*booklist.CuratedList, error) {
	var l booklist.CuratedList
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description FROM curated_lists WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.Name, &l.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, booklist.ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch curated list: %w", err)
	}
	return &l, nil
}

func (r *PostgresRepository) CreatePick(ctx context.Context, pick *booklist.CuratedPick) (*booklist.CuratedPick, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO curated_picks (list_id, isbn13, isbn10, position)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		pick.ListID, pick.ISBN13, pick.ISBN10, pick.Position,
	).Scan(&pick.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return nil, booklist.ErrListMissing
		case pgUniqueViolation:
			return nil, &booklist.PickConflictError{Existing: pick}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create curated pick: %w", err)
	}

	return pick, nil
}

func (r *PostgresRepository) PickByISBN(ctx context.Context, isbn string) (*booklist.CuratedPick, error) {
	var p booklist.CuratedPick
	err := r.pool.QueryRow(ctx,
		`SELECT id, list_id, isbn13, isbn10, position
		 FROM curated_picks
		 WHERE isbn13 = $1 OR isbn10 = $1`,
		isbn,
	).Scan(&p.ID, &p.ListID, &p.ISBN13, &p.ISBN10, &p.Position)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, booklist.ErrPickNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch curated pick: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) DeletePick(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM curated_picks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete curated pick: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return booklist.ErrPickNotFound
	}
	return nil
}

func (r *PostgresRepository) PicksByList(ctx context.Context, listID int) ([]booklist.CuratedPick, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, list_id, isbn13, isbn10, position
		 FROM curated_picks
		 WHERE list_id = $1
		 ORDER BY position`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query curated picks: %w", err)
	}
	defer rows.Close()

	picks := []booklist.CuratedPick{}
	for rows.Next() {
		var p booklist.CuratedPick
		if err := rows.Scan(&p.ID, &p.ListID, &p.ISBN13, &p.ISBN10, &p.Position); err != nil {
			return nil, fmt.Errorf("failed to scan curated pick: %w", err)
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

// shiftPlan describes how the picks between a move's old and new ranks
// must be shifted: the inclusive [low, high] position range, the per-row
// delta, and the order the rows must be updated in so each single-row
// update lands on a position that was vacated by the previous one.
type shiftPlan struct {
	low, high int
	delta     int
	order     string
}

// planShift computes the shift for moving a pick from oldPosition to
// newPosition. Moving up (toward rank 1) pushes the range [new, old) down
// one rank each, highest position first; moving down pulls (old, new] up
// one rank each, lowest position first.
func planShift(oldPosition, newPosition int) shiftPlan {
	if newPosition < oldPosition {
		return shiftPlan{low: newPosition, high: oldPosition - 1, delta: 1, order: "DESC"}
	}
	return shiftPlan{low: oldPosition + 1, high: newPosition, delta: -1, order: "ASC"}
}

// Reposition moves a pick within its list. The moving pick is first parked
// at the sentinel position, the picks between the old and new ranks are
// shifted one slot each in an order that keeps (list_id, position) unique
// after every statement, and the pick then lands at its new rank. An
// advisory lock on the list id serializes concurrent moves on the same
// list; the surrounding transaction makes the whole move atomic.
func (r *PostgresRepository) Reposition(ctx context.Context, pick *booklist.CuratedPick, newPosition int) error {
	oldPosition := pick.Position
	if newPosition == oldPosition {
		return nil
	}
	plan := planShift(oldPosition, newPosition)

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(pick.ListID)); err != nil {
			return fmt.Errorf("failed to lock list %d: %w", pick.ListID, err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE curated_picks SET position = $1 WHERE id = $2`,
			sentinelPosition, pick.ID,
		); err != nil {
			return fmt.Errorf("failed to park pick %d: %w", pick.ID, err)
		}

		ids, err := pickIDsInRange(ctx, tx, pick.ListID, plan)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if _, err := tx.Exec(ctx,
				`UPDATE curated_picks SET position = position + $1 WHERE id = $2`,
				plan.delta, id,
			); err != nil {
				return fmt.Errorf("failed to shift pick %d: %w", id, err)
			}
		}

		if _, err := tx.Exec(ctx,
			`UPDATE curated_picks SET position = $1 WHERE id = $2`,
			newPosition, pick.ID,
		); err != nil {
			return fmt.Errorf("failed to place pick %d: %w", pick.ID, err)
		}

		pick.Position = newPosition
		return nil
	})
}

func pickIDsInRange(ctx context.Context, tx pgx.Tx, listID int, plan shiftPlan) ([]int, error) {
	query := `SELECT id FROM curated_picks
	          WHERE list_id = $1 AND position BETWEEN $2 AND $3
	          ORDER BY position ` + plan.order
	rows, err := tx.Query(ctx, query, listID, plan.low, plan.high)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift range: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan shift range: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
