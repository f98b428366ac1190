package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktracker-backend/internal/domains/shelf"
	"booktracker-backend/pkg/database"
)

// PostgresRepository persists stored books and per-user shelf links.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) AddBook(ctx context.Context, b shelf.StoredBook, userID string) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var shelved bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM book_shelves WHERE isbn13 = $1 AND user_id = $2)`,
			b.ISBN13, userID,
		).Scan(&shelved)
		if err != nil {
			return fmt.Errorf("failed to check shelf entry: %w", err)
		}
		if shelved {
			return shelf.ErrAlreadyShelved
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO books (isbn13, title, authors, image)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (isbn13) DO UPDATE
			 SET title = EXCLUDED.title, authors = EXCLUDED.authors, image = EXCLUDED.image`,
			b.ISBN13, b.Title, b.Authors, b.Image,
		); err != nil {
			return fmt.Errorf("failed to store book: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO book_shelves (isbn13, user_id, shelf) VALUES ($1, $2, $3)`,
			b.ISBN13, userID, string(b.Shelf),
		); err != nil {
			return fmt.Errorf("failed to link shelf: %w", err)
		}

		return nil
	})
}

func (r *PostgresRepository) ShelfFor(ctx context.Context, isbn13, userID string) (shelf.Shelf, error) {
	var s string
	err := r.pool.QueryRow(ctx,
		`SELECT shelf FROM book_shelves WHERE isbn13 = $1 AND user_id = $2`,
		isbn13, userID,
	).Scan(&s)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", shelf.ErrNotShelved
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch shelf entry: %w", err)
	}
	return shelf.Shelf(s), nil
}

func (r *PostgresRepository) UpdateShelf(ctx context.Context, isbn13, userID string, s shelf.Shelf) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE book_shelves SET shelf = $1 WHERE isbn13 = $2 AND user_id = $3`,
		string(s), isbn13, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shelf entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shelf.ErrNotShelved
	}
	return nil
}

func (r *PostgresRepository) RemoveBook(ctx context.Context, isbn13, userID string) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM book_shelves WHERE isbn13 = $1 AND user_id = $2`,
			isbn13, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to remove shelf entry: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return shelf.ErrNotShelved
		}

		// Book rows exist only to back shelf entries; drop the orphan.
		if _, err := tx.Exec(ctx,
			`DELETE FROM books
			 WHERE isbn13 = $1
			   AND NOT EXISTS (SELECT 1 FROM book_shelves WHERE isbn13 = $1)`,
			isbn13,
		); err != nil {
			return fmt.Errorf("failed to prune orphaned book: %w", err)
		}

		return nil
	})
}

func (r *PostgresRepository) BooksByShelf(ctx context.Context, userID string, s shelf.Shelf) ([]shelf.StoredBook, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT b.isbn13, b.title, b.authors, b.image, bs.shelf
		 FROM books b
		 JOIN book_shelves bs ON bs.isbn13 = b.isbn13
		 WHERE bs.user_id = $1 AND bs.shelf = $2
		 ORDER BY b.title`,
		userID, string(s),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query shelf: %w", err)
	}
	defer rows.Close()

	return scanStoredBooks(rows)
}

func (r *PostgresRepository) SearchByTitle(ctx context.Context, userID, query string) ([]shelf.StoredBook, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT b.isbn13, b.title, b.authors, b.image, bs.shelf
		 FROM books b
		 JOIN book_shelves bs ON bs.isbn13 = b.isbn13
		 WHERE bs.user_id = $1 AND b.title ILIKE '%' || $2 || '%'
		 ORDER BY b.title`,
		userID, query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search shelves: %w", err)
	}
	defer rows.Close()

	return scanStoredBooks(rows)
}

func scanStoredBooks(rows pgx.Rows) ([]shelf.StoredBook, error) {
	books := []shelf.StoredBook{}
	for rows.Next() {
		var b shelf.StoredBook
		var s string
		if err := rows.Scan(&b.ISBN13, &b.Title, &b.Authors, &b.Image, &s); err != nil {
			return nil, fmt.Errorf("failed to scan stored book: %w", err)
		}
		b.Shelf = shelf.Shelf(s)
		books = append(books, b)
	}
	return books, rows.Err()
}
