package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

const bookColumns = `id, title, author, category, price, quantity, barcode, sales, created_at, updated_at`

// BookRepo implementación de BookRepository sobre PostgreSQL (usable con pool o tx).
type BookRepo struct {
	q Querier
}

// NewBookRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewBookRepository(q Querier) *BookRepo {
	return &BookRepo{q: q}
}

// GetByID obtiene un libro por ID. Devuelve nil sin error si no existe.
func (r *BookRepo) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	return r.get(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
}

// GetForUpdate obtiene el libro y bloquea la fila (SELECT FOR UPDATE) para
// serializar los ajustes concurrentes. Solo tiene sentido dentro de una tx.
func (r *BookRepo) GetForUpdate(ctx context.Context, id string) (*entity.Book, error) {
	return r.get(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1 FOR UPDATE`, id)
}

func (r *BookRepo) get(ctx context.Context, query, id string) (*entity.Book, error) {
	var b entity.Book
	var barcode *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Category, &b.Price, &b.Quantity,
		&barcode, &b.Sales, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get book", err)
	}
	if barcode != nil {
		b.Barcode = *barcode
	}
	return &b, nil
}

// List devuelve el catálogo completo en orden de inserción (una sola pasada).
func (r *BookRepo) List(ctx context.Context) ([]*entity.Book, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, dbError("list books", err)
	}
	defer rows.Close()

	var books []*entity.Book
	for rows.Next() {
		var b entity.Book
		var barcode *string
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Category, &b.Price, &b.Quantity,
			&barcode, &b.Sales, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, dbError("scan book", err)
		}
		if barcode != nil {
			b.Barcode = *barcode
		}
		books = append(books, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list books", err)
	}
	return books, nil
}

// Upsert inserta o actualiza un libro por ID. La cantidad solo se escribe aquí
// en el alta inicial; las mutaciones posteriores pasan por UpdateQuantity.
func (r *BookRepo) Upsert(ctx context.Context, book *entity.Book) error {
	query := `
		INSERT INTO books (id, title, author, category, price, quantity, barcode, sales, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10)
		ON CONFLICT (id)
		DO UPDATE SET title = EXCLUDED.title, author = EXCLUDED.author,
			category = EXCLUDED.category, price = EXCLUDED.price,
			barcode = EXCLUDED.barcode, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		book.ID, book.Title, book.Author, book.Category, book.Price,
		book.Quantity, book.Barcode, book.Sales, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		return dbError("upsert book", err)
	}
	return nil
}

// UpdateQuantity reemplaza solo la cantidad (usada por el ledger dentro de una tx).
func (r *BookRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE books SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return dbError("update book quantity", err)
	}
	return nil
}
