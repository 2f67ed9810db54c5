package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookRequest body para POST /api/books (ingesta del colaborador de catálogo).
// Quantity es el stock inicial; después solo muta vía el ledger.
type CreateBookRequest struct {
	ID       string          `json:"id,omitempty"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Barcode  string          `json:"barcode,omitempty"`
}

// BookResponse representación HTTP de un libro.
type BookResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Barcode   string          `json:"barcode,omitempty"`
	Sales     int             `json:"sales"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BookListResponse respuesta de GET /api/books.
type BookListResponse struct {
	Items []BookResponse `json:"items"`
	Total int            `json:"total"`
}
