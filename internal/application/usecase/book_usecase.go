package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/domain"
	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
)

// BookUseCase consultas de catálogo e ingesta de libros. La cantidad solo se
// fija aquí en el alta; después muta exclusivamente vía el ledger.
type BookUseCase struct {
	repo repository.BookRepository
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(repo repository.BookRepository) *BookUseCase {
	return &BookUseCase{repo: repo}
}

// Create da de alta un libro enviado por el colaborador de catálogo.
func (uc *BookUseCase) Create(ctx context.Context, in dto.CreateBookRequest) (*dto.BookResponse, error) {
	if in.Title == "" || in.Author == "" {
		return nil, fmt.Errorf("título y autor requeridos: %w", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("el precio no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("la cantidad inicial no puede ser negativa: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	book := &entity.Book{
		ID:        in.ID,
		Title:     in.Title,
		Author:    in.Author,
		Category:  in.Category,
		Price:     in.Price,
		Quantity:  in.Quantity,
		Barcode:   in.Barcode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	if err := uc.repo.Upsert(ctx, book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// GetByID obtiene un libro por ID.
func (uc *BookUseCase) GetByID(ctx context.Context, id string) (*dto.BookResponse, error) {
	book, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("libro %s: %w", id, domain.ErrNotFound)
	}
	return toBookResponse(book), nil
}

// List devuelve el catálogo completo en orden de inserción.
func (uc *BookUseCase) List(ctx context.Context) (*dto.BookListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BookResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBookResponse(b))
	}
	return &dto.BookListResponse{Items: items, Total: len(items)}, nil
}

func toBookResponse(b *entity.Book) *dto.BookResponse {
	if b == nil {
		return nil
	}
	return &dto.BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Category:  b.Category,
		Price:     b.Price,
		Quantity:  b.Quantity,
		Barcode:   b.Barcode,
		Sales:     b.Sales,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
