package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/application/usecase"
	"github.com/jhoicas/libreria-api/internal/domain"
	"github.com/jhoicas/libreria-api/internal/domain/entity"
)

func createBookRequest() dto.CreateBookRequest {
	return dto.CreateBookRequest{
		Title:    "Pedro Páramo",
		Author:   "Juan Rulfo",
		Category: "novela",
		Price:    decimal.RequireFromString("38.00"),
		Quantity: 6,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de libros
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBook_GeneraIDSiFalta(t *testing.T) {
	repo := &fakeBookRepo{}
	uc := usecase.NewBookUseCase(repo)

	resp, err := uc.Create(context.Background(), createBookRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Pedro Páramo", resp.Title)
	assert.Equal(t, 6, resp.Quantity)
	require.Len(t, repo.books, 1)
}

func TestCreateBook_RespetaIDExterno(t *testing.T) {
	uc := usecase.NewBookUseCase(&fakeBookRepo{})
	in := createBookRequest()
	in.ID = "b-77"

	resp, err := uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "b-77", resp.ID)
}

func TestCreateBook_Validaciones(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateBookRequest)
	}{
		{"sin título", func(r *dto.CreateBookRequest) { r.Title = "" }},
		{"sin autor", func(r *dto.CreateBookRequest) { r.Author = "" }},
		{"precio negativo", func(r *dto.CreateBookRequest) {
			r.Price = decimal.RequireFromString("-1.00")
		}},
		{"cantidad inicial negativa", func(r *dto.CreateBookRequest) { r.Quantity = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeBookRepo{}
			uc := usecase.NewBookUseCase(repo)
			in := createBookRequest()
			tc.mutate(&in)

			_, err := uc.Create(context.Background(), in)

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.books)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas de catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetBookByID_Inexistente(t *testing.T) {
	uc := usecase.NewBookUseCase(&fakeBookRepo{})

	_, err := uc.GetByID(context.Background(), "nada")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "nada")
}

func TestListBooks_OrdenDeInsercion(t *testing.T) {
	repo := &fakeBookRepo{books: []*entity.Book{
		{ID: "primero", Title: "A"},
		{ID: "segundo", Title: "B"},
	}}
	uc := usecase.NewBookUseCase(repo)

	list, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "primero", list.Items[0].ID)
	assert.Equal(t, "segundo", list.Items[1].ID)
}
