package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-api/internal/application/stock"
	"github.com/jhoicas/libreria-api/internal/domain"
	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBookRepo struct {
	books map[string]*entity.Book
}

func (f *fakeBookRepo) GetByID(_ context.Context, id string) (*entity.Book, error) {
	return f.books[id], nil
}

func (f *fakeBookRepo) GetForUpdate(_ context.Context, id string) (*entity.Book, error) {
	return f.books[id], nil
}

func (f *fakeBookRepo) List(_ context.Context) ([]*entity.Book, error) {
	out := make([]*entity.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookRepo) Upsert(_ context.Context, book *entity.Book) error {
	f.books[book.ID] = book
	return nil
}

func (f *fakeBookRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	f.books[id].Quantity = quantity
	return nil
}

type fakeAdjRepo struct {
	created []*entity.StockAdjustment
}

func (f *fakeAdjRepo) Create(_ context.Context, adj *entity.StockAdjustment) error {
	f.created = append(f.created, adj)
	return nil
}

func (f *fakeAdjRepo) ListRecent(_ context.Context, limit int) ([]*entity.StockAdjustment, error) {
	out := make([]*entity.StockAdjustment, 0, limit)
	for i := len(f.created) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.created[i])
	}
	return out, nil
}

type fakeTxRunner struct {
	books *fakeBookRepo
	adjs  *fakeAdjRepo
	runs  int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.BookRepository, repository.StockAdjustmentRepository,
) error) error {
	f.runs++
	return fn(f.books, f.adjs)
}

func newLedger(quantities map[string]int) (*stock.LedgerUseCase, *fakeTxRunner) {
	books := &fakeBookRepo{books: map[string]*entity.Book{}}
	for id, q := range quantities {
		books.books[id] = &entity.Book{ID: id, Title: "Libro " + id, Quantity: q}
	}
	runner := &fakeTxRunner{books: books, adjs: &fakeAdjRepo{}}
	return stock.NewLedgerUseCase(runner, runner.adjs), runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_SubtractConClampEnCero(t *testing.T) {
	// Restar 5 con existencias 2 deja 0, nunca negativo
	uc, runner := newLedger(map[string]int{"b1": 2})

	res, err := uc.Adjust(context.Background(), stock.AdjustInput{
		BookID: "b1", Operation: entity.OpSubtract, Amount: 5, Reason: "conteo físico",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.PreviousQuantity)
	assert.Equal(t, 0, res.NewQuantity)
	assert.Equal(t, 0, runner.books.books["b1"].Quantity)

	// La auditoría conserva lo solicitado, no lo aplicado
	require.Len(t, runner.adjs.created, 1)
	adj := runner.adjs.created[0]
	assert.Equal(t, 5, adj.RequestedAmount)
	assert.Equal(t, 2, adj.PreviousQuantity)
	assert.Equal(t, 0, adj.ResultingQuantity)
	assert.Equal(t, "conteo físico", adj.Reason)
}

func TestAdjust_Add(t *testing.T) {
	uc, runner := newLedger(map[string]int{"b1": 10})

	res, err := uc.Adjust(context.Background(), stock.AdjustInput{
		BookID: "b1", Operation: entity.OpAdd, Amount: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 13, res.NewQuantity)
	assert.Equal(t, 13, runner.books.books["b1"].Quantity)
}

func TestAdjust_SetReemplazaLaCantidad(t *testing.T) {
	uc, runner := newLedger(map[string]int{"b1": 42})

	res, err := uc.Adjust(context.Background(), stock.AdjustInput{
		BookID: "b1", Operation: entity.OpSet, Amount: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, 42, res.PreviousQuantity)
	assert.Equal(t, 7, res.NewQuantity)
	assert.Equal(t, 7, runner.books.books["b1"].Quantity)
}

func TestAdjust_SubtractExactoLlegaACero(t *testing.T) {
	uc, _ := newLedger(map[string]int{"b1": 4})

	res, err := uc.Adjust(context.Background(), stock.AdjustInput{
		BookID: "b1", Operation: entity.OpSubtract, Amount: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, res.NewQuantity)
}

func TestAdjust_SecuenciaNuncaDejaNegativos(t *testing.T) {
	uc, runner := newLedger(map[string]int{"b1": 3})
	ops := []stock.AdjustInput{
		{BookID: "b1", Operation: entity.OpSubtract, Amount: 10},
		{BookID: "b1", Operation: entity.OpAdd, Amount: 2},
		{BookID: "b1", Operation: entity.OpSubtract, Amount: 100},
		{BookID: "b1", Operation: entity.OpSet, Amount: 1},
		{BookID: "b1", Operation: entity.OpSubtract, Amount: 1},
	}

	for _, op := range ops {
		_, err := uc.Adjust(context.Background(), op)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, runner.books.books["b1"].Quantity, 0,
			"las existencias jamás pueden quedar negativas")
	}
	assert.Equal(t, 0, runner.books.books["b1"].Quantity)
}

func TestAdjust_ValidaAntesDeTocarElAlmacenamiento(t *testing.T) {
	uc, runner := newLedger(map[string]int{"b1": 5})

	cases := []struct {
		name string
		in   stock.AdjustInput
	}{
		{"sin book_id", stock.AdjustInput{Operation: entity.OpAdd, Amount: 1}},
		{"operación desconocida", stock.AdjustInput{BookID: "b1", Operation: "INCREMENT", Amount: 1}},
		{"cantidad negativa", stock.AdjustInput{BookID: "b1", Operation: entity.OpAdd, Amount: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Adjust(context.Background(), tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	assert.Zero(t, runner.runs, "una entrada inválida no debe abrir transacción")
	assert.Empty(t, runner.adjs.created, "una entrada inválida no deja rastro en la auditoría")
	assert.Equal(t, 5, runner.books.books["b1"].Quantity)
}

func TestAdjust_LibroInexistente(t *testing.T) {
	uc, _ := newLedger(map[string]int{})

	_, err := uc.Adjust(context.Background(), stock.AdjustInput{
		BookID: "fantasma", Operation: entity.OpAdd, Amount: 1,
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "fantasma")
}

func TestAdjust_RegistraTransaccionYAuditoria(t *testing.T) {
	uc, runner := newLedger(map[string]int{"b1": 1})

	_, err := uc.Adjust(context.Background(), stock.AdjustInput{
		BookID: "b1", Operation: entity.OpAdd, Amount: 1,
	})

	require.NoError(t, err)
	require.Len(t, runner.adjs.created, 1)
	adj := runner.adjs.created[0]
	assert.NotEmpty(t, adj.ID)
	assert.NotEmpty(t, adj.TransactionID)
	assert.Equal(t, "b1", adj.BookID)
	assert.Equal(t, entity.OpAdd, adj.Operation)
	assert.False(t, adj.CreatedAt.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// QuickAdjust
// ──────────────────────────────────────────────────────────────────────────────

func TestQuickAdjust_DeltaPositivoEsAdd(t *testing.T) {
	uc, runner := newLedger(map[string]int{"b1": 5})

	res, err := uc.QuickAdjust(context.Background(), "b1", 3)

	require.NoError(t, err)
	assert.Equal(t, 8, res.NewQuantity)
	require.Len(t, runner.adjs.created, 1)
	assert.Equal(t, entity.OpAdd, runner.adjs.created[0].Operation)
	assert.Equal(t, 3, runner.adjs.created[0].RequestedAmount)
}

func TestQuickAdjust_DeltaNegativoEsSubtractConClamp(t *testing.T) {
	uc, runner := newLedger(map[string]int{"b1": 2})

	res, err := uc.QuickAdjust(context.Background(), "b1", -9)

	require.NoError(t, err)
	assert.Equal(t, 0, res.NewQuantity)
	require.Len(t, runner.adjs.created, 1)
	assert.Equal(t, entity.OpSubtract, runner.adjs.created[0].Operation)
	assert.Equal(t, 9, runner.adjs.created[0].RequestedAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListAdjustments
// ──────────────────────────────────────────────────────────────────────────────

func TestListAdjustments_RecientesPrimero(t *testing.T) {
	uc, _ := newLedger(map[string]int{"b1": 0})

	for i := 0; i < 3; i++ {
		_, err := uc.Adjust(context.Background(), stock.AdjustInput{
			BookID: "b1", Operation: entity.OpAdd, Amount: i + 1,
		})
		require.NoError(t, err)
	}

	list, err := uc.ListAdjustments(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, list, 2)
	// El último ajuste (ADD 3) sale primero
	assert.Equal(t, 3, list[0].RequestedAmount)
	assert.Equal(t, 2, list[1].RequestedAmount)
}
