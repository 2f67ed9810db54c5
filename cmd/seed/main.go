// seed crea el esquema (si no existe) y carga los datos de muestra de la
// librería: el catálogo de demostración del storefront y unos pedidos en
// distintos estados para poblar el dashboard.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_HOST, etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/libreria-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	author      TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
	quantity    INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	barcode     TEXT UNIQUE,
	sales       INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id               TEXT PRIMARY KEY,
	customer_id      TEXT NOT NULL,
	customer_name    TEXT NOT NULL,
	items            JSONB NOT NULL,
	total_amount     NUMERIC(12,2) NOT NULL,
	status           TEXT NOT NULL DEFAULT 'pending',
	order_date       TIMESTAMPTZ NOT NULL,
	payment_method   TEXT NOT NULL DEFAULT '',
	shipping_address TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS stock_adjustments (
	id                 TEXT PRIMARY KEY,
	transaction_id     TEXT NOT NULL,
	book_id            TEXT NOT NULL REFERENCES books(id),
	operation          TEXT NOT NULL,
	requested_amount   INTEGER NOT NULL,
	previous_quantity  INTEGER NOT NULL,
	resulting_quantity INTEGER NOT NULL,
	reason             TEXT,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_stock_adjustments_book ON stock_adjustments (book_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status);
`

type seedBook struct {
	title, author, category, barcode string
	price                            string
	quantity, sales                  int
}

var books = []seedBook{
	{"Cien años de soledad", "Gabriel García Márquez", "Novela", "9780307474728", "62000", 12, 148},
	{"El amor en los tiempos del cólera", "Gabriel García Márquez", "Novela", "9780307387264", "58000", 4, 96},
	{"La ciudad y los perros", "Mario Vargas Llosa", "Novela", "9788420471830", "54000", 0, 73},
	{"Rayuela", "Julio Cortázar", "Novela", "9788437604572", "49000", 21, 67},
	{"Ficciones", "Jorge Luis Borges", "Cuento", "9780307950925", "45000", 3, 112},
	{"Pedro Páramo", "Juan Rulfo", "Novela", "9786071611482", "38000", 8, 88},
	{"La casa de los espíritus", "Isabel Allende", "Novela", "9788401242144", "56000", 15, 54},
	{"El túnel", "Ernesto Sabato", "Novela", "9788432217173", "35000", 0, 41},
	{"Veinte poemas de amor", "Pablo Neruda", "Poesía", "9788497592428", "29000", 30, 59},
	{"Crónica de una muerte anunciada", "Gabriel García Márquez", "Novela", "9781400034956", "42000", 2, 131},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "crear esquema: %v\n", err)
		os.Exit(1)
	}

	bookRepo := postgres.NewBookRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	now := time.Now()

	bookIDs := make([]string, 0, len(books))
	for i, b := range books {
		price, _ := decimal.NewFromString(b.price)
		id := uuid.New().String()
		book := &entity.Book{
			ID:       id,
			Title:    b.title,
			Author:   b.author,
			Category: b.category,
			Price:    price,
			Quantity: b.quantity,
			Barcode:  b.barcode,
			Sales:    b.sales,
			// Escalonar created_at: el orden de inserción es el orden del catálogo
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			UpdatedAt: now,
		}
		if err := bookRepo.Upsert(ctx, book); err != nil {
			fmt.Fprintf(os.Stderr, "sembrar libro %q: %v\n", b.title, err)
			os.Exit(1)
		}
		bookIDs = append(bookIDs, id)
	}
	// El upsert no pisa sales en conflicto; fijarlo explícito para la demo
	for i, id := range bookIDs {
		if _, err := pool.Exec(ctx, `UPDATE books SET sales = $2 WHERE id = $1`, id, books[i].sales); err != nil {
			fmt.Fprintf(os.Stderr, "fijar ventas: %v\n", err)
			os.Exit(1)
		}
	}

	statuses := []entity.OrderStatus{
		entity.StatusPending, entity.StatusPending, entity.StatusProcessing,
		entity.StatusShipped, entity.StatusDelivered, entity.StatusCancelled,
	}
	customers := []string{"Ana Moreno", "Luis Pardo", "Carolina Restrepo", "Jorge Salinas", "Marta Ruiz", "Pedro Gómez"}
	for i, st := range statuses {
		price, _ := decimal.NewFromString(books[i].price)
		qty := i%2 + 1
		items := []entity.OrderItem{{BookID: bookIDs[i], Quantity: qty, UnitPrice: price}}
		order := &entity.Order{
			ID:              fmt.Sprintf("ORD-%04d", 1001+i),
			CustomerID:      uuid.New().String(),
			CustomerName:    customers[i],
			Items:           items,
			TotalAmount:     price.Mul(decimal.NewFromInt(int64(qty))),
			Status:          st,
			OrderDate:       now.Add(-time.Duration(i*6) * time.Hour),
			PaymentMethod:   "tarjeta",
			ShippingAddress: fmt.Sprintf("Calle %d #%d-%d, Bogotá", 10+i, 20+i, 30+i),
			CreatedAt:       now.Add(time.Duration(i) * time.Millisecond),
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			fmt.Fprintf(os.Stderr, "sembrar pedido %s: %v\n", order.ID, err)
			os.Exit(1)
		}
	}

	fmt.Printf("sembrados %d libros y %d pedidos en %s\n", len(books), len(statuses), cfg.DB.DBName)
}
