package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

var saleCols = []string{"id", "client_id", "name", "job_name", "description",
	"quantity", "unit_price", "total", "created_by", "created_at"}

func TestSaleRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	repo := NewSaleRepository(mock)

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO sales \(client_id, job_name, description, quantity, unit_price, total, created_by\)`).
		WithArgs(int64(1), "remodel", "cabinets", 3.0, 149.99, 449.97, "alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now))

	sale, err := repo.Create(context.Background(), &domain.Sale{
		ClientID: 1, JobName: "remodel", Description: "cabinets",
		Quantity: 3, UnitPrice: 149.99, Total: 449.97, CreatedBy: "alice",
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), sale.ID)
	require.Equal(t, now, sale.CreatedAt)
}

func TestSaleRepository_List(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	repo := NewSaleRepository(mock)

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM sales s`).
		WillReturnRows(pgxmock.NewRows(saleCols).
			AddRow(int64(2), int64(1), "Acme", "remodel", "countertop", 1.0, 180.25, 180.25, "alice", now).
			AddRow(int64(1), int64(1), "Acme", "remodel", "cabinets", 1.0, 320.50, 320.50, "", now))

	sales, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)
	require.Equal(t, "Acme", sales[0].ClientName)
	require.Equal(t, "countertop", sales[0].Description)
}

func TestSaleRepository_ListByClientJob(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	repo := NewSaleRepository(mock)

	now := time.Now().UTC()
	mock.ExpectQuery(`WHERE s\.client_id = \$1 AND s\.job_name = \$2`).
		WithArgs(int64(1), "remodel").
		WillReturnRows(pgxmock.NewRows(saleCols).
			AddRow(int64(1), int64(1), "Acme", "remodel", "cabinets", 1.0, 320.50, 320.50, "", now))

	sales, err := repo.ListByClientJob(context.Background(), 1, "remodel")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Equal(t, 320.50, sales[0].Total)
}

func TestSaleRepository_ListByClientJob_Empty(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	repo := NewSaleRepository(mock)

	mock.ExpectQuery(`WHERE s\.client_id = \$1 AND s\.job_name = \$2`).
		WithArgs(int64(1), "ghost job").
		WillReturnRows(pgxmock.NewRows(saleCols))

	sales, err := repo.ListByClientJob(context.Background(), 1, "ghost job")
	require.NoError(t, err)
	require.Empty(t, sales)
}
