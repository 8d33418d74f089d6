package repository

// Testes de integração: exigem um PostgreSQL com as migrações aplicadas,
// apontado por TEST_DATABASE_URL. Sem a variável, os testes são pulados.

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/hugohenrick/pdv-livraria/internal/domain/branch"
	"github.com/hugohenrick/pdv-livraria/internal/domain/customer"
	"github.com/hugohenrick/pdv-livraria/internal/domain/outbox"
	"github.com/hugohenrick/pdv-livraria/internal/domain/product"
	"github.com/hugohenrick/pdv-livraria/internal/domain/sale"
	"github.com/hugohenrick/pdv-livraria/internal/domain/user"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL não definido; pulando testes de integração")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE audit_logs, outbox_messages, sale_items, sales, products, customers, users, branches CASCADE`)
	require.NoError(t, err)

	return pool
}

type fixtures struct {
	pool *pgxpool.Pool

	branches  *BranchRepository
	users     *UserRepository
	products  *ProductRepository
	customers *CustomerRepository
	sales     *SaleRepository
	outbox    *OutboxRepository
	audit     *AuditRepository

	branch *branch.Branch
	user   *user.User
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	pool := testPool(t)
	ctx := context.Background()

	f := &fixtures{pool: pool}
	f.branches = NewBranchRepository(pool)
	f.users = NewUserRepository(pool)
	f.products = NewProductRepository(pool)
	f.audit = NewAuditRepository(pool)
	f.outbox = NewOutboxRepository(pool)
	f.customers = NewCustomerRepository(pool, f.audit)
	f.sales = NewSaleRepository(pool, f.products, f.outbox)

	b, err := branch.NewBranch("Loja Centro", "Rua das Flores, 100")
	require.NoError(t, err)
	require.NoError(t, f.branches.Create(ctx, b))
	f.branch = b

	u, err := user.NewUser("operador", user.RoleSeller, b.ID)
	require.NoError(t, err)
	require.NoError(t, u.SetPIN("1234"))
	require.NoError(t, f.users.Create(ctx, u))
	f.user = u

	return f
}

func (f *fixtures) seedProduct(t *testing.T, name string, stock, minStock float64) *product.Product {
	t.Helper()

	p, err := product.NewProduct(name, "", "", 10, 25, stock, minStock, f.branch.ID)
	require.NoError(t, err)
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *fixtures) seedCustomer(t *testing.T, name string, balance float64) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(name, "11999990000", 5000, f.branch.ID)
	require.NoError(t, err)
	c.CurrentBalance = balance
	require.NoError(t, f.customers.Create(context.Background(), c))
	return c
}

func (f *fixtures) newSale(t *testing.T, stationID string, externalID int64, items []sale.Item) *sale.Sale {
	t.Helper()

	total := 0.0
	for _, item := range items {
		total += item.Quantity * item.UnitPrice
	}

	s, err := sale.NewSale(stationID, externalID, f.branch.ID, f.user.ID, "", total, sale.PaymentCash, items)
	require.NoError(t, err)
	return s
}

func TestSaleCreateDecrementsStock(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	p := f.seedProduct(t, "Dom Casmurro", 10, 3)

	s := f.newSale(t, "caixa-01", 1, []sale.Item{
		{ProductID: p.ID, Quantity: 4, UnitPrice: 25},
	})
	require.NoError(t, f.sales.Create(ctx, s))

	got, err := f.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.Stock)

	// 6 > 3: nenhum alerta enfileirado
	count, err := f.outbox.CountByStatus(ctx, outbox.StatusPending)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSaleCreateAlertsWhenCrossingMinimum(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	p := f.seedProduct(t, "Dom Casmurro", 10, 3)

	// 10 - 7 = 3: igual ao mínimo também dispara o alerta
	s := f.newSale(t, "caixa-01", 1, []sale.Item{
		{ProductID: p.ID, Quantity: 7, UnitPrice: 25},
	})
	require.NoError(t, f.sales.Create(ctx, s))

	messages, err := f.outbox.List(ctx, outbox.StatusPending, 10, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, outbox.TypeWhatsApp, messages[0].Type)
	assert.Equal(t, 0, messages[0].Attempts)
	assert.Contains(t, string(messages[0].Payload), p.ID)
}

func TestSaleCreateStockMayGoNegative(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	p := f.seedProduct(t, "Caneta Azul", 2, 5)

	s := f.newSale(t, "caixa-01", 1, []sale.Item{
		{ProductID: p.ID, Quantity: 3, UnitPrice: 2},
	})
	require.NoError(t, f.sales.Create(ctx, s))

	got, err := f.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, -1.0, got.Stock)
}

func TestSaleCreateIsAtomic(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	p := f.seedProduct(t, "Dom Casmurro", 10, 3)

	// O segundo item aponta para um produto inexistente: a venda inteira deve
	// ser desfeita, inclusive a baixa já aplicada ao primeiro item
	s := f.newSale(t, "caixa-01", 1, []sale.Item{
		{ProductID: p.ID, Quantity: 8, UnitPrice: 25},
		{ProductID: "11111111-1111-1111-1111-111111111111", Quantity: 1, UnitPrice: 10},
	})

	err := f.sales.Create(ctx, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrProductNotFound)

	got, err := f.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Stock, "baixa parcial deve ser desfeita")

	_, err = f.sales.FindByStationSale(ctx, "caixa-01", 1)
	assert.ErrorIs(t, err, sale.ErrSaleNotFound)

	count, err := f.outbox.CountByStatus(ctx, outbox.StatusPending)
	require.NoError(t, err)
	assert.Zero(t, count, "alerta de estoque não sobrevive ao rollback")
}

func TestSaleCreateDuplicateNaturalKey(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	p := f.seedProduct(t, "Dom Casmurro", 10, 3)

	first := f.newSale(t, "caixa-01", 1, []sale.Item{
		{ProductID: p.ID, Quantity: 1, UnitPrice: 25},
	})
	require.NoError(t, f.sales.Create(ctx, first))

	second := f.newSale(t, "caixa-01", 1, []sale.Item{
		{ProductID: p.ID, Quantity: 1, UnitPrice: 25},
	})
	err := f.sales.Create(ctx, second)
	assert.ErrorIs(t, err, sale.ErrSaleDuplicateKey)

	// A tentativa duplicada não baixa estoque
	got, err := f.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Stock)
}

func TestSaleFindByStationSaleLoadsItems(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	p1 := f.seedProduct(t, "Dom Casmurro", 10, 0)
	p2 := f.seedProduct(t, "Caneta Azul", 50, 0)

	s := f.newSale(t, "caixa-01", 9, []sale.Item{
		{ProductID: p1.ID, Quantity: 1, UnitPrice: 25},
		{ProductID: p2.ID, Quantity: 3, UnitPrice: 2},
	})
	require.NoError(t, f.sales.Create(ctx, s))

	got, err := f.sales.FindByStationSale(ctx, "caixa-01", 9)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	require.Len(t, got.Items, 2)
}

func TestConcurrentDecrementIsSerialized(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	p := f.seedProduct(t, "Dom Casmurro", 10, 0)

	const sales = 10

	var wg sync.WaitGroup
	errs := make([]error, sales)

	for i := 0; i < sales; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := f.newSale(t, "caixa-01", int64(i+1), []sale.Item{
				{ProductID: p.ID, Quantity: 1, UnitPrice: 25},
			})
			errs[i] = f.sales.Create(ctx, s)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "venda %d", i+1)
	}

	got, err := f.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Stock, "nenhuma baixa pode ser perdida")
}

func TestApplyPaymentUpdatesBalanceAndAudit(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	c := f.seedCustomer(t, "Maria Souza", 2000)

	got, err := f.customers.ApplyPayment(ctx, c.ID, 500, f.user.ID, "10.0.0.1", "caixa-01")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got.CurrentBalance)

	entries, err := f.audit.ListByCustomer(ctx, c.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CUSTOMER_PAYMENT", entries[0].Action)
	assert.Equal(t, f.user.ID, entries[0].UserID)
	assert.Contains(t, string(entries[0].Payload), `"old_balance":2000`)
	assert.Contains(t, string(entries[0].Payload), `"new_balance":1500`)
}

func TestApplyChargeIncreasesBalance(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	c := f.seedCustomer(t, "Maria Souza", 100)

	got, err := f.customers.ApplyCharge(ctx, c.ID, 59.90, f.user.ID, "10.0.0.1", "caixa-01")
	require.NoError(t, err)
	assert.InDelta(t, 159.90, got.CurrentBalance, 0.0001)

	entries, err := f.audit.ListByCustomer(ctx, c.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CUSTOMER_CHARGE", entries[0].Action)
}

func TestApplyPaymentUnknownCustomer(t *testing.T) {
	f := newFixtures(t)

	_, err := f.customers.ApplyPayment(context.Background(),
		"11111111-1111-1111-1111-111111111111", 100, f.user.ID, "10.0.0.1", "caixa-01")
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestApplyPaymentRejectsNonPositiveAmount(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	c := f.seedCustomer(t, "Maria Souza", 100)

	_, err := f.customers.ApplyPayment(ctx, c.ID, 0, f.user.ID, "10.0.0.1", "caixa-01")
	assert.ErrorIs(t, err, customer.ErrInvalidAmount)

	_, err = f.customers.ApplyPayment(ctx, c.ID, -10, f.user.ID, "10.0.0.1", "caixa-01")
	assert.ErrorIs(t, err, customer.ErrInvalidAmount)

	// Nenhuma trilha de auditoria para operações rejeitadas
	entries, err := f.audit.ListByCustomer(ctx, c.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConcurrentPaymentsAreSerialized(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	c := f.seedCustomer(t, "Maria Souza", 1000)

	const payments = 10

	var wg sync.WaitGroup
	errs := make([]error, payments)

	for i := 0; i < payments; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.customers.ApplyPayment(ctx, c.ID, 50, f.user.ID, "10.0.0.1", "caixa-01")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "pagamento %d", i+1)
	}

	got, err := f.customers.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got.CurrentBalance)

	entries, err := f.audit.ListByCustomer(ctx, c.ID, 50, 0)
	require.NoError(t, err)
	assert.Len(t, entries, payments)
}
