package salesync

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hugohenrick/pdv-livraria/internal/domain/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noopLogger descarta os logs durante os testes
type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

// fakeSaleRepository guarda vendas em memória, chaveadas pela chave natural
type fakeSaleRepository struct {
	sales       map[string]*sale.Sale
	createCalls int

	// createHook, quando definido, intercepta o Create antes da gravação
	createHook func(s *sale.Sale) error
}

func newFakeSaleRepository() *fakeSaleRepository {
	return &fakeSaleRepository{sales: make(map[string]*sale.Sale)}
}

func naturalKey(stationID string, externalID int64) string {
	return fmt.Sprintf("%s|%d", stationID, externalID)
}

func (f *fakeSaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	f.createCalls++

	if f.createHook != nil {
		if err := f.createHook(s); err != nil {
			return err
		}
	}

	key := naturalKey(s.StationID, s.ExternalID)
	if _, ok := f.sales[key]; ok {
		return sale.ErrSaleDuplicateKey
	}

	f.sales[key] = s
	return nil
}

func (f *fakeSaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, sale.ErrSaleNotFound
}

func (f *fakeSaleRepository) FindByStationSale(ctx context.Context, stationID string, externalID int64) (*sale.Sale, error) {
	if s, ok := f.sales[naturalKey(stationID, externalID)]; ok {
		return s, nil
	}
	return nil, sale.ErrSaleNotFound
}

func (f *fakeSaleRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*sale.Sale, error) {
	result := make([]*sale.Sale, 0)
	for _, s := range f.sales {
		if s.BranchID == branchID {
			result = append(result, s)
		}
	}
	return result, nil
}

func validRequest(stationID string, externalID int64) sale.SyncRequest {
	return sale.SyncRequest{
		StationID:     stationID,
		ExternalID:    externalID,
		BranchID:      "branch-1",
		UserID:        "user-1",
		Total:         59.90,
		PaymentMethod: sale.PaymentCash,
		Items: []sale.SyncItemRequest{
			{ProductID: "product-1", Quantity: 2, UnitPrice: 29.95},
		},
	}
}

func TestSyncAppliesNewSales(t *testing.T) {
	repo := newFakeSaleRepository()
	svc := NewService(repo, noopLogger{})

	batch := []sale.SyncRequest{
		validRequest("caixa-01", 1),
		validRequest("caixa-01", 2),
	}

	results := svc.Sync(context.Background(), batch)

	require.Len(t, results, 2)
	for i, result := range results {
		assert.Equal(t, sale.SyncApplied, result.Status)
		require.NotNil(t, result.Sale)
		assert.Equal(t, batch[i].ExternalID, result.Sale.ExternalID)
		assert.NotEmpty(t, result.Sale.ID)
	}
	assert.Equal(t, 2, repo.createCalls)
}

func TestSyncResendIsIdempotent(t *testing.T) {
	repo := newFakeSaleRepository()
	svc := NewService(repo, noopLogger{})

	first := svc.Sync(context.Background(), []sale.SyncRequest{validRequest("caixa-01", 7)})
	require.Equal(t, sale.SyncApplied, first[0].Status)

	// Reenvio literal da mesma venda
	second := svc.Sync(context.Background(), []sale.SyncRequest{validRequest("caixa-01", 7)})

	require.Len(t, second, 1)
	assert.Equal(t, sale.SyncAlreadyApplied, second[0].Status)
	require.NotNil(t, second[0].Sale)
	assert.Equal(t, first[0].Sale.ID, second[0].Sale.ID)

	// O reenvio não chega ao repositório: nenhum efeito de estoque ou outbox
	assert.Equal(t, 1, repo.createCalls)
}

func TestSyncSameExternalIDDifferentStations(t *testing.T) {
	repo := newFakeSaleRepository()
	svc := NewService(repo, noopLogger{})

	results := svc.Sync(context.Background(), []sale.SyncRequest{
		validRequest("caixa-01", 1),
		validRequest("caixa-02", 1),
	})

	require.Len(t, results, 2)
	assert.Equal(t, sale.SyncApplied, results[0].Status)
	assert.Equal(t, sale.SyncApplied, results[1].Status)
	assert.NotEqual(t, results[0].Sale.ID, results[1].Sale.ID)
}

func TestSyncFailureDoesNotAbortBatch(t *testing.T) {
	repo := newFakeSaleRepository()
	svc := NewService(repo, noopLogger{})

	invalid := validRequest("caixa-01", 2)
	invalid.Items = nil

	results := svc.Sync(context.Background(), []sale.SyncRequest{
		validRequest("caixa-01", 1),
		invalid,
		validRequest("caixa-01", 3),
	})

	require.Len(t, results, 3)
	assert.Equal(t, sale.SyncApplied, results[0].Status)
	assert.Equal(t, sale.SyncFailed, results[1].Status)
	assert.Equal(t, sale.SyncApplied, results[2].Status)

	// A venda rejeitada carrega o motivo e pode ser reenviada
	assert.Equal(t, sale.ErrNoItems.Error(), results[1].Error)
	assert.Nil(t, results[1].Sale)
}

func TestSyncValidationFailureSkipsRepository(t *testing.T) {
	repo := newFakeSaleRepository()
	svc := NewService(repo, noopLogger{})

	invalid := validRequest("caixa-01", 1)
	invalid.PaymentMethod = "CHEQUE"

	results := svc.Sync(context.Background(), []sale.SyncRequest{invalid})

	require.Len(t, results, 1)
	assert.Equal(t, sale.SyncFailed, results[0].Status)
	assert.Equal(t, 0, repo.createCalls)
}

func TestSyncDuplicateKeyRaceResolvesToAlreadyApplied(t *testing.T) {
	repo := newFakeSaleRepository()
	svc := NewService(repo, noopLogger{})

	// Simula um contendor gravando a mesma chave natural entre a pré-checagem
	// e o insert: o hook grava a venda concorrente e devolve a violação de
	// unicidade para o chamador original
	winner, err := sale.NewSale("caixa-01", 5, "branch-1", "user-1", "", 10, sale.PaymentCard,
		[]sale.Item{{ProductID: "product-9", Quantity: 1, UnitPrice: 10}})
	require.NoError(t, err)

	repo.createHook = func(s *sale.Sale) error {
		repo.sales[naturalKey(winner.StationID, winner.ExternalID)] = winner
		return sale.ErrSaleDuplicateKey
	}

	results := svc.Sync(context.Background(), []sale.SyncRequest{validRequest("caixa-01", 5)})

	require.Len(t, results, 1)
	assert.Equal(t, sale.SyncAlreadyApplied, results[0].Status)
	require.NotNil(t, results[0].Sale)
	assert.Equal(t, winner.ID, results[0].Sale.ID)
	assert.Empty(t, results[0].Error)
}

func TestSyncRepositoryErrorIsFailed(t *testing.T) {
	repo := newFakeSaleRepository()
	svc := NewService(repo, noopLogger{})

	storeErr := errors.New("erro ao criar venda: conexão encerrada")
	repo.createHook = func(s *sale.Sale) error {
		return storeErr
	}

	results := svc.Sync(context.Background(), []sale.SyncRequest{validRequest("caixa-01", 1)})

	require.Len(t, results, 1)
	assert.Equal(t, sale.SyncFailed, results[0].Status)
	assert.Equal(t, storeErr.Error(), results[0].Error)
}

func TestSyncEmptyBatch(t *testing.T) {
	svc := NewService(newFakeSaleRepository(), noopLogger{})

	results := svc.Sync(context.Background(), nil)

	assert.Empty(t, results)
}
