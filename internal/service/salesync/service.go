package salesync

import (
	"context"
	"errors"

	"github.com/hugohenrick/pdv-livraria/internal/domain/sale"
	"github.com/hugohenrick/pdv-livraria/pkg/logger"
)

// Service é o coordenador de ingestão de vendas.
//
// Recebe lotes de vendas geradas por terminais possivelmente desconectados e
// aplica cada uma exatamente uma vez. A deduplicação usa a chave natural
// (estação, sequencial local); o conteúdo da venda não participa da decisão —
// um reenvio com conteúdo divergente ainda resolve para ALREADY_APPLIED com a
// versão registrada pelo servidor.
type Service struct {
	sales  sale.Repository
	logger logger.Logger
}

// NewService cria uma nova instância do coordenador
func NewService(sales sale.Repository, logger logger.Logger) *Service {
	return &Service{
		sales:  sales,
		logger: logger,
	}
}

// Sync processa um lote ordenado de vendas e devolve um resultado por venda,
// na mesma posição do lote de entrada.
//
// Cada venda é processada de forma independente: a falha de uma não impede as
// seguintes e nenhum bloqueio atravessa o lote inteiro. O chamador deve
// reenviar apenas as vendas FAILED; o reenvio literal é seguro.
func (s *Service) Sync(ctx context.Context, batch []sale.SyncRequest) []sale.SyncResult {
	results := make([]sale.SyncResult, len(batch))

	for i, req := range batch {
		results[i] = s.syncOne(ctx, req)
	}

	return results
}

// syncOne aplica uma única venda do lote
func (s *Service) syncOne(ctx context.Context, req sale.SyncRequest) sale.SyncResult {
	// Checagem de idempotência: reenvio de uma venda já registrada não gera
	// nenhum efeito colateral de estoque ou outbox
	existing, err := s.sales.FindByStationSale(ctx, req.StationID, req.ExternalID)
	if err == nil {
		s.logger.Info("venda já sincronizada anteriormente",
			"station_id", req.StationID, "external_id", req.ExternalID)
		return alreadyApplied(existing)
	}
	if !errors.Is(err, sale.ErrSaleNotFound) {
		s.logger.Error("erro ao verificar venda existente",
			"station_id", req.StationID, "external_id", req.ExternalID, "error", err)
		return failed(err)
	}

	items := make([]sale.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, sale.Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	newSale, err := sale.NewSale(
		req.StationID,
		req.ExternalID,
		req.BranchID,
		req.UserID,
		req.CustomerID,
		req.Total,
		req.PaymentMethod,
		items,
	)
	if err != nil {
		s.logger.Warn("venda rejeitada na validação",
			"station_id", req.StationID, "external_id", req.ExternalID, "error", err)
		return failed(err)
	}

	err = s.sales.Create(ctx, newSale)

	switch {
	case err == nil:
		s.logger.Info("venda sincronizada",
			"sale_id", newSale.ID, "station_id", newSale.StationID,
			"external_id", newSale.ExternalID, "items", len(newSale.Items))
		return sale.SyncResult{Status: sale.SyncApplied, Sale: newSale}

	case errors.Is(err, sale.ErrSaleDuplicateKey):
		// Corrida perdida na restrição de unicidade: outro contendor gravou a
		// mesma chave natural entre a pré-checagem e o insert. É um caso de
		// sucesso de primeira classe, não um erro — devolve a versão gravada.
		existing, ferr := s.sales.FindByStationSale(ctx, req.StationID, req.ExternalID)
		if ferr != nil {
			s.logger.Error("erro ao rebuscar venda duplicada",
				"station_id", req.StationID, "external_id", req.ExternalID, "error", ferr)
			return failed(ferr)
		}
		s.logger.Info("venda duplicada resolvida pela restrição de unicidade",
			"sale_id", existing.ID, "station_id", req.StationID, "external_id", req.ExternalID)
		return alreadyApplied(existing)

	default:
		s.logger.Warn("falha ao sincronizar venda",
			"station_id", req.StationID, "external_id", req.ExternalID, "error", err)
		return failed(err)
	}
}

// alreadyApplied monta o resultado de reenvio de venda já registrada
func alreadyApplied(s *sale.Sale) sale.SyncResult {
	return sale.SyncResult{Status: sale.SyncAlreadyApplied, Sale: s}
}

// failed monta o resultado de falha de uma venda do lote
func failed(err error) sale.SyncResult {
	return sale.SyncResult{Status: sale.SyncFailed, Error: err.Error()}
}
