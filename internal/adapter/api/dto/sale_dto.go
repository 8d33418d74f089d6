package dto

import (
	"time"

	"github.com/hugohenrick/pdv-livraria/internal/domain/sale"
)

// SaleItemRequest representa um item de venda enviado pelo terminal
type SaleItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"qty" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

// SaleRequest representa uma venda enviada por um terminal PDV.
// A dupla (station_id, external_id) é a chave de idempotência da venda.
type SaleRequest struct {
	StationID     string            `json:"station_id" binding:"required"`
	ExternalID    int64             `json:"external_id" binding:"required"`
	BranchID      string            `json:"branch_id" binding:"required"`
	UserID        string            `json:"user_id" binding:"required"`
	CustomerID    string            `json:"customer_id"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
}

// SaleItemResponse representa um item de venda na resposta
type SaleItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

// SaleResponse representa uma venda na resposta
type SaleResponse struct {
	ID            string             `json:"id"`
	ExternalID    int64              `json:"external_id"`
	StationID     string             `json:"station_id"`
	BranchID      string             `json:"branch_id"`
	UserID        string             `json:"user_id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Timestamp     time.Time          `json:"timestamp"`
	Total         float64            `json:"total"`
	PaymentMethod sale.PaymentMethod `json:"payment_method"`
	FiscalStatus  sale.FiscalStatus  `json:"fiscal_status"`
	Items         []SaleItemResponse `json:"items"`
}

// SaleSyncResultResponse representa o desfecho de uma venda do lote.
// A posição na resposta corresponde à posição da venda na requisição.
type SaleSyncResultResponse struct {
	Status sale.SyncStatus `json:"status"`
	Sale   *SaleResponse   `json:"sale,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ToSyncRequest converte a requisição HTTP para o contrato do coordenador
func (r SaleRequest) ToSyncRequest() sale.SyncRequest {
	items := make([]sale.SyncItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, sale.SyncItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return sale.SyncRequest{
		StationID:     r.StationID,
		ExternalID:    r.ExternalID,
		BranchID:      r.BranchID,
		UserID:        r.UserID,
		CustomerID:    r.CustomerID,
		Total:         r.Total,
		PaymentMethod: sale.PaymentMethod(r.PaymentMethod),
		Items:         items,
	}
}

// ToSaleResponse converte a entidade de venda para a resposta da API
func ToSaleResponse(s *sale.Sale) *SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &SaleResponse{
		ID:            s.ID,
		ExternalID:    s.ExternalID,
		StationID:     s.StationID,
		BranchID:      s.BranchID,
		UserID:        s.UserID,
		CustomerID:    s.CustomerID,
		Timestamp:     s.Timestamp,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		FiscalStatus:  s.FiscalStatus,
		Items:         items,
	}
}

// ToSyncResultResponses converte os resultados do coordenador para a resposta
// da API, preservando a ordem do lote
func ToSyncResultResponses(results []sale.SyncResult) []SaleSyncResultResponse {
	responses := make([]SaleSyncResultResponse, 0, len(results))

	for _, result := range results {
		resp := SaleSyncResultResponse{
			Status: result.Status,
			Error:  result.Error,
		}
		if result.Sale != nil {
			resp.Sale = ToSaleResponse(result.Sale)
		}
		responses = append(responses, resp)
	}

	return responses
}
