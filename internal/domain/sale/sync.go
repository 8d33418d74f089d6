package sale

// SyncStatus representa o desfecho da sincronização de uma venda do lote
type SyncStatus string

const (
	SyncApplied        SyncStatus = "APPLIED"         // Venda gravada nesta requisição
	SyncAlreadyApplied SyncStatus = "ALREADY_APPLIED" // Reenvio: venda já registrada anteriormente
	SyncFailed         SyncStatus = "FAILED"          // Venda rejeitada; pode ser reenviada
)

// SyncItemRequest representa um item de venda enviado pelo terminal
type SyncItemRequest struct {
	ProductID string
	Quantity  float64
	UnitPrice float64
}

// SyncRequest representa uma venda gerada por um terminal possivelmente
// desconectado, identificada pela chave natural (StationID, ExternalID)
type SyncRequest struct {
	StationID     string
	ExternalID    int64
	BranchID      string
	UserID        string
	CustomerID    string
	Total         float64
	PaymentMethod PaymentMethod
	Items         []SyncItemRequest
}

// SyncResult representa o resultado da sincronização de uma venda.
// A posição no slice de resultados corresponde à posição da venda no lote.
type SyncResult struct {
	Status SyncStatus
	Sale   *Sale
	Error  string
}
