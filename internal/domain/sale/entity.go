package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyStationID       = errors.New("identificador da estação não pode ser vazio")
	ErrInvalidExternalID    = errors.New("identificador local da venda inválido")
	ErrEmptyBranchID        = errors.New("ID da filial não pode ser vazio")
	ErrEmptyUserID          = errors.New("ID do operador não pode ser vazio")
	ErrNoItems              = errors.New("venda deve conter ao menos um item")
	ErrEmptyProductID       = errors.New("ID do produto não pode ser vazio")
	ErrInvalidQuantity      = errors.New("quantidade deve ser maior que zero")
	ErrInvalidUnitPrice     = errors.New("preço unitário não pode ser negativo")
	ErrInvalidTotal         = errors.New("total da venda não pode ser negativo")
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
)

// PaymentMethod representa a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"     // Dinheiro
	PaymentCard     PaymentMethod = "CARD"     // Cartão
	PaymentTransfer PaymentMethod = "TRANSFER" // Transferência
	PaymentCredit   PaymentMethod = "CREDIT"   // Fiado (crediário)
)

// IsValid verifica se a forma de pagamento é conhecida
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentCredit:
		return true
	}
	return false
}

// FiscalStatus representa o estado fiscal da venda
type FiscalStatus string

const (
	FiscalPending   FiscalStatus = "PENDING"
	FiscalCompleted FiscalStatus = "COMPLETED"
	FiscalFailed    FiscalStatus = "FAILED"
)

// Item representa uma linha de uma venda
type Item struct {
	ID        string  `json:"id"`
	SaleID    string  `json:"sale_id"`
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

// Sale representa uma venda concluída em um terminal PDV
//
// Além da chave primária atribuída pelo servidor, a venda carrega uma chave
// natural (StationID, ExternalID) gerada pelo terminal de origem. Essa chave é
// única para sempre: reenvios da mesma venda nunca criam um segundo registro.
type Sale struct {
	ID            string        `json:"id"`             // ID atribuído pelo servidor
	ExternalID    int64         `json:"external_id"`    // Sequencial local da estação
	StationID     string        `json:"station_id"`     // Identificador da estação PDV
	BranchID      string        `json:"branch_id"`      // ID da filial
	UserID        string        `json:"user_id"`        // ID do operador
	CustomerID    string        `json:"customer_id"`    // ID do cliente (opcional)
	Timestamp     time.Time     `json:"timestamp"`      // Momento da venda
	Total         float64       `json:"total"`          // Valor total
	PaymentMethod PaymentMethod `json:"payment_method"` // Forma de pagamento
	FiscalStatus  FiscalStatus  `json:"fiscal_status"`  // Status fiscal
	CAE           string        `json:"cae"`            // Código de autorização fiscal (preenchido fora deste módulo)
	Items         []Item        `json:"items"`          // Itens da venda
}

// NewSale cria uma nova venda a partir dos dados enviados pelo terminal
func NewSale(
	stationID string,
	externalID int64,
	branchID string,
	userID string,
	customerID string,
	total float64,
	paymentMethod PaymentMethod,
	items []Item,
) (*Sale, error) {
	if stationID == "" {
		return nil, ErrEmptyStationID
	}

	if externalID <= 0 {
		return nil, ErrInvalidExternalID
	}

	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if userID == "" {
		return nil, ErrEmptyUserID
	}

	if total < 0 {
		return nil, ErrInvalidTotal
	}

	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}

	id := uuid.New().String()

	saleItems := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return nil, ErrEmptyProductID
		}
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if item.UnitPrice < 0 {
			return nil, ErrInvalidUnitPrice
		}

		saleItems = append(saleItems, Item{
			ID:        uuid.New().String(),
			SaleID:    id,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &Sale{
		ID:            id,
		ExternalID:    externalID,
		StationID:     stationID,
		BranchID:      branchID,
		UserID:        userID,
		CustomerID:    customerID,
		Timestamp:     time.Now().UTC(),
		Total:         total,
		PaymentMethod: paymentMethod,
		FiscalStatus:  FiscalPending,
		Items:         saleItems,
	}, nil
}
