package domain

import "time"

// SellerBalance é o saldo consolidado de um vendedor (somente leitura).
type SellerBalance struct {
	ID                  string    `json:"id"`
	SellerID            string    `json:"seller_id"`
	Balance             float64   `json:"balance"`
	WithdrawableBalance float64   `json:"withdrawable_balance"`
	BankCode            *string   `json:"bank_code"`
	AccountNumber       *string   `json:"account_number"`
	AccountHolderName   *string   `json:"account_holder_name"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Seller *SellerSummary `json:"sellers"`
}

// BalanceTransaction é uma entrada do livro-razão de saldos (somente leitura).
type BalanceTransaction struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Metadata  *string   `json:"metadata"` // JSON serializado como texto
	CreatedAt time.Time `json:"created_at"`

	Seller *SellerSummary `json:"sellers"`
}

// LedgerPageSize limita a listagem do livro-razão, cuja tabela cresce sem limite.
const LedgerPageSize = 100
