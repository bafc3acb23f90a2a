package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de billetera.
const (
	WalletCredit = "credit"
	WalletDebit  = "debit"
)

// WalletTransaction representa un movimiento en la billetera de una cuenta.
type WalletTransaction struct {
	ID        string
	UserID    string
	Type      string // credit, debit
	Amount    decimal.Decimal
	Status    string
	CreatedAt time.Time
}
