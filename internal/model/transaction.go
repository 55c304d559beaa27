package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindExpense      TransactionKind = "expense"
	KindContribution TransactionKind = "contribution"
)

type Transaction struct {
	ID          string          `json:"id"`
	PayerID     string          `json:"payer_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Kind        TransactionKind `json:"kind"`
}
