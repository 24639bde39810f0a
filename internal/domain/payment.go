package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment was settled. MethodWaived is a
// legacy sentinel: old records encode a waiver as a zero-amount "payment"
// with this method. The normalizer folds it into StatusWaived; new payments
// must use one of the four settleable methods.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodCard         PaymentMethod = "Card"
	MethodOnline       PaymentMethod = "Online"
	MethodBankTransfer PaymentMethod = "BankTransfer"
	MethodWaived       PaymentMethod = "Waived"
)

// Settleable reports whether the method is accepted for recording a real
// payment.
func (m PaymentMethod) Settleable() bool {
	switch m {
	case MethodCash, MethodCard, MethodOnline, MethodBankTransfer:
		return true
	}
	return false
}

// PaymentStatus mirrors the server-side payment state.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Completed"
	PaymentPending   PaymentStatus = "Pending"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

// Payment is one transaction against a fine. A fine may accumulate several
// payments before it is fully settled.
type Payment struct {
	ID          string          `json:"id"`
	FineID      string          `json:"fineId"`
	UserID      string          `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      PaymentMethod   `json:"paymentMethod"`
	Status      PaymentStatus   `json:"status"`

	TransactionID string `json:"transactionId,omitempty"`
	ReceiptNumber string `json:"receiptNumber,omitempty"`
	Notes         string `json:"notes,omitempty"`
	ProcessedBy   string `json:"processedBy,omitempty"`
}

// PaymentRequest is the caller-supplied input for recording a payment.
// ClientReference is filled with a fresh UUID by the lifecycle layer when
// the caller leaves it empty, so retried requests stay traceable.
type PaymentRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Method          PaymentMethod   `json:"paymentMethod"`
	Notes           string          `json:"notes,omitempty"`
	ClientReference string          `json:"clientReference,omitempty"`
}
