// internal/models/transaction.go
package models

import (
	"fmt"
	"strings"
)

type RawTransaction struct {
	ID        string    `json:"id"`
	AltID     string    `json:"_id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Amount    FlexFloat `json:"amount"`
	CreatedAt string    `json:"createdAt"`
}

type TransactionView struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
	CreatedAt     string  `json:"created_at"`
}

func (t TransactionView) Key() string { return t.ID }

func (t TransactionView) SearchText() string {
	return strings.ToLower(t.UserName + " " + t.Type + " " + t.ID)
}

// NormalizeTransaction resolves the user name against a separately fetched
// user map. The display amount keeps the upstream minor-unit convention
// (amount * 100); the backend's unit contract is unconfirmed, so this is
// carried as-is rather than corrected here.
func NormalizeTransaction(raw RawTransaction, userNames map[string]string) TransactionView {
	userName := userNames[raw.UserID]
	if userName == "" {
		userName = NotAvailable
	}

	txType := strings.ToUpper(strings.TrimSpace(raw.Type))
	if txType != "CREDIT" && txType != "DEBIT" {
		txType = NotAvailable
	}

	return TransactionView{
		ID:            firstNonEmpty(raw.ID, raw.AltID),
		UserID:        raw.UserID,
		UserName:      userName,
		Type:          txType,
		Amount:        float64(raw.Amount),
		AmountDisplay: FormatNaira(float64(raw.Amount) * 100),
		CreatedAt:     raw.CreatedAt,
	}
}

func NormalizeTransactions(raw []RawTransaction, userNames map[string]string) []TransactionView {
	views := make([]TransactionView, 0, len(raw))
	for _, r := range raw {
		views = append(views, NormalizeTransaction(r, userNames))
	}
	return views
}

func FormatNaira(amount float64) string {
	return fmt.Sprintf("₦%.2f", amount)
}
