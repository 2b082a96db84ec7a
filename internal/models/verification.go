// internal/models/verification.go
package models

import "strings"

// RawVerification comes from GET /admin/seller-verifications. Statuses arrive
// lowercase from the backend.
type RawVerification struct {
	ID        string `json:"id"`
	AltID     string `json:"_id"`
	Store     Name   `json:"store"`
	User      Name   `json:"user"`
	NIN       string `json:"nin"`
	CAC       string `json:"cac"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type VerificationView struct {
	ID        string `json:"id"`
	StoreName string `json:"store_name"`
	UserName  string `json:"user_name"`
	NIN       string `json:"nin"`
	CAC       string `json:"cac"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func (v VerificationView) Key() string { return v.ID }

func (v VerificationView) SearchText() string {
	return strings.ToLower(v.StoreName + " " + v.UserName + " " + v.NIN + " " + v.CAC)
}

func NormalizeVerification(raw RawVerification) VerificationView {
	status := Capitalize(raw.Status)
	if status == "" {
		status = StatusPending
	}

	return VerificationView{
		ID:        firstNonEmpty(raw.ID, raw.AltID),
		StoreName: raw.Store.Or(UnnamedFallback),
		UserName:  raw.User.Or(UnnamedFallback),
		NIN:       firstNonEmpty(raw.NIN, NotAvailable),
		CAC:       firstNonEmpty(raw.CAC, NotAvailable),
		Status:    status,
		CreatedAt: raw.CreatedAt,
	}
}

func NormalizeVerifications(raw []RawVerification) []VerificationView {
	views := make([]VerificationView, 0, len(raw))
	for _, r := range raw {
		views = append(views, NormalizeVerification(r))
	}
	return views
}
