// internal/models/report.go
package models

import "strings"

// RawReport comes from GET /v1/reports. The target is a tagged union resolved
// by which of targetUser/targetStore is present.
type RawReport struct {
	ID              string `json:"id"`
	AltID           string `json:"_id"`
	Reporter        Name   `json:"reporter"`
	TargetUser      *Name  `json:"targetUser"`
	TargetStore     *Name  `json:"targetStore"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	AdminNotes      string `json:"adminNotes"`
	RejectionReason string `json:"rejectionReason"`
	CreatedAt       string `json:"createdAt"`
}

type ReportView struct {
	ID              string `json:"id"`
	Reporter        string `json:"reporter"`
	ReportedName    string `json:"reported_name"`
	ReportedType    string `json:"reported_type"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	AdminNotes      string `json:"admin_notes"`
	RejectionReason string `json:"rejection_reason"`
	CreatedAt       string `json:"created_at"`
}

func (r ReportView) Key() string { return r.ID }

func (r ReportView) SearchText() string {
	return strings.ToLower(r.Reporter + " " + r.ReportedName + " " + r.Reason + " " + r.Status)
}

// ResolveReportTarget picks the canonical display name and type for a report
// target. With neither side present the fallback branch reports an unknown
// store.
func ResolveReportTarget(user, store *Name) (name, targetType string) {
	if user != nil {
		return user.Or(UnnamedFallback), "User"
	}
	if store != nil {
		return store.Or(UnnamedFallback), "Store"
	}
	return NotAvailable, "Store"
}

func NormalizeReport(raw RawReport) ReportView {
	name, targetType := ResolveReportTarget(raw.TargetUser, raw.TargetStore)

	return ReportView{
		ID:              firstNonEmpty(raw.ID, raw.AltID),
		Reporter:        raw.Reporter.Or(UnnamedFallback),
		ReportedName:    name,
		ReportedType:    targetType,
		Reason:          raw.Reason,
		Status:          normalizeReportStatus(raw.Status),
		AdminNotes:      raw.AdminNotes,
		RejectionReason: raw.RejectionReason,
		CreatedAt:       raw.CreatedAt,
	}
}

func normalizeReportStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "resolved":
		return StatusResolved
	case "rejected":
		return StatusRejected
	default:
		return StatusPending
	}
}

func NormalizeReports(raw []RawReport) []ReportView {
	views := make([]ReportView, 0, len(raw))
	for _, r := range raw {
		views = append(views, NormalizeReport(r))
	}
	return views
}
