// internal/models/starterpack.go
package models

import "strings"

type RawStarterPack struct {
	ID          string    `json:"id"`
	AltID       string    `json:"_id"`
	Name        Name      `json:"name"`
	VendorIDs   []string  `json:"vendorIds"`
	Description string    `json:"description"`
	Amount      FlexFloat `json:"amount"`
	Status      FlexBool  `json:"status"`
}

type StarterPackView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	VendorCount int     `json:"vendor_count"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

func (s StarterPackView) Key() string { return s.ID }

func (s StarterPackView) SearchText() string {
	return strings.ToLower(s.Name + " " + s.Description)
}

func NormalizeStarterPack(raw RawStarterPack) StarterPackView {
	status := StatusInactive
	if bool(raw.Status) {
		status = StatusActive
	}

	return StarterPackView{
		ID:          firstNonEmpty(raw.ID, raw.AltID),
		Name:        raw.Name.Or(UnnamedFallback),
		VendorCount: len(raw.VendorIDs),
		Description: raw.Description,
		Amount:      float64(raw.Amount),
		Status:      status,
	}
}

func NormalizeStarterPacks(raw []RawStarterPack) []StarterPackView {
	views := make([]StarterPackView, 0, len(raw))
	for _, r := range raw {
		views = append(views, NormalizeStarterPack(r))
	}
	return views
}
