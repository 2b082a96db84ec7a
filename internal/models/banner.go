// internal/models/banner.go
package models

import "strings"

// RawBanner comes from GET /v1/banners. The backend stores no status enum;
// display status is derived from the active boolean and the disabled flag.
type RawBanner struct {
	ID        string   `json:"id"`
	AltID     string   `json:"_id"`
	Title     Name     `json:"title"`
	Type      string   `json:"type"`
	Device    string   `json:"device"`
	Position  string   `json:"position"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Status    FlexBool `json:"status"`
	Disabled  FlexBool `json:"disabled"`
	Image     string   `json:"image"`
}

type BannerView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Device    string `json:"device"`
	Position  string `json:"position"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Image     string `json:"image"`
}

func (b BannerView) Key() string { return b.ID }

func (b BannerView) SearchText() string {
	return strings.ToLower(b.Title + " " + b.Type + " " + b.Device + " " + b.Position)
}

// BannerLabel maps the stored booleans to the three labels the dashboard
// color-codes. An inactive banner is Expired, not Inactive.
func BannerLabel(active, disabled bool) string {
	if disabled {
		return BannerDisabled
	}
	if active {
		return BannerActive
	}
	return BannerExpired
}

func NormalizeBanner(raw RawBanner) BannerView {
	return BannerView{
		ID:        firstNonEmpty(raw.ID, raw.AltID),
		Title:     raw.Title.Or(UnnamedFallback),
		Type:      raw.Type,
		Device:    raw.Device,
		Position:  raw.Position,
		StartDate: raw.StartDate,
		EndDate:   raw.EndDate,
		Status:    BannerLabel(bool(raw.Status), bool(raw.Disabled)),
		Image:     raw.Image,
	}
}

func NormalizeBanners(raw []RawBanner) []BannerView {
	views := make([]BannerView, 0, len(raw))
	for _, r := range raw {
		views = append(views, NormalizeBanner(r))
	}
	return views
}
