// internal/models/user.go
package models

import "strings"

// RawUser comes from GET /v1/users. There is no stored status field; display
// status is derived from role and the verified-seller flag.
type RawUser struct {
	ID               string   `json:"id"`
	AltID            string   `json:"_id"`
	FullName         Name     `json:"fullName"`
	Email            string   `json:"email"`
	Role             string   `json:"role"`
	IsVerifiedSeller FlexBool `json:"isVerifiedSeller"`
	Suspended        FlexBool `json:"suspended"`
	CreatedAt        string   `json:"createdAt"`
}

type UserView struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	IsVerifiedSeller bool   `json:"is_verified_seller"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}

func (u UserView) Key() string { return u.ID }

func (u UserView) SearchText() string {
	return strings.ToLower(u.FullName + " " + u.Email + " " + u.Role + " " + u.Status)
}

// DeriveUserStatus computes the display status: suspension wins, then role,
// then seller verification.
func DeriveUserStatus(role string, verifiedSeller, suspended bool) string {
	if suspended {
		return "Suspended"
	}
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		return "Admin"
	case "seller":
		if verifiedSeller {
			return "Verified Seller"
		}
		return "Unverified Seller"
	default:
		return "Buyer"
	}
}

func NormalizeUser(raw RawUser) UserView {
	return UserView{
		ID:               firstNonEmpty(raw.ID, raw.AltID),
		FullName:         raw.FullName.Or(UnnamedFallback),
		Email:            raw.Email,
		Role:             strings.ToLower(strings.TrimSpace(raw.Role)),
		IsVerifiedSeller: bool(raw.IsVerifiedSeller),
		Status:           DeriveUserStatus(raw.Role, bool(raw.IsVerifiedSeller), bool(raw.Suspended)),
		CreatedAt:        raw.CreatedAt,
	}
}

func NormalizeUsers(raw []RawUser) []UserView {
	views := make([]UserView, 0, len(raw))
	for _, r := range raw {
		views = append(views, NormalizeUser(r))
	}
	return views
}
