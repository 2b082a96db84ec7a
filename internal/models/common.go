// internal/models/common.go
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Display labels for normalized statuses. View models carry these closed
// sets, never raw backend strings.
const (
	StatusApproved = "Approved"
	StatusPending  = "Pending"
	StatusRejected = "Rejected"
	StatusResolved = "Resolved"

	StatusActive   = "Active"
	StatusArchived = "Archived"
	StatusInactive = "Inactive"

	BannerActive   = "Active"
	BannerExpired  = "Expired"
	BannerDisabled = "Disabled"

	UnnamedFallback = "Unnamed"
	UnknownSeller   = "Unknown Seller"
	NotAvailable    = "N/A"
)

// Name decodes the backend's inconsistent name shapes: a plain string, an
// object carrying a name/fullName/title field, or anything else. Decoding
// never fails; malformed input degrades to an empty value.
type Name struct {
	value string
}

func (n *Name) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		n.value = strings.TrimSpace(s)
		return nil
	}

	var obj struct {
		Name     string `json:"name"`
		FullName string `json:"fullName"`
		Title    string `json:"title"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		n.value = strings.TrimSpace(firstNonEmpty(obj.FullName, obj.Name, obj.Title))
		return nil
	}

	n.value = ""
	return nil
}

func (n Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

// Or returns the decoded display string, or fallback when nothing usable was
// present.
func (n Name) Or(fallback string) string {
	if n.value == "" {
		return fallback
	}
	return n.value
}

func (n Name) IsSet() bool { return n.value != "" }

// FlexFloat decodes a number that may arrive as a JSON number, a numeric
// string, or garbage. Garbage decodes to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*f = FlexFloat(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexFloat(parsed)
			return nil
		}
	}

	*f = 0
	return nil
}

// FlexBool decodes a boolean that may arrive as a bool, a "true"/"false"
// string, or a 0/1 number. Anything else decodes to false.
type FlexBool bool

func (fb *FlexBool) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*fb = FlexBool(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*fb = FlexBool(strings.EqualFold(strings.TrimSpace(s), "true"))
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*fb = n != 0
		return nil
	}

	*fb = false
	return nil
}

// NormalizeTriState maps a raw approval status string onto the closed
// Approved/Pending/Rejected set. Unknown values are treated as pending.
func NormalizeTriState(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved", "approve", "active":
		return StatusApproved
	case "rejected", "reject", "declined":
		return StatusRejected
	default:
		return StatusPending
	}
}

// Capitalize uppercases the first letter of a lowercase backend status for
// display ("pending" -> "Pending").
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
