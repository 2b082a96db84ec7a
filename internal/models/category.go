// internal/models/category.go
package models

import "strings"

// RawCategory comes from GET /admin/categories. Subcategory nesting is
// unbounded in theory; two levels (subcategory -> brand names) in practice.
type RawCategory struct {
	ID            string           `json:"id"`
	AltID         string           `json:"_id"`
	Name          Name             `json:"name"`
	Status        FlexBool         `json:"status"`
	Image         string           `json:"image"`
	Subcategories []RawSubcategory `json:"subcategories"`
}

type RawSubcategory struct {
	ID     string   `json:"id"`
	Name   Name     `json:"name"`
	Brands []Name   `json:"brands"`
	Image  string   `json:"image"`
	Status FlexBool `json:"status"`
}

type CategoryView struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Status        string            `json:"status"`
	Image         string            `json:"image"`
	Subcategories []SubcategoryView `json:"subcategories"`
}

type SubcategoryView struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Brands []string `json:"brands"`
	Image  string   `json:"image"`
}

func (c CategoryView) Key() string { return c.ID }

func (c CategoryView) SearchText() string {
	parts := []string{c.Name}
	for _, s := range c.Subcategories {
		parts = append(parts, s.Name)
		parts = append(parts, s.Brands...)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func NormalizeCategory(raw RawCategory) CategoryView {
	subs := make([]SubcategoryView, 0, len(raw.Subcategories))
	for _, s := range raw.Subcategories {
		brands := make([]string, 0, len(s.Brands))
		for _, b := range s.Brands {
			if b.IsSet() {
				brands = append(brands, b.Or(UnnamedFallback))
			}
		}
		subs = append(subs, SubcategoryView{
			ID:     s.ID,
			Name:   s.Name.Or(UnnamedFallback),
			Brands: brands,
			Image:  s.Image,
		})
	}

	status := StatusArchived
	if bool(raw.Status) {
		status = StatusActive
	}

	return CategoryView{
		ID:            firstNonEmpty(raw.ID, raw.AltID),
		Name:          raw.Name.Or(UnnamedFallback),
		Status:        status,
		Image:         raw.Image,
		Subcategories: subs,
	}
}

func NormalizeCategories(raw []RawCategory) []CategoryView {
	views := make([]CategoryView, 0, len(raw))
	for _, r := range raw {
		views = append(views, NormalizeCategory(r))
	}
	return views
}
