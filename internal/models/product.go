// internal/models/product.go
package models

import "strings"

// RawProduct is the wire shape from GET /admin/products. Field presence and
// typing are not guaranteed; the approver may appear under seller or vendor.
type RawProduct struct {
	ID         string    `json:"id"`
	AltID      string    `json:"_id"`
	ProductID  string    `json:"productId"`
	Name       Name      `json:"name"`
	Price      FlexFloat `json:"price"`
	Status     string    `json:"status"`
	Seller     Name      `json:"seller"`
	Vendor     Name      `json:"vendor"`
	Categories []Name    `json:"categories"`
	Images     []string  `json:"images"`
	CreatedAt  string    `json:"createdAt"`
}

type ProductView struct {
	ID         string   `json:"id"`
	ProductID  string   `json:"product_id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Status     string   `json:"status"`
	Seller     string   `json:"seller"`
	Categories []string `json:"categories"`
	Images     []string `json:"images"`
	CreatedAt  string   `json:"created_at"`
}

func (p ProductView) Key() string { return p.ID }

func (p ProductView) SearchText() string {
	return strings.ToLower(p.Name + " " + p.Seller + " " + p.Status + " " + strings.Join(p.Categories, " "))
}

func NormalizeProduct(raw RawProduct) ProductView {
	id := firstNonEmpty(raw.ID, raw.AltID, raw.ProductID)

	seller := raw.Seller.Or("")
	if seller == "" {
		seller = raw.Vendor.Or(UnknownSeller)
	}

	categories := make([]string, 0, len(raw.Categories))
	for _, c := range raw.Categories {
		if c.IsSet() {
			categories = append(categories, c.Or(UnnamedFallback))
		}
	}

	images := raw.Images
	if images == nil {
		images = []string{}
	}

	return ProductView{
		ID:         id,
		ProductID:  firstNonEmpty(raw.ProductID, id),
		Name:       raw.Name.Or(UnnamedFallback),
		Price:      float64(raw.Price),
		Status:     NormalizeTriState(raw.Status),
		Seller:     seller,
		Categories: categories,
		Images:     images,
		CreatedAt:  raw.CreatedAt,
	}
}

func NormalizeProducts(raw []RawProduct) []ProductView {
	views := make([]ProductView, 0, len(raw))
	for _, r := range raw {
		views = append(views, NormalizeProduct(r))
	}
	return views
}
