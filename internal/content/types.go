package content

import "encoding/json"

type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type CategoryRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product is the listing projection. Fields absent from a given query stay zero.
type Product struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Price          int64    `json:"price"`
	CompareAtPrice *int64   `json:"compareAtPrice,omitempty"`
	Image          string   `json:"image,omitempty"`
	Images         []string `json:"images,omitempty"`
	Category       string   `json:"category,omitempty"`
	CategorySlug   string   `json:"categorySlug,omitempty"`
	Material       string   `json:"material,omitempty"`
	Sizes          []string `json:"sizes,omitempty"`
	Colors         []Color  `json:"colors,omitempty"`
	Stock          *int     `json:"stock,omitempty"`
	IsFeatured     bool     `json:"isFeatured,omitempty"`
	IsNewArrival   bool     `json:"isNewArrival,omitempty"`
	IsBestseller   bool     `json:"isBestseller,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	ReviewCount    int      `json:"reviewCount,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Occasion       []string `json:"occasion,omitempty"`
}

// ProductDetail is the product page projection.
type ProductDetail struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Description    string          `json:"description,omitempty"`
	Body           json.RawMessage `json:"body,omitempty"`
	Price          int64           `json:"price"`
	CompareAtPrice *int64          `json:"compareAtPrice,omitempty"`
	Images         []string        `json:"images,omitempty"`
	Category       *CategoryRef    `json:"category,omitempty"`
	Subcategory    *CategoryRef    `json:"subcategory,omitempty"`
	Material       string          `json:"material,omitempty"`
	Sizes          []string        `json:"sizes,omitempty"`
	Colors         []Color         `json:"colors,omitempty"`
	Stock          *int            `json:"stock,omitempty"`
	SKU            string          `json:"sku,omitempty"`
	IsFeatured     bool            `json:"isFeatured"`
	IsNewArrival   bool            `json:"isNewArrival"`
	IsBestseller   bool            `json:"isBestseller"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"reviewCount"`
	Tags           []string        `json:"tags,omitempty"`
	Occasion       []string        `json:"occasion,omitempty"`
}

type Category struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	Image         string        `json:"image,omitempty"`
	Subcategories []CategoryRef `json:"subcategories"`
}

type Banner struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
	Image      string `json:"image"`
	Link       string `json:"link,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
}

type Review struct {
	ID        string `json:"_id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"_createdAt"`
}

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

type SiteSettings struct {
	SiteName              string       `json:"siteName"`
	Tagline               string       `json:"tagline"`
	FreeShippingThreshold int64        `json:"freeShippingThreshold"`
	Announcement          string       `json:"announcement,omitempty"`
	SocialLinks           *SocialLinks `json:"socialLinks,omitempty"`
}

type LowStockItem struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
	Image string `json:"image,omitempty"`
}

type Stats struct {
	TotalProducts   int `json:"totalProducts"`
	TotalCategories int `json:"totalCategories"`
	LowStockCount   int `json:"lowStockCount"`
	FeaturedCount   int `json:"featuredCount"`
}
