package content

// Field describes one document field as editors see it in the studio.
type Field struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Type     string   `json:"type"`
	Required bool     `json:"required,omitempty"`
	To       string   `json:"to,omitempty"`
	Options  []string `json:"options,omitempty"`
	Initial  any      `json:"initialValue,omitempty"`
}

// Schema is a read-only descriptor of a CMS document type.
type Schema struct {
	Name   string  `json:"name"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Schemas returns the document types the storefront reads. Callers get a fresh copy.
func Schemas() []Schema {
	return []Schema{
		{
			Name:  "product",
			Title: "Product",
			Fields: []Field{
				{Name: "name", Title: "Name", Type: "string", Required: true},
				{Name: "slug", Title: "Slug", Type: "slug", Required: true},
				{Name: "description", Title: "Description", Type: "text"},
				{Name: "body", Title: "Product Story", Type: "array"},
				{Name: "price", Title: "Price (PKR)", Type: "number", Required: true},
				{Name: "compareAtPrice", Title: "Compare At Price (PKR)", Type: "number"},
				{Name: "images", Title: "Images", Type: "array", Required: true},
				{Name: "category", Title: "Category", Type: "reference", To: "category", Required: true},
				{Name: "subcategory", Title: "Subcategory", Type: "reference", To: "category"},
				{Name: "sizes", Title: "Available Sizes", Type: "array", Options: []string{"free", "xs", "s", "m", "l", "xl", "xxl", "52", "54", "56", "58"}},
				{Name: "colors", Title: "Available Colors", Type: "array"},
				{Name: "material", Title: "Material", Type: "string", Options: []string{"Georgette", "Chiffon", "Crinkle", "Silk", "Lawn", "Cotton", "Polyester", "Cashmere", "Nida", "Jersey", "Linen"}},
				{Name: "occasion", Title: "Occasion", Type: "array", Options: []string{"casual", "office", "formal", "party", "bridal", "everyday"}},
				{Name: "stock", Title: "Stock Quantity", Type: "number", Initial: 50},
				{Name: "sku", Title: "SKU", Type: "string"},
				{Name: "isFeatured", Title: "Featured Product", Type: "boolean", Initial: false},
				{Name: "isNewArrival", Title: "New Arrival", Type: "boolean", Initial: false},
				{Name: "isBestseller", Title: "Bestseller", Type: "boolean", Initial: false},
				{Name: "rating", Title: "Average Rating", Type: "number", Initial: 0},
				{Name: "reviewCount", Title: "Review Count", Type: "number", Initial: 0},
				{Name: "tags", Title: "Tags", Type: "array"},
			},
		},
		{
			Name:  "category",
			Title: "Category",
			Fields: []Field{
				{Name: "name", Title: "Name", Type: "string", Required: true},
				{Name: "slug", Title: "Slug", Type: "slug", Required: true},
				{Name: "description", Title: "Description", Type: "text"},
				{Name: "image", Title: "Image", Type: "image"},
				{Name: "parent", Title: "Parent Category", Type: "reference", To: "category"},
				{Name: "order", Title: "Display Order", Type: "number", Initial: 0},
			},
		},
		{
			Name:  "banner",
			Title: "Banner",
			Fields: []Field{
				{Name: "title", Title: "Title", Type: "string", Required: true},
				{Name: "subtitle", Title: "Subtitle", Type: "string"},
				{Name: "image", Title: "Banner Image", Type: "image", Required: true},
				{Name: "link", Title: "Link URL", Type: "string"},
				{Name: "buttonText", Title: "Button Text", Type: "string", Initial: "Shop Now"},
				{Name: "isActive", Title: "Active", Type: "boolean", Initial: true},
				{Name: "placement", Title: "Placement", Type: "string", Options: []string{"hero", "mid", "footer"}, Initial: "hero"},
				{Name: "order", Title: "Display Order", Type: "number", Initial: 0},
			},
		},
		{
			Name:  "siteSettings",
			Title: "Site Settings",
			Fields: []Field{
				{Name: "siteName", Title: "Site Name", Type: "string", Initial: "ModestStyle.pk"},
				{Name: "tagline", Title: "Tagline", Type: "string", Initial: "Elegance in Every Drape"},
				{Name: "freeShippingThreshold", Title: "Free Shipping Threshold (PKR)", Type: "number", Initial: 5000},
				{Name: "announcement", Title: "Announcement Bar Text", Type: "string"},
				{Name: "socialLinks", Title: "Social Links", Type: "object"},
			},
		},
		{
			Name:  "review",
			Title: "Review",
			Fields: []Field{
				{Name: "product", Title: "Product", Type: "reference", To: "product", Required: true},
				{Name: "author", Title: "Author Name", Type: "string", Required: true},
				{Name: "rating", Title: "Rating", Type: "number", Required: true},
				{Name: "comment", Title: "Comment", Type: "text"},
				{Name: "clerkUserId", Title: "Identity Provider User ID", Type: "string"},
				{Name: "isApproved", Title: "Approved", Type: "boolean", Initial: false},
			},
		},
	}
}
