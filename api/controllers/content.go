package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/modeststyle-backend/api/responses"
	"github.com/angelmondragon/modeststyle-backend/api/validators"
	"github.com/angelmondragon/modeststyle-backend/internal/content"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

// contentReader is the CMS read surface. Every method degrades to an empty result,
// so handlers never see an error from it.
type contentReader interface {
	Products(ctx context.Context) []content.Product
	ProductBySlug(ctx context.Context, slug string) *content.ProductDetail
	Featured(ctx context.Context) []content.Product
	Bestsellers(ctx context.Context) []content.Product
	NewArrivals(ctx context.Context) []content.Product
	ByCategory(ctx context.Context, categorySlug string) []content.Product
	Related(ctx context.Context, categoryID, productID string) []content.Product
	Categories(ctx context.Context) []content.Category
	HeroBanners(ctx context.Context) []content.Banner
	Reviews(ctx context.Context, productID string) []content.Review
	Settings(ctx context.Context) *content.SiteSettings
	AdminProducts(ctx context.Context) []content.Product
	LowStock(ctx context.Context) []content.LowStockItem
	Stats(ctx context.Context) content.Stats
}

type productPage struct {
	Product *content.ProductDetail `json:"product"`
	Related []content.Product      `json:"related"`
	Reviews []content.Review       `json:"reviews"`
}

// ContentProducts lists products, narrowed by ?category=<slug> when present.
func ContentProducts(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if category := validators.QueryString(r, "category", 96); category != "" {
			responses.WriteSuccess(w, svc.ByCategory(r.Context(), category))
			return
		}
		responses.WriteSuccess(w, svc.Products(r.Context()))
	}
}

// ContentProduct returns the product page: detail, related products and approved reviews.
func ContentProduct(svc contentReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		product := svc.ProductBySlug(ctx, slug)
		if product == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		page := productPage{Product: product, Related: []content.Product{}, Reviews: svc.Reviews(ctx, product.ID)}
		if product.Category != nil && product.Category.ID != "" {
			page.Related = svc.Related(ctx, product.Category.ID, product.ID)
		}
		responses.WriteSuccess(w, page)
	}
}

func ContentFeatured(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Featured(r.Context()))
	}
}

func ContentBestsellers(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Bestsellers(r.Context()))
	}
}

func ContentNewArrivals(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.NewArrivals(r.Context()))
	}
}

func ContentCategories(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Categories(r.Context()))
	}
}

func ContentBanners(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.HeroBanners(r.Context()))
	}
}

// ContentSettings returns null data when no settings document exists.
func ContentSettings(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Settings(r.Context()))
	}
}

func ContentSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, content.Schemas())
	}
}

func AdminContentProducts(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.AdminProducts(r.Context()))
	}
}

func AdminLowStock(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.LowStock(r.Context()))
	}
}

func AdminContentStats(svc contentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Stats(r.Context()))
	}
}
