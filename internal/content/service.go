package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

type querier interface {
	IsConfigured() bool
	Query(ctx context.Context, groq string, params map[string]any, dst any) (bool, error)
}

type ServiceParams struct {
	Client querier
	Logger *logger.Logger
}

// Service exposes the storefront's CMS reads. It never fails: an unconfigured
// or failing CMS degrades to empty results and is logged.
type Service struct {
	client querier
	logg   *logger.Logger
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Client == nil {
		return nil, fmt.Errorf("cms client required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{client: params.Client, logg: params.Logger}, nil
}

func (s *Service) Configured() bool {
	return s.client.IsConfigured()
}

func (s *Service) Products(ctx context.Context) []Product {
	return queryList[Product](ctx, s, "products", productsQuery, nil)
}

// ProductBySlug returns nil when the product does not exist or the CMS is unavailable.
func (s *Service) ProductBySlug(ctx context.Context, slug string) *ProductDetail {
	var out ProductDetail
	if !s.run(ctx, "product_by_slug", productBySlugQuery, map[string]any{"slug": slug}, &out) {
		return nil
	}
	return &out
}

func (s *Service) Featured(ctx context.Context) []Product {
	return queryList[Product](ctx, s, "featured", featuredQuery, nil)
}

func (s *Service) Bestsellers(ctx context.Context) []Product {
	return queryList[Product](ctx, s, "bestsellers", bestsellersQuery, nil)
}

func (s *Service) NewArrivals(ctx context.Context) []Product {
	return queryList[Product](ctx, s, "new_arrivals", newArrivalsQuery, nil)
}

func (s *Service) ByCategory(ctx context.Context, categorySlug string) []Product {
	return queryList[Product](ctx, s, "by_category", productsByCategoryQuery, map[string]any{"categorySlug": categorySlug})
}

func (s *Service) Related(ctx context.Context, categoryID, productID string) []Product {
	return queryList[Product](ctx, s, "related", relatedProductsQuery, map[string]any{
		"categoryId": categoryID,
		"productId":  productID,
	})
}

func (s *Service) Categories(ctx context.Context) []Category {
	return queryList[Category](ctx, s, "categories", categoriesQuery, nil)
}

func (s *Service) HeroBanners(ctx context.Context) []Banner {
	return queryList[Banner](ctx, s, "hero_banners", heroBannersQuery, nil)
}

func (s *Service) Reviews(ctx context.Context, productID string) []Review {
	return queryList[Review](ctx, s, "reviews", productReviewsQuery, map[string]any{"productId": productID})
}

// Settings returns nil when no settings document exists.
func (s *Service) Settings(ctx context.Context) *SiteSettings {
	var out SiteSettings
	if !s.run(ctx, "site_settings", siteSettingsQuery, nil, &out) {
		return nil
	}
	return &out
}

func (s *Service) AdminProducts(ctx context.Context) []Product {
	return queryList[Product](ctx, s, "admin_products", adminProductsQuery, nil)
}

func (s *Service) LowStock(ctx context.Context) []LowStockItem {
	return queryList[LowStockItem](ctx, s, "admin_low_stock", adminLowStockQuery, nil)
}

func (s *Service) Stats(ctx context.Context) Stats {
	var out Stats
	s.run(ctx, "admin_stats", adminStatsQuery, nil, &out)
	return out
}

func queryList[T any](ctx context.Context, s *Service, name, groq string, params map[string]any) []T {
	out := []T{}
	if !s.run(ctx, name, groq, params, &out) || out == nil {
		return []T{}
	}
	return out
}

func (s *Service) run(ctx context.Context, name, groq string, params map[string]any, dst any) bool {
	found, err := s.client.Query(ctx, groq, params, dst)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return false
		}
		s.logg.Warn(s.logg.WithFields(ctx, map[string]any{"query": name, "error": err.Error()}), "cms query degraded to empty result")
		return false
	}
	return found
}
