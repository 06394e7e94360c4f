package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/modeststyle-backend/api/controllers"
	"github.com/angelmondragon/modeststyle-backend/api/middleware"
	"github.com/angelmondragon/modeststyle-backend/internal/access"
	"github.com/angelmondragon/modeststyle-backend/internal/admin"
	"github.com/angelmondragon/modeststyle-backend/internal/cart"
	"github.com/angelmondragon/modeststyle-backend/internal/checkout"
	"github.com/angelmondragon/modeststyle-backend/internal/content"
	"github.com/angelmondragon/modeststyle-backend/internal/forwarding"
	"github.com/angelmondragon/modeststyle-backend/internal/wishlist"
	"github.com/angelmondragon/modeststyle-backend/pkg/config"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

// Deps is everything the HTTP surface is built from. Pingers may hold nil
// entries for backends that are not configured.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	Registry   *prometheus.Registry
	Pingers    map[string]controllers.Pinger
	Sessions   access.SessionResolver
	Cart       *cart.Service
	Wishlist   *wishlist.Service
	Checkout   *checkout.Service
	Forwarding *forwarding.Service
	Content    *content.Service
	Admin      *admin.Service
}

func NewRouter(d Deps) http.Handler {
	cfg, logg := d.Config, d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.AllowedOrigins),
		middleware.Gate(d.Sessions, logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.Pingers))
	})
	if d.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	// Gateways and the backend call these without a browser session.
	r.Route("/api/payment", func(r chi.Router) {
		r.Post("/safepay", controllers.PaymentCreate(d.Forwarding, enums.GatewaySafepay, logg))
		r.Post("/jazzcash", controllers.PaymentCreate(d.Forwarding, enums.GatewayJazzCash, logg))
		r.Post("/easypaisa", controllers.PaymentCreate(d.Forwarding, enums.GatewayEasyPaisa, logg))
		r.Post("/cod", controllers.PaymentCreate(d.Forwarding, enums.GatewayCOD, logg))
		r.Post("/webhook", controllers.PaymentWebhook(d.Forwarding, logg))
	})

	r.Route("/api/content", func(r chi.Router) {
		r.Get("/products", controllers.ContentProducts(d.Content))
		r.Get("/products/{slug}", controllers.ContentProduct(d.Content, logg))
		r.Get("/featured", controllers.ContentFeatured(d.Content))
		r.Get("/bestsellers", controllers.ContentBestsellers(d.Content))
		r.Get("/new-arrivals", controllers.ContentNewArrivals(d.Content))
		r.Get("/categories", controllers.ContentCategories(d.Content))
		r.Get("/banners", controllers.ContentBanners(d.Content))
		r.Get("/settings", controllers.ContentSettings(d.Content))
		r.Get("/schema", controllers.ContentSchema())
	})

	r.Route("/api/ai", func(r chi.Router) {
		r.Post("/chat", controllers.AIChat(d.Admin, logg))
		r.Post("/imagine", controllers.AIImagine(d.Admin, logg))
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/orders", controllers.AdminListOrders(d.Admin, logg))
		r.Get("/orders/{orderId}", controllers.AdminGetOrder(d.Admin, logg))
		r.Patch("/orders/{orderId}", controllers.AdminUpdateOrderStatus(d.Admin, logg))
		r.Get("/users", controllers.AdminListUsers(d.Admin, logg))
		r.Get("/stats", controllers.AdminStats(d.Admin, logg))
		r.Get("/products", controllers.AdminContentProducts(d.Content))
		r.Get("/low-stock", controllers.AdminLowStock(d.Content))
		r.Get("/content-stats", controllers.AdminContentStats(d.Content))
	})

	r.Route("/api/account", func(r chi.Router) {
		r.Get("/orders", controllers.AccountOrders(d.Admin, logg))
	})

	// Storefront state is keyed by the anonymous client session.
	r.Group(func(r chi.Router) {
		r.Use(middleware.ClientSession(cfg.Session, cfg.App.IsProd(), logg))

		r.Route("/api/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(d.Cart, logg))
			r.Delete("/", controllers.CartClear(d.Cart, logg))
			r.Post("/items", controllers.CartAddItem(d.Cart, logg))
			r.Patch("/items", controllers.CartUpdateQuantity(d.Cart, logg))
			r.Delete("/items", controllers.CartRemoveItem(d.Cart, logg))
			r.Post("/toggle", controllers.CartToggle(d.Cart, logg))
			r.Put("/open", controllers.CartSetOpen(d.Cart, logg))
		})

		r.Route("/api/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistFetch(d.Wishlist, logg))
			r.Delete("/", controllers.WishlistClear(d.Wishlist, logg))
			r.Post("/toggle", controllers.WishlistToggle(d.Wishlist, logg))
			r.Get("/{id}", controllers.WishlistContains(d.Wishlist, logg))
		})

		r.Route("/api/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutFetch(d.Checkout, logg))
			r.Get("/payment-options", controllers.CheckoutPaymentOptions())
			r.Put("/info", controllers.CheckoutUpdateInfo(d.Checkout, logg))
			r.Post("/advance", controllers.CheckoutAdvance(d.Checkout, logg))
			r.Post("/step", controllers.CheckoutGoTo(d.Checkout, logg))
			r.Put("/shipping", controllers.CheckoutSetShipping(d.Checkout, logg))
			r.Put("/payment-method", controllers.CheckoutSelectPayment(d.Checkout, logg))
			r.Put("/mobile", controllers.CheckoutSetMobile(d.Checkout, logg))
			r.Post("/promo", controllers.CheckoutApplyPromo(d.Checkout, logg))
			r.Post("/submit", controllers.CheckoutSubmit(d.Checkout, logg))
		})
	})

	r.Get("/checkout/success", controllers.CheckoutSuccess())

	return r
}
