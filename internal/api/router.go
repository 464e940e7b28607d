package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplite/commerce-system/internal/api/handler"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// newBase builds an Echo instance with the middleware stack every record
// service shares: recovery, request ids, request logging, Prometheus
// instrumentation, swagger, health probes and the domain error handler.
func newBase(log zerolog.Logger, serviceName string, db *mongo.Database) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(serviceName))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, nil)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}

// NewUserRouter serves users, credentials, addresses and verification
// tokens. The credential username route is the one the gateway's
// authenticator depends on.
func NewUserRouter(
	log zerolog.Logger,
	db *mongo.Database,
	userService ports.UserService,
	credentialService ports.CredentialService,
	addressService ports.AddressService,
	verificationTokenService ports.VerificationTokenService,
) *echo.Echo {
	e := newBase(log, "user_service", db)
	api := e.Group("/api")

	uh := handler.NewUserHandler(userService)
	users := api.Group("/users")
	users.GET("", uh.List)
	users.GET("/:userId", uh.Get)
	users.GET("/username/:username", uh.GetByUsername)
	users.POST("", uh.Create)
	users.PUT("/:userId", uh.Update)
	users.DELETE("/:userId", uh.Delete)

	ch := handler.NewCredentialHandler(credentialService)
	credentials := api.Group("/credentials")
	credentials.GET("", ch.List)
	credentials.GET("/:credentialId", ch.Get)
	credentials.GET("/username/:username", ch.GetByUsername)
	credentials.POST("", ch.Create)
	credentials.PUT("/:credentialId", ch.Update)
	credentials.DELETE("/:credentialId", ch.Delete)

	ah := handler.NewAddressHandler(addressService)
	addresses := api.Group("/addresses")
	addresses.GET("", ah.List)
	addresses.GET("/:addressId", ah.Get)
	addresses.POST("", ah.Create)
	addresses.PUT("/:addressId", ah.Update)
	addresses.DELETE("/:addressId", ah.Delete)

	vh := handler.NewVerificationTokenHandler(verificationTokenService)
	tokens := api.Group("/verification-tokens")
	tokens.GET("", vh.List)
	tokens.GET("/:verificationTokenId", vh.Get)
	tokens.POST("", vh.Create)
	tokens.PUT("/:verificationTokenId", vh.Update)
	tokens.DELETE("/:verificationTokenId", vh.Delete)

	return e
}

// NewProductRouter serves the catalog: products and categories.
func NewProductRouter(
	log zerolog.Logger,
	db *mongo.Database,
	productService ports.ProductService,
	categoryService ports.CategoryService,
) *echo.Echo {
	e := newBase(log, "product_service", db)
	api := e.Group("/api")

	ph := handler.NewProductHandler(productService)
	products := api.Group("/products")
	products.GET("", ph.List)
	products.GET("/:productId", ph.Get)
	products.POST("", ph.Create)
	products.PUT("/:productId", ph.Update)
	products.DELETE("/:productId", ph.Delete)

	ch := handler.NewCategoryHandler(categoryService)
	categories := api.Group("/categories")
	categories.GET("", ch.List)
	categories.GET("/:categoryId", ch.Get)
	categories.POST("", ch.Create)
	categories.PUT("/:categoryId", ch.Update)
	categories.DELETE("/:categoryId", ch.Delete)

	return e
}

// NewOrderRouter serves orders and carts.
func NewOrderRouter(
	log zerolog.Logger,
	db *mongo.Database,
	orderService ports.OrderService,
	cartService ports.CartService,
) *echo.Echo {
	e := newBase(log, "order_service", db)
	api := e.Group("/api")

	oh := handler.NewOrderHandler(orderService)
	orders := api.Group("/orders")
	orders.GET("", oh.List)
	orders.GET("/:orderId", oh.Get)
	orders.POST("", oh.Create)
	orders.PUT("/:orderId", oh.Update)
	orders.DELETE("/:orderId", oh.Delete)

	ch := handler.NewCartHandler(cartService)
	carts := api.Group("/carts")
	carts.GET("", ch.List)
	carts.GET("/:cartId", ch.Get)
	carts.POST("", ch.Create)
	carts.PUT("/:cartId", ch.Update)
	carts.DELETE("/:cartId", ch.Delete)

	return e
}

// NewPaymentRouter serves payments.
func NewPaymentRouter(
	log zerolog.Logger,
	db *mongo.Database,
	paymentService ports.PaymentService,
) *echo.Echo {
	e := newBase(log, "payment_service", db)
	api := e.Group("/api")

	ph := handler.NewPaymentHandler(paymentService)
	payments := api.Group("/payments")
	payments.GET("", ph.List)
	payments.GET("/:paymentId", ph.Get)
	payments.POST("", ph.Create)
	payments.PUT("/:paymentId", ph.Update)
	payments.DELETE("/:paymentId", ph.Delete)

	return e
}

// NewFavouriteRouter serves favourites, addressed by user and product ids.
func NewFavouriteRouter(
	log zerolog.Logger,
	db *mongo.Database,
	favouriteService ports.FavouriteService,
) *echo.Echo {
	e := newBase(log, "favourite_service", db)
	api := e.Group("/api")

	fh := handler.NewFavouriteHandler(favouriteService)
	favourites := api.Group("/favourites")
	favourites.GET("", fh.List)
	favourites.GET("/:userId/:productId", fh.Get)
	favourites.POST("", fh.Create)
	favourites.PUT("", fh.Update)
	favourites.DELETE("/:userId/:productId", fh.Delete)

	return e
}

// NewShippingRouter serves order items, addressed by order and product ids.
func NewShippingRouter(
	log zerolog.Logger,
	db *mongo.Database,
	orderItemService ports.OrderItemService,
) *echo.Echo {
	e := newBase(log, "shipping_service", db)
	api := e.Group("/api")

	sh := handler.NewOrderItemHandler(orderItemService)
	shippings := api.Group("/shippings")
	shippings.GET("", sh.List)
	shippings.GET("/:orderId/:productId", sh.Get)
	shippings.POST("", sh.Create)
	shippings.PUT("", sh.Update)
	shippings.DELETE("/:orderId/:productId", sh.Delete)

	return e
}
