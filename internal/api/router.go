package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/shopity/internal/api/handlers"
	"github.com/aaravmahajanofficial/shopity/internal/api/middleware"
	service "github.com/aaravmahajanofficial/shopity/internal/services"
)

// Services are the collaborators behind the local HTTP API.
type Services struct {
	Catalog       service.ProductService
	Cart          service.CartService
	Wishlist      service.WishlistService
	Checkout      service.CheckoutService
	Orders        service.OrderService
	Session       service.SessionService
	Notifications handlers.NotificationFeed
}

// RegisterRoutes mounts the /api/v1 routes on mux.
func RegisterRoutes(mux *http.ServeMux, s *Services) {

	productHandler := handlers.NewProductHandler(s.Catalog)
	cartHandler := handlers.NewCartHandler(s.Cart, s.Checkout)
	wishlistHandler := handlers.NewWishlistHandler(s.Wishlist)
	orderHandler := handlers.NewOrderHandler(s.Orders)
	sessionHandler := handlers.NewSessionHandler(s.Session)
	notificationHandler := handlers.NewNotificationHandler(s.Notifications)
	guard := middleware.NewSessionGuard(s.Session)

	mux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	mux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	mux.HandleFunc("POST /api/v1/products/{id}/reviews", productHandler.AddReview())

	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	mux.HandleFunc("GET /api/v1/cart/persisted", cartHandler.GetPersistedCart())
	mux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	mux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	mux.HandleFunc("POST /api/v1/cart/items/{id}/increase", cartHandler.IncreaseQuantity())
	mux.HandleFunc("POST /api/v1/cart/items/{id}/decrease", cartHandler.DecreaseQuantity())
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())

	mux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist())
	mux.HandleFunc("POST /api/v1/wishlist", wishlistHandler.AddItem())
	mux.HandleFunc("GET /api/v1/wishlist/persisted", wishlistHandler.GetPersistedWishlist())
	mux.HandleFunc("DELETE /api/v1/wishlist/items/{id}", wishlistHandler.RemoveItem())

	mux.HandleFunc("POST /api/v1/checkout", guard.RequireSession(orderHandler.PlaceOrder()))
	mux.HandleFunc("GET /api/v1/checkout/state", orderHandler.GetCheckoutState())
	mux.HandleFunc("GET /api/v1/orders", guard.RequireSession(orderHandler.ListOrders()))

	mux.HandleFunc("GET /api/v1/session", sessionHandler.GetSession())
	mux.HandleFunc("POST /api/v1/session/login", sessionHandler.Login())
	mux.HandleFunc("POST /api/v1/session/register", sessionHandler.Register())
	mux.HandleFunc("DELETE /api/v1/session", sessionHandler.Logout())
	mux.HandleFunc("POST /api/v1/session/addresses", guard.RequireSession(sessionHandler.AddAddress()))

	mux.HandleFunc("GET /api/v1/notifications", notificationHandler.ListNotifications())
}
