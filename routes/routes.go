package routes

import (
	"vitrine/controllers"
	"vitrine/middleware"

	"github.com/gin-gonic/gin"
)

// RateLimits carries the per-zone request-per-minute thresholds.
type RateLimits struct {
	Vitrine int
	Admin   int
	API     int
}

// Controllers bundles everything Register needs.
type Controllers struct {
	Catalog     *controllers.CatalogController
	Search      *controllers.SearchController
	Cart        *controllers.CartController
	Checkout    *controllers.CheckoutController
	AdminOrders *controllers.AdminOrdersController
	AdminCat    *controllers.AdminCatalogController
	AdminAuth   *controllers.AdminAuthController
}

// Register wires the public storefront, the versioned API and the admin
// panel, each behind its own rate limit.
func Register(r *gin.Engine, c Controllers, jwtSecret string, limits RateLimits) {
	vitrine := r.Group("/vitrine")
	vitrine.Use(middleware.RateLimit(limits.Vitrine))
	{
		vitrine.GET("/checkout", c.Checkout.Preview)
		vitrine.POST("/checkout", c.Checkout.Create)
		vitrine.GET("/order_confirmation/:id", c.Checkout.Confirmation)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(limits.API))
	{
		api.GET("/brands", c.Catalog.ListBrands)
		api.GET("/brands/:id", c.Catalog.GetBrand)
		api.GET("/brands_only", c.Catalog.OnlyBrands)
		api.GET("/parfums", c.Catalog.ListParfums)
		api.GET("/parfums/:id", c.Catalog.GetParfum)
		api.GET("/search", c.Search.Public)

		api.GET("/cart", c.Cart.Get)
		api.GET("/cart/events", c.Cart.Events)
		api.POST("/cart_items", c.Cart.Add)
		api.PATCH("/cart_items", c.Cart.Update)
		api.DELETE("/cart_items", c.Cart.Remove)
	}

	admin := r.Group("/admin_panel")
	admin.Use(middleware.RateLimit(limits.Admin))
	{
		admin.POST("/login", c.AdminAuth.Login)

		authed := admin.Group("")
		authed.Use(middleware.RequireAdmin(jwtSecret))
		{
			authed.GET("/orders", c.AdminOrders.Index)
			authed.GET("/orders/:id", c.AdminOrders.Show)
			authed.PATCH("/orders/:id/update_status", c.AdminOrders.UpdateStatus)
			authed.DELETE("/orders/:id", c.AdminOrders.Destroy)

			authed.GET("/brands", c.AdminCat.ListBrands)
			authed.POST("/brands", c.AdminCat.CreateBrand)
			authed.PATCH("/brands/:id", c.AdminCat.UpdateBrand)
			authed.DELETE("/brands/:id", c.AdminCat.DeleteBrand)

			authed.GET("/parfums", c.AdminCat.ListParfums)
			authed.GET("/parfums/:id", c.AdminCat.ShowParfum)
			authed.POST("/parfums", c.AdminCat.CreateParfum)
			authed.PATCH("/parfums/:id", c.AdminCat.UpdateParfum)
			authed.PATCH("/parfums/:id/update_image", c.AdminCat.UpdateParfumImage)
			authed.DELETE("/parfums/:id", c.AdminCat.DeleteParfum)

			authed.GET("/search", c.Search.Admin)
			authed.POST("/invite_admin", c.AdminAuth.Invite)
		}
	}

	r.GET("/up", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})
}
