package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"order_dash_v1/internal/controller"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/model"

	_ "order_dash_v1/docs"
)

// Deps 路由依赖
type Deps struct {
	JWT           *middleware.JWTManager
	StoreChecker  middleware.StoreChecker
	MemberChecker middleware.MemberChecker

	Auth     *controller.AuthController
	Store    *controller.StoreController
	User     *controller.UserController
	Customer *controller.CustomerController
	Product  *controller.ProductController
	Order    *controller.OrderController
	Setting  *controller.SettingController

	// UploadDir 本地存储目录，非空时挂载到 UploadURL
	UploadDir string
	UploadURL string
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, d Deps) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if d.UploadDir != "" && d.UploadURL != "" {
		r.Static(d.UploadURL, d.UploadDir)
	}

	viewer := middleware.RequireRole(model.RoleViewer)
	entry := middleware.RequireRole(model.RoleDataEntry)
	admin := middleware.RequireRole(model.RoleAdmin)

	tenantChain := []gin.HandlerFunc{
		d.JWT.JWTAuth(middleware.KindTenant),
		middleware.TenantContext(d.StoreChecker, d.MemberChecker),
		middleware.AuditContext(),
	}

	api := r.Group("/api")
	{
		// auth 认证组
		auth := api.Group("/auth")
		{
			// POST /api/auth/login
			auth.POST("/login", d.Auth.Login)
			// POST /api/auth/refresh
			auth.POST("/refresh", d.Auth.Refresh)

			member := auth.Group("", tenantChain...)
			member.GET("/me", d.Auth.Me)
			member.POST("/logout", d.Auth.Logout)
			member.PUT("/password", viewer, d.User.ChangePassword)
		}

		// stores 公开的店铺解析
		stores := api.Group("/stores")
		{
			// GET /api/stores/resolve/:slug
			stores.GET("/resolve/:slug", d.Auth.ResolveSlug)
		}

		// store 店铺内业务，店铺 ID 只来自 token
		store := api.Group("/store", tenantChain...)
		{
			store.GET("/dashboard", viewer, d.Setting.Dashboard)

			customers := store.Group("/customers")
			{
				customers.GET("", viewer, d.Customer.List)
				customers.GET("/:id", viewer, d.Customer.Get)
				customers.POST("", entry, d.Customer.Create)
				customers.PUT("/:id", entry, d.Customer.Update)
				customers.DELETE("/:id", admin, d.Customer.Delete)
			}

			products := store.Group("/products")
			{
				products.GET("", viewer, d.Product.List)
				products.GET("/:id", viewer, d.Product.Get)
				products.POST("", entry, d.Product.Create)
				products.PUT("/:id", entry, d.Product.Update)
				products.DELETE("/:id", admin, d.Product.Delete)
			}

			orders := store.Group("/orders")
			{
				// 静态路径放在 /:id 之前注册
				orders.GET("/export", viewer, d.Order.Export)
				orders.GET("", viewer, d.Order.List)
				orders.GET("/:id", viewer, d.Order.Get)
				orders.POST("", entry, d.Order.Create)
				orders.PUT("/:id", entry, d.Order.Update)
				orders.PUT("/:id/status", entry, d.Order.UpdateStatus)
				orders.DELETE("/:id", admin, d.Order.Delete)

				orders.GET("/:id/invoice", viewer, d.Order.Invoice)
				orders.POST("/:id/invoice/archive", entry, d.Order.ArchiveInvoice)
				orders.GET("/:id/whatsapp", viewer, d.Order.WhatsApp)
			}

			statuses := store.Group("/statuses")
			{
				statuses.GET("", viewer, d.Setting.ListStatuses)
				statuses.POST("", admin, d.Setting.CreateStatus)
				statuses.PUT("/:id", admin, d.Setting.UpdateStatus)
				statuses.DELETE("/:id", admin, d.Setting.DeleteStatus)
			}

			store.GET("/settings", viewer, d.Setting.GetSettings)
			store.PUT("/settings", admin, d.Setting.UpdateSettings)

			users := store.Group("/users", admin)
			{
				users.GET("", d.User.List)
				users.GET("/:id", d.User.Get)
				users.POST("", d.User.Create)
				users.PUT("/:id", d.User.Update)
				users.DELETE("/:id", d.User.Delete)
				users.PUT("/:id/password", d.User.ResetPassword)
			}
		}

		// admin 平台管理
		api.POST("/admin/login", d.Auth.AdminLogin)
		platform := api.Group("/admin", d.JWT.JWTAuth(middleware.KindPlatform))
		{
			platform.POST("/logout", d.Auth.Logout)

			platform.GET("/stores", d.Store.List)
			platform.POST("/stores", d.Store.Create)
			platform.GET("/stores/:store_id", d.Store.Get)
			platform.PUT("/stores/:store_id", d.Store.Update)
			platform.PUT("/stores/:store_id/slug", d.Store.Rename)
			platform.PUT("/stores/:store_id/status", d.Store.SetActive)

			platform.GET("/stores/:store_id/users", d.Store.ListUsers)
			platform.POST("/stores/:store_id/users", d.Store.CreateUser)
			platform.PUT("/stores/:store_id/users/:id", d.Store.UpdateUser)
			platform.PUT("/stores/:store_id/users/:id/password", d.Store.ResetUserPassword)
		}
	}
}
