package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/config"
	"hairlab-backoffice/controllers"
	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

// Deps carries the services the handlers are built on.
type Deps struct {
	Config        *config.Config
	Site          *config.SiteContent
	Client        *backend.Client
	Sessions      *services.SessionService
	Billing       *services.BillingService
	ReminderAdmin services.ReminderAdmin
	Reminders     controllers.ReminderRunner
	LoginLimiter  *utils.RateLimiter
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(utils.Recovery())
	r.Use(config.PerformanceLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	images := controllers.NewImageController(d.Client, d.Site)

	site := r.Group("/site")
	{
		controllers.NewSiteController(d.Site).Register(site)
		site.GET("/carousel-images", images.List)
	}

	authController := controllers.NewAuthController(d.Sessions, d.Config.Server.SecureCookie)
	requireAuth := utils.AuthMiddleware(d.Sessions)
	staffOnly := utils.DenyRoles(models.RoleAdmin)

	auth := r.Group("/auth")
	{
		login := []gin.HandlerFunc{authController.Login}
		if d.LoginLimiter != nil {
			login = append([]gin.HandlerFunc{d.LoginLimiter.Limit()}, login...)
		}
		auth.POST("/login", login...)
		auth.POST("/forgot-password", authController.ForgotPassword)

		auth.Use(requireAuth)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(requireAuth)
	{
		api.GET("/navigation", controllers.Navigation)

		controllers.NewBillingController(d.Billing).Register(api.Group("/billing/draft"))

		controllers.NewCustomerController(d.Client).Register(api.Group("/customers"))
		controllers.NewServiceController(d.Client).Register(api.Group("/services"))
		controllers.NewProductController(d.Client).Register(api.Group("/products"))
		controllers.NewAppointmentController(d.Client).Register(api.Group("/appointments"))
		controllers.NewReportController(d.Client).Register(api.Group("/reports"))
		images.Register(api.Group("/carousel-images"))

		// Branch admins have no dashboard and do not manage staff, users or reminders.
		api.GET("/dashboard", staffOnly, controllers.NewDashboardController(d.Client).Overview)
		controllers.NewStaffController(d.Client).Register(api.Group("/staff", staffOnly))
		controllers.NewUserController(d.Client).Register(api.Group("/users", staffOnly))
		if d.ReminderAdmin != nil && d.Reminders != nil {
			controllers.NewReminderController(d.ReminderAdmin, d.Reminders).Register(api.Group("/reminders", staffOnly))
		}
	}

	return r
}
