package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lodging-backend/controllers"
	"lodging-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the flat route surface: public login, the
// authenticated front-desk operations, and the admin-only group.
func SetupRouter(
	ac *controllers.AuthController,
	gc *controllers.GroupController,
	guc *controllers.GuestController,
	rc *controllers.ReportController,
	uc *controllers.UserController,
	ec *controllers.ExportController,
	uploadDir string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Staged uploads stay inspectable.
	r.Static("/uploads", uploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/login", ac.LoginPage)
	r.POST("/login", ac.Login)

	authed := r.Group("/", middleware.AuthMiddleware())
	{
		authed.GET("", gc.Index)
		authed.POST("/create_group", gc.CreateGroup)
		authed.POST("/upload_guests", guc.UploadGuests)
		authed.POST("/assign_room", guc.AssignRoom)
		authed.GET("/logout", ac.Logout)
		authed.GET("/export_excel", ec.ExportExcel)
	}

	admin := authed.Group("/", middleware.AdminMiddleware())
	{
		admin.GET("/financial_report", rc.FinancialReport)
		admin.GET("/manage_users", uc.ManageUsers)
		admin.POST("/add_user", uc.AddUser)
	}

	return r
}
