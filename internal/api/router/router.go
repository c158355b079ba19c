package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devendra616/collectEmpData-sub000/config"
	"github.com/Devendra616/collectEmpData-sub000/internal/api/handler"
	"github.com/Devendra616/collectEmpData-sub000/internal/api/middleware"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	"github.com/Devendra616/collectEmpData-sub000/pkg/jwt"
	"github.com/Devendra616/collectEmpData-sub000/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine and wires every route.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// brute-force protection on credential endpoints
	loginLimit := middleware.RateLimit(rdb, 10, time.Minute)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// public
		v1.POST("/register", loginLimit, h.Auth.Register)
		v1.POST("/login", loginLimit, h.Auth.Login)

		// authenticated employee surface
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/logout", h.Auth.Logout)
			authorized.PUT("/change-password", h.Auth.ChangePassword)

			// one GET per section; saves are explicit per payload shape
			for _, section := range model.SectionOrder {
				authorized.GET("/"+string(section), h.Section.Get(section))
			}
			authorized.POST("/"+string(model.SectionPersonal), h.Section.SavePersonal)
			authorized.POST("/"+string(model.SectionEducation), h.Section.SaveEducation)
			authorized.POST("/"+string(model.SectionFamily), h.Section.SaveFamily)
			authorized.POST("/"+string(model.SectionAddress), h.Section.SaveAddress)
			authorized.POST("/"+string(model.SectionWork), h.Section.SaveWork)

			authorized.GET("/submission-status", h.Submission.Status)
			authorized.POST("/submit", h.Submission.Submit)
		}

		// admin namespace
		admin := v1.Group("/admin")
		{
			admin.POST("/login", loginLimit, h.Admin.Login)

			guarded := admin.Group("")
			guarded.Use(middleware.JWTAuth(jwtMgr, rdb), middleware.AdminAuth())
			{
				guarded.GET("/employees", h.Admin.ListEmployees)
				guarded.GET("/employees/:id", h.Admin.GetEmployee)
				guarded.POST("/employees/:id/reset-password", h.Admin.ResetPassword)
				guarded.POST("/reset-passwords", h.Admin.ResetAllPasswords)
				guarded.PUT("/employees/:id/submission", h.Admin.SetSubmission)

				guarded.GET("/export/employees", h.Export.ExportEmployees)
				guarded.GET("/export/birthdays", h.Export.ExportBirthdays)
			}
		}
	}

	return r
}
