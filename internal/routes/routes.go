package routes

import (
	"github.com/gin-gonic/gin"

	"ecomauth/internal/authz"
	"ecomauth/internal/handlers"
	"ecomauth/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	mailHandler *handlers.MailHandler,
	homeHandler *handlers.HomeHandler,
	jwtSecret []byte,
) *gin.Engine {

	// ---- public
	auth := r.Group("/authenticate")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/resend", authHandler.Resend)
	}
	r.GET("/mail/confirm", mailHandler.Confirm)

	// ---- bearer-guarded probes
	user := r.Group("/user",
		middleware.AuthMiddleware(jwtSecret),
		middleware.RequireRoles(authz.RoleUser),
	)
	{
		user.GET("/home", homeHandler.UserHome)
	}

	admin := r.Group("/admin",
		middleware.AuthMiddleware(jwtSecret),
		middleware.RequireRoles(authz.RoleAdmin),
	)
	{
		admin.GET("/home", homeHandler.AdminHome)
	}

	return r
}
