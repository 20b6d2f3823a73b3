// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"motofix-admin/internal/config"
	"motofix-admin/internal/database"
	"motofix-admin/internal/handler"
	adminhandler "motofix-admin/internal/handler/admin"
	"motofix-admin/internal/handler/auth"
	"motofix-admin/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cfg config.Config) {
	e.GET("/", handler.RootHandler())

	api := e.Group("/api")
	api.POST("/login", auth.LoginHandler(cfg))
	api.GET("/ping", handler.PingHandler(db), middleware.RequireAdmin(cfg))

	// 管理員專屬資料端點，全部經過 RequireAdmin
	admin := e.Group("/admin", middleware.RequireAdmin(cfg))
	admin.GET("/requests", adminhandler.ListRequestsHandler(db))
	admin.GET("/mechanics", adminhandler.ListMechanicsHandler(db))
	admin.POST("/mechanics", adminhandler.CreateMechanicHandler(db, cfg))
	admin.PATCH("/mechanics/:id", adminhandler.UpdateMechanicHandler(db, cfg))
	admin.DELETE("/mechanics/:id", adminhandler.DeleteMechanicHandler(db))
	admin.GET("/payments", adminhandler.ListPaymentsHandler(db, cfg))
	admin.GET("/stats", adminhandler.StatsHandler(db))
	admin.GET("/dashboard/revenue-chart", adminhandler.RevenueChartHandler(db))
}
