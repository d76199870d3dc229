package handler

import (
	"servicedesk/internal/app/middleware"
	"servicedesk/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *Handler) RegisterAPIRoutes(router *gin.Engine, auth *AuthHandler, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Заявки (Appeals) ============
	appeals := api.Group("/appeals")
	{
		// Справочник статусов, без авторизации
		appeals.GET("/statuses", h.GetAppealStatuses)

		// Клиент подаёт и отменяет заявки
		appeals.POST("", authMiddleware.WithAuthCheck(role.Client), h.CreateAppeal)
		appeals.PATCH("/:id/cancel", authMiddleware.WithAuthCheck(role.Client), h.CancelAppeal)

		// Сотрудник ведёт заявку по жизненному циклу
		appeals.PATCH("/:id/take", authMiddleware.WithAuthCheck(role.Staff), h.TakeAppealToWork)
		appeals.PATCH("/:id/close", authMiddleware.WithAuthCheck(role.Staff), h.CloseAppeal)

		// Выборки по статусу, клиент видит только свои
		appeals.GET("/new", authMiddleware.WithAuthCheck(role.Client, role.Staff, role.Admin), h.GetNewAppeals)
		appeals.GET("/in-progress", authMiddleware.WithAuthCheck(role.Client, role.Staff, role.Admin), h.GetAppealsInProgress)
		appeals.GET("/completed", authMiddleware.WithAuthCheck(role.Client, role.Staff, role.Admin), h.GetCompletedAppeals)
	}

	// ============ Клиенты (Clients) ============
	clients := api.Group("/clients")
	{
		clients.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateClient)
		clients.GET("", authMiddleware.WithAuthCheck(role.Admin, role.Staff), h.GetAllClients)
		clients.GET("/:id", authMiddleware.WithAuthCheck(role.Client, role.Staff, role.Admin), h.GetClient)
		clients.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateClient)
		clients.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteClient)
		clients.PATCH("/:id/password", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.UpdateClientPassword)

		// Отчёт по завершённым заявкам (xlsx)
		clients.GET("/:id/report", authMiddleware.WithAuthCheck(role.Client, role.Staff, role.Admin), h.DownloadClientReport)
	}

	// ============ Сотрудники (Staff) ============
	staff := api.Group("/staff")
	{
		staff.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateStaff)
		staff.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetAllStaff)
		staff.GET("/:id/appeals", authMiddleware.WithAuthCheck(role.Admin, role.Staff), h.GetStaffAppeals)
		staff.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateStaff)
		staff.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteStaff)
	}

	// ============ Администраторы (Admins) ============
	admins := api.Group("/admins")
	admins.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		admins.POST("", h.CreateAdmin)
		admins.PUT("/:id", h.UpdateAdmin)
	}

	// ============ Справочная информация ============
	api.GET("/info", h.GetInfo)
	api.PUT("/info", authMiddleware.WithAuthCheck(role.Admin), h.UpdateInfo)

	// ============ Аутентификация ============
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", auth.Login)

		authGroup.GET("/profile", authMiddleware.WithAuthCheck(role.Client, role.Staff, role.Admin), auth.Profile)
		authGroup.POST("/refresh", authMiddleware.WithAuthCheck(role.Client, role.Staff, role.Admin), auth.Refresh)
		authGroup.POST("/logout", authMiddleware.WithAuthCheck(role.Client, role.Staff, role.Admin), auth.Logout)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
