package handler

import (
	"backoffice/internal/app/middleware"
	"backoffice/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware, loginLimiter *middleware.RateLimiter) {
	api := router.Group("/api")

	anyUser := authMiddleware.WithAuthCheck(role.Operator, role.Admin)

	// ============ Процессы ============
	processes := api.Group("/processes", anyUser)
	{
		processes.POST("/create", h.CreateProcess)
		processes.GET("/all", h.GetProcesses)
		processes.GET("/:pid", h.GetProcess)
		processes.PUT("/edit/:pid", h.UpdateProcess)
		processes.DELETE("/delete/:pid", h.DeleteProcess)
	}

	// М-М связь процесс - тариф, pid передаются в теле
	processFees := api.Group("/process_fees", anyUser)
	{
		processFees.POST("/create", h.CreateProcessFee)
		processFees.PUT("/edit", h.UpdateProcessFee)
		processFees.DELETE("/delete", h.DeleteProcessFee)
	}

	// ============ Партнёры ============
	partners := api.Group("/partners", anyUser)
	{
		partners.POST("/create", h.CreatePartner)
		partners.GET("/all", h.GetPartners)
		partners.GET("/:pid", h.GetPartner)
		partners.PUT("/edit/:pid", h.UpdatePartner)
		partners.DELETE("/delete/:pid", h.DeletePartner)
	}

	// ============ Продавцы ============
	sellers := api.Group("/sellers", anyUser)
	{
		sellers.POST("/create", h.CreateSeller)
		sellers.GET("/all", h.GetSellers)
		sellers.GET("/:pid", h.GetSeller)
		sellers.PUT("/edit/:pid", h.UpdateSeller)
		sellers.DELETE("/delete/:pid", h.DeleteSeller)
	}

	// ============ Тарифы ============
	fees := api.Group("/fees", anyUser)
	{
		fees.POST("/create", h.CreateFee)
		fees.GET("/all", h.GetFees)
		fees.GET("/:pid", h.GetFee)
		fees.PUT("/edit/:pid", h.UpdateFee)
		fees.DELETE("/delete/:pid", h.DeleteFee)
	}

	// ============ Клиенты ============
	clients := api.Group("/clients", anyUser)
	{
		clients.POST("/create", h.CreateClient)
		clients.GET("/all", h.GetClients)
		clients.GET("/:pid", h.GetClient)
		clients.PUT("/edit/:pid", h.UpdateClient)
		clients.DELETE("/delete/:pid", h.DeleteClient)
	}

	// ============ Заказы ============
	orders := api.Group("/orders", anyUser)
	{
		orders.POST("/create", h.CreateOrder)
		orders.GET("/all", h.GetOrders)
		orders.GET("/export", h.ExportOrders)
		orders.GET("/:pid", h.GetOrder)
		orders.PUT("/edit/:pid", h.UpdateOrder)
		orders.DELETE("/delete/:pid", h.DeleteOrder)
	}

	payments := api.Group("/payments", anyUser)
	{
		payments.DELETE("/delete/:pid", h.DeletePayment)
	}

	// ============ Резервные копии - только администратор ============
	backups := api.Group("/backups", authMiddleware.WithAuthCheck(role.Admin))
	{
		backups.GET("/all", h.GetBackups)
		backups.POST("/export", h.ExportBackup)
		backups.POST("/import", h.ImportBackup)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", loginLimiter.Handler(), h.AuthHandler.LoginUser)

		auth.POST("/logout", anyUser, h.AuthHandler.LogoutUser)
		auth.GET("/current", anyUser, h.AuthHandler.GetCurrentUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API и базы
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} dto.ErrorResponse
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	if err := h.Repository.Ping(ctx.Request.Context()); err != nil {
		errorHandler(ctx, 503, err)
		return
	}
	ctx.JSON(200, gin.H{"message": "pong"})
}
