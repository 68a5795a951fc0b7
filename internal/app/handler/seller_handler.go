package handler

import (
	"net/http"

	"backoffice/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetSellers получает список продавцов
// @Summary Список продавцов
// @Tags Sellers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SellerView
// @Router /api/sellers/all [get]
func (h *APIHandler) GetSellers(c *gin.Context) {
	sellers, err := h.Repository.ListSellers(c.Request.Context())
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, sellerViews(sellers))
}

// GetSeller
// @Summary Продавец по pid
// @Tags Sellers
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid продавца"
// @Success 200 {object} dto.SellerView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sellers/{pid} [get]
func (h *APIHandler) GetSeller(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	seller, err := h.Repository.GetSeller(c.Request.Context(), pid)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, sellerView(*seller))
}

// CreateSeller
// @Summary Создание продавца
// @Tags Sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SellerRequest true "Имя продавца"
// @Success 201 {object} dto.SellerView
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/sellers/create [post]
func (h *APIHandler) CreateSeller(c *gin.Context) {
	var request dto.SellerRequest
	if !bindJSON(c, &request) {
		return
	}

	seller, err := h.Repository.CreateSeller(c.Request.Context(), request.Name)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sellerView(*seller))
}

// UpdateSeller
// @Summary Изменение продавца
// @Tags Sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid продавца"
// @Param request body dto.SellerRequest true "Имя продавца"
// @Success 200 {object} dto.SellerView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sellers/edit/{pid} [put]
func (h *APIHandler) UpdateSeller(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}
	var request dto.SellerRequest
	if !bindJSON(c, &request) {
		return
	}

	seller, err := h.Repository.UpdateSeller(c.Request.Context(), pid, request.Name)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, sellerView(*seller))
}

// DeleteSeller
// @Summary Удаление продавца
// @Description Заказы продавца удаляются каскадно
// @Tags Sellers
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid продавца"
// @Success 200 {array} dto.SellerView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sellers/delete/{pid} [delete]
func (h *APIHandler) DeleteSeller(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	if err := h.Repository.DeleteSeller(c.Request.Context(), pid); err != nil {
		handleRepositoryError(c, err)
		return
	}
	h.GetSellers(c)
}
