package handler

import (
	"net/http"

	"backoffice/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetFees
// @Summary Справочник тарифов
// @Tags Fees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FeeView
// @Router /api/fees/all [get]
func (h *APIHandler) GetFees(c *gin.Context) {
	fees, err := h.Repository.ListFees(c.Request.Context())
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, feeViews(fees))
}

// GetFee
// @Summary Тариф по pid
// @Tags Fees
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid тарифа"
// @Success 200 {object} dto.FeeView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/fees/{pid} [get]
func (h *APIHandler) GetFee(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	fee, err := h.Repository.GetFee(c.Request.Context(), pid)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, feeView(*fee))
}

// CreateFee
// @Summary Создание тарифа
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FeeRequest true "Тариф"
// @Success 201 {object} dto.FeeView
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/fees/create [post]
func (h *APIHandler) CreateFee(c *gin.Context) {
	var request dto.FeeRequest
	if !bindJSON(c, &request) {
		return
	}

	fee, err := h.Repository.CreateFee(c.Request.Context(), request.Fee, request.Type)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feeView(*fee))
}

// UpdateFee
// @Summary Изменение тарифа
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid тарифа"
// @Param request body dto.FeeRequest true "Тариф"
// @Success 200 {object} dto.FeeView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/fees/edit/{pid} [put]
func (h *APIHandler) UpdateFee(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}
	var request dto.FeeRequest
	if !bindJSON(c, &request) {
		return
	}

	fee, err := h.Repository.UpdateFee(c.Request.Context(), pid, request.Fee, request.Type)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, feeView(*fee))
}

// DeleteFee
// @Summary Удаление тарифа
// @Description Привязки тарифа к процессам и заказам удаляются каскадно
// @Tags Fees
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid тарифа"
// @Success 200 {array} dto.FeeView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/fees/delete/{pid} [delete]
func (h *APIHandler) DeleteFee(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	if err := h.Repository.DeleteFee(c.Request.Context(), pid); err != nil {
		handleRepositoryError(c, err)
		return
	}
	h.GetFees(c)
}
