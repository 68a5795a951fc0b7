package handler

import (
	"net/http"

	"backoffice/internal/app/dto"
	"backoffice/internal/app/repository"

	"github.com/gin-gonic/gin"
)

func partnerInput(request dto.PartnerRequest) repository.PartnerInput {
	return repository.PartnerInput{
		Name:        request.Name,
		Information: request.Information,
		Phone:       request.Phone,
		Email:       request.Email,
	}
}

// GetPartners получает список партнёров
// @Summary Список партнёров
// @Tags Partners
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.PartnerView
// @Router /api/partners/all [get]
func (h *APIHandler) GetPartners(c *gin.Context) {
	partners, err := h.Repository.ListPartners(c.Request.Context())
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, partnerViews(partners))
}

// GetPartner получает одного партнёра
// @Summary Партнёр по pid
// @Tags Partners
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid партнёра"
// @Success 200 {object} dto.PartnerView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/partners/{pid} [get]
func (h *APIHandler) GetPartner(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	partner, err := h.Repository.GetPartner(c.Request.Context(), pid)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, partnerView(*partner))
}

// CreatePartner создает партнёра
// @Summary Создание партнёра
// @Tags Partners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PartnerRequest true "Данные партнёра"
// @Success 201 {object} dto.PartnerView
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/partners/create [post]
func (h *APIHandler) CreatePartner(c *gin.Context) {
	var request dto.PartnerRequest
	if !bindJSON(c, &request) {
		return
	}

	partner, err := h.Repository.CreatePartner(c.Request.Context(), partnerInput(request))
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, partnerView(*partner))
}

// UpdatePartner изменяет партнёра
// @Summary Изменение партнёра
// @Tags Partners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid партнёра"
// @Param request body dto.PartnerRequest true "Данные партнёра"
// @Success 200 {object} dto.PartnerView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/partners/edit/{pid} [put]
func (h *APIHandler) UpdatePartner(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}
	var request dto.PartnerRequest
	if !bindJSON(c, &request) {
		return
	}

	partner, err := h.Repository.UpdatePartner(c.Request.Context(), pid, partnerInput(request))
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, partnerView(*partner))
}

// DeletePartner удаляет партнёра
// @Summary Удаление партнёра
// @Description Клиенты партнёра удаляются каскадно
// @Tags Partners
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid партнёра"
// @Success 200 {array} dto.PartnerView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/partners/delete/{pid} [delete]
func (h *APIHandler) DeletePartner(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	if err := h.Repository.DeletePartner(c.Request.Context(), pid); err != nil {
		handleRepositoryError(c, err)
		return
	}
	h.GetPartners(c)
}
