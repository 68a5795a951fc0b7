package handler

import (
	"net/http"

	"backoffice/internal/app/dto"
	"backoffice/internal/app/repository"

	"github.com/gin-gonic/gin"
)

func clientInput(request dto.ClientRequest) repository.ClientInput {
	return repository.ClientInput{
		Name:       request.Name,
		Contact:    request.Contact,
		Phone:      request.Phone,
		Phone2:     request.Phone2,
		Email:      request.Email,
		PartnerPID: request.PartnerPID,
	}
}

// GetClients получает список клиентов
// @Summary Список клиентов
// @Description Клиенты с партнёром и кратким списком заказов
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ClientView
// @Router /api/clients/all [get]
func (h *APIHandler) GetClients(c *gin.Context) {
	clients, err := h.Repository.ListClients(c.Request.Context())
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientViews(clients))
}

// GetClient получает одного клиента
// @Summary Клиент по pid
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid клиента"
// @Success 200 {object} dto.ClientView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{pid} [get]
func (h *APIHandler) GetClient(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	client, err := h.Repository.GetClient(c.Request.Context(), pid)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientView(*client))
}

// CreateClient создает клиента
// @Summary Создание клиента
// @Description Партнёр указывается по partner_pid (необязательно)
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ClientRequest true "Данные клиента"
// @Success 201 {object} dto.ClientView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/create [post]
func (h *APIHandler) CreateClient(c *gin.Context) {
	var request dto.ClientRequest
	if !bindJSON(c, &request) {
		return
	}

	client, err := h.Repository.CreateClient(c.Request.Context(), clientInput(request))
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, clientView(*client))
}

// UpdateClient изменяет клиента
// @Summary Изменение клиента
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid клиента"
// @Param request body dto.ClientRequest true "Данные клиента"
// @Success 200 {object} dto.ClientView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/edit/{pid} [put]
func (h *APIHandler) UpdateClient(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}
	var request dto.ClientRequest
	if !bindJSON(c, &request) {
		return
	}

	client, err := h.Repository.UpdateClient(c.Request.Context(), pid, clientInput(request))
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientView(*client))
}

// DeleteClient удаляет клиента
// @Summary Удаление клиента
// @Description Заказы клиента удаляются каскадно
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid клиента"
// @Success 200 {array} dto.ClientView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/delete/{pid} [delete]
func (h *APIHandler) DeleteClient(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	if err := h.Repository.DeleteClient(c.Request.Context(), pid); err != nil {
		handleRepositoryError(c, err)
		return
	}
	h.GetClients(c)
}
