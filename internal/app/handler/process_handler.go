package handler

import (
	"net/http"

	"backoffice/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН ПРОЦЕССЫ ============

// GetProcesses получает список процессов
// @Summary Список процессов
// @Description Возвращает все процессы вместе с привязанными тарифами
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProcessView
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/processes/all [get]
func (h *APIHandler) GetProcesses(c *gin.Context) {
	processes, err := h.Repository.ListProcesses(c.Request.Context())
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, processViews(processes))
}

// GetProcess получает один процесс
// @Summary Процесс по pid
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid процесса"
// @Success 200 {object} dto.ProcessView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/processes/{pid} [get]
func (h *APIHandler) GetProcess(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	process, err := h.Repository.GetProcess(c.Request.Context(), pid)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, processView(*process))
}

// CreateProcess создает процесс
// @Summary Создание процесса
// @Tags Processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProcessRequest true "Данные процесса"
// @Success 201 {object} dto.ProcessView
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/processes/create [post]
func (h *APIHandler) CreateProcess(c *gin.Context) {
	var request dto.ProcessRequest
	if !bindJSON(c, &request) {
		return
	}

	process, err := h.Repository.CreateProcess(c.Request.Context(), request.CaseType)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, processView(*process))
}

// UpdateProcess изменяет процесс
// @Summary Изменение процесса
// @Tags Processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid процесса"
// @Param request body dto.ProcessRequest true "Данные процесса"
// @Success 200 {object} dto.ProcessView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/processes/edit/{pid} [put]
func (h *APIHandler) UpdateProcess(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}
	var request dto.ProcessRequest
	if !bindJSON(c, &request) {
		return
	}

	process, err := h.Repository.UpdateProcess(c.Request.Context(), pid, request.CaseType)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, processView(*process))
}

// DeleteProcess удаляет процесс (каскадно) и возвращает оставшиеся
// @Summary Удаление процесса
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid процесса"
// @Success 200 {array} dto.ProcessView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/processes/delete/{pid} [delete]
func (h *APIHandler) DeleteProcess(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	if err := h.Repository.DeleteProcess(c.Request.Context(), pid); err != nil {
		handleRepositoryError(c, err)
		return
	}
	h.GetProcesses(c)
}

// ============ ТАРИФЫ ПРОЦЕССОВ ============

// CreateProcessFee привязывает тариф к процессу
// @Summary Привязка тарифа к процессу
// @Tags ProcessFees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProcessFeeRequest true "pid процесса и тарифа"
// @Success 201 {array} dto.ProcessView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/process_fees/create [post]
func (h *APIHandler) CreateProcessFee(c *gin.Context) {
	var request dto.CreateProcessFeeRequest
	if !bindJSON(c, &request) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Repository.CreateProcessFee(ctx, request.ProcessPID, request.FeePID); err != nil {
		handleRepositoryError(c, err)
		return
	}

	processes, err := h.Repository.ListProcesses(ctx)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, processViews(processes))
}

// UpdateProcessFee перепривязывает тариф процесса
// @Summary Изменение привязки тарифа
// @Tags ProcessFees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProcessFeeRequest true "Привязка"
// @Success 200 {array} dto.ProcessView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/process_fees/edit [put]
func (h *APIHandler) UpdateProcessFee(c *gin.Context) {
	var request dto.UpdateProcessFeeRequest
	if !bindJSON(c, &request) {
		return
	}

	_, err := h.Repository.UpdateProcessFee(c.Request.Context(), request.ProcessFeePID, request.ProcessPID, request.FeePID)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	h.GetProcesses(c)
}

// DeleteProcessFee отвязывает тариф от процесса
// @Summary Удаление привязки тарифа
// @Tags ProcessFees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteProcessFeeRequest true "pid привязки"
// @Success 200 {array} dto.ProcessView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/process_fees/delete [delete]
func (h *APIHandler) DeleteProcessFee(c *gin.Context) {
	var request dto.DeleteProcessFeeRequest
	if !bindJSON(c, &request) {
		return
	}

	if err := h.Repository.DeleteProcessFee(c.Request.Context(), request.ProcessFeePID); err != nil {
		handleRepositoryError(c, err)
		return
	}
	h.GetProcesses(c)
}
