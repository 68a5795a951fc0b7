package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"backoffice/internal/app/dto"
	"backoffice/internal/app/report"
	"backoffice/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// orderInput переводит тело запроса во входные данные репозитория.
// Пустой postponed_dates ([]) и отсутствующий (null) различаются.
func orderInput(request dto.OrderRequest) (repository.OrderInput, error) {
	in := repository.OrderInput{
		ClientPID:  request.ClientPID,
		ProcessPID: request.ProcessPID,
		SellerPID:  request.SellerPID,
		Open:       request.Open,
		Fee:        request.Fee,
		Payout:     request.Payout,
		PartnerFee: request.PartnerFee,
		Fees:       make([]repository.OrderFeeInput, len(request.Fees)),
		Payments:   make([]repository.PaymentInput, len(request.Payments)),
	}

	for i, fee := range request.Fees {
		in.Fees[i] = repository.OrderFeeInput{
			FeePID:      fee.FeePID,
			OrderFeePID: fee.OrderFeePID,
			Open:        fee.Open,
			Value:       fee.Value,
			Info:        fee.Info,
		}
	}

	for i, p := range request.Payments {
		if p.DueDate.IsZero() {
			return repository.OrderInput{}, fmt.Errorf("payments[%d]: due_date is required", i)
		}

		payment := repository.PaymentInput{
			PID:              p.PID,
			Value:            p.Value,
			DueDate:          p.DueDate.Time,
			PaymentMethod:    p.PaymentMethod,
			Currency:         p.Currency,
			PostponedPayment: p.PostponedPayment,
			Open:             p.Open,
		}
		if p.PaymentDate != nil {
			t := p.PaymentDate.Time
			payment.PaymentDate = &t
		}
		if p.PostponedDates != nil {
			payment.PostponedDates = make([]time.Time, len(p.PostponedDates))
			for j, d := range p.PostponedDates {
				payment.PostponedDates[j] = d.Time
			}
		}
		in.Payments[i] = payment
	}

	return in, nil
}

// GetOrders получает список заказов
// @Summary Список заказов
// @Description Заказы с клиентом, процессом, продавцом, тарифами и платежами
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.OrderView
// @Router /api/orders/all [get]
func (h *APIHandler) GetOrders(c *gin.Context) {
	orders, err := h.Repository.ListOrders(c.Request.Context())
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderViews(orders))
}

// GetOrder получает один заказ
// @Summary Заказ по pid
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid заказа"
// @Success 200 {object} dto.OrderView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{pid} [get]
func (h *APIHandler) GetOrder(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	order, err := h.Repository.GetOrder(c.Request.Context(), pid)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderView(*order))
}

// CreateOrder создает заказ
// @Summary Создание заказа
// @Description Создаёт заказ с тарифами, платежами и датами переноса в одной транзакции
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OrderRequest true "Заказ"
// @Success 201 {object} dto.OrderView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/create [post]
func (h *APIHandler) CreateOrder(c *gin.Context) {
	var request dto.OrderRequest
	if !bindJSON(c, &request) {
		return
	}
	in, err := orderInput(request)
	if err != nil {
		errorHandler(c, http.StatusBadRequest, err)
		return
	}

	order, err := h.Repository.CreateOrder(c.Request.Context(), in)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderView(*order))
}

// UpdateOrder изменяет заказ
// @Summary Изменение заказа
// @Description Тарифы без order_fee_pid и платежи без pid добавляются, остальные обновляются.
// @Description У связи с order_fee_pid тариф заменяется на fee_pid; неизвестный fee_pid даёт 404.
// @Description Не переданные платежи не меняются; удаление через /api/payments/delete/{pid}.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid заказа"
// @Param request body dto.OrderRequest true "Заказ"
// @Success 200 {object} dto.OrderView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/edit/{pid} [put]
func (h *APIHandler) UpdateOrder(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}
	var request dto.OrderRequest
	if !bindJSON(c, &request) {
		return
	}
	in, err := orderInput(request)
	if err != nil {
		errorHandler(c, http.StatusBadRequest, err)
		return
	}

	order, err := h.Repository.UpdateOrder(c.Request.Context(), pid, in)
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderView(*order))
}

// DeleteOrder удаляет заказ
// @Summary Удаление заказа
// @Description Тарифы, платежи и даты переноса удаляются каскадно
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid заказа"
// @Success 200 {array} dto.OrderView
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/delete/{pid} [delete]
func (h *APIHandler) DeleteOrder(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	if err := h.Repository.DeleteOrder(c.Request.Context(), pid); err != nil {
		handleRepositoryError(c, err)
		return
	}
	h.GetOrders(c)
}

// DeletePayment удаляет платёж заказа
// @Summary Удаление платежа
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param pid path string true "pid платежа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/payments/delete/{pid} [delete]
func (h *APIHandler) DeletePayment(c *gin.Context) {
	pid, ok := pidParam(c)
	if !ok {
		return
	}

	if err := h.Repository.DeletePayment(c.Request.Context(), pid); err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Status: "success", Message: "платёж удалён"})
}

// ExportOrders выгружает заказы в Excel
// @Summary Выгрузка заказов в XLSX
// @Tags Orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders/export [get]
func (h *APIHandler) ExportOrders(c *gin.Context) {
	orders, err := h.Repository.ListOrders(c.Request.Context())
	if err != nil {
		handleRepositoryError(c, err)
		return
	}

	f, err := report.OrdersWorkbook(orders)
	if err != nil {
		errorHandler(c, http.StatusInternalServerError, errors.New("не удалось сформировать отчёт"))
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+report.FileName(time.Now()))
	if err := f.Write(c.Writer); err != nil {
		errorHandler(c, http.StatusInternalServerError, err)
	}
}
