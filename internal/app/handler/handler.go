package handler

import (
	"errors"
	"fmt"
	"net/http"

	"backoffice/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errInternal = errors.New("внутренняя ошибка сервера")

// Централизованная обработка ошибок
func errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.WithField("path", ctx.FullPath()).Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// handleRepositoryError выбирает HTTP статус по ошибке репозитория
func handleRepositoryError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		errorHandler(ctx, http.StatusNotFound, err)
	case errors.Is(err, repository.ErrConflict),
		errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		errorHandler(ctx, http.StatusConflict, err)
	default:
		logrus.WithField("path", ctx.FullPath()).Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":      "error",
			"description": errInternal.Error(),
		})
	}
}

// pidParam читает pid из пути; при ошибке ответ уже отправлен
func pidParam(ctx *gin.Context) (uuid.UUID, bool) {
	pid, err := uuid.Parse(ctx.Param("pid"))
	if err != nil {
		errorHandler(ctx, http.StatusBadRequest, fmt.Errorf("неверный pid: %q", ctx.Param("pid")))
		return uuid.Nil, false
	}
	return pid, true
}

// bindJSON разбирает и валидирует тело; при ошибке ответ уже отправлен
func bindJSON(ctx *gin.Context, request interface{}) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		errorHandler(ctx, http.StatusBadRequest, err)
		return false
	}
	return true
}
