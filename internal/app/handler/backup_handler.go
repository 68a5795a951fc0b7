package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"time"

	"backoffice/internal/app/dto"
	"backoffice/internal/app/storage"

	"github.com/gin-gonic/gin"
)

var errBackupsDisabled = errors.New("хранилище резервных копий не настроено")

// GetBackups список сохранённых копий
// @Summary Список резервных копий
// @Tags Backups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 403 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/backups/all [get]
func (h *APIHandler) GetBackups(c *gin.Context) {
	if h.Backups == nil {
		errorHandler(c, http.StatusServiceUnavailable, errBackupsDisabled)
		return
	}

	prefixes, err := h.Backups.Prefixes(c.Request.Context())
	if err != nil {
		errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, prefixes)
}

// ExportBackup выгружает таблицы в хранилище копий
// @Summary Резервная копия
// @Description Пишет backup_<table>.json по каждой таблице под новым префиксом
// @Tags Backups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BackupResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/backups/export [post]
func (h *APIHandler) ExportBackup(c *gin.Context) {
	if h.Backups == nil {
		errorHandler(c, http.StatusServiceUnavailable, errBackupsDisabled)
		return
	}

	prefix := time.Now().UTC().Format("20060102T150405Z")
	counts, err := h.Backups.Export(c.Request.Context(), prefix)
	if err != nil {
		errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, dto.BackupResponse{Prefix: prefix, Tables: counts})
}

// ImportBackup восстанавливает таблицы из копии
// @Summary Восстановление из копии
// @Description Все таблицы загружаются в одной транзакции; существующие pid дают конфликт
// @Tags Backups
// @Produce json
// @Security BearerAuth
// @Param prefix query string true "Префикс копии"
// @Success 200 {object} dto.BackupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/backups/import [post]
func (h *APIHandler) ImportBackup(c *gin.Context) {
	if h.Backups == nil {
		errorHandler(c, http.StatusServiceUnavailable, errBackupsDisabled)
		return
	}

	prefix := c.Query("prefix")
	if prefix == "" {
		errorHandler(c, http.StatusBadRequest, errors.New("не указан prefix"))
		return
	}

	counts, err := h.Backups.Import(c.Request.Context(), prefix)
	if errors.Is(err, storage.ErrNotExist) || errors.Is(err, fs.ErrNotExist) {
		errorHandler(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		handleRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BackupResponse{Prefix: prefix, Tables: counts})
}
