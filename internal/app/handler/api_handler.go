package handler

import (
	"backoffice/internal/app/backup"
	"backoffice/internal/app/repository"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	Backups     *backup.Service // nil, если хранилище копий не настроено
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, backups *backup.Service, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		Backups:     backups,
		AuthHandler: authHandler,
	}
}
