package handler

import (
	"laporpak/backend/internal/files"
	"laporpak/backend/internal/lifecycle"
	"laporpak/backend/internal/storage"
)

// Handler bundles the services behind the HTTP API.
type Handler struct {
	Lifecycle *lifecycle.Service
	Storage   storage.Storage
	Files     *files.Delivery
	JWTSecret string
	UploadDir string
}

func NewHandler(lc *lifecycle.Service, st storage.Storage, fd *files.Delivery, jwtSecret, uploadDir string) *Handler {
	return &Handler{
		Lifecycle: lc,
		Storage:   st,
		Files:     fd,
		JWTSecret: jwtSecret,
		UploadDir: uploadDir,
	}
}
