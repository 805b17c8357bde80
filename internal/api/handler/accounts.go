package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"laporpak/backend/internal/api/middleware"
	"laporpak/backend/internal/models"
	"laporpak/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// ListAdmins returns all staff accounts (master_admin only, enforced by
// route middleware).
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.Storage.ListAdmins()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": admins})
}

// CreateAdmin registers a new staff account.
func (h *Handler) CreateAdmin(c *gin.Context) {
	var input struct {
		FullName string `json:"nama_lengkap" binding:"required"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Data tidak lengkap"})
		return
	}

	role := models.Role(strings.ToLower(input.Role))
	if role == "" {
		role = models.RoleAdmin
	}
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Role tidak dikenal"})
		return
	}

	if _, err := h.Storage.GetAdminByUsername(input.Username); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username sudah digunakan"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	admin := &models.Admin{
		FullName: input.FullName,
		Username: input.Username,
		Password: input.Password,
		Role:     role,
	}
	if err := admin.HashPassword(); err != nil {
		log.Printf("ERROR: Failed to hash password for %q: %v", input.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal membuat admin"})
		return
	}
	if err := h.Storage.CreateAdmin(admin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal membuat admin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin berhasil ditambahkan", "data": admin})
}

// UpdateAdmin changes profile fields, password and/or role of a staff
// account.
func (h *Handler) UpdateAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input struct {
		FullName *string `json:"nama_lengkap"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	admin, err := h.Storage.GetAdminByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admin tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	if input.FullName != nil {
		admin.FullName = *input.FullName
	}
	if input.Role != nil {
		role := models.Role(strings.ToLower(*input.Role))
		if !role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Role tidak dikenal"})
			return
		}
		admin.Role = role
	}
	if input.Password != nil {
		admin.Password = *input.Password
		if err := admin.HashPassword(); err != nil {
			log.Printf("ERROR: Failed to hash password for admin %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal update admin"})
			return
		}
	}

	if err := h.Storage.UpdateAdmin(admin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal update admin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin berhasil diupdate", "data": admin})
}

// DeleteAdmin removes a staff account. Deleting your own account is
// refused.
func (h *Handler) DeleteAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	principal, _ := middleware.GetPrincipal(c)
	if principal.ID == id {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tidak dapat menghapus akun sendiri"})
		return
	}

	if err := h.Storage.DeleteAdmin(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admin tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal menghapus admin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin berhasil dihapus"})
}

// ListUsers returns all registered citizens.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Storage.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"users": users}})
}

// DeleteUser removes a citizen account.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Storage.DeleteUser(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal menghapus user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User berhasil dihapus"})
}

// ListCategories returns the complaint categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Storage.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// Dashboard returns the cached system statistics.
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.Storage.GetStatistics()
	if err != nil {
		log.Printf("ERROR: Failed to compute dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
