package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"laporpak/backend/internal/api/handler"
	"laporpak/backend/internal/api/middleware"
	"laporpak/backend/internal/config"
	"laporpak/backend/internal/files"
	"laporpak/backend/internal/lifecycle"
	"laporpak/backend/internal/models"
	"laporpak/backend/internal/storage"
	"laporpak/backend/internal/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Category{},
		&models.Complaint{},
		&models.Attachment{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting LaporPak Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	db, rdb := setupDependencies(cfg)
	store := storage.NewStorageService(db, rdb)

	gateway := whatsapp.NewClient(cfg.FonnteToken)
	engine := lifecycle.NewService(store, gateway)
	delivery := files.NewDelivery(store, cfg.UploadDir)

	h := handler.NewHandler(engine, store, delivery, cfg.JWTSecret, cfg.UploadDir)

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "LaporPak API is running."})
	})
	r.GET("/files/:id", h.DownloadLampiran)

	admin := r.Group("/admin")
	admin.POST("/login",
		middleware.LoginRateLimiter(rdb, config.LoginRateLimit, config.LoginRateWindow),
		h.Login,
	)

	authed := admin.Group("", middleware.Auth(cfg.JWTSecret))

	anyStaff := authed.Group("", middleware.RequireRoles(
		models.RoleAdmin, models.RoleMasterAdmin, models.RolePimpinan,
	))
	anyStaff.GET("/pengaduan", h.ListPengaduan)
	anyStaff.GET("/pengaduan/:id", h.GetPengaduan)
	anyStaff.GET("/kategori", h.ListCategories)

	admins := authed.Group("", middleware.RequireRoles(models.RoleAdmin, models.RoleMasterAdmin))
	admins.POST("/pengaduan/:id/verifikasi", h.VerifyPengaduan)
	admins.PUT("/pengaduan/:id/selesai", h.CompletePengaduan)
	admins.POST("/pengaduan/:id/lampiran", h.UploadLampiran)
	admins.GET("/users", h.ListUsers)
	admins.DELETE("/users/:id", h.DeleteUser)

	leadership := authed.Group("", middleware.RequireRoles(models.RolePimpinan))
	leadership.PUT("/pengaduan/:id/persetujuan", h.ApprovePengaduan)

	master := authed.Group("", middleware.RequireRoles(models.RoleMasterAdmin))
	master.GET("/dashboard", h.Dashboard)
	master.GET("/admins", h.ListAdmins)
	master.POST("/admins", h.CreateAdmin)
	master.PUT("/admins/:id", h.UpdateAdmin)
	master.DELETE("/admins/:id", h.DeleteAdmin)

	server := &http.Server{
		Addr:        cfg.ListenAddr,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		// Write timeout leaves headroom for video streaming.
		WriteTimeout:   2 * time.Minute,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
