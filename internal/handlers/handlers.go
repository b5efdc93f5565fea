package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"brandhub/api/internal/config"
	"brandhub/api/internal/middleware"
	"brandhub/api/internal/repository"
	"brandhub/api/internal/service"
	"brandhub/api/internal/storage"
)

type HandlerSet struct {
	log     zerolog.Logger
	cfg     *config.AppConfig
	auth    *service.AuthService
	catalog *service.CatalogService
	logos   *service.LogoService
	db      *pgxpool.Pool
	cache   *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	adminRepo := repository.NewAdminRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	auth := service.NewAuthService(adminRepo, cfg, log)
	catalog := service.NewCatalogService(brandRepo, adminRepo, cache, cfg, log)
	logos := service.NewLogoService(store, cfg, log)

	return HandlerSet{
		log:     log,
		cfg:     cfg,
		auth:    auth,
		catalog: catalog,
		logos:   logos,
		db:      db,
		cache:   cache,
	}
}

// Catalog exposes the catalog service for the stats-refresh scheduler.
func (h HandlerSet) Catalog() *service.CatalogService {
	return h.catalog
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login",
			middleware.LoginRateLimit(h.cache, h.cfg.Security.LoginRateLimit, h.cfg.Security.LoginRateWindow),
			h.Login)

		session := v1.Group("/auth")
		session.Use(middleware.Auth(h.auth))
		session.GET("/verify", h.Verify)
		session.POST("/change-password", h.ChangePassword)
		session.POST("/logout", h.Logout)

		accounts := v1.Group("/auth/admins")
		accounts.Use(
			middleware.Auth(h.auth),
			middleware.RequireCapability(service.CapabilityManageAdmins),
		)
		accounts.POST("", h.CreateAdmin)
		accounts.GET("", h.ListAdmins)
		accounts.PATCH("/:id/toggle-status", h.ToggleAdminStatus)

		brands := v1.Group("/brands")
		brands.GET("", h.ListBrands)
		brands.GET("/stats/categories", h.CategoryStats)
		brands.GET("/:id", h.GetBrand)

		manage := v1.Group("/brands")
		manage.Use(
			middleware.Auth(h.auth),
			middleware.RequireCapability(service.CapabilityModerate),
		)
		manage.POST("", h.CreateBrand)
		manage.PUT("/:id", h.UpdateBrand)
		manage.DELETE("/:id", h.DeleteBrand)
		manage.PATCH("/:id/toggle-status", h.ToggleBrandStatus)
		manage.PATCH("/:id/sort-order", h.UpdateBrandSortOrder)

		media := v1.Group("/media")
		media.Use(
			middleware.Auth(h.auth),
			middleware.RequireCapability(service.CapabilityModerate),
		)
		media.POST("/logo", h.UploadLogo)

		admin := v1.Group("/admin")
		admin.Use(
			middleware.Auth(h.auth),
			middleware.RequireCapability(service.CapabilityModerate),
		)
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/brands", h.AdminListBrands)
		admin.GET("/brands/:id", h.GetBrand)
		admin.POST("/brands/bulk-action", h.BulkBrandAction)
		admin.POST("/brands/update-sort-orders", h.UpdateBrandSortOrders)
		admin.GET("/settings", h.Settings)
	}
}

// serviceError maps core error kinds onto their fixed HTTP statuses.
func (h HandlerSet) serviceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrAccountLocked):
		respondError(c, http.StatusLocked, "account temporarily locked, try again later")
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, "insufficient permissions")
	case errors.Is(err, service.ErrWrongPassword):
		respondError(c, http.StatusBadRequest, "current password is wrong")
	case errors.Is(err, service.ErrSelfDeactivate):
		respondError(c, http.StatusBadRequest, "cannot deactivate own account")
	case errors.Is(err, service.ErrBrandExists):
		respondError(c, http.StatusConflict, "a brand with this name already exists")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusConflict, "email already in use")
	case errors.Is(err, service.ErrUsernameTaken):
		respondError(c, http.StatusConflict, "username already in use")
	case errors.Is(err, service.ErrInvalidBulkAction):
		respondError(c, http.StatusBadRequest, "provide a valid action and a non-empty id list")
	case errors.Is(err, service.ErrInvalidSortOrder):
		respondError(c, http.StatusBadRequest, "sort order must be zero or positive")
	case errors.Is(err, repository.ErrBrandNotFound):
		respondError(c, http.StatusNotFound, "brand not found")
	case errors.Is(err, repository.ErrAdminNotFound):
		respondError(c, http.StatusNotFound, "admin not found")
	case errors.As(err, &validationErr):
		respondFieldError(c, validationErr.Field, validationErr.Message)
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
