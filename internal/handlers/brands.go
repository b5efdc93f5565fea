package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"brandhub/api/internal/models"
	"brandhub/api/internal/repository"
	"brandhub/api/internal/service"
)

type brandResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Logo             string    `json:"logo"`
	LogoType         string    `json:"logoType"`
	Telegram         string    `json:"telegram"`
	Whatsapp         string    `json:"whatsapp"`
	Website          string    `json:"website"`
	Category         string    `json:"category"`
	IsActive         bool      `json:"isActive"`
	SortOrder        int       `json:"sortOrder"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newBrandResponse(brand models.Brand) brandResponse {
	tags := brand.Tags
	if tags == nil {
		tags = []string{}
	}
	return brandResponse{
		ID:               brand.ID,
		Name:             brand.Name,
		Description:      brand.Description,
		ShortDescription: brand.ShortDescription,
		Logo:             brand.Logo,
		LogoType:         string(brand.LogoType),
		Telegram:         brand.Telegram,
		Whatsapp:         brand.WhatsApp,
		Website:          brand.Website,
		Category:         string(brand.Category),
		IsActive:         brand.IsActive,
		SortOrder:        brand.SortOrder,
		Tags:             tags,
		CreatedAt:        brand.CreatedAt,
		UpdatedAt:        brand.UpdatedAt,
	}
}

func newBrandResponses(brands []models.Brand) []brandResponse {
	resp := make([]brandResponse, 0, len(brands))
	for _, brand := range brands {
		resp = append(resp, newBrandResponse(brand))
	}
	return resp
}

// parseBrandFilter reads the shared listing query parameters. isActive is
// tri-state: left nil unless the caller supplied it.
func parseBrandFilter(c *gin.Context, defaultSortBy string, defaultSortOrder string) repository.BrandFilter {
	filter := repository.BrandFilter{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		SortBy:    c.DefaultQuery("sortBy", defaultSortBy),
		SortOrder: c.DefaultQuery("sortOrder", defaultSortOrder),
	}

	if raw, supplied := c.GetQuery("isActive"); supplied {
		active := raw == "true"
		filter.IsActive = &active
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}

	return filter
}

func (h HandlerSet) ListBrands(c *gin.Context) {
	filter := parseBrandFilter(c, "sortOrder", "asc")

	page, err := h.catalog.List(c.Request.Context(), filter)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondPage(c, newBrandResponses(page.Items), page.Pagination)
}

func (h HandlerSet) GetBrand(c *gin.Context) {
	brand, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondData(c, http.StatusOK, newBrandResponse(brand))
}

type brandRequest struct {
	Name             string   `json:"name" binding:"required,min=2,max=100"`
	Description      string   `json:"description" binding:"max=500"`
	ShortDescription string   `json:"shortDescription" binding:"max=150"`
	Logo             string   `json:"logo" binding:"max=200"`
	LogoType         string   `json:"logoType" binding:"omitempty,oneof=icon image"`
	Telegram         string   `json:"telegram"`
	Whatsapp         string   `json:"whatsapp"`
	Website          string   `json:"website"`
	Category         string   `json:"category"`
	IsActive         *bool    `json:"isActive"`
	SortOrder        int      `json:"sortOrder" binding:"min=0"`
	Tags             []string `json:"tags" binding:"omitempty,dive,min=1,max=30"`
}

func (req brandRequest) toInput() service.BrandInput {
	return service.BrandInput{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Logo:             req.Logo,
		LogoType:         models.LogoType(req.LogoType),
		Telegram:         req.Telegram,
		WhatsApp:         req.Whatsapp,
		Website:          req.Website,
		Category:         models.BrandCategory(req.Category),
		IsActive:         req.IsActive,
		SortOrder:        req.SortOrder,
		Tags:             req.Tags,
	}
}

func (h HandlerSet) CreateBrand(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	brand, err := h.catalog.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "brand created", newBrandResponse(brand))
}

func (h HandlerSet) UpdateBrand(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	brand, err := h.catalog.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "brand updated", newBrandResponse(brand))
}

func (h HandlerSet) DeleteBrand(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.serviceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "brand deleted", nil)
}

func (h HandlerSet) ToggleBrandStatus(c *gin.Context) {
	brand, err := h.catalog.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	message := "brand deactivated"
	if brand.IsActive {
		message = "brand activated"
	}
	respondMessage(c, http.StatusOK, message, newBrandResponse(brand))
}

type sortOrderRequest struct {
	SortOrder *int `json:"sortOrder" binding:"required"`
}

func (h HandlerSet) UpdateBrandSortOrder(c *gin.Context) {
	var req sortOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	brand, err := h.catalog.UpdateSortOrder(c.Request.Context(), c.Param("id"), *req.SortOrder)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "brand sort order updated", newBrandResponse(brand))
}

type categoryStatResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Active   int    `json:"active"`
}

func (h HandlerSet) CategoryStats(c *gin.Context) {
	stats, err := h.catalog.CategoryStats(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	resp := make([]categoryStatResponse, 0, len(stats))
	for _, stat := range stats {
		resp = append(resp, categoryStatResponse{
			Category: string(stat.Category),
			Count:    stat.Count,
			Active:   stat.Active,
		})
	}
	respondData(c, http.StatusOK, resp)
}
