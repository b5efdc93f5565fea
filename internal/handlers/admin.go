package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandhub/api/internal/repository"
	"brandhub/api/internal/service"
)

func (h HandlerSet) Dashboard(c *gin.Context) {
	stats, err := h.catalog.Dashboard(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"brands": gin.H{
			"total":    stats.TotalBrands,
			"active":   stats.ActiveBrands,
			"inactive": stats.InactiveBrands,
		},
		"categories":   stats.Categories,
		"recentBrands": newBrandResponses(stats.RecentBrands),
		"admins": gin.H{
			"total": stats.ActiveAdmins,
		},
	})
}

// AdminListBrands is the panel listing: same filters as the public one but
// newest first by default.
func (h HandlerSet) AdminListBrands(c *gin.Context) {
	filter := parseBrandFilter(c, "createdAt", "desc")

	page, err := h.catalog.List(c.Request.Context(), filter)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondPage(c, newBrandResponses(page.Items), page.Pagination)
}

type bulkActionRequest struct {
	Action   string   `json:"action" binding:"required"`
	BrandIDs []string `json:"brandIds" binding:"required"`
}

func (h HandlerSet) BulkBrandAction(c *gin.Context) {
	var req bulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	affected, err := h.catalog.BulkAction(c.Request.Context(), service.BulkAction(req.Action), req.BrandIDs)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, fmt.Sprintf("%d brands processed", affected), gin.H{
		"action":        req.Action,
		"affectedCount": affected,
	})
}

type updateSortOrdersRequest struct {
	SortOrders []repository.SortOrderUpdate `json:"sortOrders" binding:"required"`
}

func (h HandlerSet) UpdateBrandSortOrders(c *gin.Context) {
	var req updateSortOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	affected, err := h.catalog.UpdateSortOrders(c.Request.Context(), req.SortOrders)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "sort orders updated", gin.H{
		"affectedCount": affected,
	})
}

func (h HandlerSet) Settings(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{
		"appName":           "brandhub",
		"environment":       h.cfg.Environment,
		"maxLogoSize":       "10MB",
		"allowedImageTypes": []string{"jpg", "jpeg", "png", "gif", "webp"},
		"categories":        []string{"giyim", "ayakkabı", "aksesuar", "ev tekstili", "diğer"},
		"pagination": gin.H{
			"defaultLimit": repository.DefaultPageSize,
			"maxLimit":     repository.MaxPageSize,
		},
	})
}
