package handlers

import (
	"net/http"

	"autohub/models"
	"autohub/services/admin"
	"autohub/services/provider"
	"autohub/services/review"
	"autohub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	AdminService    admin.AdminService
	UserService     user.UserService
	ProviderService provider.ProviderService
	ReviewService   review.ReviewService
}

func NewAdminHandler(as admin.AdminService, us user.UserService, ps provider.ProviderService, rs review.ReviewService) *AdminHandler {
	return &AdminHandler{
		AdminService:    as,
		UserService:     us,
		ProviderService: ps,
		ReviewService:   rs,
	}
}

// StatsHandler returns the dashboard summary plus the monthly revenue series.
func (ah *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := ah.AdminService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	months, err := ah.AdminService.RevenueByMonth(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "revenueByMonth": months})
}

// GetAllUsersHandler returns all users (with sensitive fields excluded).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ah *AdminHandler) ToggleUserHandler(c *gin.Context) {
	u, err := ah.UserService.ToggleUserActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetAllProvidersHandler returns every provider, approved or not.
func (ah *AdminHandler) GetAllProvidersHandler(c *gin.Context) {
	providers, err := ah.ProviderService.ListAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all providers", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (ah *AdminHandler) SetApprovalHandler(c *gin.Context) {
	var req struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := ah.ProviderService.SetApproval(c.Request.Context(), c.Param("id"), *req.Approved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ah *AdminHandler) PendingReviewsHandler(c *gin.Context) {
	queue, err := ah.ReviewService.ModerationQueue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, queue)
}

// ModerateReviewHandler takes {"status": "approved"|"rejected"}.
func (ah *AdminHandler) ModerateReviewHandler(c *gin.Context) {
	var req struct {
		Status models.ReviewStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	rv, err := ah.ReviewService.Moderate(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}
