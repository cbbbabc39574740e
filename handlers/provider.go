package handlers

import (
	"net/http"

	"autohub/models"
	"autohub/services/provider"
	"autohub/services/review"

	"github.com/gin-gonic/gin"
)

// ProviderHandler serves the public provider directory and its reviews.
type ProviderHandler struct {
	Providers provider.ProviderService
	Reviews   review.ReviewService
}

func NewProviderHandler(providers provider.ProviderService, reviews review.ReviewService) *ProviderHandler {
	return &ProviderHandler{Providers: providers, Reviews: reviews}
}

func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	providers, err := h.Providers.ListApproved(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	p, err := h.Providers.GetProviderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListReviewsHandler returns approved reviews only.
func (h *ProviderHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Reviews.ListForProvider(c.Request.Context(), c.Param("id"), models.ReviewApproved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ProviderHandler) SubmitReviewHandler(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	rv, err := h.Reviews.Submit(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}
