package controller

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leon37/NetoLedger/internal/api/middleware"
	"github.com/leon37/NetoLedger/internal/api/response"
	"github.com/leon37/NetoLedger/internal/service"
)

type ClassifyController struct {
	service *service.ClassifyService
}

// NewClassifyController builds the controller.
func NewClassifyController(s *service.ClassifyService) *ClassifyController {
	return &ClassifyController{service: s}
}

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	Description string `json:"description" binding:"required"`
	Locale      string `json:"locale"`
}

// Classify categorizes one transaction description.
// @Summary Classify a transaction
// @Description Assigns a category and subcategory to a bank movement description. When the model is unavailable or answers badly the fallback category is returned with a non-SUCCESS ia_status.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Transaction description"
// @Success 200 {object} model.ClassificationResult
// @Failure 400 {object} response.ErrorBody "description missing"
// @Router /classify [post]
func (ctrl *ClassifyController) Classify(c *gin.Context) {
	// 1. Validate the request
	var req ClassifyRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		response.Error(c, http.StatusBadRequest, "missing required key 'description' in the JSON body")
		return
	}

	// 2. Classify
	result, outcome := ctrl.service.Classify(c.Request.Context(), req.Description, req.Locale)
	if outcome.Failed() {
		slog.Warn("Classification fell back", "request_id", c.GetString(middleware.RequestIDKey), "ia_status", result.IAStatus)
	}

	// 3. Fallback categories are valid data for the client, so every outcome is a 200.
	response.JSON(c, http.StatusOK, result)
}

