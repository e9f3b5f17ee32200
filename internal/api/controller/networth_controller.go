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

type NetworthController struct {
	service *service.NetworthService
}

// NewNetworthController builds the controller.
func NewNetworthController(s *service.NetworthService) *NetworthController {
	return &NetworthController{service: s}
}

// NetworthResumeRequest is the body of POST /networthResume.
type NetworthResumeRequest struct {
	UID          string `json:"uid" binding:"required"`
	UserQuestion string `json:"user_question"`
	Locale       string `json:"locale"`
}

// Resume answers a question about the user's net worth.
// @Summary Net-worth summary
// @Description Loads the user's asset documents and asks the model to summarize them, optionally answering a question.
// @Tags Networth
// @Accept json
// @Produce json
// @Param request body NetworthResumeRequest true "User and question"
// @Success 200 {object} model.SummaryResult "SUCCESS or OFFLINE"
// @Failure 400 {object} response.ErrorBody "uid missing"
// @Failure 500 {object} model.SummaryResult "the model failed (resume is ERROR)"
// @Router /networthResume [post]
func (ctrl *NetworthController) Resume(c *gin.Context) {
	// 1. Validate the request
	var req NetworthResumeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	uid := strings.TrimSpace(req.UID)
	if uid == "" {
		response.Error(c, http.StatusBadRequest, "missing required key 'uid' in the JSON body")
		return
	}

	// 2. Fetch and summarize
	result, outcome, err := ctrl.service.Summarize(c.Request.Context(), uid, req.UserQuestion, req.Locale)
	if err != nil {
		// Store details stay in the log.
		slog.Error("Net-worth resume failed", "request_id", c.GetString(middleware.RequestIDKey), "uid", uid, "error", err)
		response.Error(c, http.StatusInternalServerError, "could not build the net-worth summary, please try again later")
		return
	}

	// 3. A failed model call has nothing useful to show: 500 with the fallback body.
	if outcome.Failed() {
		response.JSON(c, http.StatusInternalServerError, result)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
