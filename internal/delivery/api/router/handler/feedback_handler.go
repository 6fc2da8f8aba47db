package handler

import (
	"net/http"

	"zeneasy/internal/delivery/api/middleware"
	"zeneasy/internal/delivery/api/response"
	"zeneasy/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FeedbackHandler collects and lists site feedback.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(feedbackUC usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{feedbackUC: feedbackUC}
}

// SubmitFeedbackRequest is the body of POST /feedback.
type SubmitFeedbackRequest struct {
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"gte=0,lte=5"`
}

// Submit stores feedback from the token user.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "A user token is required")
	}

	var req SubmitFeedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, err := h.feedbackUC.Submit(c.Request().Context(), userID, req.Text, req.Rating)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Feedback received")
}

// List returns feedback, newest first.
func (h *FeedbackHandler) List(c echo.Context) error {
	list, err := h.feedbackUC.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listPayload{Items: list.Entries, Total: list.Total}, "Feedback retrieved")
}
