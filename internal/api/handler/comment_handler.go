package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumopress/user-directory/internal/core/ports"
)

// CommentHandler backs the public comment widget. No auth: the widget
// posts anonymously.
type CommentHandler struct {
	comments ports.CommentService
}

func NewCommentHandler(comments ports.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type submitCommentRequest struct {
	Name           string `json:"name" validate:"required"`
	Comment        string `json:"comment" validate:"required"`
	PageIdentifier string `json:"page_identifier" validate:"required"`
}

type commentItemResponse struct {
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
}

type submitCommentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// List handles GET /v1/comments?page_id=<id>.
//
// @Summary      List comments for a page
// @Tags         comments
// @Produce      json
// @Param        page_id  query     string  true  "Page identifier"
// @Success      200      {array}   commentItemResponse
// @Failure      400      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /v1/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	pageID := c.QueryParam("page_id")

	views, err := h.comments.ListByPage(c.Request().Context(), pageID)
	if err != nil {
		return err
	}

	items := make([]commentItemResponse, 0, len(views))
	for _, v := range views {
		items = append(items, commentItemResponse{
			Name:      v.Name,
			Comment:   v.Comment,
			Timestamp: v.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, items)
}

// Submit handles POST /v1/comments.
//
// @Summary      Submit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      submitCommentRequest  true  "Comment"
// @Success      201   {object}  submitCommentResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/comments [post]
func (h *CommentHandler) Submit(c echo.Context) error {
	var req submitCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.comments.Submit(c.Request().Context(), ports.SubmitCommentInput{
		Name:           req.Name,
		Comment:        req.Comment,
		PageIdentifier: req.PageIdentifier,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, submitCommentResponse{Status: "success"})
}
