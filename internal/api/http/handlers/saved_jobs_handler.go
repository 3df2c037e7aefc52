package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// SavedJobsHandler manages bookmark endpoints.
type SavedJobsHandler struct {
	service *service.SavedJobService
}

// NewSavedJobsHandler constructs handler.
func NewSavedJobsHandler(savedJobService *service.SavedJobService) *SavedJobsHandler {
	return &SavedJobsHandler{service: savedJobService}
}

// Save POST /api/saved-jobs.
func (h *SavedJobsHandler) Save(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SaveJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.JobID <= 0 {
		return apperrors.NewValidationError("jobId is required", nil)
	}

	saved, err := h.service.Save(c.Context(), actor, req.JobID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "job saved successfully",
		"savedJob": dto.NewSavedJobResponse(saved),
	})
}

// ListForUser GET /api/saved-jobs/user/:userId.
func (h *SavedJobsHandler) ListForUser(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	saved, err := h.service.ListForUser(c.Context(), actor, userID)
	if err != nil {
		return err
	}
	items := make([]dto.SavedJobResponse, 0, len(saved))
	for i := range saved {
		items = append(items, dto.NewSavedJobResponse(&saved[i]))
	}
	return c.JSON(items)
}

// Remove DELETE /api/saved-jobs/:id.
func (h *SavedJobsHandler) Remove(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	savedID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Context(), actor, savedID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "saved job removed successfully"})
}

// Check GET /api/saved-jobs/check/:jobId.
func (h *SavedJobsHandler) Check(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	jobID, err := paramID(c, "jobId")
	if err != nil {
		return err
	}

	isSaved, savedID, err := h.service.Check(c.Context(), actor, jobID)
	if err != nil {
		return err
	}
	resp := dto.SavedCheckResponse{IsSaved: isSaved}
	if isSaved {
		resp.SavedJobID = &savedID
	}
	return c.JSON(resp)
}
