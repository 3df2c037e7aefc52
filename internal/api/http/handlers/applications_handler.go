package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplicationsHandler manages application endpoints.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// Submit POST /api/applications.
func (h *ApplicationsHandler) Submit(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	app, err := h.service.Submit(c.Context(), actor, service.ApplicationInput{
		JobID:       req.JobID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Education:   req.Education,
		Experience:  req.Experience,
		Skills:      req.Skills,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":     "application submitted successfully",
		"application": dto.NewApplicationResponse(app),
	})
}

// ListForJob GET /api/applications/job/:jobId.
func (h *ApplicationsHandler) ListForJob(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	jobID, err := paramID(c, "jobId")
	if err != nil {
		return err
	}

	var status *domain.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := domain.ParseApplicationStatus(raw)
		if !ok {
			return apperrors.NewValidationError("invalid application status", map[string]any{"status": raw})
		}
		status = &parsed
	}

	apps, err := h.service.ListForJob(c.Context(), actor, jobID, status)
	if err != nil {
		return err
	}
	return c.JSON(applicationResponses(apps))
}

// ListForUser GET /api/applications/user/:userId.
func (h *ApplicationsHandler) ListForUser(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	apps, err := h.service.ListForUser(c.Context(), actor, userID)
	if err != nil {
		return err
	}
	return c.JSON(applicationResponses(apps))
}

// Get GET /api/applications/:id.
func (h *ApplicationsHandler) Get(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	appID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	app, err := h.service.Get(c.Context(), actor, appID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationResponse(app))
}

// UpdateStatus PATCH /api/applications/:id/status.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	appID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	app, err := h.service.UpdateStatus(c.Context(), actor, appID, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":     "application status updated successfully",
		"application": dto.NewApplicationResponse(app),
	})
}

// Delete DELETE /api/applications/:id.
func (h *ApplicationsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	appID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), actor, appID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "application deleted successfully"})
}

// StatsForEmployer GET /api/applications/stats/employer/:employerId.
func (h *ApplicationsHandler) StatsForEmployer(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	employerID, err := paramID(c, "employerId")
	if err != nil {
		return err
	}

	stats, err := h.service.StatsForEmployer(c.Context(), actor, employerID)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func applicationResponses(apps []domain.Application) []dto.ApplicationResponse {
	items := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		items = append(items, dto.NewApplicationResponse(&apps[i]))
	}
	return items
}
