package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// JobsHandler manages job posting endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// List GET /api/jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	filter, page, limit := parseJobQuery(c)
	jobs, total, err := h.service.ListJobs(c.Context(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return c.JSON(dto.JobListResponse{
		Jobs:        items,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	})
}

// Get GET /api/jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	jobID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	// Logged-in viewers dedupe by identity, anonymous ones by address.
	viewerKey := c.IP()
	if user, ok := auth.UserFromContext(c); ok {
		viewerKey = "u" + strconv.FormatInt(user.ID, 10)
	}

	job, err := h.service.GetJob(c.Context(), jobID, viewerKey)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// Create POST /api/jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.CreateJob(c.Context(), actor, jobInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "job posted successfully",
		"job":     dto.NewJobResponse(job),
	})
}

// Update PUT /api/jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	jobID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.UpdateJob(c.Context(), actor, jobID, jobInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "job updated successfully",
		"job":     dto.NewJobResponse(job),
	})
}

// Delete DELETE /api/jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	jobID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteJob(c.Context(), actor, jobID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "job deleted successfully"})
}

// ToggleActive PATCH /api/jobs/:id/toggle-active.
func (h *JobsHandler) ToggleActive(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	jobID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	job, err := h.service.ToggleActive(c.Context(), actor, jobID)
	if err != nil {
		return err
	}
	message := "job deactivated successfully"
	if job.IsActive {
		message = "job activated successfully"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"job":     dto.NewJobResponse(job),
	})
}

// ListByEmployer GET /api/jobs/employer/:employerId.
func (h *JobsHandler) ListByEmployer(c *fiber.Ctx) error {
	employerID, err := paramID(c, "employerId")
	if err != nil {
		return err
	}
	jobs, err := h.service.ListByEmployer(c.Context(), employerID)
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(items)
}

func jobInput(req dto.JobRequest) service.JobInput {
	return service.JobInput{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Company:          req.Company,
		CompanyLogo:      req.CompanyLogo,
		Location:         req.Location,
		Salary:           req.Salary,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		JobType:          req.JobType,
		Industry:         req.Industry,
		ExperienceLevel:  req.ExperienceLevel,
		Deadline:         req.Deadline,
		IsFeatured:       req.IsFeatured,
	}
}

func parseJobQuery(c *fiber.Ctx) (repository.JobFilter, int, int) {
	filter := repository.JobFilter{}

	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	if location := c.Query("location"); location != "" {
		filter.Location = &location
	}
	if raw := c.Query("jobType"); raw != "" {
		if jobType, ok := domain.ParseJobType(raw); ok {
			filter.JobType = &jobType
		}
	}
	if industry := c.Query("industry"); industry != "" {
		filter.Industry = &industry
	}
	if raw := c.Query("experienceLevel"); raw != "" {
		if level, ok := domain.ParseExperienceLevel(raw); ok {
			filter.ExperienceLevel = &level
		}
	}
	if raw := c.Query("salaryMin"); raw != "" {
		if min, err := strconv.Atoi(raw); err == nil {
			filter.SalaryMin = &min
		}
	}
	if raw := c.Query("salaryMax"); raw != "" {
		if max, err := strconv.Atoi(raw); err == nil {
			filter.SalaryMax = &max
		}
	}
	filter.FeaturedOnly = c.Query("featured") == "true"

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	return filter, page, limit
}
