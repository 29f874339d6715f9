package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-portal/internal/api/dto"
	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/service"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// JobsHandler manages job posting endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// ListJobs GET /jobs. With mine=true the listing is narrowed to the
// caller's own postings, which needs a valid credential.
func (h *JobsHandler) ListJobs(c *fiber.Ctx) error {
	filter := parseJobFilter(c)
	if c.QueryBool("mine") {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthorized access")
		}
		email := principal.Email
		filter.HREmail = &email
	}
	jobs, err := h.service.ListJobs(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}

// ListMyPosted GET /jobs/myposted.
func (h *JobsHandler) ListMyPosted(c *fiber.Ctx) error {
	email := c.Query("email")
	if _, err := auth.RequireOwner(c, email); err != nil {
		return err
	}
	jobs, err := h.service.ListPostedBy(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}

// GetJob GET /jobs/:id. An unknown job is rendered as null.
func (h *JobsHandler) GetJob(c *fiber.Ctx) error {
	job, err := h.service.GetJob(c.UserContext(), c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(nil)
	}
	if err != nil {
		return err
	}
	return c.JSON(job)
}

// CreateJob POST /jobs.
func (h *JobsHandler) CreateJob(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if _, err := auth.RequireOwner(c, req.HREmail); err != nil {
		return err
	}

	job, err := h.service.CreateJob(c.UserContext(), service.JobCreateInput{
		Title:               req.Title,
		Location:            req.Location,
		Type:                req.Type,
		Field:               req.Field,
		ApplicationDeadline: req.ApplicationDeadline,
		SalaryRange:         req.SalaryRange,
		Description:         req.Description,
		Company:             req.Company,
		CompanyLogo:         req.CompanyLogo,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Status:              req.Status,
		HRName:              req.HRName,
		HREmail:             req.HREmail,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InsertResult{Acknowledged: true, InsertedID: job.ID})
}

func parseJobFilter(c *fiber.Ctx) domain.JobFilter {
	var filter domain.JobFilter
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		filter.HREmail = &email
	}
	filter.LocationSearch = strings.TrimSpace(c.Query("search"))
	filter.MinSalary = positiveInt(c.Query("minSalary"))
	filter.MaxSalary = positiveInt(c.Query("maxSalary"))
	filter.SortBySalaryDesc = c.Query("sort") == "true"
	return filter
}

// positiveInt returns nil for empty, non-numeric or non-positive input.
func positiveInt(raw string) *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
