package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-portal/internal/api/dto"
	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/service"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// ApplicationsHandler manages job application endpoints.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// ListMine GET /job-application?email=.
func (h *ApplicationsHandler) ListMine(c *fiber.Ctx) error {
	email := c.Query("email")
	if _, err := auth.RequireOwner(c, email); err != nil {
		return err
	}
	items, err := h.service.ListForApplicant(c.UserContext(), email)
	if err != nil {
		return err
	}
	out := make([]dto.EnrichedApplication, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewEnrichedApplication(item.Application, item.Job))
	}
	return c.JSON(out)
}

// ListForJob GET /job-applications/jobs/:job_id.
func (h *ApplicationsHandler) ListForJob(c *fiber.Ctx) error {
	apps, err := h.service.ListForJob(c.UserContext(), c.Params("job_id"))
	if err != nil {
		return err
	}
	return c.JSON(apps)
}

// Apply POST /job-applications.
func (h *ApplicationsHandler) Apply(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if _, err := auth.RequireOwner(c, req.ApplicantEmail); err != nil {
		return err
	}
	app, err := h.service.Apply(c.UserContext(), service.ApplicationCreateInput{
		JobID:          req.JobID,
		ApplicantEmail: req.ApplicantEmail,
		LinkedIn:       req.LinkedIn,
		GitHub:         req.GitHub,
		Resume:         req.Resume,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InsertResult{Acknowledged: true, InsertedID: app.ID})
}

// UpdateStatus PATCH /job-applications/:id. Only the recruiter owning the
// parent job may review an application.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	res, err := h.service.UpdateStatus(c.UserContext(), principal.Email, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUpdateResult(res))
}
