package controller

import (
	"errors"
	"fmt"
	"strconv"

	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/scoring"
	"career_guidance_backend/internal/service"
	"career_guidance_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const sessionTokenHeader = "X-Session-Token"

type AssessmentController struct {
	AssessmentService *service.AssessmentService
	ExportService     *service.ExportService
}

func NewAssessmentController(assessmentService *service.AssessmentService, exportService *service.ExportService) *AssessmentController {
	return &AssessmentController{
		AssessmentService: assessmentService,
		ExportService:     exportService,
	}
}

// ListAssessments godoc
// @Summary List active assessments
// @Tags assessments
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.AssessmentType}
// @Router /api/assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	list, err := c.AssessmentService.ListAssessments()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// ListQuestions godoc
// @Summary Questions for one assessment
// @Description Returns the ordered question list without scoring internals
// @Tags assessments
// @Produce  json
// @Param   slug path string true "assessment slug"
// @Success 200 {object} util.Response{data=[]service.StudentQuestion}
// @Failure 404 {object} util.Response
// @Router /api/assessments/{slug}/questions [get]
func (c *AssessmentController) ListQuestions(ctx *gin.Context) {
	questions, err := c.AssessmentService.ListQuestions(ctx.Param("slug"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// StartAttempt godoc
// @Summary Start or resume an attempt
// @Description Opens an attempt for the assessment. Anonymous callers get a
// @Description session token back and must send it on every later call.
// @Tags attempts
// @Produce  json
// @Param   slug path string true "assessment slug"
// @Param   X-Session-Token header string false "session token from a prior start"
// @Success 201 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/assessments/{slug}/attempts [post]
func (c *AssessmentController) StartAttempt(ctx *gin.Context) {
	var userID *uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = &claims.UserID
	}

	attempt, err := c.AssessmentService.StartAttempt(ctx.Param("slug"), userID, ctx.GetHeader(sessionTokenHeader))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"attempt":      attempt,
		"sessionToken": attempt.SessionToken,
	})
}

// GetAttempt godoc
// @Summary Attempt status
// @Tags attempts
// @Produce  json
// @Param   id path int true "attempt id"
// @Success 200 {object} util.Response{data=model.UserAssessmentAttempt}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/attempts/{id} [get]
func (c *AssessmentController) GetAttempt(ctx *gin.Context) {
	attempt, err := c.authorizedAttempt(ctx)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// SubmitAnswer godoc
// @Summary Record one answer
// @Description Upserts the response for a question. Re-answering overwrites
// @Description the previous value. Completed attempts reject answers.
// @Tags attempts
// @Accept  json
// @Produce  json
// @Param   id path int true "attempt id"
// @Param   body body service.AnswerRequest true "answer payload"
// @Success 200 {object} util.Response{data=model.UserAssessmentResponse}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "attempt already completed"
// @Failure 422 {object} util.Response "no scoring rule for value"
// @Router /api/attempts/{id}/answers [post]
func (c *AssessmentController) SubmitAnswer(ctx *gin.Context) {
	attempt, err := c.authorizedAttempt(ctx)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AssessmentService.SubmitAnswer(attempt.ID, req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// CompleteAttempt godoc
// @Summary Complete an attempt and generate its report
// @Description Closes the attempt and runs scoring. A scoring failure leaves
// @Description the attempt open. Completing twice returns the same report.
// @Tags attempts
// @Produce  json
// @Param   id path int true "attempt id"
// @Success 200 {object} util.Response{data=model.Report}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response "no scoring rule for recorded value"
// @Router /api/attempts/{id}/complete [post]
func (c *AssessmentController) CompleteAttempt(ctx *gin.Context) {
	attempt, err := c.authorizedAttempt(ctx)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	report, err := c.AssessmentService.CompleteAttempt(attempt.ID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// GetResults godoc
// @Summary Results for a completed attempt
// @Tags attempts
// @Produce  json
// @Param   id path int true "attempt id"
// @Success 200 {object} util.Response{data=service.AttemptResults}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "attempt not completed"
// @Router /api/attempts/{id}/results [get]
func (c *AssessmentController) GetResults(ctx *gin.Context) {
	attempt, err := c.authorizedAttempt(ctx)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	results, err := c.AssessmentService.GetResults(attempt.ID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// ExportReport godoc
// @Summary Export the report as JSON
// @Tags attempts
// @Produce  json
// @Param   id path int true "attempt id"
// @Success 200 {object} util.Response{data=service.ReportExport}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "attempt not completed"
// @Router /api/assessments/attempts/{id}/export [get]
func (c *AssessmentController) ExportReport(ctx *gin.Context) {
	attempt, err := c.authorizedAttempt(ctx)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	export, err := c.ExportService.ExportJSON(attempt.ID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, export)
}

// ExportReportPDF godoc
// @Summary Export the report as PDF
// @Tags attempts
// @Produce  application/pdf
// @Param   id path int true "attempt id"
// @Success 200 {file} binary
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "attempt not completed"
// @Router /api/assessments/attempts/{id}/export/pdf [get]
func (c *AssessmentController) ExportReportPDF(ctx *gin.Context) {
	attempt, err := c.authorizedAttempt(ctx)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	out, err := c.ExportService.ExportPDF(ctx.Request.Context(), attempt.ID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	filename := fmt.Sprintf("attempt_%d_report.pdf", attempt.ID)
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(200, "application/pdf", out)
}

// CreateAssessment godoc
// @Summary Create an assessment type
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.AssessmentTypeRequest true "assessment payload"
// @Success 201 {object} util.Response{data=model.AssessmentType}
// @Router /api/admin/assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req service.AssessmentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t, err := c.AssessmentService.CreateAssessmentType(req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Created(ctx, t)
}

// UpdateAssessment godoc
// @Summary Update an assessment type
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "assessment id"
// @Param   body body service.AssessmentTypeRequest true "assessment payload"
// @Success 200 {object} util.Response{data=model.AssessmentType}
// @Failure 404 {object} util.Response
// @Router /api/admin/assessments/{id} [put]
func (c *AssessmentController) UpdateAssessment(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.AssessmentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t, err := c.AssessmentService.UpdateAssessmentType(uint(id), req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, t)
}

// CreateQuestion godoc
// @Summary Add a question to an assessment
// @Description The scoring map is validated before the question is stored.
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "assessment id"
// @Param   body body service.QuestionRequest true "question payload"
// @Success 201 {object} util.Response{data=model.AssessmentQuestion}
// @Failure 404 {object} util.Response
// @Router /api/admin/assessments/{id}/questions [post]
func (c *AssessmentController) CreateQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.AssessmentService.CreateQuestion(uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Created(ctx, q)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Param   body body service.QuestionRequest true "question payload"
// @Success 200 {object} util.Response{data=model.AssessmentQuestion}
// @Failure 404 {object} util.Response
// @Router /api/admin/questions/{id} [put]
func (c *AssessmentController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.AssessmentService.UpdateQuestion(uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, q)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *AssessmentController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.AssessmentService.DeleteQuestion(uint(id)); err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "question deleted"})
}

func (c *AssessmentController) authorizedAttempt(ctx *gin.Context) (*model.UserAssessmentAttempt, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, util.ErrAttemptNotFound
	}

	attempt, err := c.AssessmentService.GetAttempt(uint(id))
	if err != nil {
		return nil, err
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.AssessmentService.AuthorizeAccess(attempt, claims, ctx.GetHeader(sessionTokenHeader)); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (c *AssessmentController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrAssessmentNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrAttemptNotFound),
		errors.Is(err, util.ErrReportNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAttemptCompleted):
		util.Conflict(ctx, "attempt already completed")
	case errors.Is(err, util.ErrAttemptNotCompleted):
		util.Conflict(ctx, "attempt not completed")
	case errors.Is(err, scoring.ErrMissingScoringRule):
		util.UnprocessableEntity(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
