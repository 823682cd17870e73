package controller

import (
	"errors"
	"strconv"

	"career_guidance_backend/internal/service"
	"career_guidance_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogController serves the guidance directory: universities, companies
// and courses. Reads are public, writes are admin-only (enforced in the
// router).
type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

func pageParams(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// @Summary List universities
// @Tags catalog
// @Produce json
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param search query string false "name filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/universities [get]
func (c *CatalogController) ListUniversities(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	list, total, err := c.CatalogService.ListUniversities(page, limit, ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

// @Summary Get one university with its courses
// @Tags catalog
// @Produce json
// @Param id path int true "university id"
// @Success 200 {object} util.Response{data=model.University}
// @Failure 404 {object} util.Response
// @Router /api/universities/{id} [get]
func (c *CatalogController) GetUniversity(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	u, err := c.CatalogService.GetUniversity(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, u)
}

// @Summary Create a university
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.UniversityRequest true "university payload"
// @Success 201 {object} util.Response{data=model.University}
// @Router /api/admin/universities [post]
func (c *CatalogController) CreateUniversity(ctx *gin.Context) {
	var req service.UniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	u, err := c.CatalogService.CreateUniversity(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, u)
}

// @Summary Update a university
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "university id"
// @Param body body service.UniversityRequest true "university payload"
// @Success 200 {object} util.Response{data=model.University}
// @Router /api/admin/universities/{id} [put]
func (c *CatalogController) UpdateUniversity(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req service.UniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	u, err := c.CatalogService.UpdateUniversity(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, u)
}

// @Summary Delete a university
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "university id"
// @Success 200 {object} util.Response
// @Router /api/admin/universities/{id} [delete]
func (c *CatalogController) DeleteUniversity(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.CatalogService.DeleteUniversity(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "university deleted"})
}

// @Summary List companies
// @Tags catalog
// @Produce json
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param search query string false "name filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/companies [get]
func (c *CatalogController) ListCompanies(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	list, total, err := c.CatalogService.ListCompanies(page, limit, ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

// @Summary Get one company
// @Tags catalog
// @Produce json
// @Param id path int true "company id"
// @Success 200 {object} util.Response{data=model.Company}
// @Failure 404 {object} util.Response
// @Router /api/companies/{id} [get]
func (c *CatalogController) GetCompany(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	company, err := c.CatalogService.GetCompany(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, company)
}

// @Summary Create a company
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CompanyRequest true "company payload"
// @Success 201 {object} util.Response{data=model.Company}
// @Router /api/admin/companies [post]
func (c *CatalogController) CreateCompany(ctx *gin.Context) {
	var req service.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	company, err := c.CatalogService.CreateCompany(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, company)
}

// @Summary Update a company
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "company id"
// @Param body body service.CompanyRequest true "company payload"
// @Success 200 {object} util.Response{data=model.Company}
// @Router /api/admin/companies/{id} [put]
func (c *CatalogController) UpdateCompany(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req service.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	company, err := c.CatalogService.UpdateCompany(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, company)
}

// @Summary Delete a company
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "company id"
// @Success 200 {object} util.Response
// @Router /api/admin/companies/{id} [delete]
func (c *CatalogController) DeleteCompany(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.CatalogService.DeleteCompany(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "company deleted"})
}

// @Summary List courses
// @Tags catalog
// @Produce json
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param field query string false "field of study filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	list, total, err := c.CatalogService.ListCourses(page, limit, ctx.Query("field"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

// @Summary Get one course
// @Tags catalog
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	course, err := c.CatalogService.GetCourse(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// @Summary Create a course
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CourseRequest true "course payload"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/admin/courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.CatalogService.CreateCourse(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary Update a course
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Param body body service.CourseRequest true "course payload"
// @Success 200 {object} util.Response{data=model.Course}
// @Router /api/admin/courses/{id} [put]
func (c *CatalogController) UpdateCourse(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.CatalogService.UpdateCourse(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// @Summary Delete a course
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *CatalogController) DeleteCourse(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.CatalogService.DeleteCourse(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "course deleted"})
}
