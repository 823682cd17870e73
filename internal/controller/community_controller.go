package controller

import (
	"errors"
	"strconv"

	"career_guidance_backend/internal/service"
	"career_guidance_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

// @Summary List shared links
// @Tags community
// @Produce json
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param tag query string false "tag filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/community/links [get]
func (c *CommunityController) ListLinks(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	links, total, err := c.CommunityService.ListLinks(page, limit, ctx.Query("tag"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: links, Total: total, Page: page, Limit: limit})
}

// @Summary Get one shared link with comments
// @Tags community
// @Produce json
// @Param id path string true "link id"
// @Success 200 {object} util.Response{data=model.SharedLink}
// @Failure 404 {object} util.Response
// @Router /api/community/links/{id} [get]
func (c *CommunityController) GetLink(ctx *gin.Context) {
	link, err := c.CommunityService.GetLink(ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, link)
}

// @Summary Share a link
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ShareLinkRequest true "link payload"
// @Success 201 {object} util.Response{data=model.SharedLink}
// @Router /api/community/links [post]
func (c *CommunityController) ShareLink(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ShareLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	link, err := c.CommunityService.ShareLink(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, link)
}

// @Summary Upvote a link
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path string true "link id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/community/links/{id}/upvote [post]
func (c *CommunityController) UpvoteLink(ctx *gin.Context) {
	if err := c.CommunityService.UpvoteLink(ctx.Param("id")); err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "upvoted"})
}

// @Summary Delete a link
// @Description Author or admin only
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path string true "link id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/community/links/{id} [delete]
func (c *CommunityController) DeleteLink(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CommunityService.DeleteLink(ctx.Param("id"), claims); err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "link deleted"})
}

// @Summary List comments on a link
// @Tags community
// @Produce json
// @Param id path string true "link id"
// @Success 200 {object} util.Response{data=[]model.LinkComment}
// @Router /api/community/links/{id}/comments [get]
func (c *CommunityController) ListComments(ctx *gin.Context) {
	comments, err := c.CommunityService.ListComments(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// @Summary Comment on a link
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "link id"
// @Param body body service.CommentRequest true "comment payload"
// @Success 201 {object} util.Response{data=model.LinkComment}
// @Failure 404 {object} util.Response
// @Router /api/community/links/{id}/comments [post]
func (c *CommunityController) AddComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommunityService.AddComment(ctx.Param("id"), claims.UserID, req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Created(ctx, comment)
}

// @Summary Delete a comment
// @Description Author or admin only
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path string true "comment id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/community/comments/{id} [delete]
func (c *CommunityController) DeleteComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CommunityService.DeleteComment(ctx.Param("id"), claims); err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "comment deleted"})
}

func (c *CommunityController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrLinkNotFound), errors.Is(err, util.ErrCommentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
