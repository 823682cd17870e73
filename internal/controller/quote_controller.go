package controller

import (
	"strconv"

	"career_guidance_backend/internal/service"
	"career_guidance_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuoteController struct {
	QuoteService *service.QuoteService
}

func NewQuoteController(quoteService *service.QuoteService) *QuoteController {
	return &QuoteController{QuoteService: quoteService}
}

// @Summary Current inspirational quote
// @Description Returns the quote shown on page headers
// @Tags quotes
// @Produce json
// @Success 200 {object} util.Response{data=model.Quote}
// @Router /api/quote [get]
func (c *QuoteController) GetCurrentQuote(ctx *gin.Context) {
	quote, err := c.QuoteService.GetCurrentQuote()
	if err != nil || quote == nil {
		util.Success(ctx, nil)
		return
	}
	util.Success(ctx, gin.H{"content": quote.Content, "author": quote.Author})
}

// @Summary List all quotes
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Quote}
// @Router /api/admin/quotes [get]
func (c *QuoteController) GetAllQuotes(ctx *gin.Context) {
	quotes, err := c.QuoteService.GetAllQuotes()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}
	util.Success(ctx, quotes)
}

// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuoteRequest true "quote payload"
// @Success 201 {object} util.Response{data=model.Quote}
// @Router /api/admin/quotes [post]
func (c *QuoteController) CreateQuote(ctx *gin.Context) {
	var req service.QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quote, err := c.QuoteService.CreateQuote(req)
	if err != nil {
		util.InternalServerError(ctx)
		return
	}
	util.Created(ctx, quote)
}

// @Summary Update a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quote id"
// @Success 200 {object} util.Response
// @Router /api/admin/quotes/{id} [put]
func (c *QuoteController) UpdateQuote(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req struct {
		Content   string `json:"content" binding:"required"`
		Author    string `json:"author"`
		IsEnabled *bool  `json:"isEnabled" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QuoteService.UpdateQuote(uint(id), req.Content, req.Author, *req.IsEnabled); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"message": "quote updated"})
}

// @Summary Delete a quote
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quote id"
// @Success 200 {object} util.Response
// @Router /api/admin/quotes/{id} [delete]
func (c *QuoteController) DeleteQuote(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.QuoteService.DeleteQuote(uint(id)); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"message": "quote deleted"})
}

// @Summary Switch the current quote
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quote id"
// @Success 200 {object} util.Response
// @Router /api/admin/quotes/{id}/switch [post]
func (c *QuoteController) SwitchQuote(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.QuoteService.SwitchToQuote(uint(id)); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"message": "quote switched"})
}
