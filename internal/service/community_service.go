package service

import (
	"errors"

	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/util"

	"gorm.io/gorm"
)

// CommunityService covers shared resource links and their comment threads.
type CommunityService struct {
	Repo *repository.CommunityRepository
}

func NewCommunityService(repo *repository.CommunityRepository) *CommunityService {
	return &CommunityService{Repo: repo}
}

type ShareLinkRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	URL         string `json:"url" binding:"required,url"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

func (s *CommunityService) ShareLink(authorID uint, req ShareLinkRequest) (*model.SharedLink, error) {
	link := &model.SharedLink{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		AuthorID:    authorID,
		Tags:        req.Tags,
	}
	if err := s.Repo.CreateLink(link); err != nil {
		return nil, err
	}
	return s.Repo.FindLinkByID(link.ID)
}

func (s *CommunityService) ListLinks(page, limit int, tag string) ([]model.SharedLink, int64, error) {
	return s.Repo.ListLinks(page, limit, tag)
}

// GetLink loads one link and counts the view, best effort.
func (s *CommunityService) GetLink(id string) (*model.SharedLink, error) {
	link, err := s.Repo.FindLinkByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLinkNotFound
		}
		return nil, err
	}
	if err := s.Repo.IncrementLinkViews(id); err == nil {
		link.Views++
	}
	return link, nil
}

func (s *CommunityService) UpvoteLink(id string) error {
	if _, err := s.Repo.FindLinkByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLinkNotFound
		}
		return err
	}
	return s.Repo.UpvoteLink(id)
}

// DeleteLink allows the author or an admin to remove a link.
func (s *CommunityService) DeleteLink(id string, claims *util.Claims) error {
	link, err := s.Repo.FindLinkByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLinkNotFound
		}
		return err
	}
	if claims.Role != model.RoleAdmin && link.AuthorID != claims.UserID {
		return util.ErrPermissionDenied
	}
	return s.Repo.DeleteLink(id)
}

type CommentRequest struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parentId"`
}

func (s *CommunityService) AddComment(linkID string, authorID uint, req CommentRequest) (*model.LinkComment, error) {
	if _, err := s.Repo.FindLinkByID(linkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLinkNotFound
		}
		return nil, err
	}
	if req.ParentID != nil {
		parent, err := s.Repo.FindCommentByID(*req.ParentID)
		if err != nil || parent.LinkID != linkID {
			return nil, util.ErrCommentNotFound
		}
	}
	comment := &model.LinkComment{
		LinkID:   linkID,
		AuthorID: authorID,
		Content:  req.Content,
		ParentID: req.ParentID,
	}
	if err := s.Repo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommunityService) ListComments(linkID string) ([]model.LinkComment, error) {
	return s.Repo.ListComments(linkID)
}

func (s *CommunityService) DeleteComment(id string, claims *util.Claims) error {
	comment, err := s.Repo.FindCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCommentNotFound
		}
		return err
	}
	if claims.Role != model.RoleAdmin && comment.AuthorID != claims.UserID {
		return util.ErrPermissionDenied
	}
	return s.Repo.DeleteComment(id)
}
