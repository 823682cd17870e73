package repository

import (
	"career_guidance_backend/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{DB: db}
}

func (r *CommunityRepository) CreateLink(link *model.SharedLink) error {
	return r.DB.Create(link).Error
}

func (r *CommunityRepository) FindLinkByID(id string) (*model.SharedLink, error) {
	var link model.SharedLink
	err := r.DB.Preload("Author").Preload("Comments.Author").Where("id = ?", id).First(&link).Error
	return &link, err
}

func (r *CommunityRepository) ListLinks(page, limit int, tag string) ([]model.SharedLink, int64, error) {
	var links []model.SharedLink
	var total int64
	query := r.DB.Model(&model.SharedLink{})
	if tag != "" {
		query = query.Where("tags LIKE ?", "%"+tag+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Author").Order("created_at desc").Offset(offset).Limit(limit).Find(&links).Error
	return links, total, err
}

func (r *CommunityRepository) DeleteLink(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.SharedLink{}).Error
}

func (r *CommunityRepository) IncrementLinkViews(id string) error {
	return r.DB.Model(&model.SharedLink{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *CommunityRepository) UpvoteLink(id string) error {
	return r.DB.Model(&model.SharedLink{}).Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
}

func (r *CommunityRepository) CreateComment(comment *model.LinkComment) error {
	return r.DB.Create(comment).Error
}

func (r *CommunityRepository) FindCommentByID(id string) (*model.LinkComment, error) {
	var comment model.LinkComment
	err := r.DB.Where("id = ?", id).First(&comment).Error
	return &comment, err
}

func (r *CommunityRepository) ListComments(linkID string) ([]model.LinkComment, error) {
	var comments []model.LinkComment
	err := r.DB.Preload("Author").Where("link_id = ?", linkID).
		Order("created_at asc").Find(&comments).Error
	return comments, err
}

func (r *CommunityRepository) DeleteComment(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.LinkComment{}).Error
}
