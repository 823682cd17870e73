package repository

import (
	"career_guidance_backend/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) CreateUniversity(u *model.University) error {
	return r.DB.Create(u).Error
}

func (r *CatalogRepository) FindUniversityByID(id uint) (*model.University, error) {
	var u model.University
	err := r.DB.Preload("Courses").First(&u, id).Error
	return &u, err
}

func (r *CatalogRepository) ListUniversities(page, limit int, search string) ([]model.University, int64, error) {
	var list []model.University
	var total int64
	query := r.DB.Model(&model.University{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("name asc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *CatalogRepository) UpdateUniversity(u *model.University) error {
	return r.DB.Save(u).Error
}

func (r *CatalogRepository) DeleteUniversity(id uint) error {
	return r.DB.Delete(&model.University{}, id).Error
}

func (r *CatalogRepository) CreateCompany(c *model.Company) error {
	return r.DB.Create(c).Error
}

func (r *CatalogRepository) FindCompanyByID(id uint) (*model.Company, error) {
	var c model.Company
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *CatalogRepository) ListCompanies(page, limit int, search string) ([]model.Company, int64, error) {
	var list []model.Company
	var total int64
	query := r.DB.Model(&model.Company{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("name asc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *CatalogRepository) UpdateCompany(c *model.Company) error {
	return r.DB.Save(c).Error
}

func (r *CatalogRepository) DeleteCompany(id uint) error {
	return r.DB.Delete(&model.Company{}, id).Error
}

func (r *CatalogRepository) CreateCourse(c *model.Course) error {
	return r.DB.Create(c).Error
}

func (r *CatalogRepository) FindCourseByID(id uint) (*model.Course, error) {
	var c model.Course
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *CatalogRepository) ListCourses(page, limit int, field string) ([]model.Course, int64, error) {
	var list []model.Course
	var total int64
	query := r.DB.Model(&model.Course{})
	if field != "" {
		query = query.Where("field = ?", field)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("name asc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *CatalogRepository) UpdateCourse(c *model.Course) error {
	return r.DB.Save(c).Error
}

func (r *CatalogRepository) DeleteCourse(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}
