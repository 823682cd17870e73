package service

import (
	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/repository"
)

// CatalogService manages the guidance directory reference data.
type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

type UniversityRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Website     string `json:"website" binding:"omitempty,url"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateUniversity(req UniversityRequest) (*model.University, error) {
	u := &model.University{
		Name:        req.Name,
		Location:    req.Location,
		Website:     req.Website,
		Description: req.Description,
	}
	if err := s.Repo.CreateUniversity(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *CatalogService) UpdateUniversity(id uint, req UniversityRequest) (*model.University, error) {
	u, err := s.Repo.FindUniversityByID(id)
	if err != nil {
		return nil, err
	}
	u.Name = req.Name
	u.Location = req.Location
	u.Website = req.Website
	u.Description = req.Description
	if err := s.Repo.UpdateUniversity(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *CatalogService) ListUniversities(page, limit int, search string) ([]model.University, int64, error) {
	return s.Repo.ListUniversities(page, limit, search)
}

func (s *CatalogService) GetUniversity(id uint) (*model.University, error) {
	return s.Repo.FindUniversityByID(id)
}

func (s *CatalogService) DeleteUniversity(id uint) error {
	return s.Repo.DeleteUniversity(id)
}

type CompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Website     string `json:"website" binding:"omitempty,url"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateCompany(req CompanyRequest) (*model.Company, error) {
	c := &model.Company{
		Name:        req.Name,
		Industry:    req.Industry,
		Location:    req.Location,
		Website:     req.Website,
		Description: req.Description,
	}
	if err := s.Repo.CreateCompany(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) UpdateCompany(id uint, req CompanyRequest) (*model.Company, error) {
	c, err := s.Repo.FindCompanyByID(id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Industry = req.Industry
	c.Location = req.Location
	c.Website = req.Website
	c.Description = req.Description
	if err := s.Repo.UpdateCompany(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) ListCompanies(page, limit int, search string) ([]model.Company, int64, error) {
	return s.Repo.ListCompanies(page, limit, search)
}

func (s *CatalogService) GetCompany(id uint) (*model.Company, error) {
	return s.Repo.FindCompanyByID(id)
}

func (s *CatalogService) DeleteCompany(id uint) error {
	return s.Repo.DeleteCompany(id)
}

type CourseRequest struct {
	UniversityID *uint  `json:"universityId"`
	Name         string `json:"name" binding:"required"`
	Field        string `json:"field"`
	Duration     string `json:"duration"`
	Description  string `json:"description"`
}

func (s *CatalogService) CreateCourse(req CourseRequest) (*model.Course, error) {
	c := &model.Course{
		UniversityID: req.UniversityID,
		Name:         req.Name,
		Field:        req.Field,
		Duration:     req.Duration,
		Description:  req.Description,
	}
	if err := s.Repo.CreateCourse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) UpdateCourse(id uint, req CourseRequest) (*model.Course, error) {
	c, err := s.Repo.FindCourseByID(id)
	if err != nil {
		return nil, err
	}
	c.UniversityID = req.UniversityID
	c.Name = req.Name
	c.Field = req.Field
	c.Duration = req.Duration
	c.Description = req.Description
	if err := s.Repo.UpdateCourse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) ListCourses(page, limit int, field string) ([]model.Course, int64, error) {
	return s.Repo.ListCourses(page, limit, field)
}

func (s *CatalogService) GetCourse(id uint) (*model.Course, error) {
	return s.Repo.FindCourseByID(id)
}

func (s *CatalogService) DeleteCourse(id uint) error {
	return s.Repo.DeleteCourse(id)
}
