package model

// Catalog entities back the guidance directory: admin-managed reference data
// browsed alongside assessment results.

// swagger:model University
type University struct {
	BaseModel
	Name        string   `gorm:"size:255;not null" json:"name"`
	Location    string   `gorm:"size:255" json:"location"`
	Website     string   `gorm:"size:255" json:"website"`
	Description string   `gorm:"type:text" json:"description"`
	Courses     []Course `gorm:"foreignKey:UniversityID" json:"courses,omitempty"`
}

func (University) TableName() string {
	return "universities"
}

// swagger:model Company
type Company struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Industry    string `gorm:"size:100" json:"industry"`
	Location    string `gorm:"size:255" json:"location"`
	Website     string `gorm:"size:255" json:"website"`
	Description string `gorm:"type:text" json:"description"`
}

func (Company) TableName() string {
	return "companies"
}

// swagger:model Course
type Course struct {
	BaseModel
	UniversityID *uint  `gorm:"index;type:bigint unsigned" json:"universityId,omitempty"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Field        string `gorm:"size:100" json:"field"`
	Duration     string `gorm:"size:50" json:"duration"`
	Description  string `gorm:"type:text" json:"description"`
}

func (Course) TableName() string {
	return "courses"
}
