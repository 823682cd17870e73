package model

type SharedLink struct {
	UUIDBase
	Title       string        `gorm:"size:255;not null" json:"title"`
	URL         string        `gorm:"size:2048;not null" json:"url"`
	Description string        `gorm:"type:text" json:"description"`
	AuthorID    uint          `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author      User          `gorm:"foreignKey:AuthorID" json:"author"`
	Tags        string        `gorm:"size:255" json:"tags"`
	Upvotes     int           `gorm:"default:0" json:"upvotes"`
	Views       int           `gorm:"default:0" json:"views"`
	Comments    []LinkComment `gorm:"foreignKey:LinkID" json:"comments,omitempty"`
}

func (SharedLink) TableName() string {
	return "shared_links"
}

type LinkComment struct {
	UUIDBase
	LinkID   string  `gorm:"index;type:varchar(36)" json:"linkId"`
	AuthorID uint    `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author   User    `gorm:"foreignKey:AuthorID" json:"author"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	ParentID *string `gorm:"index;type:varchar(36)" json:"parentId"`
}

func (LinkComment) TableName() string {
	return "link_comments"
}
