package models

// Category groups members for display (Investigadores, Becarios,
// Colaboradores, ...). Order defines the display sequence on the team page.
type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Order int    `gorm:"default:0" json:"order"`

	// Relations
	Members []Member `gorm:"foreignKey:CategoryID" json:"members,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

// Member is a research group member and, when a password hash is set, a user
// of the self-service area. A member without a stored hash can never log in.
type Member struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Slug         string  `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Name         string  `gorm:"size:150;not null" json:"name"`
	Degree       string  `gorm:"size:100" json:"degree"`
	Position     string  `gorm:"size:200" json:"position"`
	Bio          string  `gorm:"type:text" json:"bio"`
	Email        string  `gorm:"size:150;uniqueIndex" json:"email"`
	PasswordHash *string `gorm:"size:256" json:"-"`
	LinkedIn     string  `gorm:"size:255" json:"linkedin"`
	Photo        string  `gorm:"size:255" json:"photo"`
	Order        int     `gorm:"default:0" json:"order"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`

	CategoryID uint `gorm:"index" json:"category_id"`
}

func (Member) TableName() string {
	return "members"
}

// MemberResponse is a safe representation without sensitive fields.
type MemberResponse struct {
	ID       uint   `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Degree   string `json:"degree"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	Photo    string `json:"photo"`
	Order    int    `json:"order"`
}

func (m *Member) ToResponse() MemberResponse {
	return MemberResponse{
		ID:       m.ID,
		Slug:     m.Slug,
		Name:     m.Name,
		Degree:   m.Degree,
		Position: m.Position,
		Bio:      m.Bio,
		Email:    m.Email,
		LinkedIn: m.LinkedIn,
		Photo:    m.Photo,
		Order:    m.Order,
	}
}
