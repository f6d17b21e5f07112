package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	TimeMinutes int       `json:"time_minutes"`
	Price       float64   `gorm:"type:numeric(6,2)" json:"price"`
	Link        string    `json:"link,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`

	User        *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tags        []*Tag        `gorm:"many2many:recipe_tags;" json:"tags"`
	Ingredients []*Ingredient `gorm:"many2many:recipe_ingredients;" json:"ingredients"`
	Timestamp
}

// Tag and Ingredient are owned by exactly one user. (user_id, name) is
// deliberately not unique at the schema level: the recipe write path dedupes
// through a lookup, direct creates do not.
type Tag struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	User    *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipes []*Recipe `gorm:"many2many:recipe_tags;" json:"-"`
	Timestamp
}

type Ingredient struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	User    *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipes []*Recipe `gorm:"many2many:recipe_ingredients;" json:"-"`
	Timestamp
}
