package models

import "time"

type BrandCategory string

const (
	CategoryClothing    BrandCategory = "giyim"
	CategoryShoes       BrandCategory = "ayakkabı"
	CategoryAccessories BrandCategory = "aksesuar"
	CategoryHomeTextile BrandCategory = "ev tekstili"
	CategoryOther       BrandCategory = "diğer"
)

var BrandCategories = []BrandCategory{
	CategoryClothing,
	CategoryShoes,
	CategoryAccessories,
	CategoryHomeTextile,
	CategoryOther,
}

func (c BrandCategory) Valid() bool {
	for _, known := range BrandCategories {
		if c == known {
			return true
		}
	}
	return false
}

type LogoType string

const (
	LogoTypeIcon  LogoType = "icon"
	LogoTypeImage LogoType = "image"
)

func (t LogoType) Valid() bool {
	return t == LogoTypeIcon || t == LogoTypeImage
}

type Brand struct {
	ID               string
	Name             string
	Description      string
	ShortDescription string
	Logo             string
	LogoType         LogoType
	Telegram         string
	WhatsApp         string
	Website          string
	Category         BrandCategory
	IsActive         bool
	SortOrder        int
	Tags             []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CategoryStat carries per-category brand counts. It round-trips through the
// stats cache, hence the json tags.
type CategoryStat struct {
	Category BrandCategory `json:"category"`
	Count    int           `json:"count"`
	Active   int           `json:"active"`
}
