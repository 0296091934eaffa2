package domain

import "time"

// Category representa uma categoria de produtos.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

func (p CategoryPatch) Apply(c *Category) {
	setIfPresent(&c.Name, p.Name)
	setIfPresent(&c.Description, p.Description)
	setIfPresent(&c.ImageURL, p.ImageURL)
}
