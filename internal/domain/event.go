package domain

import (
	"time"

	"github.com/lib/pq"
)

// Event representa uma campanha promocional com janela de vigência.
type Event struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartTime   time.Time      `json:"start_time"`
	EndTime     time.Time      `json:"end_time"`
	MinStock    int            `json:"min_stock"`
	MinDiscount float64        `json:"min_discount"`
	Categories  pq.StringArray `json:"categories"`
	BannerURL   string         `json:"banner_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type EventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	MinStock    int       `json:"min_stock"`
	MinDiscount float64   `json:"min_discount"`
	Categories  []string  `json:"categories"`
	BannerURL   string    `json:"banner_url"`
}

type EventPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	MinStock    *int       `json:"min_stock"`
	MinDiscount *float64   `json:"min_discount"`
	Categories  *[]string  `json:"categories"`
	BannerURL   *string    `json:"banner_url"`
}

func (p EventPatch) Apply(e *Event) {
	setIfPresent(&e.Title, p.Title)
	setIfPresent(&e.Description, p.Description)
	setIfPresent(&e.StartTime, p.StartTime)
	setIfPresent(&e.EndTime, p.EndTime)
	setIfPresent(&e.MinStock, p.MinStock)
	setIfPresent(&e.MinDiscount, p.MinDiscount)
	setIfPresent(&e.BannerURL, p.BannerURL)
	if p.Categories != nil {
		e.Categories = pq.StringArray(*p.Categories)
	}
}
