package domain

import "time"

// Seller representa um vendedor do marketplace.
type Seller struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	StoreName           string    `json:"store_name"`
	StoreAddress        string    `json:"store_address"`
	BusinessName        string    `json:"business_name"`
	IsDeliveryAvailable bool      `json:"is_delivery_available"`
	DeliveryFee         float64   `json:"delivery_fee"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// SellerInput é o conjunto de campos aceitos na criação.
type SellerInput struct {
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	StoreName           string  `json:"store_name"`
	StoreAddress        string  `json:"store_address"`
	BusinessName        string  `json:"business_name"`
	IsDeliveryAvailable bool    `json:"is_delivery_available"`
	DeliveryFee         float64 `json:"delivery_fee"`
}

// SellerPatch é o conjunto de campos mutáveis. Campos nulos são preservados.
type SellerPatch struct {
	Name                *string  `json:"name"`
	Email               *string  `json:"email"`
	Phone               *string  `json:"phone"`
	StoreName           *string  `json:"store_name"`
	StoreAddress        *string  `json:"store_address"`
	BusinessName        *string  `json:"business_name"`
	IsDeliveryAvailable *bool    `json:"is_delivery_available"`
	DeliveryFee         *float64 `json:"delivery_fee"`
}

// Apply aplica os campos presentes no patch sobre o vendedor.
func (p SellerPatch) Apply(s *Seller) {
	setIfPresent(&s.Name, p.Name)
	setIfPresent(&s.Email, p.Email)
	setIfPresent(&s.Phone, p.Phone)
	setIfPresent(&s.StoreName, p.StoreName)
	setIfPresent(&s.StoreAddress, p.StoreAddress)
	setIfPresent(&s.BusinessName, p.BusinessName)
	setIfPresent(&s.IsDeliveryAvailable, p.IsDeliveryAvailable)
	setIfPresent(&s.DeliveryFee, p.DeliveryFee)
}

// SellerSummary é o resumo do vendedor anexado aos registros enriquecidos.
type SellerSummary struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	StoreName    string `json:"store_name"`
	BusinessName string `json:"business_name"`
}
