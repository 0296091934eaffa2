package domain

// Stats são os contadores resumidos do painel.
type Stats struct {
	Sellers    int64 `json:"sellers"`
	Categories int64 `json:"categories"`
	Events     int64 `json:"events"`
}

// Analytics agrega contadores do marketplace e a receita de pedidos recebidos.
type Analytics struct {
	Sellers    int64   `json:"sellers"`
	Categories int64   `json:"categories"`
	Events     int64   `json:"events"`
	Users      int64   `json:"users"`
	Products   int64   `json:"products"`
	Variants   int64   `json:"variants"`
	Orders     int64   `json:"orders"`
	Revenue    float64 `json:"revenue"`
}

// OrderStatusReceived é o status de pedido que conta como receita.
const OrderStatusReceived = "diterima"
