package models

import "time"

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice"`
	Image         string   `json:"image"`
	Badge         *string  `json:"badge"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	ReviewsList   []Review `json:"reviewsList"`
}

// Review is append-only and owned by exactly one product.
type Review struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the API-facing view of a user, never carrying the hash.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// LineItem is a purchasable unit reference, either from the catalog or a
// custom-designed item with a synthetic id.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
}

type Customer struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type Payment struct {
	Status string `json:"status"`
	Method string `json:"method,omitempty"`
}

const OrderStatusCreated = "created"

// Order is an immutable record of a checkout: items are a snapshot copy of
// the cart, never a reference to it.
type Order struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	Customer  *Customer  `json:"customer"`
	Payment   Payment    `json:"payment"`
	Subtotal  int        `json:"subtotal"`
	Shipping  int        `json:"shipping"`
	Total     int        `json:"total"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}
