package handler

import (
	"time"

	"grocery/internal/domain/entity"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format of dates of birth.
const dateLayout = time.DateOnly

// --- Requests ---

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type addressRequest struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
}

type profileRequest struct {
	FirstName   *string          `json:"first_name,omitempty"`
	LastName    *string          `json:"last_name,omitempty"`
	Phone       *string          `json:"phone,omitempty" validate:"omitempty,max=32"`
	Addresses   []addressRequest `json:"addresses,omitempty" validate:"omitempty,max=4,dive"`
	DateOfBirth *string          `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r profileRequest) toInput() (usecase.ProfileInput, error) {
	input := usecase.ProfileInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}

	if r.Addresses != nil {
		input.Addresses = make([]entity.ProfileAddress, len(r.Addresses))
		for i, a := range r.Addresses {
			input.Addresses[i] = entity.ProfileAddress{Address: a.Address, City: a.City}
		}
	}

	if r.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *r.DateOfBirth)
		if err != nil {
			return usecase.ProfileInput{}, err
		}
		input.DateOfBirth = &dob
	}

	return input, nil
}

type productRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Category string `json:"category" validate:"max=255"`
	Comments string `json:"comments"`
}

type supermarketRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Comments *string `json:"comments,omitempty"`
	City     *string `json:"city,omitempty" validate:"omitempty,min=1,max=255"`
}

type createListingRequest struct {
	ProductID     uuid.UUID        `json:"product_id" validate:"required"`
	SupermarketID uuid.UUID        `json:"supermarket_id" validate:"required"`
	Price         *decimal.Decimal `json:"price" validate:"required,nonnegative"`
	InStock       *bool            `json:"in_stock,omitempty"`
}

type updateListingRequest struct {
	Price   *decimal.Decimal `json:"price,omitempty" validate:"omitempty,nonnegative"`
	InStock *bool            `json:"in_stock,omitempty"`
}

type shoppingItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0,lte=2147483647"`
}

type buildListRequest struct {
	City  string                `json:"city" validate:"required"`
	Items []shoppingItemRequest `json:"shopping_items" validate:"required,min=1,dive"`
}

type resolveQRRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// --- Responses ---

type addressResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
}

type profileResponse struct {
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Phone       string            `json:"phone"`
	Addresses   []addressResponse `json:"addresses"`
	DateOfBirth *string           `json:"dob,omitempty"`
	Age         *int              `json:"age,omitempty"`
}

type userResponse struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	Profile   *profileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func newUserResponse(u *entity.User) *userResponse {
	resp := &userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if p := u.Profile; p != nil {
		profile := &profileResponse{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Phone:     p.Phone,
			Addresses: make([]addressResponse, len(p.Addresses)),
			Age:       p.Age,
		}
		for i, a := range p.Addresses {
			profile.Addresses[i] = addressResponse(a)
		}
		if p.DateOfBirth != nil {
			dob := p.DateOfBirth.Format(dateLayout)
			profile.DateOfBirth = &dob
		}
		resp.Profile = profile
	}

	return resp
}

type sessionResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *userResponse `json:"user"`
}

func newSessionResponse(out *usecase.SessionOutput) *sessionResponse {
	return &sessionResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		User:         newUserResponse(out.User),
	}
}

type productResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Comments  string    `json:"comments"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newProductResponse(p *entity.Product) *productResponse {
	return &productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Comments:  p.Comments,
		CreatedBy: p.CreatedBy,
		UpdatedBy: p.UpdatedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type supermarketResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Comments  string    `json:"comments"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newSupermarketResponse(s *entity.Supermarket) *supermarketResponse {
	return &supermarketResponse{
		ID:        s.ID,
		Name:      s.Name,
		Comments:  s.Comments,
		City:      s.City,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type listingResponse struct {
	ProductID       uuid.UUID `json:"product_id"`
	ProductName     string    `json:"product_name"`
	SupermarketID   uuid.UUID `json:"supermarket_id"`
	SupermarketName string    `json:"supermarket_name"`
	City            string    `json:"city"`
	Price           string    `json:"price"`
	InStock         bool      `json:"in_stock"`
	CreatedBy       string    `json:"created_by"`
	UpdatedBy       string    `json:"updated_by"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newListingResponse(l *entity.Listing) *listingResponse {
	return &listingResponse{
		ProductID:       l.ProductID,
		ProductName:     l.ProductName,
		SupermarketID:   l.SupermarketID,
		SupermarketName: l.SupermarketName,
		City:            l.City,
		Price:           money(l.Price),
		InStock:         l.InStock,
		CreatedBy:       l.CreatedBy,
		UpdatedBy:       l.UpdatedBy,
		UpdatedAt:       l.UpdatedAt,
	}
}

type shoppingItemResponse struct {
	ProductID       uuid.UUID  `json:"product_id"`
	ProductName     string     `json:"product_name"`
	SupermarketID   *uuid.UUID `json:"supermarket_id"`
	SupermarketName string     `json:"supermarket_name"`
	Quantity        int        `json:"quantity"`
	LowestPrice     string     `json:"lowest_price"`
	Subtotal        string     `json:"subtotal"`
	Found           bool       `json:"found"`
}

type shoppingListResponse struct {
	ID          *uuid.UUID             `json:"id,omitempty"`
	UserEmail   string                 `json:"user_email"`
	CurrentDate time.Time              `json:"current_date"`
	City        string                 `json:"city"`
	Items       []shoppingItemResponse `json:"shopping_items"`
	Total       string                 `json:"total"`
}

func newShoppingListResponse(l *entity.ShoppingList) *shoppingListResponse {
	resp := &shoppingListResponse{
		UserEmail:   l.UserEmail,
		CurrentDate: l.CreatedAt,
		City:        l.City,
		Items:       make([]shoppingItemResponse, len(l.Items)),
		Total:       money(l.Total),
	}
	if l.ID != uuid.Nil {
		id := l.ID
		resp.ID = &id
	}

	for i, item := range l.Items {
		line := shoppingItemResponse{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			SupermarketName: item.SupermarketName,
			Quantity:        item.Quantity,
			LowestPrice:     money(item.UnitPrice),
			Subtotal:        money(item.Subtotal),
			Found:           item.Found,
		}
		if item.Found {
			supermarketID := item.SupermarketID
			line.SupermarketID = &supermarketID
		}
		resp.Items[i] = line
	}

	return resp
}

func money(d decimal.Decimal) string {
	return d.StringFixed(entity.MoneyPlaces)
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}

	return out
}
