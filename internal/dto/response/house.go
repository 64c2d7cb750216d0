package response

import (
	"time"

	"brook-rent/internal/data/entity"
)

type HouseResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	PropertyTitle string    `json:"property_title"`
	Images        []string  `json:"images"`
	MonthlyRent   float64   `json:"monthly_rent"`
	Address       string    `json:"address"`
	PropertyType  string    `json:"property_type"`
	Rooms         int       `json:"rooms"`
	Bathrooms     int       `json:"bathrooms"`
	SquareFeet    int       `json:"square_feet"`
	Description   string    `json:"description"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	ContactPhone  string    `json:"contact_phone"`
	CreatedAt     time.Time `json:"created_at"`
}

func HouseToResponse(house *entity.House) HouseResponse {
	return HouseResponse{
		ID:            house.ID,
		UserID:        house.UserID,
		PropertyTitle: house.PropertyTitle,
		Images:        house.Images,
		MonthlyRent:   house.MonthlyRent,
		Address:       house.Address,
		PropertyType:  house.PropertyType,
		Rooms:         house.Rooms,
		Bathrooms:     house.Bathrooms,
		SquareFeet:    house.SquareFeet,
		Description:   house.Description,
		ContactName:   house.ContactName,
		ContactEmail:  house.ContactEmail,
		ContactPhone:  house.ContactPhone,
		CreatedAt:     house.CreatedAt,
	}
}

func HousesToResponse(houses []*entity.House) []HouseResponse {
	out := make([]HouseResponse, 0, len(houses))
	for _, house := range houses {
		out = append(out, HouseToResponse(house))
	}
	return out
}
