package request

type HouseRequest struct {
	PropertyTitle string   `json:"property_title" validate:"required,max=255"`
	Images        []string `json:"images" validate:"required,min=1,dive,required"`
	MonthlyRent   float64  `json:"monthly_rent" validate:"required,gt=0"`
	Address       string   `json:"address" validate:"required,max=255"`
	PropertyType  string   `json:"property_type" validate:"required,max=255"`
	Rooms         int      `json:"rooms" validate:"required,min=1"`
	Bathrooms     int      `json:"bathrooms" validate:"required,min=1"`
	SquareFeet    int      `json:"square_feet" validate:"required,min=1"`
	Description   string   `json:"description" validate:"required"`
	ContactName   string   `json:"contact_name" validate:"required,max=255"`
	ContactEmail  string   `json:"contact_email" validate:"required,email"`
	ContactPhone  string   `json:"contact_phone" validate:"required,max=20"`
}
