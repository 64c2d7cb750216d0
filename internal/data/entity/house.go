package entity

import "time"

// House is a rental listing. UserID is the owning lister; mutations go
// through the ownership guard in the house service.
type House struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	PropertyTitle string    `db:"property_title"`
	Images        []string  `db:"images"`
	MonthlyRent   float64   `db:"monthly_rent"`
	Address       string    `db:"address"`
	PropertyType  string    `db:"property_type"`
	Rooms         int       `db:"rooms"`
	Bathrooms     int       `db:"bathrooms"`
	SquareFeet    int       `db:"square_feet"`
	Description   string    `db:"description"`
	ContactName   string    `db:"contact_name"`
	ContactEmail  string    `db:"contact_email"`
	ContactPhone  string    `db:"contact_phone"`
	CreatedAt     time.Time `db:"created_at"`
}
