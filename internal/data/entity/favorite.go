package entity

import "time"

// Favorite links a user to a house. (user_id, house_id) is unique in
// the store.
type Favorite struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	HouseID   int64     `db:"house_id"`
	CreatedAt time.Time `db:"created_at"`
}

// FavoritedHouse is the favorites list row: the house joined with when
// it was favorited.
type FavoritedHouse struct {
	House
	FavoritedAt time.Time `db:"favorited_at"`
}
