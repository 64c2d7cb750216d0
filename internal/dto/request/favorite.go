package request

type FavoriteRequest struct {
	HouseID int64 `json:"house_id" validate:"required,min=1"`
}
