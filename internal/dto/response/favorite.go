package response

import (
	"time"

	"brook-rent/internal/data/entity"
)

type FavoriteResponse struct {
	HouseResponse
	FavoritedAt time.Time `json:"favorited_at"`
}

type FavoriteCheckResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

func FavoritesToResponse(favorites []*entity.FavoritedHouse) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		out = append(out, FavoriteResponse{
			HouseResponse: HouseToResponse(&fav.House),
			FavoritedAt:   fav.FavoritedAt,
		})
	}
	return out
}
