package dto

type FavoriteRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type FavoriteResponse struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type ListFavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}

// FavoriteRouteRequest routes from a saved place to either another saved
// place (EndIndex) or free text (Destination).
type FavoriteRouteRequest struct {
	StartIndex  *int   `json:"start_index" validate:"required,min=0"`
	EndIndex    *int   `json:"end_index" validate:"omitempty,min=0"`
	Destination string `json:"destination"`
	Vehicle     string `json:"vehicle"`
}
