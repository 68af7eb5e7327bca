package dto

type CityResponse struct {
	Name  string   `json:"name"`
	Spots []string `json:"spots"`
}

type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}

type RecommendationRouteRequest struct {
	Origin    string `json:"origin" validate:"required"`
	City      string `json:"city" validate:"required"`
	SpotIndex *int   `json:"spot_index" validate:"required,min=0"`
	Vehicle   string `json:"vehicle"`
}
