package catalog

// TVMaze API response structures

// SearchResult is one entry of GET /search/shows
type SearchResult struct {
	Score float64 `json:"score"`
	Show  ShowDTO `json:"show"`
}

// ShowDTO mirrors a TVMaze show record
type ShowDTO struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Genres   []string  `json:"genres"`
	Language *string   `json:"language"`
	Rating   RatingDTO `json:"rating"`
	Image    *ImageDTO `json:"image"`
	Summary  *string   `json:"summary"`
}

// RatingDTO holds the community rating; Average is null for unrated shows
type RatingDTO struct {
	Average *float64 `json:"average"`
}

// ImageDTO holds poster URLs
type ImageDTO struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// EpisodeDTO mirrors a TVMaze episode record. Specials have a null number.
type EpisodeDTO struct {
	ID     int    `json:"id"`
	Season int    `json:"season"`
	Number *int   `json:"number"`
	Name   string `json:"name"`
}
