package catalog

import "github.com/mmcdole/tvshelf/internal/domain"

// MapShow converts a TVMaze show to a domain.Show
func MapShow(dto ShowDTO) domain.Show {
	show := domain.Show{
		ID:     dto.ID,
		Name:   dto.Name,
		Genres: dto.Genres,
		Rating: dto.Rating.Average,
	}
	if show.Genres == nil {
		show.Genres = []string{}
	}
	if dto.Language != nil {
		show.Language = *dto.Language
	}
	if dto.Image != nil {
		show.ImageURL = dto.Image.Medium
		if show.ImageURL == "" {
			show.ImageURL = dto.Image.Original
		}
	}
	if dto.Summary != nil {
		show.SummaryHTML = *dto.Summary
	}
	return show
}

// MapSearchResults extracts shows from search hits, keeping the catalog's order
func MapSearchResults(results []SearchResult) []domain.Show {
	shows := make([]domain.Show, 0, len(results))
	for _, r := range results {
		shows = append(shows, MapShow(r.Show))
	}
	return shows
}

// MapEpisodes converts TVMaze episodes to domain episodes
func MapEpisodes(dtos []EpisodeDTO) []domain.Episode {
	episodes := make([]domain.Episode, 0, len(dtos))
	for _, e := range dtos {
		ep := domain.Episode{ID: e.ID, Season: e.Season, Name: e.Name}
		if e.Number != nil {
			ep.Number = *e.Number
		}
		episodes = append(episodes, ep)
	}
	return episodes
}
