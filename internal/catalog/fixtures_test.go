package catalog

import "github.com/ytget/yt-liked-searcher/internal/model"

var (
	videoA = model.NewVideo("A", "Intro to Go", "Gopher Academy", "2023-01-01T09:00:00Z", "Basics of the Go language")
	videoB = model.NewVideo("B", "Rust Basics", "Ferris Talks", "2024-06-15T18:30:00Z", "Ownership and borrowing")
	videoC = model.NewVideo("C", "advanced rust", "Crab Corner", "2024-06-15T07:00:00Z", "Lifetimes\nand traits")
)

func ids(videos []model.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}
