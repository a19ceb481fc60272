package model

type CatalogEventType string

const (
	EventMovieCreated CatalogEventType = "movie_created"
	EventMovieUpdated CatalogEventType = "movie_updated"
	EventMovieDeleted CatalogEventType = "movie_deleted"
)

type CatalogEvent struct {
	Type  CatalogEventType
	Movie Movie
}
