package models

// NewsItem es una noticia obtenida del agregador externo
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
	Source      string `json:"source"`
	PublishedOn int64  `json:"published_on"`
}
