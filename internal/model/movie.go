package model

// Movie 电影记录（榜单里的一部电影）
type Movie struct {
	ID          int     `json:"id" db:"id" gorm:"primaryKey"`
	Title       string  `json:"title" db:"title" gorm:"uniqueIndex;not null"`
	Year        int     `json:"year" db:"year" gorm:"not null"`
	Description string  `json:"description" db:"description" gorm:"type:text;not null"`
	Rating      float64 `json:"rating" db:"rating" gorm:"not null"`
	Ranking     int     `json:"ranking" db:"ranking" gorm:"not null"`
	Review      string  `json:"review" db:"review" gorm:"not null"`
	ImgURL      string  `json:"img_url" db:"img_url" gorm:"column:img_url;not null"`
}

// SearchResult TMDB 搜索返回的一条候选
type SearchResult struct {
	ExternalID  int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// MovieDetails TMDB 电影详情（入库所需字段）
type MovieDetails struct {
	OriginalTitle string `json:"original_title"`
	ReleaseYear   string `json:"release_year"`
	Overview      string `json:"overview"`
	PosterURL     string `json:"poster_url"`
}
