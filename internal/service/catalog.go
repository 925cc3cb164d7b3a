package service

import (
	"strconv"

	"github.com/user/topmovies/internal/model"
	"github.com/user/topmovies/internal/repository"
)

// 新入库电影的初始短评
const defaultReview = "None"

// CatalogService 榜单的增删改查
type CatalogService struct {
	movieRepo *repository.MovieRepository
}

func NewCatalogService(repo *repository.MovieRepository) *CatalogService {
	return &CatalogService{movieRepo: repo}
}

// ListRanked 按评分升序返回全部电影，并临时计算名次：
// 评分最高的一部名次为 N（总数），最低为 1，同分保持查询顺序。
// 名次只反映在返回结果里，不写回数据库。
func (s *CatalogService) ListRanked() ([]model.Movie, error) {
	movies, err := s.movieRepo.FindAllByRating()
	if err != nil {
		return nil, err
	}
	for i := range movies {
		movies[i].Ranking = i + 1
	}
	return movies, nil
}

// Get 根据 ID 查询电影
func (s *CatalogService) Get(id int) (*model.Movie, error) {
	return s.movieRepo.FindByID(id)
}

// CreateFromDetails 根据 TMDB 详情新建电影记录。
// 评分和名次从 0 开始，短评用占位值，之后在编辑页填写。
// 标题已存在时返回 model.ErrDuplicateTitle，不会覆盖已有记录。
func (s *CatalogService) CreateFromDetails(details *model.MovieDetails) (*model.Movie, error) {
	year, _ := strconv.Atoi(details.ReleaseYear)

	movie := &model.Movie{
		Title:       details.OriginalTitle,
		Year:        year,
		Description: details.Overview,
		ImgURL:      details.PosterURL,
		Rating:      0,
		Ranking:     0,
		Review:      defaultReview,
	}
	if err := s.movieRepo.Create(movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// UpdateRatingReview 更新评分和短评，其余字段不动
func (s *CatalogService) UpdateRatingReview(id int, rating float64, review string) error {
	return s.movieRepo.UpdateRatingReview(id, rating, review)
}

// Delete 从榜单中删除电影，ID 不存在时返回 model.ErrMovieNotFound
func (s *CatalogService) Delete(id int) error {
	return s.movieRepo.Delete(id)
}
