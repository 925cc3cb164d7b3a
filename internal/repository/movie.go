package repository

import (
	"errors"
	"fmt"

	"github.com/user/topmovies/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// FindAllByRating 按评分升序返回全部电影，同分按 id 升序保证顺序稳定
func (r *MovieRepository) FindAllByRating() ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.Order("rating ASC, id ASC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("查询电影列表失败: %w", err)
	}
	return movies, nil
}

// FindByID 根据 ID 查找电影
func (r *MovieRepository) FindByID(id int) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMovieNotFound
		}
		return nil, fmt.Errorf("查询电影失败: %w", err)
	}
	return &movie, nil
}

// Create 新增电影，标题重复时返回 ErrDuplicateTitle
func (r *MovieRepository) Create(movie *model.Movie) error {
	if err := r.db.Create(movie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.ErrDuplicateTitle
		}
		return fmt.Errorf("保存电影失败: %w", err)
	}
	return nil
}

// UpdateRatingReview 只更新评分和短评两个字段
func (r *MovieRepository) UpdateRatingReview(id int, rating float64, review string) error {
	res := r.db.Model(&model.Movie{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review": review})
	if res.Error != nil {
		return fmt.Errorf("更新电影失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

// Delete 删除电影
func (r *MovieRepository) Delete(id int) error {
	res := r.db.Delete(&model.Movie{}, id)
	if res.Error != nil {
		return fmt.Errorf("删除电影失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}
