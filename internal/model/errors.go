package model

import "errors"

// 领域错误，各层用 errors.Is 判断
var (
	// ErrMovieNotFound 指定 ID 的电影不存在
	ErrMovieNotFound = errors.New("movie not found")

	// ErrDuplicateTitle 标题已存在（movies.title 唯一索引）
	ErrDuplicateTitle = errors.New("movie title already exists")
)
