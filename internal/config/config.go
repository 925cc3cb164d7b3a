package config

import (
	"errors"
	"os"
)

// Config 应用配置
type Config struct {
	Env           string
	Port          string
	AppSecret     string
	SiteName      string
	DatabasePath  string
	TMDBAPIKey    string
	TMDBAPIBase   string
	TMDBImageBase string
}

// Load 加载配置。TMDB_API_KEY 是必填项，缺失时直接报错让进程退出。
func Load() (*Config, error) {
	apiKey := os.Getenv("TMDB_API_KEY")
	if apiKey == "" {
		return nil, errors.New("缺少 TMDB_API_KEY 环境变量")
	}

	return &Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "5005"),
		AppSecret:     getEnv("APP_SECRET", "dev-secret-change-in-production"),
		SiteName:      getEnv("SITE_NAME", "我的十佳电影"),
		DatabasePath:  getEnv("DATABASE_PATH", "top-movies.db"),
		TMDBAPIKey:    apiKey,
		TMDBAPIBase:   getEnv("TMDB_API_BASE", "https://api.themoviedb.org/3"),
		TMDBImageBase: getEnv("TMDB_IMAGE_BASE", "https://image.tmdb.org/t/p/w500"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
