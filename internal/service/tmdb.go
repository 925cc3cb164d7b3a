package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/user/topmovies/internal/config"
	"github.com/user/topmovies/internal/model"
	"github.com/user/topmovies/internal/utils"
	"golang.org/x/sync/singleflight"
)

// LookupError TMDB 请求失败（非 2xx 或响应无法解析）
type LookupError struct {
	StatusCode int
	Message    string
}

func (e *LookupError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("TMDB 请求失败 (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("TMDB 请求失败，状态码: %d", e.StatusCode)
}

// TMDBService TMDB 查询客户端
type TMDBService struct {
	client *utils.HTTPClient
	config *config.Config
	group  singleflight.Group
}

func NewTMDBService(cfg *config.Config) *TMDBService {
	return &TMDBService{
		client: utils.NewHTTPClient(10 * time.Second),
		config: cfg,
	}
}

type tmdbSearchResponse struct {
	Results []struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		ReleaseDate string `json:"release_date"`
	} `json:"results"`
}

// TMDB 出错时响应体里带的提示
type tmdbErrorResponse struct {
	StatusMessage string `json:"status_message"`
}

// SearchByTitle 按标题搜索电影，候选列表保持 TMDB 返回的顺序
func (s *TMDBService) SearchByTitle(query string) ([]model.SearchResult, error) {
	reqURL := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s",
		s.config.TMDBAPIBase, url.QueryEscape(s.config.TMDBAPIKey), url.QueryEscape(query))

	var result tmdbSearchResponse
	if err := s.getJSON(reqURL, &result); err != nil {
		return nil, err
	}

	results := make([]model.SearchResult, 0, len(result.Results))
	for _, r := range result.Results {
		results = append(results, model.SearchResult{
			ExternalID:  r.ID,
			Title:       r.Title,
			ReleaseDate: r.ReleaseDate,
		})
	}
	return results, nil
}

type tmdbDetailsResponse struct {
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
	Overview      string `json:"overview"`
	PosterPath    string `json:"poster_path"`
}

// GetDetails 获取单部电影详情。
// 使用 singleflight 合并同一 ID 的并发请求（比如 /select 被连点两次）。
func (s *TMDBService) GetDetails(externalID int) (*model.MovieDetails, error) {
	val, err, _ := s.group.Do(strconv.Itoa(externalID), func() (interface{}, error) {
		return s.fetchDetails(externalID)
	})
	if err != nil {
		return nil, err
	}
	return val.(*model.MovieDetails), nil
}

func (s *TMDBService) fetchDetails(externalID int) (*model.MovieDetails, error) {
	reqURL := fmt.Sprintf("%s/movie/%d?api_key=%s",
		s.config.TMDBAPIBase, externalID, url.QueryEscape(s.config.TMDBAPIKey))

	var result tmdbDetailsResponse
	if err := s.getJSON(reqURL, &result); err != nil {
		return nil, err
	}

	details := &model.MovieDetails{
		OriginalTitle: result.OriginalTitle,
		Overview:      result.Overview,
	}
	// 上映年份取日期前四位
	if len(result.ReleaseDate) >= 4 {
		details.ReleaseYear = result.ReleaseDate[:4]
	}
	if result.PosterPath != "" {
		details.PosterURL = s.config.TMDBImageBase + result.PosterPath
	}
	return details, nil
}

// getJSON 请求并解析 JSON，非 2xx 时尽量带上 TMDB 的 status_message
func (s *TMDBService) getJSON(reqURL string, target interface{}) error {
	resp, err := s.client.Get(reqURL)
	if err != nil {
		return &LookupError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &LookupError{StatusCode: resp.StatusCode, Message: "读取响应失败"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr tmdbErrorResponse
		json.Unmarshal(body, &apiErr)
		return &LookupError{StatusCode: resp.StatusCode, Message: apiErr.StatusMessage}
	}

	if err := json.Unmarshal(body, target); err != nil {
		log.Printf("[TMDB] 解析JSON失败: %v, 响应体: %s", err, body)
		return &LookupError{StatusCode: resp.StatusCode, Message: "解析 JSON 失败"}
	}
	return nil
}
