package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/topmovies/internal/config"
	"github.com/user/topmovies/internal/repository"
	"github.com/user/topmovies/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos   *repository.Repositories
	Config  *config.Config
	Catalog *service.CatalogService
	TMDB    *service.TMDBService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Repos:   repos,
		Config:  cfg,
		Catalog: service.NewCatalogService(repos.Movie),
		TMDB:    service.NewTMDBService(cfg),
	}
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	res := gin.H{
		"SiteName": h.Config.SiteName,
		"Path":     c.Request.URL.Path,
	}

	// 取出并清空 flash 消息（读取即消费）
	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		session.Save()
		res["Flash"] = flashes[0]
	}

	for k, v := range data {
		res[k] = v
	}
	return res
}

// Home 首页：按评分名次展示整个榜单
func (h *Handler) Home(c *gin.Context) {
	movies, err := h.Catalog.ListRanked()
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "读取榜单失败，请稍后重试")
		return
	}

	c.HTML(http.StatusOK, "index.html", h.RenderData(c, gin.H{
		"Title":  h.Config.SiteName,
		"Movies": movies,
	}))
}

// NotFoundPage 404 页面
func (h *Handler) NotFoundPage(c *gin.Context) {
	h.renderError(c, http.StatusNotFound, "页面不存在")
}

// renderError 渲染错误页
func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", h.RenderData(c, gin.H{
		"Title":   "出错了",
		"Message": message,
	}))
}

// renderLookupError 展示 TMDB 查询失败的原因（有 status_message 就带上）
func (h *Handler) renderLookupError(c *gin.Context, err error) {
	var lookupErr *service.LookupError
	if errors.As(err, &lookupErr) && lookupErr.Message != "" {
		h.renderError(c, http.StatusBadGateway, "查询 TMDB 失败: "+lookupErr.Message)
		return
	}
	h.renderError(c, http.StatusBadGateway, "查询 TMDB 失败，请稍后重试")
}
