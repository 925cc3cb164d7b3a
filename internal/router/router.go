package router

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/user/topmovies/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", h.Home)
	r.GET("/edit/:id", h.EditPage)
	r.POST("/edit/:id", h.EditSubmit)
	r.GET("/delete/:id", h.Delete)
	r.GET("/add", h.AddPage)
	r.POST("/add", h.AddSubmit)
	r.GET("/select", h.Select)

	r.NoRoute(h.NotFoundPage)
}

// LoadTemplates 使用 multitemplate 加载模板，解决模板继承问题
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := filepath.Glob(templatesDir + "/partials/*.html")
	if err != nil {
		panic(err)
	}

	// 组装模板文件列表：布局 + 局部 + 页面
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	// 模板函数
	funcMap := template.FuncMap{
		"fmtRating": func(rating float64) string {
			return strconv.FormatFloat(rating, 'f', 1, 64)
		},
	}

	// 注册所有页面模板
	pages := []string{
		"index", "edit", "add", "select", "error",
	}

	for _, page := range pages {
		viewPath := templatesDir + "/pages/" + page + ".html"
		r.AddFromFilesFuncs(page+".html", funcMap, assemble(viewPath)...)
	}

	return r
}
