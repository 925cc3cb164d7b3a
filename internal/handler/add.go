package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/topmovies/internal/model"
)

// AddForm 搜索表单
type AddForm struct {
	Movie string `form:"movie" binding:"required"`
}

// AddPage 搜索表单页
func (h *Handler) AddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", h.RenderData(c, gin.H{
		"Title": "添加电影",
	}))
}

// AddSubmit 调用 TMDB 搜索并展示候选列表。
// 零结果也渲染选择页，由模板给出"没有找到匹配"的提示。
func (h *Handler) AddSubmit(c *gin.Context) {
	var form AddForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "add.html", h.RenderData(c, gin.H{
			"Title":     "添加电影",
			"FormError": "请输入电影名称",
		}))
		return
	}

	results, err := h.TMDB.SearchByTitle(form.Movie)
	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.HTML(http.StatusOK, "select.html", h.RenderData(c, gin.H{
		"Title":   "选择电影",
		"Query":   form.Movie,
		"Results": results,
	}))
}

// Select 拉取 TMDB 详情并入库，成功后跳转到新电影的评分页
func (h *Handler) Select(c *gin.Context) {
	externalID, err := strconv.Atoi(c.Query("movie_id"))
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "无效的 movie_id 参数")
		return
	}

	details, err := h.TMDB.GetDetails(externalID)
	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	movie, err := h.Catalog.CreateFromDetails(details)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateTitle) {
			// 重复添加：闪现提示后回到搜索页，绝不静默覆盖
			session := sessions.Default(c)
			session.AddFlash(fmt.Sprintf("《%s》已经在榜单里了", details.OriginalTitle))
			session.Save()
			c.Redirect(http.StatusFound, "/add")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "保存电影失败，请稍后重试")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", movie.ID))
}
