package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/topmovies/internal/model"
)

// EditForm 评分/短评表单。
// required 同时挡掉 0 分提交，和前端表单的必填语义一致。
type EditForm struct {
	Rating float64 `form:"rating" binding:"required,gte=0,lte=10"`
	Review string  `form:"review" binding:"required"`
}

// EditPage 评分编辑页，表单预填当前评分和短评
func (h *Handler) EditPage(c *gin.Context) {
	movie, ok := h.movieFromPath(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "edit.html", h.RenderData(c, gin.H{
		"Title": "修改评分 - " + movie.Title,
		"Movie": movie,
	}))
}

// EditSubmit 提交评分和短评，成功后回到首页
func (h *Handler) EditSubmit(c *gin.Context) {
	movie, ok := h.movieFromPath(c)
	if !ok {
		return
	}

	var form EditForm
	if err := c.ShouldBind(&form); err != nil {
		// 校验失败：带着错误提示重新渲染表单
		c.HTML(http.StatusBadRequest, "edit.html", h.RenderData(c, gin.H{
			"Title":     "修改评分 - " + movie.Title,
			"Movie":     movie,
			"FormError": "请填写 0~10 之间的数字评分和一句短评",
		}))
		return
	}

	if err := h.Catalog.UpdateRatingReview(movie.ID, form.Rating, form.Review); err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			h.renderError(c, http.StatusNotFound, "电影不存在")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "保存评分失败，请稍后重试")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Delete 删除电影后回到首页。已经不存在的 ID 也直接回首页。
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err == nil {
		if err := h.Catalog.Delete(id); err != nil && !errors.Is(err, model.ErrMovieNotFound) {
			h.renderError(c, http.StatusInternalServerError, "删除电影失败，请稍后重试")
			return
		}
	}
	c.Redirect(http.StatusFound, "/")
}

// movieFromPath 解析路径里的电影 ID 并查库，失败时直接渲染错误页
func (h *Handler) movieFromPath(c *gin.Context) (*model.Movie, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderError(c, http.StatusNotFound, "电影不存在")
		return nil, false
	}

	movie, err := h.Catalog.Get(id)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			h.renderError(c, http.StatusNotFound, "电影不存在")
		} else {
			h.renderError(c, http.StatusInternalServerError, "查询电影失败，请稍后重试")
		}
		return nil, false
	}
	return movie, true
}
