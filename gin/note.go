package gin

import (
	"github.com/gin-gonic/gin"

	"github.com/bobinette/notehub/errors"
	"github.com/bobinette/notehub/services"
)

type NoteHandler struct {
	Service *services.NoteService
}

func (h *NoteHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/notehub/notes", JSONFormatter(h.Feed))
	router.POST("/notehub/notes", JSONFormatter(h.Create))
	router.GET("/notehub/notes/:id", JSONFormatter(h.Get))
	router.POST("/notehub/notes/:id/comments", JSONFormatter(h.Comment))
}

func (h *NoteHandler) Feed(c *gin.Context) (interface{}, error) {
	page, limit, _, err := pageParams(c)
	if err != nil {
		return nil, err
	}

	depth, err := depthParam(c)
	if err != nil {
		return nil, err
	}

	return h.Service.Feed(page, limit, depth)
}

func (h *NoteHandler) Create(c *gin.Context) (interface{}, error) {
	var payload services.NoteCreate
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return h.Service.Create(payload)
}

func (h *NoteHandler) Get(c *gin.Context) (interface{}, error) {
	depth, err := depthParam(c)
	if err != nil {
		return nil, err
	}

	return h.Service.Get(c.Param("id"), depth)
}

func (h *NoteHandler) Comment(c *gin.Context) (interface{}, error) {
	var payload struct {
		Text     string `json:"text"`
		AuthorID string `json:"author"`
	}
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return h.Service.Comment(c.Param("id"), payload.Text, payload.AuthorID)
}
