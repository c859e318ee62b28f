package gin

import (
	"github.com/gin-gonic/gin"

	"github.com/bobinette/notehub/errors"
	"github.com/bobinette/notehub/services"
)

type CourseHandler struct {
	Service *services.CourseService
}

func (h *CourseHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/notehub/courses", JSONFormatter(h.Search))
	router.POST("/notehub/courses", JSONFormatter(h.Create))
	router.GET("/notehub/courses/:id", JSONFormatter(h.Details))
	router.PUT("/notehub/courses/:id", JSONFormatter(h.Update))
	router.DELETE("/notehub/courses/:id", JSONFormatter(h.Delete))
	router.GET("/notehub/courses/:id/notes", JSONFormatter(h.Posts))
	router.POST("/notehub/courses/:id/members", JSONFormatter(h.AddMember))
	router.DELETE("/notehub/courses/:id/members/:authID", JSONFormatter(h.RemoveMember))
}

func (h *CourseHandler) Search(c *gin.Context) (interface{}, error) {
	page, limit, sortBy, err := pageParams(c)
	if err != nil {
		return nil, err
	}

	return h.Service.Search(c.Query("q"), page, limit, sortBy)
}

func (h *CourseHandler) Create(c *gin.Context) (interface{}, error) {
	var payload services.CourseCreate
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}
	if payload.ExternalID == "" {
		return nil, errors.New("id is required", errors.BadRequest())
	}

	return h.Service.Create(payload)
}

func (h *CourseHandler) Details(c *gin.Context) (interface{}, error) {
	return h.Service.Details(c.Param("id"))
}

func (h *CourseHandler) Update(c *gin.Context) (interface{}, error) {
	var payload struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Image    string `json:"image"`
	}
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return h.Service.Update(c.Param("id"), payload.Name, payload.Username, payload.Image)
}

func (h *CourseHandler) Delete(c *gin.Context) (interface{}, error) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		return nil, err
	}
	return "ok", nil
}

func (h *CourseHandler) Posts(c *gin.Context) (interface{}, error) {
	depth, err := depthParam(c)
	if err != nil {
		return nil, err
	}

	return h.Service.Posts(c.Param("id"), depth)
}

func (h *CourseHandler) AddMember(c *gin.Context) (interface{}, error) {
	var payload struct {
		AuthID string `json:"authID"`
	}
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return h.Service.AddMember(c.Param("id"), payload.AuthID)
}

func (h *CourseHandler) RemoveMember(c *gin.Context) (interface{}, error) {
	if err := h.Service.RemoveMember(c.Param("authID"), c.Param("id")); err != nil {
		return nil, err
	}
	return "ok", nil
}
