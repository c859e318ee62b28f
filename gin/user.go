package gin

import (
	"github.com/gin-gonic/gin"

	"github.com/bobinette/notehub/errors"
	"github.com/bobinette/notehub/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/notehub/users", JSONFormatter(h.Search))
	router.POST("/notehub/users", JSONFormatter(h.Upsert))
	router.GET("/notehub/users/:authID", JSONFormatter(h.Get))
	router.GET("/notehub/users/:authID/notes", JSONFormatter(h.Notes))
	router.GET("/notehub/users/:authID/activity", JSONFormatter(h.Activity))
}

// Get returns the user's profile, or null when the auth id has no
// profile yet.
func (h *UserHandler) Get(c *gin.Context) (interface{}, error) {
	return h.Service.Get(c.Param("authID"))
}

func (h *UserHandler) Upsert(c *gin.Context) (interface{}, error) {
	var update services.UserUpdate
	if err := c.BindJSON(&update); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}
	if update.AuthID == "" {
		return nil, errors.New("authID is required", errors.BadRequest())
	}

	return h.Service.Upsert(update)
}

func (h *UserHandler) Notes(c *gin.Context) (interface{}, error) {
	depth, err := depthParam(c)
	if err != nil {
		return nil, err
	}

	return h.Service.Notes(c.Param("authID"), depth)
}

func (h *UserHandler) Search(c *gin.Context) (interface{}, error) {
	page, limit, sortBy, err := pageParams(c)
	if err != nil {
		return nil, err
	}

	return h.Service.Search(c.Query("exclude"), c.Query("q"), page, limit, sortBy)
}

func (h *UserHandler) Activity(c *gin.Context) (interface{}, error) {
	authID := c.Param("authID")
	user, err := h.Service.Get(authID)
	if err != nil {
		return nil, err
	} else if user == nil {
		return nil, errors.New("<User "+authID+"> not found", errors.NotFound())
	}

	return h.Service.Activity(user.ID)
}
