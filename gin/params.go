package gin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/notehub/errors"
	"github.com/bobinette/notehub/services"
)

func queryInt(key string, def int, c *gin.Context) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("invalid value for "+key, errors.BadRequest(), errors.WithCause(err))
	}
	return i, nil
}

// pageParams reads the page, limit and sort query parameters, with 0
// values meaning "use the defaults".
func pageParams(c *gin.Context) (int, int, string, error) {
	page, err := queryInt("page", 0, c)
	if err != nil {
		return 0, 0, "", err
	}

	limit, err := queryInt("limit", 0, c)
	if err != nil {
		return 0, 0, "", err
	}

	return page, limit, c.Query("sort"), nil
}

func depthParam(c *gin.Context) (int, error) {
	return queryInt("depth", services.DefaultReplyDepth, c)
}
