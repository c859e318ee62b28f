package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/notehub/errors"
)

type HandlerFunc func(*gin.Context) (interface{}, error)

// JSONFormatter wraps a handler so that its result always comes out
// as {"data": ...} and its error as {"error": ...} with the code the
// error carries.
func JSONFormatter(next HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := next(c)
		if err != nil {
			c.JSON(errors.Code(err), map[string]interface{}{
				"error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, map[string]interface{}{
			"data": res,
		})
	}
}
