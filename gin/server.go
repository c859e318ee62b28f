package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/notehub/services"
)

func New(
	us *services.UserService,
	ns *services.NoteService,
	cs *services.CourseService,
) (http.Handler, error) {
	router := gin.Default()

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Page not found"})
	})

	// Ping
	router.GET("/notehub/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	// Users
	userHandler := UserHandler{Service: us}
	userHandler.RegisterRoutes(router)

	// Notes
	noteHandler := NoteHandler{Service: ns}
	noteHandler.RegisterRoutes(router)

	// Courses
	courseHandler := CourseHandler{Service: cs}
	courseHandler.RegisterRoutes(router)

	return router, nil
}
