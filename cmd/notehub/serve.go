package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bobinette/notehub/gin"
	"github.com/bobinette/notehub/services"
)

func init() {
	RootCmd.AddCommand(&ServeCommand)
}

var ServeCommand = cobra.Command{
	Use:   "serve",
	Short: "Start the notehub server",
	Long:  "Start the notehub server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfiguration(configFile)
		if err != nil {
			logger.Fatalf("could not load configuration: %v", err)
		}

		stores, err := createStores(cfg)
		if err != nil {
			logger.Fatalf("could not connect to the store: %v", err)
		}
		defer stores.close()

		indices, err := createIndices(cfg)
		if err != nil {
			logger.Fatalf("could not open the search indices: %v", err)
		}
		defer indices.close()

		userService := services.NewUserService(stores.users, stores.notes, indices.users, logger)
		noteService := services.NewNoteService(stores.notes, stores.users, stores.courses, logger)
		courseService := services.NewCourseService(stores.courses, stores.users, stores.notes, indices.courses, logger)

		handler, err := gin.New(userService, noteService, courseService)
		if err != nil {
			logger.Fatalf("could not create the server: %v", err)
		}

		addr := cfg.HTTP.Addr
		if addr == "" {
			addr = ":1705"
		}

		logger.Printf("listening on %s", addr)
		if err := http.ListenAndServe(addr, handler); err != nil {
			logger.Fatalf("server stopped: %v", err)
		}
	},
}
