package main

import (
	"github.com/spf13/cobra"

	"github.com/bobinette/notehub/errors"
)

func init() {
	RootCmd.AddCommand(&ReindexCommand)
}

// ReindexCommand rebuilds the search indices from the store. Useful
// after restoring a backup or changing the index mappings.
var ReindexCommand = cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search indices from the store",
	Long:  "Rebuild the search indices from the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(configFile)
		if err != nil {
			return errors.New("could not load configuration", errors.WithCause(err))
		}

		stores, err := createStores(cfg)
		if err != nil {
			return errors.New("could not connect to the store", errors.WithCause(err))
		}
		defer stores.close()

		indices, err := createIndices(cfg)
		if err != nil {
			return errors.New("could not open the search indices", errors.WithCause(err))
		}
		defer indices.close()

		users, err := stores.users.All()
		if err != nil {
			return errors.New("could not list users", errors.WithCause(err))
		}
		for _, user := range users {
			if err := indices.users.Index(user); err != nil {
				return errors.New("could not index user "+user.ID, errors.WithCause(err))
			}
		}
		logger.Printf("%d users reindexed", len(users))

		courses, err := stores.courses.All()
		if err != nil {
			return errors.New("could not list courses", errors.WithCause(err))
		}
		for _, course := range courses {
			if err := indices.courses.Index(course); err != nil {
				return errors.New("could not index course "+course.ID, errors.WithCause(err))
			}
		}
		logger.Printf("%d courses reindexed", len(courses))

		return nil
	},
}
