package main

import (
	"fmt"
	"path"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bobinette/notehub/log"
)

var (
	// flags
	env        string
	configFile string

	// logger
	logger log.Logger
)

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
}

var RootCmd = cobra.Command{
	Use:   "notehub",
	Short: "Share your notes with Notehub",
	Long:  "Share your notes with Notehub",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env)

		// A .env file is optional, the environment wins anyway.
		godotenv.Load()

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}
	},
}
