package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/bobinette/notehub"
	"github.com/bobinette/notehub/bleve"
	"github.com/bobinette/notehub/bolt"
	"github.com/bobinette/notehub/errors"
	"github.com/bobinette/notehub/surreal"
)

type Configuration struct {
	HTTP struct {
		Addr string `toml:"addr"`
	} `toml:"http"`
	Store struct {
		Backend string `toml:"backend"`
		Bolt    struct {
			Path string `toml:"path"`
		} `toml:"bolt"`
		Surreal surreal.Config `toml:"surreal"`
	} `toml:"store"`
	Bleve struct {
		Users   string `toml:"users"`
		Courses string `toml:"courses"`
	} `toml:"bleve"`
}

func loadConfiguration(filename string) (Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Configuration{}, errors.New("could not read configuration file", errors.WithCause(err))
	}

	var cfg Configuration
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, errors.New("could not parse configuration file", errors.WithCause(err))
	}

	// The environment wins over the file for the store address.
	if url := os.Getenv("SURREALDB_URL"); url != "" {
		cfg.Store.Surreal.URL = url
	}
	return cfg, nil
}

type stores struct {
	users   notehub.UserRepository
	notes   notehub.NoteRepository
	courses notehub.CourseRepository

	close func()
}

// createStores connects to the configured backend. Any missing or
// invalid store configuration is an error here, at startup.
func createStores(cfg Configuration) (*stores, error) {
	switch cfg.Store.Backend {
	case "bolt":
		driver := &bolt.Driver{}
		if err := driver.Open(cfg.Store.Bolt.Path); err != nil {
			return nil, errors.New("could not open bolt store", errors.WithCause(err))
		}
		return &stores{
			users:   &bolt.UserRepository{Driver: driver},
			notes:   &bolt.NoteRepository{Driver: driver},
			courses: &bolt.CourseRepository{Driver: driver},
			close:   func() { driver.Close() },
		}, nil
	case "surreal":
		driver, err := surreal.Open(cfg.Store.Surreal)
		if err != nil {
			return nil, errors.New("could not open surreal store", errors.WithCause(err))
		}
		return &stores{
			users:   &surreal.UserRepository{Driver: driver},
			notes:   &surreal.NoteRepository{Driver: driver},
			courses: &surreal.CourseRepository{Driver: driver},
			close:   driver.Close,
		}, nil
	}
	return nil, errors.New(fmt.Sprintf("unknown store backend %q", cfg.Store.Backend))
}

type indices struct {
	users   *bleve.UserIndex
	courses *bleve.CourseIndex

	close func()
}

func createIndices(cfg Configuration) (*indices, error) {
	userIndex := &bleve.UserIndex{}
	if err := userIndex.Open(cfg.Bleve.Users); err != nil {
		return nil, errors.New("could not open user index", errors.WithCause(err))
	}

	courseIndex := &bleve.CourseIndex{}
	if err := courseIndex.Open(cfg.Bleve.Courses); err != nil {
		userIndex.Close()
		return nil, errors.New("could not open course index", errors.WithCause(err))
	}

	return &indices{
		users:   userIndex,
		courses: courseIndex,
		close: func() {
			userIndex.Close()
			courseIndex.Close()
		},
	}, nil
}
