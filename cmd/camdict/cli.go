package main

import (
	"context"
	"io"
	"time"

	"github.com/is3ka1/camdict"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Dictionary camdict.Dictionary
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	JSON        bool          `short:"j" help:"Print results as JSON"`
	Timeout     time.Duration `short:"t" default:"10s" env:"CAMDICT_TIMEOUT" help:"HTTP request timeout"`
	CacheSize   int           `default:"128" env:"CAMDICT_CACHE_SIZE" help:"Number of responses to keep in memory"`
	Rate        float64       `default:"0" env:"CAMDICT_RATE" help:"Maximum requests per second (0 for no limit)"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent lookups when several words are given"`
	Verbose     bool          `short:"v" help:"Log requests to stderr"`
	BaseURL     string        `hidden:"" env:"CAMDICT_BASE_URL" help:"Search endpoint"`
	Words       []string      `arg:"" optional:"" help:"Words to look up (prompts on stdin when omitted)"`
}

// QueryCmd looks up words and prints the results.
type QueryCmd struct {
	Words       []string
	JSON        bool
	Concurrency int
}
