package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

// initLogger configures apex/log with a terse stderr handler and a level
// taken from the STRUCT_CHANGELOG_LOG env variable (default: error).
func initLogger() {
	level, err := log.ParseLevel(strings.ToLower(os.Getenv("STRUCT_CHANGELOG_LOG")))
	if err != nil {
		level = log.ErrorLevel
	}
	log.SetHandler(log.HandlerFunc(func(e *log.Entry) error {
		fmt.Fprintf(os.Stderr, "%s %s\n", strings.ToUpper(e.Level.String()[:1]), e.Message)
		return nil
	}))
	log.SetLevel(level)
}
