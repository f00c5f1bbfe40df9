// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// roomsFlag names the room catalog. Annotation commands take it optionally to
// resolve identifiers; search commands require it.
func roomsFlag(required bool) *cli.StringFlag {
	usage := "Path to the room catalog, used to resolve room identifiers"
	if required {
		usage = "Path to the room catalog (JSON array)"
	}
	return &cli.StringFlag{
		Name:     "rooms",
		Aliases:  []string{"r"},
		Usage:    usage,
		Required: required,
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "roomsearch",
		Usage: "Heuristic search over a room catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB annotation directory (in-memory when empty)",
				EnvVars: []string{"ROOMSEARCH_DB"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration with abbreviations and stop words",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Rank the rooms matching a query",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					roomsFlag(true),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of rooms to print (0 for all)",
						Value: 0,
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Print scores and per-term matches",
					},
					&cli.StringFlag{
						Name:  "map-base",
						Usage: "Base URL for campus map links",
					},
				},
			},
			{
				Name:   "batch",
				Usage:  "Run every query in a file against the catalog",
				Action: batchCommand,
				Flags: []cli.Flag{
					roomsFlag(true),
					&cli.StringFlag{
						Name:     "queries",
						Aliases:  []string{"q"},
						Usage:    "Path to a file with one query per line",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent workers",
						Value: 4,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress on stderr every N queries (0 disables)",
						Value: 0,
					},
				},
			},
			{
				Name:      "parse",
				Usage:     "Show the terms a query parses to",
				ArgsUsage: "QUERY...",
				Action:    parseCommand,
			},
			{
				Name:  "tag",
				Usage: "Manage custom tags",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Attach a custom tag to a room",
						ArgsUsage: "ROOM NAME",
						Action:    tagAddCommand,
						Flags: []cli.Flag{
							roomsFlag(false),
							&cli.StringFlag{Name: "type", Usage: "Tag type", Value: "simple"},
							&cli.StringFlag{Name: "description", Usage: "Tag description"},
							&cli.StringFlag{Name: "link", Usage: "Related link"},
							&cli.StringFlag{Name: "contact", Usage: "Contact information"},
							&cli.StringFlag{Name: "image", Usage: "Image URL"},
							&cli.StringFlag{Name: "color", Usage: "Display color", Value: "blue"},
							&cli.BoolFlag{Name: "workspace", Usage: "Mark the tag as shared through a workspace"},
							&cli.StringFlag{Name: "created-by", Usage: "Name of the workspace member adding the tag"},
						},
					},
					{
						Name:      "remove",
						Usage:     "Remove a custom tag from a room",
						ArgsUsage: "ROOM NAME",
						Action:    tagRemoveCommand,
						Flags:     []cli.Flag{roomsFlag(false)},
					},
					{
						Name:      "list",
						Usage:     "List the custom tags on a room",
						ArgsUsage: "ROOM",
						Action:    tagListCommand,
						Flags:     []cli.Flag{roomsFlag(false)},
					},
					{
						Name:   "clear-workspace",
						Usage:  "Remove every workspace tag",
						Action: tagClearWorkspaceCommand,
					},
				},
			},
			{
				Name:  "staff",
				Usage: "Manage staff tags",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Attach a staff member to a room",
						ArgsUsage: "ROOM NAME...",
						Action:    staffAddCommand,
						Flags:     []cli.Flag{roomsFlag(false)},
					},
					{
						Name:      "remove",
						Usage:     "Remove a staff member from a room",
						ArgsUsage: "ROOM NAME...",
						Action:    staffRemoveCommand,
						Flags:     []cli.Flag{roomsFlag(false)},
					},
					{
						Name:      "list",
						Usage:     "List the staff on a room",
						ArgsUsage: "ROOM",
						Action:    staffListCommand,
						Flags:     []cli.Flag{roomsFlag(false)},
					},
				},
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
