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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/roomsearch"
	"github.com/poiesic/roomsearch/batch"
	"github.com/poiesic/roomsearch/config"
	"github.com/poiesic/roomsearch/core"
	"github.com/poiesic/roomsearch/search"
	"github.com/urfave/cli/v2"
)

var errMissingArgs = errors.New("missing arguments")

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadFile(path)
}

// openDirectory opens the annotation store named by the global flags.
// An empty --db keeps annotations in memory for the life of the command.
func openDirectory(c *cli.Context) (*roomsearch.Directory, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	opts := []roomsearch.DirectoryOption{
		roomsearch.WithConfig(cfg),
		roomsearch.WithLogger(slog.Default()),
	}
	dbPath := c.String("db")
	if dbPath == "" {
		opts = append(opts, roomsearch.InMemory())
	}
	return roomsearch.NewDirectory(dbPath, opts...)
}

// resolveRoomKey maps a room identifier to the key annotations are stored under.
// Without a catalog the identifier is used as the key.
func resolveRoomKey(c *cli.Context, identifier string) (string, error) {
	path := c.String("rooms")
	if path == "" {
		return identifier, nil
	}
	rooms, err := core.LoadRoomsFile(path)
	if err != nil {
		return "", err
	}
	room := core.Resolve(rooms, identifier)
	if room == nil {
		return "", fmt.Errorf("no room matches %q", identifier)
	}
	return room.Key(), nil
}

func searchCommand(c *cli.Context) error {
	rooms, err := core.LoadRoomsFile(c.String("rooms"))
	if err != nil {
		return err
	}
	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	annotations, err := dir.AnnotationRepository().Snapshot(c.Context)
	if err != nil {
		return err
	}
	searcher, err := dir.NewSearcher()
	if err != nil {
		return err
	}

	q := strings.Join(c.Args().Slice(), " ")
	limit := c.Int("limit")
	mapBase := c.String("map-base")
	w := c.App.Writer

	if c.Bool("explain") {
		results := searcher.Rank(q, rooms, annotations)
		if results == nil {
			fmt.Fprintln(w, "query has no searchable terms")
			return nil
		}
		for i, result := range results {
			if limit > 0 && i >= limit {
				break
			}
			printRoom(w, result.Room, mapBase)
			fmt.Fprintf(w, "  score=%.2f matched=%d/%d high_priority=%d\n",
				result.Score, result.MatchedTerms, result.TotalTerms, result.HighPriorityMatches)
			for _, detail := range result.Details {
				fmt.Fprintf(w, "  %-11s %-20s %5.2f x %.1f\n", detail.Type, detail.Term, detail.Score, detail.Boost)
			}
		}
		return nil
	}

	results := searcher.Search(q, rooms, annotations)
	for i, room := range results {
		if limit > 0 && i >= limit {
			break
		}
		printRoom(w, room, mapBase)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "no rooms found")
	}
	return nil
}

func printRoom(w io.Writer, room *core.Room, mapBase string) {
	fmt.Fprintf(w, "%s\t%s\tfloor %s\t%s", room.RoomNumber, room.Building, room.Floor, room.TypeFull)
	if link := room.MapLink(mapBase); link != "" {
		fmt.Fprintf(w, "\t%s", link)
	}
	fmt.Fprintln(w)
}

func batchCommand(c *cli.Context) error {
	rooms, err := core.LoadRoomsFile(c.String("rooms"))
	if err != nil {
		return err
	}
	queries, err := readQueries(c.String("queries"))
	if err != nil {
		return err
	}
	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	annotations, err := dir.AnnotationRepository().Snapshot(c.Context)
	if err != nil {
		return err
	}

	opts := []batch.Option{batch.WithPoolSize(c.Int("pool-size"))}
	if interval := c.Int("report-interval"); interval > 0 {
		opts = append(opts, batch.WithProgress(c.App.ErrWriter, interval))
	}
	runner, err := dir.NewRunner(opts...)
	if err != nil {
		return err
	}
	defer runner.Release()

	results, err := runner.Run(c.Context, queries, rooms, annotations)
	if err != nil {
		return err
	}

	w := c.App.Writer
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", result.Query, result.Err)
			continue
		}
		numbers := make([]string, 0, len(result.Rooms))
		for _, room := range result.Rooms {
			numbers = append(numbers, room.RoomNumber.String())
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", result.Query, len(result.Rooms), strings.Join(numbers, ","))
	}
	return nil
}

// readQueries reads one query per line, skipping blank lines.
func readQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open queries: %w", err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries: %w", err)
	}
	return queries, nil
}

func parseCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	searcher, err := search.NewSearcher(search.WithConfig(cfg))
	if err != nil {
		return err
	}

	w := c.App.Writer
	for _, term := range searcher.Parse(strings.Join(c.Args().Slice(), " ")) {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n", term.Type, term.Value, term.Boost, term.Original)
	}
	return nil
}

func tagAddCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("%w: expected ROOM NAME", errMissingArgs)
	}
	key, err := resolveRoomKey(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	tag, err := core.NewRichTag(key, c.Args().Get(1), core.RichTagOptions{
		Type:        c.String("type"),
		Description: c.String("description"),
		Link:        c.String("link"),
		Contact:     c.String("contact"),
		ImageURL:    c.String("image"),
		Color:       c.String("color"),
	})
	if err != nil {
		return err
	}
	tag.Workspace = c.Bool("workspace")
	tag.CreatedBy = strings.TrimSpace(c.String("created-by"))

	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	if err := dir.AnnotationRepository().AddCustomTag(c.Context, key, tag); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "added tag %q to %s\n", tag.Name, key)
	return nil
}

func tagRemoveCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("%w: expected ROOM NAME", errMissingArgs)
	}
	key, err := resolveRoomKey(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	name := c.Args().Get(1)
	if err := dir.AnnotationRepository().RemoveCustomTag(c.Context, key, core.RichTagID(key, name)); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "removed tag %q from %s\n", name, key)
	return nil
}

func tagListCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("%w: expected ROOM", errMissingArgs)
	}
	key, err := resolveRoomKey(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	tags, err := dir.AnnotationRepository().CustomTags(c.Context, key)
	if err != nil {
		return err
	}
	w := c.App.Writer
	for _, tag := range tags {
		fmt.Fprintf(w, "%s\t%s\t%s", tag.Name, tag.Type, tag.Color)
		if tag.Workspace {
			fmt.Fprintf(w, "\tworkspace:%s", tag.CreatedBy)
		}
		if tag.Description != "" {
			fmt.Fprintf(w, "\t%s", tag.Description)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func tagClearWorkspaceCommand(c *cli.Context) error {
	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	removed, err := dir.AnnotationRepository().ClearWorkspaceTags(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "removed %d workspace tags\n", removed)
	return nil
}

func staffAddCommand(c *cli.Context) error {
	return staffUpdate(c, "added", func(dir *roomsearch.Directory, key, name string) error {
		return dir.AnnotationRepository().AddStaffTag(c.Context, key, name)
	})
}

func staffRemoveCommand(c *cli.Context) error {
	return staffUpdate(c, "removed", func(dir *roomsearch.Directory, key, name string) error {
		return dir.AnnotationRepository().RemoveStaffTag(c.Context, key, name)
	})
}

func staffUpdate(c *cli.Context, verb string, apply func(*roomsearch.Directory, string, string) error) error {
	if c.NArg() < 2 {
		return fmt.Errorf("%w: expected ROOM NAME...", errMissingArgs)
	}
	key, err := resolveRoomKey(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	for _, name := range c.Args().Tail() {
		if err := apply(dir, key, name); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(c.App.Writer, "%s staff %q on %s\n", verb, name, key)
	}
	return nil
}

func staffListCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("%w: expected ROOM", errMissingArgs)
	}
	key, err := resolveRoomKey(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	dir, err := openDirectory(c)
	if err != nil {
		return err
	}
	defer dir.Close()

	staff, err := dir.AnnotationRepository().StaffTags(c.Context, key)
	if err != nil {
		return err
	}
	for _, tag := range staff {
		fmt.Fprintln(c.App.Writer, core.StaffName(tag))
	}
	return nil
}
