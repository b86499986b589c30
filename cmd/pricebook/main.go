// Copyright 2026 Mercaderia Labs
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

	"github.com/mercaderia/pricebook"
	"github.com/mercaderia/pricebook/access"
	"github.com/mercaderia/pricebook/catalog"
	"github.com/mercaderia/pricebook/search"
	"github.com/mercaderia/pricebook/stats"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "pricebook",
		Usage: "Searchable product price book with popularity tracking",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the catalog for a term",
				ArgsUsage: "<term>",
				Action:    searchCommand,
				Flags: append(catalogFlags(),
					&cli.BoolFlag{
						Name:  "exact",
						Usage: "Return a single product when the term equals a code",
					},
					&cli.StringFlag{
						Name:  "mode",
						Usage: "Matching mode (scored, substring, numeric)",
						Value: "scored",
					},
					&cli.BoolFlag{
						Name:  "record",
						Usage: "Record the top hit as a search event",
					},
				),
			},
			{
				Name:   "popular",
				Usage:  "Show the most searched products",
				Action: popularCommand,
				Flags: append(dbFlags(),
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of products to show",
						Value: stats.DefaultTopN,
					},
				),
			},
			{
				Name:   "recent",
				Usage:  "Show recent search terms",
				Action: recentCommand,
				Flags:  dbFlags(),
			},
			{
				Name:   "device",
				Usage:  "Show this installation's device identifier, optionally checking an allow-list",
				Action: deviceCommand,
				Flags: append(dbFlags(),
					&cli.StringFlag{
						Name:  "users",
						Usage: "Path to an allow-list JSON file to check against",
					},
				),
			},
			{
				Name:   "prune",
				Usage:  "Drop search stats for codes no longer in the catalog",
				Action: pruneCommand,
				Flags:  catalogFlags(),
			},
			{
				Name:      "pack",
				Usage:     "Encrypt a plain catalog JSON file for publishing",
				ArgsUsage: "<input.json> <output.json>",
				Action:    packCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "key",
						Usage:    "Encryption key",
						Required: true,
						EnvVars:  []string{"PRICEBOOK_KEY"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
	}
}

func catalogFlags() []cli.Flag {
	return append(dbFlags(),
		&cli.StringFlag{
			Name:     "catalog",
			Aliases:  []string{"c"},
			Usage:    "Path to the catalog payload file",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "key",
			Usage:   "Decryption key for encrypted payloads",
			EnvVars: []string{"PRICEBOOK_KEY"},
		},
	)
}

func openBook(c *cli.Context, opts ...pricebook.BookOption) (*pricebook.Book, error) {
	return pricebook.Open(c.Context, c.String("db"), opts...)
}

func loadCatalog(c *cli.Context, book *pricebook.Book) error {
	source := catalog.FileSource{
		Path: c.String("catalog"),
		Key:  c.String("key"),
	}
	payload, err := book.LoadCatalog(c.Context, source)
	if err != nil {
		return err
	}
	if payload.Metadata.LastUpdated != "" {
		fmt.Printf("Catalog updated: %s\n", payload.Metadata.LastUpdated)
	}
	return nil
}

func parseMode(s string) (search.Mode, error) {
	switch strings.ToLower(s) {
	case "scored":
		return search.ModeScored, nil
	case "substring":
		return search.ModeSubstring, nil
	case "numeric":
		return search.ModeNumeric, nil
	default:
		return 0, fmt.Errorf("invalid mode %q: must be one of scored, substring, numeric", s)
	}
}

func searchCommand(c *cli.Context) error {
	term := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("search term required")
	}

	mode, err := parseMode(c.String("mode"))
	if err != nil {
		return err
	}

	book, err := openBook(c, pricebook.WithMode(mode))
	if err != nil {
		return err
	}
	defer book.Close()

	if err := loadCatalog(c, book); err != nil {
		return err
	}

	var result *search.Result
	if c.Bool("exact") {
		result, err = book.SearchExact(term)
	} else {
		result, err = book.Search(term)
	}
	if err != nil {
		return err
	}

	if result.Home {
		fmt.Println("Empty term; nothing to search.")
		return nil
	}
	if len(result.Products) == 0 {
		fmt.Printf("No products match %q.\n", result.Term)
		return nil
	}

	for i, p := range result.Products {
		primary := p.Primary()
		fmt.Printf("%2d. %-12s %-40s %s %s (stock %s)\n",
			i+1, p.Code, p.Description, primary.Price, primary.Unit, primary.Stock)
		for _, v := range p.Variants[1:] {
			fmt.Printf("    %-12s %-40s %s %s (stock %s)\n", "", "", v.Price, v.Unit, v.Stock)
		}
	}

	if c.Bool("record") {
		top := result.Products[0]
		if err := book.Record(c.Context, top.Code, result.Term, stats.SourceResultClick); err != nil {
			return err
		}
	}
	return nil
}

func popularCommand(c *cli.Context) error {
	book, err := openBook(c)
	if err != nil {
		return err
	}
	defer book.Close()

	popular := book.Popular(c.Int("top"))
	if len(popular) == 0 {
		fmt.Println("No search activity recorded yet.")
		return nil
	}
	for i, p := range popular {
		term := p.Code
		if len(p.Terms) > 0 {
			term = p.Terms[0]
		}
		fmt.Printf("%2d. %-12s searched %d times (last term %q)\n", i+1, p.Code, p.Count, term)
	}
	return nil
}

func recentCommand(c *cli.Context) error {
	book, err := openBook(c)
	if err != nil {
		return err
	}
	defer book.Close()

	recent := book.Recent()
	if len(recent) == 0 {
		fmt.Println("No recent searches.")
		return nil
	}
	for _, term := range recent {
		fmt.Println(term)
	}
	return nil
}

func deviceCommand(c *cli.Context) error {
	book, err := openBook(c)
	if err != nil {
		return err
	}
	defer book.Close()

	id, err := book.DeviceID(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("Device ID: %s\n", id)

	usersPath := c.String("users")
	if usersPath == "" {
		return nil
	}

	data, err := os.ReadFile(usersPath)
	if err != nil {
		return err
	}
	list, err := access.ParseUserList(data)
	if err != nil {
		return err
	}

	decision, user, err := book.CheckAccess(c.Context, list)
	if err != nil {
		return err
	}
	if user != nil && user.Name != "" {
		fmt.Printf("Access: %s (%s)\n", decision, user.Name)
	} else {
		fmt.Printf("Access: %s\n", decision)
	}
	return nil
}

func pruneCommand(c *cli.Context) error {
	book, err := openBook(c)
	if err != nil {
		return err
	}
	defer book.Close()

	if err := loadCatalog(c, book); err != nil {
		return err
	}

	removed, err := book.PruneStats(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("Removed stats for %d stale codes.\n", removed)
	return nil
}

func packCommand(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("usage: pack <input.json> <output.json>")
	}
	input := c.Args().Get(0)
	output := c.Args().Get(1)

	plain, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	// Refuse to pack something the loader will not be able to parse.
	if _, err := catalog.ParsePayload(plain); err != nil {
		return err
	}

	encoded, err := catalog.EncryptPayload(plain, c.String("key"))
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(encoded), 0o644); err != nil {
		return err
	}
	fmt.Printf("Packed %s -> %s (%d bytes encrypted)\n", input, output, len(encoded))
	return nil
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
