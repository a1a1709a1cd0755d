/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/blacktop/go-microicon"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	manifestPath string
	iconDir      string
	idPattern    string
	jobs         int
)

var errNoSource = errors.New("either --manifest or --dir is required")

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&manifestPath, "manifest", "f", "", "TOML manifest mapping entity ids to icons")
	cmd.Flags().StringVarP(&iconDir, "dir", "d", "", "Directory of <id>.<ext> icons")
	cmd.Flags().StringVar(&idPattern, "pattern", "", "Glob restricting which ids in --dir have icons")
	cmd.MarkFlagsMutuallyExclusive("manifest", "dir")
}

func init() {
	addSourceFlags(showCmd)
	showCmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "Number of icons to load concurrently")
	rootCmd.AddCommand(showCmd)
}

// newResolver returns the configured resolver and the entity ids it knows
func newResolver() (microicon.Resolver, []string, error) {
	switch {
	case manifestPath != "":
		m, err := microicon.LoadManifest(manifestPath)
		if err != nil {
			return nil, nil, err
		}
		return m, m.IDs(), nil
	case iconDir != "":
		r, err := microicon.NewDirResolver(iconDir, idPattern)
		if err != nil {
			return nil, nil, err
		}
		ids, err := listDirIDs(iconDir, r)
		if err != nil {
			return nil, nil, err
		}
		return r, ids, nil
	default:
		return nil, nil, errNoSource
	}
}

// listDirIDs returns the sorted ids of every icon r resolves inside dir
func listDirIDs(dir string, r microicon.Resolver) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon directory: %w", err)
	}
	seen := make(map[string]bool)
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if id == "" || seen[id] {
			continue
		}
		if _, ok := r.IconPath(id, microicon.MaxIconSize); ok {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// loadIcons fills cache for ids concurrently and returns the icons in order.
// Repeated ids share a single load through the cache.
func loadIcons(cache *microicon.Cache, res microicon.Resolver, rasterizer *microicon.Rasterizer, ids []string, limit int) []microicon.Icon {
	icons := make([]microicon.Icon, len(ids))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))
	for i, id := range ids {
		g.Go(func() error {
			icons[i] = cache.GetIcon(id, microicon.FileLoader(res, id, rasterizer, log.Log))
			return nil
		})
	}
	_ = g.Wait()

	return icons
}

// showCmd resolves entity icons and prints them through the icon cache
var showCmd = &cobra.Command{
	Use:   "show [ID...]",
	Short: "Show the icons of entities from a manifest or icon directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		res, known, err := newResolver()
		if err != nil {
			return err
		}
		ids := args
		if len(ids) == 0 {
			ids = known
		}

		renderer, err := newRenderer(out)
		if err != nil {
			return err
		}

		cache := microicon.NewCache()
		icons := loadIcons(cache, res, newRasterizer(), ids, jobs)
		log.Debugf("Loaded %d distinct entities", cache.Len())

		for i, id := range ids {
			fmt.Fprintf(out, "%s:\n", id)
			printIcon(out, renderer, icons[i])
		}
		return nil
	},
}
