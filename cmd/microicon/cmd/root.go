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
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/go-microicon"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	verbose      bool
	maxDimension int
	profileName  string
	colors       int
	webSafe      bool
)

func init() {
	log.SetHandler(clihander.Default)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVarP(&maxDimension, "max", "m", microicon.DefaultMaxDimension, "Maximum icon dimension used to derive the sampling step")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "Color profile: truecolor, 256, 16 or ascii (default: detect)")
	rootCmd.PersistentFlags().IntVarP(&colors, "colors", "c", 0, "Reduce each icon to at most this many colors (0 disables)")
	rootCmd.PersistentFlags().BoolVar(&webSafe, "websafe", false, "Reduce colors to the web-safe palette")
	rootCmd.MarkFlagsMutuallyExclusive("colors", "websafe")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "microicon",
	Short:        "Render image icons as colored glyph grids in your terminal",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// newRasterizer builds a rasterizer from the global flags
func newRasterizer() *microicon.Rasterizer {
	r := microicon.NewRasterizer().MaxDimension(maxDimension)
	switch {
	case webSafe:
		r.Palette(microicon.WebSafePalette())
	case colors > 0:
		r.Palette(microicon.MedianPalette(colors))
	}
	return r
}

// newRenderer builds a renderer for w from the --profile flag, detecting the
// profile from the environment when the flag is unset
func newRenderer(w io.Writer) (*microicon.Renderer, error) {
	profile, err := resolveProfile(profileName, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		return nil, err
	}
	log.Debugf("Using color profile %s", profileString(profile))
	return microicon.NewRenderer(w, profile), nil
}

func resolveProfile(name string, isTerminal bool) (termenv.Profile, error) {
	if name != "" {
		return microicon.ParseProfile(name)
	}
	return microicon.DetectProfile(isTerminal), nil
}

func profileString(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	default:
		return "ascii"
	}
}

func printIcon(w io.Writer, r *microicon.Renderer, icon microicon.Icon) {
	if !icon.Present() {
		fmt.Fprintln(w, "(no icon)")
		return
	}
	fmt.Fprintln(w, r.RenderIcon(icon))
}
