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
	"strings"

	"github.com/apex/log"
	"github.com/blacktop/go-microicon"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	primaryColor = lipgloss.Color("#7D56F4")
	textColor    = lipgloss.Color("#FAFAFA")
	mutedColor   = lipgloss.Color("#626262")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(textColor)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(primaryColor).
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(primaryColor)

	iconPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

func init() {
	addSourceFlags(browseCmd)
	rootCmd.AddCommand(browseCmd)
}

// browseModel lists entities and shows the icon of the selected one.
// Icons are loaded lazily through the cache as the cursor moves.
type browseModel struct {
	ids      []string
	cursor   int
	height   int
	load     func(id string) microicon.Icon
	renderer *microicon.Renderer
}

func newBrowseModel(ids []string, load func(string) microicon.Icon, renderer *microicon.Renderer) browseModel {
	return browseModel{ids: ids, load: load, renderer: renderer}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.ids)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.ids)-1, 0)
		}
	}
	return m, nil
}

// visibleRange returns the window of ids that fits the terminal height
func (m browseModel) visibleRange() (int, int) {
	rows := len(m.ids)
	if m.height > 6 {
		rows = m.height - 6
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	return start, min(start+rows, len(m.ids))
}

func (m browseModel) View() string {
	if len(m.ids) == 0 {
		return "No entities found.\n"
	}

	var list strings.Builder
	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		if i == m.cursor {
			list.WriteString(selectedItemStyle.Render(m.ids[i]))
		} else {
			list.WriteString(itemStyle.Render(m.ids[i]))
		}
		list.WriteByte('\n')
	}

	id := m.ids[m.cursor]
	body := "(no icon)"
	if icon := m.load(id); icon.Present() {
		body = m.renderer.RenderIcon(icon)
	}
	panel := iconPanelStyle.Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("microicon · %d/%d", m.cursor+1, len(m.ids))),
		lipgloss.JoinHorizontal(lipgloss.Top, list.String(), panel),
		helpStyle.Render("↑/↓ move • g/G first/last • q quit"),
	)
}

// browseCmd opens an interactive entity browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse entity icons interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, ids, err := newResolver()
		if err != nil {
			return err
		}
		if !verbose {
			// keep load warnings from drawing over the alt screen
			log.SetLevel(log.ErrorLevel)
		}
		renderer, err := newRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		cache := microicon.NewCache()
		rasterizer := newRasterizer()
		load := func(id string) microicon.Icon {
			return cache.GetIcon(id, microicon.FileLoader(res, id, rasterizer, log.Log))
		}

		_, err = tea.NewProgram(newBrowseModel(ids, load, renderer), tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("failed to run browser: %w", err)
		}
		return nil
	},
}
