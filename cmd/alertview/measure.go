// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"alertui.org/alert"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (c *cli) measureCommand() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Print the computed alert frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return c.runMeasure(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "alert.toml", "alert description file")
	return cmd
}

func (c *cli) runMeasure(out io.Writer, cfg *config) error {
	th, err := cfg.theme()
	if err != nil {
		return err
	}
	content, err := cfg.content()
	if err != nil {
		return err
	}
	metric := cfg.metric()
	res := alert.Dialog(th, content).Layout(metric, cfg.viewport(metric))
	c.logger.Debugf("Laid out %d actions at scale %g", len(res.Actions), cfg.Scale)

	rows := [][]string{
		frameRow("dialog", image.Rectangle{Max: res.Size}),
	}
	if content.Title != "" {
		rows = append(rows, frameRow("title", res.Title))
	}
	rows = append(rows, frameRow("text", res.Text))
	if len(res.Actions) > 0 {
		rows = append(rows, frameRow("separator", res.Separator))
	}
	for i, r := range res.Actions {
		rows = append(rows, frameRow(fmt.Sprintf("action %d %q", i, content.Actions[i].Title), r))
	}
	for i, r := range res.ActionSeparators {
		rows = append(rows, frameRow(fmt.Sprintf("action separator %d", i), r))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("ELEMENT", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		})

	title := content.Title
	if title == "" {
		title = "(untitled alert)"
	}
	fmt.Fprintln(out, titleStyle.Render(title))
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%s %v\n", dimStyle.Render("arrangement:"), res.Axis)
	fmt.Fprintf(out, "%s %d px\n", dimStyle.Render("min actions width:"), res.MinActionsWidth)
	return nil
}

func frameRow(name string, r image.Rectangle) []string {
	return []string{
		name,
		strconv.Itoa(r.Min.X),
		strconv.Itoa(r.Min.Y),
		strconv.Itoa(r.Dx()),
		strconv.Itoa(r.Dy()),
	}
}
