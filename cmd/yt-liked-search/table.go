package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

// Column widths of the printed table
const (
	titleWidth       = 60
	channelWidth     = 24
	descriptionWidth = 60
)

var tableHeaders = []string{"#", "TITLE", "CHANNEL", "DATE", "DESCRIPTION"}

// tableRows formats videos with the table formatting of the desktop window.
// limit caps the number of rows; 0 keeps all.
func tableRows(videos []model.Video, limit int) [][]string {
	rows := make([][]string, 0, len(videos))
	for i, v := range videos {
		if limit > 0 && i >= limit {
			break
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			model.Truncate(v.DisplayTitle(), titleWidth),
			model.Truncate(v.Channel, channelWidth),
			v.TableDate(),
			model.Truncate(v.DisplayDescription(), descriptionWidth),
		})
	}
	return rows
}

// writeTable renders videos as a bordered table. Colors are only used when
// w is a terminal.
func writeTable(w io.Writer, videos []model.Video, limit int) error {
	renderer := lipgloss.NewRenderer(w)
	headerStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle := renderer.NewStyle().Padding(0, 1)

	rows := tableRows(videos, limit)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(renderer.NewStyle().Foreground(lipgloss.Color("63"))).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
