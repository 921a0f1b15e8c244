package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

// columnTextKeys maps each column to its header text
var columnTextKeys = map[model.SortField]string{
	model.SortByTitle:       KeyColumnTitle,
	model.SortByChannel:     KeyColumnChannel,
	model.SortByDate:        KeyColumnDate,
	model.SortByDescription: KeyColumnDescription,
}

// columnWidths follows model.SortFields order
var columnWidths = []float32{TitleColumnWidth, ChannelColumnWidth, DateColumnWidth, DescriptionColumnWidth}

// headerText returns a column caption with its sort arrow
func headerText(loc *Localization, field model.SortField, indicator model.SortIndicator) string {
	return loc.GetText(columnTextKeys[field]) + indicator.Arrow()
}

// cellText returns what a table cell shows for v in column col
func cellText(v model.Video, col int) string {
	if col < 0 || col >= len(model.SortFields) {
		return ""
	}
	switch model.SortFields[col] {
	case model.SortByTitle:
		return v.DisplayTitle()
	case model.SortByChannel:
		return v.Channel
	case model.SortByDate:
		return v.TableDate()
	case model.SortByDescription:
		return v.DisplayDescription()
	}
	return ""
}

// ResultsTable shows the current view with sortable column headers
type ResultsTable struct {
	table        *widget.Table
	localization *Localization

	rows      func() []model.Video
	indicator func(model.SortField) model.SortIndicator

	onHeaderTapped func(model.SortField)
	onSelected     func(model.Video)
}

// NewResultsTable creates the table. rows and indicator are read on every refresh.
func NewResultsTable(loc *Localization, rows func() []model.Video, indicator func(model.SortField) model.SortIndicator) *ResultsTable {
	rt := &ResultsTable{
		localization: loc,
		rows:         rows,
		indicator:    indicator,
	}

	rt.table = widget.NewTableWithHeaders(
		func() (int, int) {
			return len(rt.rows()), len(model.SortFields)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			videos := rt.rows()
			if id.Row < 0 || id.Row >= len(videos) {
				label.SetText("")
				return
			}
			label.SetText(cellText(videos[id.Row], id.Col))
		},
	)
	rt.table.ShowHeaderColumn = false
	rt.table.CreateHeader = func() fyne.CanvasObject {
		btn := widget.NewButton("", nil)
		btn.Importance = widget.LowImportance
		btn.Alignment = widget.ButtonAlignLeading
		return btn
	}
	rt.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		btn := obj.(*widget.Button)
		if id.Col < 0 || id.Col >= len(model.SortFields) {
			btn.SetText("")
			btn.OnTapped = nil
			return
		}
		field := model.SortFields[id.Col]
		btn.SetText(headerText(rt.localization, field, rt.indicator(field)))
		btn.OnTapped = func() {
			if rt.onHeaderTapped != nil {
				rt.onHeaderTapped(field)
			}
		}
	}
	rt.table.OnSelected = func(id widget.TableCellID) {
		videos := rt.rows()
		if id.Row < 0 || id.Row >= len(videos) || rt.onSelected == nil {
			return
		}
		rt.onSelected(videos[id.Row])
	}

	for col, width := range columnWidths {
		rt.table.SetColumnWidth(col, width)
	}
	return rt
}

// SetCallbacks sets the header click and row selection handlers
func (rt *ResultsTable) SetCallbacks(onHeaderTapped func(model.SortField), onSelected func(model.Video)) {
	rt.onHeaderTapped = onHeaderTapped
	rt.onSelected = onSelected
}

// Widget returns the canvas object to place in a layout
func (rt *ResultsTable) Widget() fyne.CanvasObject {
	return rt.table
}

// Reload redraws rows and headers after the view changed
func (rt *ResultsTable) Reload() {
	rt.table.UnselectAll()
	rt.table.ScrollToTop()
	rt.table.Refresh()
}
