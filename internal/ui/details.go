package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

// DetailsPane shows the full record of the selected video
type DetailsPane struct {
	localization *Localization

	title       *widget.Label
	channel     *widget.Label
	date        *widget.Label
	link        *widget.Hyperlink
	description *widget.Label

	// captions maps each caption label to its text key
	captions map[*widget.Label]string
	card     *widget.Card
	shown    bool
}

// NewDetailsPane creates an empty details pane
func NewDetailsPane(loc *Localization) *DetailsPane {
	d := &DetailsPane{localization: loc, captions: make(map[*widget.Label]string)}

	d.title = widget.NewLabel("")
	d.title.Wrapping = fyne.TextWrapWord
	d.channel = widget.NewLabel("")
	d.date = widget.NewLabel("")
	d.link = widget.NewHyperlink("", nil)
	d.description = widget.NewLabel("")
	d.description.Wrapping = fyne.TextWrapWord

	info := container.NewHBox(
		d.caption(KeyDetailsChannel), d.channel,
		d.caption(KeyDetailsDate), d.date,
	)
	header := container.NewVBox(
		d.caption(KeyDetailsTitle),
		d.title,
		info,
		container.NewHBox(d.caption(KeyDetailsURL), d.link),
		d.caption(KeyDetailsDescription),
	)

	scroll := container.NewVScroll(d.description)
	scroll.SetMinSize(fyne.NewSize(0, DetailsMinHeight/2))
	d.card = widget.NewCard("", "", container.NewBorder(header, nil, nil, nil, scroll))

	d.RefreshTexts()
	return d
}

// caption creates a bold label whose text follows the current language
func (d *DetailsPane) caption(key string) *widget.Label {
	label := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	d.captions[label] = key
	return label
}

func (d *DetailsPane) captionText(key string) string {
	text := d.localization.GetText(key)
	if key == KeyDetailsURL {
		return IconLink + " " + text
	}
	return text
}

// RefreshTexts re-reads every caption and placeholder after a language change
func (d *DetailsPane) RefreshTexts() {
	d.card.SetSubTitle(d.localization.GetText(KeyDetailsHeading))
	for label, key := range d.captions {
		label.SetText(d.captionText(key))
	}
	if !d.shown {
		d.Clear()
	}
}

// Widget returns the canvas object to place in a layout
func (d *DetailsPane) Widget() fyne.CanvasObject {
	return d.card
}

// Show fills the pane with v
func (d *DetailsPane) Show(v model.Video) {
	fields := detailFields(d.localization, v)
	d.shown = true
	d.title.SetText(fields.title)
	d.channel.SetText(fields.channel)
	d.date.SetText(fields.date)
	d.setLink(fields.url)
	d.description.SetText(fields.description)
}

// Clear resets the pane to its placeholder texts
func (d *DetailsPane) Clear() {
	d.shown = false
	d.title.SetText(d.localization.GetText(KeyDetailsPlaceholder))
	d.channel.SetText(DashPlaceholder)
	d.date.SetText(DashPlaceholder)
	d.setLink("")
	d.description.SetText(d.localization.GetText(KeyDetailsDescriptionPending))
}

func (d *DetailsPane) setLink(raw string) {
	d.link.SetText(raw)
	if raw == "" {
		d.link.URL = nil
		return
	}
	if err := d.link.SetURLFromString(raw); err != nil {
		d.link.URL = nil
	}
}

// details holds the texts shown for one video
type details struct {
	title, channel, date, url, description string
}

func detailFields(loc *Localization, v model.Video) details {
	description := v.Description
	if description == "" {
		description = loc.GetText(KeyNoDescription)
	}
	return details{
		title:       v.Title,
		channel:     v.Channel,
		date:        v.DetailDate(),
		url:         v.Link(),
		description: description,
	}
}
