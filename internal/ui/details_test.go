package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

func TestDetailFields(t *testing.T) {
	loc := NewLocalization()
	v := model.NewVideo("abc", "Full title", "Channel", "2024-05-06T07:08:09Z", "First line\nSecond line")

	got := detailFields(loc, v)
	if got.title != "Full title" || got.channel != "Channel" {
		t.Errorf("Unexpected title/channel: %+v", got)
	}
	if got.date != "May 06, 2024 at 07:08" {
		t.Errorf("Expected long date, got %q", got.date)
	}
	if got.url != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("Expected watch URL, got %q", got.url)
	}
	if got.description != "First line\nSecond line" {
		t.Errorf("Description should be shown in full, got %q", got.description)
	}
}

func TestDetailFields_EmptyDescription(t *testing.T) {
	loc := NewLocalization()
	got := detailFields(loc, model.NewVideo("abc", "T", "C", "2024-05-06T07:08:09Z", ""))

	if got.description != "No description available." {
		t.Errorf("Expected placeholder, got %q", got.description)
	}
}

func TestDetailsPane_RefreshTexts(t *testing.T) {
	test.NewApp()
	loc := NewLocalization()
	d := NewDetailsPane(loc)
	v := model.NewVideo("abc", "Full title", "Channel", "2024-05-06T07:08:09Z", "")
	d.Show(v)

	loc.SetLanguage("pt")
	d.RefreshTexts()

	if got := d.card.Subtitle; got != "Detalhes do Vídeo" {
		t.Errorf("Expected Portuguese heading, got %q", got)
	}
	for label, key := range d.captions {
		if want := d.captionText(key); label.Text != want {
			t.Errorf("Caption %s = %q, want %q", key, label.Text, want)
		}
	}
	if got := d.title.Text; got != "Full title" {
		t.Errorf("Shown video must stay in place, got %q", got)
	}

	d.Clear()
	if got := d.title.Text; got != "Selecione um vídeo para ver os detalhes" {
		t.Errorf("Expected Portuguese placeholder, got %q", got)
	}
}
