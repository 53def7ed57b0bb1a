// Package session keeps the per-user presentation state: language, theme,
// and the last-visit timestamp behind the "new files since your last visit"
// alert. Preferences persist across restarts; everything else about a visit
// does not.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/summarize-app/summarize/internal/i18n"
	"github.com/summarize-app/summarize/internal/logging"
	"github.com/summarize-app/summarize/internal/models"
	"github.com/summarize-app/summarize/internal/store"
)

// Theme names the two visual modes.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Manager loads preferences once and serves them from memory, writing
// through to the record store on every change.
type Manager struct {
	recs *store.Records
	log  logging.Logger
	now  func() time.Time

	mu    sync.Mutex
	lang  i18n.Lang
	theme Theme
}

// NewManager restores the stored preferences, falling back to defaultLang
// (or the built-in default) and the light theme when nothing is stored.
func NewManager(ctx context.Context, recs *store.Records, log logging.Logger, defaultLang i18n.Lang) *Manager {
	if defaultLang == "" {
		defaultLang = i18n.DefaultLang
	}

	m := &Manager{recs: recs, log: log, now: time.Now, lang: defaultLang, theme: ThemeLight}

	switch lang := i18n.Lang(recs.Lang(ctx)); lang {
	case i18n.LangAr, i18n.LangEn:
		m.lang = lang
	case "":
	default:
		log.Warn(ctx, "ignoring unknown stored language", "lang", string(lang))
	}

	switch theme := Theme(recs.Theme(ctx)); theme {
	case ThemeLight, ThemeDark:
		m.theme = theme
	case "":
	default:
		log.Warn(ctx, "ignoring unknown stored theme", "theme", string(theme))
	}

	return m
}

// Lang returns the active language.
func (m *Manager) Lang() i18n.Lang {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lang
}

// ToggleLang flips between Arabic and English and persists the choice.
func (m *Manager) ToggleLang(ctx context.Context) (i18n.Lang, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lang == i18n.LangAr {
		m.lang = i18n.LangEn
	} else {
		m.lang = i18n.LangAr
	}
	return m.lang, m.recs.SetLang(ctx, string(m.lang))
}

// Theme returns the active theme.
func (m *Manager) Theme() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme
}

// ToggleTheme flips between light and dark and persists the choice.
func (m *Manager) ToggleTheme(ctx context.Context) (Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.theme == ThemeLight {
		m.theme = ThemeDark
	} else {
		m.theme = ThemeLight
	}
	return m.theme, m.recs.SetTheme(ctx, string(m.theme))
}

// TouchVisit records now as the latest visit and reports whether any file
// carries a date on or after the previous visit's day. A first visit never
// alerts.
func (m *Manager) TouchVisit(ctx context.Context, files []models.FileRecord) (bool, error) {
	prev := m.recs.LastVisit(ctx)
	if err := m.recs.SetLastVisit(ctx, m.now().UnixMilli()); err != nil {
		return false, err
	}
	if prev == 0 {
		return false, nil
	}

	prevDay := time.UnixMilli(prev).Truncate(24 * time.Hour)
	for _, f := range files {
		added, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			continue
		}
		if !added.Before(prevDay) {
			return true, nil
		}
	}
	return false, nil
}
