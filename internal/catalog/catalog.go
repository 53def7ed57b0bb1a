// Package catalog turns the raw file and user collections into the structure
// page renderers consume: files partitioned into the four type sections, each
// card carrying sanitized text and a resolved uploader identity. The package
// is pure — it never touches storage — so renderers can re-run it after every
// data change.
package catalog

import (
	"strings"

	"github.com/summarize-app/summarize/internal/i18n"
	"github.com/summarize-app/summarize/internal/models"
	"github.com/summarize-app/summarize/internal/security"
)

// Card is one renderable file entry. Title, Subject, and Description are
// HTML-escaped here even though write paths sanitize too; render-time
// escaping stays in place no matter where a record came from.
type Card struct {
	ID          int64
	Title       string
	Subject     string
	Description string
	TypeLabel   string
	Date        string
	Size        string
	PageCount   int
	Downloads   int

	// UploaderName is the resolved display identity.
	UploaderName string

	// AvatarImage is the uploader's stored image (data URI) when present;
	// otherwise AvatarInitials carries up to two uppercased initials, with
	// "U" as the final placeholder.
	AvatarImage    string
	AvatarInitials string
}

// Section is one non-empty type bucket, in the fixed display order.
type Section struct {
	Type  models.FileType
	Label string
	Count int
	Cards []Card
}

// Build partitions files into the four type sections. Empty sections are
// omitted, records with unknown types are dropped from display, and card
// order inside a section is the stored insertion order.
func Build(files []models.FileRecord, users []models.User, lang i18n.Lang) []Section {
	buckets := make(map[models.FileType][]Card, len(models.FileTypes))
	for _, f := range files {
		if !f.Type.Known() {
			continue
		}
		buckets[f.Type] = append(buckets[f.Type], buildCard(f, users, lang))
	}

	sections := make([]Section, 0, len(models.FileTypes))
	for _, t := range models.FileTypes {
		cards := buckets[t]
		if len(cards) == 0 {
			continue
		}
		sections = append(sections, Section{
			Type:  t,
			Label: i18n.FileTypeLabel(lang, t),
			Count: len(cards),
			Cards: cards,
		})
	}
	return sections
}

func buildCard(f models.FileRecord, users []models.User, lang i18n.Lang) Card {
	c := Card{
		ID:          f.ID,
		Title:       security.SanitizeHTML(f.Title),
		Subject:     security.SanitizeHTML(f.Subject),
		Description: security.SanitizeHTML(f.Description),
		TypeLabel:   i18n.FileTypeLabel(lang, f.Type),
		Date:        f.Date,
		Size:        f.Size,
		PageCount:   f.PageCount,
		Downloads:   f.Downloads,
	}

	uploader := findUploader(users, f.UploadedBy)

	switch {
	case uploader != nil && uploader.Avatar != "":
		c.AvatarImage = uploader.Avatar
	case uploader != nil && uploader.Name != "":
		c.AvatarInitials = initials(uploader.Name)
	case f.UploadedByName != "":
		c.AvatarInitials = initials(f.UploadedByName)
	default:
		c.AvatarInitials = "U"
	}

	switch {
	case uploader != nil && uploader.Name != "":
		c.UploaderName = uploader.Name
	case f.UploadedByName != "":
		c.UploaderName = f.UploadedByName
	case f.UploadedBy != "":
		c.UploaderName = f.UploadedBy
	default:
		c.UploaderName = i18n.Translate(lang, "unknown")
	}

	return c
}

func findUploader(users []models.User, email string) *models.User {
	if email == "" {
		return nil
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}

// initials takes the first letters of up to two space-separated name tokens,
// uppercased.
func initials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	var b strings.Builder
	for _, tok := range tokens {
		r := []rune(tok)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	if b.Len() == 0 {
		return "U"
	}
	return b.String()
}

// FilterOptions narrows the published collection before Build. Zero values
// mean "no constraint".
type FilterOptions struct {
	Type    models.FileType
	Subject string
	Query   string
}

// Filter applies the type, subject (exact, case-insensitive), and free-text
// (title or subject substring, case-insensitive) constraints, preserving
// order.
func Filter(files []models.FileRecord, opts FilterOptions) []models.FileRecord {
	out := make([]models.FileRecord, 0, len(files))
	query := strings.ToLower(opts.Query)
	for _, f := range files {
		if opts.Type != "" && f.Type != opts.Type {
			continue
		}
		if opts.Subject != "" && !strings.EqualFold(f.Subject, opts.Subject) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(f.Title), query) &&
			!strings.Contains(strings.ToLower(f.Subject), query) {
			continue
		}
		out = append(out, f)
	}
	return out
}
