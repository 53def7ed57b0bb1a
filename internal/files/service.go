// Package files implements the file operations: upload into the catalog or
// review queue, the download state machine, and the admin moderation actions.
// It is the only writer allowed to touch a record and its blob together, and
// it keeps the two stores in sync.
package files

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/summarize-app/summarize/internal/auth"
	"github.com/summarize-app/summarize/internal/common"
	"github.com/summarize-app/summarize/internal/dbx"
	"github.com/summarize-app/summarize/internal/i18n"
	"github.com/summarize-app/summarize/internal/logging"
	"github.com/summarize-app/summarize/internal/models"
	"github.com/summarize-app/summarize/internal/notify"
	"github.com/summarize-app/summarize/internal/security"
	"github.com/summarize-app/summarize/internal/store"
)

// LoginRedirectDelay is how long consumers should keep the warning toast
// visible before navigating an unauthenticated user to the login view.
const LoginRedirectDelay = 900 * time.Millisecond

// Options tune the service per configuration.
type Options struct {
	// MaxFileMB caps upload size; 0 means security.DefaultMaxFileMB.
	MaxFileMB int

	// Moderation routes uploads into the review queue instead of publishing
	// them directly.
	Moderation bool

	// Lang supplies the language for the notifications the download flow
	// emits. nil means the default language.
	Lang func() i18n.Lang
}

// Service owns file records and their blobs.
type Service struct {
	db       *sql.DB
	recs     *store.Records
	blobs    *store.BlobStore
	gate     *auth.Service
	center   *notify.Center
	validate *validator.Validate
	log      logging.Logger
	now      func() time.Time

	maxFileMB  int
	moderation bool
	lang       func() i18n.Lang

	mu       sync.Mutex
	onChange []func()
}

// NewService wires the file operations to their stores and collaborators.
func NewService(db *sql.DB, blobs *store.BlobStore, gate *auth.Service, center *notify.Center, log logging.Logger, opts Options) *Service {
	if opts.MaxFileMB <= 0 {
		opts.MaxFileMB = security.DefaultMaxFileMB
	}
	if opts.Lang == nil {
		opts.Lang = func() i18n.Lang { return i18n.DefaultLang }
	}
	return &Service{
		db:         db,
		recs:       store.NewRecords(db, log),
		blobs:      blobs,
		gate:       gate,
		center:     center,
		validate:   validator.New(),
		log:        log,
		now:        time.Now,
		maxFileMB:  opts.MaxFileMB,
		moderation: opts.Moderation,
		lang:       opts.Lang,
	}
}

// OnChange registers a callback fired after every mutation of the published
// catalog, so renderers can re-query.
func (s *Service) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func (s *Service) emitChange() {
	s.mu.Lock()
	fns := make([]func(), len(s.onChange))
	copy(fns, s.onChange)
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *Service) t(key string) string {
	return i18n.Translate(s.lang(), key)
}

// Published returns the catalog collection in stored order.
func (s *Service) Published(ctx context.Context) []models.FileRecord {
	return s.recs.Files(ctx)
}

// Queue returns the pending review queue. Admin only.
func (s *Service) Queue(ctx context.Context) ([]models.FileRecord, error) {
	if !s.gate.IsAdmin(ctx) {
		return nil, common.ErrUnauthorized
	}
	return s.recs.Review(ctx), nil
}

// DownloadResult is the success outcome of Download.
type DownloadResult struct {
	Record  *models.FileRecord
	Content []byte
}

// Download runs the download state machine for one file id. Each terminal
// state emits exactly one notification:
//
//	not logged in        → warning, caller redirects to login after LoginRedirectDelay
//	record missing       → error
//	blob store failure   → error
//	record without blob  → warning
//	success              → success; downloads incremented and persisted first
//
// On success the change event fires so the visible counter refreshes.
func (s *Service) Download(ctx context.Context, fileID int64) (*DownloadResult, error) {
	if !s.gate.IsAuthenticated(ctx) {
		s.center.Warning(s.t("mustLoginToDownload"))
		return nil, common.ErrUnauthorized
	}

	records := s.recs.Files(ctx)
	idx := -1
	for i := range records {
		if records[i].ID == fileID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.center.Error(s.t("fileNotFound"))
		return nil, common.ErrNotFound
	}

	content, err := s.blobs.Get(ctx, fileID)
	if err != nil {
		s.log.Error(ctx, "blob lookup failed", "file", fileID, "error", err)
		s.center.Error(s.t("downloadError"))
		return nil, err
	}
	if content == nil {
		s.center.Warning(s.t("fileNotAvailable"))
		return nil, fmt.Errorf("file %d: %w", fileID, common.ErrUnavailable)
	}

	records[idx].Downloads++
	if err := s.recs.SaveFiles(ctx, records); err != nil {
		s.center.Error(s.t("downloadError"))
		return nil, err
	}
	s.emitChange()

	s.center.Success(s.t("downloadStarted"))
	rec := records[idx]
	return &DownloadResult{Record: &rec, Content: content}, nil
}

// UploadRequest carries the upload form fields plus the picked file.
type UploadRequest struct {
	Title       string          `validate:"required,min=1,max=200"`
	Subject     string          `validate:"required,min=1,max=100"`
	Type        models.FileType `validate:"required"`
	Description string          `validate:"max=1000"`
	PageCount   int             `validate:"min=0"`

	Filename string `validate:"required"`
	MimeType string `validate:"required"`
	Content  []byte `validate:"required"`
}

// UploadResult reports where the new record landed.
type UploadResult struct {
	Record *models.FileRecord

	// Pending is true when moderation routed the record into the review
	// queue rather than the published catalog.
	Pending bool
}

// Upload validates and stores a new file: blob first, then the record, so a
// stored record never points at a payload that was refused.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	uploader := s.gate.CurrentUser(ctx)
	if uploader == nil {
		return nil, common.ErrUnauthorized
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, common.ErrValidation
	}
	if !req.Type.Known() {
		return nil, common.ErrValidation
	}
	if !security.IsValidFileType(req.Filename, req.MimeType) {
		return nil, common.ErrValidation
	}
	if !security.IsValidFileSize(int64(len(req.Content)), s.maxFileMB) {
		return nil, common.ErrValidation
	}
	for _, field := range []string{req.Title, req.Subject, req.Description} {
		if security.HasXSSPatterns(field) {
			s.log.Warn(ctx, "unsafe upload input rejected")
			s.log.Debug(ctx, "unsafe upload input", "value", field)
			return nil, common.ErrValidation
		}
	}

	published := s.recs.Files(ctx)
	review := s.recs.Review(ctx)

	rec := models.FileRecord{
		ID:             nextID(published, review),
		Title:          security.SanitizeInput(req.Title),
		Subject:        security.SanitizeInput(req.Subject),
		Type:           req.Type,
		PageCount:      req.PageCount,
		Size:           formatSize(len(req.Content)),
		Date:           s.now().Format("2006-01-02"),
		Downloads:      0,
		UploadedBy:     uploader.Email,
		UploadedByName: uploader.Name,
		Description:    security.SanitizeInput(req.Description),
	}

	if err := s.blobs.Put(ctx, rec.ID, req.Content); err != nil {
		return nil, err
	}

	var err error
	if s.moderation {
		err = s.recs.SaveReview(ctx, append(review, rec))
	} else {
		err = s.recs.SaveFiles(ctx, append(published, rec))
	}
	if err != nil {
		// keep the stores in sync: a record that never landed must not
		// leave its payload behind
		_ = s.blobs.Delete(ctx, rec.ID)
		return nil, err
	}

	s.log.Info(ctx, "file uploaded", "id", rec.ID, "pending", s.moderation)
	if !s.moderation {
		s.emitChange()
	}
	return &UploadResult{Record: &rec, Pending: s.moderation}, nil
}

// Approve moves a pending record from the review queue into the published
// catalog. Both collections change in one transaction. Admin only.
func (s *Service) Approve(ctx context.Context, fileID int64) error {
	if !s.gate.IsAdmin(ctx) {
		return common.ErrUnauthorized
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		recs := store.NewRecords(tx, s.log)

		review := recs.Review(ctx)
		idx := -1
		for i := range review {
			if review[i].ID == fileID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("review entry %d: %w", fileID, common.ErrNotFound)
		}

		approved := review[idx]
		review = append(review[:idx], review[idx+1:]...)

		if err := recs.SaveReview(ctx, review); err != nil {
			return err
		}
		return recs.SaveFiles(ctx, append(recs.Files(ctx), approved))
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "file approved", "id", fileID)
	s.emitChange()
	return nil
}

// Reject drops a pending record and its blob. Admin only.
func (s *Service) Reject(ctx context.Context, fileID int64) error {
	if !s.gate.IsAdmin(ctx) {
		return common.ErrUnauthorized
	}

	review := s.recs.Review(ctx)
	idx := -1
	for i := range review {
		if review[i].ID == fileID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("review entry %d: %w", fileID, common.ErrNotFound)
	}

	if err := s.recs.SaveReview(ctx, append(review[:idx], review[idx+1:]...)); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, fileID); err != nil {
		s.log.Warn(ctx, "rejected record removed but blob cleanup failed", "id", fileID, "error", err)
	}

	s.log.Info(ctx, "file rejected", "id", fileID)
	return nil
}

// Delete removes a published record and its blob. Admin only.
func (s *Service) Delete(ctx context.Context, fileID int64) error {
	if !s.gate.IsAdmin(ctx) {
		return common.ErrUnauthorized
	}

	published := s.recs.Files(ctx)
	idx := -1
	for i := range published {
		if published[i].ID == fileID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("file %d: %w", fileID, common.ErrNotFound)
	}

	if err := s.recs.SaveFiles(ctx, append(published[:idx], published[idx+1:]...)); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, fileID); err != nil {
		s.log.Warn(ctx, "record removed but blob cleanup failed", "id", fileID, "error", err)
	}

	s.log.Info(ctx, "file deleted", "id", fileID)
	s.emitChange()
	return nil
}

// FileEdit carries the admin-editable record fields. Empty strings and zero
// page counts keep the stored value.
type FileEdit struct {
	Title       string
	Subject     string
	Description string
	PageCount   int
}

// Edit updates a published record in place. Admin only.
func (s *Service) Edit(ctx context.Context, fileID int64, edit FileEdit) (*models.FileRecord, error) {
	if !s.gate.IsAdmin(ctx) {
		return nil, common.ErrUnauthorized
	}

	for _, field := range []string{edit.Title, edit.Subject, edit.Description} {
		if security.HasXSSPatterns(field) {
			s.log.Warn(ctx, "unsafe edit input rejected")
			return nil, common.ErrValidation
		}
	}

	// the same caps Upload enforces through its request tags
	if edit.Title != "" && !security.ValidateLength(edit.Title, 1, 200) {
		return nil, common.ErrValidation
	}
	if edit.Subject != "" && !security.ValidateLength(edit.Subject, 1, 100) {
		return nil, common.ErrValidation
	}
	if edit.Description != "" && !security.ValidateLength(edit.Description, 0, 1000) {
		return nil, common.ErrValidation
	}

	published := s.recs.Files(ctx)
	for i := range published {
		if published[i].ID != fileID {
			continue
		}
		if edit.Title != "" {
			published[i].Title = security.SanitizeInput(edit.Title)
		}
		if edit.Subject != "" {
			published[i].Subject = security.SanitizeInput(edit.Subject)
		}
		if edit.Description != "" {
			published[i].Description = security.SanitizeInput(edit.Description)
		}
		if edit.PageCount > 0 {
			published[i].PageCount = edit.PageCount
		}

		if err := s.recs.SaveFiles(ctx, published); err != nil {
			return nil, err
		}
		s.emitChange()
		rec := published[i]
		return &rec, nil
	}

	return nil, fmt.Errorf("file %d: %w", fileID, common.ErrNotFound)
}

// ClearAll wipes every collection and blob, then restores the bootstrap
// admin so the invariant of exactly one privileged account holds. Admin only.
func (s *Service) ClearAll(ctx context.Context) error {
	if !s.gate.IsAdmin(ctx) {
		return common.ErrUnauthorized
	}

	if err := s.recs.SaveUsers(ctx, nil); err != nil {
		return err
	}
	if err := s.recs.SaveFiles(ctx, nil); err != nil {
		return err
	}
	if err := s.recs.SaveReview(ctx, nil); err != nil {
		return err
	}
	if err := s.blobs.Clear(ctx); err != nil {
		return err
	}
	if err := s.gate.InitAdmin(ctx); err != nil {
		return err
	}

	s.log.Warn(ctx, "all data cleared")
	s.emitChange()
	return nil
}

// nextID assigns identifiers monotonically across both collections so a
// record keeps its id when it moves from review to published.
func nextID(published, review []models.FileRecord) int64 {
	var max int64
	for _, f := range published {
		if f.ID > max {
			max = f.ID
		}
	}
	for _, f := range review {
		if f.ID > max {
			max = f.ID
		}
	}
	return max + 1
}

// formatSize renders a byte count the way the catalog displays it.
func formatSize(n int) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
