package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/summarize-app/summarize/internal/common"
	"github.com/summarize-app/summarize/internal/files"
	"github.com/summarize-app/summarize/internal/models"
)

// upload walks the user through the upload form and hands the picked file to
// the file service.
func (a *App) upload(ctx context.Context) {
	if !a.gate.IsAuthenticated(ctx) {
		a.center.Warning(a.t("mustLoginFirst"))
		return
	}

	path, err := getSimpleText(a.reader, "Path to file", os.Stdout)
	if err != nil {
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read file:", err)
		return
	}

	title, err := getSimpleText(a.reader, a.t("fileTitle"), os.Stdout)
	if err != nil {
		return
	}
	subject, err := getSimpleText(a.reader, a.t("subject"), os.Stdout)
	if err != nil {
		return
	}
	fileType, err := getSimpleText(a.reader, a.t("fileType")+" (summary/note/past_exam/project)", os.Stdout)
	if err != nil {
		return
	}
	pages, err := GetInt(a.reader, a.t("pageCount"), os.Stdout)
	if err != nil {
		fmt.Fprintln(a.out, "Page count must be a number")
		return
	}
	description, err := getSimpleText(a.reader, a.t("description"), os.Stdout)
	if err != nil {
		return
	}

	// TypeByExtension may attach parameters ("text/plain; charset=utf-8");
	// the allow-list wants the bare media type
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = parsed
	}

	res, err := a.files.Upload(ctx, files.UploadRequest{
		Title:       title,
		Subject:     subject,
		Type:        models.FileType(fileType),
		Description: description,
		PageCount:   pages,
		Filename:    filepath.Base(path),
		MimeType:    mimeType,
		Content:     content,
	})
	switch {
	case errors.Is(err, common.ErrValidation):
		a.center.Error(a.t("unsafeContent"))
	case err != nil:
		a.log.Error(ctx, "upload failed", "error", err)
	case res.Pending:
		a.center.Info(a.t("pendingReview"))
	default:
		a.center.Success(a.t("successUpload"))
	}
}
