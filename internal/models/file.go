package models

// FileType classifies an uploaded document.
type FileType string

const (
	FileTypeSummary  FileType = "summary"
	FileTypeNote     FileType = "note"
	FileTypePastExam FileType = "past_exam"
	FileTypeProject  FileType = "project"
)

// FileTypes lists the four known types in display order. The catalog keys its
// sections on this order; records with any other type are not displayed.
var FileTypes = []FileType{FileTypeSummary, FileTypeNote, FileTypePastExam, FileTypeProject}

// Known reports whether t is one of the four displayable types.
func (t FileType) Known() bool {
	switch t {
	case FileTypeSummary, FileTypeNote, FileTypePastExam, FileTypeProject:
		return true
	}
	return false
}

// FileRecord is a catalog or review-queue entry. The binary payload itself
// lives in the separate blob store, keyed by ID; a record may legitimately
// exist without a blob and consumers must treat that as a reportable state.
type FileRecord struct {
	// ID is unique and monotonically assigned across both the published
	// catalog and the review queue.
	ID int64 `json:"id"`

	Title   string   `json:"title"`
	Subject string   `json:"subject"`
	Type    FileType `json:"type"`

	PageCount int `json:"pageCount,omitempty"`

	// Size is a pre-formatted display string, e.g. "2.4 MB".
	Size string `json:"size"`

	// Date is the upload date in display form.
	Date string `json:"date"`

	// Downloads counts successful downloads. Never negative; starts at 0.
	Downloads int `json:"downloads"`

	// UploadedBy is the uploader's email; UploadedByName is a display-name
	// snapshot used when the account can no longer be resolved.
	UploadedBy     string `json:"uploadedBy"`
	UploadedByName string `json:"uploadedByName,omitempty"`

	Description string `json:"description,omitempty"`
}
