package security

import (
	"regexp"
	"strings"
)

const (
	// DefaultMaxFileMB is the upload size ceiling when the config does not
	// override it.
	DefaultMaxFileMB = 50

	minPasswordLength = 6
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Letters (Latin and Arabic), spaces, hyphens, apostrophes; min 2 chars.
	usernameRe = regexp.MustCompile(`^[a-zA-Z\x{0600}-\x{06FF}\s\-']{2,}$`)

	passwordLetterRe = regexp.MustCompile(`[a-zA-Z]`)
	passwordDigitRe  = regexp.MustCompile(`\d`)
)

// validFileMimeTypes and validFileExtensions are the fixed allow-lists for
// uploads. Both checks must pass.
var (
	validFileMimeTypes = map[string]struct{}{
		"application/pdf":    {},
		"application/msword": {},
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
		"application/vnd.ms-powerpoint":                                             {},
		"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
		"text/plain": {},
	}

	validFileExtensions = map[string]struct{}{
		"pdf": {}, "doc": {}, "docx": {}, "ppt": {}, "pptx": {}, "txt": {},
	}
)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailRe.MatchString(s)
}

// PasswordValidation is the outcome of ValidatePassword. Score counts the
// satisfied requirements (length, letter, digit), 0–3.
type PasswordValidation struct {
	Valid bool
	Score int
}

// ValidatePassword checks the password policy: at least 6 characters, at
// least one letter, at least one digit.
func ValidatePassword(s string) PasswordValidation {
	hasMinLength := len([]rune(s)) >= minPasswordLength
	hasLetter := passwordLetterRe.MatchString(s)
	hasDigit := passwordDigitRe.MatchString(s)

	score := 0
	for _, ok := range []bool{hasMinLength, hasLetter, hasDigit} {
		if ok {
			score++
		}
	}
	return PasswordValidation{Valid: hasMinLength && hasLetter && hasDigit, Score: score}
}

// ValidateUsername accepts display names of letters (including the Arabic
// range), spaces, hyphens, and apostrophes, minimum two characters.
func ValidateUsername(s string) bool {
	return usernameRe.MatchString(s)
}

// ValidateLength reports whether the rune length of s lies in [min, max].
func ValidateLength(s string, min, max int) bool {
	n := len([]rune(s))
	return n >= min && n <= max
}

// IsValidFileType requires both the MIME type and the filename extension to
// be on the allow-lists (pdf/doc/docx/ppt/pptx/txt).
func IsValidFileType(filename, mimeType string) bool {
	if filename == "" {
		return false
	}
	if _, ok := validFileMimeTypes[mimeType]; !ok {
		return false
	}
	dot := strings.LastIndex(filename, ".")
	if dot < 0 {
		return false
	}
	ext := strings.ToLower(filename[dot+1:])
	_, ok := validFileExtensions[ext]
	return ok
}

// IsValidFileSize enforces the maximum upload size in megabytes.
func IsValidFileSize(sizeBytes int64, maxMB int) bool {
	return sizeBytes <= int64(maxMB)*1024*1024
}
