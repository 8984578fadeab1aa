// Package constants provides shared constants used throughout the changeset
// codebase. This includes preference keys, history limits, and other
// configuration values that should be consistent across the library.
package constants

import "time"

// Preference keys for upload comment and source history.
const (
	// CommentHistoryKey is the preference key for the upload comment history list.
	CommentHistoryKey = "upload.comment.history"

	// CommentLastUsedKey is the preference key for the unix timestamp (seconds)
	// of the last upload that recorded a comment.
	CommentLastUsedKey = "upload.comment.last-used"

	// CommentMaxAgeKey is the preference key for the maximum age (seconds) a
	// history comment may have before it is considered stale.
	CommentMaxAgeKey = "upload.comment.max-age"

	// SourceHistoryKey is the preference key for the upload source history list.
	SourceHistoryKey = "upload.source.history"
)

// Preference keys for upload validation term lists. Each prefix is combined
// with the suffixes below to form the full key.
const (
	// CommentValidationPrefix is the preference prefix for comment term lists.
	CommentValidationPrefix = "upload.comment"

	// SourceValidationPrefix is the preference prefix for source term lists.
	SourceValidationPrefix = "upload.source"

	// MandatoryTermsSuffix selects the list of required terms.
	MandatoryTermsSuffix = ".mandatory-terms"

	// ForbiddenTermsSuffix selects the list of forbidden terms.
	ForbiddenTermsSuffix = ".forbidden-terms"

	// ExceptionTermsSuffix selects the list of forbidden-term exceptions.
	ExceptionTermsSuffix = ".exception-terms"
)

// Preference keys for the upload strategy.
const (
	// UploadStrategyKey is the preference key for the chosen upload strategy.
	UploadStrategyKey = "osm-server.upload-strategy"

	// UploadChunkSizeKey is the preference key for the chunk size used by the
	// chunked upload strategy.
	UploadChunkSizeKey = "osm-server.upload-chunk-size"
)

// Preference keys for the GPX tag conversion policy.
const (
	// GpxConvertKey is the preference key for the tag conversion mode.
	GpxConvertKey = "gpx.convert-tags"

	// GpxConvertLastKey is the preference key for the last interactive choice.
	GpxConvertLastKey = "gpx.convert-tags.last"

	// GpxConvertYesKey is the preference key for the keep list.
	GpxConvertYesKey = "gpx.convert-tags.list.yes"

	// GpxConvertNoKey is the preference key for the drop list.
	GpxConvertNoKey = "gpx.convert-tags.list.no"
)

// Limit constants define bounds and defaults for the library.
const (
	// DefaultHistoryLimit is the maximum number of retained history entries.
	DefaultHistoryLimit = 15

	// DefaultHistoryMaxAge is how long a recorded comment stays usable as a
	// default for the next upload.
	DefaultHistoryMaxAge = 4 * time.Hour

	// MaxTagLength is the maximum length of a changeset tag value imposed by
	// the OSM API.
	MaxTagLength = 255

	// TypeCacheSize is the capacity of the preset type parsing cache.
	TypeCacheSize = 16
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
