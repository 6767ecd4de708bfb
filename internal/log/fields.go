package log

// Canonical field name constants for structured logging.
const (
	FieldComponent = "component"
	FieldEvent     = "event"

	// Path / URL fields
	FieldPath     = "path"
	FieldBaseURL  = "base_url"
	FieldFilename = "filename"
	FieldDest     = "destination"

	// Sync fields
	FieldCutoff = "cutoff"
	FieldDryRun = "dry_run"
)
