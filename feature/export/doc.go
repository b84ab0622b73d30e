// Package export serializes list tables as CSV, JSON or YAML.
//
// Exports go to a writer (usually stdout) or are uploaded to the configured
// S3/MinIO bucket under exports/<category>/<UTC timestamp>.<ext>. The bucket
// is created on first upload.
package export
