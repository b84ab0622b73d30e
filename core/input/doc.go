// Package input reads the operator supplied files nbcli works from.
//
//   - ReadIdentifiers: one identifier per line (device names, serials, asset tags or
//     IP addresses). Lines are trimmed and blank lines skipped.
//   - ReadRenamePairs: tab-separated OLD_NAME<TAB>NEW_NAME lines for bulk renames.
//
// A file that cannot be opened yields apperr.ErrFileNotFound.
package input
