// Package render prints inventory data as fixed-width text columns.
//
// A Table is declared with its columns and widths, filled with rows of loosely
// typed values (strings, nullable pointers, nested API objects) and written with
// an optional header row and rule. List prints a titled list of identifiers, the
// format used for reconciliation reports.
//
// Widths are measured in terminal cells (go-runewidth) so that names containing
// wide characters keep the columns aligned. Values longer than their column are
// not truncated, matching the classic printf("%-35s") layout.
package render
