// Package circuits lists NetBox circuits with their A and Z terminations.
package circuits
