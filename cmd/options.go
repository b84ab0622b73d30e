package cmd

import (
	"nbcli/core/apperr"
	"nbcli/core/category"
	"nbcli/feature/export"
)

// Options is the parsed command line handed to every handler.
type Options struct {
	Action    category.Action
	Category  category.Category
	File      string
	Reverse   bool
	Headers   bool
	Query     string
	Yes       bool
	DryRun    bool
	Format    export.Format
	Upload    bool
	Debug     bool
	ConfigDir string
}

// rawFlags holds flag values as cobra parsed them.
type rawFlags struct {
	action    string
	category  string
	file      string
	reverse   bool
	headers   bool
	query     string
	yes       bool
	dryRun    bool
	format    string
	upload    bool
	debug     bool
	configDir string
}

// Defaults applied when -a or -t is omitted.
const (
	defaultAction   = string(category.List)
	defaultCategory = string(category.Device)
)

// options validates the raw flags. action overrides -a when a subcommand
// selects it.
func (f rawFlags) options(action string) (Options, error) {
	opts := Options{
		File:      f.file,
		Reverse:   f.reverse,
		Headers:   f.headers,
		Query:     f.query,
		Yes:       f.yes,
		DryRun:    f.dryRun,
		Upload:    f.upload,
		Debug:     f.debug,
		ConfigDir: f.configDir,
	}
	if opts.ConfigDir == "" {
		opts.ConfigDir = "."
	}

	format, err := export.ParseFormat(f.format)
	if err != nil {
		return Options{}, err
	}
	opts.Format = format

	if opts.Query != "" {
		return opts, nil
	}

	if action == "" {
		action = f.action
	}
	if action == "" {
		action = defaultAction
	}
	if opts.Action, err = category.ParseAction(action); err != nil {
		return Options{}, err
	}

	raw := f.category
	if raw == "" {
		raw = defaultCategory
	}
	if opts.Category, err = category.Parse(raw); err != nil {
		return Options{}, err
	}

	switch opts.Action {
	case category.Rename:
		if opts.File == "" {
			return Options{}, apperr.UserInput("-a rename requires -f with one OLD_NAME<TAB>NEW_NAME per line")
		}
	case category.Delete:
		if opts.File == "" {
			return Options{}, apperr.UserInput("-a delete requires -f with one identifier per line")
		}
	}
	return opts, nil
}
