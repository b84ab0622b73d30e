package cmd

import (
	"bytes"
	"errors"
	"testing"

	"nbcli/core/apperr"
	"nbcli/core/category"
	"nbcli/feature/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		flags   rawFlags
		action  string
		want    Options
		wantErr error
	}{
		{
			name:  "list with alias",
			flags: rawFlags{action: "list", category: "asset", format: "csv"},
			want:  Options{Action: category.List, Category: category.AssetTag, Format: export.FormatCSV, ConfigDir: "."},
		},
		{
			name:   "subcommand overrides -a",
			flags:  rawFlags{action: "delete", category: "device", format: "json", configDir: "/etc/nbcli"},
			action: "export",
			want:   Options{Action: category.Export, Category: category.Device, Format: export.FormatJSON, ConfigDir: "/etc/nbcli"},
		},
		{
			name:  "query needs no action",
			flags: rawFlags{query: "core", format: "csv"},
			want:  Options{Query: "core", Format: export.FormatCSV, ConfigDir: "."},
		},
		{
			name:  "file alone reconciles device names",
			flags: rawFlags{file: "devices.txt", format: "csv"},
			want:  Options{Action: category.List, Category: category.Device, File: "devices.txt", Format: export.FormatCSV, ConfigDir: "."},
		},
		{
			name:  "type defaults to device",
			flags: rawFlags{action: "locate", format: "csv"},
			want:  Options{Action: category.Locate, Category: category.Device, Format: export.FormatCSV, ConfigDir: "."},
		},
		{
			name:  "action defaults to list",
			flags: rawFlags{reverse: true, file: "ips.txt", category: "ip", format: "csv"},
			want:   Options{Action: category.List, Category: category.IP, File: "ips.txt", Reverse: true, Format: export.FormatCSV, ConfigDir: "."},
		},
		{name: "unknown type", flags: rawFlags{action: "list", category: "cable", format: "csv"}, wantErr: apperr.ErrUserInput},
		{name: "unknown action", flags: rawFlags{action: "purge", category: "device", format: "csv"}, wantErr: apperr.ErrUserInput},
		{name: "rename without file", flags: rawFlags{action: "rename", category: "device", format: "csv"}, wantErr: apperr.ErrUserInput},
		{name: "delete without file", flags: rawFlags{action: "delete", category: "ip", format: "csv"}, wantErr: apperr.ErrUserInput},
		{name: "bad format", flags: rawFlags{action: "export", category: "rack", format: "xml"}, wantErr: apperr.ErrUserInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.flags.options(tt.action)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, apperr.ExitUserInput, apperr.ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, apperr.ExitFailure, report(errUsage, &buf))
	assert.Empty(t, buf.String())

	buf.Reset()
	assert.Equal(t, apperr.ExitUserInput, report(apperr.NotImplemented("rename", "ip"), &buf))
	assert.Contains(t, buf.String(), "-a rename -t ip")

	buf.Reset()
	assert.Equal(t, apperr.ExitCancelled, report(apperr.ErrCancelled, &buf))
	assert.Equal(t, "Exiting...\n", buf.String())

	buf.Reset()
	assert.Equal(t, apperr.ExitFailure, report(apperr.Fetch("device", errors.New("403 Forbidden")), &buf))
	assert.Contains(t, buf.String(), "NetBox request for device failed")
}

func TestRootWithoutArgumentsShowsHelp(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	assert.ErrorIs(t, err, errUsage)
	assert.Equal(t, apperr.ExitFailure, report(err, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "Usage:")
}
