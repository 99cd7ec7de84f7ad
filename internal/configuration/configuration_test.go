package configuration

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeConfigProvider is a fake env-file reader serving a fixed map or error.
type fakeConfigProvider struct {
	envMap map[string]string
	err    error
}

func (f *fakeConfigProvider) Read(_ ...string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.envMap, nil
}

// TestHandler_ReadSettings verifies settings resolution with per-key default
// fallback.
func TestHandler_ReadSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config *fakeConfigProvider
		want   Settings
	}{
		{
			name:   "Success_MissingFile",
			config: &fakeConfigProvider{err: errors.New("open: no such file")},
			want:   DefaultSettings(),
		},
		{
			name:   "Success_EmptyFile",
			config: &fakeConfigProvider{envMap: map[string]string{}},
			want:   DefaultSettings(),
		},
		{
			name: "Success_AllKeys",
			config: &fakeConfigProvider{envMap: map[string]string{
				SettingInterval:        "30",
				SettingDebounce:        "500",
				SettingPreferencesPath: "/tmp/prefs.json",
				SettingPowerShell:      "pwsh.exe",
			}},
			want: Settings{
				Interval:        30 * time.Second,
				Debounce:        500 * time.Millisecond,
				PreferencesPath: "/tmp/prefs.json",
				PowerShell:      "pwsh.exe",
			},
		},
		{
			name: "Success_MalformedValuesFallBack",
			config: &fakeConfigProvider{envMap: map[string]string{
				SettingInterval: "soon",
				SettingDebounce: "-200",
			}},
			want: DefaultSettings(),
		},
		{
			name: "Success_ZeroValuesFallBack",
			config: &fakeConfigProvider{envMap: map[string]string{
				SettingInterval: "0",
				SettingDebounce: "0",
			}},
			want: DefaultSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewHandler(tt.config)

			assert.Equal(t, tt.want, handler.ReadSettings("spacewatch.env"))
		})
	}
}
