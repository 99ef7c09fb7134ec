package vars_test

import (
	"testing"

	"github.com/arthur-debert/buildscripts/pkg/vars"
	"github.com/stretchr/testify/assert"
)

func TestParseArg(t *testing.T) {
	tests := []struct {
		arg       string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"version==1.2.3", "version", "1.2.3", true},
		{"url==http://x/?a==b", "url", "http://x/?a==b", true},
		{"empty==", "empty", "", true},
		{"==novalue", "", "novalue", true},
		{"version=1.2.3", "", "", false},
		{"plain", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			key, value, ok := vars.ParseArg(tt.arg)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKey, key)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	store := vars.New()

	ignored := store.ParseArgs([]string{"version==2.0", "stray", "mode==release", "version==2.1"})

	assert.Equal(t, []string{"stray"}, ignored)
	assert.Equal(t, []string{"mode", "version"}, store.Keys())

	v, ok := store.Get("version")
	assert.True(t, ok)
	assert.Equal(t, "2.1", v, "later arguments win")
}

func TestGetOr(t *testing.T) {
	store := vars.New()
	assert.Equal(t, "Not provided", store.GetOr("version", "Not provided"))

	store.Set("version", "3")
	assert.Equal(t, "3", store.GetOr("version", "Not provided"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}
