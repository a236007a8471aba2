package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Theme
	}{
		{"Default", Default},
		{"Light", Light},
		{"Dark", Dark},
		{"dark", Dark},
		{"LIGHT", Light},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	got, err := Parse("Blue")
	require.Error(t, err)
	assert.Equal(t, Default, got)
	assert.True(t, errdefs.IsInvalidArgument(err))

	var argErr *errdefs.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "Value Blue is not a theme name", argErr.Msg)
}

func TestStringAndDisplayName(t *testing.T) {
	assert.Equal(t, "Dark", Dark.String())
	assert.Equal(t, "Unknown", Theme(9).String())
	assert.Equal(t, "Windows default", Default.DisplayName())
	assert.Equal(t, "Light", Light.DisplayName())
}

func TestTextRoundTrip(t *testing.T) {
	text, err := Dark.MarshalText()
	require.NoError(t, err)

	var got Theme
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, Dark, got)

	assert.Error(t, got.UnmarshalText([]byte("Blue")))
	assert.Equal(t, Dark, got)
}
