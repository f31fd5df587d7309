package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain ascii",
			input: "Alice",
			want:  "Alice",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  山田太郎  ",
			want:  "山田太郎",
		},
		{
			name:  "keeps interior spaces",
			input: "Taro Yamada",
			want:  "Taro Yamada",
		},
		{
			name:  "nfc composition",
			input: "Résumé",
			want:  "Résumé",
		},
		{
			name:  "strips zero-width joiner in the middle",
			input: "Ali‍ce",
			want:  "Alice",
		},
		{
			name:  "strips bidi controls",
			input: "‪Alice‬",
			want:  "Alice",
		},
		{
			name:  "exactly 100 runes",
			input: strings.Repeat("あ", 100),
			want:  strings.Repeat("あ", 100),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DisplayName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayName_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrEmptyName,
		},
		{
			name:    "whitespace only",
			input:   "   \t  ",
			wantErr: ErrEmptyName,
		},
		{
			name:    "zero-width characters only",
			input:   "​‌‍",
			wantErr: ErrNoValidCharacters,
		},
		{
			name:    "control characters only",
			input:   "",
			wantErr: ErrNoValidCharacters,
		},
		{
			name:    "soft hyphen and word joiner only",
			input:   "­⁠",
			wantErr: ErrNoValidCharacters,
		},
		{
			name:    "101 runes",
			input:   strings.Repeat("a", 101),
			wantErr: ErrTooLong,
		},
		{
			name:    "over the limit after stripping",
			input:   strings.Repeat("あ", 101) + "​",
			wantErr: ErrTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DisplayName(tt.input)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestDisplayName_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := DisplayName(" ‪Taro‬ Yamada ")
	require.NoError(t, err)
	second, err := DisplayName(" ‪Taro‬ Yamada ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDisplayName_LengthMeasuredAfterStripping(t *testing.T) {
	t.Parallel()

	// 100 letters padded with stripped characters must pass.
	input := strings.Repeat("a​", 100)
	got, err := DisplayName(input)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 100), got)
}

func TestIsValidationError_OtherErrors(t *testing.T) {
	t.Parallel()

	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(assert.AnError))
}
