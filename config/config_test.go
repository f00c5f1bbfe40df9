package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Conference", cfg.Abbreviations["Conf"])
	assert.Equal(t, "Public Restroom", cfg.Abbreviations["PubRestRm"])
	assert.Len(t, cfg.Abbreviations, 9)
	assert.ElementsMatch(t,
		[]string{"the", "and", "or", "in", "at", "on", "of", "for", "to", "with", "by"},
		cfg.StopWords)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	t.Run("add abbreviation", func(t *testing.T) {
		cfg := NewConfig(WithAbbreviation("Vest", "Vestibule"))
		assert.Equal(t, "Vestibule", cfg.Abbreviations["Vest"])
		assert.Equal(t, "Conference", cfg.Abbreviations["Conf"])
	})

	t.Run("replace abbreviations", func(t *testing.T) {
		table := map[string]string{"X": "Xray"}
		cfg := NewConfig(WithAbbreviations(table))
		assert.Equal(t, table, cfg.Abbreviations)

		table["Y"] = "Yard"
		assert.NotContains(t, cfg.Abbreviations, "Y", "options must copy the caller's map")
	})

	t.Run("add to nil table", func(t *testing.T) {
		cfg := NewConfig(WithAbbreviations(nil), WithAbbreviation("A", "Alpha"))
		assert.Equal(t, map[string]string{"A": "Alpha"}, cfg.Abbreviations)
	})

	t.Run("replace stop words", func(t *testing.T) {
		cfg := NewConfig(WithStopWords("near"))
		assert.Equal(t, []string{"near"}, cfg.StopWords)
		assert.Contains(t, cfg.StopWordSet(), "near")
	})

	t.Run("stop word set is trimmed and lowercased", func(t *testing.T) {
		cfg := NewConfig(WithStopWords(" Near ", "", "BY"))
		assert.Equal(t, map[string]struct{}{"near": {}, "by": {}}, cfg.StopWordSet())
	})
}

func TestConfig_Normalize(t *testing.T) {
	cfg := &Config{StopWords: []string{" The", "the", "", "AND"}}
	cfg.Normalize()
	assert.Equal(t, []string{"the", "and"}, cfg.StopWords)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   map[string]string
		wantErr bool
	}{
		{"valid", map[string]string{"Conf": "Conference"}, false},
		{"empty table", nil, false},
		{"blank code", map[string]string{" ": "Conference"}, true},
		{"blank expansion", map[string]string{"Conf": " "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Abbreviations: tt.table}
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("merges over defaults", func(t *testing.T) {
		cfg, err := Parse([]byte("abbreviations:\n  Vest: Vestibule\n  Conf: Conference Room\n"))
		require.NoError(t, err)
		assert.Equal(t, "Vestibule", cfg.Abbreviations["Vest"])
		assert.Equal(t, "Conference Room", cfg.Abbreviations["Conf"])
		assert.Equal(t, "Mechanical", cfg.Abbreviations["Mech"])
		assert.Equal(t, DefaultStopWords(), cfg.StopWords)
	})

	t.Run("replaces stop words", func(t *testing.T) {
		cfg, err := Parse([]byte("stop_words: [Near, by]\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"near", "by"}, cfg.StopWords)
	})

	t.Run("expands environment", func(t *testing.T) {
		t.Setenv("ROOMSEARCH_TEST_EXPANSION", "Vestibule")
		cfg, err := Parse([]byte("abbreviations:\n  Vest: ${ROOMSEARCH_TEST_EXPANSION}\n  Atr: ${ROOMSEARCH_TEST_UNSET:-Atrium}\n"))
		require.NoError(t, err)
		assert.Equal(t, "Vestibule", cfg.Abbreviations["Vest"])
		assert.Equal(t, "Atrium", cfg.Abbreviations["Atr"])
	})

	t.Run("rejects empty expansion", func(t *testing.T) {
		_, err := Parse([]byte("abbreviations:\n  Vest: \"\"\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("abbreviations: [\n"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roomsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("abbreviations:\n  Vest: Vestibule\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Vestibule", cfg.Abbreviations["Vest"])

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
