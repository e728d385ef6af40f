package repository

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/apperror"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(7)) //nolint: gosec // it's ok
}

func TestLoadCatalogRepository(t *testing.T) {
	t.Run("Built-in data set", func(t *testing.T) {
		// When: no paths are configured
		catalog, err := LoadCatalogRepository("", "", newRand())

		// Then: the embedded tables load and draws work
		require.NoError(t, err)

		prize, err := catalog.DrawWheelPrize()
		require.NoError(t, err)
		assert.True(t, entity.IsKnownPrizeType(prize.Type))

		phrase, err := catalog.DrawCategoryAndPhrase()
		require.NoError(t, err)
		assert.NotEmpty(t, phrase.Category)
		assert.Equal(t, strings.ToUpper(phrase.Phrase), phrase.Phrase)
	})

	t.Run("JSON files with falsy bonus prizes", func(t *testing.T) {
		// Given: a prize file mixing false, absent and string bonus prizes
		prizesPath := writeFile(t, "prizes.json", `{"prizes": [
			{"type": "cash", "text": "$950", "value": 950, "prize": "A trip to Ann Arbor!"},
			{"type": "loseturn", "text": "loses a turn", "prize": false},
			{"type": "bankrupt", "text": "Bankrupt"},
			{"type": "cash", "text": "$500", "value": 500, "prize": null}
		]}`)
		phrasesPath := writeFile(t, "phrases.json", `{"phrases": [{"Category": "Landmark", "Phrase": "Glacier National Park"}]}`)

		// When: the catalog is loaded
		repo, err := LoadCatalogRepository(prizesPath, phrasesPath, newRand())
		require.NoError(t, err)

		// Then: bonus prizes are parsed and phrases upper-cased
		prizes := repo.(*catalog).prizes
		require.Len(t, prizes, 4)
		assert.Equal(t, entity.WheelPrize{Type: entity.PrizeCash, Text: "$950", Value: 950, Prize: "A trip to Ann Arbor!"}, prizes[0])
		assert.False(t, prizes[1].HasBonus())
		assert.False(t, prizes[2].HasBonus())
		assert.False(t, prizes[3].HasBonus())

		phrase, err := repo.DrawCategoryAndPhrase()
		require.NoError(t, err)
		assert.Equal(t, entity.Phrase{Category: "Landmark", Phrase: "GLACIER NATIONAL PARK"}, phrase)
	})

	t.Run("YAML files", func(t *testing.T) {
		prizesPath := writeFile(t, "prizes.yaml", `
prizes:
  - type: cash
    text: "$700"
    value: 700
    prize: A brand new car!
  - type: bankrupt
    text: Bankrupt
    prize: false
`)
		phrasesPath := writeFile(t, "phrases.yml", `
phrases:
  - Category: Thing
    Phrase: Wheel of fortune
`)

		repo, err := LoadCatalogRepository(prizesPath, phrasesPath, newRand())
		require.NoError(t, err)

		prizes := repo.(*catalog).prizes
		require.Len(t, prizes, 2)
		assert.Equal(t, "A brand new car!", prizes[0].Prize)
		assert.Equal(t, 700, prizes[0].Value)
		assert.False(t, prizes[1].HasBonus())
		assert.Equal(t, "WHEEL OF FORTUNE", repo.(*catalog).phrases[0].Phrase)
	})

	t.Run("Empty prize table", func(t *testing.T) {
		prizesPath := writeFile(t, "prizes.json", `{"prizes": []}`)

		_, err := LoadCatalogRepository(prizesPath, "", newRand())

		assert.ErrorIs(t, err, apperror.ErrEmptyPrizeTable)
	})

	t.Run("Empty phrase table", func(t *testing.T) {
		phrasesPath := writeFile(t, "phrases.json", `{}`)

		_, err := LoadCatalogRepository("", phrasesPath, newRand())

		assert.ErrorIs(t, err, apperror.ErrEmptyPhraseTable)
	})

	t.Run("Unknown prize type", func(t *testing.T) {
		prizesPath := writeFile(t, "prizes.json", `{"prizes": [{"type": "jackpot", "text": "?"}]}`)

		_, err := LoadCatalogRepository(prizesPath, "", newRand())

		assert.ErrorIs(t, err, apperror.ErrMalformedPrize)
	})

	t.Run("Cash prize without a positive value", func(t *testing.T) {
		for _, entry := range []string{
			`{"type": "cash", "text": "$0", "value": 0}`,
			`{"type": "cash", "text": "$0"}`,
			`{"type": "cash", "text": "-$5", "value": -5}`,
		} {
			prizesPath := writeFile(t, "prizes.json", `{"prizes": [`+entry+`]}`)

			_, err := LoadCatalogRepository(prizesPath, "", newRand())

			assert.ErrorIs(t, err, apperror.ErrMalformedPrize, entry)
		}
	})

	t.Run("Bonus prize of the wrong kind", func(t *testing.T) {
		prizesPath := writeFile(t, "prizes.json", `{"prizes": [{"type": "cash", "value": 5, "prize": true}]}`)

		_, err := LoadCatalogRepository(prizesPath, "", newRand())

		assert.ErrorIs(t, err, apperror.ErrMalformedData)
	})

	t.Run("Phrase without letters", func(t *testing.T) {
		phrasesPath := writeFile(t, "phrases.json", `{"phrases": [{"Category": "Number", "Phrase": "1 2 3"}]}`)

		_, err := LoadCatalogRepository("", phrasesPath, newRand())

		assert.ErrorIs(t, err, apperror.ErrMalformedPhrase)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadCatalogRepository(filepath.Join(t.TempDir(), "nope.json"), "", newRand())

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		prizesPath := writeFile(t, "prizes.txt", `prizes`)

		_, err := LoadCatalogRepository(prizesPath, "", newRand())

		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestCatalog_Draw(t *testing.T) {
	t.Run("Every entry can be drawn", func(t *testing.T) {
		// Given: a catalog with three prizes
		prizes := []entity.WheelPrize{
			{Type: entity.PrizeCash, Text: "$100", Value: 100},
			{Type: entity.PrizeBankrupt, Text: "Bankrupt"},
			{Type: entity.PrizeLoseTurn, Text: "Loses a turn"},
		}
		repo, err := NewCatalogRepository(prizes, []entity.Phrase{{Category: "Animal", Phrase: "cat"}}, newRand())
		require.NoError(t, err)

		// When: the wheel is spun many times
		seen := make(map[string]int)
		for range 300 {
			prize, err := repo.DrawWheelPrize()
			require.NoError(t, err)
			seen[prize.Type]++
		}

		// Then: each prize came up
		assert.Len(t, seen, 3)
		for _, count := range seen {
			assert.Greater(t, count, 50)
		}
	})

	t.Run("Zero value catalog reports empty tables", func(t *testing.T) {
		repo := &catalog{rnd: newRand()}

		_, err := repo.DrawWheelPrize()
		require.ErrorIs(t, err, apperror.ErrEmptyPrizeTable)

		_, err = repo.DrawCategoryAndPhrase()
		require.ErrorIs(t, err, apperror.ErrEmptyPhraseTable)
	})
}
