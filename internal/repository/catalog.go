package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/wheel-of-fortune/data"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/apperror"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/entity"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported data file format")
	errBadBonus          = errors.New("prize must be a string or false")
)

type CatalogRepository interface {
	DrawWheelPrize() (entity.WheelPrize, error)
	DrawCategoryAndPhrase() (entity.Phrase, error)
}

// Examples:
//
//	{ "type": "loseturn", "text": "loses a turn", "prize": false }
//	{ "type": "cash", "text": "$950", "value": 950, "prize": "A trip to Ann Arbor!" }
type prizeFile struct {
	Prizes []prizeRecord `json:"prizes" yaml:"prizes"`
}

type prizeRecord struct {
	Type  string     `json:"type" yaml:"type"`
	Text  string     `json:"text" yaml:"text"`
	Value int        `json:"value" yaml:"value"`
	Prize bonusField `json:"prize" yaml:"prize"`
}

type phraseFile struct {
	Phrases []phraseRecord `json:"phrases" yaml:"phrases"`
}

type phraseRecord struct {
	Category string `json:"Category" yaml:"Category"`
	Phrase   string `json:"Phrase" yaml:"Phrase"`
}

// bonusField is a bonus prize description, empty when the source says false or null.
type bonusField string

func (that *bonusField) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)

	switch string(raw) {
	case "null", "false":
		*that = ""
		return nil
	case "true":
		return errBadBonus
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return errBadBonus
	}
	*that = bonusField(text)

	return nil
}

func (that *bonusField) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!null":
		*that = ""
		return nil
	case "!!bool":
		var flag bool
		if err := node.Decode(&flag); err != nil || flag {
			return errBadBonus
		}
		*that = ""
		return nil
	case "!!str":
		*that = bonusField(node.Value)
		return nil
	default:
		return errBadBonus
	}
}

type catalog struct {
	prizes  []entity.WheelPrize
	phrases []entity.Phrase
	rnd     *rand.Rand
}

// NewCatalogRepository validates both tables. Phrases are upper-cased.
func NewCatalogRepository(prizes []entity.WheelPrize, phrases []entity.Phrase, rnd *rand.Rand) (CatalogRepository, error) {
	if len(prizes) == 0 {
		return nil, apperror.ErrEmptyPrizeTable
	}

	if len(phrases) == 0 {
		return nil, apperror.ErrEmptyPhraseTable
	}

	for i, prize := range prizes {
		if err := validatePrize(prize); err != nil {
			return nil, fmt.Errorf("prize #%d: %w", i+1, err)
		}
	}

	normalized := make([]entity.Phrase, 0, len(phrases))
	for i, phrase := range phrases {
		phrase.Phrase = strings.ToUpper(phrase.Phrase)
		if err := validatePhrase(phrase); err != nil {
			return nil, fmt.Errorf("phrase #%d: %w", i+1, err)
		}
		normalized = append(normalized, phrase)
	}

	return &catalog{
		prizes:  prizes,
		phrases: normalized,
		rnd:     rnd,
	}, nil
}

// LoadCatalogRepository reads the prize and phrase tables from JSON or YAML
// files. An empty path falls back to the built-in data set.
func LoadCatalogRepository(prizesPath, phrasesPath string, rnd *rand.Rand) (CatalogRepository, error) {
	var prizesSrc prizeFile
	if err := decodeSource(prizesPath, data.PrizesFile, data.Prizes, &prizesSrc); err != nil {
		return nil, fmt.Errorf("could not load prizes: %w", err)
	}

	var phrasesSrc phraseFile
	if err := decodeSource(phrasesPath, data.PhrasesFile, data.Phrases, &phrasesSrc); err != nil {
		return nil, fmt.Errorf("could not load phrases: %w", err)
	}

	prizes := make([]entity.WheelPrize, 0, len(prizesSrc.Prizes))
	for _, record := range prizesSrc.Prizes {
		prizes = append(prizes, entity.WheelPrize{
			Type:  record.Type,
			Text:  record.Text,
			Value: record.Value,
			Prize: string(record.Prize),
		})
	}

	phrases := make([]entity.Phrase, 0, len(phrasesSrc.Phrases))
	for _, record := range phrasesSrc.Phrases {
		phrases = append(phrases, entity.Phrase{
			Category: record.Category,
			Phrase:   record.Phrase,
		})
	}

	return NewCatalogRepository(prizes, phrases, rnd)
}

func (that *catalog) DrawWheelPrize() (entity.WheelPrize, error) {
	if len(that.prizes) == 0 {
		return entity.WheelPrize{}, apperror.ErrEmptyPrizeTable
	}

	return that.prizes[that.rnd.Intn(len(that.prizes))], nil
}

func (that *catalog) DrawCategoryAndPhrase() (entity.Phrase, error) {
	if len(that.phrases) == 0 {
		return entity.Phrase{}, apperror.ErrEmptyPhraseTable
	}

	return that.phrases[that.rnd.Intn(len(that.phrases))], nil
}

func validatePrize(prize entity.WheelPrize) error {
	if !entity.IsKnownPrizeType(prize.Type) {
		return fmt.Errorf("%w: unknown type %q", apperror.ErrMalformedPrize, prize.Type)
	}

	if prize.IsCash() && prize.Value <= 0 {
		return fmt.Errorf("%w: cash prize needs a positive value, got %d", apperror.ErrMalformedPrize, prize.Value)
	}

	return nil
}

func validatePhrase(phrase entity.Phrase) error {
	for _, r := range phrase.Phrase {
		if entity.IsLetter(r) {
			return nil
		}
	}

	return fmt.Errorf("%w: phrase %q has no letters", apperror.ErrMalformedPhrase, phrase.Phrase)
}

func decodeSource(path, fallbackName string, fallback []byte, out any) error {
	name, raw := fallbackName, fallback
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("can't read %s: %w", path, err)
		}
		name, raw = path, content
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %s: %w", apperror.ErrMalformedData, name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %s: %w", apperror.ErrMalformedData, name, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	return nil
}
