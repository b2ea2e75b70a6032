// Package catalog defines the game record shape served by the catalog feed
// and the sources that retrieve it.
package catalog

import (
	"encoding/json"
	"fmt"
)

// Field names a GameRecord attribute. Values match the feed's JSON keys.
type Field string

const (
	FieldName        Field = "game_name"
	FieldURL         Field = "game_url"
	FieldPrice       Field = "game_price"
	FieldGenre       Field = "genre"
	FieldReleaseDate Field = "release_date"
	FieldDescription Field = "description"
	FieldTags        Field = "tags"
	FieldReviewScore Field = "review_score"
	FieldAvailable   Field = "available"
)

// GameRecord is one catalog entry. The core treats it as read-only.
type GameRecord struct {
	GameName    string   `json:"game_name" yaml:"game_name"`
	GameURL     string   `json:"game_url" yaml:"game_url"`
	GamePrice   string   `json:"game_price" yaml:"game_price"`
	Genre       string   `json:"genre" yaml:"genre"`
	ReleaseDate string   `json:"release_date" yaml:"release_date"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	ReviewScore string   `json:"review_score" yaml:"review_score"`
	Available   string   `json:"available" yaml:"available"`
}

// Unavailable reports whether the feed marked the game as no longer offered.
// Only the literal "false" counts; anything else is treated as available.
func (r GameRecord) Unavailable() bool {
	return r.Available == "false"
}

// Value returns the attribute named by f: a string for scalar fields or a
// []string for tags. Unknown fields return nil.
func (r GameRecord) Value(f Field) any {
	switch f {
	case FieldName:
		return r.GameName
	case FieldURL:
		return r.GameURL
	case FieldPrice:
		return r.GamePrice
	case FieldGenre:
		return r.Genre
	case FieldReleaseDate:
		return r.ReleaseDate
	case FieldDescription:
		return r.Description
	case FieldTags:
		return r.Tags
	case FieldReviewScore:
		return r.ReviewScore
	case FieldAvailable:
		return r.Available
	default:
		return nil
	}
}

// Decode validates and parses a JSON array of records. A null tags value
// decodes as an empty list so renderers never see nil.
func Decode(data []byte) ([]GameRecord, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var records []GameRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range records {
		if records[i].Tags == nil {
			records[i].Tags = []string{}
		}
	}
	return records, nil
}
