package model

import (
	"fmt"
	"time"
)

// Award represents a single award entry within a region document
type Award struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Icon         string         `json:"icon"` // emoji glyph or image URL
	URL          string         `json:"url"`
	Industries   map[string]int `json:"industries"`   // { "Banking": 100 }
	Recognitions map[string]int `json:"recognitions"` // { "Banking": 80 }
}

// Synonyms maps a keyword to its alternate terms
type Synonyms map[string][]string

// RegionContent holds the mutable payload of a region document
type RegionContent struct {
	Awards       []Award  `json:"awards"`
	Industries   []string `json:"industries"`
	Recognitions []string `json:"recognitions"`
	Synonyms     Synonyms `json:"synonyms"`
}

// RegionDocument is one region's full stored document
type RegionDocument struct {
	Region string `json:"region"`
	RegionContent
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegionCreateRequest represents the request to create a new region
type RegionCreateRequest struct {
	Region string `json:"region" binding:"required"`
}

// RegionListResponse represents the response for region listing
type RegionListResponse struct {
	Regions []string `json:"regions"`
}

// MinWeight and MaxWeight bound award weight values
const (
	MinWeight = 0
	MaxWeight = 100
)

// Normalize replaces nil collections with empty ones so documents
// serialize as [] / {} rather than null
func (c *RegionContent) Normalize() {
	if c.Awards == nil {
		c.Awards = []Award{}
	}
	if c.Industries == nil {
		c.Industries = []string{}
	}
	if c.Recognitions == nil {
		c.Recognitions = []string{}
	}
	if c.Synonyms == nil {
		c.Synonyms = Synonyms{}
	}
	for i := range c.Awards {
		if c.Awards[i].Industries == nil {
			c.Awards[i].Industries = map[string]int{}
		}
		if c.Awards[i].Recognitions == nil {
			c.Awards[i].Recognitions = map[string]int{}
		}
	}
	for k, v := range c.Synonyms {
		if v == nil {
			c.Synonyms[k] = []string{}
		}
	}
}

// WeightRangeError reports an award weight outside [MinWeight, MaxWeight]
type WeightRangeError struct {
	Field string
	Name  string
	Value int
}

func (e *WeightRangeError) Error() string {
	return fmt.Sprintf("%s[%q]: weight %d out of range [%d, %d]", e.Field, e.Name, e.Value, MinWeight, MaxWeight)
}

// Validate checks that every award weight is within [MinWeight, MaxWeight]
func (c *RegionContent) Validate() error {
	for i, award := range c.Awards {
		if err := validateWeights(award.Industries, fmt.Sprintf("awards[%d].industries", i)); err != nil {
			return err
		}
		if err := validateWeights(award.Recognitions, fmt.Sprintf("awards[%d].recognitions", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateWeights(weights map[string]int, field string) error {
	for name, value := range weights {
		if value < MinWeight || value > MaxWeight {
			return &WeightRangeError{Field: field, Name: name, Value: value}
		}
	}
	return nil
}

// Clone returns a deep copy of the content
func (c RegionContent) Clone() RegionContent {
	out := RegionContent{
		Awards:       make([]Award, len(c.Awards)),
		Industries:   append([]string(nil), c.Industries...),
		Recognitions: append([]string(nil), c.Recognitions...),
		Synonyms:     Synonyms{},
	}
	for i, award := range c.Awards {
		out.Awards[i] = award.Clone()
	}
	for k, v := range c.Synonyms {
		out.Synonyms[k] = append([]string(nil), v...)
	}
	out.Normalize()
	return out
}

// Clone returns a deep copy of the award
func (a Award) Clone() Award {
	out := a
	out.Industries = make(map[string]int, len(a.Industries))
	for k, v := range a.Industries {
		out.Industries[k] = v
	}
	out.Recognitions = make(map[string]int, len(a.Recognitions))
	for k, v := range a.Recognitions {
		out.Recognitions[k] = v
	}
	return out
}

// EmptyContent returns the fallback template used when no default
// region template is configured
func EmptyContent() RegionContent {
	return RegionContent{
		Awards:       []Award{},
		Industries:   []string{},
		Recognitions: []string{},
		Synonyms:     Synonyms{},
	}
}
