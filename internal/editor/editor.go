package editor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"awards-cms-go/pkg/model"
)

// Default values applied by add operations
const (
	DefaultWeight          = 50
	PlaceholderIndustry    = "New Industry"
	PlaceholderRecognition = "New Recognition"
)

var (
	// ErrDuplicateName is returned when adding a name that already exists
	ErrDuplicateName = errors.New("name already exists")
	// ErrUnknownName is returned for operations on names not in the
	// top-level list
	ErrUnknownName = errors.New("unknown name")
	// ErrAlreadyAssigned is returned when adding a name an award already
	// carries a weight for
	ErrAlreadyAssigned = errors.New("name already assigned to award")
	// ErrSaveInFlight is returned when a save is requested while one is
	// still running
	ErrSaveInFlight = errors.New("save already in flight")
)

// Saver persists the editor's working copy; satisfied by *client.Client
type Saver interface {
	UpdateRegion(ctx context.Context, region string, content model.RegionContent) (*model.RegionDocument, error)
}

// Editor holds an in-memory working copy of one region's document. All
// edits are local until Save sends a full-replace update to the API.
// A failed save leaves the working copy untouched, diverged from the
// store until retried.
type Editor struct {
	region  string
	content model.RegionContent
	saver   Saver

	mu     sync.Mutex
	saving bool
}

// New creates an editor over a fetched document
func New(region string, content model.RegionContent, saver Saver) *Editor {
	working := content.Clone()
	return &Editor{
		region:  region,
		content: working,
		saver:   saver,
	}
}

// Region returns the region this editor is bound to
func (e *Editor) Region() string {
	return e.region
}

// Content returns a deep copy of the current working state
func (e *Editor) Content() model.RegionContent {
	return e.content.Clone()
}

func indexOf(list []string, name string) int {
	for i, v := range list {
		if v == name {
			return i
		}
	}
	return -1
}

// addName appends a top-level name, rejecting duplicates. An empty name
// gets the placeholder.
func addName(list *[]string, name, placeholder string) error {
	if name == "" {
		name = placeholder
	}
	if indexOf(*list, name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	*list = append(*list, name)
	return nil
}

// renameName renames a top-level entry in place and moves the weight
// under the old key to the new key in every award's map. A collision
// with an existing key in an award is last-write-wins, no merge.
func (e *Editor) renameName(list []string, oldName, newName string, weights func(*model.Award) map[string]int) error {
	i := indexOf(list, oldName)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownName, oldName)
	}
	list[i] = newName

	for a := range e.content.Awards {
		m := weights(&e.content.Awards[a])
		if value, ok := m[oldName]; ok {
			delete(m, oldName)
			m[newName] = value
		}
	}
	return nil
}

// deleteName removes a top-level entry and drops its key from every
// award's map, including weight-0 entries
func (e *Editor) deleteName(list *[]string, name string, weights func(*model.Award) map[string]int) error {
	i := indexOf(*list, name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	*list = append((*list)[:i], (*list)[i+1:]...)

	for a := range e.content.Awards {
		delete(weights(&e.content.Awards[a]), name)
	}
	return nil
}

// addToAward assigns a top-level name to one award at the default weight
func (e *Editor) addToAward(list []string, awardIndex int, name string, weights func(*model.Award) map[string]int) error {
	if awardIndex < 0 || awardIndex >= len(e.content.Awards) {
		return fmt.Errorf("award index %d out of range", awardIndex)
	}
	if indexOf(list, name) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	m := weights(&e.content.Awards[awardIndex])
	if _, ok := m[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyAssigned, name)
	}
	m[name] = DefaultWeight
	return nil
}

// setWeight updates an existing key's weight, clamped to the valid range
func (e *Editor) setWeight(awardIndex int, name string, value int, weights func(*model.Award) map[string]int) error {
	if awardIndex < 0 || awardIndex >= len(e.content.Awards) {
		return fmt.Errorf("award index %d out of range", awardIndex)
	}
	m := weights(&e.content.Awards[awardIndex])
	if _, ok := m[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	if value < model.MinWeight {
		value = model.MinWeight
	}
	if value > model.MaxWeight {
		value = model.MaxWeight
	}
	m[name] = value
	return nil
}

// available returns the top-level names an award does not carry yet
func (e *Editor) available(list []string, awardIndex int, weights func(*model.Award) map[string]int) []string {
	if awardIndex < 0 || awardIndex >= len(e.content.Awards) {
		return nil
	}
	m := weights(&e.content.Awards[awardIndex])
	out := []string{}
	for _, name := range list {
		if _, ok := m[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// active returns the award's names carrying a weight above zero, sorted
// for stable display
func (e *Editor) active(awardIndex int, weights func(*model.Award) map[string]int) []string {
	if awardIndex < 0 || awardIndex >= len(e.content.Awards) {
		return nil
	}
	out := []string{}
	for name, value := range weights(&e.content.Awards[awardIndex]) {
		if value > 0 {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func industryWeights(a *model.Award) map[string]int {
	return a.Industries
}

func recognitionWeights(a *model.Award) map[string]int {
	return a.Recognitions
}

// ---------- Industries ----------

// AddIndustry appends a top-level industry name
func (e *Editor) AddIndustry(name string) error {
	return addName(&e.content.Industries, name, PlaceholderIndustry)
}

// RenameIndustry renames a top-level industry, cascading into every award
func (e *Editor) RenameIndustry(oldName, newName string) error {
	return e.renameName(e.content.Industries, oldName, newName, industryWeights)
}

// DeleteIndustry removes a top-level industry, cascading into every award
func (e *Editor) DeleteIndustry(name string) error {
	return e.deleteName(&e.content.Industries, name, industryWeights)
}

// AddIndustryToAward assigns an industry to one award at the default weight
func (e *Editor) AddIndustryToAward(awardIndex int, name string) error {
	return e.addToAward(e.content.Industries, awardIndex, name, industryWeights)
}

// SetIndustryWeight sets one award's weight for an assigned industry
func (e *Editor) SetIndustryWeight(awardIndex int, name string, value int) error {
	return e.setWeight(awardIndex, name, value, industryWeights)
}

// AvailableIndustries returns the industries not yet assigned to an award
func (e *Editor) AvailableIndustries(awardIndex int) []string {
	return e.available(e.content.Industries, awardIndex, industryWeights)
}

// ActiveIndustries returns an award's industries with weight above zero
func (e *Editor) ActiveIndustries(awardIndex int) []string {
	return e.active(awardIndex, industryWeights)
}

// ---------- Recognitions ----------

// AddRecognition appends a top-level recognition name
func (e *Editor) AddRecognition(name string) error {
	return addName(&e.content.Recognitions, name, PlaceholderRecognition)
}

// RenameRecognition renames a top-level recognition, cascading into every award
func (e *Editor) RenameRecognition(oldName, newName string) error {
	return e.renameName(e.content.Recognitions, oldName, newName, recognitionWeights)
}

// DeleteRecognition removes a top-level recognition, cascading into every award
func (e *Editor) DeleteRecognition(name string) error {
	return e.deleteName(&e.content.Recognitions, name, recognitionWeights)
}

// AddRecognitionToAward assigns a recognition to one award at the default weight
func (e *Editor) AddRecognitionToAward(awardIndex int, name string) error {
	return e.addToAward(e.content.Recognitions, awardIndex, name, recognitionWeights)
}

// SetRecognitionWeight sets one award's weight for an assigned recognition
func (e *Editor) SetRecognitionWeight(awardIndex int, name string, value int) error {
	return e.setWeight(awardIndex, name, value, recognitionWeights)
}

// AvailableRecognitions returns the recognitions not yet assigned to an award
func (e *Editor) AvailableRecognitions(awardIndex int) []string {
	return e.available(e.content.Recognitions, awardIndex, recognitionWeights)
}

// ActiveRecognitions returns an award's recognitions with weight above zero
func (e *Editor) ActiveRecognitions(awardIndex int) []string {
	return e.active(awardIndex, recognitionWeights)
}

// ---------- Awards ----------

// AddAward appends a fresh award with placeholder fields
func (e *Editor) AddAward() {
	e.content.Awards = append(e.content.Awards, model.Award{
		Name:         "New Award",
		Description:  "Description here...",
		Icon:         "✨",
		URL:          "https://www.awards.info/",
		Industries:   map[string]int{},
		Recognitions: map[string]int{},
	})
}

// DeleteAward removes the award at the given index
func (e *Editor) DeleteAward(awardIndex int) error {
	if awardIndex < 0 || awardIndex >= len(e.content.Awards) {
		return fmt.Errorf("award index %d out of range", awardIndex)
	}
	e.content.Awards = append(e.content.Awards[:awardIndex], e.content.Awards[awardIndex+1:]...)
	return nil
}

// SetAwardFields updates an award's free-text fields
func (e *Editor) SetAwardFields(awardIndex int, name, description, icon, url string) error {
	if awardIndex < 0 || awardIndex >= len(e.content.Awards) {
		return fmt.Errorf("award index %d out of range", awardIndex)
	}
	a := &e.content.Awards[awardIndex]
	a.Name = name
	a.Description = description
	a.Icon = icon
	a.URL = url
	return nil
}

// ---------- Synonyms ----------

// AddSynonymGroup creates an empty synonym group for a keyword
func (e *Editor) AddSynonymGroup(keyword string) error {
	if _, ok := e.content.Synonyms[keyword]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, keyword)
	}
	e.content.Synonyms[keyword] = []string{}
	return nil
}

// DeleteSynonymGroup removes a whole synonym group
func (e *Editor) DeleteSynonymGroup(keyword string) error {
	if _, ok := e.content.Synonyms[keyword]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, keyword)
	}
	delete(e.content.Synonyms, keyword)
	return nil
}

// AppendSynonym appends an empty synonym to a group for in-place editing
func (e *Editor) AppendSynonym(keyword string) error {
	group, ok := e.content.Synonyms[keyword]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, keyword)
	}
	e.content.Synonyms[keyword] = append(group, "")
	return nil
}

// SetSynonym updates one synonym string in a group
func (e *Editor) SetSynonym(keyword string, index int, value string) error {
	group, ok := e.content.Synonyms[keyword]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, keyword)
	}
	if index < 0 || index >= len(group) {
		return fmt.Errorf("synonym index %d out of range for %q", index, keyword)
	}
	group[index] = value
	return nil
}

// RemoveSynonym removes one synonym string from a group
func (e *Editor) RemoveSynonym(keyword string, index int) error {
	group, ok := e.content.Synonyms[keyword]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, keyword)
	}
	if index < 0 || index >= len(group) {
		return fmt.Errorf("synonym index %d out of range for %q", index, keyword)
	}
	e.content.Synonyms[keyword] = append(group[:index], group[index+1:]...)
	return nil
}

// ---------- Save ----------

// Save sends the full working copy as a replace update. On failure the
// working copy is left as-is so the user can retry.
func (e *Editor) Save(ctx context.Context) (*model.RegionDocument, error) {
	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return nil, ErrSaveInFlight
	}
	e.saving = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.saving = false
		e.mu.Unlock()
	}()

	return e.saver.UpdateRegion(ctx, e.region, e.Content())
}
