package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"awards-cms-go/pkg/model"
)

func testContent() model.RegionContent {
	return model.RegionContent{
		Awards: []model.Award{
			{
				Name:         "Best Bank",
				Industries:   map[string]int{"Banking": 70},
				Recognitions: map[string]int{"Excellence": 0},
			},
			{
				Name:         "Rising Star",
				Industries:   map[string]int{"Banking": 30, "Insurance": 55},
				Recognitions: map[string]int{},
			},
		},
		Industries:   []string{"Banking", "Insurance"},
		Recognitions: []string{"Excellence"},
		Synonyms:     model.Synonyms{"Excellence": {"Excellent"}},
	}
}

type fakeSaver struct {
	region  string
	content model.RegionContent
	calls   int
	err     error
}

func (f *fakeSaver) UpdateRegion(_ context.Context, region string, content model.RegionContent) (*model.RegionDocument, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.region = region
	f.content = content
	return &model.RegionDocument{Region: region, RegionContent: content}, nil
}

func TestRenameIndustryCascadesIntoEveryAward(t *testing.T) {
	ed := New("emea", testContent(), nil)

	require.NoError(t, ed.RenameIndustry("Banking", "Finance"))

	content := ed.Content()
	require.Equal(t, []string{"Finance", "Insurance"}, content.Industries)

	first := content.Awards[0].Industries
	require.Equal(t, 70, first["Finance"])
	require.NotContains(t, first, "Banking")

	second := content.Awards[1].Industries
	require.Equal(t, 30, second["Finance"])
	require.Equal(t, 55, second["Insurance"])
	require.NotContains(t, second, "Banking")
}

func TestRenameCollisionIsLastWriteWins(t *testing.T) {
	ed := New("emea", testContent(), nil)

	// Second award holds Banking:30 and Insurance:55; renaming Banking
	// onto Insurance keeps the moved value, no merge.
	require.NoError(t, ed.RenameIndustry("Banking", "Insurance"))

	second := ed.Content().Awards[1].Industries
	require.Equal(t, map[string]int{"Insurance": 30}, second)
}

func TestRenameUnknownIndustryFails(t *testing.T) {
	ed := New("emea", testContent(), nil)
	require.ErrorIs(t, ed.RenameIndustry("Retail", "Shops"), ErrUnknownName)
}

func TestDeleteRecognitionRemovesZeroWeightEntries(t *testing.T) {
	ed := New("emea", testContent(), nil)

	require.NoError(t, ed.DeleteRecognition("Excellence"))

	content := ed.Content()
	require.Empty(t, content.Recognitions)
	for _, award := range content.Awards {
		require.NotContains(t, award.Recognitions, "Excellence")
	}
}

func TestAddNameRejectsDuplicates(t *testing.T) {
	ed := New("emea", testContent(), nil)

	require.ErrorIs(t, ed.AddIndustry("Banking"), ErrDuplicateName)
	require.NoError(t, ed.AddIndustry("Retail"))
	require.Equal(t, []string{"Banking", "Insurance", "Retail"}, ed.Content().Industries)
}

func TestAddNameUsesPlaceholderForEmpty(t *testing.T) {
	ed := New("emea", testContent(), nil)

	require.NoError(t, ed.AddIndustry(""))
	require.Contains(t, ed.Content().Industries, PlaceholderIndustry)

	// A second placeholder add is a duplicate.
	require.ErrorIs(t, ed.AddIndustry(""), ErrDuplicateName)
}

func TestAddIndustryToAwardDefaultsToFifty(t *testing.T) {
	ed := New("emea", testContent(), nil)

	require.NoError(t, ed.AddIndustryToAward(0, "Insurance"))
	require.Equal(t, DefaultWeight, ed.Content().Awards[0].Industries["Insurance"])

	require.ErrorIs(t, ed.AddIndustryToAward(0, "Insurance"), ErrAlreadyAssigned)
	require.ErrorIs(t, ed.AddIndustryToAward(0, "Retail"), ErrUnknownName)
}

func TestSetWeightClampsToRange(t *testing.T) {
	ed := New("emea", testContent(), nil)

	require.NoError(t, ed.SetIndustryWeight(0, "Banking", 150))
	require.Equal(t, model.MaxWeight, ed.Content().Awards[0].Industries["Banking"])

	require.NoError(t, ed.SetIndustryWeight(0, "Banking", -10))
	require.Equal(t, model.MinWeight, ed.Content().Awards[0].Industries["Banking"])

	require.ErrorIs(t, ed.SetIndustryWeight(0, "Insurance", 40), ErrUnknownName)
}

func TestAvailableAndActiveIndustries(t *testing.T) {
	ed := New("emea", testContent(), nil)

	require.Equal(t, []string{"Insurance"}, ed.AvailableIndustries(0))
	require.Empty(t, ed.AvailableIndustries(1))

	// Zero weights stay stored but are not active.
	require.Equal(t, []string{"Banking"}, ed.ActiveIndustries(0))
	require.Empty(t, ed.ActiveRecognitions(0))
}

func TestAwardLifecycle(t *testing.T) {
	ed := New("emea", testContent(), nil)

	ed.AddAward()
	content := ed.Content()
	require.Len(t, content.Awards, 3)
	require.Equal(t, "New Award", content.Awards[2].Name)
	require.Empty(t, content.Awards[2].Industries)

	require.NoError(t, ed.SetAwardFields(2, "Gold Star", "Annual gold star", "⭐", "https://example.com"))
	require.Equal(t, "Gold Star", ed.Content().Awards[2].Name)

	require.NoError(t, ed.DeleteAward(2))
	require.Len(t, ed.Content().Awards, 2)
	require.Error(t, ed.DeleteAward(5))
}

func TestSynonymGroupOperations(t *testing.T) {
	ed := New("emea", testContent(), nil)

	require.ErrorIs(t, ed.AddSynonymGroup("Excellence"), ErrDuplicateName)
	require.NoError(t, ed.AddSynonymGroup("Banking"))
	require.Equal(t, []string{}, ed.Content().Synonyms["Banking"])

	require.NoError(t, ed.AppendSynonym("Banking"))
	require.NoError(t, ed.SetSynonym("Banking", 0, "Bank"))
	require.Equal(t, []string{"Bank"}, ed.Content().Synonyms["Banking"])

	require.NoError(t, ed.RemoveSynonym("Banking", 0))
	require.Empty(t, ed.Content().Synonyms["Banking"])

	require.NoError(t, ed.DeleteSynonymGroup("Banking"))
	require.NotContains(t, ed.Content().Synonyms, "Banking")

	require.ErrorIs(t, ed.AppendSynonym("Unknown"), ErrUnknownName)
	require.Error(t, ed.SetSynonym("Excellence", 4, "x"))
}

func TestSaveSendsFullWorkingCopy(t *testing.T) {
	saver := &fakeSaver{}
	ed := New("emea", testContent(), saver)

	require.NoError(t, ed.RenameIndustry("Banking", "Finance"))

	doc, err := ed.Save(context.Background())
	require.NoError(t, err)
	require.Equal(t, "emea", doc.Region)
	require.Equal(t, 1, saver.calls)
	require.Equal(t, ed.Content(), saver.content)
}

func TestFailedSaveKeepsWorkingCopy(t *testing.T) {
	saver := &fakeSaver{err: errors.New("boom")}
	ed := New("emea", testContent(), saver)

	require.NoError(t, ed.DeleteIndustry("Banking"))
	before := ed.Content()

	_, err := ed.Save(context.Background())
	require.Error(t, err)
	require.Equal(t, before, ed.Content(), "failed save must not roll back local edits")
}

func TestEditorDoesNotAliasInitialContent(t *testing.T) {
	initial := testContent()
	ed := New("emea", initial, nil)

	require.NoError(t, ed.RenameIndustry("Banking", "Finance"))

	require.Equal(t, []string{"Banking", "Insurance"}, initial.Industries)
	require.Contains(t, initial.Awards[0].Industries, "Banking")
}
