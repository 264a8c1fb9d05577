package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/emicon/internal/application/usecase"
	"github.com/bnema/emicon/internal/domain/entity"
)

func TestEmojiSessionUseCase_StartsWithDefaultSelection(t *testing.T) {
	uc := usecase.NewEmojiSessionUseCase()

	state := uc.State()
	assert.Equal(t, entity.DefaultSelection(), state.Selection)
	assert.False(t, state.Loaded)
	require.Len(t, state.Candidates, 1)
	assert.True(t, state.Candidates[0].IsSynthetic())
}

func TestEmojiSessionUseCase_SearchAdoptsTopCandidate(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewEmojiSessionUseCase()
	require.NoError(t, uc.ProvideDataset(ctx, sampleEmojis()))

	state := uc.Search(ctx, "face")

	assert.Equal(t, "face", state.Query)
	assert.Equal(t, entity.Selection{Glyph: "🫠", Label: "melting face"}, state.Selection)
	// Two real matches plus the previous selection kept as the synthetic tail.
	require.Len(t, state.Candidates, 3)
	assert.True(t, state.Candidates[2].IsSynthetic())
	assert.Equal(t, "🥑", state.Candidates[2].Glyph)
}

func TestEmojiSessionUseCase_AvocadoScenario(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewEmojiSessionUseCase()
	require.NoError(t, uc.ProvideDataset(ctx, sampleEmojis()))

	state := uc.Search(ctx, "avo")

	require.NotEmpty(t, state.Candidates)
	assert.Equal(t, entity.Candidate{Rank: 0, Glyph: "🥑", Label: "avocado"}, state.Candidates[0])
	assert.Equal(t, entity.DefaultSelection(), state.Selection)
}

func TestEmojiSessionUseCase_NoDatasetKeepsSelection(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewEmojiSessionUseCase()

	state := uc.Search(ctx, "anything")

	require.Len(t, state.Candidates, 1)
	assert.Equal(t, entity.DefaultSelection(), state.Selection)
}

func TestEmojiSessionUseCase_SelectOverridesRanking(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewEmojiSessionUseCase()
	require.NoError(t, uc.ProvideDataset(ctx, sampleEmojis()))
	uc.Search(ctx, "face")

	pick := entity.Selection{Glyph: "😀", Label: "grinning face"}
	state := uc.Select(ctx, pick)

	assert.Equal(t, pick, state.Selection)
	assert.Equal(t, pick, uc.Selection())
	assert.Len(t, state.Candidates, 3)
}

func TestEmojiSessionUseCase_ProvideDatasetWaitsForSearch(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewEmojiSessionUseCase()

	require.NoError(t, uc.ProvideDataset(ctx, sampleEmojis()))

	state := uc.State()
	assert.True(t, state.Loaded)
	assert.Equal(t, entity.DefaultSelection(), state.Selection)
	require.Len(t, state.Candidates, 1)
	assert.True(t, state.Candidates[0].IsSynthetic())
}

func TestEmojiSessionUseCase_DatasetProvidedOnce(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewEmojiSessionUseCase()

	require.NoError(t, uc.ProvideDataset(ctx, sampleEmojis()))
	err := uc.ProvideDataset(ctx, nil)

	assert.ErrorIs(t, err, usecase.ErrDatasetAlreadyProvided)
	assert.True(t, uc.State().Loaded)
}

func TestEmojiSessionUseCase_NotifiesObservers(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewEmojiSessionUseCase()

	var got []usecase.SessionState
	unsubscribe := uc.Subscribe(func(s usecase.SessionState) {
		got = append(got, s)
	})

	require.NoError(t, uc.ProvideDataset(ctx, sampleEmojis()))
	uc.Search(ctx, "olive")
	unsubscribe()
	uc.Search(ctx, "avocado")

	require.Len(t, got, 2)
	assert.True(t, got[0].Loaded)
	assert.Equal(t, "🫒", got[1].Selection.Glyph)
}

func TestEmojiSessionUseCase_SnapshotIsCopied(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewEmojiSessionUseCase()
	require.NoError(t, uc.ProvideDataset(ctx, sampleEmojis()))

	state := uc.Search(ctx, "")
	state.Candidates[0].Glyph = "x"

	assert.NotEqual(t, "x", uc.State().Candidates[0].Glyph)
}
