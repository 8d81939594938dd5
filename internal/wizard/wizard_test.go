package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRB-RoomBookingService/internal/wizard"
)

func TestWizard_HappyPathThroughSuggestions(t *testing.T) {
	w := wizard.New()
	assert.Equal(t, wizard.StepDetails, w.Step())
	assert.False(t, w.RoomPreChosen())

	require.NoError(t, w.Apply(wizard.EventDetailsSubmitted, 0))
	assert.Equal(t, wizard.StepSuggestions, w.Step())

	require.NoError(t, w.Apply(wizard.EventSuggestionPicked, 7))
	assert.Equal(t, wizard.StepConfirm, w.Step())
	assert.Equal(t, int64(7), w.RoomID())

	require.NoError(t, w.Apply(wizard.EventConfirmed, 0))
	assert.Equal(t, wizard.StepDone, w.Step())
}

func TestWizard_ManualSelectionPath(t *testing.T) {
	w := wizard.New()

	require.NoError(t, w.Apply(wizard.EventDetailsSubmitted, 0))
	require.NoError(t, w.Apply(wizard.EventBrowseAll, 0))
	assert.Equal(t, wizard.StepManualSelect, w.Step())

	require.NoError(t, w.Apply(wizard.EventRoomPicked, 12))
	assert.Equal(t, wizard.StepConfirm, w.Step())
	assert.Equal(t, int64(12), w.RoomID())
}

// Guard пропуска: заранее выбранная комната (deep link) ведет мастер
// с ввода параметров сразу на подтверждение, минуя подбор.
func TestWizard_PreChosenRoomSkipsSelection(t *testing.T) {
	w := wizard.NewWithRoom(5)
	assert.True(t, w.RoomPreChosen())

	require.NoError(t, w.Apply(wizard.EventDetailsSubmitted, 0))
	assert.Equal(t, wizard.StepConfirm, w.Step())
	assert.Equal(t, int64(5), w.RoomID())

	require.NoError(t, w.Apply(wizard.EventConfirmed, 0))
	assert.Equal(t, wizard.StepDone, w.Step())
}

// Отказ коммита сбрасывает и выбранную комнату, и флаг deep link:
// устаревшая ссылка не должна зацикливать мастер на занятой комнате.
func TestWizard_ConflictRestartsSelection(t *testing.T) {
	w := wizard.NewWithRoom(5)

	require.NoError(t, w.Apply(wizard.EventDetailsSubmitted, 0))
	require.NoError(t, w.Apply(wizard.EventConflict, 0))

	assert.Equal(t, wizard.StepSuggestions, w.Step())
	assert.Zero(t, w.RoomID())
	assert.False(t, w.RoomPreChosen())

	// Дальше мастер идет обычным путем подбора
	require.NoError(t, w.Apply(wizard.EventSuggestionPicked, 9))
	require.NoError(t, w.Apply(wizard.EventConfirmed, 0))
	assert.Equal(t, wizard.StepDone, w.Step())
}

func TestWizard_BackTransitions(t *testing.T) {
	w := wizard.New()

	require.NoError(t, w.Apply(wizard.EventDetailsSubmitted, 0))
	require.NoError(t, w.Apply(wizard.EventBrowseAll, 0))

	require.NoError(t, w.Apply(wizard.EventBack, 0))
	assert.Equal(t, wizard.StepSuggestions, w.Step())

	require.NoError(t, w.Apply(wizard.EventBack, 0))
	assert.Equal(t, wizard.StepDetails, w.Step())
}

func TestWizard_BackFromConfirmWithPreChosenRoom(t *testing.T) {
	w := wizard.NewWithRoom(5)

	require.NoError(t, w.Apply(wizard.EventDetailsSubmitted, 0))
	require.NoError(t, w.Apply(wizard.EventBack, 0))

	// Подбора в этом сценарии не было, возврат ведет на ввод параметров
	assert.Equal(t, wizard.StepDetails, w.Step())
}

func TestWizard_InvalidTransitions(t *testing.T) {
	t.Run("confirm before details", func(t *testing.T) {
		w := wizard.New()
		assert.ErrorIs(t, w.Apply(wizard.EventConfirmed, 0), wizard.ErrInvalidTransition)
	})

	t.Run("pick without room id", func(t *testing.T) {
		w := wizard.New()
		require.NoError(t, w.Apply(wizard.EventDetailsSubmitted, 0))
		assert.ErrorIs(t, w.Apply(wizard.EventSuggestionPicked, 0), wizard.ErrNoRoomSelected)
	})

	t.Run("events after done", func(t *testing.T) {
		w := wizard.NewWithRoom(5)
		require.NoError(t, w.Apply(wizard.EventDetailsSubmitted, 0))
		require.NoError(t, w.Apply(wizard.EventConfirmed, 0))

		assert.ErrorIs(t, w.Apply(wizard.EventBack, 0), wizard.ErrFinished)
	})
}
