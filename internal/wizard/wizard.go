// Package wizard конечный автомат шагов мастера бронирования.
//
// Мастер потребляет движок подбора, но не является его частью: здесь
// только порядок шагов и guard'ы переходов. Ключевое правило - если
// комната уже выбрана (deep link на конкретную комнату), шаги подбора
// и ручного выбора пропускаются, остается только подтверждение
// доступности.
package wizard

import "errors"

// Step шаг мастера бронирования
type Step string

const (
	// StepDetails ввод параметров встречи: участники, окно, оборудование
	StepDetails Step = "details"
	// StepSuggestions просмотр быстрой выдачи подбора
	StepSuggestions Step = "suggestions"
	// StepManualSelect ручной выбор из полного списка комнат
	StepManualSelect Step = "manual_select"
	// StepConfirm подтверждение выбранной комнаты перед коммитом
	StepConfirm Step = "confirm"
	// StepDone бронирование создано
	StepDone Step = "done"
)

// Event событие, переводящее мастер на следующий шаг
type Event string

const (
	// EventDetailsSubmitted параметры встречи заполнены
	EventDetailsSubmitted Event = "details_submitted"
	// EventSuggestionPicked пользователь выбрал комнату из быстрой выдачи
	EventSuggestionPicked Event = "suggestion_picked"
	// EventBrowseAll пользователь запросил полный список комнат
	EventBrowseAll Event = "browse_all"
	// EventRoomPicked пользователь выбрал комнату из полного списка
	EventRoomPicked Event = "room_picked"
	// EventConfirmed пользователь подтвердил бронирование, коммит прошел
	EventConfirmed Event = "confirmed"
	// EventConflict коммит отклонен из-за конфликта, подбор запускается заново
	EventConflict Event = "conflict"
	// EventBack возврат на предыдущий шаг
	EventBack Event = "back"
)

var (
	// ErrInvalidTransition возвращается для события, недопустимого на текущем шаге
	ErrInvalidTransition = errors.New("wizard: invalid transition")

	// ErrNoRoomSelected возвращается при попытке подтверждения без выбранной комнаты
	ErrNoRoomSelected = errors.New("wizard: no room selected")

	// ErrFinished возвращается для любого события после завершения мастера
	ErrFinished = errors.New("wizard: already finished")
)

// Wizard состояние мастера: текущий шаг и выбранная комната.
// Не потокобезопасен: один экземпляр обслуживает одну сессию мастера.
type Wizard struct {
	step Step

	// roomID выбранная комната; 0 - не выбрана
	roomID int64

	// preChosen комната задана заранее (deep link): шаги подбора пропускаются
	preChosen bool
}

// New создает мастер на первом шаге
func New() *Wizard {
	return &Wizard{step: StepDetails}
}

// NewWithRoom создает мастер с заранее выбранной комнатой.
// Guard пропуска: подбор и ручной выбор не показываются, после ввода
// параметров мастер идет сразу на подтверждение.
func NewWithRoom(roomID int64) *Wizard {
	return &Wizard{
		step:      StepDetails,
		roomID:    roomID,
		preChosen: roomID > 0,
	}
}

// Step возвращает текущий шаг
func (w *Wizard) Step() Step {
	return w.step
}

// RoomID возвращает выбранную комнату; 0 - не выбрана
func (w *Wizard) RoomID() int64 {
	return w.roomID
}

// RoomPreChosen сообщает, была ли комната задана заранее
func (w *Wizard) RoomPreChosen() bool {
	return w.preChosen
}

// Apply применяет событие и переводит мастер на следующий шаг.
// roomID учитывается только для событий выбора комнаты.
func (w *Wizard) Apply(event Event, roomID int64) error {
	if w.step == StepDone {
		return ErrFinished
	}

	switch w.step {
	case StepDetails:
		return w.fromDetails(event)
	case StepSuggestions:
		return w.fromSuggestions(event, roomID)
	case StepManualSelect:
		return w.fromManualSelect(event, roomID)
	case StepConfirm:
		return w.fromConfirm(event)
	default:
		return ErrInvalidTransition
	}
}

func (w *Wizard) fromDetails(event Event) error {
	if event != EventDetailsSubmitted {
		return ErrInvalidTransition
	}

	// Комната выбрана заранее: подбор пропускается целиком
	if w.preChosen {
		w.step = StepConfirm
		return nil
	}

	w.step = StepSuggestions
	return nil
}

func (w *Wizard) fromSuggestions(event Event, roomID int64) error {
	switch event {
	case EventSuggestionPicked:
		if roomID <= 0 {
			return ErrNoRoomSelected
		}
		w.roomID = roomID
		w.step = StepConfirm
		return nil

	case EventBrowseAll:
		w.step = StepManualSelect
		return nil

	case EventBack:
		w.step = StepDetails
		return nil

	default:
		return ErrInvalidTransition
	}
}

func (w *Wizard) fromManualSelect(event Event, roomID int64) error {
	switch event {
	case EventRoomPicked:
		if roomID <= 0 {
			return ErrNoRoomSelected
		}
		w.roomID = roomID
		w.step = StepConfirm
		return nil

	case EventBack:
		w.step = StepSuggestions
		return nil

	default:
		return ErrInvalidTransition
	}
}

func (w *Wizard) fromConfirm(event Event) error {
	switch event {
	case EventConfirmed:
		if w.roomID <= 0 {
			return ErrNoRoomSelected
		}
		w.step = StepDone
		return nil

	case EventConflict:
		// Коммит отклонен: выбранная комната занята, подбор заново.
		// Заранее выбранная комната сбрасывается - deep link устарел.
		w.roomID = 0
		w.preChosen = false
		w.step = StepSuggestions
		return nil

	case EventBack:
		if w.preChosen {
			w.step = StepDetails
			return nil
		}
		w.step = StepSuggestions
		return nil

	default:
		return ErrInvalidTransition
	}
}
