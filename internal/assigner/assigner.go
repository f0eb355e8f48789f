// Package assigner распределяет получателей подарков между участниками.
//
// Алгоритм: случайная перестановка кандидатов, затем жадный проход по дарителям
// в исходном порядке, каждому достаётся первый свободный допустимый получатель.
// Если хотя бы один даритель остался без пары, попытка отбрасывается целиком
// и начинается новая с новой перестановкой. После MaxAttempts неудач
// возвращается domain.ErrAssignmentInfeasible.
package assigner

import (
	"fmt"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/infrastructure/randomizer"
)

// MaxAttempts ограничивает количество попыток одного розыгрыша.
const MaxAttempts = 100

type pairKey struct {
	giverID    string
	receiverID string
}

// ForbiddenSet хранит пары (даритель, получатель), запрещённые историей прошлого раунда.
type ForbiddenSet map[pairKey]struct{}

// NewForbiddenSet строит множество запрещённых пар из пар прошлого раунда.
func NewForbiddenSet(prior []domain.Pairing) ForbiddenSet {
	set := make(ForbiddenSet, len(prior))
	for _, p := range prior {
		set[pairKey{giverID: p.GiverID, receiverID: p.ReceiverID}] = struct{}{}
	}
	return set
}

// Contains сообщает, запрещена ли пара giverID -> receiverID.
func (f ForbiddenSet) Contains(giverID, receiverID string) bool {
	_, ok := f[pairKey{giverID: giverID, receiverID: receiverID}]
	return ok
}

// Attempt выполняет одну жадную попытку распределения для заданного порядка получателей.
// Функция детерминирована и не имеет побочных эффектов: при неудаче возвращает (nil, false).
func Attempt(givers, receivers []domain.Participant, forbidden ForbiddenSet) ([]domain.Pairing, bool) {
	consumed := make(map[string]struct{}, len(receivers))
	pairings := make([]domain.Pairing, 0, len(givers))
	for _, giver := range givers {
		matched := false
		for _, receiver := range receivers {
			if _, taken := consumed[receiver.ID]; taken {
				continue
			}
			if receiver.ID == giver.ID || forbidden.Contains(giver.ID, receiver.ID) {
				continue
			}
			consumed[receiver.ID] = struct{}{}
			pairings = append(pairings, domain.NewPairing(giver, receiver))
			matched = true
			break
		}
		if !matched {
			return nil, false
		}
	}
	return pairings, true
}

// Result содержит успешное распределение и номер попытки, на которой оно найдено.
type Result struct {
	Pairings []domain.Pairing
	Attempts int
}

// Engine выполняет розыгрыш с повторными попытками.
// Не хранит состояния между вызовами, поэтому безопасен для конкурентного использования,
// если таков используемый Randomizer.
type Engine struct {
	randomizer  randomizer.Randomizer
	maxAttempts int
}

// Option настраивает Engine.
type Option func(*Engine)

// WithMaxAttempts переопределяет лимит попыток. Значения <= 0 игнорируются.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// New создаёт Engine. Если r == nil, используется randomizer.New().
func New(r randomizer.Randomizer, opts ...Option) *Engine {
	if r == nil {
		r = randomizer.New()
	}
	e := &Engine{
		randomizer:  r,
		maxAttempts: MaxAttempts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assign распределяет получателей между participants с учётом пар прошлого раунда.
// Порядок пар в результате совпадает с порядком participants.
// Уникальность идентификаторов и минимальное число участников не проверяются:
// это ответственность вызывающей стороны.
func (e *Engine) Assign(participants []domain.Participant, prior []domain.Pairing) (Result, error) {
	givers := append([]domain.Participant(nil), participants...)
	forbidden := NewForbiddenSet(prior)
	receivers := make([]domain.Participant, len(givers))

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		copy(receivers, givers)
		e.randomizer.Shuffle(len(receivers), func(i, j int) {
			receivers[i], receivers[j] = receivers[j], receivers[i]
		})
		if pairings, ok := Attempt(givers, receivers, forbidden); ok {
			return Result{Pairings: pairings, Attempts: attempt}, nil
		}
	}
	return Result{}, fmt.Errorf("%w: no valid assignment after %d attempts", domain.ErrAssignmentInfeasible, e.maxAttempts)
}
