package randomizer

import (
	"math/rand"
	"sync"
	"time"
)

type randomizerImpl struct {
	mu  sync.Mutex // Защищает доступ к генератору случайных чисел
	rnd *rand.Rand
}

// New создаёт потокобезопасный randomizer, инициализированный текущим временем.
func New() Randomizer {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded создаёт randomizer с фиксированным seed.
// Одинаковый seed даёт одинаковую последовательность перестановок.
func NewSeeded(seed int64) Randomizer {
	return &randomizerImpl{
		rnd: rand.New(rand.NewSource(seed)), // #nosec G404
	}
}

// Shuffle перемешивает элементы алгоритмом Фишера-Йетса (вариант Дурстенфельда):
// от последнего индекса ко второму, обмен с равновероятно выбранным индексом из [0, i].
func (r *randomizerImpl) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := n - 1; i > 0; i-- {
		j := r.rnd.Intn(i + 1)
		swap(i, j)
	}
}
