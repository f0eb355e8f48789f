package randomizer

// Randomizer предоставляет абстракцию для рандомизации.
// Shuffle должен давать равновероятную перестановку n элементов.
type Randomizer interface {
	Shuffle(n int, swap func(i, j int))
}
