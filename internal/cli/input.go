package cli

import (
	"fmt"
	"io"
	"os"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/roster"
	"secret-santa-service/internal/service"
)

// InputOptions описывает входные файлы, общие для draw и validate.
type InputOptions struct {
	Participants string
	Prior        string
}

func (o InputOptions) load() (service.DrawInput, error) {
	if o.Participants == "" {
		return service.DrawInput{}, domain.ErrParticipantsFileAbsent
	}
	participants, err := readFile(o.Participants, roster.ReadParticipants)
	if err != nil {
		return service.DrawInput{}, err
	}
	input := service.DrawInput{Participants: participants}
	if o.Prior == "" {
		return input, nil
	}
	prior, err := readFile(o.Prior, roster.ReadPriorPairings)
	if err != nil {
		return service.DrawInput{}, err
	}
	input.Prior = prior
	return input, nil
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
