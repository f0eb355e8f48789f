package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"secret-santa-service/internal/domain"
)

const (
	maxNameLength = 200
	maxIDLength   = 320
)

// ValidateParticipants проверяет список участников: минимум двое,
// имя и идентификатор заполнены, идентификаторы уникальны.
func ValidateParticipants(participants []domain.Participant) error {
	if len(participants) < 2 {
		return fmt.Errorf("%w: got %d", domain.ErrNotEnoughParticipants, len(participants))
	}
	seen := make(map[string]int, len(participants))
	for i, p := range participants {
		if err := validateName(p.Name); err != nil {
			return fmt.Errorf("%w: participant %d: %v", domain.ErrInvalidInput, i+1, err)
		}
		if err := validateID(p.ID); err != nil {
			return fmt.Errorf("%w: participant %d: %v", domain.ErrInvalidInput, i+1, err)
		}
		id := strings.TrimSpace(p.ID)
		if first, ok := seen[id]; ok {
			return fmt.Errorf("%w: %q appears at positions %d and %d", domain.ErrDuplicateParticipant, id, first, i+1)
		}
		seen[id] = i + 1
	}
	return nil
}

// ValidatePriorPairings проверяет, что в каждой паре прошлого раунда заполнены все поля.
// Пары с неизвестными участниками допустимы: они просто ничего не запрещают.
func ValidatePriorPairings(pairings []domain.Pairing) error {
	for i, p := range pairings {
		for _, check := range []struct {
			field string
			value string
			limit int
		}{
			{"giver name", p.GiverName, maxNameLength},
			{"giver id", p.GiverID, maxIDLength},
			{"receiver name", p.ReceiverName, maxNameLength},
			{"receiver id", p.ReceiverID, maxIDLength},
		} {
			if err := validateField(check.field, check.value, check.limit); err != nil {
				return fmt.Errorf("%w: prior pairing %d: %v", domain.ErrInvalidInput, i+1, err)
			}
		}
	}
	return nil
}

func validateName(name string) error {
	return validateField("name", name, maxNameLength)
}

func validateID(id string) error {
	return validateField("id", id, maxIDLength)
}

func validateField(field, value string, limit int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%s too long (max %d characters)", field, limit)
	}
	return nil
}

// normalizeInput убирает пробелы по краям имён и идентификаторов,
// чтобы движок сравнивал участников так же, как валидация.
func normalizeInput(input DrawInput) DrawInput {
	participants := make([]domain.Participant, 0, len(input.Participants))
	for _, p := range input.Participants {
		participants = append(participants, domain.Participant{
			Name: strings.TrimSpace(p.Name),
			ID:   strings.TrimSpace(p.ID),
		})
	}
	var prior []domain.Pairing
	if input.Prior != nil {
		prior = make([]domain.Pairing, 0, len(input.Prior))
		for _, p := range input.Prior {
			prior = append(prior, domain.Pairing{
				GiverName:    strings.TrimSpace(p.GiverName),
				GiverID:      strings.TrimSpace(p.GiverID),
				ReceiverName: strings.TrimSpace(p.ReceiverName),
				ReceiverID:   strings.TrimSpace(p.ReceiverID),
			})
		}
	}
	return DrawInput{Participants: participants, Prior: prior}
}
