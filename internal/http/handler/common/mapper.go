package common

import (
	"strings"

	"secret-santa-service/internal/api"
	"secret-santa-service/internal/domain"
)

// ToDomainParticipants преобразует API DTO в доменные модели.
// Пробелы по краям отбрасываются так же, как при чтении CSV.
func ToDomainParticipants(items []api.Participant) []domain.Participant {
	participants := make([]domain.Participant, 0, len(items))
	for _, item := range items {
		participants = append(participants, domain.Participant{
			Name: strings.TrimSpace(item.Name),
			ID:   strings.TrimSpace(item.Email),
		})
	}
	return participants
}

// ToDomainPairings преобразует пары прошлого раунда из API DTO.
func ToDomainPairings(items []api.Pairing) []domain.Pairing {
	pairings := make([]domain.Pairing, 0, len(items))
	for _, item := range items {
		pairings = append(pairings, domain.Pairing{
			GiverName:    strings.TrimSpace(item.GiverName),
			GiverID:      strings.TrimSpace(item.GiverEmail),
			ReceiverName: strings.TrimSpace(item.ReceiverName),
			ReceiverID:   strings.TrimSpace(item.ReceiverEmail),
		})
	}
	return pairings
}

// FromDomainParticipants преобразует участников в API DTO.
func FromDomainParticipants(participants []domain.Participant) []api.Participant {
	items := make([]api.Participant, 0, len(participants))
	for _, p := range participants {
		items = append(items, api.Participant{Name: p.Name, Email: p.ID})
	}
	return items
}

// FromDomainAssignment преобразует результат розыгрыша в API DTO.
func FromDomainAssignment(assignment domain.Assignment) api.Assignment {
	pairings := make([]api.Pairing, 0, len(assignment.Pairings))
	for _, p := range assignment.Pairings {
		pairings = append(pairings, api.Pairing{
			GiverName:     p.GiverName,
			GiverEmail:    p.GiverID,
			ReceiverName:  p.ReceiverName,
			ReceiverEmail: p.ReceiverID,
		})
	}
	return api.Assignment{
		Pairings:    pairings,
		Attempts:    assignment.Attempts,
		GeneratedAt: assignment.GeneratedAt,
	}
}
