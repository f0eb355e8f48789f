// Package api содержит DTO HTTP-интерфейса, описанного в openapi.yml.
package api

import "time"

// Participant участник в запросах и ответах.
type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Pairing пара «даритель → получатель».
type Pairing struct {
	GiverName     string `json:"giver_name"`
	GiverEmail    string `json:"giver_email"`
	ReceiverName  string `json:"receiver_name"`
	ReceiverEmail string `json:"receiver_email"`
}

// DrawRequest тело POST /assignments.
type DrawRequest struct {
	Participants  []Participant `json:"participants"`
	PriorPairings []Pairing     `json:"prior_pairings,omitempty"`
}

// Assignment результат розыгрыша.
type Assignment struct {
	Pairings    []Pairing `json:"pairings"`
	Attempts    int       `json:"attempts"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ParticipantList ответ POST /participants/validate.
type ParticipantList struct {
	Participants  []Participant `json:"participants"`
	Count         int           `json:"count"`
	PriorPairings int           `json:"prior_pairings"`
}
