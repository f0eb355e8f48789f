package domain

import "time"

// Participant описывает участника розыгрыша.
// ID должен быть уникальным в пределах списка (обычно это email).
type Participant struct {
	Name string `json:"name"`
	ID   string `json:"email"`
}

// Pairing связывает дарителя с получателем подарка.
type Pairing struct {
	GiverName    string `json:"giver_name"`
	GiverID      string `json:"giver_email"`
	ReceiverName string `json:"receiver_name"`
	ReceiverID   string `json:"receiver_email"`
}

// Giver возвращает дарителя пары как участника.
func (p Pairing) Giver() Participant {
	return Participant{Name: p.GiverName, ID: p.GiverID}
}

// Receiver возвращает получателя пары как участника.
func (p Pairing) Receiver() Participant {
	return Participant{Name: p.ReceiverName, ID: p.ReceiverID}
}

// NewPairing собирает пару из двух участников.
func NewPairing(giver, receiver Participant) Pairing {
	return Pairing{
		GiverName:    giver.Name,
		GiverID:      giver.ID,
		ReceiverName: receiver.Name,
		ReceiverID:   receiver.ID,
	}
}

// Assignment содержит результат одного розыгрыша.
type Assignment struct {
	Pairings    []Pairing `json:"pairings"`
	Attempts    int       `json:"attempts"`
	GeneratedAt time.Time `json:"generated_at"`
}
