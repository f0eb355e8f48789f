package domain

import "errors"

// Доменные ошибки, используемые для обработки бизнес-логики.
// Эти ошибки преобразуются в HTTP-ответы в слое обработчиков.
var (
	ErrInvalidInput           = errors.New("invalid input")                                     // Некорректные или неполные входные данные.
	ErrNotEnoughParticipants  = errors.New("at least 2 participants are required")              // Участников меньше двух.
	ErrDuplicateParticipant   = errors.New("duplicate participant identifier")                  // Один и тот же идентификатор встречается дважды.
	ErrAssignmentInfeasible   = errors.New("unable to generate valid secret santa assignments") // Исчерпан лимит попыток розыгрыша.
	ErrParticipantsFileAbsent = errors.New("participants file is required")                     // Не передан файл с участниками.
)
