package common

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/roster"
)

// Имена полей multipart-формы.
const (
	FieldParticipants  = "participants"
	FieldPriorPairings = "prior_pairings"
)

// ReadRosterUpload разбирает multipart-форму с CSV-файлами участников
// и (необязательно) пар прошлого раунда. Размер тела ограничен maxBytes.
func ReadRosterUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]domain.Participant, []domain.Pairing, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, NewHTTPError(http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
				fmt.Sprintf("тело запроса превышает %d байт", maxBytes))
		}
		return nil, nil, NewBadRequestError("INVALID_BODY", "ожидается multipart/form-data")
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, err := openFormFile(r, FieldParticipants)
	if err != nil {
		return nil, nil, err
	}
	if file == nil {
		return nil, nil, domain.ErrParticipantsFileAbsent
	}
	participants, err := readClosing(file, roster.ReadParticipants)
	if err != nil {
		return nil, nil, err
	}

	file, err = openFormFile(r, FieldPriorPairings)
	if err != nil {
		return nil, nil, err
	}
	if file == nil {
		return participants, nil, nil
	}
	prior, err := readClosing(file, roster.ReadPriorPairings)
	if err != nil {
		return nil, nil, err
	}
	return participants, prior, nil
}

// openFormFile возвращает nil без ошибки, если поле отсутствует.
func openFormFile(r *http.Request, field string) (multipart.File, error) {
	file, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, NewBadRequestError("INVALID_BODY", fmt.Sprintf("не удалось прочитать поле %s", field))
	}
	return file, nil
}

func readClosing[T any](file multipart.File, read func(io.Reader) (T, error)) (T, error) {
	defer func() { _ = file.Close() }()
	return read(file)
}
