// Package roster читает и пишет табличные файлы розыгрыша в формате CSV.
//
// Участники: колонки Employee_Name, Employee_EmailID.
// Пары прошлого раунда и результат: дополнительно Secret_Child_Name, Secret_Child_EmailID.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"secret-santa-service/internal/domain"
)

// Названия колонок CSV.
const (
	ColumnName       = "Employee_Name"
	ColumnEmail      = "Employee_EmailID"
	ColumnChildName  = "Secret_Child_Name"
	ColumnChildEmail = "Secret_Child_EmailID"
)

const byteOrderMark = "\ufeff"

var (
	participantColumns = []string{ColumnName, ColumnEmail}
	pairingColumns     = []string{ColumnName, ColumnEmail, ColumnChildName, ColumnChildEmail}
)

// ValidationError описывает ошибку во входном файле.
// Row — номер строки файла начиная с 1 (заголовок — строка 1), 0 если строка неизвестна.
type ValidationError struct {
	Row    int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Row > 0 {
		fmt.Fprintf(&b, "row %d: ", e.Row)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "%s: ", e.Field)
	}
	b.WriteString(e.Reason)
	return b.String()
}

// Unwrap позволяет сопоставлять ошибку с domain.ErrInvalidInput через errors.Is.
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

// ReadParticipants читает список участников. Требуется минимум два участника.
func ReadParticipants(r io.Reader) ([]domain.Participant, error) {
	rows, err := readTable(r, participantColumns)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, &ValidationError{Reason: "file is empty"}
	}
	participants := make([]domain.Participant, 0, len(rows))
	for _, row := range rows {
		participants = append(participants, domain.Participant{
			Name: row.values[ColumnName],
			ID:   row.values[ColumnEmail],
		})
	}
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrNotEnoughParticipants, len(participants))
	}
	return participants, nil
}

// ReadPriorPairings читает пары прошлого раунда. Пустой файл допустим.
func ReadPriorPairings(r io.Reader) ([]domain.Pairing, error) {
	rows, err := readTable(r, pairingColumns)
	if err != nil {
		return nil, err
	}
	pairings := make([]domain.Pairing, 0, len(rows))
	for _, row := range rows {
		pairings = append(pairings, domain.Pairing{
			GiverName:    row.values[ColumnName],
			GiverID:      row.values[ColumnEmail],
			ReceiverName: row.values[ColumnChildName],
			ReceiverID:   row.values[ColumnChildEmail],
		})
	}
	return pairings, nil
}

// WriteAssignments пишет результат розыгрыша с заголовком, по строке на пару.
func WriteAssignments(w io.Writer, pairings []domain.Pairing) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(pairingColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range pairings {
		if err := cw.Write([]string{p.GiverName, p.GiverID, p.ReceiverName, p.ReceiverID}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFileName возвращает имя файла для выгрузки результата.
func ExportFileName(t time.Time) string {
	return "secret_santa_assignments_" + t.Format("20060102") + ".csv"
}

type tableRow struct {
	values map[string]string
}

// readTable читает CSV с заголовком и проверяет, что обязательные колонки присутствуют
// и заполнены в каждой строке. Полностью пустые строки пропускаются.
// Для файла без заголовка возвращает (nil, nil).
func readTable(r io.Reader, required []string) ([]tableRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, parseError(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, &ValidationError{Row: 1, Field: col, Reason: "missing column"}
		}
	}

	rows := []tableRow{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}
		row := tableRow{values: make(map[string]string, len(required))}
		for _, col := range required {
			var value string
			if i := index[col]; i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value == "" {
				return nil, &ValidationError{Row: line, Field: col, Reason: "value is empty"}
			}
			row.values[col] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ValidationError{Row: pe.Line, Reason: pe.Err.Error()}
	}
	return fmt.Errorf("read csv: %w", err)
}
