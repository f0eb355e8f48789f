package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"secret-santa-service/internal/api"
)

const (
	defaultBaseURL     = "http://localhost:8080"
	defaultRate        = 5
	defaultDuration    = 60 * time.Second
	defaultRosterSize  = 50
	defaultResultsFile = "load/artifacts/results.bin"
)

var resultsFile = defaultResultsFile

func main() {
	var (
		baseURL   = flag.String("url", defaultBaseURL, "Base URL сервиса")
		rate      = flag.Int("rate", defaultRate, "Запросов в секунду")
		duration  = flag.Duration("duration", defaultDuration, "Длительность теста (например, 60s)")
		size      = flag.Int("participants", defaultRosterSize, "Участников в одном розыгрыше")
		checkOnly = flag.Bool("check-only", false, "Только проверить доступность сервиса")
		report    = flag.Bool("report", false, "Показать отчёт из сохранённых результатов")
		plot      = flag.Bool("plot", false, "Сгенерировать HTML график из сохранённых результатов")
	)
	flag.Parse()

	if *report {
		showReport()
		return
	}

	if *plot {
		generatePlot()
		return
	}

	if *checkOnly {
		if err := checkHealth(*baseURL); err != nil {
			log.Fatalf("Сервис недоступен: %v", err)
		}
		return
	}

	// Полный цикл: проверка доступности + нагрузка
	fmt.Println("=== Нагрузочное тестирование с Vegeta ===")
	fmt.Printf("URL: %s\n", *baseURL)
	fmt.Printf("Rate: %d req/s\n", *rate)
	fmt.Printf("Duration: %s\n", *duration)
	fmt.Printf("Participants: %d\n", *size)
	fmt.Println()

	fmt.Println("1. Проверка доступности сервиса...")
	if err := checkHealth(*baseURL); err != nil {
		log.Fatalf("Сервис недоступен: %v", err)
	}

	fmt.Println()
	fmt.Println("2. Запуск нагрузочного тестирования...")
	if err := runLoadTest(*baseURL, *rate, *duration, *size); err != nil {
		log.Fatalf("Ошибка при нагрузочном тестировании: %v", err)
	}

	fmt.Println()
	fmt.Println("=== Тестирование завершено ===")
	fmt.Println("Для детального анализа выполните:")
	fmt.Printf("  go run ./load/cli -report\n")
	fmt.Printf("  go run ./load/cli -plot\n")
}

// checkHealth отправляет один запрос GET /health через vegeta.
func checkHealth(baseURL string) error {
	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/health", baseURL),
	})

	attacker := vegeta.NewAttacker()
	var metrics vegeta.Metrics

	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: 1, Per: time.Second}, time.Second, "health") {
		metrics.Add(res)
	}
	metrics.Close()

	if metrics.StatusCodes["200"] == 0 {
		return fmt.Errorf("сервис недоступен: статус %v", metrics.StatusCodes)
	}

	fmt.Println("Сервис доступен")
	return nil
}

// runLoadTest атакует POST /assignments и пишет результаты в resultsFile по мере поступления.
func runLoadTest(baseURL string, rate int, duration time.Duration, size int) error {
	if rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", rate)
	}
	if size < 2 {
		return fmt.Errorf("participants must be at least 2, got %d", size)
	}

	if err := os.MkdirAll(filepath.Dir(resultsFile), 0o755); err != nil {
		return fmt.Errorf("создать директорию: %w", err)
	}
	file, err := os.Create(resultsFile)
	if err != nil {
		return fmt.Errorf("создать файл: %w", err)
	}
	defer file.Close()

	attacker := vegeta.NewAttacker(
		vegeta.Timeout(30*time.Second),
		vegeta.Workers(uint64(rate)),
	)
	encoder := vegeta.NewEncoder(file)
	var metrics vegeta.Metrics

	results := attacker.Attack(newDrawTargeter(baseURL, size), vegeta.Rate{Freq: rate, Per: time.Second}, duration, "draw")
	for res := range results {
		metrics.Add(res)
		if err := encoder.Encode(res); err != nil {
			attacker.Stop()
			return fmt.Errorf("записать результат: %w", err)
		}
	}
	metrics.Close()

	fmt.Printf("Результаты сохранены в %s\n", resultsFile)
	return printMetrics(os.Stdout, &metrics)
}

// newDrawTargeter генерирует POST /assignments с уникальным составом участников.
// Пары прошлого раунда образуют цикл по порядку списка, чтобы движку было что обходить.
func newDrawTargeter(baseURL string, size int) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		body, err := json.Marshal(drawRequest(time.Now().UnixNano(), size))
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}

		*t = vegeta.Target{
			Method: http.MethodPost,
			URL:    fmt.Sprintf("%s/assignments", baseURL),
			Header: http.Header{"Content-Type": []string{"application/json"}},
			Body:   body,
		}

		return nil
	}
}

func drawRequest(run int64, size int) api.DrawRequest {
	participants := make([]api.Participant, size)
	for i := range participants {
		participants[i] = api.Participant{
			Name:  fmt.Sprintf("Load Employee %d", i+1),
			Email: fmt.Sprintf("load-%d-%d@example.com", run, i+1),
		}
	}
	prior := make([]api.Pairing, size)
	for i, giver := range participants {
		receiver := participants[(i+1)%size]
		prior[i] = api.Pairing{
			GiverName:     giver.Name,
			GiverEmail:    giver.Email,
			ReceiverName:  receiver.Name,
			ReceiverEmail: receiver.Email,
		}
	}
	return api.DrawRequest{Participants: participants, PriorPairings: prior}
}

// showReport показывает отчёт из сохранённых результатов
func showReport() {
	if err := renderReport(os.Stdout, resultsFile); err != nil {
		log.Fatalf("Не удалось построить отчёт: %v", err)
	}
}

func renderReport(out io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer file.Close()

	var metrics vegeta.Metrics
	decoder := vegeta.NewDecoder(file)
	for {
		var res vegeta.Result
		err := decoder.Decode(&res)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
		metrics.Add(&res)
	}
	metrics.Close()

	return printMetrics(out, &metrics)
}

// printMetrics печатает текстовый отчёт vegeta и долю ответов 422 отдельно:
// для розыгрыша это не сбой сервиса, а неразрешимый вход.
func printMetrics(out io.Writer, metrics *vegeta.Metrics) error {
	if err := vegeta.NewTextReporter(metrics)(out); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if metrics.Requests > 0 {
		infeasible := metrics.StatusCodes["422"]
		fmt.Fprintf(out, "Infeasible    [422]  %d (%.2f%%)\n", infeasible, 100*float64(infeasible)/float64(metrics.Requests))
	}
	return nil
}

// generatePlot подсказывает, как построить HTML-график утилитой vegeta.
func generatePlot() {
	writePlotInstructions(os.Stdout)
}

func writePlotInstructions(out io.Writer) {
	fmt.Fprintf(out, "HTML-график строит CLI vegeta:\n  vegeta plot %s > load/artifacts/plot.html\n\n", resultsFile)
	fmt.Fprintln(out, "Установка CLI:")
	fmt.Fprintln(out, "  go install github.com/tsenart/vegeta/v12@latest")
}
