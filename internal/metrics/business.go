package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "secret_santa"

var (
	drawsSucceeded = promauto.NewCounter(
		prometheusCounterOpts("draws_succeeded_total", "Total number of successful secret santa draws"),
	)
	drawsInfeasible = promauto.NewCounter(
		prometheusCounterOpts("draws_infeasible_total", "Total number of draws that exhausted the attempt budget"),
	)
	drawsRejected = promauto.NewCounter(
		prometheusCounterOpts("draws_rejected_total", "Total number of draws rejected by input validation"),
	)
	participantsProcessed = promauto.NewCounter(
		prometheusCounterOpts("participants_processed_total", "Total number of participants passed to successful draws"),
	)
	drawAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "draw_attempts",
		Help:      "Number of randomized attempts needed by a successful draw",
		Buckets:   []float64{1, 2, 3, 5, 10, 20, 50, 100},
	})
)

// ObserveDrawSucceeded учитывает успешный розыгрыш.
func ObserveDrawSucceeded(participants, attempts int) {
	drawsSucceeded.Inc()
	if participants > 0 {
		participantsProcessed.Add(float64(participants))
	}
	if attempts > 0 {
		drawAttempts.Observe(float64(attempts))
	}
}

// IncDrawsInfeasible увеличивает счётчик розыгрышей без решения.
func IncDrawsInfeasible() {
	drawsInfeasible.Inc()
}

// IncDrawsRejected увеличивает счётчик отклонённых валидацией розыгрышей.
func IncDrawsRejected() {
	drawsRejected.Inc()
}

func prometheusCounterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}
}
