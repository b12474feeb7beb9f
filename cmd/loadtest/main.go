package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// go run ./cmd/loadtest --url=http://localhost:4000/webhook --rate=50 --duration=30s
func main() {
	url := flag.String("url", "http://localhost:4000/webhook", "relay webhook url")
	freq := flag.Int("rate", 50, "requests per second")
	duration := flag.Duration("duration", 30*time.Second, "test duration")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	rate := vegeta.Rate{Freq: *freq, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(createTargeter(*url), rate, *duration, "TV relay load test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("95th percentile: %s\n", metrics.Latencies.P95)
	fmt.Printf("Mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Max: %s\n", metrics.Latencies.Max)
	fmt.Printf("Requests per second: %.2f\n", metrics.Rate)
	fmt.Printf("Success ratio: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Total requests: %d\n", metrics.Requests)

	fmt.Println("\n=== Detailed report ===")
	reporter := vegeta.NewTextReporter(&metrics)
	reporter.Report(os.Stdout)
}

// createTargeter mixes the body shapes TradingView actually sends: JSON labelled as text,
// plain text alerts and the occasional broken template.
func createTargeter(url string) vegeta.Targeter {
	return func(tgt *vegeta.Target) error {
		var body string
		switch gofakeit.Number(0, 9) {
		case 0:
			body = fmt.Sprintf("alert: %s crossed %.2f", strings.ToUpper(gofakeit.LetterN(4)), gofakeit.Price(1, 5000))
		case 1:
			body = fmt.Sprintf(`{"ticker":"%s","action":`, strings.ToUpper(gofakeit.LetterN(4)))
		default:
			body = fmt.Sprintf(`{"id":"%s","ticker":"%s","action":"%s","price":%.2f}`,
				uuid.NewString(),
				strings.ToUpper(gofakeit.LetterN(4)),
				gofakeit.RandomString([]string{"buy", "sell", "close"}),
				gofakeit.Price(1, 5000),
			)
		}

		tgt.Method = http.MethodPost
		tgt.URL = url
		tgt.Body = []byte(body)
		tgt.Header = http.Header{
			"Content-Type": {"text/plain; charset=utf-8"},
		}

		return nil
	}
}
