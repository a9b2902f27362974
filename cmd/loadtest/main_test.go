package main

import (
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func withCLIArgs(t *testing.T, args []string, fn func()) {
	t.Helper()

	oldArgs := os.Args
	oldCommandLine := flag.CommandLine

	os.Args = append([]string{"loadtest"}, args...)
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flag.CommandLine = fs

	defer func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	}()

	fn()
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    loadMode
		wantErr string
	}{
		{name: "create", input: "create", want: modeCreate},
		{name: "create-order", input: "create-order", want: modeCreateOrder},
		{name: "create-order-list", input: "create-order-list", want: modeCreateOrderList},
		{name: "unsupported", input: "bad", wantErr: "unsupported mode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseMode(tc.input)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected mode: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("count mode", func(t *testing.T) {
		withCLIArgs(t, []string{
			"-addr=http://127.0.0.1:8080",
			"-mode=create-order",
			"-total=12",
			"-concurrency=3",
			"-timeout=2s",
			"-name-prefix=shirt",
			"-price=19.9",
			"-user-tag=bench",
		}, func() {
			cfg, err := parseConfig()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.baseURL != "http://127.0.0.1:8080" {
				t.Fatalf("unexpected addr: %s", cfg.baseURL)
			}
			if cfg.mode != modeCreateOrder {
				t.Fatalf("unexpected mode: %s", cfg.mode)
			}
			if cfg.total != 12 || !cfg.totalSet {
				t.Fatalf("unexpected total: %d (set=%v)", cfg.total, cfg.totalSet)
			}
			if cfg.timeout != 2*time.Second {
				t.Fatalf("unexpected timeout: %s", cfg.timeout)
			}
		})
	})

	t.Run("invalid concurrency", func(t *testing.T) {
		withCLIArgs(t, []string{"-concurrency=0"}, func() {
			if _, err := parseConfig(); err == nil {
				t.Fatal("expected error for zero concurrency")
			}
		})
	})

	t.Run("invalid price", func(t *testing.T) {
		withCLIArgs(t, []string{"-price=-1"}, func() {
			if _, err := parseConfig(); err == nil {
				t.Fatal("expected error for negative price")
			}
		})
	})

	t.Run("invalid mode", func(t *testing.T) {
		withCLIArgs(t, []string{"-mode=bad"}, func() {
			if _, err := parseConfig(); err == nil {
				t.Fatal("expected error for unsupported mode")
			}
		})
	})
}

func TestDispatchJobs_CountMode(t *testing.T) {
	jobs := make(chan int, 16)
	dispatchJobs(jobs, config{total: 5})

	var got []int
	for id := range jobs {
		got = append(got, id)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 jobs, got %d", len(got))
	}
}

func TestDispatchJobs_DurationMode(t *testing.T) {
	jobs := make(chan int, 1024)
	done := make(chan struct{})
	var count int64

	go func() {
		defer close(done)
		for range jobs {
			atomic.AddInt64(&count, 1)
		}
	}()

	dispatchJobs(jobs, config{duration: 50 * time.Millisecond})
	<-done

	if atomic.LoadInt64(&count) == 0 {
		t.Fatal("expected at least one job in duration mode")
	}
}

func TestCollector_RecordAndReport(t *testing.T) {
	col := newCollector()
	col.record("scenario", 10*time.Millisecond, "200")
	col.record("scenario", 20*time.Millisecond, "500")
	col.record("CreateProduct", 5*time.Millisecond, "201")

	result := col.buildReport(time.Now(), time.Second)

	if result.TotalScenarios != 2 {
		t.Fatalf("expected 2 scenarios, got %d", result.TotalScenarios)
	}
	if result.SuccessScenarios != 1 || result.FailedScenarios != 1 {
		t.Fatalf("unexpected success/failed: %d/%d", result.SuccessScenarios, result.FailedScenarios)
	}
	if result.ErrorRate != 0.5 {
		t.Fatalf("unexpected error rate: %f", result.ErrorRate)
	}
	if result.RPS != 2 {
		t.Fatalf("unexpected rps: %f", result.RPS)
	}

	method, ok := result.Methods["CreateProduct"]
	if !ok {
		t.Fatal("expected CreateProduct method report")
	}
	if method.Calls != 1 || method.Success != 1 {
		t.Fatalf("unexpected method stats: %+v", method)
	}
	if method.Codes["201"] != 1 {
		t.Fatalf("unexpected codes: %v", method.Codes)
	}
}

func TestRunScenario_CreateOrderList(t *testing.T) {
	var productCalls, orderCalls, listCalls int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/products":
			atomic.AddInt64(&productCalls, 1)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]int64{"id": 12345})
		case r.Method == http.MethodPost && r.URL.Path == "/orders":
			atomic.AddInt64(&orderCalls, 1)
			var req createOrderRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode order request: %v", err)
			}
			if len(req.Items) != 1 || req.Items[0].ProductID != "12345" {
				t.Errorf("unexpected order items: %+v", req.Items)
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "abc123"})
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/orders/"):
			atomic.AddInt64(&listCalls, 1)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"data":[],"page":{"next":null,"limit":10,"previous":null}}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newAPIClient(srv.URL, time.Second, 1)
	col := newCollector()
	cfg := config{mode: modeCreateOrderList, namePrefix: "shirt", price: 10, userTag: "bench"}

	if err := runScenario(client, cfg, 0, "run-1", col); err != nil {
		t.Fatalf("unexpected scenario error: %v", err)
	}

	if productCalls != 1 || orderCalls != 1 || listCalls != 1 {
		t.Fatalf("unexpected call counts: products=%d orders=%d lists=%d", productCalls, orderCalls, listCalls)
	}

	result := col.buildReport(time.Now(), time.Second)
	if result.SuccessScenarios != 1 {
		t.Fatalf("expected 1 successful scenario, got %d", result.SuccessScenarios)
	}
}

func TestRunScenario_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newAPIClient(srv.URL, time.Second, 1)
	col := newCollector()
	cfg := config{mode: modeCreate, namePrefix: "shirt", price: 10, userTag: "bench"}

	if err := runScenario(client, cfg, 0, "run-1", col); err == nil {
		t.Fatal("expected scenario error for 500 response")
	}

	result := col.buildReport(time.Now(), time.Second)
	if result.FailedScenarios != 1 {
		t.Fatalf("expected 1 failed scenario, got %d", result.FailedScenarios)
	}
	method := result.Methods["CreateProduct"]
	if method.Codes["500"] != 1 {
		t.Fatalf("unexpected codes: %v", method.Codes)
	}
}

func TestBuildLatencySummary(t *testing.T) {
	summary := buildLatencySummary([]float64{4, 1, 3, 2})

	if summary.Min != 1 || summary.Max != 4 {
		t.Fatalf("unexpected min/max: %f/%f", summary.Min, summary.Max)
	}
	if summary.Avg != 2.5 {
		t.Fatalf("unexpected avg: %f", summary.Avg)
	}
	if summary.P50 != 2.5 {
		t.Fatalf("unexpected p50: %f", summary.P50)
	}

	empty := buildLatencySummary(nil)
	if empty != (latencySummary{}) {
		t.Fatalf("expected zero summary for empty input, got %+v", empty)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	if got := percentile(sorted, 50); got != 3 {
		t.Fatalf("unexpected p50: %f", got)
	}
	if got := percentile(sorted, 100); got != 5 {
		t.Fatalf("unexpected p100: %f", got)
	}
	if got := percentile([]float64{7}, 95); got != 7 {
		t.Fatalf("unexpected single-value percentile: %f", got)
	}
}

func TestWriteJSONReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	result := report{TotalScenarios: 3, SuccessScenarios: 3}
	if err := writeJSONReport(path, result); err != nil {
		t.Fatalf("write report: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var decoded report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.TotalScenarios != 3 {
		t.Fatalf("unexpected scenarios in decoded report: %d", decoded.TotalScenarios)
	}
}

func TestWriteJSONReport_RejectsEscapingPath(t *testing.T) {
	if err := writeJSONReport("../escape.json", report{}); err == nil {
		t.Fatal("expected error for path outside current directory")
	}
}

func TestIsSuccessCode(t *testing.T) {
	if !isSuccessCode("200") || !isSuccessCode("201") {
		t.Fatal("expected 2xx to be success")
	}
	if isSuccessCode("404") || isSuccessCode("500") || isSuccessCode(codeTransportError) {
		t.Fatal("expected non-2xx to be failure")
	}
}
