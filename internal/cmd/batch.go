package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/vkcom/vk-cli/internal/api"
	"github.com/vkcom/vk-cli/internal/dryrun"
	"github.com/vkcom/vk-cli/internal/iocontext"
	"github.com/vkcom/vk-cli/internal/metrics"
	"github.com/vkcom/vk-cli/internal/validation"
)

// DefaultConcurrency is the default number of concurrent workers
const DefaultConcurrency = 5

// batchCall is one input line of vk batch.
type batchCall struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params,omitempty"`
}

// BatchResult is the outcome of one call, reported at the input position.
type BatchResult struct {
	Index    int                  `json:"index"`
	Method   string               `json:"method"`
	OK       bool                 `json:"ok"`
	Response any                  `json:"response,omitempty"`
	Error    *api.StructuredError `json:"error,omitempty"`
}

func newBatchCmd() *cobra.Command {
	var (
		input       string
		concurrency int64
		metricsFile string
		progress    bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run many API calls concurrently",
		Long: strings.TrimSpace(`
Read calls as JSON lines, one {"method": "...", "params": {...}} object per
line, and run them with bounded concurrency. Results are printed in input
order; a failed call does not stop the others.

The global request pacing (--rps) applies across all workers.
`),
		Example: strings.TrimSpace(`
  vk batch --input calls.jsonl --concurrency 3
  printf '%s\n' '{"method":"users.get","params":{"user_ids":1}}' | vk batch -i -
  vk batch -i calls.jsonl --metrics-file /var/lib/node_exporter/vk.prom
`),
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if input == "" {
				return fmt.Errorf("--input is required (a file path or - for stdin)")
			}
			if concurrency <= 0 {
				return fmt.Errorf("--concurrency must be >= 1")
			}
			streams := iocontext.GetIO(cmd.Context())

			calls, err := readBatchInput(input, streams.In)
			if err != nil {
				return err
			}
			if len(calls) == 0 {
				return fmt.Errorf("no calls in %s", input)
			}

			factory := newClientFactory()
			var collector *metrics.Collector
			if metricsFile != "" {
				collector = metrics.New()
				factory.withMetrics(collector)
			}
			client, token, err := factory.authedAPI()
			if err != nil {
				return err
			}

			if dryrun.IsEnabled(cmdContext(cmd)) {
				previews := make([]*dryrun.Preview, len(calls))
				for i, c := range calls {
					previews[i] = requestPreview(client, c.Method, token, c.Params)
				}
				if isJSON(cmd) {
					return printJSON(cmd, map[string]any{"dry_run": true, "calls": previews})
				}
				for _, p := range previews {
					p.Write(streams.Out)
				}
				return nil
			}

			var errOut io.Writer
			if progress {
				errOut = streams.ErrOut
			}
			results := runBatch(cmdContext(cmd), calls, concurrency, errOut,
				func(ctx context.Context, c batchCall) (any, error) {
					resp, err := client.Request(ctx, c.Method, token, c.Params)
					if err != nil {
						return nil, err
					}
					return resp.Value()
				})

			if collector != nil {
				if err := collector.WriteTextfile(metricsFile); err != nil {
					return fmt.Errorf("failed to write metrics: %w", err)
				}
			}

			if err := printBatchResults(cmd, results); err != nil {
				return err
			}
			if failed := countFailures(results); failed > 0 {
				return fmt.Errorf("%d of %d calls failed", failed, len(results))
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON lines file with calls (- for stdin)")
	cmd.Flags().Int64VarP(&concurrency, "concurrency", "c", DefaultConcurrency, "Maximum calls in flight")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	cmd.Flags().BoolVar(&progress, "progress", false, "Report progress on stderr")
	return cmd
}

// readBatchInput parses JSON lines from path (or in for "-"). Blank lines and
// lines starting with # are skipped.
func readBatchInput(path string, in io.Reader) ([]batchCall, error) {
	r := in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var calls []batchCall
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), validation.MaxJSONPayload)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var c batchCall
		if err := json.Unmarshal([]byte(text), &c); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", line, err)
		}
		if err := validation.ValidateMethodName(c.Method); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		calls = append(calls, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return calls, nil
}

// runBatch executes calls with bounded parallelism. Each result lands at the
// index of its call; calls skipped after cancellation report the context
// error.
func runBatch(
	ctx context.Context,
	calls []batchCall,
	concurrency int64,
	errOut io.Writer,
	operation func(ctx context.Context, c batchCall) (any, error),
) []BatchResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	sem := semaphore.NewWeighted(concurrency)
	results := make([]BatchResult, len(calls))
	total := len(calls)
	var done int64

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range calls {
		g.Go(func() error {
			results[i] = BatchResult{Index: i, Method: c.Method}

			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Error = api.StructuredErrorFromError(err)
				return nil
			}
			defer sem.Release(1)

			if err := ctx.Err(); err != nil {
				results[i].Error = api.StructuredErrorFromError(err)
				return nil
			}

			data, err := operation(ctx, c)
			if err != nil {
				results[i].Error = api.StructuredErrorFromError(err)
			} else {
				results[i].OK = true
				results[i].Response = data
			}

			if errOut != nil {
				current := atomic.AddInt64(&done, 1)
				_, _ = fmt.Fprintf(errOut, "\rProcessed %d/%d", current, total)
			}
			// individual failures never cancel the group
			return nil
		})
	}
	_ = g.Wait()

	if errOut != nil {
		_, _ = fmt.Fprintln(errOut)
	}
	return results
}

func countFailures(results []BatchResult) int {
	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}
	return failed
}

func printBatchResults(cmd *cobra.Command, results []BatchResult) error {
	f := newFormatter(cmd)
	if handled, err := f.Output(results); handled {
		return err
	}

	f.StartTable([]string{"#", "METHOD", "STATUS", "DETAIL"})
	for _, r := range results {
		status, detail := "ok", ""
		if r.OK {
			if b, err := json.Marshal(r.Response); err == nil {
				detail = truncate(string(b), 60)
			}
		} else {
			status = "error"
			if r.Error != nil {
				detail = truncate(r.Error.Error(), 60)
			}
		}
		f.Row(fmt.Sprint(r.Index), r.Method, status, detail)
	}
	return f.EndTable()
}
