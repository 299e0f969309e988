package harness

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"
)

// OK reports whether every trial passed.
func (r Report) OK() bool {
	return len(r.Failures()) == 0
}

// Failures returns the failed trials in execution order.
func (r Report) Failures() []Trial {
	var out []Trial
	for _, t := range r.Trials {
		if t.Err != nil {
			out = append(out, t)
		}
	}

	return out
}

// Summaries aggregates elapsed times per worker count, ascending by workers.
// Timed-out trials count as failures and are left out of the timings.
func (r Report) Summaries() []Summary {
	byWorkers := make(map[int]*Summary)
	total := make(map[int]time.Duration)
	timed := make(map[int]int)
	for _, t := range r.Trials {
		s, ok := byWorkers[t.Workers]
		if !ok {
			s = &Summary{Workers: t.Workers}
			byWorkers[t.Workers] = s
		}
		s.Trials++
		if t.Err != nil {
			s.Failures++
		}
		if t.Elapsed == 0 {
			continue
		}
		if timed[t.Workers] == 0 || t.Elapsed < s.Min {
			s.Min = t.Elapsed
		}
		if t.Elapsed > s.Max {
			s.Max = t.Elapsed
		}
		total[t.Workers] += t.Elapsed
		timed[t.Workers]++
	}

	out := make([]Summary, 0, len(byWorkers))
	for w, s := range byWorkers {
		if n := timed[w]; n > 0 {
			s.Mean = total[w] / time.Duration(n)
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Workers < out[j].Workers })

	return out
}

// WriteTo prints one line per trial followed by the per-worker summary.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "WORKERS\tREPEAT\tELAPSED\tSHORTEST\tPEAK\tVISITED\tPRUNED\tRESULT")
	for _, t := range r.Trials {
		result := "ok"
		if t.Err != nil {
			result = t.Err.Error()
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
			t.Workers, t.Repeat, t.Elapsed, formatDistance(t), t.PeakConcurrency,
			t.Stats.Visited, t.Stats.Pruned, result)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "WORKERS\tTRIALS\tFAILURES\tMIN\tMEAN\tMAX")
	for _, s := range r.Summaries() {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\n", s.Workers, s.Trials, s.Failures, s.Min, s.Mean, s.Max)
	}
	err := tw.Flush()

	return cw.n, err
}

func formatDistance(t Trial) string {
	if !t.ExitFound {
		return "-"
	}

	return fmt.Sprintf("%g", t.Shortest)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
