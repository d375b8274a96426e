package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/overlaykit/scrollgate/internal/config"
	"github.com/overlaykit/scrollgate/internal/event"
	"github.com/overlaykit/scrollgate/internal/logging"
	"github.com/overlaykit/scrollgate/internal/scrolllock"
	"github.com/overlaykit/scrollgate/internal/surface"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Exercise every teardown ordering and report the transitions",
	Long: `Run N consumers against one in-memory page, closing them in every
possible order. For each ordering, verify that the page stays suspended
until the final consumer closes and that the original style comes back
exactly once. Transitions are written to the structured log.`,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().Int("holders", 0, "number of concurrent consumers (default from config)")
	_ = viper.BindPFlag("trace.holders", traceCmd.Flags().Lookup("holders"))
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	perms := permutations(cfg.Trace.Holders)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tSUSPENSIONS\tRESTORES\tRESULT")

	failures := 0
	for _, perm := range perms {
		result := runOrdering(perm, log)
		status := "ok"
		if !result.ok {
			status = "FAIL: " + result.reason
			failures++
		}
		fmt.Fprintf(w, "%v\t%d\t%d\t%s\n", perm, result.suspensions, result.restores, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d orderings, %d failures\n", len(perms), failures)
	if failures > 0 {
		return fmt.Errorf("%d orderings violated the restoration contract", failures)
	}
	return nil
}

type orderingResult struct {
	ok          bool
	reason      string
	suspensions int
	restores    int
}

// runOrdering acquires a lock with one handle per consumer, then closes the
// handles in the given order, checking the page style after each step.
func runOrdering(order []int, log *logging.Logger) orderingResult {
	bus := event.NewBus()
	res := orderingResult{ok: true}
	bus.Subscribe("lock.suspended", func(event.Event) { res.suspensions++ })
	bus.Subscribe("lock.restored", func(event.Event) { res.restores++ })

	reg := scrolllock.NewRegistry(bus, log)
	page := surface.NewPage("page", 120, 1)

	handles := make([]*scrolllock.Handle, len(order))
	for i := range handles {
		handles[i] = reg.Bind(page)
		handles[i].Acquire()
	}

	for step, idx := range order {
		handles[idx].Close()

		last := step == len(order)-1
		overflow := page.Overflow()
		if last && overflow != surface.DefaultOverflow {
			res.ok = false
			res.reason = fmt.Sprintf("overflow %q after last close", overflow)
		}
		if !last && overflow != scrolllock.OverflowHidden {
			res.ok = false
			res.reason = fmt.Sprintf("overflow %q with %d holders left", overflow, len(order)-step-1)
		}
	}

	if res.suspensions != 1 || res.restores != 1 {
		res.ok = false
		res.reason = fmt.Sprintf("%d suspensions, %d restores, want 1/1", res.suspensions, res.restores)
	}
	return res
}

// permutations returns every ordering of 0..n-1.
func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			perm := make([]int, n)
			copy(perm, base)
			out = append(out, perm)
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			recurse(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	recurse(0)
	return out
}
