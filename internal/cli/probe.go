package cli

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toolkit-labs/awtaccess/internal/accessor"
	"github.com/toolkit-labs/awtaccess/internal/toolkit"
)

var probeRace int

func init() {
	probeCmd.Flags().IntVar(&probeRace, "race", 0, "Fetch each kind from N goroutines at once on a fresh registry")
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:   "probe [kind...]",
	Short: "Force owner initialization and report which accessors bind",
	Long: `Build a registry wired to the toolkit owners, fetch each requested kind
(every kind when none is given) and report whether its accessor bound.

With --race N every kind is fetched by N goroutines released together on a
fresh registry. The report states whether all of them received the same
accessor and how many times the owner ran its initialization.`,
	RunE: runProbe,
}

// probeResult is one row of the probe report.
type probeResult struct {
	Kind            string `json:"kind" yaml:"kind"`
	Owner           string `json:"owner" yaml:"owner"`
	Resolution      string `json:"resolution" yaml:"resolution"`
	Bound           bool   `json:"bound" yaml:"bound"`
	Initializations int    `json:"initializations" yaml:"initializations"`
	Goroutines      int    `json:"goroutines,omitempty" yaml:"goroutines,omitempty"`
	SameAccessor    *bool  `json:"same_accessor,omitempty" yaml:"same_accessor,omitempty"`
}

func runProbe(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	if probeRace < 0 {
		return fmt.Errorf("--race must be positive, got %d", probeRace)
	}
	kinds, err := parseKinds(args)
	if err != nil {
		return err
	}

	var results []probeResult
	if probeRace > 0 {
		for _, k := range kinds {
			results = append(results, raceKind(k, probeRace))
		}
	} else {
		r := toolkit.NewRegistry(accessor.WithLogger(logger))
		for _, k := range kinds {
			_, ok := r.Lookup(k)
			results = append(results, newProbeResult(r, k, ok))
		}
	}

	switch format {
	case "json":
		err = writeJSON(cmd.OutOrStdout(), results)
	case "yaml":
		err = writeYAML(cmd.OutOrStdout(), results)
	default:
		err = writeProbeTable(cmd, results)
	}
	if err != nil {
		return err
	}
	return checkProbe(results)
}

func parseKinds(args []string) ([]accessor.Kind, error) {
	if len(args) == 0 {
		return accessor.Kinds(), nil
	}
	var kinds []accessor.Kind
	for _, arg := range args {
		k, ok := accessor.ParseKind(arg)
		if !ok {
			return nil, fmt.Errorf("unknown kind %q", arg)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func newProbeResult(r *accessor.Registry, k accessor.Kind, bound bool) probeResult {
	return probeResult{
		Kind:            k.String(),
		Owner:           k.OwnerName(),
		Resolution:      string(k.Resolution()),
		Bound:           bound,
		Initializations: r.Initializations(k),
	}
}

// raceKind releases n goroutines onto the first fetch of k.
func raceKind(k accessor.Kind, n int) probeResult {
	r := toolkit.NewRegistry(accessor.WithLogger(logger))

	got := make([]any, n)
	bound := make([]bool, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			got[i], bound[i] = r.Lookup(k)
		}(i)
	}
	close(start)
	wg.Wait()

	same := true
	for i := 1; i < n; i++ {
		if bound[i] != bound[0] || !sameAccessor(got[i], got[0]) {
			same = false
			break
		}
	}

	res := newProbeResult(r, k, bound[0])
	res.Goroutines = n
	res.SameAccessor = &same
	logger.Debug("probe race finished", "kind", k.String(), "goroutines", n, "same", same, "initializations", res.Initializations)
	return res
}

// sameAccessor compares accessor identity. Accessors of non-comparable
// dynamic types are never considered the same.
func sameAccessor(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// ownerCompiled reports whether the owner of k is part of this binary.
func ownerCompiled(k accessor.Kind) bool {
	if k.Resolution() != accessor.ResolveByName {
		return true
	}
	_, err := accessor.NewDirectory(toolkit.NamedOwners()...).Resolve(k.OwnerName())
	return err == nil
}

func writeProbeTable(cmd *cobra.Command, results []probeResult) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	racing := len(results) > 0 && results[0].SameAccessor != nil
	if racing {
		fmt.Fprintln(w, "KIND\tRESOLUTION\tSTATUS\tINITS\tGOROUTINES\tSAME")
	} else {
		fmt.Fprintln(w, "KIND\tRESOLUTION\tSTATUS\tINITS")
	}

	bound := 0
	for _, res := range results {
		status := "absent"
		if res.Bound {
			status = "bound"
			bound++
		}
		if racing {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%t\n", res.Kind, res.Resolution, status, res.Initializations, res.Goroutines, *res.SameAccessor)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", res.Kind, res.Resolution, status, res.Initializations)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d kinds bound.\n", bound, len(results))
	return nil
}

// checkProbe fails the command when a static owner left its slot empty, an
// owner ran more than once, or racing fetchers disagreed.
func checkProbe(results []probeResult) error {
	var problems []string
	for _, res := range results {
		if !res.Bound && res.Resolution == string(accessor.ResolveStatic) {
			problems = append(problems, res.Kind+": static owner did not install its accessor")
		}
		if res.Initializations > 1 {
			problems = append(problems, fmt.Sprintf("%s: owner initialized %d times", res.Kind, res.Initializations))
		}
		if res.SameAccessor != nil && !*res.SameAccessor {
			problems = append(problems, res.Kind+": goroutines observed different accessors")
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("probe failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
