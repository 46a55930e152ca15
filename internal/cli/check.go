package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwalitptl/passcheck/pkg/metrics"
	"github.com/jwalitptl/passcheck/pkg/password"
)

var errNoInput = errors.New("no password provided")

func (a *app) newCheckCmd() *cobra.Command {
	var (
		stats  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Reports which password rule an input breaks",
		Long: fmt.Sprintf(`Checks each password against the policy: at least %d characters with a lowercase
letter, an uppercase letter, a digit and one of %s

The password is taken from the argument, a hidden prompt on a terminal, or one
per line from standard input. Exits 1 if any password is rejected.`,
			password.MinLength, password.SpecialCharacters),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.readInputs(args, "Password: ")
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return errNoInput
			}

			results, err := a.service.CheckAll(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			rejected := 0
			enc := json.NewEncoder(a.io.Out)
			for _, res := range results {
				if !res.Valid {
					rejected++
				}
				if asJSON {
					if err := enc.Encode(res); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(a.io.Out, "%s\t%s\n", res.Status, res.Message)
			}

			if stats {
				if err := a.printStats(); err != nil {
					return err
				}
			}

			if rejected > 0 {
				return ErrRejected
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "print per-status totals to stderr when done")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON result per line")
	return cmd
}

// printStats writes the per-status totals to ErrOut. It bypasses the logger so the
// summary shows at any log level.
func (a *app) printStats() error {
	totals, err := metrics.Snapshot(a.registry)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, int(totals[name]))
	}
	fmt.Fprintf(a.io.ErrOut, "totals: %s\n", strings.Join(parts, " "))
	return nil
}
