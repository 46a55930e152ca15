package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [password]",
		Short: "Prints the bcrypt hash of a password the policy accepts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.readInputs(args, "Password to hash: ")
			if err != nil {
				return err
			}
			if len(inputs) != 1 {
				return fmt.Errorf("hash expects exactly one password, got %d", len(inputs))
			}

			hash, err := a.service.Hash(cmd.Context(), inputs[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.io.Out, hash)
			return nil
		},
	}
}
