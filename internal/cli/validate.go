package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secret-santa-service/internal/assigner"
	"secret-santa-service/internal/infrastructure/nower"
	"secret-santa-service/internal/infrastructure/randomizer"
	"secret-santa-service/internal/logging"
	"secret-santa-service/internal/service"
)

// NewValidateCommand создаёт команду validate.
func NewValidateCommand() *cobra.Command {
	opts := &InputOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check participants and prior round files without drawing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Participants, "participants", "p", "", "participants CSV (Employee_Name, Employee_EmailID)")
	cmd.Flags().StringVar(&opts.Prior, "prior", "", "prior round CSV")
	_ = cmd.MarkFlagRequired("participants")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *InputOptions) error {
	ctx := logging.WithLogCommand(cmd.Context(), "validate")

	input, err := opts.load()
	if err != nil {
		return err
	}
	svc := service.New(assigner.New(randomizer.New()), nower.New())
	if err := svc.Validate(ctx, input); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "participants: %d\n", len(input.Participants))
	fmt.Fprintf(out, "prior pairings: %d\n", len(input.Prior))
	for _, p := range input.Participants {
		fmt.Fprintf(out, "  %s <%s>\n", p.Name, p.ID)
	}
	return nil
}
