package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"secret-santa-service/internal/assigner"
	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/infrastructure/nower"
	"secret-santa-service/internal/infrastructure/randomizer"
	"secret-santa-service/internal/logging"
	"secret-santa-service/internal/roster"
	"secret-santa-service/internal/service"
)

// DrawOptions флаги команды draw.
type DrawOptions struct {
	InputOptions
	Out  string
	Seed int64
}

// NewDrawCommand создаёт команду draw.
func NewDrawCommand() *cobra.Command {
	opts := &DrawOptions{}

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw assignments and write them as CSV",
		Long: `Draw Secret Santa assignments for the participants file.

Pairings from the prior round file are never repeated. The result goes to
stdout unless --out is set; when --out points to a directory the file is
named secret_santa_assignments_YYYYMMDD.csv.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rnd := randomizer.New()
			if cmd.Flags().Changed("seed") {
				rnd = randomizer.NewSeeded(opts.Seed)
			}
			return runDraw(cmd, opts, rnd)
		},
	}

	cmd.Flags().StringVarP(&opts.Participants, "participants", "p", "", "participants CSV (Employee_Name, Employee_EmailID)")
	cmd.Flags().StringVar(&opts.Prior, "prior", "", "prior round CSV (adds Secret_Child_Name, Secret_Child_EmailID)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file or directory (default stdout)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for a reproducible draw")
	_ = cmd.MarkFlagRequired("participants")

	return cmd
}

func runDraw(cmd *cobra.Command, opts *DrawOptions, rnd randomizer.Randomizer) error {
	ctx := logging.WithLogCommand(cmd.Context(), "draw")

	input, err := opts.load()
	if err != nil {
		return err
	}

	svc := service.New(assigner.New(rnd), nower.New())
	assignment, err := svc.Draw(ctx, input)
	if err != nil {
		return err
	}

	if opts.Out == "" {
		return roster.WriteAssignments(cmd.OutOrStdout(), assignment.Pairings)
	}

	path, err := writeAssignmentsFile(opts.Out, assignment)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "assignments written", "path", path)
	return nil
}

func writeAssignmentsFile(out string, assignment domain.Assignment) (string, error) {
	path := out
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		path = filepath.Join(out, roster.ExportFileName(assignment.GeneratedAt))
	}

	err := createFile(path, func(w io.Writer) error {
		return roster.WriteAssignments(w, assignment.Pairings)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// createFile пишет файл через write; при ошибке недописанный файл удаляется.
func createFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
