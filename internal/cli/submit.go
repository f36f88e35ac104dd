package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"arcade-roulette-service/internal/submissions"
)

func newSubmitCommand(e *env) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate and acknowledge a game submission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, file)
			if err != nil {
				return err
			}
			receipt, err := e.components().Intake.Submit(cmdContext(cmd), payload)
			var verr *submissions.ValidationError
			if errors.As(err, &verr) {
				printFieldErrors(cmd.ErrOrStderr(), verr.Fields)
				return err
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, color.GreenString(receipt.Message))
			fmt.Fprintf(out, "  %-12s %s\n", "receipt:", receipt.ID)
			fmt.Fprintf(out, "  %-12s %s\n", "title:", receipt.Title)
			fmt.Fprintf(out, "  %-12s %s / %s / %s\n", "kind:", receipt.Genre, receipt.Type, receipt.Platform)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON payload path, - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readPayload(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return data, nil
}

func printFieldErrors(w io.Writer, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %s\n", name+":", color.RedString(fields[name]))
	}
}
