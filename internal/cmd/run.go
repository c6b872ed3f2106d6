package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imoreno/wellscreen/internal/display"
	"github.com/imoreno/wellscreen/internal/report"
	"github.com/imoreno/wellscreen/internal/result"
	"github.com/imoreno/wellscreen/internal/session"
	"github.com/imoreno/wellscreen/internal/sink"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the screening questionnaire interactively",
		Long: `Run the screening questionnaire in the terminal.

Each question is answered on a 0-3 scale (0 Nunca, 1 A veces,
2 Casi siempre, 3 Siempre). Answering moves to the next question;
[a] goes back, [s] moves forward over an already answered question,
and [q] aborts without submitting anything.

When name and email are provided the final result is submitted once
to the configured sink; without them submission is skipped.

Examples:
  wellscreen run
  wellscreen run --name "Ana Pérez" --email ana@example.com
  wellscreen run --profile extended-4 --report resultado.html
  wellscreen run --catalog bateria.yaml --sink-url https://example.com/sink`,
		Args: cobra.NoArgs,
		RunE: runCommand,
	}

	addEngineFlags(cmd)
	cmd.Flags().String("name", "", "Respondent name for the result submission")
	cmd.Flags().String("email", "", "Respondent email for the result submission")
	cmd.Flags().String("report", "", "Write the result as an HTML report to this path")

	return cmd
}

// runCommand implements the run command logic
func runCommand(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	reportPath, _ := cmd.Flags().GetString("report")
	identity := result.Identity{Name: name, Email: email}

	out := cmd.OutOrStdout()
	renderer := display.NewRenderer(out)
	s := session.New(eng.catalog)
	eng.log.Debugf("session %s started", s.ID())

	finished, err := questionLoop(s, renderer, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}
	if !finished {
		fmt.Fprintln(out, "\nCuestionario cancelado.")
		return nil
	}

	rec, err := result.Build(s, eng.profile)
	if err != nil {
		return err
	}
	renderer.Results(rec)

	dispatcher := sink.NewDispatcher(eng.submitter, eng.log)
	dispatcher.Dispatch(s, rec, identity, eng.cfg.UserAgent)

	if reportPath != "" {
		html, err := report.HTML(rec)
		if err != nil {
			return err
		}
		if err := os.WriteFile(reportPath, html, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(out, "\nInforme guardado en %s\n", reportPath)
	}

	// Flush the single submission attempt before the process exits.
	dispatcher.Wait()
	return nil
}

// questionLoop drives the session until completion or abort. It returns
// false when the respondent quit early.
func questionLoop(s *session.Session, renderer *display.Renderer, in io.Reader, out io.Writer) (bool, error) {
	scanner := bufio.NewScanner(in)

	for !s.Completed() {
		renderer.QuestionCard(s.Current(), s.CurrentAnswer())

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("failed to read input: %w", err)
			}
			// EOF: treat like quitting.
			return false, nil
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "q":
			return false, nil
		case "a":
			if err := s.Retreat(); err != nil {
				return false, err
			}
		case "s":
			if err := s.Advance(); err != nil {
				fmt.Fprintln(out, "Responde la pregunta antes de continuar.")
			}
		default:
			value, err := strconv.Atoi(input)
			if err != nil {
				fmt.Fprintln(out, "Entrada no válida. Usa 0-3, a, s o q.")
				continue
			}
			if err := s.Answer(value); err != nil {
				fmt.Fprintln(out, "Respuesta fuera de rango. Usa 0-3.")
				continue
			}
			if err := s.Advance(); err != nil {
				return false, err
			}
		}
	}

	return true, nil
}
