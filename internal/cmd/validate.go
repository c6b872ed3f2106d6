package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/scoring"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog.yaml>",
		Short: "Validate a catalog file and scoring profile",
		Long: `Validate a YAML catalog file without running the questionnaire.

Checks item ids, texts, categories, and the safety item, then checks
the selected scoring profile and prints any threshold warnings.

Examples:
  wellscreen validate bateria.yaml
  wellscreen validate bateria.yaml --profile extended-4`,
		Args: cobra.ExactArgs(1),
		RunE: validateCommand,
	}

	cmd.Flags().String("profile", "baseline-3", "Scoring profile to validate against")

	return cmd
}

// validateCommand implements the validate command logic
func validateCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cat, err := catalog.Load(args[0])
	if err != nil {
		return err
	}

	profileName, _ := cmd.Flags().GetString("profile")
	profile, err := scoring.ProfileByName(profileName)
	if err != nil {
		return err
	}
	warnings, err := profile.Validate()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Catalog OK: %d items in %d categories, safety item %d\n",
		cat.NumMain(), len(catalog.Categories), cat.Safety.ID)
	for _, c := range catalog.Categories {
		fmt.Fprintf(out, "  %-24s %d items\n", c.Label(), len(cat.ItemsInCategory(c)))
	}
	reversed := 0
	for _, it := range cat.Items {
		if it.Reversed {
			reversed++
		}
	}
	if reversed > 0 {
		fmt.Fprintf(out, "  %d reversed item(s)\n", reversed)
	}

	fmt.Fprintf(out, "Profile %s OK: scores 0-%d across %d tiers\n",
		profile.Name, cat.MaxScore(), len(profile.Bands))
	for _, w := range warnings {
		fmt.Fprintf(out, "  warning: %s\n", w)
	}

	return nil
}
