package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runehealth/rune_backend/config"
	"github.com/runehealth/rune_backend/internal/engine"
	"github.com/runehealth/rune_backend/internal/intake"
)

// NewExtractCommand returns an interactive REPL over the extraction engine.
// Each stdin line is treated as one finalized utterance against an in-memory
// record; no server or store is involved.
func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run the field-extraction engine interactively",
		Long: `Read utterances from stdin, one per line, and print the assistant
reply after each. The patient record accumulates across lines and is
printed on exit. Useful for trying out extraction rules without any
infrastructure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			eng := engine.New(engine.Config{
				DateOrder:            engine.DateOrder(cfg.Intake.DateOrder),
				ExtraCities:          cfg.Intake.ExtraCities,
				ExtraSymptomKeywords: cfg.Intake.ExtraSymptomKeywords,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, engine.Greeting)
			fmt.Fprintln(out)

			var record intake.PatientRecord
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				res := eng.Extract(line, record)
				record = res.Record
				fmt.Fprintln(out, res.Narrative)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			fmt.Fprintln(out)
			printRecord(out, &record)
			return nil
		},
	}

	return cmd
}

func printRecord(out io.Writer, r *intake.PatientRecord) {
	fmt.Fprintln(out, "Final record:")
	fmt.Fprintf(out, "  name:          %s\n", r.Name)
	if r.Age > 0 {
		fmt.Fprintf(out, "  age:           %d\n", r.Age)
	} else {
		fmt.Fprintln(out, "  age:")
	}
	if !r.DateOfBirth.IsZero() {
		fmt.Fprintf(out, "  date of birth: %s\n", r.DateOfBirth.Format("2006-01-02"))
	} else {
		fmt.Fprintln(out, "  date of birth:")
	}
	fmt.Fprintf(out, "  gender:        %s\n", r.Gender)
	fmt.Fprintf(out, "  mobile:        %s\n", r.Mobile)
	fmt.Fprintf(out, "  address:       %s\n", r.Address)
	fmt.Fprintf(out, "  symptoms:      %s\n", r.Symptoms)
}
