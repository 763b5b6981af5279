package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Harshitk-cp/logos/internal/buildconfig"
	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/reasoning"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	seed       uint64
	tuningFile string
	asJSON     bool
	userID     string
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "logos",
		Short:         "Rule-based analysis of Spanish arguments",
		Version:       buildconfig.Version(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "seed for the reflective question (0 picks a random seed)")
	root.PersistentFlags().StringVar(&opts.tuningFile, "tuning", os.Getenv("TUNING_FILE"), "YAML file overriding heuristic weights")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")

	analyze := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyse one query and print the composed report",
		Long:  "Analyse one query. With no argument, or \"-\", the query is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := queryText(cmd, args)
			if err != nil {
				return err
			}
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			defer engine.Close()

			var qctx *domain.QueryContext
			if opts.userID != "" {
				qctx = &domain.QueryContext{UserID: opts.userID}
			}
			report := engine.ProcessQuery(text, qctx)
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Text)
			return err
		},
	}
	analyze.Flags().StringVar(&opts.userID, "user", "", "user id recorded with the query")

	diagnose := &cobra.Command{
		Use:   "diagnose [text]",
		Short: "Print the lightweight diagnosis of a query",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := queryText(cmd, args)
			if err != nil {
				return err
			}
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			defer engine.Close()

			d := engine.Diagnose(text)
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			w := cmd.OutOrStdout()
			if d.InputError != "" {
				_, err := fmt.Fprintf(w, "entrada no válida: %s\n", d.InputError)
				return err
			}
			fmt.Fprintf(w, "oración: %s\n", d.SentenceType)
			fmt.Fprintf(w, "estructura: %s\n", d.StructureType)
			fmt.Fprintf(w, "dominio: %s\n", d.Domain)
			fmt.Fprintf(w, "complejidad: %.2f (compleja: %t)\n", d.Complexity, d.IsComplex)
			fmt.Fprintf(w, "premisas: %d, conclusiones: %d\n", d.PremiseCount, d.ConclusionCount)
			_, err = fmt.Fprintf(w, "falacias: %s\n", strings.Join(d.FallacyIDs, ", "))
			return err
		},
	}

	stats := &cobra.Command{
		Use:   "stats [file]",
		Short: "Analyse one query per line and print the learning statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open queries: %w", err)
				}
				defer f.Close()
				src = f
			}
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			defer engine.Close()

			sc := bufio.NewScanner(src)
			sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
			for sc.Scan() {
				if line := strings.TrimSpace(sc.Text()); line != "" {
					engine.ProcessQuery(line, nil)
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read queries: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), engine.Statistics())
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildconfig.String())
			return err
		},
	}

	root.AddCommand(analyze, diagnose, stats, version)
	return root
}

func (o *options) engine() (*reasoning.Engine, error) {
	tuning, err := reasoning.LoadTuning(o.tuningFile)
	if err != nil {
		return nil, err
	}
	var rnd domain.RandomSource
	if o.seed != 0 {
		rnd = reasoning.NewKeyedSource(o.seed)
	}
	return reasoning.NewEngine(knowledge.Default(), rnd, zap.NewNop(), reasoning.WithTuning(tuning)), nil
}

func queryText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 1<<20))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(raw), "\n"), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
