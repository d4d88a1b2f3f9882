package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Show the active code tables",
	Long: `Prints the method, stop-reason, and flag-token tables the parser
resolves SND codes against: the built-in GeoSuite defaults, or the CSV
tables from the configured table directory.`,
	RunE: runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

func runCodes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tables, err := loadTables(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "METHODS")
	fmt.Fprintln(w, "code\tname\tcolumns\tflags")
	for _, m := range tables.Methods() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.Code, m.Name,
			strings.Join(m.Columns, ","), strings.Join(m.Flags, ","))
	}

	fmt.Fprintln(w, "\nSTOP REASONS")
	fmt.Fprintln(w, "code\tname")
	for _, s := range tables.StopReasons() {
		fmt.Fprintf(w, "%d\t%s\n", s.Code, s.Name)
	}

	fmt.Fprintln(w, "\nFLAG TOKENS")
	fmt.Fprintln(w, "token\tflag\tvalue\tbedrock")
	for _, ft := range tables.AllFlagTokens() {
		fmt.Fprintf(w, "%s\t%s\t%g\t%t\n", ft.Token, ft.Flag, ft.Value, ft.Bedrock)
	}

	return w.Flush()
}
