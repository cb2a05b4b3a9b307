package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/hitassert/packages/assert"
	"github.com/abdul-hamid-achik/hitassert/packages/builtin"
	"github.com/abdul-hamid-achik/hitassert/packages/cases"
	"github.com/abdul-hamid-achik/hitassert/packages/temporal"
)

var (
	ignoringFlag        string
	compareLocationFlag string
	compareNormalize    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <subject> <reference>",
	Short: "Compare two timestamps ignoring their finer fields",
	Long: `Compare two timestamps field by field, ignoring everything finer than
the --ignoring unit. Operands are RFC 3339 timestamps, zone-less timestamps
read in --location, builtin expressions such as "now()" or "null".

Examples:
  hitassert compare 2000-01-01T23:51:00Z 2000-01-01T23:51:42Z --ignoring seconds
  hitassert compare 2000-01-01T00:00:01Z 2000-01-01T00:00:00.999999999Z --ignoring nanos
  hitassert compare "now()" 2000-01-01T10:00:00 --ignoring hours --location Europe/Berlin`,
	Args: cobra.ExactArgs(2),
	RunE: compareCommand,
}

func init() {
	compareCmd.Flags().StringVar(&ignoringFlag, "ignoring", "none", "Finest unit to ignore: none, nanos, seconds, minutes, hours")
	compareCmd.Flags().StringVar(&compareLocationFlag, "location", getEnvString("HITASSERT_LOCATION", "UTC"), "Zone for timestamps without offset (env: HITASSERT_LOCATION)")
	compareCmd.Flags().BoolVar(&compareNormalize, "normalize-zone", false, "Compare fields in --location instead of each value's own zone")
}

// discardT satisfies assert.T for chains whose failures are collected.
type discardT struct{}

func (discardT) Errorf(string, ...any) {}
func (discardT) FailNow()              {}

func compareCommand(cmd *cobra.Command, args []string) error {
	g, err := temporal.ParseGranularity(ignoringFlag)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(compareLocationFlag)
	if err != nil {
		return fmt.Errorf("invalid location %q: %w", compareLocationFlag, err)
	}

	resolver := cases.NewResolver("", builtin.NewRegistry(builtin.WithLocation(loc)))
	subject, err := resolver.Resolve(cases.Value{Literal: args[0]})
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	reference, err := resolver.Resolve(cases.Value{Literal: args[1]})
	if err != nil {
		return fmt.Errorf("reference: %w", err)
	}

	var opts []assert.Option
	if compareNormalize {
		opts = append(opts, assert.WithCompareLocation(loc))
	}
	log.WithFields(logrus.Fields{
		"granularity": g.String(),
		"location":    loc.String(),
		"normalize":   compareNormalize,
	}).Debug("comparing")

	soft := assert.NewSoft(discardT{}, opts...)
	soft.TimePtr(subject).IsEqualAtGranularity(reference, g)

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	errs := soft.Errors()
	if len(errs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s same %s\n", green("✓"), g.Description())
		return nil
	}

	for _, e := range errs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", red("✗"), strings.TrimLeft(e.Error(), "\n"))
	}
	os.Exit(ExitTestFailure)
	return nil
}
