package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/hitassert/packages/core/config"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new hitassert project",
	Long: `Initialize a new hitassert project in the current directory.

This creates:
  - hitassert.yaml - Configuration file
  - example.yaml   - Example case file
  - order.json     - Payload the example reads timestamps from

Examples:
  hitassert init
  hitassert init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

const exampleCases = `location: UTC
variables:
  launchDay: "2000-01-01"
cases:
  - name: created within the same minute
    subject: "2000-01-01T23:51:00Z"
    reference: "2000-01-01T23:51:42.5Z"
    check: equalIgnoringSeconds
    tags: [smoke]

  - name: one nanosecond across a minute boundary
    description: minute fields differ
    subject: "2000-01-01T23:51:00Z"
    reference: "2000-01-01T23:50:59.999999999Z"
    check: equalIgnoringSeconds
    expectFailure: true

  - name: order created on the first
    subject: { file: order.json, path: order.createdAt }
    reference: "{{launchDay}}"
    check: equalIgnoringHours
    tags: [smoke]

  - name: order shipped after creation
    subject: { file: order.json, path: order.shippedAt }
    reference: { file: order.json, path: order.createdAt }
    check: after

  - name: not delivered yet
    subject: { file: order.json, path: order.deliveredAt }
    reference: now()
    check: before
    expectFailure: true
`

const exampleOrder = `{
  "order": {
    "id": 42,
    "createdAt": "2000-01-01T23:51:00.123Z",
    "shippedAt": 946771200,
    "deliveredAt": null
  }
}
`

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, "hitassert.yaml")
	exampleFile := filepath.Join(cwd, "example.yaml")
	orderFile := filepath.Join(cwd, "order.json")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile, orderFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	if err := os.WriteFile(exampleFile, []byte(exampleCases), 0644); err != nil {
		return fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	if err := os.WriteFile(orderFile, []byte(exampleOrder), 0644); err != nil {
		return fmt.Errorf("failed to create payload file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", orderFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nhitassert project initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'hitassert run example.yaml' to evaluate the example cases.\n")

	return nil
}
