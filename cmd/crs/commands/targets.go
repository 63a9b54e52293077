package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/constants"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

// NewTargetsCommand creates the targets command group.
func NewTargetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "targets",
		Aliases: []string{"target"},
		Short:   "Manage recognition targets",
		Long:    "Add, list, update, and delete recognition targets within a collection",
	}

	cmd.AddCommand(newTargetsAddCommand())
	cmd.AddCommand(newTargetsAddBatchCommand())
	cmd.AddCommand(newTargetsListCommand())
	cmd.AddCommand(newTargetsGetCommand())
	cmd.AddCommand(newTargetsUpdateCommand())
	cmd.AddCommand(newTargetsDeleteCommand())

	return cmd
}

// TargetAddOptions holds the options for adding a single target.
type TargetAddOptions struct {
	Name     string
	ImageURL string
	FromFile string
}

func newTargetsAddCommand() *cobra.Command {
	var opts TargetAddOptions

	cmd := &cobra.Command{
		Use:   "add COLLECTION_ID",
		Short: "Add a target to a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := buildTarget(opts)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.Targets().Create(context.Background(), args[0], target)
			if err != nil {
				return fmt.Errorf("failed to add target: %w", err)
			}

			return outputTargets([]crs.Target{created})
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "target name")
	cmd.Flags().StringVar(&opts.ImageURL, "image-url", "", "URL of the target image")
	cmd.Flags().StringVar(&opts.FromFile, "from-file", "", "JSON file holding the target properties")

	return cmd
}

func newTargetsAddBatchCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "add-batch COLLECTION_ID",
		Short: "Add a batch of targets to a collection",
		Long: `Add a batch of targets from a JSON file holding an array of target
property objects.

The server registers the batch in the background; this command polls until
the server reports completion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromFile == "" {
				return constants.ErrTargetFileRequired
			}

			targets, err := readTargetsFile(fromFile)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			status, err := client.Targets().CreateMany(context.Background(), args[0], targets)
			if err != nil {
				return fmt.Errorf("failed to add targets: %w", err)
			}

			return outputStatus(status)
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "JSON file holding an array of targets")

	return cmd
}

func newTargetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list COLLECTION_ID",
		Short: "List targets of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			targets, err := client.Targets().List(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list targets: %w", err)
			}

			return outputTargets(targets)
		},
	}
}

func newTargetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COLLECTION_ID TARGET_ID",
		Short: "Show a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			target, err := client.Targets().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get target: %w", err)
			}

			return outputTargets([]crs.Target{target})
		},
	}
}

func newTargetsUpdateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "update COLLECTION_ID TARGET_ID",
		Short: "Update a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromFile == "" {
				return constants.ErrTargetFileRequired
			}

			target, err := readTargetFile(fromFile)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			updated, err := client.Targets().Update(context.Background(), args[0], args[1], target)
			if err != nil {
				return fmt.Errorf("failed to update target: %w", err)
			}

			return outputTargets([]crs.Target{updated})
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "JSON file holding the target properties")

	return cmd
}

func newTargetsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete COLLECTION_ID TARGET_ID",
		Short: "Delete a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Targets().Delete(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete target: %w", err)
			}

			fmt.Printf("Target %s deleted\n", args[1])

			return nil
		},
	}
}

func buildTarget(opts TargetAddOptions) (crs.Target, error) {
	if opts.FromFile != "" {
		return readTargetFile(opts.FromFile)
	}

	target := crs.Target{}

	if opts.Name != "" {
		target["name"] = opts.Name
	}

	if opts.ImageURL != "" {
		target["imageUrl"] = opts.ImageURL
	}

	return target, nil
}

func readTargetFile(path string) (crs.Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading targets file: %w", err)
	}

	var target crs.Target

	err = json.Unmarshal(data, &target)
	if err != nil {
		return nil, fmt.Errorf("parsing targets file: %w", err)
	}

	return target, nil
}

func readTargetsFile(path string) ([]crs.Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading targets file: %w", err)
	}

	var targets []crs.Target

	err = json.Unmarshal(data, &targets)
	if err != nil {
		return nil, fmt.Errorf("parsing targets file: %w", err)
	}

	return targets, nil
}

func outputTargets(targets []crs.Target) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(targets)
	case OutputFormatYAML:
		return outputYAML(targets)
	default:
		return outputTargetsTable(targets)
	}
}

func outputTargetsTable(targets []crs.Target) error {
	if len(targets) == 0 {
		_, _ = os.Stdout.WriteString("No targets found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name")

	for _, target := range targets {
		_ = table.Append(target.ID(), target.Name())
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
