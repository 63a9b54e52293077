package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/constants"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

// NewCollectionsCommand creates the collections command group.
func NewCollectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"collection", "tc"},
		Short:   "Manage target collections",
		Long:    "Create, list, rename, delete, and generate target collections",
	}

	cmd.AddCommand(newCollectionsCreateCommand())
	cmd.AddCommand(newCollectionsListCommand())
	cmd.AddCommand(newCollectionsGetCommand())
	cmd.AddCommand(newCollectionsRenameCommand())
	cmd.AddCommand(newCollectionsDeleteCommand())
	cmd.AddCommand(newCollectionsGenerateCommand())

	return cmd
}

func newCollectionsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a target collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrCollectionNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			collection, err := client.TargetCollections().Create(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create target collection: %w", err)
			}

			return outputCollections([]crs.TargetCollection{*collection})
		},
	}
}

func newCollectionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List target collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			collections, err := client.TargetCollections().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list target collections: %w", err)
			}

			return outputCollections(collections)
		},
	}
}

func newCollectionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COLLECTION_ID",
		Short: "Show a target collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			collection, err := client.TargetCollections().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get target collection: %w", err)
			}

			return outputCollections([]crs.TargetCollection{*collection})
		},
	}
}

func newCollectionsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename COLLECTION_ID NAME",
		Short: "Rename a target collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			collection, err := client.TargetCollections().Rename(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to rename target collection: %w", err)
			}

			return outputCollections([]crs.TargetCollection{*collection})
		},
	}
}

func newCollectionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete COLLECTION_ID",
		Short: "Delete a target collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.TargetCollections().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete target collection: %w", err)
			}

			fmt.Printf("Target collection %s deleted\n", args[0])

			return nil
		},
	}
}

func newCollectionsGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate COLLECTION_ID",
		Short: "Generate the recognition database for a collection",
		Long: `Generate the recognition database for a target collection.

The server runs generation in the background; this command polls until the
server reports completion. Newly added targets become recognizable only
after generation has finished.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			status, err := client.TargetCollections().Generate(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to generate target collection: %w", err)
			}

			return outputStatus(status)
		},
	}
}

func outputCollections(collections []crs.TargetCollection) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(collections)
	case OutputFormatYAML:
		return outputYAML(collections)
	default:
		return outputCollectionsTable(collections)
	}
}

func outputCollectionsTable(collections []crs.TargetCollection) error {
	if len(collections) == 0 {
		_, _ = os.Stdout.WriteString("No target collections found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name")

	for _, collection := range collections {
		_ = table.Append(collection.ID, collection.Name)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputStatus(status *crs.OperationStatus) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatYAML:
		return outputYAML(status.Payload)
	default:
		return outputJSON(status.Payload)
	}
}
