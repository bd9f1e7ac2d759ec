package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
)

var buildName string

var saveBuildCmd = &cobra.Command{
	Use:   "save-build <session-id>",
	Short: "Save the build of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSaveBuild,
}

var loadBuildCmd = &cobra.Command{
	Use:   "load-build <session-id> <build-id>",
	Short: "Load a saved build into a session",
	Args:  cobra.ExactArgs(2),
	RunE:  runLoadBuild,
}

var listBuildsCmd = &cobra.Command{
	Use:   "list-builds",
	Short: "List the saved builds of an owner",
	RunE:  runListBuilds,
}

var deleteBuildCmd = &cobra.Command{
	Use:   "delete-build <build-id>",
	Short: "Delete a saved build",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteBuild,
}

func init() {
	saveBuildCmd.Flags().StringVar(&buildName, "name", "", "Name of the build")

	listBuildsCmd.Flags().StringVar(&ownerID, "owner", "", "Owner of the builds (required)")
	_ = listBuildsCmd.MarkFlagRequired("owner")

	deleteBuildCmd.Flags().StringVar(&ownerID, "owner", "", "Owner of the build (required)")
	_ = deleteBuildCmd.MarkFlagRequired("owner")
}

func runSaveBuild(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SaveBuild(ctx, &configuratorv1alpha1.SaveBuildRequest{
		SessionId: args[0],
		Name:      buildName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved build %s\n", resp.Build.Id)
	return nil
}

func runLoadBuild(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.LoadBuild(ctx, &configuratorv1alpha1.LoadBuildRequest{
		SessionId: args[0],
		BuildId:   args[1],
	})
	if err != nil {
		return err
	}

	printSession(cmd.OutOrStdout(), resp.Session)
	return nil
}

func runListBuilds(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListBuilds(ctx, &configuratorv1alpha1.ListBuildsRequest{OwnerId: ownerID})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Found %d builds\n", len(resp.Builds))
	for _, b := range resp.Builds {
		name := b.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(w, "  %s  %s  %d slots  updated %s\n",
			b.Id, name, len(b.Slots), time.Unix(b.UpdatedAt, 0).UTC().Format(time.RFC3339))
	}
	return nil
}

func runDeleteBuild(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteBuild(ctx, &configuratorv1alpha1.DeleteBuildRequest{
		OwnerId: ownerID,
		BuildId: args[0],
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted build %s\n", args[0])
	return nil
}
