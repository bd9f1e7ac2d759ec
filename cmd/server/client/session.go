package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
)

var (
	ownerID    string
	fromBuild  string
	stars      int32
	animalType string
)

var createSessionCmd = &cobra.Command{
	Use:   "create-session",
	Short: "Start a configurator session",
	RunE:  runCreateSession,
}

var getSessionCmd = &cobra.Command{
	Use:   "get-session <session-id>",
	Short: "Show a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetSession,
}

var closeSessionCmd = &cobra.Command{
	Use:   "close-session <session-id>",
	Short: "Discard a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runCloseSession,
}

var setEquipmentCmd = &cobra.Command{
	Use:   "set-equipment <session-id> <slot> [item]",
	Short: "Equip an item, or clear the slot when no item is given",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runSetEquipment,
}

var setAnimalCmd = &cobra.Command{
	Use:   "set-animal <session-id> [name]",
	Short: "Set the companion, or clear it when no name is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSetAnimal,
}

var resetSessionCmd = &cobra.Command{
	Use:   "reset <session-id>",
	Short: "Empty every slot of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runResetSession,
}

var randomizeSessionCmd = &cobra.Command{
	Use:   "randomize <session-id>",
	Short: "Replace the build with a random one",
	Args:  cobra.ExactArgs(1),
	RunE:  runRandomizeSession,
}

func init() {
	createSessionCmd.Flags().StringVar(&ownerID, "owner", "", "Owner of the session (required)")
	createSessionCmd.Flags().StringVar(&fromBuild, "build", "", "Saved build to start from")
	_ = createSessionCmd.MarkFlagRequired("owner")

	setEquipmentCmd.Flags().Int32Var(&stars, "stars", 0, "Star level of the item")
	setAnimalCmd.Flags().StringVar(&animalType, "type", "dragon", "Companion type")
}

func runCreateSession(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateSession(ctx, &configuratorv1alpha1.CreateSessionRequest{
		OwnerId: ownerID,
		BuildId: fromBuild,
	})
	if err != nil {
		return err
	}

	printSession(cmd.OutOrStdout(), resp.Session)
	return nil
}

func runGetSession(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetSession(ctx, &configuratorv1alpha1.GetSessionRequest{SessionId: args[0]})
	if err != nil {
		return err
	}

	printSession(cmd.OutOrStdout(), resp.Session)
	return nil
}

func runCloseSession(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.CloseSession(ctx, &configuratorv1alpha1.CloseSessionRequest{SessionId: args[0]}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Session %s closed\n", args[0])
	return nil
}

func runSetEquipment(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &configuratorv1alpha1.SetEquipmentRequest{
		SessionId: args[0],
		Slot:      args[1],
		Stars:     stars,
	}
	if len(args) == 3 {
		req.Item = args[2]
	}

	resp, err := client.SetEquipment(ctx, req)
	if err != nil {
		return err
	}

	printSession(cmd.OutOrStdout(), resp.Session)
	return nil
}

func runSetAnimal(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &configuratorv1alpha1.SetAnimalRequest{SessionId: args[0]}
	if len(args) == 2 {
		req.Animal = &configuratorv1alpha1.Animal{Name: args[1], Type: animalType}
	}

	resp, err := client.SetAnimal(ctx, req)
	if err != nil {
		return err
	}

	printSession(cmd.OutOrStdout(), resp.Session)
	return nil
}

func runResetSession(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResetSession(ctx, &configuratorv1alpha1.ResetSessionRequest{SessionId: args[0]})
	if err != nil {
		return err
	}

	printSession(cmd.OutOrStdout(), resp.Session)
	return nil
}

func runRandomizeSession(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RandomizeSession(ctx, &configuratorv1alpha1.RandomizeSessionRequest{SessionId: args[0]})
	if err != nil {
		return err
	}

	printSession(cmd.OutOrStdout(), resp.Session)
	return nil
}
