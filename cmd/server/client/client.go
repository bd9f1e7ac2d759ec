// Package client provides commands that drive a running configurator server
package client

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the configurator server",
	Long:  `Client commands edit sessions, read stats and manage saved builds over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Session commands
	ClientCmd.AddCommand(createSessionCmd)
	ClientCmd.AddCommand(getSessionCmd)
	ClientCmd.AddCommand(closeSessionCmd)
	ClientCmd.AddCommand(setEquipmentCmd)
	ClientCmd.AddCommand(setAnimalCmd)
	ClientCmd.AddCommand(resetSessionCmd)
	ClientCmd.AddCommand(randomizeSessionCmd)

	// Evaluation commands
	ClientCmd.AddCommand(statsCmd)
	ClientCmd.AddCommand(recommendCmd)
	ClientCmd.AddCommand(listEquipmentCmd)

	// Comparison commands
	ClientCmd.AddCommand(compareAddCmd)
	ClientCmd.AddCommand(compareRemoveCmd)
	ClientCmd.AddCommand(compareRestoreCmd)
	ClientCmd.AddCommand(compareShowCmd)

	// Saved build commands
	ClientCmd.AddCommand(saveBuildCmd)
	ClientCmd.AddCommand(loadBuildCmd)
	ClientCmd.AddCommand(listBuildsCmd)
	ClientCmd.AddCommand(deleteBuildCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		configuratorv1alpha1.DialOption(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createConfiguratorClient creates a configurator service client
func createConfiguratorClient() (configuratorv1alpha1.ConfiguratorServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := configuratorv1alpha1.NewConfiguratorServiceClient(conn)
	return client, cleanup, nil
}

func printSession(w io.Writer, s *configuratorv1alpha1.Session) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "Session: %s\n", s.Id)
	fmt.Fprintf(w, "  Owner: %s\n", s.OwnerId)
	fmt.Fprintf(w, "  Key: %s\n", s.Key)
	for _, slot := range s.Slots {
		fmt.Fprintf(w, "  %-9s %s (%d)\n", slot.Slot+":", slot.Item, slot.Stars)
	}
	if s.Animal != nil {
		fmt.Fprintf(w, "  Animal: %s (%s)\n", s.Animal.Name, s.Animal.Type)
	}
	fmt.Fprintf(w, "  Comparison: %d/%d\n", s.ComparisonCount, s.ComparisonCapacity)
}
