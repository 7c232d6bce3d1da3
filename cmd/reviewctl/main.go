// Command reviewctl holds the operator tasks of the review backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reviewctl",
		Short: "Operator tools for the HireReview backend",
	}

	rootCmd.AddCommand(createAdminCmd())
	rootCmd.AddCommand(cleanDBCmd())
	rootCmd.AddCommand(tailNotificationsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
