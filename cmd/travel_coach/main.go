// Package main provides the travel-coach CLI: a stateless conversation core
// for travel/leisure startup coaching driven by JSON turn requests.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "travel_coach",
	Short: "Travel/leisure startup coaching conversation core",
	Long:  "travel_coach routes each user turn to a travel/leisure segment, advances a scripted business interview, and governs the length of the outgoing payload. It keeps no state between requests; everything round-trips through params.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
