package main

import (
	"os"

	"github.com/spf13/cobra"

	"bookstore/internal/interfaces/cli/migrate"
	"bookstore/internal/interfaces/cli/server"
)

// @title			Bookstore API
// @version		1.0
// @description	Online bookstore with VNPay checkout and order settlement.
// @BasePath		/api/v1
// @securityDefinitions.apikey	Bearer
// @in				header
// @name			Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "bookstore",
		Short: "Bookstore - online book shop with VNPay checkout",
		Long:  `Bookstore is an online book shop backend with cart management, VNPay hosted payments and order settlement.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
