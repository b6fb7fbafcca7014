package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//	@title			Campaign Backend API
//	@version		1.0
//	@description	Donation campaign inventory: products resolved by barcode, campaign contents and weight dashboards.

//	@contact.name	API Support
//	@contact.url	https://github.com/campaign/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "campaign-backend",
		Short:         "Campaign inventory backend",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary without a subcommand starts the server
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCommand(), newMigrateCommand(), newLookupCommand())
	return root
}
