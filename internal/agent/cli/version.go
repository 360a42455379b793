package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCmd печатает сборку клиента и сервер, с которым он будет работать:
//
//	$ crudctl version
//	crudctl dev (built unknown, go1.25.5 linux/amd64)
//	server: http://localhost:3000
func NewVersionCmd(app *App, buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию клиента и адрес сервера",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "crudctl %s (built %s, %s %s/%s)\n",
				buildVersion, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "server: %s\n", app.ServerURL)
		},
	}
}
