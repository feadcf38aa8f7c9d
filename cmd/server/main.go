// Command server is the Café Delights API binary.
//
//	server          start the HTTP server
//	server seed     run the database seeders and exit
//	server route:list  print the registered routes
package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cafedelights/api/app/controllers"
	"github.com/cafedelights/api/app/routes"
	"github.com/cafedelights/api/internal/server"
	"github.com/cafedelights/api/pkg/router"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Café Delights storefront API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run the database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Seed()
	},
}

// route:list mounts the API with empty controllers; handlers are never
// invoked, only the route table is read.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		routes.RegisterAPI(r, routes.Deps{
			Accounts:  &controllers.AuthController{},
			Products:  &controllers.ProductController{},
			Orders:    &controllers.OrderController{},
			Reviews:   &controllers.ReviewController{},
			Dashboard: &controllers.DashboardController{},
		})

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(routeListCmd)
}
