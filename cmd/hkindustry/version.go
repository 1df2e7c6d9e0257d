// cmd/hkindustry/version.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at build time:
//
//	go build -ldflags "-X main.version=1.2.0"
var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hkindustry version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hkindustry %s\n", version)
	},
}
