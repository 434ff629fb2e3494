package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *Handler) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List debt categories",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Debt categories:")
			fmt.Println("  - testing      : Missing or insufficient tests, low coverage")
			fmt.Println("  - security     : Vulnerabilities, hardcoded secrets, weak validation")
			fmt.Println("  - performance  : Bottlenecks, inefficient queries, memory issues")
			fmt.Println("  - architecture : Coupling, structure, design shortcomings")
			fmt.Println("  - docs         : Missing or outdated documentation")
			fmt.Println("  - code_quality : Smells, duplication, readability, style")
			fmt.Println("  - bugs         : Logic errors, edge cases, race conditions")
			fmt.Println("  - tooling      : Build, CI/CD, deployment, automation")
			fmt.Println("  - other        : Anything that matches no category")
		},
	}
}
