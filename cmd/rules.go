package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the loaded exclusion rules",
	Long: `List every rule currently loaded from the rules file, in file order.

Additive rules ("day on") are marked; they restore trackable time on days
a recurring rule would otherwise exclude.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dump, _ := cmd.Flags().GetBool("dump")
		listRules(dump)
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().Bool("dump", false, "Print raw diagnostic lines instead of the formatted list")
}

// listRules prints the loaded rules, one per line
func listRules(dump bool) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}
	set, ok := loadRuleSet(cfg)
	if !ok {
		return
	}

	if len(set.Rules) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No rules defined")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Add one with 'offtime add exc monday \"<09:00:00\"'")
		return
	}

	if dump {
		for i := range set.Rules {
			_, _ = fmt.Fprint(deps.Stdout, set.Rules[i].Dump())
		}
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Rules (%d):\n", len(set.Rules))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	maxIndexWidth := len(fmt.Sprintf("%d", len(set.Rules)))
	for i := range set.Rules {
		rule := &set.Rules[i]
		marker := ""
		if rule.Additive() {
			marker = "  (additive)"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s%s\n", maxIndexWidth, i+1, rule.Serialize(), marker)
	}
}
