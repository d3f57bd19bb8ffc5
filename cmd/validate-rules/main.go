package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
)

/* validate-rules - Standalone CLI tool to validate rules.yaml
 * Usage: go run cmd/validate-rules/main.go [rules.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	rulesFile := "rules.yaml"
	if len(os.Args) > 1 {
		rulesFile = os.Args[1]
	}

	fmt.Printf("Validating rules file: %s\n", rulesFile)
	fmt.Println(strings.Repeat("-", 50))

	loader := rule.NewLoader(nil)
	if err := loader.Load(rulesFile); err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loaded := loader.List()
	fmt.Printf("VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d rule(s):\n", len(loaded))

	for i, r := range loaded {
		fmt.Printf("\n%d. Rule: %s\n", i+1, r.ID)
		fmt.Printf("   Tenant:     %s\n", r.TenantID)
		fmt.Printf("   Trigger:    %s\n", r.TriggerType)
		fmt.Printf("   Event type: %s\n", r.EventType())
		fmt.Printf("   Active:     %t\n", r.Active)
		if len(r.Condition) > 0 {
			condition, _ := r.Condition.Bytes()
			fmt.Printf("   Condition:  %s\n", condition)
		}
	}

	fmt.Printf("\nAll rules are valid!\n")
}
