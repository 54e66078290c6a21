package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modaltheory/honeray/modulation"
	"github.com/modaltheory/honeray/theory"
)

func runEvaluate(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	startKey, err := resolveLetter(reader, flagStartKey, "starting key")
	if err != nil {
		return err
	}
	startNote, err := resolveLetter(reader, flagStartNote, "starting note")
	if err != nil {
		return err
	}
	endKey, err := resolveLetter(reader, flagEndKey, "ending key")
	if err != nil {
		return err
	}
	endNote, err := resolveLetter(reader, flagEndNote, "ending note")
	if err != nil {
		return err
	}

	verdict, err := modulation.NewEvaluator().Evaluate(startKey, endKey, startNote, endNote)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(verdict)
	}

	printVerdict(cmd, verdict)
	return nil
}

// resolveLetter takes the flag value when one was given, otherwise prompts
// until the input is one of the 12 recognized letter names.
func resolveLetter(reader *bufio.Reader, flagValue, label string) (string, error) {
	if flagValue != "" {
		if _, err := theory.ParseLetter(flagValue); err != nil {
			return "", fmt.Errorf("%s: %w", label, err)
		}
		return flagValue, nil
	}

	for {
		fmt.Printf("Enter the %s (e.g. C#): ", label)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", label, err)
		}
		input := strings.TrimSpace(line)
		if _, err := theory.ParseLetter(input); err == nil {
			return input, nil
		}
		letters := theory.Letters()
		fmt.Printf("Unrecognized letter name %q, expected one of %s\n",
			input, strings.Join(letters[:], " "))
	}
}

func printVerdict(cmd *cobra.Command, v *modulation.Verdict) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, sectionStyle.Render("INPUTS"))
	fmt.Fprintf(out, "Old key           = %s\n", v.Query.StartKey)
	fmt.Fprintf(out, "Old key note      = %s\n", v.Query.StartNote)
	fmt.Fprintf(out, "New key           = %s\n", v.Query.EndKey)
	fmt.Fprintf(out, "New key note      = %s\n", v.Query.EndNote)

	fmt.Fprintln(out, sectionStyle.Render("RESULTS"))
	for i, ok := range v.Conditions() {
		fmt.Fprintf(out, "%-24s %t\n", modulation.ConditionNames[i]+":", ok)
	}

	fmt.Fprintln(out, sectionStyle.Render("CONCLUSION"))
	if v.Valid {
		fmt.Fprintln(out, "The modulation satisfies Honeray's criterion.")
	} else {
		fmt.Fprintln(out, "The modulation violates Honeray's criterion.")
	}
}
