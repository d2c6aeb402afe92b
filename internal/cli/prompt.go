package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// promptYesNo asks a yes/no question on the shared input reader.
// Anything other than y/yes declines.
func promptYesNo(cmd *cobra.Command, in *bufio.Reader, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	answer, _ := in.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "y" || answer == "yes"
}

// promptLine reads a single trimmed line after printing the prompt.
// Callers that prompt more than once must reuse the same reader, or a
// buffered read-ahead would drop the later lines.
func promptLine(cmd *cobra.Command, in *bufio.Reader, prompt string) string {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

// parseSelection parses a comma-separated list of 1-based positions,
// keeping only values within [1, max]. Duplicates collapse to one.
func parseSelection(input string, max int) []int {
	seen := make(map[int]bool)
	var picked []int

	for _, part := range strings.Split(input, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > max || seen[n] {
			continue
		}
		seen[n] = true
		picked = append(picked, n)
	}
	return picked
}
