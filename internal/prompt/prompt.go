// Package prompt assembles the generation prompt from tracked file contents.
package prompt

import (
	"fmt"
	"strings"

	"readmegen/internal/files"
)

// SystemInstruction tells the model what to produce. It is prepended to
// every prompt.
const SystemInstruction = "You are a helpful developer relations assistant that reads the entire code base " +
	"and rewrites the README.md file to provide clear instructions, describe the package, " +
	"list dependencies, and usage examples. Please analyze the code and produce an updated " +
	"README that maintains a professional developer relations tone, does not use emojis, and " +
	"includes all necessary information for users to understand and use the package. Output " +
	"README.md ready for deployment to GitHub. DO NOT WRAP entire output in ```markdown``` " +
	"tags it's not necessary."

// Build concatenates the system instruction with one delimited section per
// tracked file. Callers must pass files already ordered by path; Build adds
// no ordering of its own. No truncation or token counting is applied.
func Build(tracked []files.TrackedFile) string {
	var b strings.Builder
	b.WriteString(SystemInstruction)
	b.WriteString("\n\nCodebase files:\n")
	for _, f := range tracked {
		fmt.Fprintf(&b, "--- %s ---\n%s\n\n", f.Path, f.Content)
	}
	return b.String()
}
