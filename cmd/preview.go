package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberquest/internal/problemgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated problems for a stage (no TUI)",
	Long: `Generate and interactively answer problems for a challenge stage.

This is a stateless developer tool. Useful for evaluating problem quality
and checking a seed. With --verify, problems are only validated and any
failure exits non-zero.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("stage", "", "Stage context: cipher, path or vault (required)")
	previewCmd.Flags().String("type", "", "Restrict to one problem type, e.g. division-pattern")
	previewCmd.Flags().Int("count", 5, "Number of problems to generate")
	previewCmd.Flags().Bool("verify", false, "Validate problems without prompting")
	_ = previewCmd.MarkFlagRequired("stage")
}

func runPreview(cmd *cobra.Command, args []string) error {
	stageVal, _ := cmd.Flags().GetString("stage")
	typeVal, _ := cmd.Flags().GetString("type")
	count, _ := cmd.Flags().GetInt("count")
	verify, _ := cmd.Flags().GetBool("verify")

	stage, err := problemgen.ParseStage(stageVal)
	if err != nil {
		return err
	}
	if count <= 0 {
		return fmt.Errorf("invalid count %d: must be positive", count)
	}

	var only *problemgen.ProblemType
	if typeVal != "" {
		t, err := problemgen.ParseProblemType(typeVal)
		if err != nil {
			return err
		}
		if !problemgen.IsEligible(stage, t) {
			return fmt.Errorf("problem type %s is not used in stage %s", t, stage)
		}
		only = &t
	}

	seed, seeded, err := resolveSeed(cmd)
	if err != nil {
		return fmt.Errorf("resolve seed: %w", err)
	}
	if !seeded {
		seed = randomSeed()
	}
	gen := problemgen.NewSeeded(seed)

	next := func() (*problemgen.Problem, error) {
		if only != nil {
			p := gen.GenerateType(*only)
			return p, gen.Validate(p)
		}
		return gen.GenerateChecked(stage)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Stage: %s (seed %d)\n", stage, seed)

	if verify {
		return verifyProblems(out, next, count)
	}
	return quizProblems(out, cmd.InOrStdin(), next, count)
}

// verifyProblems generates count problems and stops at the first one that
// fails validation.
func verifyProblems(out io.Writer, next func() (*problemgen.Problem, error), count int) error {
	for i := 1; i <= count; i++ {
		p, err := next()
		if err != nil {
			fmt.Fprintf(out, "✗ %d/%d %s: %s\n", i, count, p.Type, p.Prompt())
			return fmt.Errorf("problem %d failed validation: %w", i, err)
		}
	}
	fmt.Fprintf(out, "✓ %d problems passed validation\n", count)
	return nil
}

func quizProblems(out io.Writer, in io.Reader, next func() (*problemgen.Problem, error), count int) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Generating %d problems...\n\n", count)

	var correct int
	for i := 1; i <= count; i++ {
		p, err := next()
		if err != nil {
			fmt.Fprintf(out, "Problem %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Fprintf(out, "── Problem %d/%d: %s ──\n", i, count, p.Title)
		fmt.Fprintln(out, p.Prompt())
		for j, o := range p.Options {
			fmt.Fprintf(out, "  %d) %d\n", j+1, o)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprint(out, "(skipped)\n\n")
			continue
		}

		if checkPreviewAnswer(answer, p) {
			correct++
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %d\n", p.Answer)
		}

		if p.Explanation != "" {
			fmt.Fprintf(out, "Explanation: %s\n", p.Explanation)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, count)
	return nil
}

// checkPreviewAnswer grades a typed answer. On multiple choice problems
// 1 to len(Options) selects an option; any other number is taken as the
// value itself.
func checkPreviewAnswer(answer string, p *problemgen.Problem) bool {
	if p.IsMultipleChoice() {
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(p.Options) {
			return problemgen.CheckChoice(n-1, p)
		}
	}
	return problemgen.CheckAnswer(answer, p)
}

