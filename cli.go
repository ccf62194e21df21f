package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/match"
)

// --- analyze ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [cv-file]",
	Short: "Build a profile from a CV (PDF, DOCX or text; stdin when no file)",
	Long: `Build a profile from a CV: titles, directions, level, languages and
location. Skills are left empty; list candidates with the skills command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readCV(cmd, args)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), cv.Classify(text))
	},
}

// --- skills ---

var skillsCmd = &cobra.Command{
	Use:   "skills [cv-file]",
	Short: "List skill keywords found in a CV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readCV(cmd, args)
		if err != nil {
			return err
		}
		for _, s := range cv.ExtractSkills(text) {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

// --- match ---

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a job ad against a CV",
	Long: `Score a job ad against a CV and print the assessment.

Examples:
  go_jobcoach match --ad stelle.txt --cv lebenslauf.pdf
  go_jobcoach match --ad stelle.html --cv cv.docx --lang en --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		adPath, _ := cmd.Flags().GetString("ad")
		cvPath, _ := cmd.Flags().GetString("cv")
		langFlag, _ := cmd.Flags().GetString("lang")
		asJSON, _ := cmd.Flags().GetBool("json")

		if adPath == "" || cvPath == "" {
			return fmt.Errorf("--ad and --cv are required")
		}
		ad, err := os.ReadFile(adPath)
		if err != nil {
			return fmt.Errorf("reading ad: %w", err)
		}
		cvText, err := readCVFile(cvPath)
		if err != nil {
			return err
		}

		res := match.Analyze(jobs.AdText(string(ad)), cv.Classify(cvText), i18n.Parse(langFlag, i18n.DE), cvText)
		if asJSON {
			return printJSON(cmd.OutOrStdout(), res)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

func init() {
	matchCmd.Flags().String("ad", "", "job ad file (text or HTML)")
	matchCmd.Flags().String("cv", "", "CV file (PDF, DOCX or text)")
	matchCmd.Flags().String("lang", "de", "message language: de or en")
	matchCmd.Flags().Bool("json", false, "print the full result as JSON")
}

func readCV(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return readCVFile(args[0])
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("no CV text on stdin")
	}
	return string(data), nil
}

func readCVFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading cv: %w", err)
	}
	text, err := jobs.ExtractCVText("", path, data)
	if err != nil {
		return "", err
	}
	return text, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
