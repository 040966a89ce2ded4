package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// newGenerateCmd creates the 'generate' command. It produces one password,
// prints it alongside its strength and records it in history.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password and record it in history",
		Long: `Generates a random password from the selected character classes.

Without class flags all four classes are enabled. Passing any of --upper,
--lower, --digits or --symbols restricts the pool to exactly the classes
given.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().IntP("length", "l", generator.DefaultLength, "password length")
	cmd.Flags().Bool("upper", false, "draw from uppercase letters")
	cmd.Flags().Bool("lower", false, "draw from lowercase letters")
	cmd.Flags().Bool("digits", false, "draw from digits")
	cmd.Flags().Bool("symbols", false, "draw from symbols")
	cmd.Flags().BoolP("copy", "c", false, "copy the password to the clipboard")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	length, _ := cmd.Flags().GetInt("length")
	upper, lower, digits, symbols := classSelection(cmd)

	req := model.GenerateRequest{
		Length:    length,
		Uppercase: &upper,
		Lowercase: &lower,
		Numbers:   &digits,
		Symbols:   &symbols,
	}

	resp, err := generatorService.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Print(renderGenerateResult(resp))

	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := clipboard.WriteAll(resp.Password); err != nil {
			// The password is already on screen, so a missing clipboard
			// is not worth failing the command over.
			slog.Warn("clipboard copy failed", "error", err)
		} else {
			fmt.Println("Copied to clipboard.")
		}
	}
	return nil
}

// classSelection resolves the four character class flags. When none of them
// was given every class is enabled; otherwise exactly the set flags count.
func classSelection(cmd *cobra.Command) (upper, lower, digits, symbols bool) {
	flags := cmd.Flags()
	if !flags.Changed("upper") && !flags.Changed("lower") && !flags.Changed("digits") && !flags.Changed("symbols") {
		return true, true, true, true
	}
	upper, _ = flags.GetBool("upper")
	lower, _ = flags.GetBool("lower")
	digits, _ = flags.GetBool("digits")
	symbols, _ = flags.GetBool("symbols")
	return upper, lower, digits, symbols
}

// newHistoryCmd creates the 'history' command.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List generated passwords, newest first",
		Long: `Lists the retained password history, newest first. The retention cap
trims the oldest records as new ones arrive.`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().IntP("limit", "n", 0, "show at most this many records (0 shows all retained)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	items, err := historyService.List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	fmt.Print(renderHistory(items))
	return nil
}

// newStatsCmd creates the 'stats' command.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics over the retained history",
		Long: `Shows summary statistics computed from the retained history: totals,
recent activity, averages and the strength distribution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := historyService.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("compute stats: %w", err)
			}
			fmt.Print(renderStats(stats))
			return nil
		},
	}
}

// newDeleteCmd creates the 'delete' command.
func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a single history record",
		Long:  `Deletes one history record by the id shown in 'passforge history'.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := historyService.Delete(cmd.Context(), id); err != nil {
				if errors.Is(err, service.ErrItemNotFound) {
					return fmt.Errorf("no history record with id %q", id)
				}
				return fmt.Errorf("delete history record: %w", err)
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

// newClearCmd creates the 'clear' command.
func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history records",
		Long:  `Deletes every retained history record. Asks for confirmation unless --yes is given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				answer := promptForConfirmation("This deletes all history records. Continue? [y/N] ")
				if answer != "y" && answer != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := historyService.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Println("History cleared.")
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	return cmd
}
