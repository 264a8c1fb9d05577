package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var emojiVersionClear bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persisted settings",
}

var emojiVersionCmd = &cobra.Command{
	Use:   "emoji-version [VERSION]",
	Short: "Show or set the emoji version ceiling",
	Long: `Show or set the emoji version ceiling.

Emoji newer than the ceiling are hidden from search. Without a ceiling every
emoji is shown. dataset.emoji_version in the config file takes precedence
over the stored value.

Examples:
  emicon settings emoji-version          # Show the stored ceiling
  emicon settings emoji-version 13.1     # Hide emoji newer than 13.1
  emicon settings emoji-version --clear  # Show every emoji`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEmojiVersion,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(emojiVersionCmd)
	emojiVersionCmd.Flags().BoolVar(&emojiVersionClear, "clear", false, "remove the stored ceiling")
}

func runEmojiVersion(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	t := app.Theme

	switch {
	case emojiVersionClear:
		if err := app.SettingsUC.ClearEmojiVersion(ctx); err != nil {
			return err
		}
		fmt.Println(t.SuccessStyle.Render("emoji version ceiling cleared"))
		return nil

	case len(args) == 1:
		if err := app.SettingsUC.SetEmojiVersion(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println(t.SuccessStyle.Render("emoji version ceiling set to " + args[0]))
		return nil
	}

	value, ok, err := app.SettingsUC.EmojiVersion(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(t.Subtle.Render("no ceiling (all versions)"))
		return nil
	}
	fmt.Println(value)
	if override := app.Config.Dataset.EmojiVersion; override != "" {
		fmt.Println(t.WarningStyle.Render("overridden by dataset.emoji_version = " + override))
	}
	return nil
}
