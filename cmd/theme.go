package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/CalcPad/internal/config"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage keypad colour themes",
	Long:  `Manage the colour themes used to draw the display and keypad.`,
}

var listThemesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all themes",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Theme: %s\n\n", cfg.ActiveTheme)
		fmt.Println("Available Themes:")
		for _, name := range themeNames(cfg, "") {
			marker := ""
			if name == cfg.ActiveTheme {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
		}
	},
}

var showThemeCmd = &cobra.Command{
	Use:   "show [theme-name]",
	Short: "Show theme colours",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		themeName := args[0]
		theme, exists := cfg.Themes[themeName]
		if !exists {
			log.Fatalf("Theme '%s' does not exist", themeName)
		}

		fmt.Printf("Theme: %s\n", themeName)
		fmt.Printf("Digit: %s\n", theme.Digit)
		fmt.Printf("Operator: %s\n", theme.Operator)
		fmt.Printf("Function: %s\n", theme.Function)
		fmt.Printf("Display: %s\n", theme.Display)
		fmt.Printf("Accent: %s\n", theme.Accent)
	},
}

var addThemeCmd = &cobra.Command{
	Use:   "add [theme-name]",
	Short: "Add a new theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var themeName string
		if len(args) > 0 {
			themeName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Theme name",
			}
			themeName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Themes[themeName]; exists {
			log.Fatalf("Theme '%s' already exists", themeName)
		}

		theme, err := promptTheme(config.DefaultTheme())
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		cfg.Themes[themeName] = theme

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Theme '%s' added successfully!\n", themeName)
	},
}

var editThemeCmd = &cobra.Command{
	Use:   "edit [theme-name]",
	Short: "Edit an existing theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		themeName := themeArg(cfg, args, "Select theme to edit", "")
		theme, exists := cfg.Themes[themeName]
		if !exists {
			log.Fatalf("Theme '%s' does not exist", themeName)
		}

		theme, err = promptTheme(theme)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		cfg.Themes[themeName] = theme

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Theme '%s' updated successfully!\n", themeName)
	},
}

var deleteThemeCmd = &cobra.Command{
	Use:   "delete [theme-name]",
	Short: "Delete a theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		themeName := themeArg(cfg, args, "Select theme to delete", "")
		if _, exists := cfg.Themes[themeName]; !exists {
			log.Fatalf("Theme '%s' does not exist", themeName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete theme '%s'? (y/N)", themeName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		delete(cfg.Themes, themeName)

		if cfg.ActiveTheme == themeName {
			// Fall back to another theme, recreating the default if none is left
			if len(cfg.Themes) == 0 {
				cfg.Themes[config.DefaultThemeName] = config.DefaultTheme()
			}
			cfg.ActiveTheme = themeNames(cfg, "")[0]
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Theme '%s' deleted successfully!\n", themeName)
	},
}

var switchThemeCmd = &cobra.Command{
	Use:   "switch [theme-name]",
	Short: "Switch to a different theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if len(args) == 0 && len(themeNames(cfg, cfg.ActiveTheme)) == 0 {
			fmt.Println("No other themes available to switch to")
			return
		}

		themeName := themeArg(cfg, args, "Select theme to switch to", cfg.ActiveTheme)
		if err := cfg.Use(themeName); err != nil {
			log.Fatalf("%v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to theme '%s'\n", themeName)
	},
}

// themeNames lists theme names in order, leaving out skip
func themeNames(cfg *config.Config, skip string) []string {
	names := make([]string, 0, len(cfg.Themes))
	for name := range cfg.Themes {
		if name != skip {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// themeArg returns args[0] or lets the user pick a theme
func themeArg(cfg *config.Config, args []string, label, skip string) string {
	if len(args) > 0 {
		return args[0]
	}

	names := themeNames(cfg, skip)
	if len(names) == 0 {
		log.Fatalf("No themes available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return name
}

// promptTheme asks for every colour, offering base as the default
func promptTheme(base config.Theme) (config.Theme, error) {
	fields := []struct {
		label string
		value *string
	}{
		{"Digit colour", &base.Digit},
		{"Operator colour", &base.Operator},
		{"Function colour", &base.Function},
		{"Display colour", &base.Display},
		{"Accent colour", &base.Accent},
	}

	for _, f := range fields {
		prompt := promptui.Prompt{
			Label:   f.label,
			Default: *f.value,
		}
		v, err := prompt.Run()
		if err != nil {
			return config.Theme{}, err
		}
		*f.value = v
	}
	return base, nil
}

func init() {
	themeCmd.AddCommand(listThemesCmd)
	themeCmd.AddCommand(showThemeCmd)
	themeCmd.AddCommand(addThemeCmd)
	themeCmd.AddCommand(editThemeCmd)
	themeCmd.AddCommand(deleteThemeCmd)
	themeCmd.AddCommand(switchThemeCmd)
}
