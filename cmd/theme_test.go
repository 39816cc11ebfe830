package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/CalcPad/internal/config"
)

func TestThemeNamesSortedAndSkipped(t *testing.T) {
	cfg := &config.Config{Themes: map[string]config.Theme{
		"solar":   config.DefaultTheme(),
		"default": config.DefaultTheme(),
		"mono":    config.DefaultTheme(),
	}}

	assert.Equal(t, []string{"default", "mono", "solar"}, themeNames(cfg, ""))
	assert.Equal(t, []string{"default", "solar"}, themeNames(cfg, "mono"))
}
