package config

import (
	"github.com/spf13/cobra"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage jira-scripts configuration",
	Long:  `Commands for managing your jira-scripts configuration, including setting values and viewing current settings.`,
}
