package main

import (
	"context"
	"fmt"

	"github.com/fadilmartias/interview-prep/internal/config"
	"github.com/fadilmartias/interview-prep/internal/repository"
	"github.com/fadilmartias/interview-prep/internal/service"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account in the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		dbConfig := config.LoadDBConfig()
		if !dbConfig.Enabled() {
			return fmt.Errorf("DB_HOST not set: accounts created here would be lost on exit")
		}
		users, err := repository.NewUsers(dbConfig, config.LoadAppConfig().IsProduction())
		if err != nil {
			return err
		}

		ok, err := service.NewCredentialService(users).Register(context.Background(), username, password)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("registration failed: username %q might already exist", username)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", username)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("username", "", "Username")
	registerCmd.Flags().String("password", "", "Password")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("password")
}
