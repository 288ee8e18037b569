package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var signinOpt struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "sign in and print a bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Token string `json:"token"`
		}

		if err := call(cmd, http.MethodPost, "/auth/signin", signinOpt, &resp); err != nil {
			return err
		}

		cmd.Println(resp.Token)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "sign out and disconnect any wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, http.MethodPost, "/auth/logout", nil, nil)
	},
}

func init() {
	rootCmd.AddCommand(signinCmd)
	rootCmd.AddCommand(logoutCmd)

	signinCmd.Flags().StringVar(&signinOpt.Email, "email", "", "email")
	signinCmd.Flags().StringVar(&signinOpt.Password, "password", "", "password")
}
