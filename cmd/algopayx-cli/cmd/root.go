/*
Copyright © 2024 pando
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "algopayx-cli",
	Short:        "command line client for the algopayx api",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	viper.SetEnvPrefix("algopayx")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().StringP("endpoint", "l", "http://localhost:8080", "api endpoint")
	rootCmd.PersistentFlags().String("token", "", "bearer token, see signin")
	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func getClient() *resty.Client {
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(viper.GetString("endpoint"), "/") + "/api").
		SetHeader("Content-Type", "application/json")

	if token := viper.GetString("token"); token != "" {
		c.SetAuthToken(token)
	}

	return c
}

// call sends body and decodes the response into out, mapping error
// envelopes to *apiError.
func call(cmd *cobra.Command, method, path string, body, out any) error {
	req := getClient().R().
		SetContext(cmd.Context()).
		SetError(&apiError{})

	if body != nil {
		req.SetBody(body)
	}

	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	if resp.IsError() {
		if e, ok := resp.Error().(*apiError); ok && e.Code != "" {
			return e
		}

		return fmt.Errorf("%s %s: %s", method, path, resp.Status())
	}

	return nil
}

func printJson(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	cmd.Println(string(b))
	return nil
}
