package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"booklens/backend/internal/config"
	"booklens/backend/internal/llm"
	"booklens/backend/internal/logging"
	"booklens/backend/internal/recommend"
	"booklens/backend/internal/recommend/response"
	"booklens/backend/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mode        string
	preferences string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "booklens",
	Short: "BookLens recommendation pipeline from the terminal",
	Long: `Runs the same query normalization and reply sanitization as the
HTTP service, for debugging prompts and model output.`,
	SilenceUsage: true,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [text]",
	Short: "Ask the configured model for book recommendations",
	Long: `Sends one query to the configured provider and prints the JSON envelope
the HTTP API would return.

Example:
  booklens recommend --mode genre "cozy mystery"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Starts the same server as cmd/server, configured from the environment
and .env.local.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Sanitize a raw model reply read from stdin",
	Args:  cobra.NoArgs,
	RunE:  runSanitize,
}

func init() {
	recommendCmd.Flags().StringVarP(&mode, "mode", "m", "topic", "query mode: topic, genre, description or similar")
	recommendCmd.Flags().StringVarP(&preferences, "preferences", "p", "", "additional preferences")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(sanitizeCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRecommend(cmd *cobra.Command, args []string) error {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		if logger, err = logging.New("development", "debug"); err != nil {
			return err
		}
		defer logger.Sync()
	}

	body, err := json.Marshal(map[string]string{
		"text":        strings.Join(args, " "),
		"mode":        mode,
		"preferences": preferences,
	})
	if err != nil {
		return err
	}

	q, err := recommend.ParseQuery(body)
	if err != nil {
		code, envelope := recommend.Envelope(nil, err)
		return printEnvelope(cmd.OutOrStdout(), code, envelope)
	}

	completer, err := llm.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	items, err := recommend.NewRecommender(completer, logger).Recommend(cmd.Context(), q)
	code, envelope := recommend.Envelope(items, err)
	return printEnvelope(cmd.OutOrStdout(), code, envelope)
}

func runServe(cmd *cobra.Command, _ []string) error {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(cfg.Env, level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("[INFO] Starting BookLens", zap.String("env", cfg.Env), zap.String("provider", cfg.Provider))
	return server.Run(cmd.Context(), cfg, logger)
}

func runSanitize(cmd *cobra.Command, _ []string) error {
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}

	result := response.Parse(string(raw))
	var parseErr error
	if !result.OK {
		parseErr = &recommend.MalformedReplyError{Raw: result.Cleaned}
	}
	code, envelope := recommend.Envelope(result.Items, parseErr)
	return printEnvelope(cmd.OutOrStdout(), code, envelope)
}

// printEnvelope writes the envelope and fails the command on non-2xx
func printEnvelope(w io.Writer, code int, envelope any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelope); err != nil {
		return err
	}
	if code >= 300 {
		return fmt.Errorf("status %d", code)
	}
	return nil
}
