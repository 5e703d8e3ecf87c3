package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/dirpack/dirpack/internal/runner"
)

var validateCommand = &cli.Command{
	Name:  "validate",
	Usage: "Validate a backup profile file",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      "profile",
			UsageText: "The profile file to validate",
		},
	},
	Action: func(ctx context.Context, command *cli.Command) error {
		logger := getLogger(ctx)

		profilePath := command.StringArg("profile")
		if profilePath == "" {
			return fmt.Errorf("no profile file provided")
		}

		data, err := os.ReadFile(profilePath)
		if err != nil {
			return fmt.Errorf("failed to read profile '%s': %w", profilePath, err)
		}

		logger = logger.With(zap.String("profile", profilePath))
		logger.Debug("validating profile file")

		if _, err := runner.ParseProfile(data); err != nil {
			fmt.Println(formatValidationError(err))
			return fmt.Errorf("profile '%s' is invalid", profilePath)
		}

		fmt.Printf("✓ Profile '%s' is valid\n", profilePath)
		return nil
	},
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("profile has %d validation error(s):", len(validationErrs)))
		for _, fe := range validationErrs {
			sb.WriteString(fmt.Sprintf("\n  • %s: failed '%s' validation", fe.Namespace(), fe.Tag()))
			if fe.Param() != "" {
				sb.WriteString(fmt.Sprintf(" (param: %s)", fe.Param()))
			}
		}
		return errors.New(sb.String())
	}
	return err
}
