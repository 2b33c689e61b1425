package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/saulo-duarte/quiz-generator/internal/aiquiz"
	"github.com/saulo-duarte/quiz-generator/internal/auth"
	"github.com/saulo-duarte/quiz-generator/internal/config"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "quizctl",
		Usage: "generate quizzes and API tokens from the command line",
		Commands: []*cli.Command{
			generateCommand(),
			tokenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate a quiz and print it as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "topic", Aliases: []string{"t"}, Required: true},
			&cli.StringFlag{Name: "difficulty", Aliases: []string{"d"}, Value: aiquiz.DefaultDifficulty},
			&cli.IntFlag{Name: "num", Aliases: []string{"n"}, Value: aiquiz.DefaultNumQuestions},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			config.InitLogger(cfg.LogLevel, "text")

			quizzes, err := aiquiz.NewAIQuizContainer(c.Context, cfg)
			if err != nil {
				return err
			}

			quiz, err := quizzes.Service.GenerateQuiz(c.Context, aiquiz.QuizRequest{
				Topic:        c.String("topic"),
				Difficulty:   c.String("difficulty"),
				NumQuestions: c.Int("num"),
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(quiz)
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "mint a bearer token signed with JWT_SECRET",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Value: "quizctl"},
			&cli.StringFlag{Name: "role", Value: "user"},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			authenticator, err := auth.NewAuthenticator(cfg.JWTSecret)
			if err != nil {
				return fmt.Errorf("JWT_SECRET must be set to mint tokens: %w", err)
			}

			token, err := authenticator.Generate(c.String("subject"), c.String("role"), c.Duration("ttl"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, token)
			return err
		},
	}
}
