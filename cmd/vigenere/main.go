package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"vigenere/pkg/config"
	"vigenere/pkg/log"
	"vigenere/pkg/vigenere"

	"github.com/urfave/cli/v2"
)

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "vigenere",
		Usage:     "encipher one line of stdin with a Vigenère keyword",
		UsageText: "vigenere <keyword>",
		// Every argument is the keyword candidate, including ones starting with '-'.
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		Action:          encipherCmd,
		// Exit codes are decided by run, not by the cli package.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func encipherCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		log.Debug().Int("args", c.NArg()).Msg("wrong argument count")
		return vigenere.ErrWrongArgumentCount
	}
	key, err := vigenere.ParseKeyword(c.Args().First())
	if err != nil {
		return err
	}

	message, err := vigenere.ReadMessage(c.App.Reader)
	if err != nil {
		return err
	}
	log.Debug().Int("keyword_len", len(key)).Int("message_len", len(message)).Msg("enciphering")

	return vigenere.NewTransformer(key).Encipher(c.App.Writer, message)
}

func setupLogging(stderr io.Writer) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "vigenere: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	if err := log.Init(stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(stderr, "vigenere: %v, using defaults\n", err)
		def := config.DefaultConfig()
		_ = log.Init(stderr, def.LogLevel, def.LogFormat)
	}
}

// run executes the program and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	setupLogging(stderr)

	err := newApp(stdin, stdout, stderr).Run(args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, vigenere.ErrWrongArgumentCount), errors.Is(err, vigenere.ErrInvalidKeywordCharacter):
		fmt.Fprintln(stdout, err)
		return 1
	default:
		log.Error().Err(err).Msg("encipher failed")
		return 1
	}
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
