package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/pimmytrousers/sbcheck/sbcheck"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitBadRequest = 2
)

func main() {
	// a missing .env is fine, the defaults cover everything
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {

	var verbose bool
	var to int
	var keyFile string

	fs := flag.NewFlagSet("sbcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&to, "t", 0, "set the connection timeout in seconds (0 leaves it to the transport)")
	fs.BoolVar(&verbose, "v", false, "print the request url and response size")
	fs.StringVar(&keyFile, "k", "", "file the api key is stored in (default "+sbcheck.DefaultKeyFile+")")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sbcheck [flags] <url>\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	if fs.NArg() < 1 || fs.Arg(0) == "" {
		fmt.Fprintln(stderr, color.Red.Sprintf("Error: %s.", sbcheck.ErrUsage))
		fs.Usage()
		return exitFailure
	}
	target := fs.Arg(0)

	cfg := sbcheck.ConfigFromEnv()
	if keyFile != "" {
		cfg.KeyFile = keyFile
	}

	key, err := sbcheck.LoadKey(cfg.KeyFile, stdin, stdout)
	if err != nil {
		fmt.Fprintln(stderr, color.Red.Sprintf("Something went wrong with the key file: %s", err))
		return exitFailure
	}

	client := sbcheck.New(to)

	res, err := sbcheck.Lookup(context.Background(), client, cfg, key, target)
	if err != nil {
		fmt.Fprintln(stderr, color.Red.Sprintf("Error: %s", err))
		return exitFailure
	}

	if verbose {
		fmt.Fprintln(stderr, color.Yellow.Sprintf("GET request performed correctly with URL: %s", sbcheck.Redact(res.URL, key)))
		fmt.Fprintln(stderr, color.Yellow.Sprintf("Response body: %d bytes", len(res.Body)))
	}

	return report(sbcheck.Interpret(res), target, verbose, stdout, stderr)
}

func report(v sbcheck.Verdict, target string, verbose bool, stdout, stderr io.Writer) int {

	switch v.Outcome {
	case sbcheck.OutcomeSafe, sbcheck.OutcomeFlagged:
		fmt.Fprintf(stdout, "%s\n\n", v.Message)
		line := fmt.Sprintf("The website %s seems to be %s.", target, v.Label)
		if v.Outcome == sbcheck.OutcomeSafe {
			fmt.Fprintln(stdout, color.Green.Sprint(line))
		} else {
			fmt.Fprintln(stdout, color.Red.Sprint(line))
		}
		return exitOK

	case sbcheck.OutcomeBadRequest:
		fmt.Fprintln(stderr, color.Red.Sprint(v.Message))
		if verbose && v.Detail != "" {
			fmt.Fprintln(stderr, color.Yellow.Sprintf("Service said: %s", v.Detail))
		}
		return exitBadRequest

	case sbcheck.OutcomeNoResponse:
		fmt.Fprintln(stderr, color.Red.Sprint(v.Message))
		return exitFailure

	default:
		fmt.Fprintln(stdout, v.Message)
		if verbose && v.Detail != "" {
			fmt.Fprintln(stderr, color.Yellow.Sprintf("Service said: %s", v.Detail))
		}
		return exitOK
	}
}
