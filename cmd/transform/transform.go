// Transform prices a single availability request document.
//
// Usage:
//
//	transform --input request.xml [--rules rules.yaml]
//	cat request.xml | transform
//	transform --example
package main

import (
	"fmt"
	"io"
	"os"

	"bitbucket.org/crgw/availability-pricer/internal/availability"
	"bitbucket.org/crgw/availability-pricer/internal/availability/ota"
	"bitbucket.org/crgw/availability-pricer/internal/identity"
	"bitbucket.org/crgw/availability-pricer/internal/rules"
	"bitbucket.org/crgw/availability-pricer/internal/tools/logger"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func readDocument(c *cli.Context, stdin io.Reader) (string, error) {
	if c.Bool("example") {
		return ota.Example, nil
	}

	input := c.String("input")
	if input == "-" {
		content, err := io.ReadAll(stdin)
		return string(content), err
	}

	content, err := os.ReadFile(input)
	return string(content), err
}

func newApp(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "transform",
		Usage:     "Price an XML availability request and print the JSON offer",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "-",
				Usage:   "Request document, - for stdin",
			},
			&cli.StringFlag{
				Name:    "rules",
				Usage:   "YAML rules file overriding the built-in rules",
				EnvVars: []string{"RULES_FILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "example",
				Usage: "Price the built-in example request instead of reading one",
			},
		},
		Action: func(c *cli.Context) error {
			log := logger.NewWithWriter(stderr, c.String("log-level"))

			pricingRules, err := rules.Load(c.String("rules"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("unable to load rules: %s", err), 2)
			}

			document, err := readDocument(c, stdin)
			if err != nil {
				return cli.Exit(fmt.Sprintf("unable to read request: %s", err), 2)
			}

			service := availability.NewService(
				availability.NewExtractor(pricingRules),
				availability.NewBuilder(pricingRules, availability.FixedNetPrice(pricingRules.NetPrice), identity.New()),
			)

			output, err := service.Process(document, log)
			fmt.Fprintln(stdout, output)

			if err != nil {
				return cli.Exit("", 1)
			}

			return nil
		},
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	app := newApp(stdin, stdout, stderr)
	app.ExitErrHandler = func(c *cli.Context, err error) {}

	err := app.Run(args)
	if err == nil {
		return 0
	}

	if exitErr, ok := err.(cli.ExitCoder); ok {
		if exitErr.Error() != "" {
			fmt.Fprintln(stderr, exitErr.Error())
		}
		return exitErr.ExitCode()
	}

	fmt.Fprintln(stderr, err)
	return 2
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
