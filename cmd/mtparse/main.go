package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tirasundara/mt940-parser/internal/config"
	"github.com/tirasundara/mt940-parser/internal/domain"
	"github.com/tirasundara/mt940-parser/internal/profile"
	"github.com/tirasundara/mt940-parser/internal/report"
	"github.com/tirasundara/mt940-parser/internal/repository"
	"github.com/tirasundara/mt940-parser/internal/service"
	"github.com/tirasundara/mt940-parser/internal/swift"
)

func main() {
	// Amounts are emitted as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load(".env")

	// Command-line flags, defaulting to the environment
	var (
		inputPattern string
		profileName  string
		outputFormat string
		outputFile   string
		logLevel     string
		prettyPrint  bool
		ascii        bool
	)

	flag.StringVar(&inputPattern, "input", cfg.Input, "Glob pattern of statement files")
	flag.StringVar(&profileName, "profile", cfg.Profile, "Statement dialect: "+strings.Join(profile.Names(), ", "))
	flag.StringVar(&outputFormat, "format", cfg.Format, "Output format: json or yaml")
	flag.StringVar(&outputFile, "output", cfg.Output, "Path to output file (if empty, writes to stdout)")
	flag.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON output")
	flag.BoolVar(&ascii, "ascii", cfg.ASCII, "Strip diacritics from text attributes")

	flag.Parse()

	if inputPattern == "" {
		exitWithError("Input pattern is required")
	}

	logger, err := newLogger(logLevel, cfg.LogJSON)
	if err != nil {
		exitWithError(err.Error())
	}

	// Fail on an unknown profile before touching any file
	if _, err := profile.Lookup(profileName); err != nil {
		exitWithError(err.Error())
	}

	formatter, err := report.NewFormatter(outputFormat, prettyPrint)
	if err != nil {
		exitWithError(err.Error())
	}

	newParser := func() (domain.StatementParser, error) {
		p, err := profile.Lookup(profileName)
		if err != nil {
			return nil, err
		}
		return swift.NewParser(p, swift.WithLogger(logger.WithField("profile", p.Name)))
	}

	repo := repository.NewFileRepository(inputPattern)
	statementService := service.NewStatementService(repo, newParser, logger)

	results, err := statementService.ParseAll()
	if err != nil {
		exitWithError(fmt.Sprintf("Parsing failed: %v", err))
	}

	if len(results) == 0 {
		exitWithError(fmt.Sprintf("No statement files match %s", inputPattern))
	}

	statements := service.Statements(results)
	if ascii {
		report.Transliterate(statements)
	}

	output, err := formatter.Format(statements)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	// Output the result
	if outputFile != "" {
		// If no extension is provided, add the formatter's default extension
		if !strings.Contains(outputFile, ".") {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}

		err := os.WriteFile(outputFile, output, 0644)
		if err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}

	} else {

		// Write output to stdout
		fmt.Println(string(output))
	}

	printSummary(os.Stderr, results)

	if service.Failed(results) > 0 {
		os.Exit(2)
	}
}

func newLogger(level string, jsonFormat bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)
	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
