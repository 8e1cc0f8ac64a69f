package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tirasundara/mt940-parser/internal/domain"
)

// ParserFactory builds a parser for a single file
type ParserFactory func() (domain.StatementParser, error)

// FileResult is the outcome of parsing one statement file
type FileResult struct {
	Path       string
	Statements []*domain.Statement
	Err        error
}

// StatementService orchestrates reading and parsing statement files
type StatementService struct {
	source    domain.StatementSource
	newParser ParserFactory
	logger    logrus.FieldLogger
}

// NewStatementService creates a new StatementService
func NewStatementService(
	source domain.StatementSource,
	newParser ParserFactory,
	logger logrus.FieldLogger,
) *StatementService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &StatementService{
		source:    source,
		newParser: newParser,
		logger:    logger,
	}
}

// ParseAll parses every file of the source in order. A file that fails is
// recorded in its FileResult and does not stop the remaining files.
func (s *StatementService) ParseAll() ([]FileResult, error) {
	files, err := s.source.Files()
	if err != nil {
		return nil, fmt.Errorf("listing statement files: %w", err)
	}

	results := make([]FileResult, 0, len(files))
	for _, path := range files {
		statements, err := s.parseFile(path)
		log := s.logger.WithField("file", path)
		if err != nil {
			log.WithError(err).Error("statement file rejected")
		} else {
			log.WithFields(logrus.Fields{
				"statements": len(statements),
				"turnover":   turnover(statements).String(),
			}).Info("statement file parsed")
		}

		results = append(results, FileResult{
			Path:       path,
			Statements: statements,
			Err:        err,
		})
	}

	return results, nil
}

func (s *StatementService) parseFile(path string) ([]*domain.Statement, error) {
	lines, err := s.source.ReadLines(path)
	if err != nil {
		return nil, err
	}

	// Builder state belongs to a parser, so every file gets its own.
	parser, err := s.newParser()
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}

	statements, err := parser.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return statements, nil
}

// Statements collects the statements of all successfully parsed files
func Statements(results []FileResult) []*domain.Statement {
	var all []*domain.Statement
	for _, r := range results {
		if r.Err == nil {
			all = append(all, r.Statements...)
		}
	}
	return all
}

// Failed counts the files that could not be parsed
func Failed(results []FileResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func turnover(statements []*domain.Statement) decimal.Decimal {
	total := decimal.Zero
	for _, st := range statements {
		total = total.Add(st.Turnover())
	}
	return total
}
