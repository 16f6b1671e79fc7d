// Package conversation turns typed input into recipe book commands.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
)

// KeywordParser matches user input to commands using keywords and simple patterns.
type KeywordParser struct {
	log    *logger.Logger
	browse []patternRule
	draft  []patternRule
	common []patternRule
}

type patternRule struct {
	regex   *regexp.Regexp
	command domain.CommandType
}

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.common = []patternRule{
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.CommandHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.CommandQuit},
		{regexp.MustCompile(`(?i)^(units|unit|u)$`), domain.CommandUnits},
		{regexp.MustCompile(`(?i)^(total|sum)$`), domain.CommandTotal},
	}
	p.browse = []patternRule{
		{regexp.MustCompile(`(?i)^(list|recipes|ls|l)$`), domain.CommandList},
		{regexp.MustCompile(`(?i)^(add|new|a)$`), domain.CommandAdd},
	}
	p.draft = []patternRule{
		{regexp.MustCompile(`(?i)^(save|done)$`), domain.CommandDraftSave},
		{regexp.MustCompile(`(?i)^(cancel|discard|back)$`), domain.CommandDraftCancel},
	}
	return p
}

var (
	showPattern = regexp.MustCompile(`(?i)^(?:show|view|open|select)\s+(\d+)$`)
	namePattern = regexp.MustCompile(`(?i)^name\s+(.+)$`)
	ingPattern  = regexp.MustCompile(`(?i)^(?:ing|ingredient|i)\s+(.+)$`)
)

// Parse converts user input into a command. The mode decides whether the
// add-recipe commands are in scope.
func (p *KeywordParser) Parse(ctx context.Context, input string, mode domain.Mode) (*domain.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Command{Type: domain.CommandUnknown}, nil
	}

	p.log.Debug("parsing input: %q (mode=%d)", trimmed, mode)

	if cmd := match(p.common, trimmed); cmd != nil {
		return cmd, nil
	}

	if mode == domain.ModeDraft {
		if cmd := match(p.draft, trimmed); cmd != nil {
			return cmd, nil
		}
		if m := namePattern.FindStringSubmatch(trimmed); m != nil {
			return &domain.Command{Type: domain.CommandDraftName, Args: []string{m[1]}}, nil
		}
		if m := ingPattern.FindStringSubmatch(trimmed); m != nil {
			if args, ok := splitIngredient(m[1]); ok {
				return &domain.Command{Type: domain.CommandDraftIngredient, Args: args}, nil
			}
		}
		p.log.Debug("no draft match, returning unknown command")
		return &domain.Command{Type: domain.CommandUnknown, Args: []string{trimmed}}, nil
	}

	// Recipe selection by number (e.g., "1", "12").
	if len(trimmed) <= 3 && isDigits(trimmed) {
		return &domain.Command{Type: domain.CommandShow, Args: []string{trimmed}}, nil
	}
	if m := showPattern.FindStringSubmatch(trimmed); m != nil {
		return &domain.Command{Type: domain.CommandShow, Args: []string{m[1]}}, nil
	}
	if cmd := match(p.browse, trimmed); cmd != nil {
		return cmd, nil
	}

	p.log.Debug("no match, returning unknown command")
	return &domain.Command{Type: domain.CommandUnknown, Args: []string{trimmed}}, nil
}

func match(rules []patternRule, input string) *domain.Command {
	for _, rule := range rules {
		if rule.regex.MatchString(input) {
			return &domain.Command{Type: rule.command}
		}
	}
	return nil
}

// splitIngredient splits "<name words...> <amount> <unit> <price>" into
// [name, amount, unit, price]. The name may contain spaces; the last
// three fields may not.
func splitIngredient(s string) ([]string, bool) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, false
	}
	n := len(fields)
	name := strings.Join(fields[:n-3], " ")
	return []string{name, fields[n-3], fields[n-2], fields[n-1]}, true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
