package conversation

import (
	"context"
	"reflect"
	"testing"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
)

func TestKeywordParserBrowse(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input    string
		wantType domain.CommandType
		wantArgs []string
	}{
		// List
		{"list", domain.CommandList, nil},
		{"recipes", domain.CommandList, nil},
		{"LS", domain.CommandList, nil},

		// Show by number
		{"1", domain.CommandShow, []string{"1"}},
		{"12", domain.CommandShow, []string{"12"}},
		{"show 3", domain.CommandShow, []string{"3"}},
		{"view  4", domain.CommandShow, []string{"4"}},

		// Add
		{"add", domain.CommandAdd, nil},
		{"new", domain.CommandAdd, nil},

		// Common
		{"total", domain.CommandTotal, nil},
		{"units", domain.CommandUnits, nil},
		{"help", domain.CommandHelp, nil},
		{"?", domain.CommandHelp, nil},
		{"quit", domain.CommandQuit, nil},
		{"q", domain.CommandQuit, nil},

		// Draft-only commands are not recognised while browsing.
		{"save", domain.CommandUnknown, []string{"save"}},
		{"ing Sugar 5 gr 1.0", domain.CommandUnknown, []string{"ing Sugar 5 gr 1.0"}},

		// Unknown
		{"flambé the cat", domain.CommandUnknown, []string{"flambé the cat"}},
		{"1234", domain.CommandUnknown, []string{"1234"}},
		{"", domain.CommandUnknown, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := parser.Parse(ctx, tt.input, domain.ModeBrowse)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, cmd.Type, tt.wantType)
			}
			if !reflect.DeepEqual(cmd.Args, tt.wantArgs) {
				t.Errorf("input=%q: got args %q, want %q", tt.input, cmd.Args, tt.wantArgs)
			}
		})
	}
}

func TestKeywordParserDraft(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input    string
		wantType domain.CommandType
		wantArgs []string
	}{
		{"name Nasi Goreng", domain.CommandDraftName, []string{"Nasi Goreng"}},
		{"ing Sugar 5 gr 1.0", domain.CommandDraftIngredient, []string{"Sugar", "5", "gr", "1.0"}},
		{"ingredient Palm sugar 2 tbsp 3500", domain.CommandDraftIngredient, []string{"Palm sugar", "2", "tbsp", "3500"}},
		{"i Egg abc pcs 1", domain.CommandDraftIngredient, []string{"Egg", "abc", "pcs", "1"}},
		{"ing Egg 2 pcs", domain.CommandUnknown, []string{"ing Egg 2 pcs"}},
		{"save", domain.CommandDraftSave, nil},
		{"done", domain.CommandDraftSave, nil},
		{"cancel", domain.CommandDraftCancel, nil},
		{"units", domain.CommandUnits, nil},
		{"total", domain.CommandTotal, nil},
		{"help", domain.CommandHelp, nil},

		// Browse commands are not available in the middle of a draft.
		{"list", domain.CommandUnknown, []string{"list"}},
		{"2", domain.CommandUnknown, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := parser.Parse(ctx, tt.input, domain.ModeDraft)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, cmd.Type, tt.wantType)
			}
			if !reflect.DeepEqual(cmd.Args, tt.wantArgs) {
				t.Errorf("input=%q: got args %q, want %q", tt.input, cmd.Args, tt.wantArgs)
			}
		})
	}
}
