package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/conversation"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/display"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/engine"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
)

// screen is the part of the display the REPL writes to.
type screen interface {
	Println(a ...interface{})
	PrintReply(text string)
	PrintHeading(text string)
	PrintLine(text string)
	PrintHint(text string)
	PrintError(text string)
	PrintLines(lines []string)
	Quit()
}

var _ screen = (*display.UI)(nil)

// runInteractive starts the Bubble Tea REPL over the wired book. It
// returns when the user quits or ctx is cancelled.
func runInteractive(ctx context.Context, d *deps) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := &cliApp{
		book:     d.book,
		parser:   conversation.NewKeywordParser(d.log),
		log:      d.log,
		currency: d.cfg.Currency,
		loadErr:  d.store.LastLoadIssue(),
	}
	ui := display.NewUI(app.status, d.cfg.Currency)
	app.out = ui

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	go func() {
		ui.WaitReady()
		app.run(ctx, ui.InputChan())
		ui.Quit()
	}()

	// Bubble Tea owns the terminal until quit.
	err := ui.Run()
	cancel()
	if err != nil {
		d.log.Error("display: %v", err)
	}
	return err
}

type cliApp struct {
	book     *engine.Book
	parser   *conversation.KeywordParser
	out      screen
	log      *logger.Logger
	currency string
	loadErr  error

	draft    *engine.Draft // nil unless a recipe is being added
	drafting atomic.Bool
	quit     bool
}

// status feeds the display's status bar. Called from the UI goroutine.
func (a *cliApp) status() display.Status {
	return display.Status{
		Recipes:    a.book.Len(),
		GrandTotal: a.book.GrandTotal(),
		Drafting:   a.drafting.Load(),
	}
}

func (a *cliApp) mode() domain.Mode {
	if a.draft != nil {
		return domain.ModeDraft
	}
	return domain.ModeBrowse
}

func (a *cliApp) run(ctx context.Context, input <-chan string) {
	if a.loadErr != nil {
		a.out.PrintError(lineLoadIssue(a.loadErr))
	}
	a.out.PrintReply(lineWelcome())
	a.out.Println("")
	a.showRecipes()

	for !a.quit {
		var line string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case line, ok = <-input:
			if !ok {
				return
			}
		}

		a.handle(ctx, line)
	}
}

// handle parses one line of input and runs the command it names.
func (a *cliApp) handle(ctx context.Context, input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	cmd, err := a.parser.Parse(ctx, input, a.mode())
	if err != nil {
		a.log.Error("parsing input: %v", err)
		return
	}
	a.log.Debug("command: %s (args=%q)", cmd.Type, cmd.Args)

	switch cmd.Type {
	case domain.CommandHelp:
		a.showHelp()
	case domain.CommandQuit:
		a.exit()
	case domain.CommandUnits:
		a.out.PrintHint(lineUnits(domain.DefaultUnits))
	case domain.CommandTotal:
		a.showTotal()
	case domain.CommandList:
		a.showRecipes()
	case domain.CommandShow:
		a.showRecipe(cmd.Args[0])
	case domain.CommandAdd:
		a.startDraft()
	case domain.CommandDraftName:
		a.nameDraft(cmd.Args[0])
	case domain.CommandDraftIngredient:
		a.addIngredient(cmd.Args)
	case domain.CommandDraftSave:
		a.saveDraft(ctx)
	case domain.CommandDraftCancel:
		a.cancelDraft()
	default:
		a.out.PrintReply(lineUnknown(input))
		if a.draft != nil {
			a.out.PrintHint(lineDraftHint())
		}
	}
}

func (a *cliApp) showRecipes() {
	a.out.PrintLines(display.ListLines(a.book.Recipes(), a.currency))
}

func (a *cliApp) showRecipe(payload string) {
	n, err := strconv.Atoi(payload)
	if err != nil {
		a.out.PrintError(lineInvalidSelection(payload, a.book.Len()))
		return
	}
	r, err := a.book.At(n)
	if err != nil {
		a.out.PrintError(lineInvalidSelection(payload, a.book.Len()))
		return
	}
	a.out.PrintLines(display.DetailLines(r, a.currency))
}

func (a *cliApp) showTotal() {
	if a.draft != nil {
		a.out.PrintReply("Draft total: " + display.FormatPrice(a.draft.Total(), a.currency))
		return
	}
	a.out.PrintReply("All recipes: " + display.FormatPrice(a.book.GrandTotal(), a.currency))
}

func (a *cliApp) startDraft() {
	a.draft = a.book.NewDraft()
	a.drafting.Store(true)
	a.out.PrintReply(lineDraftStarted())
	a.out.PrintHint(lineUnits(domain.DefaultUnits))
}

func (a *cliApp) nameDraft(name string) {
	a.draft.Name = strings.TrimSpace(name)
	a.out.PrintReply(lineDraftNamed(a.draft.Name))
}

func (a *cliApp) addIngredient(args []string) {
	ing, err := a.draft.AddIngredient(args[0], args[1], args[2], args[3])
	if err != nil {
		a.out.PrintError(lineIngredientRejected(err))
		return
	}
	a.out.PrintReply(lineIngredientAdded(ing.Name, display.FormatPrice(a.draft.Total(), a.currency)))
	a.out.PrintLines(display.DraftLines(a.draft.Name, a.draft.Ingredients(), a.currency))
}

func (a *cliApp) saveDraft(ctx context.Context) {
	r, err := a.book.Add(ctx, a.draft)
	switch {
	case errors.Is(err, domain.ErrParse):
		a.out.PrintError(lineNeedName())
		return
	case err != nil:
		a.log.Error("saving recipe: %v", err)
		a.out.PrintError(lineSaveFailed(err))
		return
	}

	a.draft = nil
	a.drafting.Store(false)
	a.out.PrintReply(lineSaved(r.Name, display.FormatPrice(r.TotalPrice(), a.currency)))
	a.showRecipes()
}

func (a *cliApp) cancelDraft() {
	a.draft = nil
	a.drafting.Store(false)
	a.out.PrintReply(lineDraftCancelled())
}

func (a *cliApp) exit() {
	if a.draft != nil {
		a.cancelDraft()
	}
	a.out.PrintReply(lineBye())
	a.quit = true
	a.out.Quit()
}

func (a *cliApp) showHelp() {
	a.out.PrintHeading("Commands:")
	a.out.PrintLine("  list / ls          Show all recipes with their totals")
	a.out.PrintLine("  1, 2, show 3...    Show a recipe and its ingredients")
	a.out.PrintLine("  add / new          Start adding a recipe")
	a.out.PrintLine("  total              Show the total of all recipes (or of the draft)")
	a.out.PrintLine("  units              Show the usual units")
	a.out.PrintLine("  help               Show this message")
	a.out.PrintLine("  quit / exit        Leave")
	a.out.Println("")
	a.out.PrintHeading("While adding a recipe:")
	a.out.PrintLine("  name <name>                        Set the recipe name")
	a.out.PrintLine("  ing <name> <amount> <unit> <price> Add an ingredient")
	a.out.PrintLine("  save / done                        Save the recipe")
	a.out.PrintLine("  cancel / back                      Discard the draft")
}
