package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/display"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/recipe"
)

func newListCmd(get func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recipes with their totals",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			d := get()
			printLines(c, display.ListLines(d.book.Recipes(), d.cfg.Currency))
			return nil
		},
	}
}

func newShowCmd(get func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show N",
		Short: "Show recipe N (as numbered by list) with its ingredients",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			d := get()
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe number %q", args[0])
			}
			r, err := d.book.At(n)
			if err != nil {
				return err
			}
			printLines(c, display.DetailLines(r, d.cfg.Currency))
			return nil
		},
	}
}

func newAddCmd(get func() *deps) *cobra.Command {
	var name string
	var ingredients []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe and save the book",
		Example: `  recipebook add --name "Es Teh" \
    --ingredient "Tea|2|pcs|1500" --ingredient "Sugar|2|tbsp|500"`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			d := get()
			draft := d.book.NewDraft()
			draft.Name = name
			for _, raw := range ingredients {
				parts := strings.Split(raw, "|")
				if len(parts) != 4 {
					return fmt.Errorf("ingredient %q: want name|amount|unit|price", raw)
				}
				if _, err := draft.AddIngredient(parts[0], parts[1], parts[2], parts[3]); err != nil {
					return fmt.Errorf("ingredient %q: %w", raw, err)
				}
			}
			r, err := d.book.Add(c.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "added %s (%s)\n", r.Name, display.FormatPrice(r.TotalPrice(), d.cfg.Currency))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "recipe name")
	cmd.Flags().StringArrayVar(&ingredients, "ingredient", nil, `ingredient as "name|amount|unit|price" (repeatable)`)
	return cmd
}

func newExportCmd(get func() *deps) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the saved recipes to stdout",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			d := get()
			codec := d.store.Codec()
			if to != "" {
				var err error
				if codec, err = recipe.CodecFor(to); err != nil {
					return err
				}
			}
			recipes, err := d.store.LoadStrict(c.Context())
			if err != nil {
				return err
			}
			data, err := codec.Encode(recipes)
			if err != nil {
				return err
			}
			_, err = c.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "output format: json or yaml (default: the storage format)")
	return cmd
}

func printLines(c *cobra.Command, lines []string) {
	out := c.OutOrStdout()
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
}
