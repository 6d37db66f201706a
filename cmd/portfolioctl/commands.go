package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vicdevman/portfolio-api/internal/bootstrap"
	"github.com/vicdevman/portfolio-api/internal/catalog"
	"github.com/vicdevman/portfolio-api/internal/chat/prompt"
)

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Print the assistant system prompt built from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := bootstrap.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prompt.Build(cat))
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Load a catalog file and report errors and warnings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := catalogPath
			if len(args) == 1 {
				path = args[0]
			}
			cat, err := bootstrap.LoadCatalog(path)
			if err != nil {
				return fmt.Errorf("invalid catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			warn := color.New(color.FgYellow)
			for _, w := range cat.Warnings() {
				warn.Fprintf(out, "warning: %s\n", w)
			}

			name := path
			if name == "" {
				name = "embedded catalog"
			}
			color.New(color.FgGreen).Fprintf(out, "ok: %s (%d projects, %d experiences, %d skills, %d skill categories)\n",
				name, len(cat.Projects()), len(cat.Experiences()), len(cat.Skills()), len(cat.SkillCategories()))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var category string
	var featured bool

	cmd := &cobra.Command{
		Use:       "list projects|experiences|skills",
		Short:     "List catalog records, optionally filtered",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"projects", "experiences", "skills"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := bootstrap.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			rows := listRows(cat, args[0], category, featured)
			out := cmd.OutOrStdout()
			id := color.New(color.FgCyan)
			for _, r := range rows {
				id.Fprintf(out, "%-22s", r[0])
				fmt.Fprintf(out, " %s  [%s]\n", r[1], r[2])
			}
			if len(rows) == 0 {
				fmt.Fprintln(out, "no matches")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only records tagged with this category")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured records (projects and skills)")
	return cmd
}

// listRows returns id, display name and tags for each matching record.
func listRows(cat *catalog.Catalog, kind, category string, featured bool) [][3]string {
	var rows [][3]string
	switch kind {
	case "projects":
		for _, p := range cat.Projects() {
			if (category != "" && !p.HasCategory(category)) || (featured && !p.Featured) {
				continue
			}
			rows = append(rows, [3]string{p.ID, p.Title, strings.Join(p.Category, ", ")})
		}
	case "experiences":
		for _, e := range cat.Experiences() {
			if category != "" && !e.HasCategory(category) {
				continue
			}
			rows = append(rows, [3]string{e.ID, e.Company + " (" + e.Date + ")", strings.Join(e.Category, ", ")})
		}
	case "skills":
		for _, s := range cat.Skills() {
			if (category != "" && !s.HasCategory(category)) || (featured && !s.Featured) {
				continue
			}
			rows = append(rows, [3]string{s.ID, s.Name, strings.Join(s.Category, ", ")})
		}
	}
	return rows
}
