package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowFinder/internal/client"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/render"
	"github.com/Belphemur/ShowFinder/internal/shell"
	"github.com/Belphemur/ShowFinder/internal/widget"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// newRootCommand builds the CLI. opts are applied to every widget it creates.
func newRootCommand(cfg *config.Config, opts ...widget.Option) *cobra.Command {
	var asHTML bool

	root := &cobra.Command{
		Use:          "showfinder",
		Short:        "Search a TV show catalog and browse episodes",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&asHTML, "html", false, "print the page as HTML instead of text")

	root.AddCommand(
		&cobra.Command{
			Use:   "search <term>",
			Short: "Search shows matching a term",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c := client.NewClient(cfg)
				defer c.Close()

				sh, w, err := newSession(c, cmd, asHTML, opts)
				if err != nil {
					return err
				}
				if err := w.Submit(cmd.Context(), strings.Join(args, " ")); err != nil {
					_ = sh.Print()
					return err
				}
				return sh.Print()
			},
		},
		&cobra.Command{
			Use:   "episodes <show-id>",
			Short: "List the episodes of a show by catalog ID",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				showID, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid show ID %q", args[0])
				}

				c := client.NewClient(cfg)
				defer c.Close()

				sh, w, err := newSession(c, cmd, asHTML, opts)
				if err != nil {
					return err
				}
				if err := w.ShowEpisodes(cmd.Context(), showID); err != nil {
					_ = sh.Print()
					return err
				}
				return sh.Print()
			},
		},
		&cobra.Command{
			Use:   "shell",
			Short: "Start an interactive session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c := client.NewClient(cfg)
				defer c.Close()

				page, err := render.NewPage()
				if err != nil {
					return err
				}
				w := widget.New(c, page, opts...)
				return shell.New(w, cmd.InOrStdin(), cmd.OutOrStdout(), asHTML).Run(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Displays the current showfinder version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)

	return root
}

// newSession builds a fresh page and widget whose output goes to the command's stdout.
func newSession(c client.Client, cmd *cobra.Command, asHTML bool, opts []widget.Option) (*shell.Shell, *widget.Widget, error) {
	page, err := render.NewPage()
	if err != nil {
		return nil, nil, err
	}
	w := widget.New(c, page, opts...)
	return shell.New(w, cmd.InOrStdin(), cmd.OutOrStdout(), asHTML), w, nil
}
