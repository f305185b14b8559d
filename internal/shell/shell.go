// Package shell drives a widget from a line-oriented terminal session.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/render"
	"github.com/Belphemur/ShowFinder/internal/widget"
)

const prompt = "showfinder> "

const helpText = `Commands:
  search <term>   search the catalog and list matching shows
  episodes <n>    list the episodes of the n-th displayed show
  html            print the page as HTML
  help            show this help
  quit            leave the shell
`

// Shell reads commands from in and writes rendered pages to out.
type Shell struct {
	widget *widget.Widget
	in     io.Reader
	out    io.Writer
	html   bool
}

// New creates a shell around w. When html is true pages are printed as HTML.
func New(w *widget.Widget, in io.Reader, out io.Writer, html bool) *Shell {
	return &Shell{widget: w, in: in, out: out, html: html}
}

// Run processes commands until quit, end of input or ctx cancellation.
// Command failures are printed and do not stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	logger := config.GetLogger()
	scanner := bufio.NewScanner(s.in)

	for {
		if _, err := io.WriteString(s.out, prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			_, _ = io.WriteString(s.out, "\n")
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := s.exec(ctx, line)
		if err != nil {
			logger.Debug().Err(err).Str("line", line).Msg("Shell command failed")
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one command line. quit reports whether the session should end.
func (s *Shell) exec(ctx context.Context, line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		_, err = io.WriteString(s.out, helpText)
		return false, err
	case "html":
		return false, s.printHTML()
	case "search":
		if err := s.widget.Submit(ctx, arg); err != nil {
			_ = s.Print()
			return false, err
		}
		return false, s.Print()
	case "episodes":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return false, fmt.Errorf("episodes expects a show number from the list, got %q", arg)
		}
		if err := s.widget.ClickEpisodes(ctx, n-1); err != nil {
			_ = s.Print()
			return false, err
		}
		return false, s.Print()
	default:
		return false, fmt.Errorf("unknown command %q, type help for the list", cmd)
	}
}

// Print writes the current page to out, as text or HTML.
func (s *Shell) Print() error {
	if s.html {
		return s.printHTML()
	}
	return render.WriteText(s.out, s.widget.Page())
}

func (s *Shell) printHTML() error {
	html, err := s.widget.Page().HTML()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, html)
	return err
}
