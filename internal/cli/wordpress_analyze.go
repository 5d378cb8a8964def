package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/contentbridge/wpimport/internal/config"
	"github.com/contentbridge/wpimport/internal/markup"
	"github.com/contentbridge/wpimport/internal/wordpress"
)

// WordpressAnalyzeCommand reports tag and inline-style frequencies across
// the content of an export, without writing anything.
type WordpressAnalyzeCommand struct {
	XMLPath      string
	PageTypes    string
	PageStatuses string
}

func NewWordpressAnalyzeCommand() *WordpressAnalyzeCommand {
	return &WordpressAnalyzeCommand{}
}

func (cmd *WordpressAnalyzeCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()

	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	fs.StringVar(&cmd.XMLPath, "xml", "", "Path to the WordPress export XML file (required)")
	fs.StringVar(&cmd.PageTypes, "types", cfg.Import.PageTypes, "Comma-separated wp:post_type values to analyze")
	fs.StringVar(&cmd.PageStatuses, "statuses", cfg.Import.PageStatuses, "Comma-separated wp:status values to analyze")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s analyze -xml <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Scan the export's content and report which tags and inline styles a\n")
		fmt.Fprintf(os.Stderr, "full import will have to deal with. No database is touched.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.XMLPath == "" {
		return fmt.Errorf("required flag -xml not provided")
	}

	return nil
}

func (cmd *WordpressAnalyzeCommand) Run() error {
	stream, err := wordpress.Open(cmd.XMLPath)
	if err != nil {
		return err
	}
	defer stream.Close()

	analyzer := markup.NewHTMLAnalyzer()
	err = wordpress.AnalyzeHTML(
		stream,
		wordpress.DefaultMapping(),
		strings.Split(cmd.PageTypes, ","),
		strings.Split(cmd.PageStatuses, ","),
		analyzer,
	)
	if err != nil {
		return err
	}

	fmt.Print(analyzer.Report())
	return nil
}
