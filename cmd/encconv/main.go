// Command encconv converts text between the character encodings
// registered in github.com/lifthrasiir/encoding.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lifthrasiir/encoding"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	fromLabel string
	toLabel   string
	onError   string
	verbose   bool

	log = logrus.New()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "encconv",
		Short: "Convert text between character encodings",
		Long: "encconv decodes standard input from one registered encoding and\n" +
			"re-encodes it into another, applying the chosen error-recovery\n" +
			"strategy to any byte sequence or character the codecs reject.",
		RunE: runConvert,
	}

	flags := root.Flags()
	flags.StringVar(&fromLabel, "from", "utf-8", "source encoding label")
	flags.StringVar(&toLabel, "to", "utf-8", "target encoding label")
	flags.StringVar(&onError, "on-error", "strict", "error recovery: strict, replace, ignore, ncr")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log conversion details to stderr")

	root.AddCommand(newListCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered encoding name",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range encoding.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func trapFor(name string) (encoding.Trap, error) {
	switch name {
	case "strict":
		return encoding.Strict{}, nil
	case "replace":
		return encoding.Replace{}, nil
	case "ignore":
		return encoding.Ignore{}, nil
	case "ncr":
		return encoding.NcrEscape{}, nil
	default:
		return nil, fmt.Errorf("encconv: unknown --on-error strategy %q", name)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	from, ok := encoding.Lookup(fromLabel)
	if !ok {
		return fmt.Errorf("encconv: unknown --from label %q", fromLabel)
	}
	to, ok := encoding.Lookup(toLabel)
	if !ok {
		return fmt.Errorf("encconv: unknown --to label %q", toLabel)
	}
	trap, err := trapFor(onError)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"from": from.Name, "to": to.Name, "on-error": onError}).
		Debug("starting conversion")

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("encconv: reading stdin: %w", err)
	}

	s, err := encoding.Decode(from.NewDecoder(), from.Name, trap, input)
	if err != nil {
		log.WithError(err).Error("decode failed")
		return err
	}
	out, err := encoding.Encode(to.NewEncoder(), to.Name, trap, s)
	if err != nil {
		log.WithError(err).Error("encode failed")
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
