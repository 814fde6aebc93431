package cli

import (
	"bufio"
	"fmt"

	"github.com/corpix/keypad/errors"
	"github.com/corpix/keypad/keypad"
	"github.com/corpix/keypad/log"
)

// WithDecodeTools adds "decode" which prints one decoded line per argument,
// or per line of standard input when there are no arguments.
func WithDecodeTools(d *keypad.Decoder) Option {
	return WithCommands(Commands{
		&Command{
			Name:      "decode",
			Aliases:   []string{"d"},
			Usage:     "Decode key presses",
			ArgsUsage: "[input...]",
			Action: func(ctx *Context) error {
				decode := func(input string) error {
					decoded := d.Decode(input)
					log.Debug().
						Str("input", input).
						Str("decoded", decoded).
						Msg("decoded")
					_, err := fmt.Fprintln(ctx.App.Writer, decoded)
					return err
				}

				if ctx.NArg() > 0 {
					for _, input := range ctx.Args().Slice() {
						if err := decode(input); err != nil {
							return err
						}
					}
					return nil
				}

				scanner := bufio.NewScanner(ctx.App.Reader)
				for scanner.Scan() {
					if err := decode(scanner.Text()); err != nil {
						return err
					}
				}
				if err := scanner.Err(); err != nil {
					return errors.Wrap(err, "failed to read input")
				}
				return nil
			},
		},
	})
}
