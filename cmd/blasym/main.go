// Command blasym resolves symbolic kernel-parameter tokens to the codes
// the CBLAS and LAPACK calling conventions expect. It is a debugging
// aid for wiring kernel bindings by hand:
//
//	$ blasym transpose complex_conjugate
//	complex_conjugate	cblas=113	lapack=C
//
//	$ blasym --lapack svd-job overwrite
//	O
//
// The literal arguments "true", "false", and "nil" are passed to the
// translators as boolean and absent values, matching what a dynamic
// binding layer would supply.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LynnColeArt/blasym"
)

type options struct {
	cblasOnly  bool
	lapackOnly bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:          "blasym",
		Short:        "Resolve symbolic kernel parameters to CBLAS/LAPACK codes",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&o.cblasOnly, "cblas", false, "print only the CBLAS enum magnitude")
	cmd.PersistentFlags().BoolVar(&o.lapackOnly, "lapack", false, "print only the LAPACK character code")

	cmd.AddCommand(
		newKindCommand(o, "transpose", "Transpose mode: false, no_transpose, transpose, complex_conjugate",
			func(v any) (code, error) {
				t, err := blasym.ParseTranspose(v)
				if err != nil {
					return code{}, err
				}
				return code{name: t.String(), cblas: int(t.CBLAS()), lapack: t.LAPACK()}, nil
			}),
		newKindCommand(o, "side", "Operand side: left, right",
			func(v any) (code, error) {
				s, err := blasym.ParseSide(v)
				if err != nil {
					return code{}, err
				}
				return code{name: s.String(), cblas: int(s.CBLAS())}, nil
			}),
		newKindCommand(o, "uplo", "Triangular region: upper, lower",
			func(v any) (code, error) {
				u, err := blasym.ParseUplo(v)
				if err != nil {
					return code{}, err
				}
				return code{name: u.String(), cblas: int(u.CBLAS()), lapack: u.LAPACK()}, nil
			}),
		newKindCommand(o, "diag", "Unit diagonal: unit, true; anything else means nonunit",
			func(v any) (code, error) {
				d := blasym.ParseDiag(v)
				return code{name: d.String(), cblas: int(d.CBLAS())}, nil
			}),
		newKindCommand(o, "order", "Storage order: row, row_major, col, col_major, column, column_major",
			func(v any) (code, error) {
				ord, err := blasym.ParseOrder(v)
				if err != nil {
					return code{}, err
				}
				return code{name: ord.String(), cblas: int(ord.CBLAS())}, nil
			}),
		newKindCommand(o, "svd-job", "SVD job mode: all/a, return/s, overwrite/o, none/n",
			func(v any) (code, error) {
				j, err := blasym.ParseSVDJob(v)
				if err != nil {
					return code{}, err
				}
				return code{name: j.String(), lapack: j.LAPACK()}, nil
			}),
		newKindCommand(o, "evd-job", "Eigenvector job mode: nil, false, n; anything else computes vectors",
			func(v any) (code, error) {
				j := blasym.ParseEVDJob(v)
				return code{name: j.String(), lapack: j.LAPACK()}, nil
			}),
	)
	return cmd
}

// code is one resolved token. A zero cblas or lapack field means the
// parameter kind has no mapping in that convention.
type code struct {
	name   string
	cblas  int
	lapack byte
}

func newKindCommand(o *options, use, short string, resolve func(any) (code, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TOKEN...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.cblasOnly && o.lapackOnly {
				return fmt.Errorf("--cblas and --lapack are mutually exclusive")
			}
			for _, arg := range args {
				c, err := resolve(looseValue(arg))
				if err != nil {
					return err
				}
				if err := printCode(cmd, o, c); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// looseValue maps the CLI spellings of non-token values onto what a
// dynamic caller would pass.
func looseValue(arg string) any {
	switch arg {
	case "true":
		return true
	case "false":
		return false
	case "nil", "":
		return nil
	}
	return arg
}

func printCode(cmd *cobra.Command, o *options, c code) error {
	out := cmd.OutOrStdout()
	switch {
	case o.cblasOnly:
		if c.cblas == 0 {
			return fmt.Errorf("%s has no CBLAS enum form", cmd.Name())
		}
		_, err := fmt.Fprintf(out, "%d\n", c.cblas)
		return err
	case o.lapackOnly:
		if c.lapack == 0 {
			return fmt.Errorf("%s has no LAPACK character form", cmd.Name())
		}
		_, err := fmt.Fprintf(out, "%c\n", c.lapack)
		return err
	}
	line := c.name
	if c.cblas != 0 {
		line += fmt.Sprintf("\tcblas=%d", c.cblas)
	}
	if c.lapack != 0 {
		line += fmt.Sprintf("\tlapack=%c", c.lapack)
	}
	_, err := fmt.Fprintln(out, line)
	return err
}
