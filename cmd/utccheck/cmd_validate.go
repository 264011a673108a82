package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
	"github.com/Nikita1234567123/my-git-project/internal/cli"
	"github.com/Nikita1234567123/my-git-project/internal/timestamp"
)

// verdict is the outcome of validating one argument.
type verdict struct {
	Value  string `json:"value"`
	Valid  bool   `json:"valid"`
	Zone   string `json:"zone,omitempty"`
	Code   string `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`

	err error
}

// validateCmd checks each argument as a whole timestamp.
func validateCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "validate CANDIDATE...",
		Short: "Validate timestamps given as arguments",
		Long: `Validate each argument as a complete timestamp and print one verdict per
argument. Exits with status 1 if any argument is invalid.`,
		Example: `  utccheck validate 2024-02-29T00:00:00Z 2023-02-29T00:00:00Z
  utccheck validate --explain 2023-12-25T14:30:00+25:00`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verdicts := validateAll(args)

			w := cmd.OutOrStdout()
			if cli.Default().IsJSON() {
				if err := writeJSON(w, verdicts); err != nil {
					return err
				}
			} else {
				printVerdicts(w, verdicts, explain)
			}

			for _, v := range verdicts {
				if !v.Valid {
					return errReported
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, FlagDescExplain)
	return cmd
}

func validateAll(candidates []string) []verdict {
	out := make([]verdict, len(candidates))
	for i, c := range candidates {
		ts, err := timestamp.Parse(c)
		v := verdict{Value: c, Valid: err == nil, err: err}
		if err == nil {
			v.Zone = zoneName(ts.Zone)
		} else if ae, ok := err.(*alerr.Error); ok {
			v.Code = string(ae.GetCode())
			v.Reason = ae.GetMessage()
		}
		out[i] = v
	}
	return out
}

func zoneName(z timestamp.Zone) string {
	switch {
	case z.IsUTC():
		return "UTC"
	case z.IsOffset():
		return z.Designator
	}
	return ""
}

func printVerdicts(w io.Writer, verdicts []verdict, explain bool) {
	valid := 0
	for _, v := range verdicts {
		if v.Valid {
			valid++
			fmt.Fprintf(w, "%s %s  %s\n", cli.RenderVerdictBadge(true), v.Value, cli.Dim(v.Zone))
			continue
		}
		fmt.Fprintf(w, "%s %s  %s %s\n", cli.RenderVerdictBadge(false), v.Value, cli.RenderInfoBadge(v.Code), v.Reason)
		if explain {
			fmt.Fprint(w, cli.Explain("", 1, 1, v.Value, v.err))
		}
	}

	if len(verdicts) > 1 {
		status := cli.NewStatusLine()
		if valid > 0 {
			status.AddSuccess(fmt.Sprintf("%d valid", valid))
		}
		if invalid := len(verdicts) - valid; invalid > 0 {
			status.AddError(fmt.Sprintf("%d invalid", invalid))
		}
		fmt.Fprintln(w, status.String())
	}
}
