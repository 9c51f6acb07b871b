package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/heartrisk/internal/predict"
	"github.com/abhisek/heartrisk/internal/result"
	"github.com/abhisek/heartrisk/internal/vitals"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Send one set of vitals and print the risk estimate",
	Example: `  heartrisk predict --age 54 --gender 1 --impulse 72 --highbp 130 \
    --lowbp 85 --glucose 110 --kcm 2.5 --troponin 0.01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := vitals.MapSource{}
		for _, f := range vitals.Fields {
			v, _ := cmd.Flags().GetString(string(f))
			src[f] = v
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctrl, endpoint, err := newController(cmd, st)
		if err != nil {
			return err
		}
		defer ctrl.Close()

		out, err := ctrl.Submit(cmd.Context(), src)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Endpoint:  %s\n", endpoint)
		fmt.Fprintln(w, strings.Repeat("─", 60))
		printResult(w, ctrl.State())

		if fail, ok := out.(predict.Failure); ok {
			return fmt.Errorf("prediction failed: %s", fail.Message)
		}

		if err := ctrl.Err(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		} else if chart := ctrl.Chart(); chart != nil {
			fmt.Fprintln(w)
			fmt.Fprintln(w, chart.View(60))
		}
		return nil
	},
}

func printResult(w io.Writer, st result.State) {
	fmt.Fprintln(w, st.ResultText)
	fmt.Fprintln(w, st.ProbabilityLine())
	for _, tip := range st.Tips {
		fmt.Fprintln(w, "  • "+tip)
	}
}

func init() {
	for _, f := range vitals.Fields {
		info := f.Info()
		predictCmd.Flags().String(string(f), "", fmt.Sprintf("%s (%s)", info.Label, info.Hint))
	}
}
