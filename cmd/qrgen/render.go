package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/deppfellow/qrgen/internal/errs"
	"github.com/deppfellow/qrgen/internal/qr"
	"github.com/deppfellow/qrgen/internal/validation"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one QR code as SVG to stdout (or --out)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := qr.Input{}
		if cmd.Flags().Changed("text") {
			text, _ := cmd.Flags().GetString("text")
			in[qr.FieldText] = text
		}
		if cmd.Flags().Changed("size") {
			size, _ := cmd.Flags().GetInt("size")
			in[qr.FieldSize] = size
		}

		req, err := qr.Parse(in)
		if err != nil {
			detail, _ := json.Marshal(errs.ErrorResponse{Error: validation.HTTPError(err).Normalized()})
			return fmt.Errorf("invalid input: %s", detail)
		}

		svg, err := qr.NewSVGEncoder().Encode(req.Text, req.Width())
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			_, err = cmd.OutOrStdout().Write(svg)
			return err
		}
		return os.WriteFile(out, svg, 0o644)
	},
}

func init() {
	renderCmd.Flags().String("text", "", "text to encode (1-500 characters)")
	renderCmd.Flags().Int("size", qr.DefaultSize, "width and height in pixels (128-1024)")
	renderCmd.Flags().StringP("out", "o", "", "write the SVG to this file instead of stdout")
}
