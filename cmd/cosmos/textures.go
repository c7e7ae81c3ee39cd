package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/cosmos/catalog"
	"github.com/lixenwraith/cosmos/texture"
)

const (
	sheetColumns  = 3
	sheetPadding  = 8
	captionHeight = 18
)

var (
	sheetBackground = color.RGBA{2, 3, 10, 255}
	sheetCaption    = color.RGBA{230, 230, 230, 255}
)

func newTexturesCmd(opts *options) *cobra.Command {
	var (
		output string
		size   int
	)
	cmd := &cobra.Command{
		Use:   "textures",
		Short: "Synthesize every body texture into a captioned PNG sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("size") {
				cfg.Texture.Size = size
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			set, err := texture.LoadAll(cmd.Context(), catalog.Bodies(), cfg.TextureSize(), cfg.Simulation.Seed, nil)
			if err != nil {
				return err
			}
			if err := writeSheetFile(output, set); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d textures to %s\n", len(set), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "textures.png", "output PNG path")
	cmd.Flags().IntVar(&size, "size", 128, "texture edge in pixels")
	return cmd
}

func writeSheetFile(path string, set texture.Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	if err := writeSheet(f, set); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeSheet lays textures out in catalog order with the body name under each
func writeSheet(w io.Writer, set texture.Set) error {
	bodies := catalog.Bodies()
	tile := 0
	for _, b := range bodies {
		img := set[b.ID]
		if img == nil {
			return fmt.Errorf("sheet: missing texture for %s", b.Name)
		}
		tile = max(tile, img.Size())
	}

	rows := (len(bodies) + sheetColumns - 1) / sheetColumns
	cellW := tile + sheetPadding
	cellH := tile + captionHeight + sheetPadding
	sheet := image.NewRGBA(image.Rect(0, 0, sheetColumns*cellW+sheetPadding, rows*cellH+sheetPadding))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i, b := range bodies {
		x := sheetPadding + (i%sheetColumns)*cellW
		y := sheetPadding + (i/sheetColumns)*cellH

		src := set[b.ID].RGBA()
		draw.Draw(sheet, image.Rect(x, y, x+tile, y+tile), src, src.Bounds().Min, draw.Src)

		d := font.Drawer{
			Dst:  sheet,
			Src:  image.NewUniform(sheetCaption),
			Face: face,
		}
		textW := d.MeasureString(b.Name).Ceil()
		d.Dot = fixed.P(x+(tile-textW)/2, y+tile+face.Ascent+2)
		d.DrawString(b.Name)
	}

	if err := png.Encode(w, sheet); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	return nil
}
