package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/depp/mkspritesheet/lib/atlas"
	"github.com/depp/mkspritesheet/lib/getpath"
	"github.com/depp/mkspritesheet/lib/rectpack"
)

type fileError struct {
	name string
	err  error
}

func (e *fileError) Error() string {
	return fmt.Sprintf("%q: %v", e.name, e.err)
}

func (e *fileError) Unwrap() error {
	return e.err
}

func newCommand() *cobra.Command {
	var flags flagValues
	cmd := &cobra.Command{
		Use:   "mkspritesheet [flags] <image>...",
		Short: "Mkspritesheet packs images into a single power-of-two sprite sheet.",
		Long: "Mkspritesheet trims transparent borders from each image, packs the images\n" +
			"into one PNG, and writes a JSON manifest giving the location of each image\n" +
			"in texture coordinates.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return run(&c, args, cmd.OutOrStdout())
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func run(c *config, args []string, out io.Writer) error {
	if c.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Collect inputs.
	names := args
	if c.InputsFrom != "" {
		list, err := readInputList(getpath.GetPath(c.InputsFrom))
		if err != nil {
			return err
		}
		names = append(names[:len(names):len(names)], list...)
	}
	inputs := make([]input, len(names))
	for i, n := range names {
		inputs[i] = input{name: n, path: getpath.GetPath(n)}
	}
	outPNG := getpath.GetPath(c.Output + ".png")
	outJSON := getpath.GetPath(c.Output + ".json")
	inputs, err := filterInputs(inputs, outPNG)
	if err != nil {
		return err
	}

	// Read and pack.
	sprites := make([]*atlas.Sprite, len(inputs))
	for i, in := range inputs {
		s, err := atlas.LoadSprite(in.path)
		if err != nil {
			return &fileError{in.name, err}
		}
		s.Name = in.name
		if s.Area() == 0 {
			logrus.WithField("file", in.name).Warn("image is completely transparent")
		}
		sprites[i] = s
	}
	a, err := atlas.Build(sprites, &rectpack.Options{
		MaxSize: c.MaxSize,
		Log:     logrus.StandardLogger(),
	})
	if err != nil {
		return err
	}

	// Write output.
	if err := a.Manifest.WriteFile(outJSON); err != nil {
		return err
	}
	if err := a.WritePNG(outPNG); err != nil {
		return err
	}
	sz := a.Size()
	_, err = fmt.Fprintf(out, "Size: %dx%d, fill: %f%%\n", sz.X, sz.Y, 100*a.Fill())
	return err
}

func main() {
	if err := newCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
