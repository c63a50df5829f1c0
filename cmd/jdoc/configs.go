package main

import (
	"io"
	"os"

	"github.com/signadot/jdoc/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=j aliases=json,strict desc='output valid json'"`
	Indent int  `cli:"name=indent desc='indent nested values by n spaces'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// useColor reports whether output to w is colored: always with -color,
// never with -color=false, and otherwise when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeStrict(cfg.Strict),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ObjectsConfig struct {
	*MainConfig

	Objects *cli.Command
}

type SameTypeConfig struct {
	*MainConfig

	SameType *cli.Command
}

type ShapeConfig struct {
	*MainConfig

	Shape *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Count bool `cli:"name=c aliases=count desc='print the number of selected objects'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Changes bool `cli:"name=changes desc='list structural changes'"`
	Merge   bool `cli:"name=merge desc='output a json merge patch'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}
