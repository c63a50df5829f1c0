package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Changes && cfg.Merge {
		return fmt.Errorf("%w: only one of -changes, -merge may be specified", cli.ErrUsage)
	}
	a, err := readOneDoc(cc, args[0])
	if err != nil {
		return err
	}
	b, err := readOneDoc(cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	differs, err := diffDocs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func readOneDoc(cc *cli.Context, path string) (*ir.Node, error) {
	docs, err := readDocs(cc, path)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("%s has %d documents, expected 1", path, len(docs))
	}
	return docs[0], nil
}

// diffDocs writes the differences from a to b and reports whether there
// are any.
func diffDocs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	switch {
	case cfg.Merge:
		patch, err := libdiff.MergePatch(a, b)
		if err != nil {
			return false, err
		}
		if _, err := fmt.Fprintf(w, "%s\n", patch); err != nil {
			return false, err
		}
		return string(patch) != "{}", nil
	case cfg.Changes:
		cs := libdiff.Diff(a, b)
		for i := range cs {
			if _, err := fmt.Fprintln(w, cs[i].String()); err != nil {
				return false, err
			}
		}
		return len(cs) != 0, nil
	default:
		text := libdiff.Text(a, b)
		if cfg.useColor(w) {
			text = colorLines(text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return false, err
		}
		return text != "", nil
	}
}

func colorLines(text string) string {
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	buf := &strings.Builder{}
	for _, line := range strings.SplitAfter(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			buf.WriteString(ins.Sprint(line))
		case strings.HasPrefix(line, "-"):
			buf.WriteString(del.Sprint(line))
		default:
			buf.WriteString(line)
		}
	}
	return buf.String()
}
