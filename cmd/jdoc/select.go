package main

import (
	"fmt"

	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/match"

	"github.com/scott-cotton/cli"
)

func selectObjects(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires one argument, an expression", cli.ErrUsage)
	}
	m, err := match.Compile(args[0])
	if err != nil {
		return err
	}
	dw := newDocWriter(cfg.MainConfig, cc.Out)
	return eachDoc(cc, args[1:], func(_ string, doc *ir.Node) error {
		res, err := m.Objects(doc)
		if err != nil {
			return err
		}
		if cfg.Count {
			return dw.write(ir.FromInt(int64(len(res))))
		}
		return dw.write(results(res))
	})
}
