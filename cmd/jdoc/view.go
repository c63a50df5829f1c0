package main

import (
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	dw := newDocWriter(cfg.MainConfig, cc.Out)
	return eachDoc(cc, args, func(_ string, doc *ir.Node) error {
		return dw.write(doc)
	})
}
