package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("%w: get requires one argument, a property name", cli.ErrUsage)
	}
	prop := args[0]
	dw := newDocWriter(cfg.MainConfig, cc.Out)
	return eachDoc(cc, args[1:], func(_ string, doc *ir.Node) error {
		return dw.write(results(doc.PropertyValues(prop)))
	})
}

func objects(cfg *ObjectsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Objects.Parse(cc, args)
	if err != nil {
		cfg.Objects.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: objects requires one argument, a comma separated list of properties", cli.ErrUsage)
	}
	props, err := parseProps(args[0])
	if err != nil {
		return err
	}
	dw := newDocWriter(cfg.MainConfig, cc.Out)
	return eachDoc(cc, args[1:], func(_ string, doc *ir.Node) error {
		return dw.write(results(doc.ObjectsWithProperties(props...)))
	})
}

func parseProps(arg string) ([]string, error) {
	var res []string
	for _, p := range strings.Split(arg, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: empty property in %q", cli.ErrUsage, arg)
		}
		res = append(res, p)
	}
	return res, nil
}

func sameType(cfg *SameTypeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.SameType.Parse(cc, args)
	if err != nil {
		cfg.SameType.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: sametype requires two arguments, a property name and a type", cli.ErrUsage)
	}
	var t ir.Type
	if err := t.UnmarshalText([]byte(args[1])); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	prop := args[0]
	dw := newDocWriter(cfg.MainConfig, cc.Out)
	return eachDoc(cc, args[2:], func(_ string, doc *ir.Node) error {
		return dw.write(ir.FromBool(doc.PropertyHasSameType(prop, t)))
	})
}

func shape(cfg *ShapeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Shape.Parse(cc, args)
	if err != nil {
		cfg.Shape.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dw := newDocWriter(cfg.MainConfig, cc.Out)
	return eachDoc(cc, args, func(_ string, doc *ir.Node) error {
		same, err := sameShape(doc)
		if err != nil {
			return err
		}
		return dw.write(ir.FromBool(same))
	})
}

func sameShape(doc *ir.Node) (bool, error) {
	if doc.Type != ir.ArrayType {
		return false, fmt.Errorf("shape needs an array document, got %s", doc.Type)
	}
	return doc.ItemsHaveSameStructure(), nil
}
