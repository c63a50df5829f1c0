package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jdoc").
		WithSynopsis("jdoc [opts] command [opts]").
		WithDescription("jdoc queries yaml and json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdocMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			ObjectsCommand(cfg),
			SameTypeCommand(cfg),
			ShapeCommand(cfg),
			SelectCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <property> [files]").
		WithDescription("list the values of a property at any depth").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ObjectsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ObjectsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Objects, "objects").
		WithAliases("obj").
		WithSynopsis("objects <p1,p2,...> [files]").
		WithDescription("list the objects having all of the given properties").
		WithRun(func(cc *cli.Context, args []string) error {
			return objects(cfg, cc, args)
		})
}

func SameTypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SameTypeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.SameType, "sametype").
		WithAliases("st").
		WithSynopsis("sametype <property> <type> [files]").
		WithDescription("check that every value of a property has the given type").
		WithRun(func(cc *cli.Context, args []string) error {
			return sameType(cfg, cc, args)
		})
}

func ShapeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShapeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Shape, "shape").
		WithSynopsis("shape [files]").
		WithDescription("check that the items of array documents have the same structure").
		WithRun(func(cc *cli.Context, args []string) error {
			return shape(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select [opts] <expr> [files]").
		WithDescription("list the objects for which an expression is true").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return selectObjects(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [opts] a b").
		WithDescription("diff two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
