package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// readDocs reads the documents of the yaml or json file at path, "-" being
// the standard input.
func readDocs(cc *cli.Context, path string) ([]*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	docs, err := decodeDocs(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return docs, nil
}

// decodeDocs decodes a stream of yaml documents into Go values and maps
// them into documents.  Mappings keep their key order.
func decodeDocs(r io.Reader) ([]*ir.Node, error) {
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())
	var res []*ir.Node
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(res), err)
		}
		doc, err := gomap.ToIR(ordered(v))
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(res), err)
		}
		res = append(res, doc)
	}
}

// orderedMap is a yaml mapping described field by field, so that it maps
// to an object with the keys in their original order.
type orderedMap []gomap.RecordField

func (m orderedMap) DocFields() []gomap.RecordField {
	return m
}

func ordered(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(orderedMap, len(x))
		for i, item := range x {
			res[i] = gomap.RecordField{Name: fmt.Sprint(item.Key), Value: ordered(item.Value)}
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, elt := range x {
			res[i] = ordered(elt)
		}
		return res
	default:
		return v
	}
}

// eachDoc calls f on the documents of each file in turn.  No files means
// the standard input.
func eachDoc(cc *cli.Context, files []string, f func(file string, doc *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := readDocs(cc, file)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := f(file, doc); err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
		}
	}
	return nil
}

// docWriter encodes documents separated by "---" lines.
type docWriter struct {
	w    io.Writer
	opts []encode.EncodeOption
	n    int
}

func newDocWriter(cfg *MainConfig, w io.Writer) *docWriter {
	return &docWriter{w: w, opts: cfg.encOpts(w)}
}

func (dw *docWriter) write(node *ir.Node) error {
	if dw.n > 0 {
		if _, err := io.WriteString(dw.w, "---\n"); err != nil {
			return err
		}
	}
	dw.n++
	if err := encode.Encode(node, dw.w, dw.opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// results gathers query results into an array of copies, leaving the
// parents of the results untouched.
func results(nodes []*ir.Node) *ir.Node {
	res := make([]*ir.Node, len(nodes))
	for i, n := range nodes {
		res[i] = n.Clone()
	}
	return ir.FromSlice(res)
}
