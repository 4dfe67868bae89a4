// The flaggen command generates Go flag set types from a
// declaration file. It is typically run from go generate:
//
//	//go:generate go run github.com/rogpeppe/flagset/cmd/flaggen generate weekdays.yaml
//
// See the decl package for the format of declaration files.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/rogpeppe/flagset/decl"
	"github.com/rogpeppe/flagset/domain"
	"github.com/rogpeppe/flagset/gen"
	"github.com/rogpeppe/flagset/layout"
	"github.com/rogpeppe/flagset/mermaid"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("flaggen: ")
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "flaggen",
		Usage:     "generate flag set types from a declaration",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{{
			Name:      "generate",
			Usage:     "write Go source for the declared types",
			ArgsUsage: "DECL.yaml",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write generated code to `FILE` (default DECL_flagset.go)",
				},
				&cli.StringFlag{
					Name:    "package",
					Usage:   "package `NAME` of the generated code",
					EnvVars: []string{"GOPACKAGE"},
				},
			},
			Action: generate,
		}, {
			Name:      "describe",
			Usage:     "print the layout of the declared domain",
			ArgsUsage: "DECL.yaml",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "mermaid",
					Usage: "print the groups as a Mermaid diagram",
				},
			},
			Action: describe,
		}, {
			Name:      "check",
			Usage:     "check the declaration without generating anything",
			ArgsUsage: "DECL.yaml",
			Action:    check,
		}},
	}
}

func generate(c *cli.Context) error {
	path, f, l, err := load(c)
	if err != nil {
		return err
	}
	cfg := f.Config(c.String("package"), filepath.Base(path))
	if cfg.Package == "" {
		return fmt.Errorf("%s: no package name declared; use --package", path)
	}
	src, err := gen.Generate(cfg, l)
	if err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	out := c.String("output")
	if out == "" {
		out = decl.OutputPath(path)
	}
	return os.WriteFile(out, src, 0o666)
}

func describe(c *cli.Context) error {
	_, f, l, err := load(c)
	if err != nil {
		return err
	}
	d := domain.New(l)
	w := c.App.Writer
	if c.Bool("mermaid") {
		data, err := mermaid.NewDomain(d).MarshalMermaid()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	fmt.Fprintf(w, "%s: %d items of %s in %s\n", f.Set, d.Len(), f.Item, d.Width())
	for _, item := range d.Items() {
		fmt.Fprintf(w, "item %s %v\n", item, item.Set().Bits())
	}
	for name, s := range d.Groups() {
		fmt.Fprintf(w, "group %s %v %v\n", name, s.Bits(), s)
	}
	return nil
}

func check(c *cli.Context) error {
	_, _, _, err := load(c)
	return err
}

// load reads the declaration file named by the single command
// argument and plans its layout.
func load(c *cli.Context) (string, *decl.File, *layout.Layout, error) {
	if c.NArg() != 1 {
		return "", nil, nil, fmt.Errorf("need exactly one declaration file")
	}
	path := c.Args().First()
	f, err := decl.ParseFile(path)
	if err != nil {
		return "", nil, nil, err
	}
	l, err := f.Layout()
	if err != nil {
		return "", nil, nil, fmt.Errorf("%s: %v", path, err)
	}
	return path, f, l, nil
}
