/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ortuman/xmltree"
	"github.com/ortuman/xmltree/version"
)

const usageStr = `
Usage: xmlgen [options]

Options:
    -c <file>    Document description file path
    -o <file>    Output file path (default: stdout)
    -v           Show version
`

func main() {
	var descFile, outFile string
	var showVersion bool

	flag.StringVar(&descFile, "c", "", "Document description file path")
	flag.StringVar(&outFile, "o", "", "Output file path")
	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", usageStr)
	}
	flag.Parse()

	if showVersion {
		fmt.Fprintf(os.Stdout, "xmlgen version: %v\n", version.ApplicationVersion)
		return
	}
	if len(descFile) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	spec, err := loadDocumentSpec(descFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xmlgen: %v\n", err)
		os.Exit(1)
	}
	doc, err := spec.build(xmltree.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "xmlgen: %v\n", err)
		os.Exit(1)
	}
	out := os.Stdout
	if len(outFile) > 0 {
		f, err := os.Create(outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "xmlgen: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	fmt.Fprintln(out, doc)
}
