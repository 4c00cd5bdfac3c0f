// Package pkg provides the libraries behind domrep, a builder for
// self-contained HTML reports.
//
// # Overview
//
// domrep turns images, charts, graphs and animations into HTML elements with
// their pixels inlined as data URIs, then arranges them in captioned figures,
// CSS grids and interactive frame sliders. The pkg directory is organized
// into these areas:
//
//  1. [dom] - HTML element trees, inline styles and documents
//  2. [graphic] - Figures and animations, and their data URI encoding
//  3. [report] - Image embedding and the caption, grid, slider and note layouts
//  4. [manifest] - TOML and YAML report descriptions and their builder
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	manifest (TOML/YAML) or Go code
//	         ↓
//	    [graphic] package (figures → PNG/JPEG/GIF/SVG → data URI)
//	         ↓
//	    [report] package (img elements, captions, grids, sliders)
//	         ↓
//	    [dom] package (element tree → HTML document)
//
// # Quick Start
//
// Embed a generated heatmap and a chart side by side:
//
//	import (
//	    "github.com/matzehuels/domrep/pkg/dom"
//	    "github.com/matzehuels/domrep/pkg/graphic"
//	    "github.com/matzehuels/domrep/pkg/report"
//	)
//
//	heat, err := report.Image(ctx, graphic.RandomHeatmap(20, 20, 1), report.WithTitle("weights"))
//	if err != nil {
//	    return err
//	}
//	grid, err := report.Grid(2, []dom.Node{heat, chartImg})
//	if err != nil {
//	    return err
//	}
//	doc := dom.NewDocument("run 7").Append(grid)
//	err = doc.Render(w)
//
// Or describe the same report in a manifest and build it:
//
//	m, err := manifest.Load("report.toml")
//	doc, err := manifest.Build(ctx, m, ".")
//
// [dom]: github.com/matzehuels/domrep/pkg/dom
// [graphic]: github.com/matzehuels/domrep/pkg/graphic
// [report]: github.com/matzehuels/domrep/pkg/report
// [manifest]: github.com/matzehuels/domrep/pkg/manifest
// [errors]: github.com/matzehuels/domrep/pkg/errors
// [observability]: github.com/matzehuels/domrep/pkg/observability
// [buildinfo]: github.com/matzehuels/domrep/pkg/buildinfo
package pkg
