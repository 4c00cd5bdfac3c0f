// Package report provides building blocks for HTML reports made of images.
//
// Every constructor returns a [*dom.Element] that the caller appends to a
// parent explicitly; there is no implicit "current container". The blocks
// are:
//
//   - [Image]: an img element whose source is a string, a figure or an
//     animation inlined as a data URI
//   - [Caption]: a figure with a figcaption around a flex container
//   - [Grid] / [NewGrid]: a CSS grid with a fixed number of tracks
//   - [Slider] / [NewSlider]: frames shown one at a time behind a range
//     input, with a play/pause toggle
//   - [Note]: sanitized markdown
//
// A captioned 3-column grid of figures:
//
//	grid, err := report.NewGrid(3, report.WithStyle(dom.MustParseStyle("gap: 4px")))
//	for _, fig := range figures {
//	    img, err := report.Image(ctx, fig, report.WithTitle(fig.Name))
//	    if err != nil {
//	        return err
//	    }
//	    grid.Append(img)
//	}
//	doc := dom.NewDocument("Results").Append(grid)
//
// A slider built incrementally:
//
//	s := report.NewSlider(report.WithInterval(50), report.WithLabelPrefix("epoch"))
//	for _, frame := range frames {
//	    img, err := report.Image(ctx, frame)
//	    ...
//	    s.Append(img)
//	}
//	widget, err := s.Build()
//
// # Styles
//
// Containers compute their layout declarations first and append caller
// style ([WithStyle]) last. Under CSS last-declaration-wins rules the caller
// can override any computed property.
package report
