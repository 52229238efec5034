// Copyright (c) 2026, The a11ychart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// XMLAddAttr adds a new attribute to the given list of xml attributes.
func XMLAddAttr(attr *[]xml.Attr, name, val string) {
	*attr = append(*attr, xml.Attr{Name: xml.Name{Local: name}, Value: val})
}

// fp formats a float32 attribute value compactly.
func fp(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// WriteXML writes the scene as SVG XML to the given writer,
// optionally with indentation.
func (sc *Scene) WriteXML(wr io.Writer, indent bool) error {
	enc := xml.NewEncoder(wr)
	if indent {
		enc.Indent("", "  ")
	}
	var attr []xml.Attr
	XMLAddAttr(&attr, "xmlns", "http://www.w3.org/2000/svg")
	XMLAddAttr(&attr, "id", sc.Name)
	XMLAddAttr(&attr, "width", fp(sc.Size.X))
	XMLAddAttr(&attr, "height", fp(sc.Size.Y))
	se := xml.StartElement{Name: xml.Name{Local: "svg"}, Attr: attr}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	for _, kid := range zOrdered(sc.Root.Children) {
		if err := writeNodeXML(enc, kid); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(se.End()); err != nil {
		return err
	}
	return enc.Flush()
}

// zOrdered returns the given children sorted by ZIndex, with equal
// values keeping their insertion order, so that higher z-index
// elements are written later and thus render on top.
func zOrdered(kids []Node) []Node {
	ord := slices.Clone(kids)
	slices.SortStableFunc(ord, func(a, b Node) int {
		return a.AsNodeBase().ZIndex - b.AsNodeBase().ZIndex
	})
	return ord
}

func writeNodeXML(enc *xml.Encoder, n Node) error {
	nb := n.AsNodeBase()
	var attr []xml.Attr
	if nb.Name != "" {
		XMLAddAttr(&attr, "id", nb.Name)
	}
	if nb.Class != "" {
		XMLAddAttr(&attr, "class", nb.Class)
	}
	if xf := transformAttr(nb); xf != "" {
		XMLAddAttr(&attr, "transform", xf)
	}
	switch x := n.(type) {
	case *Rect:
		XMLAddAttr(&attr, "x", fp(x.Pos.X))
		XMLAddAttr(&attr, "y", fp(x.Pos.Y))
		XMLAddAttr(&attr, "width", fp(x.Size.X))
		XMLAddAttr(&attr, "height", fp(x.Size.Y))
		if x.Radius != 0 {
			XMLAddAttr(&attr, "rx", strconv.Itoa(x.Radius))
		}
		if x.Fill != "" {
			XMLAddAttr(&attr, "fill", x.Fill)
		}
		if x.Stroke != "" {
			XMLAddAttr(&attr, "stroke", x.Stroke)
		}
		if x.StrokeWidth != 0 {
			XMLAddAttr(&attr, "stroke-width", fp(x.StrokeWidth))
		}
	case *Text:
		XMLAddAttr(&attr, "x", fp(x.Pos.X))
		XMLAddAttr(&attr, "y", fp(x.Pos.Y))
		if x.FontSize != 0 {
			XMLAddAttr(&attr, "font-size", fp(x.FontSize))
		}
	}
	propKeys := make([]string, 0, len(nb.Properties))
	for k := range nb.Properties {
		propKeys = append(propKeys, k)
	}
	slices.Sort(propKeys)
	for _, k := range propKeys {
		XMLAddAttr(&attr, k, fmt.Sprintf("%v", nb.Properties[k]))
	}
	se := xml.StartElement{Name: xml.Name{Local: n.SVGName()}, Attr: attr}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if txt, ok := n.(*Text); ok && txt.Text != "" {
		if err := enc.EncodeToken(xml.CharData(txt.Text)); err != nil {
			return err
		}
	}
	for _, kid := range zOrdered(nb.Children) {
		if err := writeNodeXML(enc, kid); err != nil {
			return err
		}
	}
	return enc.EncodeToken(se.End())
}

// transformAttr returns the SVG transform attribute value for the
// node's translation and rotation, or empty if it has neither.
func transformAttr(nb *NodeBase) string {
	var sb strings.Builder
	if nb.Translate.X != 0 || nb.Translate.Y != 0 {
		fmt.Fprintf(&sb, "translate(%s,%s)", fp(nb.Translate.X), fp(nb.Translate.Y))
	}
	if nb.Rotation != 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "rotate(%s)", fp(nb.Rotation))
	}
	return sb.String()
}
