// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FontModeStorage is the [FontSettings.Mode] value that enables loading a
// custom font file from the project's bucket.
const FontModeStorage = "r2"

// LayoutConfig is the per-project layout document stored as
// "<folder>/<folder>.json" next to the project's images.
//
// It is decoded once per request and never modified afterwards.
type LayoutConfig struct {
	// ImageSize is the canvas size of the rendered document. Zero values are
	// resolved by the renderer.
	ImageSize ImageSize `json:"imageSize"`

	// Elements lists the text overlays in z-order: later elements are drawn
	// above earlier ones.
	Elements []TextElement `json:"elements"`

	// DefaultStyle provides the fallback value of every style field an
	// element does not set itself.
	DefaultStyle StyleConfig `json:"defaultStyle"`

	// Fonts lists external stylesheet URLs emitted as CSS @import rules.
	Fonts []string `json:"fonts"`

	// FontSettings controls the optional storage-hosted font.
	FontSettings FontSettings `json:"fontSettings"`
}

// ImageSize is the width and height of the output canvas in CSS pixels.
type ImageSize struct {
	Width  Number `json:"width"`
	Height Number `json:"height"`
}

// FontSettings describes the storage-hosted font of a project.
type FontSettings struct {
	// Mode selects the font source; only [FontModeStorage] has an effect.
	Mode string `json:"mode"`

	// R2FontFilename is the file name under "<folder>/fonts/".
	R2FontFilename string `json:"r2FontFilename"`
}

// TextElement binds one text overlay to a request query parameter.
type TextElement struct {
	// Query is the name of the query parameter holding the element's text.
	// The element is rendered only when the parameter is present.
	Query string `json:"query"`

	// Style holds the element's own style fields. Unset fields are taken
	// from [LayoutConfig.DefaultStyle].
	Style StyleConfig `json:"style"`

	// UseR2Font forces the storage-hosted font for this element.
	UseR2Font bool `json:"useR2Font"`
}

// StyleConfig is a partial text style as written in the layout config.
// Length and size fields are [CSSValue]s copied into the generated CSS.
//
// Every field is a pointer so that a field explicitly set to its zero value
// (for example "strokeWidth": 0) can be told apart from an absent field when
// the element style is merged over the default style.
type StyleConfig struct {
	FontFamily    *string   `json:"fontFamily,omitempty"`
	FontSize      *CSSValue `json:"fontSize,omitempty"`
	Fill          *string   `json:"fill,omitempty"`
	TextAlign     *string   `json:"textAlign,omitempty"`
	LineHeight    *CSSValue `json:"lineHeight,omitempty"`
	WhiteSpace    *string   `json:"whiteSpace,omitempty"`
	StrokeWidth   *CSSValue `json:"strokeWidth,omitempty"`
	Stroke        *string   `json:"stroke,omitempty"`
	X             *CSSValue `json:"x,omitempty"`
	Y             *CSSValue `json:"y,omitempty"`
	Width         *CSSValue `json:"width,omitempty"`
	Height        *CSSValue `json:"height,omitempty"`
	VerticalAlign *string   `json:"verticalAlign,omitempty"`
	UseR2Font     *bool     `json:"useR2Font,omitempty"`
}

// Number is a numeric layout value. Config files written by hand often quote
// numbers ("width": "690"), so both JSON numbers and numeric strings are
// accepted.
type Number float64

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	return float64(n)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", s, err)
		}
		*n = Number(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// CSSValue is a style value written into the generated CSS. JSON numbers are
// kept as numbers; strings are kept verbatim, so "normal" or "32px" reach the
// CSS unchanged.
type CSSValue struct {
	raw    string
	num    float64
	isText bool
}

// CSSNumber returns the CSSValue of v.
func CSSNumber(v float64) CSSValue {
	return CSSValue{num: v}
}

// CSSText returns the CSSValue holding s verbatim.
func CSSText(s string) CSSValue {
	return CSSValue{raw: s, isText: true}
}

// Float64 returns the numeric value of v and whether it has one. Text that
// parses as a number counts as numeric.
func (v CSSValue) Float64() (float64, bool) {
	if !v.isText {
		return v.num, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.raw), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String returns v as written into CSS: numbers in their shortest form,
// text as is.
func (v CSSValue) String() string {
	if v.isText {
		return v.raw
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

func (v *CSSValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = CSSText(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("invalid css value %s: %w", b, err)
	}
	*v = CSSNumber(f)
	return nil
}
