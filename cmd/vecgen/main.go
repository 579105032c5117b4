// Copyright 2026 go-simdpp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vecgen generates the repetitive per-type vector surface of the
// simdpp package: type declarations, constructors, lane accessors, and the
// bit-reinterpreting As* casts.
//
// Usage:
//
//	vecgen -output types_gen.go
//
// Or via go:generate from the simdpp package:
//
//	//go:generate go run ../cmd/vecgen -output types_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

var outputFile = flag.String("output", "types_gen.go", "Output file path")

// vecType describes one generated vector type.
type vecType struct {
	Name   string   // Go type name, e.g. "Uint8x16"
	Elem   string   // element type, e.g. "uint8"
	N      int      // lane count
	Bits   int      // register width in bits
	Reg    string   // backing register type: "reg128" or "reg256"
	Get    string   // register getter helper, e.g. "u8"
	Set    string   // register setter helper, e.g. "setU8"
	Signed bool     // signed view over an unsigned accessor
	UElem  string   // unsigned element type for signed views
	Casts  []string // reinterpreting cast targets
}

// The closed set of vector types: 128-bit register values plus the
// double-width results of Combine. Lane order is little endian; casts are
// bit-for-bit views, never numeric conversions.
var vecTypes = []vecType{
	{Name: "Uint8x16", Elem: "uint8", N: 16, Bits: 128, Reg: "reg128", Get: "u8", Set: "setU8",
		Casts: []string{"Int8x16", "Uint16x8", "Uint32x4", "Uint64x2"}},
	{Name: "Uint16x8", Elem: "uint16", N: 8, Bits: 128, Reg: "reg128", Get: "u16", Set: "setU16",
		Casts: []string{"Int16x8", "Uint8x16", "Uint32x4", "Uint64x2"}},
	{Name: "Uint32x4", Elem: "uint32", N: 4, Bits: 128, Reg: "reg128", Get: "u32", Set: "setU32",
		Casts: []string{"Int32x4", "Float32x4", "Uint8x16", "Uint16x8", "Uint64x2"}},
	{Name: "Uint64x2", Elem: "uint64", N: 2, Bits: 128, Reg: "reg128", Get: "u64", Set: "setU64",
		Casts: []string{"Int64x2", "Float64x2", "Uint8x16", "Uint16x8", "Uint32x4"}},
	{Name: "Int8x16", Elem: "int8", N: 16, Bits: 128, Reg: "reg128", Get: "u8", Set: "setU8",
		Signed: true, UElem: "uint8", Casts: []string{"Uint8x16"}},
	{Name: "Int16x8", Elem: "int16", N: 8, Bits: 128, Reg: "reg128", Get: "u16", Set: "setU16",
		Signed: true, UElem: "uint16", Casts: []string{"Uint16x8"}},
	{Name: "Int32x4", Elem: "int32", N: 4, Bits: 128, Reg: "reg128", Get: "u32", Set: "setU32",
		Signed: true, UElem: "uint32", Casts: []string{"Uint32x4"}},
	{Name: "Int64x2", Elem: "int64", N: 2, Bits: 128, Reg: "reg128", Get: "u64", Set: "setU64",
		Signed: true, UElem: "uint64", Casts: []string{"Uint64x2"}},
	{Name: "Float32x4", Elem: "float32", N: 4, Bits: 128, Reg: "reg128", Get: "f32", Set: "setF32",
		Casts: []string{"Uint32x4", "Int32x4"}},
	{Name: "Float64x2", Elem: "float64", N: 2, Bits: 128, Reg: "reg128", Get: "f64", Set: "setF64",
		Casts: []string{"Uint64x2", "Int64x2"}},

	{Name: "Uint8x32", Elem: "uint8", N: 32, Bits: 256, Reg: "reg256", Get: "u8", Set: "setU8",
		Casts: []string{"Int8x32"}},
	{Name: "Uint16x16", Elem: "uint16", N: 16, Bits: 256, Reg: "reg256", Get: "u16", Set: "setU16",
		Casts: []string{"Int16x16"}},
	{Name: "Uint32x8", Elem: "uint32", N: 8, Bits: 256, Reg: "reg256", Get: "u32", Set: "setU32",
		Casts: []string{"Int32x8", "Float32x8"}},
	{Name: "Uint64x4", Elem: "uint64", N: 4, Bits: 256, Reg: "reg256", Get: "u64", Set: "setU64",
		Casts: []string{"Int64x4", "Float64x4"}},
	{Name: "Int8x32", Elem: "int8", N: 32, Bits: 256, Reg: "reg256", Get: "u8", Set: "setU8",
		Signed: true, UElem: "uint8", Casts: []string{"Uint8x32"}},
	{Name: "Int16x16", Elem: "int16", N: 16, Bits: 256, Reg: "reg256", Get: "u16", Set: "setU16",
		Signed: true, UElem: "uint16", Casts: []string{"Uint16x16"}},
	{Name: "Int32x8", Elem: "int32", N: 8, Bits: 256, Reg: "reg256", Get: "u32", Set: "setU32",
		Signed: true, UElem: "uint32", Casts: []string{"Uint32x8"}},
	{Name: "Int64x4", Elem: "int64", N: 4, Bits: 256, Reg: "reg256", Get: "u64", Set: "setU64",
		Signed: true, UElem: "uint64", Casts: []string{"Uint64x4"}},
	{Name: "Float32x8", Elem: "float32", N: 8, Bits: 256, Reg: "reg256", Get: "f32", Set: "setF32",
		Casts: []string{"Uint32x8"}},
	{Name: "Float64x4", Elem: "float64", N: 4, Bits: 256, Reg: "reg256", Get: "f64", Set: "setF64",
		Casts: []string{"Uint64x4"}},
}

var fileTemplate = template.Must(template.New("types").Parse(`// Code generated by vecgen. DO NOT EDIT.

package simdpp
{{range $t := .}}
// {{.Name}} is a {{.Bits}}-bit vector of {{.N}} {{.Elem}} lanes.
type {{.Name}} struct{ r {{.Reg}} }

// Make{{.Name}} returns a vector whose lanes are taken from vals in order;
// unspecified lanes are zero. It panics if more than {{.N}} values are given.
func Make{{.Name}}(vals ...{{.Elem}}) {{.Name}} {
	if len(vals) > {{.N}} {
		panic("simdpp: too many lanes for {{.Name}}")
	}
	var r {{.Reg}}
	for i, v := range vals {
		r = r.{{.Set}}(i, {{if .Signed}}{{.UElem}}(v){{else}}v{{end}})
	}
	return {{.Name}}{r}
}

// Splat{{.Name}} returns a vector with every lane set to x.
func Splat{{.Name}}(x {{.Elem}}) {{.Name}} {
	var r {{.Reg}}
	for i := 0; i < {{.N}}; i++ {
		r = r.{{.Set}}(i, {{if .Signed}}{{.UElem}}(x){{else}}x{{end}})
	}
	return {{.Name}}{r}
}

// GetElem returns lane i. It panics if i is out of range.
func (a {{.Name}}) GetElem(i int) {{.Elem}} {
	return {{if .Signed}}{{.Elem}}(a.r.{{.Get}}(i)){{else}}a.r.{{.Get}}(i){{end}}
}

// Lanes returns the lanes as a freshly allocated slice.
func (a {{.Name}}) Lanes() []{{.Elem}} {
	out := make([]{{.Elem}}, {{.N}})
	for i := range out {
		out[i] = {{if .Signed}}{{.Elem}}(a.r.{{.Get}}(i)){{else}}a.r.{{.Get}}(i){{end}}
	}
	return out
}
{{range $cast := .Casts}}
// As{{$cast}} reinterprets the same bits as {{$cast}}.
func (a {{$t.Name}}) As{{$cast}}() {{$cast}} { return {{$cast}}{a.r} }
{{end}}{{end}}`))

// generate renders the vector type surface and formats it.
func generate() ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, vecTypes); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := imports.Process(*outputFile, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w", err)
	}
	return src, nil
}

func main() {
	flag.Parse()

	src, err := generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecgen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "vecgen: writing %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
}
