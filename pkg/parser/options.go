package parser

import (
	"path/filepath"
	"strings"
)

// ImportMeta describes an import seen while scanning input sources.
type ImportMeta struct {
	Path  string // fully-qualified import path
	Name  string // package base name
	Alias string // alias used in the scanned file
}

// Options control scanning and generation.
//
// InDir        – directory to scan for annotated structs
// OutDir       – output directory
// OutFile      – output filename
// Tag          – struct tag key carrying field directives (required, default)
// Marker       – doc-comment marker selecting structs (with name=/visibility= options)
// ExcludeTypes – names of structs to skip (case-insensitive)
type Options struct {
	InDir        string   `json:"in_dir,omitempty" yaml:"in_dir,omitempty" toml:"in_dir,omitempty" mapstructure:"in_dir,omitempty"`
	OutDir       string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile      string   `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Tag          string   `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty" mapstructure:"tag,omitempty"`
	Marker       string   `json:"marker,omitempty" yaml:"marker,omitempty" toml:"marker,omitempty" mapstructure:"marker,omitempty"`
	ExcludeTypes []string `json:"exclude_types,omitempty" yaml:"exclude_types,omitempty" toml:"exclude_types,omitempty" mapstructure:"exclude_types,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		InDir:   ".",
		OutDir:  ".",
		OutFile: "ctor_gen.go",
		Tag:     "ctor",
		Marker:  "ctorlite:constructor",
	}
}

func (o *Options) Normalize() {
	if o.InDir == "" {
		o.InDir = "."
	}
	o.InDir, _ = filepath.Abs(o.InDir)
	if o.OutDir == "" {
		o.OutDir = o.InDir
	}
	o.OutDir, _ = filepath.Abs(o.OutDir)
	if o.OutFile == "" {
		o.OutFile = "ctor_gen.go"
	}
	if o.Tag == "" {
		o.Tag = "ctor"
	}
	if o.Marker == "" {
		o.Marker = "ctorlite:constructor"
	}
}

// Excluded reports whether a type name was excluded by option.
func (o *Options) Excluded(name string) bool {
	for _, ex := range o.ExcludeTypes {
		if strings.EqualFold(ex, name) {
			return true
		}
	}
	return false
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInDir(d string) Option   { return func(o *Options) { o.InDir = d } }
func WithOutDir(d string) Option  { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option { return func(o *Options) { o.OutFile = f } }
func WithTag(t string) Option     { return func(o *Options) { o.Tag = t } }
func WithMarker(m string) Option  { return func(o *Options) { o.Marker = m } }
func WithExcludeTypes(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeTypes = append(o.ExcludeTypes, strings.TrimSpace(n))
		}
	}
}
