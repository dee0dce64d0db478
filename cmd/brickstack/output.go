package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/brickstack/config"
)

type removableReport struct {
	Count  int      `json:"count"`
	Bricks []string `json:"bricks,omitempty"`
}

type settledBrick struct {
	Index int    `json:"index"`
	Brick string `json:"brick"`
	Fell  int    `json:"fell"`
}

type cascadeEntry struct {
	Brick string `json:"brick"`
	Falls int    `json:"falls"`
}

type cascadeReport struct {
	Total  int            `json:"total"`
	Bricks []cascadeEntry `json:"bricks,omitempty"`
}

type graphEntry struct {
	Brick       string   `json:"brick"`
	SupportedBy []string `json:"supported_by"`
	Supports    []string `json:"supports"`
	Removable   bool     `json:"removable"`
}

type graphReport []graphEntry

func (a *app) jsonOutput() bool {
	return strings.EqualFold(a.cfg.Output.Format, config.FormatJSON)
}

// emit writes v as indented JSON or in its text form.
func (a *app) emit(w io.Writer, v any) error {
	if a.jsonOutput() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	switch r := v.(type) {
	case removableReport:
		fmt.Fprintln(w, r.Count)
		for _, b := range r.Bricks {
			fmt.Fprintln(w, b)
		}
	case cascadeReport:
		fmt.Fprintln(w, r.Total)
		for _, e := range r.Bricks {
			fmt.Fprintf(w, "%s\t%d\n", e.Brick, e.Falls)
		}
	case graphReport:
		for _, e := range r {
			mark := ""
			if e.Removable {
				mark = " (removable)"
			}
			fmt.Fprintf(w, "%s%s: on [%s] holds [%s]\n",
				e.Brick, mark, strings.Join(e.SupportedBy, " "), strings.Join(e.Supports, " "))
		}
	default:
		fmt.Fprintln(w, v)
	}

	return nil
}
