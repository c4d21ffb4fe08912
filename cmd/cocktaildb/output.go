package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cocktaildb"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	idStyle      = lipgloss.NewStyle().Faint(true).Width(7)
)

// printer writes operation results as text or JSON. Absent results become
// errNoResults so the command exits non-zero.
type printer struct {
	out  io.Writer
	json bool
}

func (p printer) drinks(drinks []cocktaildb.Drink) error {
	if drinks == nil {
		return errNoResults
	}
	if p.json {
		return p.writeJSON(drinks)
	}
	for _, d := range drinks {
		line := idStyle.Render(d.ID()) + " " + titleStyle.Render(d.Name())
		if meta := strings.Join(nonEmpty(d.Category(), d.Alcoholic()), ", "); meta != "" {
			line += " " + mutedStyle.Render("("+meta+")")
		}
		fmt.Fprintln(p.out, line)
	}
	return nil
}

func (p printer) drink(d cocktaildb.Drink) error {
	if d == nil {
		return errNoResults
	}
	if p.json {
		return p.writeJSON(d)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(d.Name()), mutedStyle.Render("#"+d.ID()))
	if meta := strings.Join(nonEmpty(d.Category(), d.Alcoholic(), d.Glass()), " / "); meta != "" {
		fmt.Fprintln(&b, mutedStyle.Render(meta))
	}
	if components := d.Components(); len(components) > 0 {
		fmt.Fprintf(&b, "\n%s\n", headingStyle.Render("Ingredients"))
		for _, c := range components {
			fmt.Fprintf(&b, "  - %s\n", strings.Join(nonEmpty(c.Measure, c.Ingredient), " "))
		}
	}
	if instructions := strings.TrimSpace(d.Instructions()); instructions != "" {
		fmt.Fprintf(&b, "\n%s\n%s\n", headingStyle.Render("Instructions"), instructions)
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

func (p printer) ingredient(i cocktaildb.Ingredient) error {
	if i == nil {
		return errNoResults
	}
	if p.json {
		return p.writeJSON(i)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(i.Name()), mutedStyle.Render("#"+i.ID()))
	alcohol := "non-alcoholic"
	if i.IsAlcoholic() {
		alcohol = "alcoholic"
		if abv := i.ABV(); abv != "" {
			alcohol += ", " + abv + "% ABV"
		}
	}
	fmt.Fprintln(&b, mutedStyle.Render(strings.Join(nonEmpty(i.Type(), alcohol), " / ")))
	if desc := strings.TrimSpace(i.Description()); desc != "" {
		fmt.Fprintf(&b, "\n%s\n", desc)
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

func (p printer) list(values []string) error {
	if values == nil {
		return errNoResults
	}
	if p.json {
		return p.writeJSON(values)
	}
	for _, v := range values {
		fmt.Fprintln(p.out, v)
	}
	return nil
}

func (p printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = p.out.Write(data)
	return err
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
