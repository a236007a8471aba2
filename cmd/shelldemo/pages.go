package main

import (
	"hash/fnv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/navigation"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/platform/sdlwindow"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/shell"
)

const (
	ChartPage    navigation.Page = "ChartPage"
	SettingsPage navigation.Page = "SettingsPage"
)

const chartBars = 24

func newRegistry() *navigation.Registry {
	return navigation.NewRegistry().
		Register(ChartPage, newChartView, navigation.WithCache()).
		Register(SettingsPage, func(any) (any, error) { return &settingsView{}, nil })
}

func newShell(nav *navigation.Service) any {
	return &shellView{
		Shell: shell.New(nav,
			shell.WithMenuItems(&shell.MenuItem{TitleKey: "Shell_Chart", Page: ChartPage}),
			shell.WithSettingsPage(SettingsPage),
			shell.WithDefaultHeader("Stocks"),
		),
	}
}

// shellView draws the content of the shell frame inside the window.
type shellView struct {
	*shell.Shell
}

func (v *shellView) Draw(r *sdl.Renderer, p sdlwindow.Palette) {
	if d, ok := v.Frame().Content().(sdlwindow.Drawable); ok {
		d.Draw(r, p)
	}
}

// chartView renders a deterministic pseudo price history for a symbol.
type chartView struct {
	symbol string
	prices []int32
}

func newChartView(param any) (any, error) {
	symbol, _ := param.(string)
	if symbol == "" {
		symbol = "NASDAQ"
	}

	h := fnv.New32a()
	h.Write([]byte(symbol))
	seed := h.Sum32()

	prices := make([]int32, chartBars)
	level := int32(50)
	for i := range prices {
		seed = seed*1664525 + 1013904223
		level += int32(seed>>28) - 7
		if level < 10 {
			level = 10
		}
		if level > 90 {
			level = 90
		}
		prices[i] = level
	}
	return &chartView{symbol: symbol, prices: prices}, nil
}

func (c *chartView) HeaderMode() shell.HeaderMode { return shell.HeaderAlways }
func (c *chartView) HeaderContext() any           { return c.symbol }

func (c *chartView) Draw(r *sdl.Renderer, p sdlwindow.Palette) {
	w, h, err := r.GetOutputSize()
	if err != nil || w == 0 {
		return
	}

	barWidth := w / int32(len(c.prices))
	r.SetDrawColor(p.AccentColor.R, p.AccentColor.G, p.AccentColor.B, p.AccentColor.A)
	for i, price := range c.prices {
		barHeight := h * price / 100
		r.FillRect(&sdl.Rect{
			X: int32(i)*barWidth + 2,
			Y: h - barHeight,
			W: barWidth - 4,
			H: barHeight,
		})
	}
}

type settingsView struct{}

func (s *settingsView) HeaderMode() shell.HeaderMode { return shell.HeaderMinimal }
func (s *settingsView) HeaderContext() any           { return nil }

func (s *settingsView) Draw(r *sdl.Renderer, p sdlwindow.Palette) {
	w, h, err := r.GetOutputSize()
	if err != nil {
		return
	}
	r.SetDrawColor(p.HintColor.R, p.HintColor.G, p.HintColor.B, p.HintColor.A)
	r.DrawRect(&sdl.Rect{X: w / 4, Y: h / 4, W: w / 2, H: h / 2})
}
