package main

import (
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	boxcanvas "boxpaint/pkg/canvas"
	"boxpaint/pkg/config"
	"boxpaint/pkg/observability"
	"boxpaint/pkg/text"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := observability.New(cfg.Logger, os.Stderr)
	defer logger.Sync()
	fonts := text.NewFontConfig(cfg.Font.Path)

	a := app.New()
	w := a.NewWindow("boxshow")
	w.Resize(fyne.NewSize(1024, 768))

	width, height := cfg.SurfaceSize()
	canvasImg := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
	canvasImg.FillMode = canvas.ImageFillContain

	status := widget.NewLabel("Enter the path of an HTML file and press Enter")

	load := func(path string) {
		status.SetText("Rendering " + path + "...")
		go func() {
			img, err := render(path, fonts, boxcanvas.WithLogger(logger))
			fyne.Do(func() {
				if err != nil {
					status.SetText("Error: " + err.Error())
					return
				}
				canvasImg.Image = img
				canvasImg.Refresh()
				status.SetText(fmt.Sprintf("%s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy()))
				w.SetTitle("boxshow - " + path)
			})
		}()
	}

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("page.html")
	pathEntry.OnSubmitted = load

	topBar := container.NewBorder(nil, nil, nil, nil, pathEntry)
	w.SetContent(container.NewBorder(topBar, status, nil, nil, canvasImg))
	w.Canvas().Focus(pathEntry)

	if len(os.Args) > 1 {
		pathEntry.SetText(os.Args[1])
		load(os.Args[1])
	}
	w.ShowAndRun()
}

func render(path string, fonts *text.FontConfig, opts ...boxcanvas.Option) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := boxcanvas.FromHTML(string(data), append(opts, boxcanvas.WithFontConfig(fonts))...)
	if err != nil {
		return nil, err
	}
	return c.Render()
}
