package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/logging"
	"github.com/ytget/recipe-browser/internal/model"
	"github.com/ytget/recipe-browser/internal/platform"
)

// RecipeTile shows one recipe: a thumbnail and a link to the recipe source
type RecipeTile struct {
	widget.BaseWidget

	recipe model.Recipe
	logger *zap.Logger

	image   *canvas.Image
	caption fyne.CanvasObject
}

// NewRecipeTile creates a tile for recipe. The thumbnail starts as a
// placeholder and is replaced once it has been fetched.
func NewRecipeTile(recipe model.Recipe, logger *zap.Logger) *RecipeTile {
	rt := &RecipeTile{
		recipe: recipe,
		logger: logging.OrNop(logger),
	}
	rt.ExtendBaseWidget(rt)
	rt.createUI()
	return rt
}

// Recipe returns the recipe rendered by the tile
func (rt *RecipeTile) Recipe() model.Recipe {
	return rt.recipe
}

func (rt *RecipeTile) createUI() {
	placeholder := theme.FileImageIcon()
	if !rt.hasRemoteImage() {
		placeholder = theme.BrokenImageIcon()
	}
	rt.image = canvas.NewImageFromResource(placeholder)
	rt.image.FillMode = canvas.ImageFillContain
	rt.image.SetMinSize(fyne.NewSize(TileImageWidth, TileImageHeight))

	title := rt.recipe.GetDisplayTitle()
	if link, err := platform.ParseWebURL(rt.recipe.SourceURL); err == nil {
		hyperlink := widget.NewHyperlink(title, link)
		hyperlink.Wrapping = fyne.TextWrapWord
		rt.caption = hyperlink
	} else {
		rt.logger.Debug("recipe has no usable source link", zap.String("recipe", rt.recipe.Name), zap.Error(err))
		label := widget.NewLabel(title)
		label.Wrapping = fyne.TextWrapWord
		rt.caption = label
	}
}

// hasRemoteImage reports whether the thumbnail can be fetched
func (rt *RecipeTile) hasRemoteImage() bool {
	_, err := platform.ParseWebURL(rt.recipe.ImageURL)
	return err == nil
}

// loadThumbnail fetches the image; it blocks and must run off the UI thread
func (rt *RecipeTile) loadThumbnail(dispatch func(func())) {
	res, err := fyne.LoadResourceFromURLString(rt.recipe.ImageURL)
	if err != nil {
		rt.logger.Warn("failed to load recipe thumbnail", zap.String("url", rt.recipe.ImageURL), zap.Error(err))
		res = theme.BrokenImageIcon()
	}

	dispatch(func() {
		rt.image.Resource = res
		rt.image.Refresh()
	})
}

// CreateRenderer implements fyne.Widget
func (rt *RecipeTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, rt.caption, nil, nil, rt.image))
}
