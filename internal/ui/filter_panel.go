package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/filter"
	"github.com/ytget/recipe-browser/internal/logging"
	"github.com/ytget/recipe-browser/internal/model"
)

// FilterPanel is the collapsible panel of filter checkboxes, one column per
// category. It mirrors check state into the session's filter model.
type FilterPanel struct {
	model  *filter.Model
	logger *zap.Logger

	accordion *widget.Accordion
	item      *widget.AccordionItem
	checks    map[model.Label]*widget.Check

	onChange func(label model.Label, selected bool)
}

// NewFilterPanel builds the panel for every label in the model's catalog
func NewFilterPanel(m *filter.Model, logger *zap.Logger) *FilterPanel {
	fp := &FilterPanel{
		model:  m,
		logger: logging.OrNop(logger),
		checks: make(map[model.Label]*widget.Check),
	}
	fp.createUI()
	return fp
}

// Container returns the panel's root object
func (fp *FilterPanel) Container() fyne.CanvasObject {
	return fp.accordion
}

// SetOnChange sets the callback fired after a label is toggled
func (fp *FilterPanel) SetOnChange(callback func(label model.Label, selected bool)) {
	fp.onChange = callback
}

func (fp *FilterPanel) createUI() {
	columns := make([]fyne.CanvasObject, 0, len(fp.model.Categories()))

	for _, group := range fp.model.Categories() {
		heading := widget.NewLabelWithStyle(group.Category.String(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		list := container.NewVBox(heading)

		for _, label := range group.Labels {
			check := widget.NewCheck(filter.DisplayName(label), fp.onToggle(label))
			check.SetChecked(fp.model.IsSelected(label))
			fp.checks[label] = check
			list.Add(check)
		}
		columns = append(columns, list)
	}

	fp.item = widget.NewAccordionItem(FiltersTitle, container.NewGridWithColumns(len(columns), columns...))
	fp.accordion = widget.NewAccordion(fp.item)
}

// onToggle returns the check handler for label. The model is only toggled
// when it disagrees with the check, so programmatic SetChecked calls with an
// unchanged value are harmless.
func (fp *FilterPanel) onToggle(label model.Label) func(bool) {
	return func(checked bool) {
		if fp.model.IsSelected(label) == checked {
			return
		}
		selected := fp.model.Toggle(label)
		fp.logger.Debug("filter toggled", zap.String("label", label.String()), zap.Bool("selected", selected))

		fp.refreshTitle()
		if fp.onChange != nil {
			fp.onChange(label, selected)
		}
	}
}

func (fp *FilterPanel) title() string {
	if n := fp.model.Len(); n > 0 {
		return fmt.Sprintf(FiltersCountFormat, n)
	}
	return FiltersTitle
}

func (fp *FilterPanel) refreshTitle() {
	fp.item.Title = fp.title()
	fp.accordion.Refresh()
}
